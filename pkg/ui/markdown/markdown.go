// Package markdown renders markdown reference text for the terminal.
package markdown

import (
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Renderer turns markdown into terminal output.
type Renderer struct {
	// Style is a glamour style name ("dark", "light", "notty") or a path
	// to a style file. Empty or "auto" detects it from the terminal.
	Style string
	// Width wraps output at the given column. Zero disables wrapping.
	Width int
}

// NewRenderer returns a renderer that detects its style.
func NewRenderer() *Renderer {
	return &Renderer{Style: "auto", Width: 80}
}

// ForFile returns a renderer suited to f: plain markdown is passed through
// untouched when f is not a colour terminal.
func ForFile(f *os.File) *Renderer {
	if !isTerminal(f) || os.Getenv("NO_COLOR") != "" || termenv.EnvColorProfile() == termenv.Ascii {
		return &Renderer{Style: "notty"}
	}
	return NewRenderer()
}

func isTerminal(f *os.File) bool {
	return f != nil && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

// Render converts content, falling back to the raw markdown when the
// renderer cannot be built or fails.
func (r *Renderer) Render(content string) string {
	if r.Style == "notty" {
		return content
	}

	var options []glamour.TermRendererOption
	switch r.Style {
	case "", "auto":
		options = append(options, glamour.WithAutoStyle())
	case "dark", "light", "dracula", "pink", "ascii":
		options = append(options, glamour.WithStandardStyle(r.Style))
	default:
		options = append(options, glamour.WithStylePath(r.Style))
	}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	tr, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}
	rendered, err := tr.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
