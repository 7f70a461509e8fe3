// Package replacer substitutes placeholder tokens in text.
//
// A Replacer binds one placeholder and its value to an ordered list of
// formatters and a wrapper. ApplyAll folds a batch of replacers over one
// piece of content.
package replacer

import (
	"strings"

	"github.com/arthur-debert/scaffy/pkg/errors"
	"github.com/arthur-debert/scaffy/pkg/formatters"
)

// Wrapper holds the delimiters surrounding a token.
type Wrapper struct {
	Start string
	End   string
}

var (
	// Braces is the in-content convention: {{placeholder}}.
	Braces = Wrapper{Start: "{{", End: "}}"}
	// Bare is used for file names, where tokens appear without delimiters.
	Bare = Wrapper{}
)

// Wrap surrounds token with the delimiters.
func (w Wrapper) Wrap(token string) string {
	return w.Start + token + w.End
}

// Replacer substitutes every variant of one placeholder.
//
// Formatters run in order and each pass sees the output of the previous
// one. A token rendered by an earlier formatter can be a substring of a
// later one, so callers must list formatters whose tokens could be
// clobbered first.
type Replacer struct {
	Placeholder string
	Value       string
	Formatters  []formatters.Formatter
	Wrapper     Wrapper
}

// New builds a Replacer, rejecting placeholders that cannot form a token:
// an empty name, or one containing the wrapper's own delimiters.
func New(placeholder, value string, fs []formatters.Formatter, w Wrapper) (Replacer, error) {
	if placeholder == "" {
		return Replacer{}, errors.New(errors.ErrInvalidPlaceholder, "placeholder is empty")
	}
	for _, delim := range []string{w.Start, w.End} {
		if delim != "" && strings.Contains(placeholder, delim) {
			return Replacer{}, errors.Newf(errors.ErrInvalidPlaceholder,
				"placeholder %q contains delimiter %q", placeholder, delim).
				WithDetail("placeholder", placeholder)
		}
	}
	return Replacer{
		Placeholder: placeholder,
		Value:       value,
		Formatters:  fs,
		Wrapper:     w,
	}, nil
}

// ReplaceOn returns content with every token of the placeholder
// substituted. Tokens that do not occur are left alone.
func (r Replacer) ReplaceOn(content string) string {
	if len(r.Formatters) == 0 {
		return replaceToken(content, r.Wrapper.Wrap(r.Placeholder), r.Value)
	}

	for _, f := range r.Formatters {
		content = replaceToken(content, r.Wrapper.Wrap(f.Token(r.Placeholder)), f.Value(r.Value))
	}
	return content
}

// replaceToken is a literal replace-all that treats an empty token as
// absent instead of matching between every rune.
func replaceToken(content, token, replacement string) string {
	if token == "" {
		return content
	}
	return strings.ReplaceAll(content, token, replacement)
}
