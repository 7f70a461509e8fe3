// Package progress reports long running work on the terminal.
package progress

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
)

// Reporter shows the state of one unit of work.
type Reporter interface {
	Update(text string)
	Success(text string)
	Fail(text string)
}

// New starts a spinner writing to w. When animated is false, for pipes and
// logs, only the final line is written.
func New(w io.Writer, text string, animated bool) Reporter {
	if !animated {
		return &plain{w: w}
	}
	spinner, err := pterm.DefaultSpinner.
		WithWriter(w).
		WithRemoveWhenDone(false).
		Start(text)
	if err != nil {
		return &plain{w: w}
	}
	return &spinnerReporter{spinner: spinner}
}

type spinnerReporter struct {
	spinner *pterm.SpinnerPrinter
}

func (s *spinnerReporter) Update(text string) {
	s.spinner.UpdateText(text)
}

func (s *spinnerReporter) Success(text string) {
	s.spinner.Success(text)
}

func (s *spinnerReporter) Fail(text string) {
	s.spinner.Fail(text)
}

type plain struct {
	w io.Writer
}

func (p *plain) Update(string) {}

func (p *plain) Success(text string) {
	fmt.Fprintln(p.w, text)
}

func (p *plain) Fail(text string) {
	fmt.Fprintln(p.w, text)
}
