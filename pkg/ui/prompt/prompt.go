// Package prompt asks the user for field values and confirmations.
//
// Commands depend on the Prompter interface so tests can script answers
// and non-interactive runs can fall back to defaults.
package prompt

import (
	"context"
	stderrors "errors"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/arthur-debert/scaffy/pkg/errors"
	"github.com/mattn/go-isatty"
)

// InputConfig configures a text prompt.
type InputConfig struct {
	Message   string
	Default   string
	Help      string
	Validator func(string) error
}

// ConfirmConfig configures a yes/no prompt.
type ConfirmConfig struct {
	Message string
	Default bool
	Help    string
}

// Prompter abstracts the terminal so prompts can be scripted.
type Prompter interface {
	Input(ctx context.Context, cfg InputConfig) (string, error)
	Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error)
}

// IsInteractive reports whether both files are terminals.
func IsInteractive(in, out *os.File) bool {
	isTerm := func(f *os.File) bool {
		return f != nil && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
	}
	return isTerm(in) && isTerm(out)
}

type surveyPrompter struct{}

// NewSurvey returns a Prompter reading from the process terminal.
func NewSurvey() Prompter {
	return &surveyPrompter{}
}

func (p *surveyPrompter) Input(ctx context.Context, cfg InputConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", errors.Wrap(err, errors.ErrCancelled, "prompt cancelled")
	}
	var out string
	q := &survey.Input{
		Message: cfg.Message,
		Help:    cfg.Help,
		Default: cfg.Default,
	}
	var opts []survey.AskOpt
	if cfg.Validator != nil {
		validate := cfg.Validator
		opts = append(opts, survey.WithValidator(func(ans interface{}) error {
			s, _ := ans.(string)
			return validate(s)
		}))
	}
	if err := survey.AskOne(q, &out, opts...); err != nil {
		return "", translate(err)
	}
	return out, nil
}

func (p *surveyPrompter) Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, errors.Wrap(err, errors.ErrCancelled, "prompt cancelled")
	}
	var out bool
	q := &survey.Confirm{
		Message: cfg.Message,
		Help:    cfg.Help,
		Default: cfg.Default,
	}
	if err := survey.AskOne(q, &out); err != nil {
		return false, translate(err)
	}
	return out, nil
}

func translate(err error) error {
	if stderrors.Is(err, terminal.InterruptErr) {
		return errors.Wrap(err, errors.ErrCancelled, "aborted by user")
	}
	return errors.Wrap(err, errors.ErrInternal, "prompt failed")
}

// Defaults answers every prompt with its default, for non-interactive
// runs. An input whose default fails validation is an error.
type Defaults struct{}

func (Defaults) Input(ctx context.Context, cfg InputConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", errors.Wrap(err, errors.ErrCancelled, "prompt cancelled")
	}
	if cfg.Validator != nil {
		if err := cfg.Validator(cfg.Default); err != nil {
			return "", errors.Wrapf(err, errors.ErrInvalidInput, "%s", cfg.Message)
		}
	}
	return cfg.Default, nil
}

func (Defaults) Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, errors.Wrap(err, errors.ErrCancelled, "prompt cancelled")
	}
	return cfg.Default, nil
}
