// Package config loads scaffy's layered configuration.
//
// Sources are merged in order, later ones winning:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user config, $XDG_CONFIG_HOME/scaffy/config.toml
//  3. the project config, .scaffy.toml in the directory being initialised
//  4. SCAFFY_* environment variables (SCAFFY_RUN_JOBS -> run.jobs)
//  5. explicit overrides, usually from command-line flags
//
// Lists are replaced, not appended, when a later source sets them.
package config

import (
	"github.com/arthur-debert/scaffy/pkg/errors"
	"github.com/arthur-debert/scaffy/pkg/formatters"
	"github.com/arthur-debert/scaffy/pkg/replacer"
)

// Config is the fully merged configuration.
type Config struct {
	Exclude    Exclude             `koanf:"exclude"`
	Wrapper    Wrapper             `koanf:"wrapper"`
	Tags       Tags                `koanf:"tags"`
	Formatters map[string][]string `koanf:"formatters"`
	Rename     Rename              `koanf:"rename"`
	Stub       Stub                `koanf:"stub"`
	Run        Run                 `koanf:"run"`
}

// Exclude lists what file discovery skips.
type Exclude struct {
	Directories []string `koanf:"directories"`
	Paths       []string `koanf:"paths"`
}

// Wrapper holds the in-content token delimiters.
type Wrapper struct {
	Start string `koanf:"start"`
	End   string `koanf:"end"`
}

// Tags lists the block tags stripped from content.
type Tags struct {
	Delete []string `koanf:"delete"`
}

// Rename configures file name rewriting.
type Rename struct {
	StripSuffix string   `koanf:"strip_suffix"`
	Formatters  []string `koanf:"formatters"`
}

// Stub configures stub generation.
type Stub struct {
	Extension     string   `koanf:"extension"`
	RootNamespace string   `koanf:"root_namespace"`
	Reserved      []string `koanf:"reserved"`
}

// Run tunes execution.
type Run struct {
	Jobs int `koanf:"jobs"`
}

// ContentWrapper returns the configured delimiters as a replacer.Wrapper.
func (c *Config) ContentWrapper() replacer.Wrapper {
	return replacer.Wrapper{Start: c.Wrapper.Start, End: c.Wrapper.End}
}

// FormattersFor resolves the formatter list configured for field. A field
// with no entry gets an empty list, meaning direct substitution.
func (c *Config) FormattersFor(field string) ([]formatters.Formatter, error) {
	list, err := formatters.ParseList(c.Formatters[field])
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigValid, "formatters.%s", field)
	}
	return list, nil
}

// RenameFormatters resolves the formatter list used on file names.
func (c *Config) RenameFormatters() ([]formatters.Formatter, error) {
	list, err := formatters.ParseList(c.Rename.Formatters)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigValid, "rename.formatters")
	}
	return list, nil
}

// Validate checks values the loader cannot check by type alone.
func (c *Config) Validate() error {
	if (c.Wrapper.Start == "") != (c.Wrapper.End == "") {
		return errors.New(errors.ErrConfigValid, "wrapper.start and wrapper.end must both be set or both be empty")
	}
	for field := range c.Formatters {
		if _, err := c.FormattersFor(field); err != nil {
			return err
		}
	}
	if _, err := c.RenameFormatters(); err != nil {
		return err
	}
	if c.Run.Jobs < 0 {
		return errors.Newf(errors.ErrConfigValid, "run.jobs must not be negative, got %d", c.Run.Jobs)
	}
	return nil
}
