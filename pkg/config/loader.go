package config

import (
	_ "embed"
	stderrors "errors"
	"os"
	"strings"

	"github.com/arthur-debert/scaffy/pkg/errors"
	"github.com/arthur-debert/scaffy/pkg/logging"
	"github.com/arthur-debert/scaffy/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables read as configuration.
const EnvPrefix = "SCAFFY_"

//go:embed embedded/defaults.toml
var defaultConfig []byte

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, stderrors.New("not implemented")
}

// DefaultContent returns the embedded default configuration file.
func DefaultContent() string {
	return string(defaultConfig)
}

// LoadOptions selects the sources Load reads.
type LoadOptions struct {
	// ProjectRoot is searched for .scaffy.toml. Empty skips the project layer.
	ProjectRoot string
	// UserConfigPath overrides the user config location. Empty uses the
	// XDG location.
	UserConfigPath string
	// SkipUserConfig disables the user layer, for tests.
	SkipUserConfig bool
	// Overrides are applied last, keyed by dotted path ("run.jobs").
	Overrides map[string]interface{}
}

// Load merges every configured source and validates the result.
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	if !opts.SkipUserConfig {
		userPath := opts.UserConfigPath
		if userPath == "" {
			userPath = paths.UserConfigPath()
		}
		if err := loadFileIfExists(k, userPath); err != nil {
			return nil, err
		}
	}

	if opts.ProjectRoot != "" {
		if err := loadFileIfExists(k, paths.ProjectConfigPath(opts.ProjectRoot)); err != nil {
			return nil, err
		}
	}

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".", 1)
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if cfg.Run.Jobs == 0 {
		cfg.Run.Jobs = 1
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Debug().
		Strs("excludeDirs", cfg.Exclude.Directories).
		Strs("excludePaths", cfg.Exclude.Paths).
		Int("jobs", cfg.Run.Jobs).
		Msg("configuration loaded")

	return &cfg, nil
}

// loadFileIfExists merges a TOML file when present. A missing file is not
// an error, an unreadable or malformed one is.
func loadFileIfExists(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, errors.ErrConfigLoad, "failed to stat %s", path)
	}
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path)
	}
	return nil
}
