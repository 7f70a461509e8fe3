package scaffold

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/scaffy/pkg/errors"
	"github.com/arthur-debert/scaffy/pkg/filesystem"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// LoadValues reads Fields from a .toml, .yaml or .yml file. Unknown keys
// are rejected so a misspelt field does not silently stay a placeholder.
func LoadValues(fsys filesystem.FS, path string) (Fields, error) {
	var f Fields

	data, err := fsys.ReadFile(path)
	if err != nil {
		return f, errors.Wrapf(err, errors.ErrFileAccess, "cannot read values file %s", path)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&f); err != nil {
			return f, errors.Wrapf(err, errors.ErrConfigParse, "invalid values file %s", path)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		// an empty document decodes to io.EOF
		if err := dec.Decode(&f); err != nil && len(bytes.TrimSpace(data)) > 0 {
			return f, errors.Wrapf(err, errors.ErrConfigParse, "invalid values file %s", path)
		}
	default:
		return f, errors.Newf(errors.ErrInvalidInput, "unsupported values file type %q", ext).
			WithDetail("path", path)
	}

	return f, nil
}
