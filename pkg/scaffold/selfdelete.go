package scaffold

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/scaffy/pkg/errors"
	"github.com/arthur-debert/scaffy/pkg/filesystem"
	"github.com/arthur-debert/scaffy/pkg/logging"
)

// DeleteExecutable removes the running binary, for templates that ship
// scaffy alongside the files it initialises. locate finds the binary and
// defaults to os.Executable. It returns the removed path.
func DeleteExecutable(fsys filesystem.FS, locate func() (string, error)) (string, error) {
	if locate == nil {
		locate = os.Executable
	}
	path, err := locate()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrNotFound, "cannot locate the scaffy executable")
	}
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		path = resolved
	}

	if err := fsys.Remove(path); err != nil {
		return "", errors.Wrapf(err, errors.ErrFileWrite, "cannot delete %s", path)
	}

	logger := logging.GetLogger("scaffold")
	logger.Info().Str("path", path).Msg("deleted executable")
	return path, nil
}
