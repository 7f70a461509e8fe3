// Package discovery lists the template files a run rewrites.
package discovery

import (
	"os"
	"path/filepath"
	"slices"

	"github.com/arthur-debert/scaffy/pkg/errors"
	"github.com/arthur-debert/scaffy/pkg/filesystem"
	"github.com/arthur-debert/scaffy/pkg/logging"
	"github.com/bmatcuk/doublestar/v4"
)

// Options controls which files Find returns. Both lists come from
// configuration.
type Options struct {
	// ExcludeDirectories are directory names skipped at any depth.
	ExcludeDirectories []string
	// ExcludePaths are doublestar globs matched against the slash path
	// relative to the root. A matching directory is skipped whole.
	ExcludePaths []string
}

// Find walks root and returns the files to process, sorted by path.
// Dot files are included.
func Find(fsys filesystem.FS, root string, opts Options) ([]string, error) {
	logger := logging.GetLogger("discovery")

	for _, pattern := range opts.ExcludePaths {
		if !doublestar.ValidatePattern(pattern) {
			return nil, errors.Newf(errors.ErrInvalidInput, "invalid exclude pattern %q", pattern).
				WithDetail("pattern", pattern)
		}
	}

	info, err := fsys.Stat(root)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrNotFound, "cannot read %s", root)
	}
	if !info.IsDir() {
		return nil, errors.Newf(errors.ErrInvalidInput, "%s is not a directory", root)
	}

	var files []string
	err = fsys.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if info.IsDir() {
			if slices.Contains(opts.ExcludeDirectories, info.Name()) || matchesAny(opts.ExcludePaths, rel) {
				logger.Trace().Str("dir", rel).Msg("skipping excluded directory")
				return filepath.SkipDir
			}
			return nil
		}

		if matchesAny(opts.ExcludePaths, rel) {
			logger.Trace().Str("file", rel).Msg("skipping excluded file")
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to walk %s", root)
	}

	slices.Sort(files)
	logger.Debug().Str("root", root).Int("files", len(files)).Msg("discovered files")
	return files, nil
}

// matchesAny reports whether the relative slash path matches any glob.
func matchesAny(patterns []string, rel string) bool {
	for _, pattern := range patterns {
		if pattern == "" {
			continue
		}
		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			return true
		}
	}
	return false
}
