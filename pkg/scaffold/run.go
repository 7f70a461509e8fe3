package scaffold

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/arthur-debert/scaffy/pkg/errors"
	"github.com/arthur-debert/scaffy/pkg/filesystem"
	"github.com/arthur-debert/scaffy/pkg/logging"
	"golang.org/x/sync/errgroup"
)

// Options controls a Run.
type Options struct {
	FS    filesystem.FS
	Files []string
	// DryRun computes every change without writing or renaming.
	DryRun bool
	// Jobs bounds how many files are processed at once. Values below 1
	// mean one.
	Jobs int
	// ContinueOnError records per-file failures and keeps going.
	ContinueOnError bool
	// OnFile, when set, is called after each file. Calls are serialised.
	OnFile func(FileResult)
}

// FileResult is the outcome for one file.
type FileResult struct {
	Path    string
	NewPath string
	Changed bool
	Renamed bool
	Err     error
}

// Result is the outcome of a Run, in input order.
type Result struct {
	Files  []FileResult
	DryRun bool
}

// Changed counts files whose content changed.
func (r *Result) Changed() int {
	n := 0
	for _, f := range r.Files {
		if f.Changed {
			n++
		}
	}
	return n
}

// Renamed counts renamed files.
func (r *Result) Renamed() int {
	n := 0
	for _, f := range r.Files {
		if f.Renamed {
			n++
		}
	}
	return n
}

// Failed returns the results that carry an error.
func (r *Result) Failed() []FileResult {
	var failed []FileResult
	for _, f := range r.Files {
		if f.Err != nil {
			failed = append(failed, f)
		}
	}
	return failed
}

// Run rewrites every file end to end: content first, then its name. Files
// may run in parallel, each file's substitutions stay sequential.
func Run(ctx context.Context, rw *Rewriter, opts Options) (*Result, error) {
	logger := logging.GetLogger("scaffold")
	defer logging.LogOperationStart(logger, "run")()

	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	jobs := opts.Jobs
	if jobs < 1 {
		jobs = 1
	}

	result := &Result{Files: make([]FileResult, len(opts.Files)), DryRun: opts.DryRun}
	targets := newClaims()

	var mu sync.Mutex
	report := func(fr FileResult) {
		if opts.OnFile == nil {
			return
		}
		mu.Lock()
		defer mu.Unlock()
		opts.OnFile(fr)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, path := range opts.Files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				result.Files[i] = FileResult{Path: path, NewPath: path, Err: err}
				return nil
			}

			fr := processFile(fsys, rw, targets, path, opts.DryRun)
			result.Files[i] = fr
			report(fr)

			if fr.Err != nil {
				logger.Error().Err(fr.Err).Str("file", path).Msg("failed to rewrite file")
				if !opts.ContinueOnError {
					return fr.Err
				}
				return nil
			}

			logger.Debug().
				Str("file", path).
				Str("newPath", fr.NewPath).
				Bool("changed", fr.Changed).
				Bool("renamed", fr.Renamed).
				Msg("rewrote file")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return result, err
	}

	logger.Info().
		Int("files", len(result.Files)).
		Int("changed", result.Changed()).
		Int("renamed", result.Renamed()).
		Bool("dryRun", opts.DryRun).
		Msg("scaffold run completed")

	return result, nil
}

// claims records rename targets taken during a run, so two files cannot
// land on the same name even when neither exists on disk yet.
type claims struct {
	mu    sync.Mutex
	taken map[string]string
}

func newClaims() *claims {
	return &claims{taken: map[string]string{}}
}

// claim reserves target for source. It fails when target exists on disk or
// another file already claimed it.
func (c *claims) claim(fsys filesystem.FS, source, target string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if owner, ok := c.taken[target]; ok {
		return errors.Newf(errors.ErrAlreadyExists, "cannot rename %s: %s is already the target of %s", source, target, owner).
			WithDetail("target", target)
	}
	if filesystem.Exists(fsys, target) {
		return errors.Newf(errors.ErrAlreadyExists, "cannot rename %s: %s already exists", source, target).
			WithDetail("target", target)
	}
	c.taken[target] = source
	return nil
}

// processFile reads, rewrites and renames one file. The rename target is
// checked before anything is written, so a conflict leaves the file as it
// was.
func processFile(fsys filesystem.FS, rw *Rewriter, targets *claims, path string, dryRun bool) FileResult {
	fr := FileResult{Path: path, NewPath: path}

	info, err := fsys.Stat(path)
	if err != nil {
		fr.Err = errors.Wrapf(err, errors.ErrFileNotFound, "cannot stat %s", path)
		return fr
	}

	data, err := fsys.ReadFile(path)
	if err != nil {
		fr.Err = errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", path)
		return fr
	}

	content, err := rw.Content(string(data))
	if err != nil {
		fr.Err = errors.Wrapf(err, errors.GetErrorCode(err), "cannot rewrite %s", path)
		return fr
	}
	changed := content != string(data)

	base := filepath.Base(path)
	newBase, err := rw.FileName(base)
	if err != nil {
		fr.Err = errors.Wrapf(err, errors.GetErrorCode(err), "cannot rename %s", path)
		return fr
	}
	newPath := path
	if newBase != base && newBase != "" {
		newPath = filepath.Join(filepath.Dir(path), newBase)
		if err := targets.claim(fsys, path, newPath); err != nil {
			fr.Err = err
			return fr
		}
	}

	if changed && !dryRun {
		if err := fsys.WriteFile(path, []byte(content), info.Mode().Perm()); err != nil {
			fr.Err = errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", path)
			return fr
		}
	}
	fr.Changed = changed

	if newPath == path {
		return fr
	}
	if !dryRun {
		if err := fsys.Rename(path, newPath); err != nil {
			fr.Err = errors.Wrapf(err, errors.ErrFileRename, "cannot rename %s to %s", path, newPath)
			return fr
		}
	}
	fr.NewPath = newPath
	fr.Renamed = true
	return fr
}
