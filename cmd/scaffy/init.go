package scaffy

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/arthur-debert/scaffy/pkg/discovery"
	"github.com/arthur-debert/scaffy/pkg/errors"
	"github.com/arthur-debert/scaffy/pkg/formatters"
	"github.com/arthur-debert/scaffy/pkg/logging"
	"github.com/arthur-debert/scaffy/pkg/scaffold"
	"github.com/arthur-debert/scaffy/pkg/ui/progress"
	"github.com/arthur-debert/scaffy/pkg/ui/prompt"
	"github.com/arthur-debert/scaffy/pkg/ui/styles"
	"github.com/spf13/cobra"
)

type initFlags struct {
	path            string
	exclude         []string
	values          string
	jobs            int
	continueOnError bool
	yes             bool
	deleteCLI       bool
	dontDeleteCLI   bool
}

func newInitCmd(a *app) *cobra.Command {
	var f initFlags

	cmd := &cobra.Command{
		Use:     "init [vendor] [package] [author] [author-email] [description]",
		Short:   MsgInitShort,
		Long:    MsgInitLong,
		Example: MsgInitExample,
		Args:    cobra.MaximumNArgs(5),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInit(cmd, args, f)
		},
	}

	cmd.Flags().StringVarP(&f.path, "path", "p", "", MsgFlagPath)
	cmd.Flags().StringArrayVarP(&f.exclude, "exclude", "e", nil, MsgFlagExclude)
	cmd.Flags().StringVar(&f.values, "values", "", MsgFlagValues)
	cmd.Flags().IntVarP(&f.jobs, "jobs", "j", 1, MsgFlagJobs)
	cmd.Flags().BoolVar(&f.continueOnError, "continue-on-error", false, MsgFlagContinueOnError)
	cmd.Flags().BoolVarP(&f.yes, "yes", "y", false, MsgFlagYes)
	cmd.Flags().BoolVar(&f.deleteCLI, "delete-cli", false, MsgFlagDeleteCLI)
	cmd.Flags().BoolVarP(&f.dontDeleteCLI, "dont-delete-cli", "d", false, MsgFlagDontDeleteCLI)
	cmd.MarkFlagsMutuallyExclusive("delete-cli", "dont-delete-cli")

	return cmd
}

// resolveRoot returns the absolute template directory.
func resolveRoot(path string) (string, error) {
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, errors.ErrFileAccess, "cannot determine the current directory")
		}
		path = wd
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput, "invalid path %s", path)
	}
	return abs, nil
}

// fieldsFromArgs maps positional arguments in declaration order.
func fieldsFromArgs(args []string) scaffold.Fields {
	get := func(i int) string {
		if i < len(args) {
			return args[i]
		}
		return ""
	}
	return scaffold.Fields{
		Vendor:      get(0),
		Package:     get(1),
		Author:      get(2),
		AuthorEmail: get(3),
		Description: get(4),
	}
}

// collectFields merges arguments with the values file.
func (a *app) collectFields(args []string, valuesPath string) (scaffold.Fields, error) {
	fields := fieldsFromArgs(args)
	if valuesPath == "" {
		return fields, nil
	}
	fromFile, err := scaffold.LoadValues(a.fs, valuesPath)
	if err != nil {
		return fields, err
	}
	return fields.Merge(fromFile), nil
}

// requireSlug rejects answers that slug to nothing.
func requireSlug(s string) error {
	if formatters.Slug(s, formatters.DefaultSeparator) == "" {
		return errors.New(errors.ErrInvalidInput, MsgErrRequired)
	}
	return nil
}

// askFields prompts for every empty field, suggesting defaults.
func askFields(ctx context.Context, p prompt.Prompter, fields scaffold.Fields) (scaffold.Fields, error) {
	questions := []struct {
		target    *string
		message   string
		fallback  string
		validator func(string) error
	}{
		{&fields.Vendor, MsgPromptVendor, "vendor", requireSlug},
		{&fields.Package, MsgPromptPackage, "package", requireSlug},
		{&fields.Author, MsgPromptAuthor, "John Doe", nil},
		{&fields.AuthorEmail, MsgPromptAuthorEmail, "john@doe.com", nil},
		{&fields.Description, MsgPromptDescription, "Lorem ipsum dolor it", nil},
	}

	for _, q := range questions {
		if *q.target != "" {
			continue
		}
		answer, err := p.Input(ctx, prompt.InputConfig{
			Message:   q.message,
			Default:   q.fallback,
			Validator: q.validator,
		})
		if err != nil {
			return fields, err
		}
		*q.target = answer
	}
	return fields, nil
}

// printConfiguration shows the normalized fields.
func printConfiguration(w io.Writer, fields scaffold.Fields) {
	fmt.Fprintln(w, styles.Render("Header", MsgUsingConfiguration))
	fmt.Fprintln(w, fields.Summary())
	fmt.Fprintln(w)
}

// confirmFields shows the configuration until the user accepts it. A
// rejection re-asks every field.
func (a *app) confirmFields(ctx context.Context, w io.Writer, fields scaffold.Fields, yes bool) (scaffold.Fields, error) {
	p := a.prompts()
	interactive := a.interactive()

	var err error
	if interactive {
		if fields, err = askFields(ctx, p, fields); err != nil {
			return fields, err
		}
	}

	for {
		if err := fields.Validate(); err != nil {
			return fields, err
		}
		printConfiguration(w, fields)
		if yes {
			return fields, nil
		}
		ok, err := p.Confirm(ctx, prompt.ConfirmConfig{Message: MsgConfirmConfig, Default: true})
		if err != nil {
			return fields, err
		}
		if ok {
			return fields, nil
		}
		if !interactive {
			return fields, errors.New(errors.ErrCancelled, MsgErrConfigAborted)
		}
		if fields, err = askFields(ctx, p, scaffold.Fields{}); err != nil {
			return fields, err
		}
	}
}

func (a *app) runInit(cmd *cobra.Command, args []string, f initFlags) error {
	logger := logging.GetLogger("cmd.init")
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	root, err := resolveRoot(f.path)
	if err != nil {
		return err
	}

	overrides := map[string]interface{}{}
	if cmd.Flags().Changed("jobs") {
		overrides["run.jobs"] = f.jobs
	}
	cfg, err := a.loadConfig(root, overrides)
	if err != nil {
		return err
	}
	cfg.Exclude.Paths = append(cfg.Exclude.Paths, f.exclude...)

	fields, err := a.collectFields(args, f.values)
	if err != nil {
		return err
	}
	fields, err = a.confirmFields(ctx, out, fields, f.yes)
	if err != nil {
		return err
	}

	files, err := discovery.Find(a.fs, root, discovery.Options{
		ExcludeDirectories: cfg.Exclude.Directories,
		ExcludePaths:       cfg.Exclude.Paths,
	})
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Fprintln(out, MsgNoFiles)
		return nil
	}

	rw, err := scaffold.NewRewriter(cfg, fields)
	if err != nil {
		return err
	}

	logger.Info().
		Str("root", root).
		Int("files", len(files)).
		Int("jobs", cfg.Run.Jobs).
		Bool("dryRun", a.dryRun).
		Msg("Initializing template")

	reporter := progress.New(cmd.ErrOrStderr(), MsgReplacing, isTerminal(cmd.ErrOrStderr()))
	result, err := scaffold.Run(ctx, rw, scaffold.Options{
		FS:              a.fs,
		Files:           files,
		DryRun:          a.dryRun,
		Jobs:            cfg.Run.Jobs,
		ContinueOnError: f.continueOnError,
		OnFile: func(fr scaffold.FileResult) {
			reporter.Update(fmt.Sprintf(MsgReplacingFile, filepath.Base(fr.Path)))
		},
	})
	if err != nil {
		reporter.Fail(MsgInitFailed)
		return err
	}
	reporter.Success(fmt.Sprintf(MsgInitDone, len(result.Files), result.Changed(), result.Renamed()))

	printResult(out, root, result)

	if failed := result.Failed(); len(failed) > 0 {
		return errors.Newf(errors.GetErrorCode(failed[0].Err), MsgErrFilesFailed, len(failed))
	}

	return a.maybeDeleteCLI(ctx, out, f)
}

// printResult lists what changed, relative to root.
func printResult(w io.Writer, root string, result *scaffold.Result) {
	rel := func(path string) string {
		if r, err := filepath.Rel(root, path); err == nil {
			return r
		}
		return path
	}

	for _, fr := range result.Files {
		switch {
		case fr.Err != nil:
			fmt.Fprint(w, styles.Render("Error", fmt.Sprintf(MsgFileFailed, rel(fr.Path), fr.Err)))
		case fr.Renamed:
			fmt.Fprintf(w, MsgFileRenamed, styles.Render("FilePath", rel(fr.Path)), styles.Render("Renamed", rel(fr.NewPath)))
		case fr.Changed:
			fmt.Fprintf(w, MsgFileChanged, styles.Render("FilePath", rel(fr.Path)))
		}
	}

	if result.DryRun {
		fmt.Fprintln(w)
		fmt.Fprintln(w, styles.Render("DryRunBanner", MsgDryRunNotice))
	}
}

// maybeDeleteCLI removes the binary when asked to, or when an interactive
// user confirms it.
func (a *app) maybeDeleteCLI(ctx context.Context, w io.Writer, f initFlags) error {
	if a.dryRun || f.dontDeleteCLI {
		return nil
	}
	if !f.deleteCLI {
		if !a.interactive() {
			return nil
		}
		ok, err := a.prompts().Confirm(ctx, prompt.ConfirmConfig{Message: MsgConfirmDeleteCLI})
		if err != nil || !ok {
			return err
		}
	}

	path, err := scaffold.DeleteExecutable(a.fs, a.executable)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, MsgCLIDeleted, path)
	return nil
}
