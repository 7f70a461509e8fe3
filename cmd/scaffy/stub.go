package scaffy

import (
	"fmt"

	"github.com/arthur-debert/scaffy/pkg/errors"
	"github.com/arthur-debert/scaffy/pkg/stub"
	"github.com/spf13/cobra"
)

type stubFlags struct {
	output        string
	template      string
	rootNamespace string
	extension     string
	force         bool
}

func newStubCmd(a *app) *cobra.Command {
	var f stubFlags

	cmd := &cobra.Command{
		Use:     "stub <name>",
		Short:   MsgStubShort,
		Long:    MsgStubLong,
		Args:    cobra.ExactArgs(1),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runStub(cmd, args[0], f)
		},
	}

	cmd.Flags().StringVarP(&f.output, "output", "o", ".", MsgFlagOutput)
	cmd.Flags().StringVarP(&f.template, "template", "t", "", MsgFlagTemplate)
	cmd.Flags().StringVar(&f.rootNamespace, "root-namespace", "", MsgFlagRootNamespace)
	cmd.Flags().StringVar(&f.extension, "extension", "", MsgFlagExtension)
	cmd.Flags().BoolVarP(&f.force, "force", "f", false, MsgFlagForce)

	return cmd
}

func (a *app) runStub(cmd *cobra.Command, name string, f stubFlags) error {
	root, err := resolveRoot("")
	if err != nil {
		return err
	}
	cfg, err := a.loadConfig(root, nil)
	if err != nil {
		return err
	}

	opts := stub.Options{
		Name:          name,
		RootNamespace: cfg.Stub.RootNamespace,
		OutputDir:     f.output,
		Extension:     cfg.Stub.Extension,
		Reserved:      cfg.Stub.Reserved,
		Force:         f.force,
	}
	if f.rootNamespace != "" {
		opts.RootNamespace = f.rootNamespace
	}
	if f.extension != "" {
		opts.Extension = f.extension
	}
	if f.template != "" {
		data, err := a.fs.ReadFile(f.template)
		if err != nil {
			return errors.Wrapf(err, errors.ErrFileAccess, "cannot read template %s", f.template)
		}
		opts.Template = string(data)
	}

	out := cmd.OutOrStdout()
	if a.dryRun {
		s, err := stub.Render(opts)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, s.Path)
		fmt.Fprint(out, s.Content)
		return nil
	}

	s, err := stub.Generate(a.fs, opts)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, MsgStubCreated, s.Path)
	return nil
}
