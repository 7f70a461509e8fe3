package scaffy

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/scaffy/internal/version"
	"github.com/arthur-debert/scaffy/pkg/config"
	"github.com/arthur-debert/scaffy/pkg/errors"
	"github.com/arthur-debert/scaffy/pkg/filesystem"
	"github.com/arthur-debert/scaffy/pkg/logging"
	"github.com/arthur-debert/scaffy/pkg/ui/prompt"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Options injects the collaborators commands use. Zero values select the
// real filesystem and terminal.
type Options struct {
	FS filesystem.FS
	// Prompter replaces terminal detection when set.
	Prompter prompt.Prompter
	// Executable locates the binary removed by init --delete-cli.
	Executable func() (string, error)
}

// app carries the global flags and collaborators shared by commands.
type app struct {
	fs         filesystem.FS
	prompter   prompt.Prompter
	executable func() (string, error)

	verbosity     int
	dryRun        bool
	noInteraction bool
	configPath    string
}

// interactive reports whether questions reach a user.
func (a *app) interactive() bool {
	if a.noInteraction {
		return false
	}
	if a.prompter != nil {
		return true
	}
	return prompt.IsInteractive(os.Stdin, os.Stdout)
}

// prompts returns the Prompter to ask questions with.
func (a *app) prompts() prompt.Prompter {
	switch {
	case a.noInteraction:
		return prompt.Defaults{}
	case a.prompter != nil:
		return a.prompter
	case prompt.IsInteractive(os.Stdin, os.Stdout):
		return prompt.NewSurvey()
	}
	return prompt.Defaults{}
}

// loadConfig loads the layered configuration for root.
func (a *app) loadConfig(root string, overrides map[string]interface{}) (*config.Config, error) {
	return config.Load(config.LoadOptions{
		ProjectRoot:    root,
		UserConfigPath: a.configPath,
		Overrides:      overrides,
	})
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return NewRootCmdWithOptions(Options{})
}

// NewRootCmdWithOptions creates the root command with injected
// collaborators.
func NewRootCmdWithOptions(opts Options) *cobra.Command {
	initTemplateFormatting()

	a := &app{fs: opts.FS, prompter: opts.Prompter, executable: opts.Executable}
	if a.fs == nil {
		a.fs = filesystem.NewOS()
	}

	rootCmd := &cobra.Command{
		Use:     "scaffy",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(a.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVar(&a.dryRun, "dry-run", false, MsgFlagDryRun)
	rootCmd.PersistentFlags().BoolVarP(&a.noInteraction, "no-interaction", "n", false, MsgFlagNoInteraction)
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", MsgFlagConfig)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(usageTemplate)

	rootCmd.AddCommand(newInitCmd(a))
	rootCmd.AddCommand(newStubCmd(a))
	rootCmd.AddCommand(newTokensCmd(a))
	rootCmd.AddCommand(newStripCmd(a))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			return genCompletion(cmd.Root(), args[0], cmd.OutOrStdout())
		},
	}
}

func genCompletion(root *cobra.Command, shell string, w io.Writer) error {
	switch shell {
	case "bash":
		return root.GenBashCompletionV2(w, true)
	case "zsh":
		return root.GenZshCompletion(w)
	case "fish":
		return root.GenFishCompletion(w, true)
	case "powershell":
		return root.GenPowerShellCompletionWithDesc(w)
	}
	return errors.Newf(errors.ErrInvalidInput, "unsupported shell %q", shell)
}
