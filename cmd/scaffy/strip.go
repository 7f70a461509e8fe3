package scaffy

import (
	"fmt"

	"github.com/arthur-debert/scaffy/pkg/errors"
	"github.com/arthur-debert/scaffy/pkg/logging"
	"github.com/arthur-debert/scaffy/pkg/scaffold"
	"github.com/spf13/cobra"
)

func newStripCmd(a *app) *cobra.Command {
	var tagNames []string

	cmd := &cobra.Command{
		Use:     "strip <file>...",
		Short:   MsgStripShort,
		Long:    MsgStripLong,
		Args:    cobra.MinimumNArgs(1),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.strip")

			if len(tagNames) == 0 {
				root, err := resolveRoot("")
				if err != nil {
					return err
				}
				cfg, err := a.loadConfig(root, nil)
				if err != nil {
					return err
				}
				tagNames = cfg.Tags.Delete
			}

			out := cmd.OutOrStdout()
			for _, path := range args {
				info, err := a.fs.Stat(path)
				if err != nil {
					return errors.Wrapf(err, errors.ErrFileNotFound, "cannot stat %s", path)
				}
				data, err := a.fs.ReadFile(path)
				if err != nil {
					return errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", path)
				}

				content := scaffold.StripTags(string(data), tagNames)
				if content == string(data) {
					fmt.Fprintf(out, MsgStripUnchanged, path)
					continue
				}

				if !a.dryRun {
					if err := a.fs.WriteFile(path, []byte(content), info.Mode().Perm()); err != nil {
						return errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", path)
					}
				}
				logger.Info().Str("file", path).Strs("tags", tagNames).Bool("dryRun", a.dryRun).Msg("Stripped tags")
				fmt.Fprintf(out, MsgStripped, path)
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&tagNames, "tag", nil, MsgFlagTag)

	return cmd
}
