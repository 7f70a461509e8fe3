package scaffy

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/scaffy/pkg/scaffold"
	"github.com/spf13/cobra"
)

func newTokensCmd(a *app) *cobra.Command {
	var (
		path   string
		values string
	)

	cmd := &cobra.Command{
		Use:     "tokens [vendor] [package] [author] [author-email] [description]",
		Short:   MsgTokensShort,
		Long:    MsgTokensLong,
		Args:    cobra.MaximumNArgs(5),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := resolveRoot(path)
			if err != nil {
				return err
			}
			cfg, err := a.loadConfig(root, nil)
			if err != nil {
				return err
			}
			fields, err := a.collectFields(args, values)
			if err != nil {
				return err
			}
			tokens, err := scaffold.Tokens(cfg, fields)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, markdownFor(out).Render(tokensMarkdown(tokens)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&path, "path", "p", "", MsgFlagPath)
	cmd.Flags().StringVar(&values, "values", "", MsgFlagValues)

	return cmd
}

// tokensMarkdown renders the token reference as markdown tables.
func tokensMarkdown(tokens []scaffold.Token) string {
	var b strings.Builder
	b.WriteString("# Tokens\n")

	section := func(title string, fileName bool) {
		fmt.Fprintf(&b, "\n## %s\n\n", title)
		b.WriteString("| Field | Formatter | Token | Value |\n")
		b.WriteString("| --- | --- | --- | --- |\n")
		for _, t := range tokens {
			if t.FileName != fileName {
				continue
			}
			formatter := t.Formatter
			if formatter == "" {
				formatter = "-"
			}
			value := "_unset_"
			if t.Value != "" {
				value = "`" + strings.ReplaceAll(t.Value, "|", `\|`) + "`"
			}
			fmt.Fprintf(&b, "| %s | %s | `%s` | %s |\n", t.Field, formatter, t.Text, value)
		}
	}

	section("Content", false)
	section("File names", true)
	return b.String()
}
