package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gomdedit/internal/ui/pretty"
	"github.com/yaklabco/gomdedit/pkg/mdtoken"
)

func newTokensCommand(flags *rootFlags) *cobra.Command {
	var only int

	cmd := &cobra.Command{
		Use:   "tokens <file>",
		Short: "Dump the tokenizer output for every paragraph",
		Long: `Tokenize each paragraph of a Markdown file independently and print the
resulting token stream: element kinds, content ranges, and syntax ranges.

With --paragraph, only that paragraph is dumped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTokens(cmd, args[0], only, flags)
		},
	}

	cmd.Flags().IntVar(&only, "paragraph", -1, "dump a single paragraph index")

	return cmd
}

func runTokens(cmd *cobra.Command, path string, only int, flags *rootFlags) error {
	doc, cfg, err := loadDocument(path, flags)
	if err != nil {
		return err
	}

	styles := outputStyles(flags)
	out := cmd.OutOrStdout()
	for i, text := range doc.Paragraphs() {
		if only >= 0 && i != only {
			continue
		}
		fmt.Fprintf(out, "%s\n", styles.Bold.Render(fmt.Sprintf("paragraph %d: %q", i, text)))
		fmt.Fprint(out, pretty.FormatTokens(styles, text, mdtoken.ParseIndent(text, cfg.TabWidth)))
	}
	return nil
}
