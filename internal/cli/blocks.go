package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newBlocksCommand(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "blocks <file>",
		Short: "Show fenced code block tracking for a document",
		Long: `Scan a Markdown file's paragraphs for fenced code blocks and print each
block's opening and closing fence indices and language hint. Unterminated
blocks run to the end of the document; their language can be auto-detected
from the block content when the fence carries no info string.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBlocks(cmd, args[0], flags)
		},
	}

	return cmd
}

func runBlocks(cmd *cobra.Command, path string, flags *rootFlags) error {
	doc, _, err := loadDocument(path, flags)
	if err != nil {
		return err
	}

	styles := outputStyles(flags)
	out := cmd.OutOrStdout()
	blocks := doc.Blocks().Blocks()
	if len(blocks) == 0 {
		fmt.Fprintln(out, styles.Dim.Render("no fenced code blocks"))
		return nil
	}

	for _, b := range blocks {
		closing := fmt.Sprintf("%d", b.Close)
		if b.Unterminated() {
			closing = styles.Active.Render("unterminated")
		}
		lang := b.Lang
		if lang == "" {
			if detected, ok := doc.BlockLang(b.Open); ok && detected != "" {
				lang = detected + styles.Dim.Render(" (detected)")
			}
		}
		fmt.Fprintf(out, "%s open=%d close=%s lang=%s\n",
			styles.Code.Render("block"), b.Open, closing, styles.Lang.Render(lang))
	}
	return nil
}
