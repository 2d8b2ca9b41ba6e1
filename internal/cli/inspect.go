package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gomdedit/internal/ui/pretty"
)

func newInspectCommand(flags *rootFlags) *cobra.Command {
	var cursor int

	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Show the engine's per-paragraph classification of a document",
		Long: `Run the full analysis pipeline over a Markdown file and print each
paragraph's display type, fence block class, and language hint.

With --cursor, the paragraph under that offset is marked active, the way a
viewer attached at that position would present it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args[0], cursor, flags)
		},
	}

	cmd.Flags().IntVar(&cursor, "cursor", -1, "cursor offset marking the active paragraph")

	return cmd
}

func runInspect(cmd *cobra.Command, path string, cursor int, flags *rootFlags) error {
	doc, _, err := loadDocument(path, flags)
	if err != nil {
		return err
	}

	active := -1
	if cursor >= 0 {
		if idx, ok := doc.Index().IndexForOffset(cursor); ok {
			active = idx
		}
	}

	snap := doc.Snapshot()
	rows := make([]pretty.ParagraphRow, 0, len(snap.Paragraphs))
	for i, text := range snap.Paragraphs {
		row := pretty.ParagraphRow{
			Index:  i,
			Type:   snap.Types[i].String(),
			Class:  doc.Blocks().ClassOf(i).String(),
			Text:   text,
			Active: i == active,
		}
		if lang, ok := doc.BlockLang(i); ok {
			row.Lang = lang
		}
		rows = append(rows, row)
	}

	formatter := pretty.NewParagraphFormatter(outputStyles(flags), termWidth())
	fmt.Fprint(cmd.OutOrStdout(), formatter.Format(rows))
	return nil
}
