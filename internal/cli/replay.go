package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gomdedit/pkg/engine"
)

func newReplayCommand(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay <file> <script>",
		Short: "Replay an edit script and report each rendering decision",
		Long: `Apply an edit script to a Markdown file one edit at a time and print the
engine's decision for each: the edited paragraph's type transition, whether a
full-paragraph re-tag was required, the cursor restore target, and every
other paragraph invalidated by code block membership changes.

Scripts are plain text, one edit per line:

    @offset,length:replacement

The replacement may use \n and \\ escapes. Lines starting with '#' are
comments.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplay(cmd, args[0], args[1], flags)
		},
	}

	return cmd
}

func runReplay(cmd *cobra.Command, path, scriptPath string, flags *rootFlags) error {
	doc, _, err := loadDocument(path, flags)
	if err != nil {
		return err
	}

	script, err := os.ReadFile(scriptPath)
	if err != nil {
		return fmt.Errorf("read %s: %w", scriptPath, err)
	}
	edits, err := engine.ParseScript(script)
	if err != nil {
		return err
	}

	styles := outputStyles(flags)
	out := cmd.OutOrStdout()
	for i, e := range edits {
		dec := doc.Apply(e)

		transition := fmt.Sprintf("%s -> %s", dec.Previous, dec.Current)
		if dec.TypeChanged {
			transition = styles.Bold.Render(transition)
		}

		fmt.Fprintf(out, "%s @%d,%d:%q paragraph=%d %s full_retag=%v cursor=%d",
			styles.Kind.Render(fmt.Sprintf("edit %d", i)),
			e.Start, e.Length, e.Text, dec.Edited, transition, dec.FullRetag, dec.CursorRestore)
		if len(dec.Invalidate) > 0 {
			fmt.Fprintf(out, " invalidate=%s", formatIndices(dec.Invalidate))
		}
		fmt.Fprintln(out)
	}

	return nil
}

func formatIndices(indices []int) string {
	parts := make([]string, len(indices))
	for i, idx := range indices {
		parts[i] = fmt.Sprintf("%d", idx)
	}
	return "[" + strings.Join(parts, ",") + "]"
}
