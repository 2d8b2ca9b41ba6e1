package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gomdedit/pkg/export"
)

func newPreviewCommand() *cobra.Command {
	var active int

	cmd := &cobra.Command{
		Use:   "preview <file>",
		Short: "Export a document as HTML preview",
		Long: `Render a Markdown file to HTML the way the formatted (non-active) panes
present it. With --active, the given paragraph is emitted as raw source
instead, matching the hybrid presentation of the paragraph under the cursor.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, args[0], active)
		},
	}

	cmd.Flags().IntVar(&active, "active", -1, "paragraph index to render as raw source")

	return cmd
}

func runPreview(cmd *cobra.Command, path string, active int) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	var out []byte
	if active >= 0 {
		out, err = export.HTMLWithActive(data, active)
	} else {
		out, err = export.HTML(data)
	}
	if err != nil {
		return err
	}

	_, err = cmd.OutOrStdout().Write(out)
	return err
}
