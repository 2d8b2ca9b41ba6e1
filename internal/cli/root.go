// Package cli provides the Cobra command structure for gomdedit.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/gomdedit/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// rootFlags are the persistent flags shared by every subcommand.
type rootFlags struct {
	debug      bool
	configPath string
	color      string
}

// NewRootCommand creates the root gomdedit command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "gomdedit",
		Short: "Inspection tools for the gomdedit Markdown editing engine",
		Long: `gomdedit is a hybrid-WYSIWYG Markdown editing engine: the paragraph
under the cursor shows raw Markdown syntax while every other paragraph shows
formatted text with syntax hidden.

This CLI exposes the engine's analysis pipeline for debugging: per-paragraph
classification, token streams, fenced code block tracking, HTML preview
export, and edit-script replay.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if flags.debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&flags.color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newInspectCommand(flags))
	rootCmd.AddCommand(newTokensCommand(flags))
	rootCmd.AddCommand(newBlocksCommand(flags))
	rootCmd.AddCommand(newPreviewCommand())
	rootCmd.AddCommand(newReplayCommand(flags))
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
