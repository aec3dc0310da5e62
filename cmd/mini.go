// Package cmd implements the command-line interface for dstweak.
package cmd

import (
	"github.com/dstweak-cli/dstweak/mini"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(miniCmd)

	miniCmd.Flags().BoolP("continue", "c", false, "Reopen the most recently edited game")
}

// miniCmd launches the editor as a sequence of prompts instead of the full TUI.
var miniCmd = &cobra.Command{
	Use:               "mini [game]",
	Short:             "Edit settings through a lightweight sequence of prompts",
	Long:              `Edit per-game settings through sequential prompts, for SSH sessions and terminals the full-screen editor cannot draw on.`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionGameArg,
	Run: func(cmd *cobra.Command, args []string) {
		EnsureStorageConfigured()

		options := mini.Options{
			Continue: lo.Must(cmd.Flags().GetBool("continue")),
		}
		if len(args) > 0 {
			path, err := resolveGamePath(args[0])
			handleErr(err)
			options.Path = path
		}

		err := mini.Run(&options)

		if err != nil && err.Error() != "interrupt" {
			handleErr(err)
		}
	},
}
