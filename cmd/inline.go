// Package cmd implements the command-line interface for dstweak.
package cmd

import (
	"io"
	"os"

	"github.com/dstweak-cli/dstweak/filesystem"
	"github.com/dstweak-cli/dstweak/inline"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inlineCmd)

	inlineCmd.Flags().StringP("game", "g", "", "The game file to resolve settings for")
	inlineCmd.Flags().BoolP("json", "j", false, "Format the command output as a JSON object")
	inlineCmd.Flags().StringP("output", "o", "", "Specify a file path to write the command output")

	lo.Must0(inlineCmd.MarkFlagRequired("game"))
	lo.Must0(inlineCmd.RegisterFlagCompletionFunc("game", completionGameArg))
}

// inlineCmd executes the application in non-interactive, scriptable inline mode.
var inlineCmd = &cobra.Command{
	Use:   "inline",
	Short: "Execute the application in non-interactive, scriptable inline mode",
	Long: `Resolve the settings of a game without opening the editor.

The plain output prints one field per line as name = value. The json flag
switches to a single JSON document carrying the game identity, the console
capabilities, the stored overrides and the resolved boot values.`,
	Run: func(cmd *cobra.Command, args []string) {
		EnsureStorageConfigured()

		path, err := resolveGamePath(lo.Must(cmd.Flags().GetString("game")))
		handleErr(err)

		output := lo.Must(cmd.Flags().GetString("output"))
		var writer io.Writer
		if output != "" {
			writer, err = filesystem.API().Create(output)
			handleErr(err)
		} else {
			writer = os.Stdout
		}

		options := &inline.Options{
			Out:  writer,
			Path: path,
			Json: lo.Must(cmd.Flags().GetBool("json")),
		}

		handleErr(inline.Run(options))
	},
}

func init() {
	inlineCmd.AddCommand(inlineSchemaCmd)
}

// inlineSchemaCmd generates the JSON schema for the structured inline output.
var inlineSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate the JSON schema for the structured inline output",
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(inline.Schema(os.Stdout))
	},
}
