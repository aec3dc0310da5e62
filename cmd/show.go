// Package cmd implements the command-line interface for dstweak.
package cmd

import (
	"fmt"
	"os"

	"github.com/dstweak-cli/dstweak/color"
	"github.com/dstweak-cli/dstweak/icon"
	"github.com/dstweak-cli/dstweak/inline"
	"github.com/dstweak-cli/dstweak/settings"
	"github.com/dstweak-cli/dstweak/style"
	"github.com/dstweak-cli/dstweak/title"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON object")
	showCmd.SetOut(os.Stdout)
}

// showCmd displays the stored overrides and effective boot values for a game.
var showCmd = &cobra.Command{
	Use:               "show [game]",
	Short:             "Display the stored overrides and effective boot values for a game",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionGameArg,
	Run: func(cmd *cobra.Command, args []string) {
		EnsureStorageConfigured()

		path, err := resolveGamePath(args[0])
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(inline.Run(&inline.Options{Path: path, Json: true, Out: cmd.OutOrStdout()}))
			return
		}

		info := title.Classify(path)
		overrides := settings.Load(info.Key)
		ctx := settings.NewContext(info)

		headerStyle := style.New().Bold(true).Foreground(color.HiBlue).Render
		cmd.Printf("%s %s\n", icon.Get(icon.Game), headerStyle(info.Name))
		cmd.Printf("%s\n\n", style.Faint(fmt.Sprintf("%s · %s · %s", info.Class, info.GameCode, info.Key)))

		for _, f := range settings.Visible(ctx) {
			value := settings.EffectiveValue(f, overrides, ctx)

			marker := " "
			switch {
			case settings.Locked(f, overrides, ctx):
				marker = icon.Get(icon.Lock)
			case overrides.Get(f).IsPresent():
				marker = icon.Get(icon.Modified)
			}

			label := f.ValueLabel(value)
			if overrides.Get(f).IsPresent() {
				label = style.Fg(color.Yellow)(label)
			} else {
				label = style.Faint(label + " (default)")
			}

			cmd.Printf("%s %s %s\n", marker, style.Fg(color.Purple)(fmt.Sprintf("%-18s", f.Label())), label)
		}

		if info.Class == title.Retail && settings.ShouldShowAPNotice(info.Key) {
			cmd.Printf("\n%s\n", style.Faint("An anti-piracy patch notice is shown before this game boots."))
		}
	},
}
