// Package cmd implements the command-line interface for dstweak.
package cmd

import (
	"fmt"

	"github.com/dstweak-cli/dstweak/color"
	"github.com/dstweak-cli/dstweak/icon"
	"github.com/dstweak-cli/dstweak/settings"
	"github.com/dstweak-cli/dstweak/style"
	"github.com/dstweak-cli/dstweak/title"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(apmsgCmd)
}

// apmsgCmd is the parent command for the anti-piracy patch notice flag.
var apmsgCmd = &cobra.Command{
	Use:   "apmsg",
	Short: "Manage the anti-piracy patch notice shown before a game boots",
	Long: `Manage the anti-piracy patch notice shown before a game boots.

Launchers display the notice once per game until it is muted. Muting is
stored in the settings file of the game and survives regular edits.`,
}

func init() {
	apmsgCmd.AddCommand(apmsgStatusCmd)
}

// apmsgStatusCmd reports whether the notice of a game is still shown.
var apmsgStatusCmd = &cobra.Command{
	Use:               "status [game]",
	Short:             "Report whether the notice of a game is still shown",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionGameArg,
	Run: func(cmd *cobra.Command, args []string) {
		EnsureStorageConfigured()

		path, err := resolveGamePath(args[0])
		handleErr(err)

		info := title.Classify(path)

		if settings.ShouldShowAPNotice(info.Key) {
			fmt.Printf("%s the notice is shown before %s boots\n", icon.Get(icon.Modified), info.Name)
		} else {
			fmt.Printf("%s the notice is muted for %s\n", icon.Get(icon.Check), info.Name)
		}

		if info.Class != title.Retail {
			fmt.Println(style.Faint("Launchers only display the notice for retail games."))
		}
	},
}

func init() {
	apmsgCmd.AddCommand(apmsgMuteCmd)
}

// apmsgMuteCmd stops the notice of a game from showing again.
var apmsgMuteCmd = &cobra.Command{
	Use:               "mute [game]",
	Short:             "Stop the notice of a game from showing again",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionGameArg,
	Run: func(cmd *cobra.Command, args []string) {
		EnsureStorageConfigured()

		path, err := resolveGamePath(args[0])
		handleErr(err)

		info := title.Classify(path)
		handleErr(settings.MuteAPNotice(info.Key))

		fmt.Printf(
			"%s muted the notice for %s\n",
			style.Fg(color.Green)(icon.Get(icon.Check)),
			info.Name,
		)
	},
}

func init() {
	apmsgCmd.AddCommand(apmsgRestoreCmd)
}

// apmsgRestoreCmd brings the notice of a game back.
var apmsgRestoreCmd = &cobra.Command{
	Use:               "restore [game]",
	Short:             "Bring the notice of a game back",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionGameArg,
	Run: func(cmd *cobra.Command, args []string) {
		EnsureStorageConfigured()

		path, err := resolveGamePath(args[0])
		handleErr(err)

		info := title.Classify(path)
		handleErr(settings.RestoreAPNotice(info.Key))

		fmt.Printf(
			"%s restored the notice for %s\n",
			style.Fg(color.Green)(icon.Get(icon.Check)),
			info.Name,
		)
	},
}
