// Package cmd implements the command-line interface for dstweak.
package cmd

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/dstweak-cli/dstweak/filesystem"
	"github.com/dstweak-cli/dstweak/icon"
	"github.com/dstweak-cli/dstweak/util"
	"github.com/dstweak-cli/dstweak/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

// clearTarget defines a filesystem resource eligible for automated cleanup.
type clearTarget struct {
	name     string
	argLong  string
	argShort mo.Option[string]
	location func() string

	// confirm guards targets holding user data rather than regenerable caches.
	confirm bool
}

// clearTargets registry of all application artifacts that can be selectively cleared.
var clearTargets = []clearTarget{
	{"cache directory", "cache", mo.Some("c"), where.Cache, false},
	{"history file", "history", mo.Some("s"), where.History, true},
	{"queries history", "queries", mo.Some("q"), where.Queries, false},
	{"logs directory", "logs", mo.Some("l"), where.Logs, false},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	clearCmd.Flags().BoolP("force", "f", false, "Skip confirmation prompts")

	for _, target := range clearTargets {
		help := fmt.Sprintf("clear %s", target.name)
		if target.argShort.IsPresent() {
			clearCmd.Flags().BoolP(target.argLong, target.argShort.MustGet(), false, help)
		} else {
			clearCmd.Flags().Bool(target.argLong, false, help)
		}
	}
}

// clearCmd manages the cleanup of temporary and cached application artifacts.
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear temporary and cached application artifacts",
	Run: func(cmd *cobra.Command, args []string) {
		var anyCleared bool

		force := lo.Must(cmd.Flags().GetBool("force"))
		doClear := func(what string) bool {
			return lo.Must(cmd.Flags().GetBool(what))
		}

		for _, target := range clearTargets {
			if !doClear(target.argLong) {
				continue
			}
			anyCleared = true

			if target.confirm && !force {
				confirm := survey.Confirm{
					Message: fmt.Sprintf("Clear the %s? This cannot be undone.", target.name),
					Default: false,
				}
				var response bool
				handleErr(survey.AskOne(&confirm, &response))

				if !response {
					continue
				}
			}

			e := util.PrintErasable(fmt.Sprintf("%s Clearing %s...", icon.Get(icon.Progress), util.Capitalize(target.name)))
			_ = util.Delete(target.location())
			e()
			fmt.Printf("%s %s cleared\n", icon.Get(icon.Check), util.Capitalize(target.name))
			handleErr(filesystem.API().RemoveAll(target.location()))
		}

		if !anyCleared {
			handleErr(cmd.Help())
		}
	},
}
