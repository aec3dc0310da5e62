// Package cmd implements the command-line interface for dstweak.
package cmd

import (
	"os"

	"github.com/dstweak-cli/dstweak/color"
	"github.com/dstweak-cli/dstweak/open"
	"github.com/dstweak-cli/dstweak/style"
	"github.com/dstweak-cli/dstweak/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

// whereTarget encapsulates a localized filesystem resource and its CLI representation.
type whereTarget struct {
	name     string
	where    func() (string, error)
	argLong  string
	argShort mo.Option[string]
	hidden   bool
}

// infallible adapts path resolvers that cannot fail to the target signature.
func infallible(fn func() string) func() (string, error) {
	return func() (string, error) { return fn(), nil }
}

// wherePaths registry of all application resources with resolvable filesystem paths.
var wherePaths = []*whereTarget{
	{"Config", infallible(where.Config), "config", mo.Some("c"), false},
	{"Game settings", where.GameSettings, "settings", mo.Some("s"), false},
	{"Logs", infallible(where.Logs), "logs", mo.Some("l"), false},
	{"Cache", infallible(where.Cache), "cache", mo.None[string](), true},
	{"Temp", infallible(where.Temp), "temp", mo.None[string](), true},
	{"History", infallible(where.History), "history", mo.None[string](), true},
	{"Queries", infallible(where.Queries), "queries", mo.None[string](), true},
}

func init() {
	rootCmd.AddCommand(whereCmd)

	whereCmd.Flags().BoolP("open", "o", false, "Open the selected path with the system file manager")

	for _, n := range wherePaths {
		if n.argShort.IsPresent() {
			whereCmd.Flags().BoolP(n.argLong, n.argShort.MustGet(), false, n.name+" path")
		} else {
			whereCmd.Flags().Bool(n.argLong, false, n.name+" path")
		}

		if n.hidden {
			lo.Must0(whereCmd.Flags().MarkHidden(n.argLong))
		}

	}

	whereCmd.MarkFlagsMutuallyExclusive(lo.Map(wherePaths, func(t *whereTarget, _ int) string {
		return t.argLong
	})...)

	whereCmd.SetOut(os.Stdout)
}

// whereCmd displays localized filesystem paths for application resources.
var whereCmd = &cobra.Command{
	Use:   "where",
	Short: "Display the localized filesystem paths for application-specific resources",
	Run: func(cmd *cobra.Command, args []string) {
		headerStyle := style.New().Bold(true).Foreground(color.HiPurple).Render
		doOpen := lo.Must(cmd.Flags().GetBool("open"))

		for _, n := range wherePaths {
			if lo.Must(cmd.Flags().GetBool(n.argLong)) {
				path, err := n.where()
				handleErr(err)

				if doOpen {
					handleErr(open.Run(path))
					return
				}

				cmd.Println(path)
				return
			}
		}

		if doOpen {
			handleErr(open.Run(where.Config()))
			return
		}

		wherePaths = lo.Filter(wherePaths, func(t *whereTarget, _ int) bool {
			return !t.hidden
		})

		for i, n := range wherePaths {
			cmd.Printf("%s %s\n", headerStyle(n.name+"?"), style.Fg(color.Yellow)("--"+n.argLong))

			if path, err := n.where(); err != nil {
				cmd.Println(style.Faint(err.Error()))
			} else {
				cmd.Println(path)
			}

			if i < len(wherePaths)-1 {
				cmd.Println()
			}
		}
	},
}
