// Package cmd implements the command-line interface for dstweak.
package cmd

import (
	"fmt"

	"github.com/dstweak-cli/dstweak/filesystem"
	"github.com/dstweak-cli/dstweak/history"
	"github.com/dstweak-cli/dstweak/log"
	"github.com/dstweak-cli/dstweak/query"
	"github.com/spf13/cobra"
)

// resolveGamePath interprets a game argument: an existing file path wins,
// anything else is treated as a name lookup over the edit history.
func resolveGamePath(arg string) (string, error) {
	exists, err := filesystem.API().Exists(arg)
	if err != nil {
		return "", err
	}
	if exists {
		return arg, nil
	}

	games, err := history.Search(arg)
	if err != nil {
		return "", err
	}
	if len(games) == 0 {
		return "", fmt.Errorf("%s is neither a file nor a remembered game", arg)
	}

	if err := query.Remember(arg, 1); err != nil {
		log.Warnf("remember lookup %q: %v", arg, err)
	}
	return games[0].Path, nil
}

// completionGameArg completes the first positional argument with remembered
// lookups on top of regular file completion.
func completionGameArg(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) != 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return query.SuggestMany(toComplete), cobra.ShellCompDirectiveDefault
}
