// Package cmd implements the command-line interface for dstweak.
package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dstweak-cli/dstweak/color"
	"github.com/dstweak-cli/dstweak/history"
	"github.com/dstweak-cli/dstweak/icon"
	"github.com/dstweak-cli/dstweak/key"
	"github.com/dstweak-cli/dstweak/log"
	"github.com/dstweak-cli/dstweak/settings"
	"github.com/dstweak-cli/dstweak/style"
	"github.com/dstweak-cli/dstweak/title"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func errUnknownField(name string) error {
	closest := lo.MinBy(settings.Names(), func(a string, b string) bool {
		return levenshtein.Distance(name, a) < levenshtein.Distance(name, b)
	})
	msg := fmt.Sprintf(
		"unknown field %s, did you mean %s?",
		style.Fg(color.Red)(name),
		style.Fg(color.Yellow)(closest),
	)

	return errors.New(msg)
}

// resolveField validates a field argument against the session: the field must
// exist, apply to the game and be persisted by the launcher.
func resolveField(name string, ctx settings.Context) (settings.Field, error) {
	f, err := settings.FromName(name)
	if err != nil {
		return 0, errUnknownField(name)
	}

	if !f.Visible(ctx) {
		return 0, fmt.Errorf("%s does not apply to %s games", f.Name(), ctx.Class)
	}

	if !lo.Contains(settings.SavePolicy(ctx), f) {
		return 0, fmt.Errorf("%s is not persisted for this console and device, the launcher would ignore it", f.Name())
	}

	return f, nil
}

// parseFieldValue interprets a value argument as a raw domain number or a
// value label, case-insensitively.
func parseFieldValue(f settings.Field, raw string) (int, error) {
	if value, err := strconv.Atoi(raw); err == nil {
		if !f.InDomain(value) {
			return 0, fmt.Errorf("%d is outside the known values of %s", value, f.Name())
		}
		return value, nil
	}

	for _, value := range f.Domain() {
		if strings.EqualFold(f.ValueLabel(value), raw) {
			return value, nil
		}
	}

	labels := lo.Map(f.Domain(), func(value int, _ int) string {
		return f.ValueLabel(value)
	})
	return 0, fmt.Errorf("unknown value %q for %s, expected one of: %s", raw, f.Name(), strings.Join(labels, ", "))
}

// rememberEdit records a freshly edited game in the history, best effort.
func rememberEdit(info title.Info) {
	if !viper.GetBool(key.HistorySaveOnEdit) {
		return
	}
	if err := history.Save(info); err != nil {
		log.Warnf("record %s in history: %v", info.Key, err)
	}
}

func completionSetArgs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	switch len(args) {
	case 0:
		return completionGameArg(cmd, args, toComplete)
	case 1:
		return settings.Names(), cobra.ShellCompDirectiveNoFileComp
	case 2:
		f, err := settings.FromName(args[1])
		if err != nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return lo.Map(f.Domain(), func(value int, _ int) string {
			return f.ValueLabel(value)
		}), cobra.ShellCompDirectiveNoFileComp
	default:
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
}

func completionUnsetArgs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	switch len(args) {
	case 0:
		return completionGameArg(cmd, args, toComplete)
	case 1:
		return settings.Names(), cobra.ShellCompDirectiveNoFileComp
	default:
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
}

func init() {
	rootCmd.AddCommand(setCmd)
}

// setCmd stores a single override without opening the editor.
var setCmd = &cobra.Command{
	Use:   "set [game] [field] [value]",
	Short: "Store a single per-game override without opening the editor",
	Long: `Store a single per-game override without opening the editor.

Values are accepted as domain numbers or labels, so both of these work:
  dstweak set game.nds language 1
  dstweak set game.nds language English`,
	Args:              cobra.ExactArgs(3),
	ValidArgsFunction: completionSetArgs,
	Run: func(cmd *cobra.Command, args []string) {
		EnsureStorageConfigured()

		path, err := resolveGamePath(args[0])
		handleErr(err)

		info := title.Classify(path)
		ctx := settings.NewContext(info)

		f, err := resolveField(args[1], ctx)
		handleErr(err)

		overrides := settings.Load(info.Key)
		if settings.Locked(f, overrides, ctx) {
			handleErr(fmt.Errorf("%s is forced on while the game runs in DSi mode", f.Name()))
		}

		value, err := parseFieldValue(f, args[2])
		handleErr(err)

		overrides.Set(f, value)
		handleErr(settings.Save(info.Key, overrides, ctx))
		rememberEdit(info)

		fmt.Printf(
			"%s set %s to %s for %s\n",
			style.Fg(color.Green)(icon.Get(icon.Check)),
			style.Fg(color.Purple)(f.Name()),
			style.Fg(color.Yellow)(f.ValueLabel(value)),
			info.Name,
		)
	},
}

func init() {
	rootCmd.AddCommand(unsetCmd)
}

// unsetCmd removes a stored override so the game inherits the global default.
var unsetCmd = &cobra.Command{
	Use:               "unset [game] [field]",
	Short:             "Remove a stored override so the game inherits the global default",
	Args:              cobra.ExactArgs(2),
	ValidArgsFunction: completionUnsetArgs,
	Run: func(cmd *cobra.Command, args []string) {
		EnsureStorageConfigured()

		path, err := resolveGamePath(args[0])
		handleErr(err)

		info := title.Classify(path)
		ctx := settings.NewContext(info)

		f, err := resolveField(args[1], ctx)
		handleErr(err)

		overrides := settings.Load(info.Key)
		if settings.Locked(f, overrides, ctx) {
			handleErr(fmt.Errorf("%s is forced on while the game runs in DSi mode", f.Name()))
		}

		overrides.Unset(f)
		handleErr(settings.Save(info.Key, overrides, ctx))
		rememberEdit(info)

		fmt.Printf(
			"%s %s now inherits the global default for %s\n",
			style.Fg(color.Green)(icon.Get(icon.Check)),
			style.Fg(color.Purple)(f.Name()),
			info.Name,
		)
	},
}
