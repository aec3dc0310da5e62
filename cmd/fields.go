// Package cmd implements the command-line interface for dstweak.
package cmd

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/dstweak-cli/dstweak/color"
	"github.com/dstweak-cli/dstweak/icon"
	"github.com/dstweak-cli/dstweak/settings"
	"github.com/dstweak-cli/dstweak/style"
	"github.com/dstweak-cli/dstweak/title"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(fieldsCmd)

	fieldsCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON object")
	fieldsCmd.SetOut(os.Stdout)
}

// fieldInfo is the serialized catalog entry for a single field.
type fieldInfo struct {
	Name      string   `json:"name"`
	INIKey    string   `json:"ini_key"`
	Label     string   `json:"label"`
	Values    []string `json:"values"`
	Visible   *bool    `json:"visible,omitempty"`
	Persisted *bool    `json:"persisted,omitempty"`
}

// fieldsCmd lists the editable field catalog, annotated for a game when one
// is given.
var fieldsCmd = &cobra.Command{
	Use:               "fields [game]",
	Short:             "List the editable fields, annotated for a game when one is given",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionGameArg,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := mo.None[settings.Context]()
		if len(args) > 0 {
			EnsureStorageConfigured()

			path, err := resolveGamePath(args[0])
			handleErr(err)

			ctx = mo.Some(settings.NewContext(title.Classify(path)))
		}

		catalog := lo.Filter(settings.All(), func(f settings.Field, _ int) bool {
			return f != settings.SuppressAPNotice
		})

		if lo.Must(cmd.Flags().GetBool("json")) {
			infos := lo.Map(catalog, func(f settings.Field, _ int) fieldInfo {
				info := fieldInfo{
					Name:   f.Name(),
					INIKey: f.INIKey(),
					Label:  f.Label(),
					Values: lo.Map(f.Domain(), func(value int, _ int) string {
						return f.ValueLabel(value)
					}),
				}
				if c, ok := ctx.Get(); ok {
					info.Visible = lo.ToPtr(f.Visible(c))
					info.Persisted = lo.ToPtr(lo.Contains(settings.SavePolicy(c), f))
				}
				return info
			})

			encoder := json.NewEncoder(cmd.OutOrStdout())
			lo.Must0(encoder.Encode(infos))
			return
		}

		nameStyle := style.New().Bold(true).Foreground(color.Purple).Render

		for i, f := range catalog {
			cmd.Printf("%s %s\n", nameStyle(f.Name()), style.Faint(f.INIKey()))
			cmd.Printf("  %s\n", f.Label())

			labels := lo.Map(f.Domain(), func(value int, _ int) string {
				return f.ValueLabel(value)
			})
			cmd.Printf("  %s\n", style.Fg(color.Yellow)(strings.Join(labels, ", ")))

			if c, ok := ctx.Get(); ok {
				mark := func(ok bool) string {
					if ok {
						return icon.Get(icon.Check)
					}
					return icon.Get(icon.Cross)
				}

				cmd.Printf(
					"  %s visible  %s persisted\n",
					mark(f.Visible(c)),
					mark(lo.Contains(settings.SavePolicy(c), f)),
				)
			}

			if i < len(catalog)-1 {
				cmd.Println()
			}
		}
	},
}
