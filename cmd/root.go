// Package cmd implements the command-line interface for dstweak.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/dstweak-cli/dstweak/color"
	"github.com/dstweak-cli/dstweak/constant"
	"github.com/dstweak-cli/dstweak/icon"
	"github.com/dstweak-cli/dstweak/key"
	"github.com/dstweak-cli/dstweak/log"
	"github.com/dstweak-cli/dstweak/style"
	"github.com/dstweak-cli/dstweak/tui"
	"github.com/dstweak-cli/dstweak/util"
	"github.com/dstweak-cli/dstweak/version"
	"github.com/dstweak-cli/dstweak/where"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, square)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().BoolP("write-history", "H", true, "Remember opened games in the localized edit history")
	lo.Must0(viper.BindPFlag(key.HistorySaveOnEdit, rootCmd.PersistentFlags().Lookup("write-history")))

	rootCmd.PersistentFlags().StringP("device", "D", "", "Storage device to read and write game settings on (sd, secondary)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("device", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{constant.StorageSD, constant.StorageSecondary}, cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(viper.BindPFlag(key.StorageActive, rootCmd.PersistentFlags().Lookup("device")))

	rootCmd.Flags().BoolP("continue", "c", false, "Reopen the most recently edited game")

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})

	// Initialize cleanup of localized temporary files on application startup.
	go func() {
		_ = util.Delete(where.Temp())
	}()
}

// rootCmd defines the entry point for the dstweak application.
var rootCmd = &cobra.Command{
	Use:   constant.DSTweak + " [game]",
	Short: "A command-line editor for the per-game settings of DS flashcard launchers",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - A command-line editor for the per-game settings of DS flashcard launchers"),
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionGameArg,
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		EnsureStorageConfigured()

		options := tui.Options{
			Continue: lo.Must(cmd.Flags().GetBool("continue")),
		}
		if len(args) > 0 {
			path, err := resolveGamePath(args[0])
			handleErr(err)
			options.Path = path
		}

		handleErr(tui.Run(&options))
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Cross), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
