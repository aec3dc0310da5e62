// Package cmd implements the command-line interface for dstweak.
package cmd

import (
	"fmt"
	"os"

	"github.com/dstweak-cli/dstweak/color"
	"github.com/dstweak-cli/dstweak/constant"
	"github.com/dstweak-cli/dstweak/filesystem"
	"github.com/dstweak-cli/dstweak/icon"
	"github.com/dstweak-cli/dstweak/key"
	"github.com/dstweak-cli/dstweak/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(storageCmd)
}

// storageCmd provides a parent command for managing storage devices.
var storageCmd = &cobra.Command{
	Use:   "storage",
	Short: "Manage storage roots and the active device",
}

func init() {
	storageCmd.AddCommand(storageListCmd)

	storageListCmd.Flags().BoolP("raw", "r", false, "Suppress headers and status decorations in the output")
	storageListCmd.SetOut(os.Stdout)
}

// storageListCmd displays the configured storage roots and the active device.
var storageListCmd = &cobra.Command{
	Use:   "list",
	Short: "Display the configured storage roots and the active device",
	Run: func(cmd *cobra.Command, args []string) {
		printHeader := !lo.Must(cmd.Flags().GetBool("raw"))
		headerStyle := style.New().Foreground(color.HiBlue).Bold(true).Render
		active := viper.GetString(key.StorageActive)

		printDevice := func(name, root string) {
			if printHeader {
				header := name
				if name == active {
					header += " (active)"
				}
				cmd.Println(headerStyle(header + ":"))
			}

			if root == "" {
				cmd.Println(style.Faint("not configured"))
				return
			}

			line := root
			if printHeader {
				if mounted, err := filesystem.API().DirExists(root); err == nil && !mounted {
					line += " " + style.Fg(color.Red)("(not mounted)")
				}
			}
			cmd.Println(line)
		}

		printDevice(constant.StorageSD, viper.GetString(key.StorageSDRoot))
		if printHeader {
			cmd.Println()
		}
		printDevice(constant.StorageSecondary, viper.GetString(key.StorageSecondaryRoot))
	},
}

func init() {
	storageCmd.AddCommand(storageUseCmd)
}

// storageUseCmd switches the device settings are read from and written to.
var storageUseCmd = &cobra.Command{
	Use:   "use [device]",
	Short: "Switch the device settings are read from and written to",
	Args:  cobra.ExactArgs(1),
	ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
		if len(args) != 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return []string{constant.StorageSD, constant.StorageSecondary}, cobra.ShellCompDirectiveNoFileComp
	},
	Run: func(cmd *cobra.Command, args []string) {
		device := args[0]
		if device != constant.StorageSD && device != constant.StorageSecondary {
			handleErr(fmt.Errorf("unknown device %q, expected %s or %s", device, constant.StorageSD, constant.StorageSecondary))
		}

		viper.Set(key.StorageActive, device)
		switch err := viper.WriteConfig(); err.(type) {
		case viper.ConfigFileNotFoundError:
			handleErr(viper.SafeWriteConfig())
		default:
			handleErr(err)
		}

		fmt.Printf(
			"%s settings now read from and write to %s\n",
			style.Fg(color.Green)(icon.Get(icon.Check)),
			style.Fg(color.Yellow)(device),
		)
	},
}
