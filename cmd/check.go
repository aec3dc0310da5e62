// Package cmd implements the command-line interface for dstweak.
package cmd

import (
	"fmt"
	"os"

	"github.com/dstweak-cli/dstweak/icon"
	"github.com/dstweak-cli/dstweak/style"
	"github.com/dstweak-cli/dstweak/where"
	"github.com/charmbracelet/lipgloss"
)

// EnsureStorageConfigured verifies that a storage root is configured for the
// active device before any command that reads or writes settings files runs.
func EnsureStorageConfigured() {
	if _, ok := where.StorageRoot(); !ok {
		printNoStorageRootError()
		os.Exit(1)
	}
}

func printNoStorageRootError() {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.HiRed).
		Padding(1, 2).
		Margin(1, 0)

	title := style.New().Bold(true).Foreground(style.HiRed).Render(fmt.Sprintf("%s Error: No Storage Root", icon.Get(icon.Cross)))
	body := style.New().Foreground(style.Text).Render("No storage root is configured for the active device, so settings files cannot be located.")

	suggestion := fmt.Sprintf("\n\nTo point dstweak at a mounted SD card, run:\n  %s",
		style.New().Foreground(style.AccentColor).Bold(true).Render("dstweak config set storage.sd_root /path/to/sd"))

	fmt.Println(box.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			title,
			"\n",
			body,
			suggestion,
		),
	))
}
