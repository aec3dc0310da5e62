// Package tui implements the interactive per-game settings editor.
package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dstweak-cli/dstweak/icon"
	"github.com/dstweak-cli/dstweak/key"
	"github.com/dstweak-cli/dstweak/settings"
	"github.com/dstweak-cli/dstweak/style"
	"github.com/dstweak-cli/dstweak/title"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wrap"
	"github.com/spf13/viper"
)

var (
	listExtraPaddingStyle = lipgloss.NewStyle().Padding(1, 2, 1, 0)
	paddingStyle          = lipgloss.NewStyle().Padding(1, 2)
)

func (b *statefulBubble) View() string {
	var output string

	switch b.state {
	case loadingState:
		output = b.viewLoading()
	case historyState:
		output = b.viewHistory()
	case browsingState:
		output = b.viewBrowsing()
	case infoState:
		output = b.viewInfo()
	case errorState:
		output = b.viewError()
	default:
		output = "Unknown state"
	}

	return b.notifier.View(output)
}

func (b *statefulBubble) viewLoading() string {
	return b.renderLines(
		true,
		[]string{
			style.Title("Loading"),
			"",
			b.spinnerC.View() + " " + b.progressStatus,
		},
	)
}

func (b *statefulBubble) viewHistory() string {
	return listExtraPaddingStyle.Render(b.historyC.View())
}

func (b *statefulBubble) viewBrowsing() string {
	lines := b.headerLines()

	for i, f := range b.fields {
		lines = append(lines, b.fieldLine(f, i == b.cursor))
	}

	lines = append(lines, "", b.footerLine())

	return b.renderLines(true, lines)
}

func (b *statefulBubble) viewInfo() string {
	lines := b.headerLines()

	lines = append(lines,
		style.Faint("This game keeps no editable settings on the configured console."),
		"",
		fmt.Sprintf("File      %s", filepath.Base(b.info.Path)),
		fmt.Sprintf("Settings  %s.ini", b.info.Key),
	)
	if b.info.Target != b.info.Path {
		lines = append(lines, fmt.Sprintf("Launches  %s", b.info.Target))
	}

	return b.renderLines(true, lines)
}

func (b *statefulBubble) viewError() string {
	errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	errorBody := errorStyle.Render(fmt.Sprintf("%v", b.lastError))
	errorMsg := wrap.String(errorBody, b.width)
	return b.renderLines(
		true,
		append([]string{
			style.ErrorTitle("Error"),
			"",
			icon.Get(icon.Cross) + " An error occurred:",
			"",
		},
			errorMsg,
		),
	)
}

// headerLines renders the game identity block shared by the browsing and info views.
func (b *statefulBubble) headerLines() []string {
	name := b.info.Name
	if name == "" {
		name = b.info.Key
	}

	lines := []string{style.Title(name)}

	if viper.GetBool(key.TUIShowGameInfo) {
		var meta []string
		if b.info.GameCode != "" {
			meta = append(meta, fmt.Sprintf("TID: %s", b.info.GameCode))
		}
		if b.info.Class == title.Retail && b.info.SDK > 0 {
			meta = append(meta, fmt.Sprintf("SDK%d", b.info.SDK))
		}
		meta = append(meta, b.info.Class.String())

		lines = append(lines, style.Faint(strings.Join(meta, " • ")))
	}

	return append(lines, "")
}

// fieldLine renders a single editable setting with its working value.
func (b *statefulBubble) fieldLine(f settings.Field, selected bool) string {
	value := f.ValueLabel(b.overrides.Working(f, b.ctx))

	switch {
	case settings.Locked(f, b.overrides, b.ctx):
		forced := f.ValueLabel(settings.EffectiveValue(f, b.overrides, b.ctx))
		value = fmt.Sprintf("%s %s", icon.Get(icon.Lock), style.Faint(forced))
	case b.overrides.Get(f).IsPresent():
		value = style.Fg(style.AccentColor)(value)
	default:
		value = style.Faint(value)
	}

	line := fmt.Sprintf("%-16s %s", f.Label(), value)
	if selected {
		return style.Fg(style.AccentColor)("> ") + line
	}
	return "  " + line
}

func (b *statefulBubble) footerLine() string {
	if b.dirty {
		return style.Fg(style.WarningColor)(fmt.Sprintf("%s unsaved changes", icon.Get(icon.Modified)))
	}
	return ""
}

func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	addHelp = addHelp && viper.GetBool(key.TUIShowKeyHelp)

	h := len(lines)
	l := strings.Join(lines, "\n")
	if addHelp {
		if b.height > h {
			l += strings.Repeat("\n", b.height-h)
		}
		l += b.helpC.View(b.keymap)
	}

	return paddingStyle.Render(l)
}
