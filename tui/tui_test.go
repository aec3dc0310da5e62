package tui

import (
	"errors"
	"testing"

	"github.com/dstweak-cli/dstweak/constant"
	"github.com/dstweak-cli/dstweak/filesystem"
	"github.com/dstweak-cli/dstweak/key"
	"github.com/dstweak-cli/dstweak/settings"
	"github.com/dstweak-cli/dstweak/title"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func configureConsole() {
	viper.Set(key.StorageSDRoot, "/mnt/sd")
	viper.Set(key.StorageSecondaryRoot, "")
	viper.Set(key.StorageActive, constant.StorageSD)
	viper.Set(key.ConsoleModel, constant.ModelDSi)
	viper.Set(key.ConsoleDSiMode, true)
	viper.Set(key.ConsoleSCFGUnlocked, true)
	viper.Set(key.BootstrapEnabled, true)
	viper.Set(key.TUIShowGameInfo, true)
	viper.Set(key.HistorySaveOnEdit, false)
}

func homebrewGame() title.Info {
	return title.Info{
		Path:     "/mnt/sd/games/hbmenu.nds",
		Target:   "/mnt/sd/games/hbmenu.nds",
		Key:      "hbmenu.nds",
		Name:     "Homebrew Menu",
		GameCode: "HBLA",
		Class:    title.Homebrew,
	}
}

func editorOver(info title.Info, overrides settings.Overrides) *statefulBubble {
	b := newBubble(&Options{Path: info.Path})
	b.resize(80, 24)
	b.setState(loadingState)
	b.Update(loadedTitle{info: info, overrides: overrides})
	return b
}

func press(b *statefulBubble, msg tea.KeyMsg) tea.Cmd {
	_, cmd := b.Update(msg)
	return cmd
}

var (
	enterKey     = tea.KeyMsg{Type: tea.KeyEnter}
	upKey        = tea.KeyMsg{Type: tea.KeyUp}
	downKey      = tea.KeyMsg{Type: tea.KeyDown}
	backspaceKey = tea.KeyMsg{Type: tea.KeyBackspace}
	quitKey      = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}
)

func TestEditorStates(t *testing.T) {
	Convey("Given a configured console", t, func() {
		configureConsole()

		Convey("A homebrew game opens in the editor", func() {
			b := editorOver(homebrewGame(), settings.Overrides{})

			So(b.state, ShouldEqual, browsingState)
			So(b.fields, ShouldResemble, []settings.Field{
				settings.DirectBoot,
				settings.RunMode,
				settings.CpuBoost,
				settings.VramBoost,
			})
			So(b.dirty, ShouldBeFalse)

			Convey("And renders its identity", func() {
				view := b.View()

				So(view, ShouldContainSubstring, "Homebrew Menu")
				So(view, ShouldContainSubstring, "TID: HBLA")
			})
		})

		Convey("A digital title opens read only", func() {
			b := editorOver(title.Info{
				Path:   "/mnt/sd/games/shop.app",
				Target: "/mnt/sd/games/shop.app",
				Key:    "shop.app",
				Name:   "Shop Channel",
				Class:  title.Digital,
			}, settings.Overrides{})

			So(b.state, ShouldEqual, infoState)
			So(b.View(), ShouldContainSubstring, "no editable settings")
		})

		Convey("A load failure lands on the error view", func() {
			b := newBubble(&Options{})
			b.resize(80, 24)
			b.setState(loadingState)
			b.Update(errors.New("boom"))

			So(b.state, ShouldEqual, errorState)
			So(b.View(), ShouldContainSubstring, "boom")
		})
	})
}

func TestCursor(t *testing.T) {
	Convey("Given an editor over a homebrew game", t, func() {
		configureConsole()
		b := editorOver(homebrewGame(), settings.Overrides{})

		Convey("The cursor starts at the first field", func() {
			So(b.cursor, ShouldEqual, 0)
		})

		Convey("Moving down walks the list and wraps", func() {
			for i := 1; i < len(b.fields); i++ {
				press(b, downKey)
				So(b.cursor, ShouldEqual, i)
			}

			press(b, downKey)
			So(b.cursor, ShouldEqual, 0)
		})

		Convey("Moving up from the top wraps to the bottom", func() {
			press(b, upKey)
			So(b.cursor, ShouldEqual, len(b.fields)-1)
		})

		Convey("Jump keys reach both ends", func() {
			press(b, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("G")})
			So(b.cursor, ShouldEqual, len(b.fields)-1)

			press(b, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")})
			So(b.cursor, ShouldEqual, 0)
		})
	})
}

func TestDirtyLifecycle(t *testing.T) {
	Convey("Given an editor over a homebrew game", t, func() {
		configureConsole()
		b := editorOver(homebrewGame(), settings.Overrides{})

		Convey("Toggling a field marks the session dirty", func() {
			press(b, enterKey)

			So(b.dirty, ShouldBeTrue)
			So(b.overrides.DirectBoot.IsPresent(), ShouldBeTrue)
			So(b.View(), ShouldContainSubstring, "unsaved changes")

			Convey("Clearing the override keeps the dirty flag", func() {
				press(b, backspaceKey)

				So(b.overrides.DirectBoot.IsAbsent(), ShouldBeTrue)
				So(b.dirty, ShouldBeTrue)
			})

			Convey("Quitting saves and leaves a settings file behind", func() {
				cmd := press(b, quitKey)

				So(b.dirty, ShouldBeFalse)
				So(cmd, ShouldNotBeNil)
				So(cmd(), ShouldResemble, tea.QuitMsg{})

				exists, err := filesystem.API().Exists("/mnt/sd/settings/gamesettings/hbmenu.nds.ini")
				So(err, ShouldBeNil)
				So(exists, ShouldBeTrue)
			})
		})

		Convey("A failed save keeps the session alive and dirty", func() {
			press(b, enterKey)
			viper.Set(key.StorageActive, constant.StorageSecondary)

			cmd := press(b, quitKey)

			So(b.dirty, ShouldBeTrue)
			So(cmd, ShouldNotBeNil)

			msg := cmd()
			So(msg, ShouldHaveSameTypeAs, "")
			So(msg.(string), ShouldContainSubstring, "Save failed")
		})

		Convey("A boost stays locked while the game runs in DSi mode", func() {
			locked := editorOver(homebrewGame(), settings.Overrides{RunMode: mo.Some(1)})

			press(locked, downKey)
			press(locked, downKey)
			So(locked.selectedField(), ShouldEqual, settings.CpuBoost)

			cmd := press(locked, enterKey)

			So(locked.dirty, ShouldBeFalse)
			So(locked.overrides.CpuBoost.IsAbsent(), ShouldBeTrue)
			So(locked.View(), ShouldContainSubstring, "133 MHz (TWL)")
			So(cmd, ShouldNotBeNil)
			So(cmd().(string), ShouldContainSubstring, "locked")
		})
	})
}
