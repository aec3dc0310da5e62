package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dstweak-cli/dstweak/constant"
	"github.com/dstweak-cli/dstweak/filesystem"
	"github.com/dstweak-cli/dstweak/hardware"
	"github.com/dstweak-cli/dstweak/key"
	"github.com/dstweak-cli/dstweak/title"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func settingsPath(titleKey string) string {
	return filepath.Join("/mnt/sd", "settings", "gamesettings", titleKey+".ini")
}

func seedFile(titleKey, contents string) {
	if err := filesystem.API().WriteFile(settingsPath(titleKey), []byte(contents), os.ModePerm); err != nil {
		panic(err)
	}
}

func readFile(titleKey string) string {
	contents, err := filesystem.API().ReadFile(settingsPath(titleKey))
	if err != nil {
		return ""
	}
	return string(contents)
}

func TestSavePolicy(t *testing.T) {
	Convey("Save policy", t, func() {
		Convey("Homebrew on a full DSi persists its whole editor", func() {
			So(SavePolicy(homebrewCtx()), ShouldResemble,
				[]Field{DirectBoot, RunMode, CpuBoost, VramBoost})
		})

		Convey("Retail on a full DSi from the SD card persists everything visible", func() {
			So(SavePolicy(retailCtx()), ShouldResemble,
				[]Field{Language, RunMode, CpuBoost, VramBoost, BootstrapVariant})
		})

		Convey("The flashcard cannot persist language or bootstrap choices", func() {
			ctx := retailCtx()
			ctx.SecondaryDevice = true
			So(SavePolicy(ctx), ShouldResemble, []Field{RunMode, CpuBoost, VramBoost})
		})

		Convey("Retail on a regular DS persists nothing", func() {
			ctx := Context{Class: title.Retail, Caps: hardware.Capabilities{BootstrapActive: true}}
			So(SavePolicy(ctx), ShouldBeEmpty)
		})

		Convey("Installed titles persist nothing", func() {
			So(SavePolicy(Context{Class: title.Digital, Caps: fullCaps()}), ShouldBeEmpty)
		})
	})
}

func TestStore(t *testing.T) {
	Convey("Settings store", t, func() {
		viper.Set(key.StorageActive, constant.StorageSD)
		viper.Set(key.StorageSDRoot, "/mnt/sd")

		Convey("A game without a settings file loads unset", func() {
			So(Load("ghost.nds").Empty(), ShouldBeTrue)
		})

		Convey("Homebrew round trip writes exactly the homebrew subset", func() {
			var o Overrides
			o.Set(DirectBoot, 1)
			o.Set(RunMode, 1)

			So(Save("hb.nds", o, homebrewCtx()), ShouldBeNil)

			contents := readFile("hb.nds")
			So(contents, ShouldContainSubstring, "[GAMESETTINGS]")
			So(contents, ShouldContainSubstring, "DIRECT_BOOT")
			So(contents, ShouldContainSubstring, "DSI_MODE")
			So(contents, ShouldContainSubstring, "BOOST_CPU")
			So(contents, ShouldContainSubstring, "BOOST_VRAM")
			So(contents, ShouldNotContainSubstring, "LANGUAGE")
			So(contents, ShouldNotContainSubstring, "BOOTSTRAP_FILE")

			loaded := Load("hb.nds")
			So(loaded.DirectBoot.OrElse(-99), ShouldEqual, 1)
			So(loaded.RunMode.OrElse(-99), ShouldEqual, 1)
			So(loaded.CpuBoost.IsAbsent(), ShouldBeTrue)
			So(loaded.VramBoost.IsAbsent(), ShouldBeTrue)
		})

		Convey("Saving preserves keys outside the policy subset", func() {
			seedFile("retail.nds", "[GAMESETTINGS]\nNO_SHOW_AP_MSG = 1\nHIDDEN_EXTRA = 42\n")

			var o Overrides
			o.Set(Language, 1)
			So(Save("retail.nds", o, retailCtx()), ShouldBeNil)

			contents := readFile("retail.nds")
			So(contents, ShouldContainSubstring, "NO_SHOW_AP_MSG")
			So(contents, ShouldContainSubstring, "HIDDEN_EXTRA")
			So(contents, ShouldContainSubstring, "LANGUAGE")

			So(Load("retail.nds").Language.OrElse(-99), ShouldEqual, 1)
			So(ShouldShowAPNotice("retail.nds"), ShouldBeFalse)
		})

		Convey("An empty policy writes no file at all", func() {
			ctx := Context{Class: title.Retail, Caps: hardware.Capabilities{BootstrapActive: true}}

			var o Overrides
			o.Set(Language, 2)
			So(Save("dsonly.nds", o, ctx), ShouldBeNil)

			exists, err := filesystem.API().Exists(settingsPath("dsonly.nds"))
			So(err, ShouldBeNil)
			So(exists, ShouldBeFalse)
		})

		Convey("Stored sentinels load as unset", func() {
			seedFile("sent.nds", "[GAMESETTINGS]\nDSI_MODE = -1\nLANGUAGE = -2\nBOOST_CPU = -1\n")
			So(Load("sent.nds").Empty(), ShouldBeTrue)
		})

		Convey("Malformed and out of domain values load as unset", func() {
			seedFile("bad.nds", "[GAMESETTINGS]\nDSI_MODE = banana\nBOOST_CPU = 9\nLANGUAGE = 3\n")

			loaded := Load("bad.nds")
			So(loaded.RunMode.IsAbsent(), ShouldBeTrue)
			So(loaded.CpuBoost.IsAbsent(), ShouldBeTrue)
			So(loaded.Language.OrElse(-99), ShouldEqual, 3)
		})

		Convey("Unset fields within the policy materialize their inherit value", func() {
			So(Save("plain.nds", Overrides{}, retailCtx()), ShouldBeNil)

			contents := readFile("plain.nds")
			So(contents, ShouldContainSubstring, "DSI_MODE")
			So(contents, ShouldContainSubstring, "LANGUAGE")

			So(Load("plain.nds").Empty(), ShouldBeTrue)
		})

		Convey("AP notice lifecycle", func() {
			So(ShouldShowAPNotice("ap.nds"), ShouldBeTrue)

			So(MuteAPNotice("ap.nds"), ShouldBeNil)
			So(ShouldShowAPNotice("ap.nds"), ShouldBeFalse)
			So(readFile("ap.nds"), ShouldContainSubstring, "NO_SHOW_AP_MSG = 1")

			So(RestoreAPNotice("ap.nds"), ShouldBeNil)
			So(ShouldShowAPNotice("ap.nds"), ShouldBeTrue)
		})

		Convey("Muting the notice keeps stored overrides intact", func() {
			var o Overrides
			o.Set(Language, 5)
			So(Save("keep.nds", o, retailCtx()), ShouldBeNil)

			So(MuteAPNotice("keep.nds"), ShouldBeNil)
			So(Load("keep.nds").Language.OrElse(-99), ShouldEqual, 5)
		})

		Convey("Without a storage root saving fails and loading degrades", func() {
			viper.Set(key.StorageSDRoot, "")

			var o Overrides
			o.Set(Language, 1)
			So(Save("nowhere.nds", o, retailCtx()), ShouldNotBeNil)
			So(Load("nowhere.nds").Empty(), ShouldBeTrue)
		})

		viper.Reset()
	})
}
