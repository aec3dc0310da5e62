package title

import (
	"os"
	"testing"

	"github.com/dstweak-cli/dstweak/filesystem"
	"github.com/dstweak-cli/dstweak/key"
	"github.com/dstweak-cli/dstweak/nds"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

// writeRom drops a minimal ROM image with the given identity at path.
func writeRom(path, title, gameCode string, unitCode byte) {
	raw := make([]byte, nds.HeaderLen)
	copy(raw[0x00:0x0C], title)
	copy(raw[0x0C:0x10], gameCode)
	raw[0x12] = unitCode

	if err := filesystem.API().WriteFile(path, raw, os.ModePerm); err != nil {
		panic(err)
	}
}

func TestKey(t *testing.T) {
	Convey("Title keys", t, func() {
		Convey("Should keep the base name and lowercase the extension", func() {
			So(Key("/mnt/sd/roms/Mario Kart.NDS"), ShouldEqual, "Mario Kart.nds")
			So(Key("/mnt/sd/roms/game.nds"), ShouldEqual, "game.nds")
		})

		Convey("Should leave extensionless names alone", func() {
			So(Key("/mnt/sd/roms/BOOT"), ShouldEqual, "BOOT")
		})
	})
}

func TestClassify(t *testing.T) {
	Convey("Classification", t, func() {
		Convey("A licensed game code means a retail dump", func() {
			writeRom("/roms/mariokart.nds", "MARIOKART DS", "AMCE", nds.UnitNTR)

			info := classify("/roms/mariokart.nds")
			So(info.Class, ShouldEqual, Retail)
			So(info.Name, ShouldEqual, "MARIOKART DS")
			So(info.GameCode, ShouldEqual, "AMCE")
			So(info.Key, ShouldEqual, "mariokart.nds")
		})

		Convey("Unlicensed game codes mean homebrew", func() {
			writeRom("/roms/placeholder.nds", "HOMEBREW", "####", nds.UnitNTR)
			writeRom("/roms/blank.nds", "HOMEBREW", "", nds.UnitNTR)
			writeRom("/roms/hbmenu.nds", "HBMENU", "HBLA", nds.UnitNTR)

			So(classify("/roms/placeholder.nds").Class, ShouldEqual, Homebrew)
			So(classify("/roms/blank.nds").Class, ShouldEqual, Homebrew)
			So(classify("/roms/hbmenu.nds").Class, ShouldEqual, Homebrew)
		})

		Convey("A DSi-only unit code means an installed title", func() {
			writeRom("/roms/dsiware.nds", "DSIWARE", "KNDE", nds.UnitTWL)
			So(classify("/roms/dsiware.nds").Class, ShouldEqual, Digital)
		})

		Convey("An unreadable header degrades to homebrew", func() {
			err := filesystem.API().WriteFile("/roms/short.nds", []byte{0x01}, os.ModePerm)
			So(err, ShouldBeNil)

			info := classify("/roms/short.nds")
			So(info.Class, ShouldEqual, Homebrew)
			So(info.Name, ShouldEqual, "short")
		})

		Convey("Exported containers stay opaque", func() {
			err := filesystem.API().WriteFile("/roms/export.tad", []byte("not a header"), os.ModePerm)
			So(err, ShouldBeNil)

			info := classify("/roms/export.tad")
			So(info.Class, ShouldEqual, Digital)
			So(info.GameCode, ShouldBeEmpty)
		})
	})
}

func TestIndirection(t *testing.T) {
	Convey("Launch indirection", t, func() {
		viper.Set(key.StorageSDRoot, "/mnt/sd")
		viper.Set(key.StorageSecondaryRoot, "/mnt/flashcard")

		Convey("argv files resolve to their first token", func() {
			writeRom("/mnt/flashcard/roms/moonshl2.nds", "MOONSHELL2", "####", nds.UnitNTR)

			argv := "# launch moonshell\nfat:/roms/moonshl2.nds --skip-setup\n"
			err := filesystem.API().WriteFile("/mnt/flashcard/roms/moonshl2.argv", []byte(argv), os.ModePerm)
			So(err, ShouldBeNil)

			info := classify("/mnt/flashcard/roms/moonshl2.argv")
			So(info.Class, ShouldEqual, LaunchArgument)
			So(info.Target, ShouldEqual, "/mnt/flashcard/roms/moonshl2.nds")
			So(info.Name, ShouldEqual, "MOONSHELL2")
			So(info.Key, ShouldEqual, "moonshl2.argv")
		})

		Convey("launcharg files probe for installed content", func() {
			writeRom("/mnt/sd/title/00030004/4b4e4445/content/00000002.app", "DSIWARE", "KNDE", nds.UnitTWL)

			launcharg := "sd:/title/00030004/4b4e4445\n"
			err := filesystem.API().WriteFile("/mnt/sd/roms/dsiware.launcharg", []byte(launcharg), os.ModePerm)
			So(err, ShouldBeNil)

			info := classify("/mnt/sd/roms/dsiware.launcharg")
			So(info.Class, ShouldEqual, LaunchArgument)
			So(info.Target, ShouldEqual, "/mnt/sd/title/00030004/4b4e4445/content/00000002.app")
			So(info.GameCode, ShouldEqual, "KNDE")
		})

		Convey("A dangling target keeps the launch file identity", func() {
			err := filesystem.API().WriteFile("/mnt/sd/roms/gone.argv", []byte("sd:/roms/gone.nds\n"), os.ModePerm)
			So(err, ShouldBeNil)

			info := classify("/mnt/sd/roms/gone.argv")
			So(info.Class, ShouldEqual, LaunchArgument)
			So(info.Name, ShouldEqual, "gone")
			So(info.GameCode, ShouldBeEmpty)
		})

		Convey("An empty launch file keeps the raw path", func() {
			err := filesystem.API().WriteFile("/mnt/sd/roms/empty.argv", []byte("# nothing here\n"), os.ModePerm)
			So(err, ShouldBeNil)

			info := classify("/mnt/sd/roms/empty.argv")
			So(info.Class, ShouldEqual, LaunchArgument)
			So(info.Target, ShouldEqual, "/mnt/sd/roms/empty.argv")
		})

		viper.Reset()
	})
}
