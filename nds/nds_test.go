package nds

import (
	"bytes"
	"os"
	"testing"

	"github.com/dstweak-cli/dstweak/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

// rawHeader builds a header image with the given identity fields.
func rawHeader(title, gameCode string, unitCode byte) []byte {
	raw := make([]byte, HeaderLen)
	copy(raw[0x00:0x0C], title)
	copy(raw[0x0C:0x10], gameCode)
	copy(raw[0x10:0x12], "01")
	raw[0x12] = unitCode
	raw[0x1E] = 1
	return raw
}

func TestParseHeader(t *testing.T) {
	Convey("Header parsing", t, func() {
		Convey("Should decode identity fields", func() {
			header, err := ParseHeader(bytes.NewReader(rawHeader("MARIOKART DS", "AMCE", UnitNTR)))
			So(err, ShouldBeNil)
			So(header.Title, ShouldEqual, "MARIOKART DS")
			So(header.GameCode, ShouldEqual, "AMCE")
			So(header.MakerCode, ShouldEqual, "01")
			So(header.UnitCode, ShouldEqual, UnitNTR)
			So(header.RomVersion, ShouldEqual, 1)
		})

		Convey("Should trim zero padding from short titles", func() {
			header, err := ParseHeader(bytes.NewReader(rawHeader("GAME", "ABCD", UnitHybrid)))
			So(err, ShouldBeNil)
			So(header.Title, ShouldEqual, "GAME")
		})

		Convey("Should fail on truncated input", func() {
			_, err := ParseHeader(bytes.NewReader([]byte{0x01, 0x02, 0x03}))
			So(err, ShouldNotBeNil)
		})
	})
}

func TestHardwareTargets(t *testing.T) {
	Convey("Hardware target helpers", t, func() {
		Convey("DS-only games", func() {
			h := Header{UnitCode: UnitNTR}
			So(h.TWLOnly(), ShouldBeFalse)
			So(h.TWLCapable(), ShouldBeFalse)
			So(h.SDKGeneration(), ShouldEqual, 0)
		})

		Convey("Hybrid games", func() {
			h := Header{UnitCode: UnitHybrid}
			So(h.TWLOnly(), ShouldBeFalse)
			So(h.TWLCapable(), ShouldBeTrue)
			So(h.SDKGeneration(), ShouldEqual, 5)
		})

		Convey("DSi-only games", func() {
			h := Header{UnitCode: UnitTWL}
			So(h.TWLOnly(), ShouldBeTrue)
			So(h.TWLCapable(), ShouldBeTrue)
			So(h.SDKGeneration(), ShouldEqual, 5)
		})
	})
}

func TestReadHeader(t *testing.T) {
	Convey("ReadHeader", t, func() {
		Convey("Should read through the filesystem backend", func() {
			err := filesystem.API().WriteFile("/roms/game.nds", rawHeader("GAME", "ABCD", UnitNTR), os.ModePerm)
			So(err, ShouldBeNil)

			header, err := ReadHeader("/roms/game.nds")
			So(err, ShouldBeNil)
			So(header.GameCode, ShouldEqual, "ABCD")
		})

		Convey("Should fail on a missing file", func() {
			_, err := ReadHeader("/roms/nowhere.nds")
			So(err, ShouldNotBeNil)
		})
	})
}
