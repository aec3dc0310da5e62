package history

import (
	"testing"
	"time"

	"github.com/dstweak-cli/dstweak/filesystem"
	"github.com/dstweak-cli/dstweak/title"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestHistory(t *testing.T) {
	Convey("Given an edited game", t, func() {
		info := title.Info{
			Path:  "/mnt/sd/roms/Mario Kart.nds",
			Key:   "Mario Kart.nds",
			Name:  "MARIOKART DS",
			Class: title.Retail,
		}

		Convey("When saving the game", func() {
			err := Save(info)

			Convey("Then the error should be nil", func() {
				So(err, ShouldBeNil)

				Convey("And the game should be remembered under its key", func() {
					games, err := Get()
					So(err, ShouldBeNil)
					So(len(games), ShouldBeGreaterThan, 0)
					So(games[info.Key].Name, ShouldEqual, info.Name)
					So(games[info.Key].Path, ShouldEqual, info.Path)
				})
			})
		})

		Convey("Saving twice keeps a single entry per key", func() {
			So(Save(info), ShouldBeNil)
			So(Save(info), ShouldBeNil)

			games, err := Get()
			So(err, ShouldBeNil)

			count := 0
			for key := range games {
				if key == info.Key {
					count++
				}
			}
			So(count, ShouldEqual, 1)
		})

		Convey("The latest game wins", func() {
			So(Save(info), ShouldBeNil)
			time.Sleep(5 * time.Millisecond)

			second := info
			second.Key = "Picross.nds"
			second.Name = "PICROSS DS"
			So(Save(second), ShouldBeNil)

			latest, ok, err := Latest()
			So(err, ShouldBeNil)
			So(ok, ShouldBeTrue)
			So(latest.Key, ShouldEqual, "Picross.nds")
		})

		Convey("Search matches names and keys loosely", func() {
			So(Save(info), ShouldBeNil)

			found, err := Search("kart")
			So(err, ShouldBeNil)
			So(len(found), ShouldBeGreaterThan, 0)
			So(found[0].Key, ShouldEqual, info.Key)

			none, err := Search("zelda")
			So(err, ShouldBeNil)
			So(none, ShouldBeEmpty)
		})

		Convey("Removing forgets the game", func() {
			So(Save(info), ShouldBeNil)

			games, err := Get()
			So(err, ShouldBeNil)
			So(Remove(games[info.Key]), ShouldBeNil)

			games, err = Get()
			So(err, ShouldBeNil)
			So(games[info.Key], ShouldBeNil)
		})
	})
}
