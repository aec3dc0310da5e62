package query

import (
	"testing"

	"github.com/dstweak-cli/dstweak/filesystem"
	"github.com/dstweak-cli/dstweak/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
	// Ensure suggestions are enabled for tests
	viper.Set(key.SearchShowQuerySuggestions, true)
}

func TestQuery(t *testing.T) {
	Convey("Given lookup history", t, func() {
		q1 := "mario kart"
		q2 := "picross"

		Convey("When remembering lookups", func() {
			err := Remember(q1, 1)
			So(err, ShouldBeNil)
			err = Remember(q2, 10) // Higher weight
			So(err, ShouldBeNil)

			Convey("Then suggestions should be sorted by rank", func() {
				// Clear memory cache to force read from file
				suggestionCache = make(map[string][]*queryRecord)

				s := SuggestMany("pic")
				So(len(s), ShouldBeGreaterThanOrEqualTo, 1)
				So(s[0], ShouldEqual, "picross")
			})

			Convey("It sanitizes input", func() {
				So(sanitize("  MARIO Kart  "), ShouldEqual, "mario kart")
			})

			Convey("Suggestions can be switched off", func() {
				viper.Set(key.SearchShowQuerySuggestions, false)
				So(SuggestMany("pic"), ShouldBeEmpty)
				viper.Set(key.SearchShowQuerySuggestions, true)
			})
		})
	})
}
