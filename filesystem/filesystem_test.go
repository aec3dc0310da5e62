package filesystem

import (
	"os"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestApi(t *testing.T) {
	Convey("Filesystem API", t, func() {
		Convey("Should default to OsFs", func() {
			SetOsFs()
			fs := API()
			So(fs, ShouldNotBeNil)
			So(fs.Name(), ShouldEqual, "OsFs")
		})

		Convey("Should switch to MemMapFs", func() {
			SetMemMapFs()
			fs := API()
			So(fs, ShouldNotBeNil)
			So(fs.Name(), ShouldEqual, "MemMapFS")
		})
	})
}

func TestGacheFs(t *testing.T) {
	Convey("Gache filesystem adapter", t, func() {
		SetMemMapFs()
		adapter := GacheFs{}

		Convey("Should create directories on the active backend", func() {
			err := adapter.MkdirAll("/cache/nested", os.ModePerm)
			So(err, ShouldBeNil)

			exists, err := API().DirExists("/cache/nested")
			So(err, ShouldBeNil)
			So(exists, ShouldBeTrue)
		})

		Convey("Should open files on the active backend", func() {
			file, err := adapter.OpenFile("/cache/data.json", os.O_CREATE|os.O_RDWR, os.ModePerm)
			So(err, ShouldBeNil)

			_, err = file.Write([]byte("{}"))
			So(err, ShouldBeNil)
			So(file.Close(), ShouldBeNil)

			contents, err := API().ReadFile("/cache/data.json")
			So(err, ShouldBeNil)
			So(string(contents), ShouldEqual, "{}")
		})
	})
}
