package cmd

import (
	"testing"

	"github.com/adreel-cli/adreel/filesystem"
	"github.com/adreel-cli/adreel/history"
	"github.com/adreel-cli/adreel/playlist"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestStartIndex(t *testing.T) {
	Convey("Given a playlist of three videos", t, func() {
		p := playlist.Playlist{
			{Source: "https://drive.google.com/file/d/AAA/view", Landing: "https://shoes.example"},
			{Source: "https://drive.google.com/file/d/BBB/view", Landing: "https://coffee.example"},
			{Source: "https://drive.google.com/file/d/CCC/view", Landing: "https://bikes.example"},
		}

		Convey("It starts at the first video by default", func() {
			i, err := startIndex(p, playOptions{})
			So(err, ShouldBeNil)
			So(i, ShouldEqual, 0)
		})

		Convey("--from picks the closest match", func() {
			i, err := startIndex(p, playOptions{From: "coffee"})
			So(err, ShouldBeNil)
			So(i, ShouldEqual, 1)

			i, err = startIndex(p, playOptions{From: "CCC"})
			So(err, ShouldBeNil)
			So(i, ShouldEqual, 2)
		})

		Convey("--from with no match fails", func() {
			_, err := startIndex(p, playOptions{From: "zzzz"})
			So(err, ShouldNotBeNil)
		})

		Convey("--continue resumes from history", func() {
			So(history.Save(p, 2), ShouldBeNil)
			i, err := startIndex(p, playOptions{Continue: true})
			So(err, ShouldBeNil)
			So(i, ShouldEqual, 2)
			So(history.Remove(p.Fingerprint()), ShouldBeNil)

			i, err = startIndex(p, playOptions{Continue: true})
			So(err, ShouldBeNil)
			So(i, ShouldEqual, 0)
		})
	})
}
