package cmd

import (
	"errors"
	"testing"

	"github.com/adreel-cli/adreel/filesystem"
	"github.com/adreel-cli/adreel/playlist"
	. "github.com/smartystreets/goconvey/convey"
)

const (
	shareLink = "https://drive.google.com/file/d/ABC123/view"
	otherLink = "https://drive.google.com/file/d/XYZ789/view"
)

func TestAppendEntry(t *testing.T) {
	Convey("Given no saved playlist", t, func() {
		store := playlist.NewStore("/adreel/add/playlist.json")
		_ = filesystem.API().Remove(store.Path)

		Convey("Adding a valid pair creates the playlist", func() {
			p, err := appendEntry(store, shareLink, "http://example.com")
			So(err, ShouldBeNil)
			So(p, ShouldHaveLength, 1)

			saved, err := store.Load()
			So(err, ShouldBeNil)
			So(saved, ShouldResemble, p)
		})

		Convey("Adding an invalid pair writes nothing", func() {
			_, err := appendEntry(store, "http://notdrive.com/x", "http://example.com")
			So(errors.Is(err, playlist.ErrInvalidSourceLink), ShouldBeTrue)
			So(store.Exists(), ShouldBeFalse)
		})

		Convey("Adding to an existing playlist appends one entry", func() {
			_, err := appendEntry(store, shareLink, "http://example.com")
			So(err, ShouldBeNil)

			p, err := appendEntry(store, otherLink, "https://sponsor.example")
			So(err, ShouldBeNil)
			So(p, ShouldResemble, playlist.Playlist{
				{Source: shareLink, Landing: "http://example.com"},
				{Source: otherLink, Landing: "https://sponsor.example"},
			})

			Convey("An invalid addition keeps the saved entries", func() {
				_, err := appendEntry(store, otherLink, "")
				So(errors.Is(err, playlist.ErrMissingField), ShouldBeTrue)

				saved, err := store.Load()
				So(err, ShouldBeNil)
				So(saved, ShouldHaveLength, 2)
			})
		})
	})
}

func TestImportFile(t *testing.T) {
	Convey("Given a saved playlist", t, func() {
		store := playlist.NewStore("/adreel/import/playlist.json")
		So(store.Save(playlist.Playlist{{Source: shareLink, Landing: "http://example.com"}}), ShouldBeNil)

		Convey("A valid file replaces it", func() {
			raw := `[{"video": "` + otherLink + `", "click_url": "https://a.example"}, {"video": "` + shareLink + `", "click_url": "https://b.example"}]`
			So(filesystem.API().WriteFile("/incoming/good.json", []byte(raw), 0644), ShouldBeNil)

			p, err := importFile(store, "/incoming/good.json")
			So(err, ShouldBeNil)
			So(p, ShouldHaveLength, 2)

			saved, err := store.Load()
			So(err, ShouldBeNil)
			So(saved, ShouldResemble, p)
		})

		Convey("A file with an invalid entry is rejected and nothing is written", func() {
			raw := `[{"video": "` + shareLink + `", "click_url": "https://a.example"}, {"video": "https://example.com/v.mp4", "click_url": "https://b.example"}]`
			So(filesystem.API().WriteFile("/incoming/bad.json", []byte(raw), 0644), ShouldBeNil)

			_, err := importFile(store, "/incoming/bad.json")
			var verr *playlist.ValidationError
			So(errors.As(err, &verr), ShouldBeTrue)
			So(verr.Index, ShouldEqual, 1)
			So(verr.Kind, ShouldEqual, playlist.ErrInvalidSourceLink)

			saved, err := store.Load()
			So(err, ShouldBeNil)
			So(saved, ShouldResemble, playlist.Playlist{{Source: shareLink, Landing: "http://example.com"}})
		})

		Convey("An empty or malformed file is rejected", func() {
			So(filesystem.API().WriteFile("/incoming/empty.json", []byte(`[]`), 0644), ShouldBeNil)
			_, err := importFile(store, "/incoming/empty.json")
			So(err, ShouldEqual, playlist.ErrEmptyPlaylist)

			So(filesystem.API().WriteFile("/incoming/broken.json", []byte(`{`), 0644), ShouldBeNil)
			_, err = importFile(store, "/incoming/broken.json")
			So(err, ShouldNotBeNil)
		})

		Convey("A missing file is reported", func() {
			_, err := importFile(store, "/incoming/none.json")
			So(err, ShouldNotBeNil)
		})
	})
}
