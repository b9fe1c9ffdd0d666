package playlist

import (
	"errors"
	"testing"

	"github.com/adreel-cli/adreel/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

const (
	validSource  = "https://drive.google.com/file/d/ABC123/view"
	validLanding = "http://example.com"
)

func TestCollector(t *testing.T) {
	Convey("Given a new collector", t, func() {
		store := NewStore("/tmp/adreel-test/collector.json")
		_ = filesystem.API().Remove(store.Path)
		c := NewCollector(store)
		first := c.Handles()[0]

		Convey("It starts with one empty slot", func() {
			So(c.Len(), ShouldEqual, 1)
		})

		Convey("The sole slot cannot be removed", func() {
			So(c.Remove(first), ShouldEqual, ErrLastEntry)
			So(c.Len(), ShouldEqual, 1)
		})

		Convey("Added slots can be removed again", func() {
			second := c.AddEntry()
			So(c.Len(), ShouldEqual, 2)
			So(c.Remove(second), ShouldBeNil)
			So(c.Len(), ShouldEqual, 1)
			So(c.Remove(second), ShouldEqual, ErrUnknownHandle)
		})

		Convey("Removing the first slot keeps the others in order", func() {
			second := c.AddEntry()
			third := c.AddEntry()
			So(c.Remove(first), ShouldBeNil)
			So(c.Handles(), ShouldResemble, []Handle{second, third})
		})

		Convey("Finalize with a missing field", func() {
			So(c.Set(first, validSource, ""), ShouldBeNil)
			p, err := c.Finalize()

			Convey("Fails with MissingField and writes nothing", func() {
				So(p, ShouldBeNil)
				So(errors.Is(err, ErrMissingField), ShouldBeTrue)
				So(store.Exists(), ShouldBeFalse)
			})
		})

		Convey("Finalize with a non-drive source link", func() {
			So(c.Set(first, "http://notdrive.com/x", validLanding), ShouldBeNil)
			_, err := c.Finalize()
			So(errors.Is(err, ErrInvalidSourceLink), ShouldBeTrue)
			So(store.Exists(), ShouldBeFalse)
		})

		Convey("Finalize with a landing link not starting with http", func() {
			So(c.Set(first, validSource, "example.com"), ShouldBeNil)
			_, err := c.Finalize()
			So(errors.Is(err, ErrInvalidLandingLink), ShouldBeTrue)
		})

		Convey("The first failing entry is reported", func() {
			So(c.Set(first, validSource, validLanding), ShouldBeNil)
			second := c.AddEntry()
			So(c.Set(second, "ftp://x", ""), ShouldBeNil)

			_, err := c.Finalize()
			var verr *ValidationError
			So(errors.As(err, &verr), ShouldBeTrue)
			So(verr.Index, ShouldEqual, 1)
			So(verr.Kind, ShouldEqual, ErrMissingField)
		})

		Convey("Finalize with valid entries", func() {
			So(c.Set(first, validSource, validLanding), ShouldBeNil)
			second := c.AddEntry()
			So(c.Set(second, "https://drive.google.com/file/d/XYZ/view", "https://sponsor.example"), ShouldBeNil)

			p, err := c.Finalize()

			Convey("Returns the ordered playlist and persists it", func() {
				So(err, ShouldBeNil)
				So(p, ShouldResemble, Playlist{
					{Source: validSource, Landing: validLanding},
					{Source: "https://drive.google.com/file/d/XYZ/view", Landing: "https://sponsor.example"},
				})

				loaded, err := store.Load()
				So(err, ShouldBeNil)
				So(loaded, ShouldResemble, p)
			})
		})
	})

	Convey("Given a collector seeded from a playlist", t, func() {
		p := Playlist{{Source: validSource, Landing: validLanding}}
		c := NewCollectorFrom(nil, p)

		Convey("It exposes the same entries", func() {
			So(c.Entries(), ShouldResemble, p)
			e, err := c.Get(c.Handles()[0])
			So(err, ShouldBeNil)
			So(e.Landing, ShouldEqual, validLanding)
		})
	})
}
