package playback

import (
	"context"
	"errors"
	"testing"

	"github.com/adreel-cli/adreel/playlist"
	. "github.com/smartystreets/goconvey/convey"
)

func newTestController(p playlist.Playlist) (*Controller, *fakeResolver, *fakeEngine, *fakeBrowser) {
	r := &fakeResolver{fail: map[string]error{}}
	e := &fakeEngine{}
	b := &fakeBrowser{}
	c, err := New(p, r, e, b)
	if err != nil {
		panic(err)
	}
	return c, r, e, b
}

func entries(links ...string) playlist.Playlist {
	p := make(playlist.Playlist, len(links))
	for i, l := range links {
		p[i] = playlist.Entry{Source: l, Landing: "http://landing/" + l}
	}
	return p
}

func TestController(t *testing.T) {
	Convey("Given an empty playlist", t, func() {
		_, err := New(nil, &fakeResolver{}, &fakeEngine{}, &fakeBrowser{})
		So(err, ShouldEqual, playlist.ErrEmptyPlaylist)
	})

	Convey("Given a started controller over three entries", t, func() {
		c, r, e, b := newTestController(entries("a", "b", "c"))
		So(c.State(), ShouldEqual, Idle)

		task, err := c.Start(context.Background(), 0)
		So(err, ShouldBeNil)
		So(c.State(), ShouldEqual, Loading)
		So(c.Await(task), ShouldBeNil)

		Convey("It plays the first entry", func() {
			So(c.State(), ShouldEqual, Playing)
			So(c.IsPlaying(), ShouldBeTrue)
			So(c.Index(), ShouldEqual, 0)
			So(e.played, ShouldResemble, []string{"https://cdn.example/a"})
		})

		Convey("Next then Previous returns to the same index", func() {
			So(c.Await(c.Next()), ShouldBeNil)
			So(c.Index(), ShouldEqual, 1)
			So(c.Await(c.Previous()), ShouldBeNil)
			So(c.Index(), ShouldEqual, 0)
		})

		Convey("Previous from the first entry wraps to the last", func() {
			So(c.Await(c.Previous()), ShouldBeNil)
			So(c.Index(), ShouldEqual, 2)
			So(c.Await(c.Next()), ShouldBeNil)
			So(c.Index(), ShouldEqual, 0)
		})

		Convey("Every navigation re-resolves", func() {
			c.Await(c.Next())
			c.Await(c.Previous())
			So(r.calls(), ShouldResemble, []string{"a", "b", "a"})
		})

		Convey("Two toggles return to Playing with a playing engine", func() {
			So(c.TogglePlayPause(), ShouldBeNil)
			So(c.State(), ShouldEqual, Paused)
			So(c.IsPlaying(), ShouldBeFalse)
			So(e.paused, ShouldBeTrue)

			So(c.TogglePlayPause(), ShouldBeNil)
			So(c.State(), ShouldEqual, Playing)
			So(c.IsPlaying(), ShouldBeTrue)
			So(e.paused, ShouldBeFalse)
		})

		Convey("OpenLandingLink opens the current landing link", func() {
			So(c.OpenLandingLink(), ShouldBeNil)
			So(b.opened, ShouldResemble, []string{"http://landing/a"})
		})

		Convey("A pause made in the engine window is mirrored", func() {
			c.SyncPaused(true)
			So(c.State(), ShouldEqual, Paused)
			So(c.IsPlaying(), ShouldBeFalse)
		})

		Convey("A failed load leaves the controller usable", func() {
			r.fail["b"] = NewError(ErrLinkInaccessible, "b", errors.New("403"))

			err := c.Await(c.Next())
			So(errors.Is(err, ErrLinkInaccessible), ShouldBeTrue)
			So(c.State(), ShouldEqual, Failed)
			So(c.IsPlaying(), ShouldBeFalse)
			So(c.Snapshot().Err, ShouldEqual, err)

			Convey("Transport commands are ignored", func() {
				So(c.TogglePlayPause(), ShouldEqual, ErrNotLoaded)
				So(c.OpenLandingLink(), ShouldEqual, ErrNotLoaded)
				So(b.opened, ShouldBeEmpty)
			})

			Convey("Navigating away recovers", func() {
				So(c.Await(c.Next()), ShouldBeNil)
				So(c.State(), ShouldEqual, Playing)
				So(c.Index(), ShouldEqual, 2)
			})
		})

		Convey("A new load is not reported as playing", func() {
			task := c.Next()
			So(c.State(), ShouldEqual, Loading)
			So(c.Snapshot().IsPlaying, ShouldBeFalse)
			So(c.Await(task), ShouldBeNil)
			So(c.IsPlaying(), ShouldBeTrue)
		})

		Convey("A running engine refusing a stream is recoverable", func() {
			e.refuse = []error{errors.New("ipc timeout")}

			err := c.Await(c.Next())
			So(errors.Is(err, ErrEngineFailed), ShouldBeTrue)
			So(errors.Is(err, ErrEngineInitFailed), ShouldBeFalse)
			So(Fatal(err), ShouldBeFalse)
			So(c.State(), ShouldEqual, Failed)
			So(c.IsPlaying(), ShouldBeFalse)

			So(c.Await(c.Next()), ShouldBeNil)
			So(c.State(), ShouldEqual, Playing)
			So(c.Index(), ShouldEqual, 2)
		})

		Convey("Close releases the engine", func() {
			So(c.Close(), ShouldBeNil)
			So(e.closed, ShouldBeTrue)
			So(c.State(), ShouldEqual, Idle)
		})
	})

	Convey("Given a playlist of one", t, func() {
		c, r, e, _ := newTestController(entries("solo"))
		task, _ := c.Start(context.Background(), 0)
		So(c.Await(task), ShouldBeNil)

		Convey("Next and Previous keep the index but reload", func() {
			So(c.Await(c.Next()), ShouldBeNil)
			So(c.Index(), ShouldEqual, 0)
			So(c.Await(c.Previous()), ShouldBeNil)
			So(c.Index(), ShouldEqual, 0)
			So(r.calls(), ShouldHaveLength, 3)
			So(e.played, ShouldHaveLength, 3)
		})
	})

	Convey("Given a missing engine", t, func() {
		c, _, e, _ := newTestController(entries("a"))
		e.unavailable = true

		_, err := c.Start(context.Background(), 0)

		Convey("Start fails fatally", func() {
			So(errors.Is(err, ErrEngineInitFailed), ShouldBeTrue)
			So(Fatal(err), ShouldBeTrue)
			So(c.State(), ShouldEqual, Failed)
		})
	})

	Convey("Given an engine that cannot be spawned", t, func() {
		c, _, e, _ := newTestController(entries("a", "b"))
		e.refuse = []error{errors.New("exec: mpv: permission denied")}

		task, err := c.Start(context.Background(), 0)
		So(err, ShouldBeNil)
		err = c.Await(task)

		Convey("The first hand-off failure is fatal", func() {
			So(errors.Is(err, ErrEngineInitFailed), ShouldBeTrue)
			So(Fatal(err), ShouldBeTrue)
			So(c.State(), ShouldEqual, Failed)
		})
	})

	Convey("Given a load that is superseded", t, func() {
		c, r, e, _ := newTestController(entries("a", "b"))
		r.block = make(chan struct{})

		first, _ := c.Start(context.Background(), 0)
		results := make(chan Result, 1)
		go func() { results <- first.Run() }()

		second := c.Next()
		stale := <-results

		Convey("The stale result is discarded", func() {
			So(errors.Is(stale.Err, context.Canceled), ShouldBeTrue)
			So(c.Complete(stale), ShouldBeFalse)
			So(c.State(), ShouldEqual, Loading)

			r.block = nil
			So(c.Await(second), ShouldBeNil)
			So(c.Index(), ShouldEqual, 1)
			So(e.played, ShouldResemble, []string{"https://cdn.example/b"})
		})
	})

	Convey("Start wraps the requested index", t, func() {
		c, _, _, _ := newTestController(entries("a", "b"))
		task, err := c.Start(context.Background(), 5)
		So(err, ShouldBeNil)
		So(task.Index, ShouldEqual, 1)
	})
}
