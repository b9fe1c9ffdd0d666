package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/adreel-cli/adreel/filesystem"
	"github.com/adreel-cli/adreel/playback"
	"github.com/adreel-cli/adreel/player"
	"github.com/adreel-cli/adreel/playlist"
	tea "github.com/charmbracelet/bubbletea"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

type stubResolver struct{}

func (stubResolver) Resolve(_ context.Context, link string) (playback.Stream, error) {
	if link == "broken" {
		return playback.Stream{}, playback.NewError(playback.ErrLinkInaccessible, link, errors.New("403"))
	}
	return playback.Stream{URL: "https://cdn.example/" + link, Title: link}, nil
}

type stubEngine struct {
	played []string
	paused bool
	closed bool
}

func (e *stubEngine) Available() error { return nil }

func (e *stubEngine) Play(url, _ string) error {
	e.played = append(e.played, url)
	e.paused = false
	return nil
}

func (e *stubEngine) SetPaused(paused bool) error {
	e.paused = paused
	return nil
}

func (e *stubEngine) Close() error {
	e.closed = true
	return nil
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// drain executes cmd and every command it batches, collecting the messages.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}

	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}

	var msgs []tea.Msg
	for _, c := range batch {
		msgs = append(msgs, drain(c)...)
	}
	return msgs
}

func feed(b *statefulBubble, msg tea.Msg) {
	_, cmd := b.Update(msg)
	for _, m := range drain(cmd) {
		if r, ok := m.(playback.Result); ok {
			b.Update(r)
		}
	}
}

func TestCollectorForm(t *testing.T) {
	Convey("Given a collector form", t, func() {
		store := playlist.NewStore("/adreel/playlist.json")
		b := newBubble(&Options{})
		b.form = newForm(playlist.NewCollector(store))
		b.setState(collectState)

		Convey("It starts with one focused slot", func() {
			So(b.form.slots, ShouldHaveLength, 1)
			So(b.form.slots[0].video.Focused(), ShouldBeTrue)
		})

		Convey("When submitting an incomplete row", func() {
			b.form.slots[0].video.SetValue("https://drive.google.com/file/d/ABC123/view")
			b.Update(tea.KeyMsg{Type: tea.KeyEnter})

			Convey("Then an error is shown on the missing field and nothing is written", func() {
				So(errors.Is(b.form.err, playlist.ErrMissingField), ShouldBeTrue)
				So(b.form.slots[0].click.Focused(), ShouldBeTrue)
				So(b.collected, ShouldBeNil)
				So(store.Exists(), ShouldBeFalse)
			})
		})

		Convey("When adding and removing rows", func() {
			b.Update(tea.KeyMsg{Type: tea.KeyCtrlN})
			So(b.form.slots, ShouldHaveLength, 2)
			So(b.form.slots[1].video.Focused(), ShouldBeTrue)

			b.Update(tea.KeyMsg{Type: tea.KeyCtrlX})
			So(b.form.slots, ShouldHaveLength, 1)

			b.Update(tea.KeyMsg{Type: tea.KeyCtrlX})
			So(b.form.slots, ShouldHaveLength, 1)
			So(errors.Is(b.form.err, playlist.ErrLastEntry), ShouldBeTrue)
		})

		Convey("When removing the first row while it has focus", func() {
			b.Update(tea.KeyMsg{Type: tea.KeyCtrlN})
			b.Update(tea.KeyMsg{Type: tea.KeyCtrlN})
			second := b.form.slots[1]
			b.form.focusField(1)

			b.Update(tea.KeyMsg{Type: tea.KeyCtrlX})

			Convey("Then focus moves to the new first row", func() {
				So(b.form.slots, ShouldHaveLength, 2)
				So(b.form.slots[0], ShouldEqual, second)
				So(b.form.focus, ShouldEqual, 0)
				So(second.video.Focused(), ShouldBeTrue)
			})
		})

		Convey("When submitting a valid row", func() {
			b.form.slots[0].video.SetValue("https://drive.google.com/file/d/ABC123/view")
			b.form.slots[0].click.SetValue("http://example.com")
			b.Update(tea.KeyMsg{Type: tea.KeyEnter})

			Convey("Then the playlist is collected and handed off", func() {
				So(b.collected, ShouldHaveLength, 1)
				loaded, err := store.Load()
				So(err, ShouldBeNil)
				So(loaded[0].Landing, ShouldEqual, "http://example.com")
			})
		})
	})
}

func newRemote(p playlist.Playlist, options Options) (*statefulBubble, *playback.Controller, *stubEngine, *[]string) {
	engine := &stubEngine{}
	opened := &[]string{}

	controller, err := playback.New(p, stubResolver{}, engine, playback.BrowserFunc(func(url string) error {
		*opened = append(*opened, url)
		return nil
	}))
	if err != nil {
		panic(err)
	}

	first, err := controller.Start(context.Background(), 0)
	if err != nil {
		panic(err)
	}

	options.Controller = controller
	options.First = first

	b := newBubble(&options)
	b.controller = controller
	b.setState(loadingState)

	for _, m := range drain(b.Init()) {
		if r, ok := m.(playback.Result); ok {
			b.Update(r)
		}
	}

	return b, controller, engine, opened
}

func TestRemoteEvents(t *testing.T) {
	videos := playlist.Playlist{
		{Source: "first", Landing: "http://one.example"},
		{Source: "second", Landing: "http://two.example"},
	}

	Convey("Given a remote playing the first video", t, func() {
		b, controller, engine, _ := newRemote(videos, Options{})
		So(controller.State(), ShouldEqual, playback.Playing)

		Convey("A pause made in the player window is mirrored in the view", func() {
			feed(b, player.Event{Kind: player.EventPause, Paused: true})
			So(controller.State(), ShouldEqual, playback.Paused)
			So(controller.IsPlaying(), ShouldBeFalse)
			So(b.View(), ShouldContainSubstring, "Paused")

			feed(b, player.Event{Kind: player.EventPause, Paused: false})
			So(controller.State(), ShouldEqual, playback.Playing)
			So(b.View(), ShouldNotContainSubstring, "Paused")
		})

		Convey("End of file does not advance when auto-advance is off", func() {
			feed(b, player.Event{Kind: player.EventEOF})
			So(controller.Index(), ShouldEqual, 0)
			So(engine.played, ShouldHaveLength, 1)
		})

		Convey("Closing the player window shuts the remote down", func() {
			_, cmd := b.Update(playerExitedMsg{})
			So(engine.closed, ShouldBeTrue)
			So(controller.State(), ShouldEqual, playback.Idle)
			So(cmd, ShouldNotBeNil)
			So(cmd(), ShouldHaveSameTypeAs, tea.QuitMsg{})
		})
	})

	Convey("Given a remote with auto-advance", t, func() {
		b, controller, engine, _ := newRemote(videos, Options{AutoAdvance: true})

		Convey("End of file plays the next video", func() {
			feed(b, player.Event{Kind: player.EventEOF})
			So(controller.Index(), ShouldEqual, 1)
			So(controller.State(), ShouldEqual, playback.Playing)
			So(engine.played, ShouldResemble, []string{"https://cdn.example/first", "https://cdn.example/second"})
		})

		Convey("End of file while paused does not advance", func() {
			feed(b, player.Event{Kind: player.EventPause, Paused: true})
			feed(b, player.Event{Kind: player.EventEOF})
			So(controller.Index(), ShouldEqual, 0)
			So(engine.played, ShouldHaveLength, 1)
		})

		Convey("A repeated end of file during the next load is ignored", func() {
			_, cmd := b.Update(player.Event{Kind: player.EventEOF})
			So(controller.State(), ShouldEqual, playback.Loading)
			b.Update(player.Event{Kind: player.EventEOF})
			So(controller.Index(), ShouldEqual, 1)

			for _, m := range drain(cmd) {
				if r, ok := m.(playback.Result); ok {
					b.Update(r)
				}
			}
			So(controller.Index(), ShouldEqual, 1)
			So(controller.State(), ShouldEqual, playback.Playing)
		})
	})
}

func TestRemote(t *testing.T) {
	Convey("Given a playback remote over two videos", t, func() {
		engine := &stubEngine{}
		var opened []string
		p := playlist.Playlist{
			{Source: "first", Landing: "http://one.example"},
			{Source: "broken", Landing: "http://two.example"},
		}

		controller, err := playback.New(p, stubResolver{}, engine, playback.BrowserFunc(func(url string) error {
			opened = append(opened, url)
			return nil
		}))
		So(err, ShouldBeNil)

		first, err := controller.Start(context.Background(), 0)
		So(err, ShouldBeNil)

		b := newBubble(&Options{Controller: controller, First: first})
		b.controller = controller
		b.setState(loadingState)

		for _, m := range drain(b.Init()) {
			if r, ok := m.(playback.Result); ok {
				b.Update(r)
			}
		}

		Convey("The first video plays", func() {
			So(b.state, ShouldEqual, playingState)
			So(controller.State(), ShouldEqual, playback.Playing)
			So(engine.played, ShouldResemble, []string{"https://cdn.example/first"})
		})

		Convey("Space pauses and resumes", func() {
			feed(b, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
			So(controller.State(), ShouldEqual, playback.Paused)
			So(engine.paused, ShouldBeTrue)

			feed(b, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
			So(controller.State(), ShouldEqual, playback.Playing)
			So(engine.paused, ShouldBeFalse)
		})

		Convey("o opens the landing link", func() {
			feed(b, runes("o"))
			So(opened, ShouldResemble, []string{"http://one.example"})
		})

		Convey("n moves to an inaccessible video and keeps accepting navigation", func() {
			feed(b, runes("n"))
			So(controller.State(), ShouldEqual, playback.Failed)
			So(b.state, ShouldEqual, playingState)
			So(b.View(), ShouldContainSubstring, "link inaccessible")

			feed(b, runes("n"))
			So(controller.Index(), ShouldEqual, 0)
			So(controller.State(), ShouldEqual, playback.Playing)
		})

		Convey("q closes the engine", func() {
			feed(b, runes("q"))
			So(engine.closed, ShouldBeTrue)
		})
	})
}
