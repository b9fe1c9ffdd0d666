package tui

import (
	"github.com/adreel-cli/adreel/history"
	"github.com/adreel-cli/adreel/internal/ui"
	"github.com/adreel-cli/adreel/log"
	"github.com/adreel-cli/adreel/playback"
	"github.com/adreel-cli/adreel/player"
	tea "github.com/charmbracelet/bubbletea"
)

// playerExitedMsg is sent when the player window was closed.
type playerExitedMsg struct{}

// eventsClosedMsg is sent when the event listener connection ended.
type eventsClosedMsg struct{}

// watchPlayer waits for the player window to close. The player must be running.
func (b *statefulBubble) watchPlayer() tea.Cmd {
	if b.watching || b.options.Player == nil {
		return nil
	}
	b.watching = true

	exited := b.options.Player.Wait()
	return func() tea.Msg {
		<-exited
		return playerExitedMsg{}
	}
}

// listen attaches to mpv pause and end-of-file notifications once mpv is up.
func (b *statefulBubble) listen() tea.Cmd {
	if b.events != nil {
		return nil
	}

	mpv, ok := b.options.Player.(*player.MPV)
	if !ok {
		return nil
	}

	events, err := player.Listen(mpv)
	if err != nil {
		log.Warnf("cannot observe mpv: %v", err)
		return nil
	}

	b.events = events
	return b.waitForEvent()
}

func (b *statefulBubble) waitForEvent() tea.Cmd {
	if b.events == nil {
		return nil
	}

	events := b.events.Events()
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return eventsClosedMsg{}
		}
		return event
	}
}

// onLoaded applies a load result and starts the follow-up commands.
func (b *statefulBubble) onLoaded(result playback.Result) tea.Cmd {
	if !b.controller.Complete(result) {
		return nil
	}

	if result.Err != nil {
		if playback.Fatal(result.Err) {
			b.raiseError(result.Err)
			return nil
		}
		b.syncState()
		return nil
	}

	b.syncState()

	if b.options.Resume {
		if err := history.Save(b.controller.Playlist(), result.Index); err != nil {
			log.Warnf("cannot save position: %v", err)
		}
	}

	return tea.Batch(b.watchPlayer(), b.listen())
}

func (b *statefulBubble) onEvent(event player.Event) tea.Cmd {
	switch event.Kind {
	case player.EventPause:
		b.controller.SyncPaused(event.Paused)
		b.syncState()
	case player.EventEOF:
		if b.options.AutoAdvance && b.controller.State() == playback.Playing {
			return tea.Batch(b.waitForEvent(), b.load(b.controller.Next()))
		}
	}

	return b.waitForEvent()
}

func (b *statefulBubble) togglePlayPause() tea.Cmd {
	if err := b.controller.TogglePlayPause(); err != nil {
		return ui.Notify(err.Error())
	}

	b.syncState()
	return nil
}

func (b *statefulBubble) openLandingLink() tea.Cmd {
	if err := b.controller.OpenLandingLink(); err != nil {
		return ui.Notify(err.Error())
	}

	return ui.Notify("Opened " + b.controller.Snapshot().Entry.Landing)
}

func (b *statefulBubble) shutdown() tea.Cmd {
	if b.events != nil {
		b.events.Stop()
	}

	if b.controller != nil {
		if err := b.controller.Close(); err != nil {
			log.Warnf("closing player: %v", err)
		}
	}

	return tea.Quit
}
