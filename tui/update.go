package tui

import (
	"github.com/adreel-cli/adreel/log"
	"github.com/adreel-cli/adreel/playback"
	"github.com/adreel-cli/adreel/player"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if uiCmd := b.notifier.Update(msg); uiCmd != nil {
		cmd = uiCmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
		return b, cmd
	case spinner.TickMsg:
		if b.state != loadingState {
			return b, cmd
		}
		var tick tea.Cmd
		b.spinnerC, tick = b.spinnerC.Update(msg)
		return b, tea.Batch(cmd, tick)
	case playback.Result:
		return b, b.onLoaded(msg)
	case player.Event:
		return b, b.onEvent(msg)
	case eventsClosedMsg:
		log.Debug("mpv event stream closed")
		b.events = nil
		return b, nil
	case playerExitedMsg:
		log.Info("player window closed")
		return b, b.shutdown()
	case tea.KeyMsg:
		if key.Matches(msg, b.keymap.forceQuit) {
			return b, b.shutdown()
		}
	}

	switch b.state {
	case collectState:
		return b.updateCollect(msg, cmd)
	case loadingState, playingState:
		return b.updatePlaying(msg, cmd)
	case errorState:
		return b.updateError(msg, cmd)
	}

	return b, cmd
}

func (b *statefulBubble) updateCollect(msg tea.Msg, cmd tea.Cmd) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return b, tea.Batch(cmd, b.form.update(msg))
	}

	switch {
	case key.Matches(keyMsg, b.keymap.cancel):
		return b, tea.Quit
	case key.Matches(keyMsg, b.keymap.addSlot):
		return b, b.form.add()
	case key.Matches(keyMsg, b.keymap.removeSlot):
		return b, b.form.remove()
	case key.Matches(keyMsg, b.keymap.nextField):
		return b, b.form.focusField(b.form.focus + 1)
	case key.Matches(keyMsg, b.keymap.prevField):
		return b, b.form.focusField(b.form.focus - 1)
	case key.Matches(keyMsg, b.keymap.submit):
		p, focus := b.form.submit()
		if p == nil {
			return b, focus
		}
		b.collected = p
		return b, tea.Quit
	}

	return b, tea.Batch(cmd, b.form.update(msg))
}

func (b *statefulBubble) updatePlaying(msg tea.Msg, cmd tea.Cmd) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return b, cmd
	}

	switch {
	case key.Matches(keyMsg, b.keymap.quit):
		return b, b.shutdown()
	case key.Matches(keyMsg, b.keymap.next):
		return b, b.load(b.controller.Next())
	case key.Matches(keyMsg, b.keymap.prev):
		return b, b.load(b.controller.Previous())
	case key.Matches(keyMsg, b.keymap.reload):
		return b, b.load(b.controller.Reload())
	case key.Matches(keyMsg, b.keymap.playPause):
		return b, b.togglePlayPause()
	case key.Matches(keyMsg, b.keymap.openURL):
		return b, b.openLandingLink()
	case key.Matches(keyMsg, b.keymap.showHelp):
		b.helpC.ShowAll = !b.helpC.ShowAll
	}

	return b, cmd
}

func (b *statefulBubble) updateError(msg tea.Msg, cmd tea.Cmd) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, b.keymap.quit) {
		return b, b.shutdown()
	}
	return b, cmd
}
