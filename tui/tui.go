// Package tui provides the terminal user interface: the link collector form
// and the playback remote that drives the external player window.
package tui

import (
	"errors"

	"github.com/adreel-cli/adreel/playback"
	"github.com/adreel-cli/adreel/player"
	"github.com/adreel-cli/adreel/playlist"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrAborted is returned when the user leaves the collector without submitting.
var ErrAborted = errors.New("aborted by user")

// Options encapsulates the runtime configuration of the playback remote.
type Options struct {
	Controller *playback.Controller
	Player     player.Player
	// First is the load started by Controller.Start.
	First *playback.Task
	// AutoAdvance moves to the next video when the current one ends.
	AutoAdvance bool
	// Resume saves the position of every loaded video to history.
	Resume bool
}

// Collect runs the collector form and returns the finalized playlist.
func Collect(collector *playlist.Collector) (playlist.Playlist, error) {
	bubble := newBubble(&Options{})
	bubble.form = newForm(collector)
	bubble.setState(collectState)

	if _, err := tea.NewProgram(bubble, tea.WithAltScreen()).Run(); err != nil {
		return nil, err
	}

	if bubble.collected == nil {
		return nil, ErrAborted
	}
	return bubble.collected, nil
}

// Play runs the playback remote until the user quits or the engine fails.
// A fatal engine failure is returned.
func Play(options *Options) error {
	bubble := newBubble(options)
	bubble.controller = options.Controller
	bubble.setState(loadingState)

	if _, err := tea.NewProgram(bubble, tea.WithAltScreen()).Run(); err != nil {
		return err
	}

	if bubble.lastError != nil && playback.Fatal(bubble.lastError) {
		return bubble.lastError
	}
	return nil
}
