// Package player drives external media players. The mpv backend is controlled
// over its JSON-IPC socket, the VLC backend over its rc interface.
package player

import (
	"fmt"
	"os/exec"
	"strings"
)

// Player is a media engine window the playback controller hands streams to.
type Player interface {
	// Name returns the executable name of the backend.
	Name() string

	// Available fails when the backend executable cannot be found.
	Available() error

	// Play replaces the current media with url, starting the player on first use.
	Play(url, title string) error

	// SetPaused pauses or resumes playback.
	SetPaused(paused bool) error

	// TogglePause inverts the current pause state.
	TogglePause() error

	// IsRunning reports whether the player process is alive and answering.
	IsRunning() bool

	// Close terminates the player and releases its resources.
	Close() error

	// Wait returns a channel closed when the player process exits.
	Wait() <-chan struct{}
}

// Names lists the supported backends.
func Names() []string {
	return []string{"mpv", "vlc"}
}

// New returns the backend called name.
func New(name string) (Player, error) {
	switch strings.ToLower(name) {
	case "", "mpv":
		return NewMPV(), nil
	case "vlc":
		return NewVLC(), nil
	default:
		return nil, fmt.Errorf("unknown player %q, available: %s", name, strings.Join(Names(), ", "))
	}
}

func lookPath(name string) error {
	if _, err := exec.LookPath(name); err != nil {
		return fmt.Errorf("%s media player is not installed: %w", name, err)
	}
	return nil
}
