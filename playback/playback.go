// Package playback implements the controller that walks a playlist, resolves each
// entry and drives the external playback engine.
//
// The controller is owned by a single dispatch goroutine (the UI event loop).
// Loading an entry is split in two: Begin-style methods (Start, Next, Previous,
// Reload) return a Task whose Run performs the blocking work anywhere, and
// Complete applies its Result back on the dispatch goroutine. Starting a new
// load cancels the one in flight; results of superseded tasks are discarded.
package playback

import (
	"context"

	"github.com/adreel-cli/adreel/playlist"
)

// State is the position of the controller in its lifecycle.
type State int

const (
	Idle State = iota
	Loading
	Playing
	Paused
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Loading:
		return "Loading"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	case Failed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// Loaded reports whether an entry is on screen.
func (s State) Loaded() bool {
	return s == Playing || s == Paused
}

// Stream is a resolved, directly playable entry.
type Stream struct {
	URL    string
	Title  string
	FileID string
}

// Resolver turns a share link into a Stream.
type Resolver interface {
	Resolve(ctx context.Context, link string) (Stream, error)
}

// Engine is the external media player.
type Engine interface {
	// Available fails when the engine cannot be started at all.
	Available() error
	// Play replaces whatever is playing with url and starts playback.
	Play(url, title string) error
	SetPaused(paused bool) error
	Close() error
}

// Browser opens landing links.
type Browser interface {
	Open(url string) error
}

// BrowserFunc adapts a function to Browser.
type BrowserFunc func(url string) error

func (f BrowserFunc) Open(url string) error {
	return f(url)
}

// Snapshot is a copy of the observable controller state.
type Snapshot struct {
	State     State
	Index     int
	Len       int
	IsPlaying bool
	Entry     playlist.Entry
	Stream    Stream
	Err       error
}
