package playback

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/adreel-cli/adreel/log"
	"github.com/adreel-cli/adreel/playlist"
)

// Controller owns the playback cursor and the engine for its whole lifetime.
type Controller struct {
	playlist playlist.Playlist

	index   int
	playing bool
	state   State
	stream  Stream
	err     error

	resolver Resolver
	engine   Engine
	browser  Browser

	base   context.Context
	gen    uint64
	cancel context.CancelFunc

	// engineMu serializes hand-offs to the engine across load tasks.
	engineMu sync.Mutex
	// engineUp is set once the engine accepted a stream. Guarded by engineMu.
	engineUp bool
}

// New creates an idle controller. The playlist must not be empty.
func New(p playlist.Playlist, resolver Resolver, engine Engine, browser Browser) (*Controller, error) {
	if len(p) == 0 {
		return nil, playlist.ErrEmptyPlaylist
	}

	return &Controller{
		playlist: p,
		resolver: resolver,
		engine:   engine,
		browser:  browser,
		base:     context.Background(),
	}, nil
}

// Task is one pending load of a playlist entry.
type Task struct {
	Gen   uint64
	Index int
	Entry playlist.Entry

	ctx        context.Context
	controller *Controller
}

// Result is the outcome of a Task.
type Result struct {
	Gen    uint64
	Index  int
	Stream Stream
	Err    error
}

// Start checks the engine and begins loading the entry at index (wrapped into range).
// An unavailable engine is fatal and returned as ErrEngineInitFailed.
func (c *Controller) Start(ctx context.Context, index int) (*Task, error) {
	if err := c.engine.Available(); err != nil {
		c.state = Failed
		c.err = NewError(ErrEngineInitFailed, "", err)
		return nil, c.err
	}

	if ctx != nil {
		c.base = ctx
	}

	c.index = playlist.Wrap(index, len(c.playlist))
	return c.begin(), nil
}

// Next moves the cursor forward, wrapping to the first entry, and begins loading it.
func (c *Controller) Next() *Task {
	return c.move(1)
}

// Previous moves the cursor back, wrapping to the last entry, and begins loading it.
func (c *Controller) Previous() *Task {
	return c.move(-1)
}

// Reload begins loading the current entry again.
func (c *Controller) Reload() *Task {
	return c.move(0)
}

func (c *Controller) move(delta int) *Task {
	c.index = playlist.Wrap(c.index+delta, len(c.playlist))
	return c.begin()
}

// begin supersedes any in-flight load and enters Loading.
func (c *Controller) begin() *Task {
	if c.cancel != nil {
		c.cancel()
	}

	c.gen++
	ctx, cancel := context.WithCancel(c.base)
	c.cancel = cancel

	c.state = Loading
	c.playing = false
	c.err = nil

	entry := c.playlist[c.index]
	log.WithFields(log.Fields{
		"index": c.index,
		"total": len(c.playlist),
		"gen":   c.gen,
	}).Infof("loading %s", entry.Source)

	return &Task{
		Gen:        c.gen,
		Index:      c.index,
		Entry:      entry,
		ctx:        ctx,
		controller: c,
	}
}

// Run resolves the entry and hands the stream to the engine. It blocks and may
// run on any goroutine; it does not touch controller state.
func (t *Task) Run() Result {
	res := Result{Gen: t.Gen, Index: t.Index}
	c := t.controller

	stream, err := c.resolver.Resolve(t.ctx, t.Entry.Source)
	if err != nil {
		res.Err = err
		return res
	}

	c.engineMu.Lock()
	defer c.engineMu.Unlock()

	// A newer navigation owns the engine now.
	if err := t.ctx.Err(); err != nil {
		res.Err = err
		return res
	}

	if err := c.engine.Play(stream.URL, stream.Title); err != nil {
		// Only an engine that never accepted a stream is fatal.
		kind := ErrEngineInitFailed
		if c.engineUp {
			kind = ErrEngineFailed
		}
		res.Err = NewError(kind, t.Entry.Source, err)
		return res
	}
	c.engineUp = true

	res.Stream = stream
	return res
}

// Complete applies a task result. Results of superseded tasks are ignored and
// reported as not applied.
func (c *Controller) Complete(r Result) bool {
	if r.Gen != c.gen || c.state != Loading {
		log.Debugf("discarding stale load result %d (current %d)", r.Gen, c.gen)
		return false
	}

	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}

	if r.Err != nil {
		if errors.Is(r.Err, context.Canceled) {
			r.Err = fmt.Errorf("loading video %d was cancelled", r.Index+1)
		}
		log.Errorf("error loading video: %v", r.Err)
		c.state = Failed
		c.playing = false
		c.err = r.Err
		return true
	}

	log.Infof("playing %s", r.Stream.Title)
	c.state = Playing
	c.playing = true
	c.stream = r.Stream
	return true
}

// Await runs a task inline and applies its result, returning the load error if any.
func (c *Controller) Await(t *Task) error {
	if t == nil {
		return c.err
	}
	r := t.Run()
	c.Complete(r)
	if r.Gen != c.gen {
		return nil
	}
	return c.err
}

// TogglePlayPause flips the engine between playing and paused. It is only valid
// while an entry is loaded.
func (c *Controller) TogglePlayPause() error {
	if !c.state.Loaded() {
		return ErrNotLoaded
	}

	if err := c.engine.SetPaused(c.playing); err != nil {
		return fmt.Errorf("toggle pause: %w", err)
	}

	c.mirror(!c.playing)
	return nil
}

// SyncPaused mirrors a pause change made directly in the engine window.
func (c *Controller) SyncPaused(paused bool) {
	if !c.state.Loaded() {
		return
	}
	c.mirror(!paused)
}

func (c *Controller) mirror(playing bool) {
	c.playing = playing
	if playing {
		c.state = Playing
	} else {
		c.state = Paused
	}
}

// OpenLandingLink opens the landing link of the loaded entry in the browser.
func (c *Controller) OpenLandingLink() error {
	if !c.state.Loaded() {
		return ErrNotLoaded
	}

	link := c.playlist[c.index].Landing
	log.Infof("opening landing link %s", link)
	return c.browser.Open(link)
}

// Snapshot returns the observable state.
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		State:     c.state,
		Index:     c.index,
		Len:       len(c.playlist),
		IsPlaying: c.playing,
		Entry:     c.playlist[c.index],
		Stream:    c.stream,
		Err:       c.err,
	}
}

// State returns the lifecycle state.
func (c *Controller) State() State {
	return c.state
}

// Index returns the cursor position.
func (c *Controller) Index() int {
	return c.index
}

// IsPlaying mirrors the engine play/pause state.
func (c *Controller) IsPlaying() bool {
	return c.playing
}

// Playlist returns the controlled playlist.
func (c *Controller) Playlist() playlist.Playlist {
	return c.playlist
}

// Close cancels any pending load and releases the engine.
func (c *Controller) Close() error {
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.state = Idle
	c.playing = false

	c.engineMu.Lock()
	defer c.engineMu.Unlock()
	return c.engine.Close()
}
