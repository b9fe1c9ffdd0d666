package playback

import (
	"context"
	"errors"
	"sync"
)

type fakeResolver struct {
	mu       sync.Mutex
	resolved []string
	fail     map[string]error
	block    chan struct{}
}

func (r *fakeResolver) Resolve(ctx context.Context, link string) (Stream, error) {
	r.mu.Lock()
	r.resolved = append(r.resolved, link)
	block := r.block
	r.mu.Unlock()

	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return Stream{}, ctx.Err()
		}
	}

	if err := r.fail[link]; err != nil {
		return Stream{}, err
	}
	return Stream{URL: "https://cdn.example/" + link, Title: link, FileID: link}, nil
}

func (r *fakeResolver) calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.resolved...)
}

type fakeEngine struct {
	mu          sync.Mutex
	unavailable bool
	played      []string
	paused      bool
	closed      bool
	// refuse makes the next Play calls fail, one error per call.
	refuse []error
}

func (e *fakeEngine) Available() error {
	if e.unavailable {
		return errors.New("mpv not found in PATH")
	}
	return nil
}

func (e *fakeEngine) Play(url, _ string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.refuse) > 0 {
		err := e.refuse[0]
		e.refuse = e.refuse[1:]
		return err
	}
	e.played = append(e.played, url)
	e.paused = false
	return nil
}

func (e *fakeEngine) SetPaused(paused bool) error {
	e.paused = paused
	return nil
}

func (e *fakeEngine) Close() error {
	e.closed = true
	return nil
}

type fakeBrowser struct {
	opened []string
}

func (b *fakeBrowser) Open(url string) error {
	b.opened = append(b.opened, url)
	return nil
}
