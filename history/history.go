// Package history remembers where playback of each playlist stopped, so
// "play --continue" can pick up at the same entry.
package history

import (
	"time"

	"github.com/adreel-cli/adreel/filesystem"
	"github.com/adreel-cli/adreel/playlist"
	"github.com/adreel-cli/adreel/where"
	"github.com/metafates/gache"
	"github.com/samber/mo"
)

var cacher = gache.New[map[string]*Position](
	&gache.Options{
		Path:       where.History(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// Get returns every saved position keyed by playlist fingerprint.
func Get() (map[string]*Position, error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return make(map[string]*Position), nil
	}
	return cached, nil
}

// Lookup returns the saved position for p, if any.
func Lookup(p playlist.Playlist) (mo.Option[*Position], error) {
	saved, err := Get()
	if err != nil {
		return mo.None[*Position](), err
	}

	position, ok := saved[p.Fingerprint()]
	if !ok || position.Index < 0 || position.Index >= p.Len() {
		return mo.None[*Position](), nil
	}
	return mo.Some(position), nil
}

// Save records index as the last loaded entry of p.
func Save(p playlist.Playlist, index int) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	position := newPosition(p, index)
	saved[position.Fingerprint] = position

	return cacher.Set(saved)
}

// Remove forgets the position of the playlist with the given fingerprint.
func Remove(fingerprint string) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	delete(saved, fingerprint)
	return cacher.Set(saved)
}

func newPosition(p playlist.Playlist, index int) *Position {
	return &Position{
		Fingerprint: p.Fingerprint(),
		Index:       index,
		Entries:     p.Len(),
		Source:      p.At(index).Source,
		UpdatedAt:   time.Now(),
	}
}
