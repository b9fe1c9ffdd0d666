package playlist

import (
	"errors"
	"fmt"

	"github.com/adreel-cli/adreel/log"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

// ErrLastEntry is returned when removing the only remaining slot.
var ErrLastEntry = errors.New("cannot remove the only video")

// ErrUnknownHandle is returned for handles that were never issued or were already removed.
var ErrUnknownHandle = errors.New("unknown entry")

// Handle refers to one editable slot of a Collector.
type Handle uuid.UUID

func (h Handle) String() string {
	return uuid.UUID(h).String()
}

type slot struct {
	handle Handle
	entry  Entry
}

// Collector gathers (source, landing) pairs before they are handed to the player.
// It always holds at least one slot.
type Collector struct {
	slots []*slot
	store *Store
}

// NewCollector creates a collector with one empty slot. Finalize writes to store.
func NewCollector(store *Store) *Collector {
	c := &Collector{store: store}
	c.AddEntry()
	return c
}

// NewCollectorFrom seeds a collector with existing entries, e.g. a previous hand-off record.
func NewCollectorFrom(store *Store, p Playlist) *Collector {
	if len(p) == 0 {
		return NewCollector(store)
	}

	c := &Collector{store: store}
	for _, e := range p {
		h := c.AddEntry()
		_ = c.Set(h, e.Source, e.Landing)
	}
	return c
}

// AddEntry appends an empty slot and returns its handle.
func (c *Collector) AddEntry() Handle {
	h := Handle(uuid.New())
	c.slots = append(c.slots, &slot{handle: h})
	return h
}

// Set replaces the links held by a slot.
func (c *Collector) Set(h Handle, source, landing string) error {
	s, ok := c.find(h)
	if !ok {
		return ErrUnknownHandle
	}
	s.entry = Entry{Source: source, Landing: landing}
	return nil
}

// Get returns the links held by a slot.
func (c *Collector) Get(h Handle) (Entry, error) {
	s, ok := c.find(h)
	if !ok {
		return Entry{}, ErrUnknownHandle
	}
	return s.entry, nil
}

// Remove deletes a slot. The sole remaining slot cannot be removed.
func (c *Collector) Remove(h Handle) error {
	_, idx, ok := lo.FindIndexOf(c.slots, func(s *slot) bool { return s.handle == h })
	if !ok {
		return ErrUnknownHandle
	}

	if len(c.slots) == 1 {
		return ErrLastEntry
	}

	c.slots = append(c.slots[:idx], c.slots[idx+1:]...)
	return nil
}

// Handles returns the slot handles in display order.
func (c *Collector) Handles() []Handle {
	return lo.Map(c.slots, func(s *slot, _ int) Handle { return s.handle })
}

// Len returns the number of slots.
func (c *Collector) Len() int {
	return len(c.slots)
}

// Entries returns the current contents, valid or not.
func (c *Collector) Entries() Playlist {
	return lo.Map(c.slots, func(s *slot, _ int) Entry { return s.entry })
}

// Finalize validates every slot in order and, on success, persists the playlist.
// Nothing is written when validation fails.
func (c *Collector) Finalize() (Playlist, error) {
	p := c.Entries()
	if err := p.Validate(); err != nil {
		log.Warnf("collector validation failed: %v", err)
		return nil, err
	}

	if c.store != nil {
		if err := c.store.Save(p); err != nil {
			return nil, fmt.Errorf("hand off playlist: %w", err)
		}
	}

	return p, nil
}

func (c *Collector) find(h Handle) (*slot, bool) {
	return lo.Find(c.slots, func(s *slot) bool { return s.handle == h })
}
