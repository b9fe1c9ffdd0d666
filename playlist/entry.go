// Package playlist models the ordered list of videos handed from the collector to the player.
package playlist

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Entry pairs a share link with the landing link opened when the viewer clicks through.
type Entry struct {
	// Source is the cloud share link of the video.
	Source string `json:"video" jsonschema:"title=Video,description=Share link of the video,pattern=^https://drive\\.google\\.com/"`
	// Landing is opened verbatim in the browser.
	Landing string `json:"click_url" jsonschema:"title=Click URL,description=Landing page opened on click,pattern=^http"`
}

func (e Entry) String() string {
	return fmt.Sprintf("%s -> %s", e.Source, e.Landing)
}

// Playlist is an ordered sequence of entries. Insertion order is play order.
type Playlist []Entry

// Len returns the number of entries.
func (p Playlist) Len() int {
	return len(p)
}

// At returns the entry at i, wrapping around in both directions.
func (p Playlist) At(i int) Entry {
	return p[Wrap(i, len(p))]
}

// Fingerprint identifies the playlist by content, used as the resume history key.
func (p Playlist) Fingerprint() string {
	h := sha256.New()
	for _, e := range p {
		h.Write([]byte(e.Source))
		h.Write([]byte{0})
		h.Write([]byte(e.Landing))
		h.Write([]byte{'\n'})
	}
	return hex.EncodeToString(h.Sum(nil))[:16]
}

// Wrap maps i into [0, n). n must be positive.
func Wrap(i, n int) int {
	return ((i % n) + n) % n
}
