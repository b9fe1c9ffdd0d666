package history

import (
	"fmt"
	"time"
)

// Position is the last entry loaded from one playlist.
type Position struct {
	Fingerprint string    `json:"fingerprint"`
	Index       int       `json:"index"`
	Entries     int       `json:"entries"`
	Source      string    `json:"video"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (p *Position) String() string {
	return fmt.Sprintf("%d / %d", p.Index+1, p.Entries)
}
