package playlist

import (
	"errors"
	"fmt"
	"strings"

	"github.com/adreel-cli/adreel/constant"
)

// Validation failure kinds. Match with errors.Is.
var (
	ErrMissingField       = errors.New("missing field")
	ErrInvalidSourceLink  = errors.New("invalid source link")
	ErrInvalidLandingLink = errors.New("invalid landing link")
)

// ValidationError reports the first entry that failed validation.
type ValidationError struct {
	Kind  error
	Index int
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case ErrMissingField:
		return fmt.Sprintf("video %d: please fill in all URL fields", e.Index+1)
	case ErrInvalidSourceLink:
		return fmt.Sprintf("video %d: please enter a valid Google Drive URL", e.Index+1)
	case ErrInvalidLandingLink:
		return fmt.Sprintf("video %d: please enter a valid website URL (starting with http:// or https://)", e.Index+1)
	default:
		return fmt.Sprintf("video %d: %v", e.Index+1, e.Kind)
	}
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}

// ValidateEntry checks the superficial shape of a single entry.
func ValidateEntry(e Entry) error {
	switch {
	case strings.TrimSpace(e.Source) == "" || strings.TrimSpace(e.Landing) == "":
		return ErrMissingField
	case !strings.HasPrefix(e.Source, constant.DriveSharePrefix):
		return ErrInvalidSourceLink
	case !strings.HasPrefix(e.Landing, "http"):
		return ErrInvalidLandingLink
	}
	return nil
}

// Validate checks entries in order and reports the first failure.
func (p Playlist) Validate() error {
	if len(p) == 0 {
		return ErrEmptyPlaylist
	}

	for i, e := range p {
		if err := ValidateEntry(e); err != nil {
			return &ValidationError{Kind: err, Index: i}
		}
	}
	return nil
}
