package playback

import (
	"errors"
	"fmt"
)

// Failure kinds of a load. Match with errors.Is.
var (
	ErrLinkUnresolvable = errors.New("link unresolvable")
	ErrLinkInaccessible = errors.New("link inaccessible")
	ErrEngineInitFailed = errors.New("playback engine unavailable")
	ErrExtractionFailed = errors.New("stream extraction failed")
	// ErrEngineFailed is a running engine refusing a stream. Unlike ErrEngineInitFailed it is recoverable.
	ErrEngineFailed = errors.New("playback engine error")
)

// ErrNotLoaded is returned by transport commands that need a loaded entry.
var ErrNotLoaded = errors.New("nothing is loaded")

// Error is a playback failure tied to the link being loaded.
type Error struct {
	Kind error
	Link string
	Err  error
}

// NewError wraps cause as a failure of the given kind.
func NewError(kind error, link string, cause error) *Error {
	return &Error{Kind: kind, Link: link, Err: cause}
}

func (e *Error) Error() string {
	msg := e.Kind.Error()
	if hint := hints[e.Kind]; hint != "" {
		msg += "\n" + hint
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Is matches the failure kind as well as the wrapped cause.
func (e *Error) Is(target error) bool {
	return e.Kind == target
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Fatal reports whether the controller cannot continue after err.
func Fatal(err error) bool {
	return errors.Is(err, ErrEngineInitFailed)
}

var hints = map[error]string{
	ErrLinkInaccessible: "Video is not accessible. Please make sure:\n" +
		"1. The video file exists\n" +
		"2. The link sharing is set to 'Anyone with the link'\n" +
		"3. You have copied the correct link",
}
