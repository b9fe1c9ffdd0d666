// Package drive talks to the cloud share host: share link parsing, accessibility probing and metadata lookups.
package drive

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/adreel-cli/adreel/constant"
	"github.com/adreel-cli/adreel/util"
)

// ErrNoFileID is returned when a share link carries no recognizable file identifier.
var ErrNoFileID = errors.New("no file id in share link")

var (
	pathID  = regexp.MustCompile(`/d/(?P<id>[\w-]+)(?:[/?#]|$)`)
	queryID = regexp.MustCompile(`[?&]id=(?P<id>[\w-]+)`)
)

// FileID extracts the file identifier from /file/d/<id>/view, /d/<id> or ?id=<id> style links.
func FileID(link string) (string, error) {
	for _, re := range []*regexp.Regexp{pathID, queryID} {
		if id := util.ReGroups(re, link)["id"]; id != "" {
			return id, nil
		}
	}

	return "", fmt.Errorf("%w: %s", ErrNoFileID, link)
}

// DirectURL returns the direct download endpoint for a file.
func DirectURL(id string) string {
	return fmt.Sprintf(constant.DriveDirectURL, id)
}
