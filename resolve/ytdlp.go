package resolve

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/adreel-cli/adreel/log"
	"github.com/lrstanley/go-ytdlp"
)

// installTimeout bounds one attempt at fetching the yt-dlp binary.
const installTimeout = 2 * time.Minute

// YTDLP extracts stream URLs with yt-dlp, installing it on first use when missing.
type YTDLP struct {
	// Format is the yt-dlp format selector, "best" when empty.
	Format string

	// install fetches yt-dlp when it is not on PATH; ytdlp.Install when nil.
	install func(ctx context.Context) error

	mu        sync.Mutex
	installed bool
}

// NewYTDLP returns an extractor for the given format selector.
func NewYTDLP(format string) *YTDLP {
	return &YTDLP{Format: format}
}

// ensureInstalled makes sure yt-dlp is available. A failed attempt is retried on
// the next call. The attempt is detached from ctx so a superseded load does not
// abort an install other loads are waiting on.
func (y *YTDLP) ensureInstalled() error {
	y.mu.Lock()
	defer y.mu.Unlock()

	if y.installed {
		return nil
	}

	install := y.install
	if install == nil {
		install = func(ctx context.Context) error {
			_, err := ytdlp.Install(ctx, nil)
			return err
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), installTimeout)
	defer cancel()

	if err := install(ctx); err != nil {
		log.Warnf("yt-dlp install: %v", err)
		return fmt.Errorf("install yt-dlp: %w", err)
	}

	y.installed = true
	return nil
}

// Extract prints the URL of the selected format without downloading anything.
func (y *YTDLP) Extract(ctx context.Context, target string) (string, error) {
	if err := y.ensureInstalled(); err != nil {
		return "", err
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	format := y.Format
	if format == "" {
		format = "best"
	}

	res, err := ytdlp.New().
		Format(format).
		NoWarnings().
		Print("urls").
		Run(ctx, target)
	if err != nil {
		return "", fmt.Errorf("yt-dlp %s: %w", target, err)
	}

	return firstURL(res.Stdout)
}

// firstURL picks the first line of yt-dlp output; split formats print one URL per line.
func firstURL(out string) (string, error) {
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "http") {
			return line, nil
		}
	}
	return "", fmt.Errorf("could not extract video URL, please check if the video is accessible")
}
