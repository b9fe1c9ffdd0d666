// Package resolve turns share links into direct stream URLs the playback engine can open.
package resolve

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/adreel-cli/adreel/drive"
	"github.com/adreel-cli/adreel/key"
	"github.com/adreel-cli/adreel/log"
	"github.com/adreel-cli/adreel/playback"
	"github.com/spf13/viper"
)

// Prober checks that a file is reachable without signing in.
type Prober interface {
	Probe(ctx context.Context, id string) error
}

// Extractor asks the extraction backend for a directly playable URL.
type Extractor interface {
	Extract(ctx context.Context, target string) (string, error)
}

// Titler names a file for display.
type Titler interface {
	Title(ctx context.Context, id string) string
}

// Resolver resolves share links eagerly on every call; nothing is cached
// because share permissions may change between navigations.
type Resolver struct {
	Prober    Prober
	Extractor Extractor
	Titler    Titler
}

// New builds the resolver configured by the resolve.* and drive.* settings.
func New() *Resolver {
	timeout := time.Duration(viper.GetInt(key.ResolveProbeTimeout)) * time.Second

	return &Resolver{
		Prober:    drive.NewProber(timeout),
		Extractor: NewYTDLP(viper.GetString(key.ResolveFormat)),
		Titler:    &drive.Metadata{},
	}
}

// Resolve parses the file id, probes accessibility, then extracts the stream URL.
func (r *Resolver) Resolve(ctx context.Context, link string) (playback.Stream, error) {
	id, err := drive.FileID(link)
	if err != nil {
		return playback.Stream{}, playback.NewError(playback.ErrLinkUnresolvable, link, err)
	}

	log.Infof("resolving file %s", id)

	if err := r.Prober.Probe(ctx, id); err != nil {
		if isCancel(ctx, err) {
			return playback.Stream{}, err
		}
		return playback.Stream{}, playback.NewError(playback.ErrLinkInaccessible, link, err)
	}

	direct := drive.DirectURL(id)
	log.Debugf("converted drive link: %s", direct)

	streamURL, err := r.Extractor.Extract(ctx, direct)
	if err != nil {
		if isCancel(ctx, err) {
			return playback.Stream{}, err
		}
		return playback.Stream{}, playback.NewError(playback.ErrExtractionFailed, link, err)
	}
	if streamURL == "" {
		return playback.Stream{}, playback.NewError(playback.ErrExtractionFailed, link, fmt.Errorf("no url for %s", id))
	}

	title := id
	if r.Titler != nil {
		title = r.Titler.Title(ctx, id)
	}

	return playback.Stream{URL: streamURL, Title: title, FileID: id}, nil
}

func isCancel(ctx context.Context, err error) bool {
	return ctx.Err() != nil || errors.Is(err, context.Canceled)
}
