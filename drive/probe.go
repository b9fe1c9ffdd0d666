package drive

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/adreel-cli/adreel/constant"
	"github.com/adreel-cli/adreel/log"
	"github.com/adreel-cli/adreel/network"
	"github.com/adreel-cli/adreel/util"
)

// AccessError reports a non-success answer from the accessibility probe.
type AccessError struct {
	ID     string
	Status int
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("file %s answered %d %s", e.ID, e.Status, http.StatusText(e.Status))
}

// Prober checks whether a shared file can be fetched without signing in.
type Prober struct {
	Client  *http.Client
	Timeout time.Duration
	// URL builds the probed address; DirectURL when nil.
	URL func(id string) string
}

// NewProber returns a prober using the shared HTTP client.
func NewProber(timeout time.Duration) *Prober {
	return &Prober{
		Client:  network.Client,
		Timeout: timeout,
		URL:     DirectURL,
	}
}

// Probe issues a HEAD request, following redirects, and succeeds only on 200.
func (p *Prober) Probe(ctx context.Context, id string) error {
	if p.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.Timeout)
		defer cancel()
	}

	target := DirectURL(id)
	if p.URL != nil {
		target = p.URL(id)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, target, nil)
	if err != nil {
		return fmt.Errorf("build probe request: %w", err)
	}
	req.Header.Set("User-Agent", constant.UserAgent)

	client := p.Client
	if client == nil {
		client = network.Client
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("probe %s: %w", id, err)
	}
	defer util.Ignore(resp.Body.Close)

	log.Debugf("probe %s: %d", id, resp.StatusCode)

	if resp.StatusCode != http.StatusOK {
		return &AccessError{ID: id, Status: resp.StatusCode}
	}
	return nil
}
