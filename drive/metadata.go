package drive

import (
	"context"
	"sync"

	"github.com/adreel-cli/adreel/auth"
	"github.com/adreel-cli/adreel/key"
	"github.com/adreel-cli/adreel/log"
	"github.com/spf13/viper"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// Metadata looks up file names through the Drive API. The zero value is usable
// and falls back to the file id whenever no API key is configured.
type Metadata struct {
	// APIKey overrides the keyring and config lookup when set.
	APIKey string
	// Endpoint overrides the API base path; used by tests.
	Endpoint string

	mu      sync.Mutex
	service *drive.Service
}

// APIKey returns the Drive API key, preferring the system keyring over the config file.
func APIKey() string {
	if k, err := auth.GetDriveKey(); err == nil && k != "" {
		return k
	}
	return viper.GetString(key.DriveAPIKey)
}

// Title returns a human-readable title for the file. It never fails: any problem
// degrades to the file id.
func (m *Metadata) Title(ctx context.Context, id string) string {
	if !viper.GetBool(key.DriveFetchTitles) {
		return id
	}

	svc, err := m.client(ctx)
	if err != nil {
		log.Debugf("drive metadata unavailable: %v", err)
		return id
	}
	if svc == nil {
		return id
	}

	file, err := svc.Files.Get(id).Fields("name").SupportsAllDrives(true).Context(ctx).Do()
	if err != nil {
		log.Warnf("drive metadata for %s: %v", id, err)
		return id
	}

	if file.Name == "" {
		return id
	}
	return file.Name
}

func (m *Metadata) client(ctx context.Context) (*drive.Service, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.service != nil {
		return m.service, nil
	}

	apiKey := m.APIKey
	if apiKey == "" {
		apiKey = APIKey()
	}
	if apiKey == "" {
		return nil, nil
	}

	opts := []option.ClientOption{option.WithAPIKey(apiKey)}
	if m.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(m.Endpoint))
	}

	svc, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, err
	}

	m.service = svc
	return svc, nil
}
