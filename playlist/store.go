package playlist

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adreel-cli/adreel/filesystem"
	"github.com/adreel-cli/adreel/log"
	"github.com/adreel-cli/adreel/util"
	"github.com/invopop/jsonschema"
)

// ErrEmptyPlaylist is returned when there is nothing to play.
var ErrEmptyPlaylist = errors.New("playlist is empty")

// Store persists the hand-off record as a JSON array of {"video", "click_url"} objects.
type Store struct {
	Path string
}

// NewStore returns a store backed by the file at path.
func NewStore(path string) *Store {
	return &Store{Path: path}
}

// Exists reports whether a record has already been written.
func (s *Store) Exists() bool {
	exists, err := filesystem.API().Exists(s.Path)
	return err == nil && exists
}

// Save writes the playlist, replacing any previous record.
func (s *Store) Save(p Playlist) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("encode playlist: %w", err)
	}

	fs := filesystem.API()
	if err := fs.MkdirAll(filepath.Dir(s.Path), os.ModePerm); err != nil {
		return fmt.Errorf("create playlist directory: %w", err)
	}

	if err := fs.WriteFile(s.Path, data, 0644); err != nil {
		return fmt.Errorf("write playlist: %w", err)
	}

	log.Infof("saved %s to %s", util.Quantify(len(p), "video", "videos"), s.Path)
	return nil
}

// Load reads the record once. An empty record is an error.
func (s *Store) Load() (Playlist, error) {
	data, err := filesystem.API().ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read playlist: %w", err)
	}

	return Decode(data)
}

// Decode parses a hand-off record.
func Decode(data []byte) (Playlist, error) {
	var p Playlist
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decode playlist: %w", err)
	}

	if len(p) == 0 {
		return nil, ErrEmptyPlaylist
	}

	return p, nil
}

// Schema describes the hand-off record.
func Schema() *jsonschema.Schema {
	reflector := new(jsonschema.Reflector)
	reflector.Anonymous = true
	reflector.DoNotReference = true
	return reflector.Reflect(Playlist{})
}
