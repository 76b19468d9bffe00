// Package store persists saved palettes and the working session as JSON files.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/swatch/internal/palette"
)

const (
	// SavedFile holds every palette the user has saved, oldest first.
	SavedFile = "saved-palettes.json"

	// SessionFile holds the current working palette.
	SessionFile = "session.json"
)

// Store reads and writes palette files under a data directory.
type Store struct {
	dir    string
	logger hclog.Logger
}

// New creates a store rooted at dir. A nil logger discards output.
func New(dir string, logger hclog.Logger) *Store {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Store{
		dir:    dir,
		logger: logger.Named("store"),
	}
}

// Dir returns the data directory.
func (s *Store) Dir() string {
	return s.dir
}

// SavedPath returns the path of the saved palettes file.
func (s *Store) SavedPath() string {
	return filepath.Join(s.dir, SavedFile)
}

// SessionPath returns the path of the session file.
func (s *Store) SessionPath() string {
	return filepath.Join(s.dir, SessionFile)
}

// Load returns all saved palettes. A missing or empty file means nothing
// has been saved yet and yields an empty list.
func (s *Store) Load() ([]palette.Palette, error) {
	var saved []palette.Palette
	found, err := s.readJSON(s.SavedPath(), &saved)
	if err != nil {
		return nil, err
	}
	if !found || saved == nil {
		s.logger.Debug("no saved palettes", "path", s.SavedPath())
		return []palette.Palette{}, nil
	}
	return saved, nil
}

// Append adds p to the end of the saved palettes and returns the new count.
func (s *Store) Append(p palette.Palette) (int, error) {
	saved, err := s.Load()
	if err != nil {
		return 0, err
	}

	if p == nil {
		p = palette.Palette{}
	}
	saved = append(saved, p.Clone())
	if err := s.writeJSON(s.SavedPath(), saved); err != nil {
		return 0, err
	}

	s.logger.Debug("saved palette", "path", s.SavedPath(), "colours", len(p), "total", len(saved))
	return len(saved), nil
}

// LoadSession returns the working palette, or an empty palette if there is none.
func (s *Store) LoadSession() (palette.Palette, error) {
	var p palette.Palette
	found, err := s.readJSON(s.SessionPath(), &p)
	if err != nil {
		return nil, err
	}
	if !found {
		s.logger.Debug("no session", "path", s.SessionPath())
		return palette.Palette{}, nil
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("session %s: %w", s.SessionPath(), err)
	}
	return p, nil
}

// SaveSession replaces the working palette.
func (s *Store) SaveSession(p palette.Palette) error {
	if p == nil {
		p = palette.Palette{}
	}
	if err := s.writeJSON(s.SessionPath(), p); err != nil {
		return err
	}
	s.logger.Debug("session written", "path", s.SessionPath(), "colours", len(p))
	return nil
}

// readJSON decodes path into v. found is false when the file is missing or blank.
func (s *Store) readJSON(path string, v any) (found bool, err error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is built from the configured data directory
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return true, nil
}

// writeJSON writes v to path via a temp file and rename.
func (s *Store) writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil { // #nosec G301 -- data directory is user-owned
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
