package planfile

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/replan/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store persists the serialized plan at a fixed path. It implements
// ports.PlanStore.
type Store struct {
	path string
}

// NewStore creates a Store backed by the file at the given path.
func NewStore(path string) *Store {
	return &Store{path: filepath.Clean(path)}
}

// Load reads and validates the persisted plan. A missing file is not an
// error; it returns nil, nil so the caller falls through to a full rebuild.
func (s *Store) Load() (*domain.Graph, error) {
	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.Wrap(err, "failed to read plan file")
	}
	return Parse(data)
}

// Save persists the given graph as a serialized plan.
func (s *Store) Save(g *domain.Graph) error {
	data, err := Marshal(g)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return zerr.Wrap(err, "failed to create directory for plan file")
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return zerr.Wrap(err, "failed to write plan file")
	}
	return nil
}
