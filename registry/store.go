package registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Store reads and writes a Registry at a fixed path.
type Store struct {
	Path string
}

func NewStore(path string) *Store {
	return &Store{Path: path}
}

// Load reads the persisted registry. A missing file yields the defaults
// and no error. Any other failure also yields the defaults, along with the
// error so the caller can warn about it.
func (s *Store) Load() (*Registry, error) {
	b, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("registry: read %s: %w", s.Path, err)
	}

	r := New()
	if err := json.Unmarshal(b, r); err != nil {
		return Default(), fmt.Errorf("registry: parse %s: %w", s.Path, err)
	}
	if err := r.Validate(); err != nil {
		return Default(), fmt.Errorf("%s: %w", s.Path, err)
	}
	return r, nil
}

// Save overwrites the persisted registry. Empty registries are refused so
// a good configuration is never replaced by nothing.
func (s *Store) Save(r *Registry) error {
	if err := r.Validate(); err != nil {
		return err
	}
	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')
	if err := os.WriteFile(s.Path, b, 0644); err != nil {
		return fmt.Errorf("registry: write %s: %w", s.Path, err)
	}
	return nil
}

func (s *Store) Exists() (bool, error) {
	_, err := os.Stat(s.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Reset removes the persisted registry. It returns false if there was
// nothing to remove.
func (s *Store) Reset() (bool, error) {
	if err := os.Remove(s.Path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("registry: remove %s: %w", s.Path, err)
	}
	return true, nil
}
