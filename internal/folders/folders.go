// Package folders persists the list of recently used output folders in a
// YAML file under the XDG state directory.
package folders

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// maxRecent caps the stored list.
const maxRecent = 5

// Store is a file-backed recent-folder list. It implements
// webmark.FolderStore.
type Store struct {
	mu   sync.Mutex
	path string
}

// NewStore locates the store file under the XDG state home
// (e.g. ~/.local/state/webmark/recent-folders.yaml on Linux).
func NewStore() (*Store, error) {
	path, err := xdg.StateFile("webmark/recent-folders.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to locate state file: %w", err)
	}
	return &Store{path: path}, nil
}

// NewStoreAt uses an explicit file path.
func NewStoreAt(path string) *Store {
	return &Store{path: path}
}

// Recent returns the stored folders, most recent first. A missing store file
// reads as an empty list.
func (s *Store) Recent() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Add records path as the most recently used folder, deduplicating and
// capping the list at five entries.
func (s *Store) Add(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.load()
	if err != nil {
		return err
	}

	updated := []string{path}
	for _, p := range current {
		if p != path {
			updated = append(updated, p)
		}
	}
	if len(updated) > maxRecent {
		updated = updated[:maxRecent]
	}

	data, err := yaml.Marshal(updated)
	if err != nil {
		return fmt.Errorf("failed to encode recent folders: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write recent folders: %w", err)
	}
	return nil
}

func (s *Store) load() ([]string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read recent folders: %w", err)
	}

	var list []string
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to parse recent folders: %w", err)
	}
	return list, nil
}
