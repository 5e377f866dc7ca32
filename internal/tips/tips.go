// Package tips persists the one-time usage hint flag locally. The flag
// never syncs with the server and never expires.
package tips

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// StorageKey is the fixed key the dismissal flag is stored under.
const StorageKey = "tip-dismissed"

const appDir = "readhelper"

// Store reads and writes the tip flag under a base directory.
type Store struct {
	path string
}

// NewStore creates a store rooted at the XDG state directory.
func NewStore() *Store {
	return &Store{path: filepath.Join(xdg.StateHome, appDir, StorageKey)}
}

// NewStoreAt creates a store rooted at an explicit directory, used in
// tests.
func NewStoreAt(dir string) *Store {
	return &Store{path: filepath.Join(dir, StorageKey)}
}

// Dismissed reports whether the tip has been dismissed before.
func (s *Store) Dismissed() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Dismiss records the dismissal. Dismissing twice is a no-op.
func (s *Store) Dismiss() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(s.path, []byte("1\n"), 0o644)
}
