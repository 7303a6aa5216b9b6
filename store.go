package lookupcurve

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// Store is a directory-backed collection of named curves. Each curve lives
// in its own file named <name>.curve.yaml under the store directory, and
// loaded curves are kept in an in-memory map for repeat access.
//
// The map is guarded internally, so Store methods may be called from any
// goroutine. The curves themselves are shared pointers and follow the usual
// LookupCurve rules: concurrent queries with per-goroutine caches are fine,
// mutation needs exclusive access.
type Store struct {
	dir string

	mu     sync.RWMutex
	curves map[string]*LookupCurve
}

// NewStore creates a store rooted at dir. The directory is created lazily
// on the first Save.
func NewStore(dir string) *Store {
	return &Store{
		dir:    dir,
		curves: make(map[string]*LookupCurve),
	}
}

// Path returns the file path backing the given curve name.
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, name+curveFileExt)
}

// Load reads the named curve from disk, replacing any cached copy.
func (s *Store) Load(name string) (*LookupCurve, error) {
	c, err := LoadFile(s.Path(name))
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.curves[name] = c
	s.mu.Unlock()
	return c, nil
}

// LoadAll loads every curve file found in the store directory.
func (s *Store) LoadAll() error {
	matches, err := filepath.Glob(filepath.Join(s.dir, "*"+curveFileExt))
	if err != nil {
		return fmt.Errorf("scanning store directory: %w", err)
	}

	for _, path := range matches {
		name := strings.TrimSuffix(filepath.Base(path), curveFileExt)
		if _, err := s.Load(name); err != nil {
			return err
		}
	}
	return nil
}

// Get returns the cached curve for name. It never touches the disk.
func (s *Store) Get(name string) (*LookupCurve, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.curves[name]
	return c, ok
}

// Save writes the curve to the store directory and caches it under name.
func (s *Store) Save(name string, c *LookupCurve) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating store directory: %w", err)
	}
	if err := c.SaveFile(s.Path(name)); err != nil {
		return err
	}

	s.mu.Lock()
	s.curves[name] = c
	s.mu.Unlock()
	return nil
}

// Names returns the cached curve names in sorted order.
func (s *Store) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.curves))
	for name := range s.curves {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
