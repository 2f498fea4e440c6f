// Package cache implements the process-wide record of loaded source units.
package cache

import (
	"cmp"
	"os"
	"slices"
	"sync"

	"go.trai.ch/autoload/internal/core/domain"
	"go.trai.ch/autoload/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.LoadCache = (*Cache)(nil)

// Cache implements ports.LoadCache with a mutex-guarded map. The lock is held
// only for map access, never across source execution, so a loaded unit that
// itself triggers further loads does not deadlock.
type Cache struct {
	mu      sync.Mutex
	ext     string
	entries map[string]domain.Entry
}

// New creates an empty Cache using ext as the source file extension.
func New(ext string) *Cache {
	return &Cache{
		ext:     ext,
		entries: make(map[string]domain.Entry),
	}
}

// Normalize returns the canonical cache key for a tag+name pair.
func (c *Cache) Normalize(tag, name string) string {
	return domain.NormalizeRelPath(tag, name, c.ext)
}

// IsLoaded reports whether the tag+name pair has an entry, under
// normalization.
func (c *Cache) IsLoaded(tag, name string) bool {
	key := c.Normalize(tag, name)

	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[key]
	return ok
}

// MarkLoaded records that tag+name was executed from absPath.
func (c *Cache) MarkLoaded(tag, name, absPath string) error {
	return c.Rebind(c.Normalize(tag, name), absPath)
}

// Rebind inserts or overwrites the entry for an already-normalized key,
// stat-ing absPath at call time for the modification timestamp.
func (c *Cache) Rebind(relPath, absPath string) error {
	info, err := os.Stat(absPath)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStatFailed.Error()), "path", absPath)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[relPath] = domain.Entry{
		RelPath:    relPath,
		AbsPath:    absPath,
		ModifiedAt: info.ModTime(),
	}
	return nil
}

// Entries returns a snapshot of the cache sorted by relative path. Entries
// inserted after the call are not observed by iteration over the snapshot,
// which keeps reload passes deterministic and terminating.
func (c *Cache) Entries() []domain.Entry {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]domain.Entry, 0, len(c.entries))
	for _, e := range c.entries {
		out = append(out, e)
	}
	slices.SortFunc(out, func(a, b domain.Entry) int {
		return cmp.Compare(a.RelPath, b.RelPath)
	})
	return out
}
