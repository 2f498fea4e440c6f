package ports

import "go.trai.ch/autoload/internal/core/domain"

// LoadCache is the process-wide record of executed source units, keyed by
// normalized relative path. Entries persist for the process lifetime; a
// vanished backing file does not evict its entry.
//
//go:generate mockgen -source=load_cache.go -destination=mocks/mock_load_cache.go -package=mocks
type LoadCache interface {
	// Normalize returns the canonical cache key for a tag+name pair. Inputs
	// that normalize to the same string are equivalent for all operations.
	Normalize(tag, name string) string

	// IsLoaded reports whether the tag+name pair has been loaded, under
	// normalization.
	IsLoaded(tag, name string) bool

	// MarkLoaded records that tag+name was executed from absPath, stat-ing
	// absPath at call time for the modification timestamp. It inserts or
	// overwrites the entry.
	MarkLoaded(tag, name, absPath string) error

	// Rebind is MarkLoaded for an already-normalized key. Used when the file
	// was located by means other than the tag+name search walk.
	Rebind(relPath, absPath string) error

	// Entries returns a deterministic snapshot of the cache. Iterating the
	// snapshot never observes entries inserted after the call.
	Entries() []domain.Entry
}
