// Package domain contains the core domain types for the autoloader.
package domain

import "time"

// Entry binds a normalized relative path to the absolute file it was last
// loaded from and that file's modification timestamp.
type Entry struct {
	// RelPath is the canonical cache key, e.g. "hooks/startup.lua".
	RelPath string
	// AbsPath is the absolute path the unit was last executed from.
	AbsPath string
	// ModifiedAt is AbsPath's modification time at the moment it was executed.
	ModifiedAt time.Time
}
