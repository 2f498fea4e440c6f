package loader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.trai.ch/autoload/internal/core/domain"
	"go.trai.ch/autoload/internal/core/ports"
	"go.trai.ch/zerr"
)

// Monitor re-checks every load cache entry against disk state and reloads or
// re-resolves entries whose backing file changed or disappeared.
type Monitor struct {
	resolver ports.PathResolver
	cache    ports.LoadCache
	runtime  ports.Runtime
	logger   ports.Logger
}

// NewMonitor creates a new Monitor with the given dependencies.
func NewMonitor(
	resolver ports.PathResolver,
	cache ports.LoadCache,
	runtime ports.Runtime,
	logger ports.Logger,
) *Monitor {
	return &Monitor{
		resolver: resolver,
		cache:    cache,
		runtime:  runtime,
		logger:   logger,
	}
}

// ReloadChanged brings every cache entry up to date with disk state.
//
// An entry whose file is unchanged is left alone. An entry whose file has a
// newer modification time is re-executed in place. An entry whose file is
// gone is re-resolved against the search directories and, if a replacement
// exists anywhere, loaded from its new location; with no replacement the
// stale entry is kept.
//
// The pass is all-or-nothing: the first failure aborts it and propagates.
func (m *Monitor) ReloadChanged(ctx context.Context) error {
	for _, entry := range m.cache.Entries() {
		info, err := os.Stat(entry.AbsPath)
		switch {
		case err == nil:
			if !info.ModTime().After(entry.ModifiedAt) {
				continue
			}
			if err := m.reload(ctx, entry.RelPath, entry.AbsPath); err != nil {
				return err
			}

		case os.IsNotExist(err):
			if err := m.resolveVanished(ctx, entry); err != nil {
				return err
			}

		default:
			return zerr.With(zerr.Wrap(err, domain.ErrStatFailed.Error()), "path", entry.AbsPath)
		}
	}

	return nil
}

// resolveVanished walks the search directories for a replacement of a
// vanished file. A found replacement is loaded as if fresh; none found leaves
// the stale entry in place.
func (m *Monitor) resolveVanished(ctx context.Context, entry domain.Entry) error {
	dirs, err := m.resolver.SearchDirs()
	if err != nil {
		return err
	}

	for _, dir := range dirs {
		candidate := filepath.Join(dir, filepath.FromSlash(entry.RelPath))
		if _, statErr := os.Stat(candidate); statErr != nil {
			continue
		}
		m.logger.Info(fmt.Sprintf("%s moved to %s", entry.RelPath, dir))
		return m.reload(ctx, entry.RelPath, candidate)
	}

	// No replacement anywhere. The entry stays, pointing at a file that no
	// longer exists, on the assumption the file may return.
	return nil
}

// reload executes absPath and rebinds the cache entry to it.
func (m *Monitor) reload(ctx context.Context, relPath, absPath string) error {
	if err := m.runtime.Execute(ctx, absPath); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrLoadFailed.Error()), "path", absPath)
	}
	return m.cache.Rebind(relPath, absPath)
}
