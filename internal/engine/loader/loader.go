// Package loader implements the core autoload algorithms: resolving a
// logical plugin name to a file, executing it, and keeping the load cache in
// sync with the plugin tree.
package loader

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/autoload/internal/core/domain"
	"go.trai.ch/autoload/internal/core/ports"
	"go.trai.ch/zerr"
)

// Loader locates the first candidate file for a logical name in the search
// path, executes it and registers it in the load cache.
type Loader struct {
	resolver ports.PathResolver
	cache    ports.LoadCache
	runtime  ports.Runtime
	logger   ports.Logger
	ext      string
}

// NewLoader creates a new Loader with the given dependencies. ext is the
// source file extension, dot included.
func NewLoader(
	resolver ports.PathResolver,
	cache ports.LoadCache,
	runtime ports.Runtime,
	logger ports.Logger,
	ext string,
) *Loader {
	return &Loader{
		resolver: resolver,
		cache:    cache,
		runtime:  runtime,
		logger:   logger,
		ext:      ext,
	}
}

// Load walks the search directories in priority order and executes the first
// existing candidate file for tag+name. It returns true on success and false,
// with no error, when no directory has a candidate.
//
// Any execution failure is wrapped as domain.ErrLoadFailed and propagated;
// the search never continues past a failed candidate.
func (l *Loader) Load(ctx context.Context, tag, name string) (bool, error) {
	dirs, err := l.resolver.SearchDirs()
	if err != nil {
		return false, err
	}

	rel := l.cache.Normalize(tag, name)
	for _, dir := range dirs {
		candidate := filepath.Join(dir, filepath.FromSlash(rel))
		if _, statErr := os.Stat(candidate); statErr != nil {
			continue
		}

		if execErr := l.execute(ctx, candidate); execErr != nil {
			return false, execErr
		}
		if markErr := l.cache.Rebind(rel, candidate); markErr != nil {
			return false, markErr
		}
		l.logger.Info(fmt.Sprintf("loaded %s from %s", rel, dir))
		return true, nil
	}

	return false, nil
}

// LoadAll executes every not-yet-loaded source file found under the tag
// sub-directory of any search directory. Files are executed by absolute path;
// the first failure aborts the call.
func (l *Loader) LoadAll(ctx context.Context, tag string) error {
	dirs, err := l.resolver.SearchDirs()
	if err != nil {
		return err
	}

	for _, dir := range dirs {
		root := filepath.Join(dir, tag)
		if info, statErr := os.Stat(root); statErr != nil || !info.IsDir() {
			continue
		}

		walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, wErr error) error {
			if wErr != nil {
				// Skip unreadable entries rather than failing the pass.
				return nil //nolint:nilerr // missing-file conditions are absorbed locally
			}
			if d.IsDir() || !strings.HasSuffix(d.Name(), l.ext) {
				return nil
			}

			relName, relErr := filepath.Rel(root, path)
			if relErr != nil {
				return zerr.With(zerr.Wrap(relErr, "failed to resolve relative path"), "path", path)
			}
			if l.cache.IsLoaded(tag, relName) {
				return nil
			}

			if execErr := l.execute(ctx, path); execErr != nil {
				return execErr
			}
			return l.cache.MarkLoaded(tag, relName, path)
		})
		if walkErr != nil {
			return walkErr
		}
	}

	return nil
}

// execute runs a candidate through the host runtime, translating every
// failure into a single domain.ErrLoadFailed carrying the cause.
func (l *Loader) execute(ctx context.Context, absPath string) error {
	if err := l.runtime.Execute(ctx, absPath); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrLoadFailed.Error()), "path", absPath)
	}
	return nil
}
