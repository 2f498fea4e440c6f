// Package app implements the application layer for the autoloader.
package app

import (
	"context"
	"fmt"
	"time"

	"go.trai.ch/autoload/internal/adapters/config"
	"go.trai.ch/autoload/internal/adapters/watcher"
	"go.trai.ch/autoload/internal/core/domain"
	"go.trai.ch/autoload/internal/core/ports"
	"go.trai.ch/autoload/internal/engine/loader"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	config   *config.Provider
	resolver ports.PathResolver
	loader   *loader.Loader
	monitor  *loader.Monitor
	watcher  ports.Watcher
	logger   ports.Logger
}

// WatchOptions configures the watch service.
type WatchOptions struct {
	// Window is the debounce window for coalescing file events. Zero means
	// watcher.DefaultDebounceWindow.
	Window time.Duration
}

// New creates a new App instance.
func New(
	cfg *config.Provider,
	resolver ports.PathResolver,
	ld *loader.Loader,
	monitor *loader.Monitor,
	w ports.Watcher,
	log ports.Logger,
) *App {
	return &App{
		config:   cfg,
		resolver: resolver,
		loader:   ld,
		monitor:  monitor,
		watcher:  w,
		logger:   log,
	}
}

// Load loads each named plugin under tag. A name that resolves to no file in
// any search directory fails the call with domain.ErrPluginNotFound.
func (a *App) Load(ctx context.Context, tag string, names []string) error {
	for _, name := range names {
		ok, err := a.loader.Load(ctx, tag, name)
		if err != nil {
			return err
		}
		if !ok {
			return zerr.With(zerr.With(domain.ErrPluginNotFound, "tag", tag), "name", name)
		}
	}
	return nil
}

// LoadAll loads every plugin found under each given tag.
func (a *App) LoadAll(ctx context.Context, tags []string) error {
	for _, tag := range tags {
		if err := a.loader.LoadAll(ctx, tag); err != nil {
			return err
		}
	}
	return nil
}

// Reload runs a single reload pass over the load cache.
func (a *App) Reload(ctx context.Context) error {
	if err := a.config.Reload(); err != nil {
		return err
	}
	return a.monitor.ReloadChanged(ctx)
}

// SearchDirs returns the current ordered search path.
func (a *App) SearchDirs() ([]string, error) {
	return a.resolver.SearchDirs()
}

// Watch loads every plugin under the given tags, then watches the search
// directories and re-runs the reload pass on each debounced change batch
// until the context is canceled or a reload fails.
func (a *App) Watch(ctx context.Context, tags []string, opts WatchOptions) error {
	if err := a.LoadAll(ctx, tags); err != nil {
		return err
	}

	dirs, err := a.resolver.SearchDirs()
	if err != nil {
		return err
	}

	if err := a.watcher.Start(ctx, dirs); err != nil {
		return zerr.Wrap(err, domain.ErrWatchFailed.Error())
	}

	window := opts.Window
	if window <= 0 {
		window = watcher.DefaultDebounceWindow
	}

	reloadErr := make(chan error, 1)
	debouncer := watcher.NewDebouncer(window, func() {
		if err := a.Reload(ctx); err != nil {
			select {
			case reloadErr <- err:
			default:
			}
		}
	})

	a.logger.Info(fmt.Sprintf("watching %d directories", len(dirs)))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		for range a.watcher.Events() {
			debouncer.Trigger()
		}
		return nil
	})
	g.Go(func() error {
		var firstErr error
		select {
		case firstErr = <-reloadErr:
		case <-gctx.Done():
		}
		// Closing the watcher ends the event iteration above.
		_ = a.watcher.Stop()
		return firstErr
	})
	return g.Wait()
}
