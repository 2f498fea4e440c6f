// Package fs implements filesystem-backed search path resolution.
package fs

import (
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/autoload/internal/core/domain"
	"go.trai.ch/autoload/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.PathResolver = (*Resolver)(nil)

// Resolver implements ports.PathResolver on top of the real filesystem.
type Resolver struct {
	config   ports.Config
	hostPath []string
}

// NewResolver creates a Resolver. hostPath is the host runtime's own load
// path, appended last to the search directories.
func NewResolver(config ports.Config, hostPath []string) *Resolver {
	return &Resolver{
		config:   config,
		hostPath: hostPath,
	}
}

// HostPathFromEnv reads the host load path from the process environment.
func HostPathFromEnv() []string {
	raw := os.Getenv(domain.EnvVarHostPath)
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	return filepath.SplitList(raw)
}

// ModuleDirs lists the plugins/ and lib/ sub-directories of every child of
// every module base directory configured for the current environment.
//
// Base directories are processed in configured order, children in lexical
// listing order, and "plugins" is checked before "lib" for each child.
// Hidden children (names starting with ".") are skipped. A base directory
// that does not exist contributes nothing.
func (r *Resolver) ModuleDirs() ([]string, error) {
	env := r.config.CurrentEnvironment()

	var dirs []string
	for _, base := range r.config.ModulePath(env) {
		children, err := os.ReadDir(base)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, zerr.With(zerr.Wrap(err, "failed to list module directory"), "directory", base)
		}

		for _, child := range children {
			if strings.HasPrefix(child.Name(), ".") {
				continue
			}
			for _, sub := range []string{domain.PluginsDirName, domain.LibDirName} {
				candidate := filepath.Join(base, child.Name(), sub)
				if info, statErr := os.Stat(candidate); statErr == nil && info.IsDir() {
					dirs = append(dirs, candidate)
				}
			}
		}
	}

	return dirs, nil
}

// SearchDirs returns the full ordered search path: module directories, then
// the configured library directories, then the host load path. No
// de-duplication is performed; a directory appearing twice is searched twice.
// The result is computed fresh on every call.
func (r *Resolver) SearchDirs() ([]string, error) {
	moduleDirs, err := r.ModuleDirs()
	if err != nil {
		return nil, err
	}

	dirs := make([]string, 0, len(moduleDirs)+len(r.hostPath))
	dirs = append(dirs, moduleDirs...)
	dirs = append(dirs, r.config.LibraryDirs()...)
	dirs = append(dirs, r.hostPath...)
	return dirs, nil
}
