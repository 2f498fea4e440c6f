// Package config provides the configuration provider for the autoloader.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/autoload/internal/core/domain"
	"go.trai.ch/autoload/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.Config = (*Provider)(nil)

// Provider implements ports.Config backed by an autoload.yaml file.
type Provider struct {
	Logger ports.Logger

	mu   sync.RWMutex
	path string
	sum  uint64
	file File
}

// NewProvider locates autoload.yaml by walking up from cwd and loads it.
func NewProvider(logger ports.Logger, cwd string) (*Provider, error) {
	path, err := findConfiguration(cwd)
	if err != nil {
		return nil, err
	}

	p := &Provider{Logger: logger, path: path}
	if err := p.Reload(); err != nil {
		return nil, err
	}
	return p, nil
}

func findConfiguration(cwd string) (string, error) {
	currentDir, err := filepath.Abs(cwd)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrConfigNotFound.Error()), "cwd", cwd)
	}
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(domain.ErrConfigNotFound, "cwd", cwd)
}

// Reload re-reads the configuration from disk. A file whose content hash is
// unchanged since the last load is not re-parsed.
func (p *Provider) Reload() error {
	data, err := os.ReadFile(p.path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", p.path)
	}

	sum := xxhash.Sum64(data)
	p.mu.RLock()
	unchanged := p.sum != 0 && sum == p.sum
	p.mu.RUnlock()
	if unchanged {
		return nil
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", p.path)
	}
	if file.Extension == "" {
		file.Extension = domain.DefaultExtension
	}

	p.mu.Lock()
	p.file = file
	p.sum = sum
	p.mu.Unlock()

	if env := p.CurrentEnvironment(); env != "" {
		if _, ok := file.Environments[env]; !ok {
			p.Logger.Warn(fmt.Sprintf("environment %q has no module path configured", env))
		}
	}
	return nil
}

// Path returns the absolute path of the loaded configuration file.
func (p *Provider) Path() string {
	return p.path
}

// CurrentEnvironment returns the active environment name. The AUTOLOAD_ENV
// variable overrides the configured one.
func (p *Provider) CurrentEnvironment() string {
	if env := os.Getenv(domain.EnvVarEnvironment); env != "" {
		return env
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.file.Environment
}

// ModulePath returns the ordered module base directories for the given
// environment, split on the platform list separator. An unknown environment
// yields an empty list.
func (p *Provider) ModulePath(environment string) []string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	env, ok := p.file.Environments[environment]
	if !ok {
		return nil
	}
	return filepath.SplitList(env.ModulePath)
}

// LibraryDirs returns the ordered fixed library directories.
func (p *Provider) LibraryDirs() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	dirs := make([]string, len(p.file.LibraryDirs))
	copy(dirs, p.file.LibraryDirs)
	return dirs
}

// Extension returns the source file extension, dot included.
func (p *Provider) Extension() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.file.Extension
}

// Interpreter returns the interpreter argv prefix used to execute a source
// unit. Defaults to "lua" when not configured.
func (p *Provider) Interpreter() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if len(p.file.Interpreter) == 0 {
		return []string{"lua"}
	}
	argv := make([]string, len(p.file.Interpreter))
	copy(argv, p.file.Interpreter)
	return argv
}
