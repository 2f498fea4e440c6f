package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/autoload/internal/adapters/config"
	"go.trai.ch/autoload/internal/core/domain"
	"go.trai.ch/autoload/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const sampleConfiguration = `version: "1"
environment: dev
interpreter: [lua]
environments:
  dev:
    module_path: /opt/modules
library_dirs:
  - /opt/lib
`

func writeConfiguration(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, domain.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))
	return path
}

func silentLogger(t *testing.T) *mocks.MockLogger {
	t.Helper()
	logger := mocks.NewMockLogger(gomock.NewController(t))
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	return logger
}

func TestNewProvider_WalksUpToConfiguration(t *testing.T) {
	t.Setenv(domain.EnvVarEnvironment, "")

	root := t.TempDir()
	path := writeConfiguration(t, root, sampleConfiguration)
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, domain.DirPerm))

	provider, err := config.NewProvider(silentLogger(t), nested)
	require.NoError(t, err)

	assert.Equal(t, path, provider.Path())
	assert.Equal(t, "dev", provider.CurrentEnvironment())
	assert.Equal(t, []string{"/opt/modules"}, provider.ModulePath("dev"))
	assert.Equal(t, []string{"/opt/lib"}, provider.LibraryDirs())
	assert.Equal(t, []string{"lua"}, provider.Interpreter())
}

func TestNewProvider_NotFound(t *testing.T) {
	// An empty temp tree has no configuration anywhere up to the filesystem
	// root, unless the runner happens to keep one there.
	dir := t.TempDir()

	_, err := config.NewProvider(silentLogger(t), dir)
	if err == nil {
		t.Skip("a configuration file exists above the temp directory")
	}
	assert.ErrorContains(t, err, domain.ErrConfigNotFound.Error())
}

func TestProvider_EnvironmentOverride(t *testing.T) {
	root := t.TempDir()
	writeConfiguration(t, root, sampleConfiguration)

	t.Setenv(domain.EnvVarEnvironment, "staging")
	provider, err := config.NewProvider(silentLogger(t), root)
	require.NoError(t, err)

	assert.Equal(t, "staging", provider.CurrentEnvironment())
	assert.Nil(t, provider.ModulePath("staging"))
}

func TestProvider_WarnsOnUnconfiguredEnvironment(t *testing.T) {
	root := t.TempDir()
	writeConfiguration(t, root, sampleConfiguration)
	t.Setenv(domain.EnvVarEnvironment, "staging")

	logger := mocks.NewMockLogger(gomock.NewController(t))
	logger.EXPECT().Warn(gomock.Any()).Times(1)

	_, err := config.NewProvider(logger, root)
	require.NoError(t, err)
}

func TestProvider_ModulePathSplitsOnListSeparator(t *testing.T) {
	t.Setenv(domain.EnvVarEnvironment, "")

	root := t.TempDir()
	sep := string(os.PathListSeparator)
	writeConfiguration(t, root, `environment: dev
environments:
  dev:
    module_path: "/first`+sep+`/second"
`)

	provider, err := config.NewProvider(silentLogger(t), root)
	require.NoError(t, err)

	assert.Equal(t, []string{"/first", "/second"}, provider.ModulePath("dev"))
}

func TestProvider_Defaults(t *testing.T) {
	t.Setenv(domain.EnvVarEnvironment, "")

	root := t.TempDir()
	writeConfiguration(t, root, "version: \"1\"\n")

	provider, err := config.NewProvider(silentLogger(t), root)
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultExtension, provider.Extension())
	assert.Equal(t, []string{"lua"}, provider.Interpreter())
	assert.Empty(t, provider.LibraryDirs())
}

func TestProvider_ParseError(t *testing.T) {
	root := t.TempDir()
	writeConfiguration(t, root, "environments: [not, a, map]\n")

	_, err := config.NewProvider(silentLogger(t), root)
	assert.ErrorContains(t, err, domain.ErrConfigParseFailed.Error())
}

func TestProvider_ReloadPicksUpChanges(t *testing.T) {
	t.Setenv(domain.EnvVarEnvironment, "")

	root := t.TempDir()
	writeConfiguration(t, root, sampleConfiguration)

	provider, err := config.NewProvider(silentLogger(t), root)
	require.NoError(t, err)
	require.Equal(t, []string{"/opt/lib"}, provider.LibraryDirs())

	writeConfiguration(t, root, `environment: dev
environments:
  dev:
    module_path: /opt/modules
library_dirs:
  - /opt/other
`)
	require.NoError(t, provider.Reload())
	assert.Equal(t, []string{"/opt/other"}, provider.LibraryDirs())

	// Reloading an unchanged file keeps the loaded state intact.
	require.NoError(t, provider.Reload())
	assert.Equal(t, []string{"/opt/other"}, provider.LibraryDirs())
}
