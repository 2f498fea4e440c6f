package loader_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/autoload/internal/adapters/cache"
	"go.trai.ch/autoload/internal/core/domain"
	"go.trai.ch/autoload/internal/core/ports/mocks"
	"go.trai.ch/autoload/internal/engine/loader"
	"go.uber.org/mock/gomock"
)

type loaderFixture struct {
	resolver *mocks.MockPathResolver
	runtime  *mocks.MockRuntime
	cache    *cache.Cache
	loader   *loader.Loader
}

func newLoaderFixture(t *testing.T) *loaderFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()

	f := &loaderFixture{
		resolver: mocks.NewMockPathResolver(ctrl),
		runtime:  mocks.NewMockRuntime(ctrl),
		cache:    cache.New(domain.DefaultExtension),
	}
	f.loader = loader.NewLoader(f.resolver, f.cache, f.runtime, logger, domain.DefaultExtension)
	return f
}

func mustWriteSource(t *testing.T, dir, rel string) string {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
	require.NoError(t, os.WriteFile(path, []byte("return true"), domain.FilePerm))
	return path
}

func TestLoader_Load_FirstMatchWins(t *testing.T) {
	f := newLoaderFixture(t)

	first := t.TempDir()
	second := t.TempDir()
	want := mustWriteSource(t, first, "widgets/frobnicate.lua")
	mustWriteSource(t, second, "widgets/frobnicate.lua")

	f.resolver.EXPECT().SearchDirs().Return([]string{first, second}, nil)
	f.runtime.EXPECT().Execute(gomock.Any(), want).Return(nil)

	ok, err := f.loader.Load(t.Context(), "widgets", "frobnicate")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, f.cache.IsLoaded("widgets", "frobnicate"))
}

func TestLoader_Load_SkipsDirsWithoutCandidate(t *testing.T) {
	f := newLoaderFixture(t)

	empty := t.TempDir()
	populated := t.TempDir()
	want := mustWriteSource(t, populated, "widgets/frobnicate.lua")

	f.resolver.EXPECT().SearchDirs().Return([]string{empty, populated}, nil)
	f.runtime.EXPECT().Execute(gomock.Any(), want).Return(nil)

	ok, err := f.loader.Load(t.Context(), "widgets", "frobnicate")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLoader_Load_NoCandidateAnywhere(t *testing.T) {
	f := newLoaderFixture(t)
	f.resolver.EXPECT().SearchDirs().Return([]string{t.TempDir(), t.TempDir()}, nil)

	ok, err := f.loader.Load(t.Context(), "widgets", "frobnicate")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.False(t, f.cache.IsLoaded("widgets", "frobnicate"))
}

func TestLoader_Load_ExecutionFailureStopsSearch(t *testing.T) {
	f := newLoaderFixture(t)

	first := t.TempDir()
	second := t.TempDir()
	broken := mustWriteSource(t, first, "widgets/frobnicate.lua")
	mustWriteSource(t, second, "widgets/frobnicate.lua")

	f.resolver.EXPECT().SearchDirs().Return([]string{first, second}, nil)
	f.runtime.EXPECT().Execute(gomock.Any(), broken).Return(errors.New("boom"))

	ok, err := f.loader.Load(t.Context(), "widgets", "frobnicate")
	assert.False(t, ok)
	assert.ErrorContains(t, err, domain.ErrLoadFailed.Error())
	assert.False(t, f.cache.IsLoaded("widgets", "frobnicate"))
}

func TestLoader_Load_ExtensionAlreadyPresent(t *testing.T) {
	f := newLoaderFixture(t)

	dir := t.TempDir()
	want := mustWriteSource(t, dir, "widgets/frobnicate.lua")

	f.resolver.EXPECT().SearchDirs().Return([]string{dir}, nil)
	f.runtime.EXPECT().Execute(gomock.Any(), want).Return(nil)

	ok, err := f.loader.Load(t.Context(), "widgets", "frobnicate.lua")
	require.NoError(t, err)
	assert.True(t, ok)

	// Both spellings resolve to the same cache key.
	assert.True(t, f.cache.IsLoaded("widgets", "frobnicate"))
}

func TestLoader_LoadAll(t *testing.T) {
	f := newLoaderFixture(t)

	dir := t.TempDir()
	flat := mustWriteSource(t, dir, "widgets/alpha.lua")
	nested := mustWriteSource(t, dir, "widgets/deep/beta.lua")
	mustWriteSource(t, dir, "widgets/readme.txt")
	already := mustWriteSource(t, dir, "widgets/gamma.lua")
	require.NoError(t, f.cache.MarkLoaded("widgets", "gamma", already))

	f.resolver.EXPECT().SearchDirs().Return([]string{dir}, nil)
	f.runtime.EXPECT().Execute(gomock.Any(), flat).Return(nil)
	f.runtime.EXPECT().Execute(gomock.Any(), nested).Return(nil)

	require.NoError(t, f.loader.LoadAll(t.Context(), "widgets"))

	assert.True(t, f.cache.IsLoaded("widgets", "alpha"))
	assert.True(t, f.cache.IsLoaded("widgets", filepath.Join("deep", "beta")))
}

func TestLoader_LoadAll_MissingTagDirectory(t *testing.T) {
	f := newLoaderFixture(t)
	f.resolver.EXPECT().SearchDirs().Return([]string{t.TempDir()}, nil)

	require.NoError(t, f.loader.LoadAll(t.Context(), "widgets"))
}

func TestLoader_LoadAll_FailureAborts(t *testing.T) {
	f := newLoaderFixture(t)

	dir := t.TempDir()
	broken := mustWriteSource(t, dir, "widgets/alpha.lua")

	f.resolver.EXPECT().SearchDirs().Return([]string{dir}, nil)
	f.runtime.EXPECT().Execute(gomock.Any(), broken).Return(errors.New("boom"))

	err := f.loader.LoadAll(t.Context(), "widgets")
	assert.ErrorContains(t, err, domain.ErrLoadFailed.Error())
}
