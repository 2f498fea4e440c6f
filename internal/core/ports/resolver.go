package ports

// PathResolver computes the ordered list of directories consulted when
// resolving a logical plugin name to a file.
//
//go:generate mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type PathResolver interface {
	// ModuleDirs returns the plugins/ and lib/ sub-directories of every child
	// of every configured module base directory, in priority order. Base
	// directories that do not exist contribute nothing.
	ModuleDirs() ([]string, error)

	// SearchDirs returns ModuleDirs followed by the configured library
	// directories followed by the host load path, in that exact order and
	// without de-duplication. The list is computed fresh on every call.
	SearchDirs() ([]string, error)
}
