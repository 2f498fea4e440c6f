// Package ports defines the core interfaces for the application.
package ports

// Config defines the interface for the configuration provider.
//
//go:generate mockgen -source=config.go -destination=mocks/mock_config.go -package=mocks
type Config interface {
	// CurrentEnvironment returns the active environment name.
	CurrentEnvironment() string

	// ModulePath returns the ordered module base directories configured for
	// the given environment. An unknown environment yields an empty list.
	ModulePath(environment string) []string

	// LibraryDirs returns the ordered fixed library directories.
	LibraryDirs() []string

	// Extension returns the source file extension, dot included.
	Extension() string
}
