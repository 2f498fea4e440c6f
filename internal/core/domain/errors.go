package domain

import "go.trai.ch/zerr"

var (
	// ErrLoadFailed is returned when executing a located source unit fails for
	// any reason. It always wraps the underlying cause.
	ErrLoadFailed = zerr.New("failed to load plugin source")

	// ErrMalformedSource is returned by the runtime when a source unit cannot
	// be parsed.
	ErrMalformedSource = zerr.New("malformed plugin source")

	// ErrRuntimeFailure is returned by the runtime when an executed source
	// unit itself raises an error.
	ErrRuntimeFailure = zerr.New("plugin raised an error")

	// ErrSourceNotFound is returned by the runtime when the file handed to it
	// does not exist.
	ErrSourceNotFound = zerr.New("plugin source not found")

	// ErrStatFailed is returned when a cached file cannot be stat'd for a
	// reason other than not existing.
	ErrStatFailed = zerr.New("failed to stat plugin source")

	// ErrConfigNotFound is returned when no autoload.yaml can be found.
	ErrConfigNotFound = zerr.New("could not find autoload.yaml")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrEnvironmentNotFound is returned when the selected environment has no
	// configuration.
	ErrEnvironmentNotFound = zerr.New("environment not configured")

	// ErrPluginNotFound is returned by the application layer when a requested
	// plugin exists in no search directory.
	ErrPluginNotFound = zerr.New("plugin not found in any search directory")

	// ErrWatchFailed is returned when the watch service cannot be started.
	ErrWatchFailed = zerr.New("failed to start watch service")
)
