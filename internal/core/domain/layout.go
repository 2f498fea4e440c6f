package domain

const (
	// PluginsDirName is the plugin sub-directory consulted under each module
	// path child.
	PluginsDirName = "plugins"

	// LibDirName is the library sub-directory consulted under each module
	// path child.
	LibDirName = "lib"

	// ConfigFileName is the name of the autoloader configuration file.
	ConfigFileName = "autoload.yaml"

	// DefaultExtension is the source extension used when the configuration
	// does not set one.
	DefaultExtension = ".lua"

	// EnvVarEnvironment overrides the configured environment name.
	EnvVarEnvironment = "AUTOLOAD_ENV"

	// EnvVarHostPath supplies the host runtime's own load path, appended last
	// to the search directories. List-separator delimited.
	EnvVarHostPath = "AUTOLOAD_PATH"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)
