package config

// File represents the structure of the autoload.yaml configuration file.
type File struct {
	Version      string                    `yaml:"version"`
	Environment  string                    `yaml:"environment"`
	Extension    string                    `yaml:"extension"`
	Interpreter  []string                  `yaml:"interpreter"`
	Environments map[string]EnvironmentDTO `yaml:"environments"`
	LibraryDirs  []string                  `yaml:"library_dirs"`
}

// EnvironmentDTO represents a per-environment section of the configuration.
type EnvironmentDTO struct {
	// ModulePath is a list-separator delimited sequence of module base
	// directories, in priority order.
	ModulePath string `yaml:"module_path"`
}
