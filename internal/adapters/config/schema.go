package config

// File represents the structure of the review-deps.yaml configuration file.
type File struct {
	Cargo    string      `yaml:"cargo"`
	Lockfile string      `yaml:"lockfile"`
	Diff     DiffDTO     `yaml:"diff"`
	Registry RegistryDTO `yaml:"registry"`
}

// DiffDTO configures the comparison tool.
type DiffDTO struct {
	Command []string `yaml:"command"`
}

// RegistryDTO configures how registry packages are recognised.
type RegistryDTO struct {
	Markers []string `yaml:"markers"`
}
