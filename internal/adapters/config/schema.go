package config

// Filename is the name of the optional per-workspace configuration file.
const Filename = ".lfs.yaml"

// File represents the structure of the .lfs.yaml configuration file.
type File struct {
	CacheMaxSize *int   `yaml:"cacheMaxSize"`
	ContainerDir string `yaml:"containerDir"`
}
