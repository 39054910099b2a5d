package ports

import "go.trai.ch/lfs/internal/core/domain"

// ConfigLoader defines the interface for loading workspace options.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the options for the workspace rooted at dir, applies overrides
	// on top of the file values and returns normalized options.
	Load(dir string, overrides domain.Options) (domain.Options, error)
}
