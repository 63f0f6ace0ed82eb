package ports

import "go.trai.ch/reviewdeps/internal/core/domain"

// ConfigLoader defines the interface for loading the tool configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load discovers the configuration starting at cwd and returns it merged over the defaults.
	Load(cwd string) (*domain.Config, error)
}
