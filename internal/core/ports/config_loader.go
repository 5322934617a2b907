package ports

import "go.trai.ch/pyguard/internal/core/domain"

// ConfigLoader defines the interface for loading the launcher configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load walks up from cwd looking for the configuration file.
	// It returns the defaults when no file is found.
	Load(cwd string) (*domain.Config, error)
}
