package config

import "go.trai.ch/pyguard/internal/core/domain"

// SchemaVersion is the configuration schema this build understands.
const SchemaVersion = "1"

// File represents the structure of the pyguard.yaml configuration file.
type File struct {
	Version       string      `yaml:"version"`
	Interpreter   string      `yaml:"interpreter"`
	Prefix        string      `yaml:"prefix"`
	Generic       string      `yaml:"generic"`
	UpgradeWindow int         `yaml:"upgradeWindow"`
	Minimum       *MinimumDTO `yaml:"minimum"`
}

// MinimumDTO represents the version requirements in the configuration.
type MinimumDTO struct {
	Soft  *domain.Version `yaml:"soft"`
	Hard  *domain.Version `yaml:"hard"`
	Floor *domain.Version `yaml:"floor"`
}
