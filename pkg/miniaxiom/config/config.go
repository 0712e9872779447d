// Package config loads engine configuration from YAML files and builds
// ready-to-use components from it.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// EngineConfig is the YAML engine configuration.
type EngineConfig struct {
	MaxIterations      int       `yaml:"max_iterations"`
	MaxFacts           int       `yaml:"max_facts"`
	DisabledRules      []string  `yaml:"disabled_rules"`
	DisabledCategories []string  `yaml:"disabled_categories"`
	ExtraRules         []RuleDef `yaml:"extra_rules"`
}

// RuleDef is a user-authored rule in the textual mini-language.
type RuleDef struct {
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
	Rule     string `yaml:"rule"`
}

// LoadEngineConfig loads an engine configuration from a YAML file.
func LoadEngineConfig(path string) (*EngineConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg EngineConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return &cfg, nil
}
