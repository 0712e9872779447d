package config

import (
	"fmt"

	"github.com/Arvind-puthucode/MiniAxiom/pkg/miniaxiom"
	"github.com/Arvind-puthucode/MiniAxiom/pkg/miniaxiom/catalog"
	"github.com/Arvind-puthucode/MiniAxiom/pkg/miniaxiom/internalerr"
	"github.com/Arvind-puthucode/MiniAxiom/pkg/miniaxiom/parse"
)

// Loader builds a configured proof engine from configuration files.
type Loader struct {
	EnginePath string
}

// Load reads the configuration (when a path is set) and returns an
// initialized engine. With no paths set it returns an engine with the
// standard catalog and default limits.
func (l *Loader) Load() (*miniaxiom.Engine, error) {
	cfg := &EngineConfig{}
	if l.EnginePath != "" {
		loaded, err := LoadEngineConfig(l.EnginePath)
		if err != nil {
			return nil, fmt.Errorf("load engine config: %w", err)
		}
		cfg = loaded
	}
	return Build(cfg)
}

// Build constructs an engine from an in-memory configuration.
func Build(cfg *EngineConfig) (*miniaxiom.Engine, error) {
	cat := catalog.New()

	for _, def := range cfg.ExtraRules {
		if def.Name == "" {
			return nil, fmt.Errorf("extra rule: missing name: %w", internalerr.ErrInvalidConfig)
		}
		r, err := parse.Rule(def.Rule, def.Name)
		if err != nil {
			return nil, fmt.Errorf("extra rule %q: %w", def.Name, err)
		}
		category := def.Category
		if category == "" {
			category = "custom"
		}
		if err := cat.Add(r, category); err != nil {
			return nil, err
		}
	}

	eng := miniaxiom.New(miniaxiom.Options{
		MaxIterations: cfg.MaxIterations,
		MaxFacts:      cfg.MaxFacts,
		Catalog:       cat,
	})

	for _, category := range cfg.DisabledCategories {
		if err := eng.DisableCategory(category); err != nil {
			return nil, err
		}
	}
	if err := eng.DisableRules(cfg.DisabledRules); err != nil {
		return nil, err
	}

	return eng, nil
}
