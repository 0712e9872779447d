package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Arvind-puthucode/MiniAxiom/pkg/miniaxiom/catalog"
	"github.com/Arvind-puthucode/MiniAxiom/pkg/miniaxiom/internalerr"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "engine.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadEngineConfig(t *testing.T) {
	path := writeConfig(t, `max_iterations: 25
max_facts: 500
disabled_rules:
  - even_square
disabled_categories:
  - number_theory
extra_rules:
  - name: positive_from_gt
    category: custom
    rule: "gt(X, 0) → positive(X)"
`)

	cfg, err := LoadEngineConfig(path)
	if err != nil {
		t.Fatalf("LoadEngineConfig: %v", err)
	}
	if cfg.MaxIterations != 25 || cfg.MaxFacts != 500 {
		t.Errorf("limits = %d, %d", cfg.MaxIterations, cfg.MaxFacts)
	}
	if len(cfg.DisabledRules) != 1 || cfg.DisabledRules[0] != "even_square" {
		t.Errorf("DisabledRules = %v", cfg.DisabledRules)
	}
	if len(cfg.ExtraRules) != 1 || cfg.ExtraRules[0].Name != "positive_from_gt" {
		t.Errorf("ExtraRules = %v", cfg.ExtraRules)
	}
}

func TestLoadEngineConfigErrors(t *testing.T) {
	if _, err := LoadEngineConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for a missing file")
	}
	if _, err := LoadEngineConfig(writeConfig(t, ": : :\n")); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestBuild(t *testing.T) {
	cfg := &EngineConfig{
		MaxIterations: 10,
		DisabledRules: []string{"even_square"},
		ExtraRules: []RuleDef{
			{Name: "positive_from_gt", Rule: "gt(X, 0) → positive(X)"},
		},
	}

	eng, err := Build(cfg)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	var sawExtra bool
	for _, r := range eng.ActiveRules() {
		if r.Name == "even_square" {
			t.Error("disabled rule is still active")
		}
		if r.Name == "positive_from_gt" {
			sawExtra = true
		}
	}
	if !sawExtra {
		t.Error("extra rule not registered")
	}

	// Extra rules without an explicit category land in "custom".
	info, err := eng.Catalog().Info("positive_from_gt", nil)
	if err != nil {
		t.Fatalf("Info: %v", err)
	}
	if info.Category != "custom" {
		t.Errorf("category = %q, want custom", info.Category)
	}
}

func TestBuildDisabledCategory(t *testing.T) {
	eng, err := Build(&EngineConfig{DisabledCategories: []string{catalog.CategoryNumberTheory}})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	for _, r := range eng.ActiveRules() {
		if r.Name == "prime_not_even" {
			t.Error("number_theory rule still active")
		}
	}
}

func TestBuildErrors(t *testing.T) {
	_, err := Build(&EngineConfig{ExtraRules: []RuleDef{{Rule: "gt(X, 0) → positive(X)"}}})
	if !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Errorf("nameless extra rule err = %v, want ErrInvalidConfig", err)
	}

	_, err = Build(&EngineConfig{ExtraRules: []RuleDef{{Name: "broken", Rule: "gt(X, 0)"}}})
	if !errors.Is(err, internalerr.ErrInvalidInput) {
		t.Errorf("arrowless extra rule err = %v, want ErrInvalidInput", err)
	}

	_, err = Build(&EngineConfig{DisabledRules: []string{"no_such_rule"}})
	if !errors.Is(err, internalerr.ErrUnknownRule) {
		t.Errorf("unknown disabled rule err = %v, want ErrUnknownRule", err)
	}

	_, err = Build(&EngineConfig{DisabledCategories: []string{"no_such_category"}})
	if !errors.Is(err, internalerr.ErrUnknownCategory) {
		t.Errorf("unknown category err = %v, want ErrUnknownCategory", err)
	}
}

func TestLoaderDefaults(t *testing.T) {
	loader := &Loader{}
	eng, err := loader.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := len(eng.ActiveRules()); got != len(eng.Catalog().Rules()) {
		t.Errorf("default engine has %d active rules, want all", got)
	}
}
