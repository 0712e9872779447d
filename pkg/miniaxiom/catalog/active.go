package catalog

import "github.com/Arvind-puthucode/MiniAxiom/pkg/miniaxiom/expr"

// ActiveSet is the enabled subset of a catalog's rules. Each proof
// engine owns its own ActiveSet, so independent engines toggling rules
// cannot interfere with one another. Every rule starts enabled,
// including rules added to the catalog later.
type ActiveSet struct {
	cat      *Catalog
	disabled map[string]bool
}

// NewActiveSet creates an ActiveSet over the catalog with every rule
// enabled.
func NewActiveSet(c *Catalog) *ActiveSet {
	return &ActiveSet{cat: c, disabled: make(map[string]bool)}
}

// Enable re-enables a rule by name.
func (a *ActiveSet) Enable(name string) error {
	if _, err := a.cat.Rule(name); err != nil {
		return err
	}
	delete(a.disabled, name)
	return nil
}

// Disable disables a rule by name.
func (a *ActiveSet) Disable(name string) error {
	if _, err := a.cat.Rule(name); err != nil {
		return err
	}
	a.disabled[name] = true
	return nil
}

// EnableCategory enables every rule of a category.
func (a *ActiveSet) EnableCategory(category string) error {
	rules, err := a.cat.Category(category)
	if err != nil {
		return err
	}
	for _, r := range rules {
		delete(a.disabled, r.Name)
	}
	return nil
}

// DisableCategory disables every rule of a category.
func (a *ActiveSet) DisableCategory(category string) error {
	rules, err := a.cat.Category(category)
	if err != nil {
		return err
	}
	for _, r := range rules {
		a.disabled[r.Name] = true
	}
	return nil
}

// IsActive reports whether a rule is currently enabled.
func (a *ActiveSet) IsActive(name string) bool {
	return !a.disabled[name]
}

// Active returns the enabled rules in catalog declaration order, which
// keeps rule application order stable across calls.
func (a *ActiveSet) Active() []expr.Rule {
	var out []expr.Rule
	for _, name := range a.cat.order {
		if !a.disabled[name] {
			out = append(out, a.cat.rules[name])
		}
	}
	return out
}
