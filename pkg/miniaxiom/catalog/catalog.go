// Package catalog holds the static library of named, categorized
// inference rules and the per-engine active subset. Rules are data:
// they are authored in the textual mini-language, parsed once at
// catalog construction, and new rules are added declaratively without
// touching the search algorithm.
package catalog

import (
	"fmt"

	"github.com/Arvind-puthucode/MiniAxiom/pkg/miniaxiom/expr"
	"github.com/Arvind-puthucode/MiniAxiom/pkg/miniaxiom/internalerr"
	"github.com/Arvind-puthucode/MiniAxiom/pkg/miniaxiom/parse"
)

// Rule categories.
const (
	CategoryAlgebraic    = "algebraic"
	CategoryArithmetic   = "arithmetic"
	CategoryComparison   = "comparison"
	CategoryNumberTheory = "number_theory"
)

type def struct {
	name     string
	category string
	text     string
}

// The standard rule library. Declaration order is the stable order
// Active() reports rules in, so proof search stays deterministic.
var standardDefs = []def{
	// Algebraic equation properties.
	{"subtraction_property", CategoryAlgebraic, "eq(X + A, B) → eq(X, B - A)"},
	{"division_property", CategoryAlgebraic, "eq(A * X, B) → eq(X, B / A)"},
	{"equality_transitivity", CategoryAlgebraic, "eq(X, A) ∧ eq(X, B) → eq(A, B)"},
	{"addition_property", CategoryAlgebraic, "eq(X, A) → eq(X + B, A + B)"},
	{"multiplication_property", CategoryAlgebraic, "eq(X, A) → eq(X * B, A * B)"},
	{"equality_symmetry", CategoryAlgebraic, "eq(X, Y) → eq(Y, X)"},

	// Parity closure under +, × and squaring.
	{"even_definition", CategoryArithmetic, "eq(X, 2 * Y) → even(X)"},
	{"odd_definition", CategoryArithmetic, "eq(X, 2 * Y + 1) → odd(X)"},
	{"even_multiplication", CategoryArithmetic, "even(X) → even(X * Y)"},
	{"odd_multiplication", CategoryArithmetic, "odd(X) ∧ odd(Y) → odd(X * Y)"},
	{"even_addition", CategoryArithmetic, "even(X) ∧ even(Y) → even(X + Y)"},
	{"odd_addition_even", CategoryArithmetic, "odd(X) ∧ odd(Y) → even(X + Y)"},
	{"even_odd_addition", CategoryArithmetic, "even(X) ∧ odd(Y) → odd(X + Y)"},
	{"even_square", CategoryArithmetic, "even(X) → even(X * X)"},
	{"odd_square", CategoryArithmetic, "odd(X) → odd(X * X)"},

	// Order relations.
	{"greater_transitivity", CategoryComparison, "gt(X, Y) ∧ gt(Y, Z) → gt(X, Z)"},
	{"equality_substitution_gt", CategoryComparison, "eq(X, Y) ∧ gt(Y, Z) → gt(X, Z)"},
	{"less_transitivity", CategoryComparison, "lt(X, Y) ∧ lt(Y, Z) → lt(X, Z)"},
	{"gte_transitivity", CategoryComparison, "gte(X, Y) ∧ gte(Y, Z) → gte(X, Z)"},
	{"lte_transitivity", CategoryComparison, "lte(X, Y) ∧ lte(Y, Z) → lte(X, Z)"},
	{"gt_lt_relationship", CategoryComparison, "gt(X, Y) → lt(Y, X)"},

	// Divisibility and primality.
	{"divisibility_transitivity", CategoryNumberTheory, "divides(A, B) ∧ divides(B, C) → divides(A, C)"},
	{"multiple_divides", CategoryNumberTheory, "multiple(X, Y) → divides(Y, X)"},
	{"divisibility_multiplication", CategoryNumberTheory, "divides(A, B) → divides(A, B * C)"},
	{"prime_not_even", CategoryNumberTheory, "prime(X) ∧ gt(X, 2) → odd(X)"},
}

// Catalog is a library of named rules organized into categories.
type Catalog struct {
	rules    map[string]expr.Rule
	category map[string]string   // rule name → category
	order    []string            // declaration order
	byCat    map[string][]string // category → rule names in declaration order
	catOrder []string
}

// New builds a catalog containing the standard rule library.
func New() *Catalog {
	c := &Catalog{
		rules:    make(map[string]expr.Rule),
		category: make(map[string]string),
		byCat:    make(map[string][]string),
	}
	for _, d := range standardDefs {
		r, err := parse.Rule(d.text, d.name)
		if err != nil {
			// The standard table is static; a parse failure is a bug.
			panic(fmt.Sprintf("catalog: bad standard rule %s: %v", d.name, err))
		}
		if err := c.Add(r, d.category); err != nil {
			panic(fmt.Sprintf("catalog: %v", err))
		}
	}
	return c
}

// Add registers a rule under a category. Duplicate names are rejected.
func (c *Catalog) Add(r expr.Rule, category string) error {
	if _, ok := c.rules[r.Name]; ok {
		return fmt.Errorf("catalog: duplicate rule %q: %w", r.Name, internalerr.ErrInvalidInput)
	}
	if category == "" {
		return fmt.Errorf("catalog: rule %q: empty category: %w", r.Name, internalerr.ErrInvalidInput)
	}
	c.rules[r.Name] = r
	c.category[r.Name] = category
	c.order = append(c.order, r.Name)
	if _, ok := c.byCat[category]; !ok {
		c.catOrder = append(c.catOrder, category)
	}
	c.byCat[category] = append(c.byCat[category], r.Name)
	return nil
}

// Rule looks up a rule by name.
func (c *Catalog) Rule(name string) (expr.Rule, error) {
	r, ok := c.rules[name]
	if !ok {
		return expr.Rule{}, fmt.Errorf("catalog: %q: %w", name, internalerr.ErrUnknownRule)
	}
	return r, nil
}

// Category returns the rules of a category in declaration order.
func (c *Catalog) Category(name string) ([]expr.Rule, error) {
	names, ok := c.byCat[name]
	if !ok {
		return nil, fmt.Errorf("catalog: %q: %w", name, internalerr.ErrUnknownCategory)
	}
	out := make([]expr.Rule, len(names))
	for i, n := range names {
		out[i] = c.rules[n]
	}
	return out, nil
}

// Rules returns every rule in declaration order.
func (c *Catalog) Rules() []expr.Rule {
	out := make([]expr.Rule, len(c.order))
	for i, n := range c.order {
		out[i] = c.rules[n]
	}
	return out
}

// Names returns every rule name in declaration order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Categories returns the category names in declaration order.
func (c *Catalog) Categories() []string {
	out := make([]string, len(c.catOrder))
	copy(out, c.catOrder)
	return out
}

// RuleInfo describes one catalog rule for display.
type RuleInfo struct {
	Name       string
	Category   string
	Premises   []string
	Conclusion string
	Active     bool
}

// Info returns display information for a rule. The active flag reflects
// the supplied set; a nil set reports every rule as active.
func (c *Catalog) Info(name string, active *ActiveSet) (RuleInfo, error) {
	r, err := c.Rule(name)
	if err != nil {
		return RuleInfo{}, err
	}
	premises := make([]string, len(r.Premises))
	for i, p := range r.Premises {
		premises[i] = p.String()
	}
	info := RuleInfo{
		Name:       r.Name,
		Category:   c.category[name],
		Premises:   premises,
		Conclusion: r.Conclusion.String(),
		Active:     true,
	}
	if active != nil {
		info.Active = active.IsActive(name)
	}
	return info, nil
}
