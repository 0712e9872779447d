// Package miniaxiom is the facade over the symbolic proof engine: it
// selects which catalog rules to use and dispatches to the forward
// chainer. Input extraction and natural-language explanation are
// external collaborators; this package consumes and produces only the
// typed values of the expr and chain packages.
package miniaxiom

import (
	"fmt"
	"strings"

	"github.com/Arvind-puthucode/MiniAxiom/pkg/miniaxiom/catalog"
	"github.com/Arvind-puthucode/MiniAxiom/pkg/miniaxiom/chain"
	"github.com/Arvind-puthucode/MiniAxiom/pkg/miniaxiom/expr"
)

// Engine is the proof engine facade. Each Engine owns its own rule
// activation state and chainer, so independent engines never interfere.
// An Engine is not safe for concurrent use; run parallel searches on
// separate instances.
type Engine struct {
	catalog *catalog.Catalog
	active  *catalog.ActiveSet
	chainer *chain.Chainer
}

// Options configures an Engine.
type Options struct {
	// MaxIterations bounds the saturation loop; 0 means the default.
	MaxIterations int
	// MaxFacts bounds the working fact set; 0 means the default.
	MaxFacts int
	// Catalog overrides the standard rule library.
	Catalog *catalog.Catalog
}

// New creates an Engine with every catalog rule active.
func New(opts Options) *Engine {
	cat := opts.Catalog
	if cat == nil {
		cat = catalog.New()
	}
	return &Engine{
		catalog: cat,
		active:  catalog.NewActiveSet(cat),
		chainer: chain.New(opts.MaxIterations, opts.MaxFacts),
	}
}

// Catalog returns the engine's rule catalog.
func (e *Engine) Catalog() *catalog.Catalog { return e.catalog }

// ActiveRules returns the currently enabled rules in catalog order.
func (e *Engine) ActiveRules() []expr.Rule { return e.active.Active() }

// Configure adjusts search limits for subsequent calls. Zero values
// leave the corresponding limit unchanged.
func (e *Engine) Configure(maxIterations, maxFacts int) {
	if maxIterations > 0 {
		e.chainer.MaxIterations = maxIterations
	}
	if maxFacts > 0 {
		e.chainer.MaxFacts = maxFacts
	}
}

// EnableRules enables the named rules. Unknown names fail before any
// state changes.
func (e *Engine) EnableRules(names []string) error {
	for _, n := range names {
		if _, err := e.catalog.Rule(n); err != nil {
			return err
		}
	}
	for _, n := range names {
		if err := e.active.Enable(n); err != nil {
			return err
		}
	}
	return nil
}

// DisableRules disables the named rules. Unknown names fail before any
// state changes.
func (e *Engine) DisableRules(names []string) error {
	for _, n := range names {
		if _, err := e.catalog.Rule(n); err != nil {
			return err
		}
	}
	for _, n := range names {
		if err := e.active.Disable(n); err != nil {
			return err
		}
	}
	return nil
}

// EnableCategory enables every rule of a category.
func (e *Engine) EnableCategory(category string) error {
	return e.active.EnableCategory(category)
}

// DisableCategory disables every rule of a category.
func (e *Engine) DisableCategory(category string) error {
	return e.active.DisableCategory(category)
}

// ProveGoal attempts to derive goal from the initial facts. Rule
// selection precedence: specific rule names, then categories, then all
// currently active catalog rules. Unknown rule or category names are
// hard failures raised before any search begins.
func (e *Engine) ProveGoal(goal expr.Fact, initialFacts []expr.Fact,
	categories []string, ruleNames []string) (chain.ProofResult, error) {

	rules, err := e.selectRules(categories, ruleNames)
	if err != nil {
		return chain.ProofResult{}, err
	}
	return e.chainer.Prove(goal, initialFacts, rules), nil
}

func (e *Engine) selectRules(categories, ruleNames []string) ([]expr.Rule, error) {
	if len(ruleNames) > 0 {
		rules := make([]expr.Rule, 0, len(ruleNames))
		for _, name := range ruleNames {
			r, err := e.catalog.Rule(name)
			if err != nil {
				return nil, err
			}
			rules = append(rules, r)
		}
		return rules, nil
	}
	if len(categories) > 0 {
		var rules []expr.Rule
		for _, cat := range categories {
			rs, err := e.catalog.Category(cat)
			if err != nil {
				return nil, err
			}
			rules = append(rules, rs...)
		}
		return rules, nil
	}
	return e.active.Active(), nil
}

// SolveProblem runs the chainer on a problem, using the problem's own
// rules when it carries any and the engine's active rules otherwise.
func (e *Engine) SolveProblem(p expr.Problem) chain.ProofResult {
	rules := p.Rules
	if len(rules) == 0 {
		rules = e.active.Active()
	}
	return e.chainer.Prove(p.Goal, p.Facts, rules)
}

// SolveAll solves problems in order with the same engine.
func (e *Engine) SolveAll(problems []expr.Problem) []chain.ProofResult {
	out := make([]chain.ProofResult, len(problems))
	for i, p := range problems {
		out[i] = e.SolveProblem(p)
	}
	return out
}

// Statistics returns counters from the most recent search.
func (e *Engine) Statistics() chain.Stats {
	return e.chainer.Statistics()
}

// ExplainProof renders a deterministic plain-text trace of a result,
// for diagnostics.
func (e *Engine) ExplainProof(r chain.ProofResult) string {
	if !r.Success {
		return fmt.Sprintf("Proof failed: %s", r.ErrorMessage)
	}
	if !r.GoalAchieved {
		return fmt.Sprintf("Could not prove the goal after %d iterations and %d steps.",
			r.Iterations, len(r.Steps))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Proof completed successfully in %d steps:\n\n", len(r.Steps))
	for _, step := range r.Steps {
		b.WriteString(step.String())
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "\nStatistics:\n")
	fmt.Fprintf(&b, "- Total iterations: %d\n", r.Iterations)
	fmt.Fprintf(&b, "- Time elapsed: %.3f seconds\n", r.Elapsed.Seconds())
	fmt.Fprintf(&b, "- Final facts count: %d\n", len(r.FinalFacts))
	return b.String()
}
