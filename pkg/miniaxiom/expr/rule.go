package expr

import (
	"fmt"
	"strings"

	"github.com/Arvind-puthucode/MiniAxiom/pkg/miniaxiom/internalerr"
)

// Rule is an inference pattern: an ordered conjunction of premise facts
// implying a single conclusion fact. Pattern variables are scoped per
// rule and shared across premises and conclusion.
type Rule struct {
	Name       string
	Premises   []Fact
	Conclusion Fact
}

// NewRule creates a Rule. The name must be non-empty and the conclusion
// well-formed; an empty premise list is allowed.
func NewRule(name string, premises []Fact, conclusion Fact) (Rule, error) {
	if name == "" {
		return Rule{}, fmt.Errorf("rule: empty name: %w", internalerr.ErrInvalidInput)
	}
	if conclusion.Zero() {
		return Rule{}, fmt.Errorf("rule %q: missing conclusion: %w", name, internalerr.ErrInvalidInput)
	}
	for i, p := range premises {
		if p.Zero() {
			return Rule{}, fmt.Errorf("rule %q: empty premise %d: %w", name, i, internalerr.ErrInvalidInput)
		}
	}
	cp := make([]Fact, len(premises))
	copy(cp, premises)
	return Rule{Name: name, Premises: cp, Conclusion: conclusion}, nil
}

func (r Rule) String() string {
	if len(r.Premises) == 0 {
		return r.Conclusion.String()
	}
	parts := make([]string, len(r.Premises))
	for i, p := range r.Premises {
		parts[i] = p.String()
	}
	return strings.Join(parts, " ∧ ") + " → " + r.Conclusion.String()
}

// Problem is a complete problem statement: a goal to derive,
// the initially known facts, candidate rules, and provenance text.
// Built once, consumed read-only.
type Problem struct {
	Goal       Fact
	Facts      []Fact
	Rules      []Rule
	SourceText string
	Metadata   map[string]string
}

// NewProblem creates a Problem, rejecting ill-formed parts up front so
// the search loop never sees malformed input.
func NewProblem(goal Fact, facts []Fact, rules []Rule) (Problem, error) {
	if goal.Zero() {
		return Problem{}, fmt.Errorf("problem: missing goal: %w", internalerr.ErrInvalidInput)
	}
	for i, f := range facts {
		if f.Zero() {
			return Problem{}, fmt.Errorf("problem: empty fact %d: %w", i, internalerr.ErrInvalidInput)
		}
	}
	for i, r := range rules {
		if r.Name == "" || r.Conclusion.Zero() {
			return Problem{}, fmt.Errorf("problem: ill-formed rule %d: %w", i, internalerr.ErrInvalidInput)
		}
	}
	fc := make([]Fact, len(facts))
	copy(fc, facts)
	rc := make([]Rule, len(rules))
	copy(rc, rules)
	return Problem{Goal: goal, Facts: fc, Rules: rc}, nil
}
