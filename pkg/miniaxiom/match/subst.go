// Package match implements the unification half of the prover: consistent
// variable substitutions, pattern-against-target matching for expressions
// and facts, and rule application over a working fact set.
package match

import (
	"sort"
	"strings"

	"github.com/Arvind-puthucode/MiniAxiom/pkg/miniaxiom/expr"
)

// Subst maps pattern-variable names to expressions. A name bound twice
// must bind to equal expressions; any conflicting binding invalidates
// the substitution. Substitutions are transient, created and merged
// within one matching attempt.
type Subst struct {
	bindings map[string]expr.Expr
}

// NewSubst creates an empty substitution.
func NewSubst() *Subst {
	return &Subst{bindings: make(map[string]expr.Expr)}
}

// Bind records name → e. It returns false if name is already bound to a
// different expression; binding the same expression again is a no-op.
func (s *Subst) Bind(name string, e expr.Expr) bool {
	if prev, ok := s.bindings[name]; ok {
		return expr.Equal(prev, e)
	}
	s.bindings[name] = e
	return true
}

// Lookup returns the expression bound to name.
func (s *Subst) Lookup(name string) (expr.Expr, bool) {
	e, ok := s.bindings[name]
	return e, ok
}

// Len returns the number of bindings.
func (s *Subst) Len() int { return len(s.bindings) }

// Clone returns an independent copy.
func (s *Subst) Clone() *Subst {
	c := &Subst{bindings: make(map[string]expr.Expr, len(s.bindings))}
	for k, v := range s.bindings {
		c.bindings[k] = v
	}
	return c
}

// Merge combines two substitutions into a new one. It returns nil, false
// when the two disagree on any binding.
func (s *Subst) Merge(other *Subst) (*Subst, bool) {
	out := s.Clone()
	for name, e := range other.bindings {
		if !out.Bind(name, e) {
			return nil, false
		}
	}
	return out, true
}

// ApplyExpr substitutes bound pattern variables inside e. Ground
// variables and numbers pass through untouched; unbound pattern
// variables are left in place.
func (s *Subst) ApplyExpr(e expr.Expr) expr.Expr {
	switch v := e.(type) {
	case expr.PatternVar:
		if bound, ok := s.bindings[v.Name()]; ok {
			return bound
		}
		return v
	case expr.Operation:
		left := s.ApplyExpr(v.Left())
		right := s.ApplyExpr(v.Right())
		op, err := expr.NewOperation(left, v.Operator(), right)
		if err != nil {
			// Operator came from a valid Operation, so this cannot fail.
			panic(err)
		}
		return op
	default:
		return e
	}
}

// ApplyFact substitutes into every argument of a fact.
func (s *Subst) ApplyFact(f expr.Fact) expr.Fact {
	args := make([]expr.Expr, len(f.Args()))
	for i, a := range f.Args() {
		args[i] = s.ApplyExpr(a)
	}
	// Predicate and arity are unchanged, so reconstruction cannot fail.
	return expr.MustFact(f.Predicate(), args...)
}

// String renders bindings sorted by name, for stable diagnostics.
func (s *Subst) String() string {
	if len(s.bindings) == 0 {
		return "{}"
	}
	names := make([]string, 0, len(s.bindings))
	for name := range s.bindings {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = name + ": " + s.bindings[name].String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
