package match

import (
	"github.com/Arvind-puthucode/MiniAxiom/pkg/miniaxiom/expr"
)

// Expression matches a pattern expression against a concrete target.
// Pattern variables bind to the target (consistently with any prior
// binding); ground variables match only a ground variable of the same
// name; numbers require exact rational equality; operations require the
// same operator with operands matched left to right, the right operand
// seeing the bindings accumulated from the left.
func Expression(pattern, target expr.Expr) (*Subst, bool) {
	return matchExpr(pattern, target, NewSubst())
}

func matchExpr(pattern, target expr.Expr, s *Subst) (*Subst, bool) {
	switch p := pattern.(type) {
	case expr.PatternVar:
		if bound, ok := s.Lookup(p.Name()); ok {
			if expr.Equal(bound, target) {
				return s, true
			}
			return nil, false
		}
		out := s.Clone()
		out.Bind(p.Name(), target)
		return out, true

	case expr.GroundVar:
		if t, ok := target.(expr.GroundVar); ok && p.Name() == t.Name() {
			return s, true
		}
		return nil, false

	case expr.Number:
		if t, ok := target.(expr.Number); ok && expr.Equal(p, t) {
			return s, true
		}
		return nil, false

	case expr.Operation:
		t, ok := target.(expr.Operation)
		if !ok || p.Operator() != t.Operator() {
			return nil, false
		}
		s, ok = matchExpr(p.Left(), t.Left(), s)
		if !ok {
			return nil, false
		}
		return matchExpr(p.Right(), t.Right(), s)
	}
	return nil, false
}

// Fact matches a pattern fact against a concrete fact. Predicate and
// arity must agree; arguments are matched pairwise and the resulting
// substitutions merged, failing on any conflicting binding.
func Fact(pattern, target expr.Fact) (*Subst, bool) {
	if pattern.Predicate() != target.Predicate() {
		return nil, false
	}
	if len(pattern.Args()) != len(target.Args()) {
		return nil, false
	}
	result := NewSubst()
	for i, parg := range pattern.Args() {
		s, ok := Expression(parg, target.Args()[i])
		if !ok {
			return nil, false
		}
		result, ok = result.Merge(s)
		if !ok {
			return nil, false
		}
	}
	return result, true
}

// FactsList enumerates every assignment of distinct target facts to the
// pattern list whose per-premise matches merge consistently, in
// premise-order-first order over the targets slice. A target assigned
// to one premise is withheld from the remaining premises. Worst case is
// exponential in patterns × targets; the chainer's iteration and fact
// caps keep it bounded in practice.
func FactsList(patterns []expr.Fact, targets []expr.Fact) []*Subst {
	if len(patterns) == 0 {
		return []*Subst{NewSubst()}
	}

	if len(patterns) == 1 {
		var out []*Subst
		for _, t := range targets {
			if s, ok := Fact(patterns[0], t); ok {
				out = append(out, s)
			}
		}
		return out
	}

	var out []*Subst
	for i, t := range targets {
		first, ok := Fact(patterns[0], t)
		if !ok {
			continue
		}
		remaining := make([]expr.Fact, 0, len(targets)-1)
		remaining = append(remaining, targets[:i]...)
		remaining = append(remaining, targets[i+1:]...)

		for _, rest := range FactsList(patterns[1:], remaining) {
			if merged, ok := first.Merge(rest); ok {
				out = append(out, merged)
			}
		}
	}
	return out
}
