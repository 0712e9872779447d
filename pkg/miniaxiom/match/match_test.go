package match

import (
	"testing"

	"github.com/Arvind-puthucode/MiniAxiom/pkg/miniaxiom/expr"
)

func TestMatchExpression(t *testing.T) {
	cases := []struct {
		pattern string
		target  string
		ok      bool
	}{
		{"X", "x + 3", true},
		{"X + A", "x + 3", true},
		{"X + X", "3 + 3", true},
		// A repeated pattern variable must bind consistently.
		{"X + X", "3 + 4", false},
		// Ground variables match only a ground variable of the same name.
		{"x", "x", true},
		{"x", "y", false},
		{"x", "5", false},
		// Numbers require exact rational equality, never evaluation.
		{"5", "5", true},
		{"5", "7 - 2", false},
		{"X + A", "x - 3", false},
		{"X * A", "(x + 1) * 2", true},
		{"X + 0", "y + 0", true},
		{"X + 0", "y + 1", false},
	}
	for _, c := range cases {
		_, ok := Expression(mustExpr(t, c.pattern), mustExpr(t, c.target))
		if ok != c.ok {
			t.Errorf("Expression(%q, %q) ok = %v, want %v", c.pattern, c.target, ok, c.ok)
		}
	}
}

func TestMatchExpressionBindings(t *testing.T) {
	s, ok := Expression(mustExpr(t, "X + A"), mustExpr(t, "x + 3"))
	if !ok {
		t.Fatal("Expected match")
	}
	if got, _ := s.Lookup("X"); got.String() != "x" {
		t.Errorf("X bound to %q, want 'x'", got)
	}
	if got, _ := s.Lookup("A"); got.String() != "3" {
		t.Errorf("A bound to %q, want '3'", got)
	}
}

func TestMatchSequentialThreading(t *testing.T) {
	// The right operand is matched under bindings accumulated from the
	// left, so X on the right must agree with the X bound on the left.
	_, ok := Expression(mustExpr(t, "X * X"), mustExpr(t, "(y + 1) * (y + 1)"))
	if !ok {
		t.Error("Identical compound operands must match a repeated variable")
	}
	_, ok = Expression(mustExpr(t, "X * X"), mustExpr(t, "(y + 1) * (y + 2)"))
	if ok {
		t.Error("Differing compound operands must not match a repeated variable")
	}
}

func TestMatchFact(t *testing.T) {
	s, ok := Fact(mustFact(t, "eq(X + A, B)"), mustFact(t, "eq(x + 3, 7)"))
	if !ok {
		t.Fatal("Expected fact match")
	}
	for name, want := range map[string]string{"X": "x", "A": "3", "B": "7"} {
		if got, _ := s.Lookup(name); got == nil || got.String() != want {
			t.Errorf("%s bound to %v, want %q", name, got, want)
		}
	}

	if _, ok := Fact(mustFact(t, "eq(X, A)"), mustFact(t, "gt(x, 3)")); ok {
		t.Error("Different predicates must not match")
	}
	if _, ok := Fact(mustFact(t, "eq(X, X)"), mustFact(t, "eq(x, y)")); ok {
		t.Error("Repeated variable across arguments must bind consistently")
	}
	if _, ok := Fact(mustFact(t, "eq(X, X)"), mustFact(t, "eq(x, x)")); !ok {
		t.Error("Repeated variable must match identical arguments")
	}
}

func TestFactsListDistinctAssignment(t *testing.T) {
	patterns := []expr.Fact{
		mustFact(t, "gt(X, Y)"),
		mustFact(t, "gt(Y, Z)"),
	}
	targets := []expr.Fact{
		mustFact(t, "gt(a, b)"),
		mustFact(t, "gt(b, c)"),
	}
	subs := FactsList(patterns, targets)
	if len(subs) != 1 {
		t.Fatalf("Expected 1 substitution, got %d", len(subs))
	}
	if got, _ := subs[0].Lookup("Y"); got.String() != "b" {
		t.Errorf("Y bound to %q, want 'b'", got)
	}
}

func TestFactsListNoFactReuse(t *testing.T) {
	// One target cannot satisfy two premises at once, even when it
	// matches both patterns.
	patterns := []expr.Fact{
		mustFact(t, "gt(X, Y)"),
		mustFact(t, "gt(Y, X)"),
	}
	targets := []expr.Fact{mustFact(t, "gt(a, a)")}
	if subs := FactsList(patterns, targets); len(subs) != 0 {
		t.Errorf("Expected no substitutions, got %d", len(subs))
	}
}

func TestFactsListEnumerationOrder(t *testing.T) {
	// Assignments enumerate premise-order-first over the targets slice:
	// the first premise tries earlier targets before later ones.
	patterns := []expr.Fact{mustFact(t, "positive(X)")}
	targets := []expr.Fact{
		mustFact(t, "positive(a)"),
		mustFact(t, "positive(b)"),
	}
	subs := FactsList(patterns, targets)
	if len(subs) != 2 {
		t.Fatalf("Expected 2 substitutions, got %d", len(subs))
	}
	if got, _ := subs[0].Lookup("X"); got.String() != "a" {
		t.Errorf("First substitution binds X to %q, want 'a'", got)
	}
	if got, _ := subs[1].Lookup("X"); got.String() != "b" {
		t.Errorf("Second substitution binds X to %q, want 'b'", got)
	}
}

func TestFactsListEmptyPatterns(t *testing.T) {
	subs := FactsList(nil, []expr.Fact{mustFact(t, "even(x)")})
	if len(subs) != 1 || subs[0].Len() != 0 {
		t.Errorf("Empty pattern list must yield one empty substitution, got %v", subs)
	}
}
