package expr

import (
	"fmt"
	"strings"

	"github.com/Arvind-puthucode/MiniAxiom/pkg/miniaxiom/internalerr"
)

// Predicate is a fact predicate symbol.
type Predicate string

// The fixed predicate vocabulary.
const (
	PredEq       Predicate = "eq"
	PredGt       Predicate = "gt"
	PredLt       Predicate = "lt"
	PredGte      Predicate = "gte"
	PredLte      Predicate = "lte"
	PredEven     Predicate = "even"
	PredOdd      Predicate = "odd"
	PredPrime    Predicate = "prime"
	PredPositive Predicate = "positive"
	PredNegative Predicate = "negative"
	PredDivides  Predicate = "divides"
	PredMultiple Predicate = "multiple"
)

// arities maps each predicate to its fixed argument count.
var arities = map[Predicate]int{
	PredEq:       2,
	PredGt:       2,
	PredLt:       2,
	PredGte:      2,
	PredLte:      2,
	PredDivides:  2,
	PredMultiple: 2,
	PredEven:     1,
	PredOdd:      1,
	PredPrime:    1,
	PredPositive: 1,
	PredNegative: 1,
}

// Arity returns the fixed argument count for a predicate.
// The second return is false for unknown predicates.
func Arity(p Predicate) (int, bool) {
	n, ok := arities[p]
	return n, ok
}

// Fact is a logical statement: a predicate applied to an ordered
// argument list of expressions.
type Fact struct {
	pred Predicate
	args []Expr
}

// NewFact creates a Fact, validating predicate and arity.
func NewFact(pred Predicate, args ...Expr) (Fact, error) {
	want, ok := arities[pred]
	if !ok {
		return Fact{}, fmt.Errorf("fact: unknown predicate %q: %w", pred, internalerr.ErrInvalidInput)
	}
	if len(args) != want {
		return Fact{}, fmt.Errorf("fact: predicate %q expects %d arguments, got %d: %w",
			pred, want, len(args), internalerr.ErrInvalidInput)
	}
	for i, a := range args {
		if a == nil {
			return Fact{}, fmt.Errorf("fact: nil argument %d for %q: %w", i, pred, internalerr.ErrInvalidInput)
		}
	}
	cp := make([]Expr, len(args))
	copy(cp, args)
	return Fact{pred: pred, args: cp}, nil
}

// MustFact is NewFact that panics on error. For statically known facts.
func MustFact(pred Predicate, args ...Expr) Fact {
	f, err := NewFact(pred, args...)
	if err != nil {
		panic(err)
	}
	return f
}

// Predicate returns the predicate symbol.
func (f Fact) Predicate() Predicate { return f.pred }

// Args returns the argument list. The returned slice must not be modified.
func (f Fact) Args() []Expr { return f.args }

// Key returns the canonical form used for equality and set membership.
func (f Fact) Key() string {
	var b strings.Builder
	b.WriteString(string(f.pred))
	b.WriteByte('(')
	for i, a := range f.args {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(a.Key())
	}
	b.WriteByte(')')
	return b.String()
}

// EqualFact reports equality of two facts.
func EqualFact(a, b Fact) bool {
	return a.Key() == b.Key()
}

func (f Fact) String() string {
	return fmt.Sprintf("%s(%s)", f.pred, joinExprs(f.args))
}

// Zero reports whether the fact is the zero value (no predicate).
func (f Fact) Zero() bool { return f.pred == "" }
