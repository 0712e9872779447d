// Package expr defines the immutable symbolic data model: expressions,
// facts, rules and problems. Values are built once through validating
// constructors and never mutated; equality and set membership go through
// a canonical Key string. The model performs no arithmetic: 7-3 and 4
// are distinct expressions forever.
package expr

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/Arvind-puthucode/MiniAxiom/pkg/miniaxiom/internalerr"
)

// Op is a binary operator symbol.
type Op string

// Supported binary operators.
const (
	OpAdd Op = "+"
	OpSub Op = "-"
	OpMul Op = "*"
	OpDiv Op = "/"
	OpPow Op = "^"
)

// ValidOp reports whether op is one of the supported operator symbols.
func ValidOp(op Op) bool {
	switch op {
	case OpAdd, OpSub, OpMul, OpDiv, OpPow:
		return true
	}
	return false
}

// Expr is a symbolic expression tree node: a Number, a PatternVar, a
// GroundVar or an Operation.
type Expr interface {
	// Key returns the canonical form used for equality and set membership.
	// Distinct expression kinds never collide.
	Key() string

	// String returns the display rendering.
	String() string

	isExpr()
}

// Equal reports structural equality of two expressions.
func Equal(a, b Expr) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Key() == b.Key()
}

// Number is an exact rational constant.
type Number struct {
	val *big.Rat
}

// NewNumber creates a Number from an integer value.
func NewNumber(v int64) Number {
	return Number{val: big.NewRat(v, 1)}
}

// NewRational creates a Number from a numerator/denominator pair.
func NewRational(num, den int64) (Number, error) {
	if den == 0 {
		return Number{}, fmt.Errorf("number: zero denominator: %w", internalerr.ErrInvalidInput)
	}
	return Number{val: big.NewRat(num, den)}, nil
}

// Value returns a copy of the rational value.
func (n Number) Value() *big.Rat {
	return new(big.Rat).Set(n.val)
}

func (n Number) Key() string {
	return "num:" + n.val.RatString()
}

func (n Number) String() string {
	// RatString renders integers without a denominator.
	return n.val.RatString()
}

func (n Number) isExpr() {}

// PatternVar is a free variable, eligible for binding during matching.
// Pattern variables are scoped per rule.
type PatternVar struct {
	name string
}

// NewPatternVar creates a pattern variable.
func NewPatternVar(name string) (PatternVar, error) {
	if err := checkVarName(name); err != nil {
		return PatternVar{}, err
	}
	return PatternVar{name: name}, nil
}

// Name returns the variable name.
func (v PatternVar) Name() string { return v.name }

func (v PatternVar) Key() string { return "pvar:" + v.name }

func (v PatternVar) String() string { return v.name }

func (v PatternVar) isExpr() {}

// GroundVar is a concrete unknown. It is never substituted and matches
// only a ground variable of the identical name.
type GroundVar struct {
	name string
}

// NewGroundVar creates a ground variable.
func NewGroundVar(name string) (GroundVar, error) {
	if err := checkVarName(name); err != nil {
		return GroundVar{}, err
	}
	return GroundVar{name: name}, nil
}

// Name returns the variable name.
func (v GroundVar) Name() string { return v.name }

func (v GroundVar) Key() string { return "gvar:" + v.name }

func (v GroundVar) String() string { return v.name }

func (v GroundVar) isExpr() {}

func checkVarName(name string) error {
	if name == "" {
		return fmt.Errorf("variable: empty name: %w", internalerr.ErrInvalidInput)
	}
	for i, r := range name {
		switch {
		case r == '_':
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return fmt.Errorf("variable %q: name starts with a digit: %w", name, internalerr.ErrInvalidInput)
			}
		default:
			return fmt.Errorf("variable %q: invalid character %q: %w", name, r, internalerr.ErrInvalidInput)
		}
	}
	return nil
}

// Operation is a binary operation over two sub-expressions.
type Operation struct {
	left  Expr
	op    Op
	right Expr
}

// NewOperation creates an Operation, validating the operator symbol.
func NewOperation(left Expr, op Op, right Expr) (Operation, error) {
	if !ValidOp(op) {
		return Operation{}, fmt.Errorf("operation: unknown operator %q: %w", op, internalerr.ErrInvalidInput)
	}
	if left == nil || right == nil {
		return Operation{}, fmt.Errorf("operation: nil operand: %w", internalerr.ErrInvalidInput)
	}
	return Operation{left: left, op: op, right: right}, nil
}

// Left returns the left operand.
func (o Operation) Left() Expr { return o.left }

// Operator returns the operator symbol.
func (o Operation) Operator() Op { return o.op }

// Right returns the right operand.
func (o Operation) Right() Expr { return o.right }

func (o Operation) Key() string {
	return "op:(" + o.left.Key() + string(o.op) + o.right.Key() + ")"
}

func (o Operation) String() string {
	left := o.left.String()
	right := o.right.String()
	if _, ok := o.left.(Operation); ok {
		left = "(" + left + ")"
	}
	if _, ok := o.right.(Operation); ok {
		right = "(" + right + ")"
	}
	if o.op == OpPow {
		return left + "^" + right
	}
	return fmt.Sprintf("%s %s %s", left, o.op, right)
}

func (o Operation) isExpr() {}

// joinExprs renders a comma-separated argument list.
func joinExprs(args []Expr) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.String()
	}
	return strings.Join(parts, ", ")
}
