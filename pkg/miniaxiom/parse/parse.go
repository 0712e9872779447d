// Package parse turns the textual rule/fact mini-language into validated
// expr values. It is a front-end concern: the reasoning core never
// operates on strings.
//
// Expression grammar (left-associative, '^' binds tightest):
//
//	expr    = term  { ("+" | "-") term }
//	term    = power { ("*" | "/") power }
//	power   = unary [ "^" power ]
//	unary   = [ "-" ] primary
//	primary = NUMBER | IDENT | "(" expr ")"
//
// An identifier whose first character is upper-case or an underscore is
// a pattern variable; anything else is a ground variable. Facts are
// written predicate(arg, ...); rules join premises with "∧" (or "&")
// and separate the conclusion with "→" (or "->").
package parse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Arvind-puthucode/MiniAxiom/pkg/miniaxiom/expr"
	"github.com/Arvind-puthucode/MiniAxiom/pkg/miniaxiom/internalerr"
)

// Expression parses a string expression.
func Expression(s string) (expr.Expr, error) {
	p, err := newParser(s)
	if err != nil {
		return nil, err
	}
	e, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if !p.done() {
		return nil, fmt.Errorf("parse %q: trailing input at %q: %w", s, p.rest(), internalerr.ErrInvalidInput)
	}
	return e, nil
}

// Fact parses a "predicate(arg, ...)" string into a Fact.
func Fact(s string) (expr.Fact, error) {
	s = strings.TrimSpace(s)
	open := strings.IndexByte(s, '(')
	if open <= 0 || !strings.HasSuffix(s, ")") {
		return expr.Fact{}, fmt.Errorf("parse fact %q: want predicate(args): %w", s, internalerr.ErrInvalidInput)
	}
	pred := strings.TrimSpace(s[:open])
	argsStr := s[open+1 : len(s)-1]

	var args []expr.Expr
	for _, part := range splitArgs(argsStr) {
		e, err := Expression(part)
		if err != nil {
			return expr.Fact{}, fmt.Errorf("parse fact %q: %w", s, err)
		}
		args = append(args, e)
	}
	f, err := expr.NewFact(expr.Predicate(pred), args...)
	if err != nil {
		return expr.Fact{}, fmt.Errorf("parse fact %q: %w", s, err)
	}
	return f, nil
}

// Rule parses "p1 ∧ p2 → c" into a named Rule. The ASCII forms "&" and
// "->" are accepted as alternates.
func Rule(s, name string) (expr.Rule, error) {
	premStr, conclStr, ok := splitArrow(s)
	if !ok {
		return expr.Rule{}, fmt.Errorf("parse rule %q: missing →: %w", s, internalerr.ErrInvalidInput)
	}

	var premises []expr.Fact
	for _, part := range splitConj(premStr) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		f, err := Fact(part)
		if err != nil {
			return expr.Rule{}, fmt.Errorf("parse rule %q: %w", s, err)
		}
		premises = append(premises, f)
	}

	conclusion, err := Fact(strings.TrimSpace(conclStr))
	if err != nil {
		return expr.Rule{}, fmt.Errorf("parse rule %q: %w", s, err)
	}

	r, err := expr.NewRule(name, premises, conclusion)
	if err != nil {
		return expr.Rule{}, fmt.Errorf("parse rule %q: %w", s, err)
	}
	return r, nil
}

// Facts parses a list of fact strings.
func Facts(list []string) ([]expr.Fact, error) {
	out := make([]expr.Fact, 0, len(list))
	for _, s := range list {
		f, err := Fact(s)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

func splitArrow(s string) (string, string, bool) {
	if i := strings.Index(s, "→"); i >= 0 {
		return s[:i], s[i+len("→"):], true
	}
	if i := strings.Index(s, "->"); i >= 0 {
		return s[:i], s[i+2:], true
	}
	return "", "", false
}

func splitConj(s string) []string {
	s = strings.ReplaceAll(s, "∧", "&")
	return strings.Split(s, "&")
}

// splitArgs splits an argument list on top-level commas, respecting
// nested parentheses.
func splitArgs(s string) []string {
	var out []string
	depth := 0
	start := 0
	for i, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				out = append(out, s[start:i])
				start = i + 1
			}
		}
	}
	if strings.TrimSpace(s[start:]) != "" {
		out = append(out, s[start:])
	}
	return out
}

// token kinds
const (
	tokNumber = iota
	tokIdent
	tokSym
	tokEOF
)

type token struct {
	kind int
	text string
}

type parser struct {
	toks []token
	pos  int
	src  string
}

func newParser(s string) (*parser, error) {
	toks, err := tokenize(s)
	if err != nil {
		return nil, err
	}
	return &parser{toks: toks, src: s}, nil
}

func tokenize(s string) ([]token, error) {
	var toks []token
	i := 0
	for i < len(s) {
		c := s[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n':
			i++
		case c >= '0' && c <= '9':
			j := i
			for j < len(s) && s[j] >= '0' && s[j] <= '9' {
				j++
			}
			toks = append(toks, token{tokNumber, s[i:j]})
			i = j
		case c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z'):
			j := i
			for j < len(s) && (s[j] == '_' || (s[j] >= 'a' && s[j] <= 'z') ||
				(s[j] >= 'A' && s[j] <= 'Z') || (s[j] >= '0' && s[j] <= '9')) {
				j++
			}
			toks = append(toks, token{tokIdent, s[i:j]})
			i = j
		case strings.ContainsRune("+-*/^()", rune(c)):
			toks = append(toks, token{tokSym, string(c)})
			i++
		default:
			return nil, fmt.Errorf("parse %q: unexpected character %q: %w", s, c, internalerr.ErrInvalidInput)
		}
	}
	toks = append(toks, token{tokEOF, ""})
	return toks, nil
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) accept(sym string) bool {
	if t := p.peek(); t.kind == tokSym && t.text == sym {
		p.pos++
		return true
	}
	return false
}

func (p *parser) done() bool { return p.peek().kind == tokEOF }

func (p *parser) rest() string {
	var parts []string
	for _, t := range p.toks[p.pos:] {
		if t.kind == tokEOF {
			break
		}
		parts = append(parts, t.text)
	}
	return strings.Join(parts, " ")
}

func (p *parser) parseExpr() (expr.Expr, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		var op expr.Op
		switch {
		case p.accept("+"):
			op = expr.OpAdd
		case p.accept("-"):
			op = expr.OpSub
		default:
			return left, nil
		}
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left, err = expr.NewOperation(left, op, right)
		if err != nil {
			return nil, err
		}
	}
}

func (p *parser) parseTerm() (expr.Expr, error) {
	left, err := p.parsePower()
	if err != nil {
		return nil, err
	}
	for {
		var op expr.Op
		switch {
		case p.accept("*"):
			op = expr.OpMul
		case p.accept("/"):
			op = expr.OpDiv
		default:
			return left, nil
		}
		right, err := p.parsePower()
		if err != nil {
			return nil, err
		}
		left, err = expr.NewOperation(left, op, right)
		if err != nil {
			return nil, err
		}
	}
}

func (p *parser) parsePower() (expr.Expr, error) {
	base, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	if p.accept("^") {
		// Right-associative exponent.
		exp, err := p.parsePower()
		if err != nil {
			return nil, err
		}
		return expr.NewOperation(base, expr.OpPow, exp)
	}
	return base, nil
}

func (p *parser) parseUnary() (expr.Expr, error) {
	if p.accept("-") {
		t := p.peek()
		if t.kind != tokNumber {
			return nil, fmt.Errorf("parse %q: unary minus requires a number literal: %w", p.src, internalerr.ErrInvalidInput)
		}
		p.next()
		v, err := strconv.ParseInt(t.text, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse %q: number %q out of range: %w", p.src, t.text, internalerr.ErrInvalidInput)
		}
		return expr.NewNumber(-v), nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (expr.Expr, error) {
	t := p.next()
	switch t.kind {
	case tokNumber:
		v, err := strconv.ParseInt(t.text, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse %q: number %q out of range: %w", p.src, t.text, internalerr.ErrInvalidInput)
		}
		return expr.NewNumber(v), nil
	case tokIdent:
		if isPatternName(t.text) {
			return expr.NewPatternVar(t.text)
		}
		return expr.NewGroundVar(t.text)
	case tokSym:
		if t.text == "(" {
			e, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			if !p.accept(")") {
				return nil, fmt.Errorf("parse %q: missing ')': %w", p.src, internalerr.ErrInvalidInput)
			}
			return e, nil
		}
	}
	return nil, fmt.Errorf("parse %q: unexpected token %q: %w", p.src, t.text, internalerr.ErrInvalidInput)
}

// isPatternName applies the naming convention once, at the front end:
// upper-case or underscore-prefixed names are pattern variables.
func isPatternName(name string) bool {
	c := name[0]
	return c == '_' || (c >= 'A' && c <= 'Z')
}
