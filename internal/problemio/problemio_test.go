package problemio

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Arvind-puthucode/MiniAxiom/pkg/miniaxiom/internalerr"
)

func TestParse(t *testing.T) {
	data := []byte(`description: transitive order chain
goal: gt(a, c)
facts:
  - gt(a, b)
  - gt(b, c)
rules:
  - name: gt_chain
    rule: "gt(X, Y) ∧ gt(Y, Z) → gt(X, Z)"
  - rule: "gt(X, 0) -> positive(X)"
`)

	p, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if p.Goal.String() != "gt(a, c)" {
		t.Errorf("goal = %q", p.Goal)
	}
	if len(p.Facts) != 2 || p.Facts[1].String() != "gt(b, c)" {
		t.Errorf("facts = %v", p.Facts)
	}
	if len(p.Rules) != 2 {
		t.Fatalf("rules = %v", p.Rules)
	}
	if p.Rules[0].Name != "gt_chain" {
		t.Errorf("rule name = %q", p.Rules[0].Name)
	}
	if p.Rules[1].Name != "problem_rule_2" {
		t.Errorf("unnamed rule = %q, want generated name", p.Rules[1].Name)
	}
	if p.SourceText != "transitive order chain" {
		t.Errorf("SourceText = %q", p.SourceText)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"missing goal", "facts:\n  - gt(a, b)\n"},
		{"bad goal", "goal: gt(a\n"},
		{"bad fact", "goal: gt(a, c)\nfacts:\n  - nonsense(\n"},
		{"bad rule", "goal: gt(a, c)\nrules:\n  - name: r\n    rule: \"gt(X, Y)\"\n"},
		{"not yaml", ": : :\n"},
	}
	for _, c := range cases {
		if _, err := Parse([]byte(c.data)); err == nil {
			t.Errorf("%s: expected error", c.name)
		}
	}

	_, err := Parse([]byte("facts:\n  - gt(a, b)\n"))
	if !errors.Is(err, internalerr.ErrInvalidInput) {
		t.Errorf("missing goal err = %v, want ErrInvalidInput", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "problem.yaml")
	content := "goal: positive(a)\nfacts:\n  - gt(a, 0)\nrules:\n  - name: gt_zero\n    rule: \"gt(X, 0) → positive(X)\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p.Goal.String() != "positive(a)" || len(p.Rules) != 1 {
		t.Errorf("problem = %+v", p)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for a missing file")
	}
}
