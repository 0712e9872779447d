// Package problemio loads problem files into validated expr.Problem
// values. A problem file is YAML holding the goal, facts and optional
// rules in the textual mini-language:
//
//	description: two-step chain
//	goal: positive(a)
//	facts:
//	  - eq(a, b)
//	rules:
//	  - name: gt_zero
//	    rule: "eq(X, Y) → gt(X, 0)"
package problemio

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Arvind-puthucode/MiniAxiom/pkg/miniaxiom/expr"
	"github.com/Arvind-puthucode/MiniAxiom/pkg/miniaxiom/internalerr"
	"github.com/Arvind-puthucode/MiniAxiom/pkg/miniaxiom/parse"
)

type problemFile struct {
	Description string    `yaml:"description"`
	Goal        string    `yaml:"goal"`
	Facts       []string  `yaml:"facts"`
	Rules       []ruleDef `yaml:"rules"`
}

type ruleDef struct {
	Name string `yaml:"name"`
	Rule string `yaml:"rule"`
}

// Load reads and validates a problem file.
func Load(path string) (expr.Problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return expr.Problem{}, err
	}
	return Parse(data)
}

// Parse validates problem-file bytes.
func Parse(data []byte) (expr.Problem, error) {
	var pf problemFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return expr.Problem{}, fmt.Errorf("problem file: %w", err)
	}
	if pf.Goal == "" {
		return expr.Problem{}, fmt.Errorf("problem file: missing goal: %w", internalerr.ErrInvalidInput)
	}

	goal, err := parse.Fact(pf.Goal)
	if err != nil {
		return expr.Problem{}, fmt.Errorf("problem goal: %w", err)
	}

	facts, err := parse.Facts(pf.Facts)
	if err != nil {
		return expr.Problem{}, fmt.Errorf("problem facts: %w", err)
	}

	var rules []expr.Rule
	for i, def := range pf.Rules {
		name := def.Name
		if name == "" {
			name = fmt.Sprintf("problem_rule_%d", i+1)
		}
		r, err := parse.Rule(def.Rule, name)
		if err != nil {
			return expr.Problem{}, fmt.Errorf("problem rules: %w", err)
		}
		rules = append(rules, r)
	}

	p, err := expr.NewProblem(goal, facts, rules)
	if err != nil {
		return expr.Problem{}, err
	}
	p.SourceText = pf.Description
	return p, nil
}
