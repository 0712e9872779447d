package miniaxiom_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Arvind-puthucode/MiniAxiom/pkg/miniaxiom"
	"github.com/Arvind-puthucode/MiniAxiom/pkg/miniaxiom/config"
	"github.com/Arvind-puthucode/MiniAxiom/pkg/miniaxiom/parse"
	"github.com/Arvind-puthucode/MiniAxiom/pkg/miniaxiom/store"
	"github.com/Arvind-puthucode/MiniAxiom/pkg/miniaxiom/store/memstore"
)

// TestEndToEnd demonstrates the complete proof workflow:
// 1. Configuration loading
// 2. Problem parsing
// 3. Proof search
// 4. Explanation rendering
// 5. Attempt recording and aggregation
func TestEndToEnd(t *testing.T) {
	ctx := context.Background()

	// === Phase 1: Build an engine from configuration ===

	cfgPath := filepath.Join(t.TempDir(), "engine.yaml")
	cfgYAML := `max_iterations: 50
max_facts: 200
disabled_rules:
  - odd_square
extra_rules:
  - name: positive_from_gt
    category: custom
    rule: "gt(X, 0) → positive(X)"
`
	if err := os.WriteFile(cfgPath, []byte(cfgYAML), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	loader := &config.Loader{EnginePath: cfgPath}
	var eng *miniaxiom.Engine
	eng, err := loader.Load()
	if err != nil {
		t.Fatalf("load engine: %v", err)
	}

	// === Phase 2: Parse the problem ===

	goal, err := parse.Fact("positive(a)")
	if err != nil {
		t.Fatalf("parse goal: %v", err)
	}
	facts, err := parse.Facts([]string{"gt(a, b)", "gt(b, 0)"})
	if err != nil {
		t.Fatalf("parse facts: %v", err)
	}

	// === Phase 3: Run the search ===

	result, err := eng.ProveGoal(goal, facts, nil, nil)
	if err != nil {
		t.Fatalf("prove: %v", err)
	}
	if !result.GoalAchieved {
		t.Fatalf("goal not achieved: outcome %q", result.Outcome)
	}
	last := result.Steps[len(result.Steps)-1]
	if last.Derived.String() != "positive(a)" || last.RuleName != "positive_from_gt" {
		t.Errorf("final step = %v", last)
	}

	// === Phase 4: Render the explanation ===

	text := eng.ExplainProof(result)
	if !strings.Contains(text, "Proof completed successfully") {
		t.Errorf("explanation missing header:\n%s", text)
	}
	if !strings.Contains(text, "(using positive_from_gt)") {
		t.Errorf("explanation missing rule attribution:\n%s", text)
	}

	// === Phase 5: Record the attempt ===

	db := memstore.New()
	defer db.Close()

	recorder := store.NewRecorder(db)
	attempt, err := recorder.Record(ctx, goal.String(), result)
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if attempt.ID == "" || !attempt.GoalAchieved {
		t.Errorf("attempt = %+v", attempt)
	}

	stored, err := db.GetAttempt(ctx, attempt.ID)
	if err != nil {
		t.Fatalf("get attempt: %v", err)
	}
	if stored.Goal != "positive(a)" || len(stored.Steps) != len(result.Steps) {
		t.Errorf("stored attempt = %+v", stored)
	}

	usage, err := db.RuleUsage(ctx)
	if err != nil {
		t.Fatalf("rule usage: %v", err)
	}
	found := false
	for _, rc := range usage {
		if rc.RuleName == "positive_from_gt" && rc.Count == 1 {
			found = true
		}
	}
	if !found {
		t.Errorf("rule usage missing positive_from_gt: %v", usage)
	}
}
