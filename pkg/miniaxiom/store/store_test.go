package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/Arvind-puthucode/MiniAxiom/pkg/miniaxiom/chain"
	"github.com/Arvind-puthucode/MiniAxiom/pkg/miniaxiom/expr"
	"github.com/Arvind-puthucode/MiniAxiom/pkg/miniaxiom/parse"
	"github.com/Arvind-puthucode/MiniAxiom/pkg/miniaxiom/store"
	"github.com/Arvind-puthucode/MiniAxiom/pkg/miniaxiom/store/memstore"
)

func mustFact(t *testing.T, s string) expr.Fact {
	t.Helper()
	f, err := parse.Fact(s)
	if err != nil {
		t.Fatalf("parse fact %q: %v", s, err)
	}
	return f
}

func TestRecorderConvertsResult(t *testing.T) {
	ctx := context.Background()
	db := memstore.New()
	rec := store.NewRecorder(db)

	result := chain.ProofResult{
		Success:      true,
		GoalAchieved: true,
		Outcome:      chain.OutcomeGoal,
		Steps: []chain.ProofStep{{
			RuleName: "greater_transitivity",
			Premises: []expr.Fact{mustFact(t, "gt(a, b)"), mustFact(t, "gt(b, c)")},
			Derived:  mustFact(t, "gt(a, c)"),
			Index:    1,
		}},
		FinalFacts: []expr.Fact{
			mustFact(t, "gt(a, b)"), mustFact(t, "gt(b, c)"), mustFact(t, "gt(a, c)"),
		},
		Iterations: 1,
		Elapsed:    3 * time.Millisecond,
	}

	attempt, err := rec.Record(ctx, "gt(a, c)", result)
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if attempt.ID == "" {
		t.Fatal("Recorder must assign an ID")
	}
	if attempt.Outcome != "goal_achieved" || attempt.FinalFacts != 3 {
		t.Errorf("attempt = %+v", attempt)
	}
	if attempt.ElapsedSeconds != 0.003 {
		t.Errorf("ElapsedSeconds = %v", attempt.ElapsedSeconds)
	}
	if len(attempt.Steps) != 1 || attempt.Steps[0].DerivedFact != "gt(a, c)" {
		t.Errorf("steps = %v", attempt.Steps)
	}
	if attempt.Steps[0].Premises[1] != "gt(b, c)" {
		t.Errorf("premises = %v", attempt.Steps[0].Premises)
	}

	stored, err := db.GetAttempt(ctx, attempt.ID)
	if err != nil {
		t.Fatalf("GetAttempt: %v", err)
	}
	if stored.Goal != "gt(a, c)" {
		t.Errorf("stored = %+v", stored)
	}
}

func TestRecorderIDsAreMonotonic(t *testing.T) {
	ctx := context.Background()
	rec := store.NewRecorder(memstore.New())

	var prev string
	for i := 0; i < 5; i++ {
		a, err := rec.Record(ctx, "even(x)", chain.ProofResult{Outcome: chain.OutcomeStuck, Success: true})
		if err != nil {
			t.Fatalf("Record: %v", err)
		}
		if a.ID <= prev {
			t.Fatalf("IDs not increasing: %q after %q", a.ID, prev)
		}
		prev = a.ID
	}
}
