// Command axiom-history queries the SQLite proof-attempt history.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/Arvind-puthucode/MiniAxiom/pkg/miniaxiom/store/sqlite"
)

func main() {
	var (
		dbPath    = flag.String("db", "", "SQLite history file (required)")
		limit     = flag.Int("limit", 20, "Maximum attempts to list")
		id        = flag.String("id", "", "Show a single attempt with its steps")
		ruleUsage = flag.Bool("rule-usage", false, "Print aggregated per-rule application counts")
	)
	flag.Parse()

	if *dbPath == "" {
		log.Fatal("--db required")
	}

	ctx := context.Background()
	st, err := sqlite.Open(ctx, *dbPath)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer st.Close()

	if *ruleUsage {
		usage, err := st.RuleUsage(ctx)
		if err != nil {
			log.Fatalf("rule usage: %v", err)
		}
		for _, rc := range usage {
			fmt.Printf("%8d  %s\n", rc.Count, rc.RuleName)
		}
		return
	}

	if *id != "" {
		a, err := st.GetAttempt(ctx, *id)
		if err != nil {
			log.Fatalf("get attempt: %v", err)
		}
		fmt.Printf("%s  %s  goal=%s  outcome=%s  iterations=%d  %.3fs\n",
			a.ID, a.CreatedAt.Format("2006-01-02 15:04:05"), a.Goal, a.Outcome, a.Iterations, a.ElapsedSeconds)
		for _, step := range a.Steps {
			fmt.Printf("  step %d: %s derives %s\n", step.StepNumber, step.RuleName, step.DerivedFact)
		}
		return
	}

	attempts, err := st.ListAttempts(ctx, *limit)
	if err != nil {
		log.Fatalf("list attempts: %v", err)
	}
	for _, a := range attempts {
		achieved := " "
		if a.GoalAchieved {
			achieved = "✓"
		}
		fmt.Printf("%s %s  %-16s  steps=%-3d  %s\n",
			achieved, a.ID, a.Outcome, len(a.Steps), a.Goal)
	}
}
