// Command axiom-prove runs the proof engine on a problem file and
// prints the result, optionally recording it to a SQLite history
// database.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/Arvind-puthucode/MiniAxiom/internal/problemio"
	"github.com/Arvind-puthucode/MiniAxiom/pkg/miniaxiom"
	"github.com/Arvind-puthucode/MiniAxiom/pkg/miniaxiom/chain"
	"github.com/Arvind-puthucode/MiniAxiom/pkg/miniaxiom/config"
	"github.com/Arvind-puthucode/MiniAxiom/pkg/miniaxiom/expr"
	"github.com/Arvind-puthucode/MiniAxiom/pkg/miniaxiom/store"
	"github.com/Arvind-puthucode/MiniAxiom/pkg/miniaxiom/store/sqlite"
)

func main() {
	var (
		problemPath = flag.String("problem", "", "Path to problem YAML file (required)")
		configPath  = flag.String("config", "", "Optional engine config YAML file")
		ruleNames   = flag.String("rules", "", "Comma-separated specific rule names")
		categories  = flag.String("categories", "", "Comma-separated rule categories")
		dbPath      = flag.String("db", "", "Optional SQLite file to record the attempt")
		asJSON      = flag.Bool("json", false, "Print the result as JSON")
		maxIter     = flag.Int("max-iterations", 0, "Override max iterations")
		maxFacts    = flag.Int("max-facts", 0, "Override max facts")
	)
	flag.Parse()

	if *problemPath == "" {
		log.Fatal("--problem required")
	}

	loader := config.Loader{EnginePath: *configPath}
	engine, err := loader.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	engine.Configure(*maxIter, *maxFacts)

	problem, err := problemio.Load(*problemPath)
	if err != nil {
		log.Fatalf("load problem: %v", err)
	}

	res, err := runProof(engine, problem, splitList(*categories), splitList(*ruleNames))
	if err != nil {
		log.Fatalf("prove: %v", err)
	}

	if *dbPath != "" {
		ctx := context.Background()
		st, err := sqlite.Open(ctx, *dbPath)
		if err != nil {
			log.Fatalf("open db: %v", err)
		}
		defer st.Close()

		attempt, err := store.NewRecorder(st).Record(ctx, problem.Goal.String(), res)
		if err != nil {
			log.Fatalf("record attempt: %v", err)
		}
		fmt.Fprintf(os.Stderr, "recorded attempt %s\n", attempt.ID)
	}

	if *asJSON {
		out, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			log.Fatalf("encode result: %v", err)
		}
		fmt.Println(string(out))
		return
	}

	fmt.Print(engine.ExplainProof(res))
}

// runProof prefers an explicit rule selection over the problem's own
// rules; with neither, SolveProblem falls back to the active catalog.
func runProof(engine *miniaxiom.Engine, problem expr.Problem,
	categories, ruleNames []string) (chain.ProofResult, error) {

	if len(categories) > 0 || len(ruleNames) > 0 {
		return engine.ProveGoal(problem.Goal, problem.Facts, categories, ruleNames)
	}
	return engine.SolveProblem(problem), nil
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
