// Package chain implements the bounded forward-chaining saturation
// search: active rules are applied to a growing working fact set until
// the goal is derived, no further progress is possible, or a limit
// trips. The search is single-threaded and deterministic for a fixed
// (goal, initial facts, rule list) triple.
package chain

import (
	"fmt"
	"time"

	"github.com/Arvind-puthucode/MiniAxiom/pkg/miniaxiom/expr"
	"github.com/Arvind-puthucode/MiniAxiom/pkg/miniaxiom/match"
)

// Default search limits.
const (
	DefaultMaxIterations = 100
	DefaultMaxFacts      = 1000
)

// Outcome tags why a search ended.
type Outcome string

const (
	OutcomeGoal           Outcome = "goal_achieved"
	OutcomeStuck          Outcome = "stuck"
	OutcomeIterationLimit Outcome = "iteration_limit"
	OutcomeFactLimit      Outcome = "fact_limit"
	OutcomeError          Outcome = "error"
)

// ProofStep is one derivation: a rule applied to concrete premises,
// yielding a concrete fact.
type ProofStep struct {
	RuleName string
	Premises []expr.Fact
	Derived  expr.Fact
	Index    int // 1-based ordinal within the proof
}

func (s ProofStep) String() string {
	premises := ""
	for i, p := range s.Premises {
		if i > 0 {
			premises += " ∧ "
		}
		premises += p.String()
	}
	return fmt.Sprintf("Step %d: %s → %s (using %s)", s.Index, premises, s.Derived, s.RuleName)
}

// ProofResult is the outcome of one proof attempt. Search exhaustion
// (stuck, iteration limit) is a successful call with GoalAchieved false;
// Success is false only for the fact limit and internal faults. Callers
// must inspect GoalAchieved, not merely Success, to learn whether a
// proof was found.
type ProofResult struct {
	Success      bool
	GoalAchieved bool
	Outcome      Outcome
	Steps        []ProofStep
	FinalFacts   []expr.Fact
	Iterations   int
	Elapsed      time.Duration
	ErrorMessage string
}

// Stats tracks counters for a single proof attempt.
type Stats struct {
	Iterations       int
	RulesApplied     int
	FactsDerived     int
	RuleApplications map[string]int
}

// Chainer runs bounded saturation searches. A Chainer resets its
// statistics and working state at the start of every call; it is not
// safe for concurrent use, but distinct instances are independent.
type Chainer struct {
	MaxIterations int
	MaxFacts      int

	stats Stats
}

// New creates a Chainer. Non-positive limits fall back to the defaults.
func New(maxIterations, maxFacts int) *Chainer {
	if maxIterations <= 0 {
		maxIterations = DefaultMaxIterations
	}
	if maxFacts <= 0 {
		maxFacts = DefaultMaxFacts
	}
	c := &Chainer{MaxIterations: maxIterations, MaxFacts: maxFacts}
	c.resetStats()
	return c
}

func (c *Chainer) resetStats() {
	c.stats = Stats{RuleApplications: make(map[string]int)}
}

// Statistics returns a copy of the counters from the most recent call.
func (c *Chainer) Statistics() Stats {
	out := c.stats
	out.RuleApplications = make(map[string]int, len(c.stats.RuleApplications))
	for k, v := range c.stats.RuleApplications {
		out.RuleApplications[k] = v
	}
	return out
}

// Prove attempts to derive goal from the initial facts using the rules,
// in the supplied order. Facts derived earlier in an iteration are
// visible to later rules within the same iteration. Any panic during
// search is converted into an Error result preserving the partial
// steps and facts.
func (c *Chainer) Prove(goal expr.Fact, initial []expr.Fact, rules []expr.Rule) (result ProofResult) {
	start := time.Now()
	c.resetStats()

	working := expr.NewFactSet(initial...)
	var steps []ProofStep

	defer func() {
		if r := recover(); r != nil {
			result = ProofResult{
				Success:      false,
				GoalAchieved: false,
				Outcome:      OutcomeError,
				Steps:        steps,
				FinalFacts:   working.Facts(),
				Iterations:   c.stats.Iterations,
				Elapsed:      time.Since(start),
				ErrorMessage: fmt.Sprintf("internal error: %v", r),
			}
		}
	}()

	if working.Contains(goal) {
		return ProofResult{
			Success:      true,
			GoalAchieved: true,
			Outcome:      OutcomeGoal,
			Steps:        nil,
			FinalFacts:   working.Facts(),
			Iterations:   0,
			Elapsed:      time.Since(start),
		}
	}

	for iteration := 1; iteration <= c.MaxIterations; iteration++ {
		c.stats.Iterations = iteration
		sizeAtStart := working.Len()

		for _, rule := range rules {
			for _, derived := range match.ApplyRule(rule, working) {
				if working.Contains(derived) {
					// A previous substitution of this rule already
					// produced it in this pass.
					continue
				}

				step := c.buildStep(rule, working, derived, len(steps)+1)
				steps = append(steps, step)
				working.Add(derived)

				c.stats.FactsDerived++
				c.stats.RulesApplied++
				c.stats.RuleApplications[rule.Name]++

				if expr.EqualFact(derived, goal) {
					return ProofResult{
						Success:      true,
						GoalAchieved: true,
						Outcome:      OutcomeGoal,
						Steps:        steps,
						FinalFacts:   working.Facts(),
						Iterations:   iteration,
						Elapsed:      time.Since(start),
					}
				}

				if working.Len() > c.MaxFacts {
					return ProofResult{
						Success:      false,
						GoalAchieved: false,
						Outcome:      OutcomeFactLimit,
						Steps:        steps,
						FinalFacts:   working.Facts(),
						Iterations:   iteration,
						Elapsed:      time.Since(start),
						ErrorMessage: fmt.Sprintf("too many facts generated (>%d)", c.MaxFacts),
					}
				}
			}
		}

		if working.Len() == sizeAtStart {
			return ProofResult{
				Success:      true,
				GoalAchieved: false,
				Outcome:      OutcomeStuck,
				Steps:        steps,
				FinalFacts:   working.Facts(),
				Iterations:   iteration,
				Elapsed:      time.Since(start),
			}
		}
	}

	return ProofResult{
		Success:      true,
		GoalAchieved: false,
		Outcome:      OutcomeIterationLimit,
		Steps:        steps,
		FinalFacts:   working.Facts(),
		Iterations:   c.stats.Iterations,
		Elapsed:      time.Since(start),
	}
}

// buildStep records provenance for a derivation. The witness is the
// first substitution, in enumeration order, whose instantiated
// conclusion equals the derived fact; the working set has a stable
// insertion order, so the choice is reproducible. The derived fact is
// not yet in the working set when this runs.
func (c *Chainer) buildStep(rule expr.Rule, working *expr.FactSet, derived expr.Fact, index int) ProofStep {
	var premises []expr.Fact
	for _, s := range match.FactsList(rule.Premises, working.Facts()) {
		if !expr.EqualFact(s.ApplyFact(rule.Conclusion), derived) {
			continue
		}
		for _, pattern := range rule.Premises {
			concrete := s.ApplyFact(pattern)
			if working.Contains(concrete) {
				premises = append(premises, concrete)
			} else {
				premises = append(premises, pattern)
			}
		}
		break
	}
	if premises == nil {
		// No witness re-derived; fall back to the rule's patterns.
		premises = append(premises, rule.Premises...)
	}
	return ProofStep{
		RuleName: rule.Name,
		Premises: premises,
		Derived:  derived,
		Index:    index,
	}
}
