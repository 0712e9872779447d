// Package store persists proof attempts so past searches can be
// inspected and aggregated offline. Backends implement the Store
// interface; memstore is the in-memory twin of the sqlite backend.
package store

import (
	"context"
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/Arvind-puthucode/MiniAxiom/pkg/miniaxiom/chain"
)

// Store persists and queries proof attempts.
type Store interface {
	Close() error

	SaveAttempt(ctx context.Context, a Attempt) error
	GetAttempt(ctx context.Context, id string) (Attempt, error)
	// ListAttempts returns attempts newest first, at most limit of them.
	ListAttempts(ctx context.Context, limit int) ([]Attempt, error)
	// RuleUsage aggregates per-rule step counts across all attempts,
	// most used first.
	RuleUsage(ctx context.Context) ([]RuleCount, error)
}

// Attempt is one recorded proof attempt.
type Attempt struct {
	ID             string
	CreatedAt      time.Time
	Goal           string
	Outcome        string
	Success        bool
	GoalAchieved   bool
	Iterations     int
	ElapsedSeconds float64
	FinalFacts     int
	Steps          []StepRecord
}

// StepRecord is one derivation inside a recorded attempt.
type StepRecord struct {
	StepNumber  int
	RuleName    string
	Premises    []string
	DerivedFact string
}

// RuleCount is an aggregated per-rule application count.
type RuleCount struct {
	RuleName string
	Count    int64
}

// Recorder converts proof results into attempts with monotonic ULID
// identifiers and saves them.
type Recorder struct {
	store   Store
	entropy *ulid.MonotonicEntropy
}

// NewRecorder creates a Recorder writing to the given store.
func NewRecorder(s Store) *Recorder {
	return &Recorder{
		store:   s,
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

// Record persists a proof result for the given goal and returns the
// stored attempt.
func (r *Recorder) Record(ctx context.Context, goal string, result chain.ProofResult) (Attempt, error) {
	now := time.Now().UTC()
	a := Attempt{
		ID:             ulid.MustNew(ulid.Timestamp(now), r.entropy).String(),
		CreatedAt:      now,
		Goal:           goal,
		Outcome:        string(result.Outcome),
		Success:        result.Success,
		GoalAchieved:   result.GoalAchieved,
		Iterations:     result.Iterations,
		ElapsedSeconds: result.Elapsed.Seconds(),
		FinalFacts:     len(result.FinalFacts),
	}
	for _, s := range result.Steps {
		premises := make([]string, len(s.Premises))
		for i, p := range s.Premises {
			premises[i] = p.String()
		}
		a.Steps = append(a.Steps, StepRecord{
			StepNumber:  s.Index,
			RuleName:    s.RuleName,
			Premises:    premises,
			DerivedFact: s.Derived.String(),
		})
	}

	if err := r.store.SaveAttempt(ctx, a); err != nil {
		return Attempt{}, err
	}
	return a, nil
}
