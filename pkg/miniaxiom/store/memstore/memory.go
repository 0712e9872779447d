// Package memstore is an in-memory implementation of store.Store for
// tests and short-lived runs.
package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/Arvind-puthucode/MiniAxiom/pkg/miniaxiom/internalerr"
	"github.com/Arvind-puthucode/MiniAxiom/pkg/miniaxiom/store"
)

// Store is an in-memory implementation of store.Store.
type Store struct {
	mu       sync.RWMutex
	attempts map[string]store.Attempt
	order    []string // insertion order
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{attempts: make(map[string]store.Attempt)}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// SaveAttempt stores an attempt keyed by ID.
func (s *Store) SaveAttempt(ctx context.Context, a store.Attempt) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if a.ID == "" {
		return fmt.Errorf("attempt: empty id: %w", internalerr.ErrInvalidInput)
	}
	if _, ok := s.attempts[a.ID]; !ok {
		s.order = append(s.order, a.ID)
	}
	s.attempts[a.ID] = copyAttempt(a)
	return nil
}

// GetAttempt returns an attempt by ID.
func (s *Store) GetAttempt(ctx context.Context, id string) (store.Attempt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.attempts[id]
	if !ok {
		return store.Attempt{}, fmt.Errorf("attempt %q: %w", id, internalerr.ErrNotFound)
	}
	return copyAttempt(a), nil
}

// ListAttempts returns attempts newest first.
func (s *Store) ListAttempts(ctx context.Context, limit int) ([]store.Attempt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]store.Attempt, 0, len(s.order))
	for i := len(s.order) - 1; i >= 0; i-- {
		out = append(out, copyAttempt(s.attempts[s.order[i]]))
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

// RuleUsage aggregates per-rule step counts across attempts.
func (s *Store) RuleUsage(ctx context.Context) ([]store.RuleCount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[string]int64)
	for _, a := range s.attempts {
		for _, step := range a.Steps {
			counts[step.RuleName]++
		}
	}

	out := make([]store.RuleCount, 0, len(counts))
	for name, n := range counts {
		out = append(out, store.RuleCount{RuleName: name, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].RuleName < out[j].RuleName
	})
	return out, nil
}

func copyAttempt(a store.Attempt) store.Attempt {
	out := a
	out.Steps = make([]store.StepRecord, len(a.Steps))
	for i, step := range a.Steps {
		cp := step
		cp.Premises = append([]string(nil), step.Premises...)
		out.Steps[i] = cp
	}
	return out
}
