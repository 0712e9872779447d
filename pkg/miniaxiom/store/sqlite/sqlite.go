// Package sqlite is the persistent store.Store backend.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/Arvind-puthucode/MiniAxiom/pkg/miniaxiom/internalerr"
	"github.com/Arvind-puthucode/MiniAxiom/pkg/miniaxiom/store"
)

// sqliteStore implements the Store interface using SQLite.
type sqliteStore struct {
	db *sql.DB
}

// Open opens a SQLite database with WAL mode enabled and the schema
// initialized.
func Open(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection.
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist.
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS attempts (
	id TEXT PRIMARY KEY,
	created_at TEXT NOT NULL,
	goal TEXT NOT NULL,
	outcome TEXT NOT NULL,
	success INTEGER NOT NULL,
	goal_achieved INTEGER NOT NULL,
	iterations INTEGER NOT NULL,
	elapsed_seconds REAL NOT NULL,
	final_facts INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS attempt_steps (
	attempt_id TEXT NOT NULL,
	step_number INTEGER NOT NULL,
	rule_name TEXT NOT NULL,
	premises TEXT NOT NULL,
	derived_fact TEXT NOT NULL,
	PRIMARY KEY(attempt_id, step_number),
	FOREIGN KEY(attempt_id) REFERENCES attempts(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_steps_rule ON attempt_steps(rule_name);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// SaveAttempt stores an attempt and its steps in one transaction.
func (s *sqliteStore) SaveAttempt(ctx context.Context, a store.Attempt) error {
	if a.ID == "" {
		return fmt.Errorf("attempt: empty id: %w", internalerr.ErrInvalidInput)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT OR REPLACE INTO attempts
		(id, created_at, goal, outcome, success, goal_achieved, iterations, elapsed_seconds, final_facts)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.CreatedAt.UTC().Format(time.RFC3339Nano), a.Goal, a.Outcome,
		boolToInt(a.Success), boolToInt(a.GoalAchieved),
		a.Iterations, a.ElapsedSeconds, a.FinalFacts)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM attempt_steps WHERE attempt_id = ?`, a.ID); err != nil {
		return err
	}

	for _, step := range a.Steps {
		premises, err := json.Marshal(step.Premises)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO attempt_steps
			(attempt_id, step_number, rule_name, premises, derived_fact)
			VALUES (?, ?, ?, ?, ?)`,
			a.ID, step.StepNumber, step.RuleName, string(premises), step.DerivedFact)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// GetAttempt returns an attempt with its steps by ID.
func (s *sqliteStore) GetAttempt(ctx context.Context, id string) (store.Attempt, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, created_at, goal, outcome, success, goal_achieved, iterations, elapsed_seconds, final_facts
		FROM attempts WHERE id = ?`, id)

	a, err := scanAttempt(row)
	if errors.Is(err, sql.ErrNoRows) {
		return store.Attempt{}, fmt.Errorf("attempt %q: %w", id, internalerr.ErrNotFound)
	}
	if err != nil {
		return store.Attempt{}, err
	}

	steps, err := s.loadSteps(ctx, id)
	if err != nil {
		return store.Attempt{}, err
	}
	a.Steps = steps
	return a, nil
}

// ListAttempts returns attempts newest first.
func (s *sqliteStore) ListAttempts(ctx context.Context, limit int) ([]store.Attempt, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, created_at, goal, outcome, success, goal_achieved, iterations, elapsed_seconds, final_facts
		FROM attempts ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.Attempt
	for rows.Next() {
		a, err := scanAttempt(rows)
		if err != nil {
			return nil, err
		}
		steps, err := s.loadSteps(ctx, a.ID)
		if err != nil {
			return nil, err
		}
		a.Steps = steps
		out = append(out, a)
	}
	return out, rows.Err()
}

// RuleUsage aggregates per-rule step counts across all attempts.
func (s *sqliteStore) RuleUsage(ctx context.Context) ([]store.RuleCount, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT rule_name, COUNT(*) AS n
		FROM attempt_steps
		GROUP BY rule_name
		ORDER BY n DESC, rule_name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.RuleCount
	for rows.Next() {
		var rc store.RuleCount
		if err := rows.Scan(&rc.RuleName, &rc.Count); err != nil {
			return nil, err
		}
		out = append(out, rc)
	}
	return out, rows.Err()
}

func (s *sqliteStore) loadSteps(ctx context.Context, attemptID string) ([]store.StepRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT step_number, rule_name, premises, derived_fact
		FROM attempt_steps WHERE attempt_id = ?
		ORDER BY step_number ASC`, attemptID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.StepRecord
	for rows.Next() {
		var step store.StepRecord
		var premises string
		if err := rows.Scan(&step.StepNumber, &step.RuleName, &premises, &step.DerivedFact); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(premises), &step.Premises); err != nil {
			return nil, err
		}
		out = append(out, step)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAttempt(row rowScanner) (store.Attempt, error) {
	var a store.Attempt
	var created string
	var success, achieved int
	err := row.Scan(&a.ID, &created, &a.Goal, &a.Outcome, &success, &achieved,
		&a.Iterations, &a.ElapsedSeconds, &a.FinalFacts)
	if err != nil {
		return store.Attempt{}, err
	}
	a.Success = success != 0
	a.GoalAchieved = achieved != 0
	if t, perr := time.Parse(time.RFC3339Nano, created); perr == nil {
		a.CreatedAt = t
	}
	return a, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
