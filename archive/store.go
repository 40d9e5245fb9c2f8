package archive

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // register pure-Go SQLite driver

	"github.com/katalvlaran/towercover/instance"
	"github.com/katalvlaran/towercover/solution"
)

// Sentinel errors for archive operations.
var (
	// ErrNotFound is returned when no solution is stored for an instance.
	ErrNotFound = errors.New("archive: no solution stored for instance")
	// ErrInvalidSolution is returned when Record is given an invalid solution.
	ErrInvalidSolution = errors.New("archive: refusing to store an invalid solution")
)

const schema = `CREATE TABLE IF NOT EXISTS solutions (
    instance   TEXT PRIMARY KEY,
    run_id     TEXT NOT NULL,
    strategy   TEXT NOT NULL,
    towers     INTEGER NOT NULL,
    penalty    REAL NOT NULL,
    body       TEXT NOT NULL,
    created_at TEXT NOT NULL
);`

// Entry is one archived solution.
type Entry struct {
	Instance  string
	RunID     string
	Strategy  string
	Towers    int
	Penalty   float64
	Body      string
	CreatedAt time.Time
}

// Solution parses the stored body against inst.
func (e Entry) Solution(inst *instance.Instance) (*solution.Solution, error) {
	return solution.Parse(strings.NewReader(e.Body), inst)
}

// Store is a SQLite-backed archive of best solutions.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens (or creates) the archive at dsn. Pass ":memory:" for a throwaway archive.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// An in-memory database lives per connection.
	db.SetMaxOpenConns(1)

	s, err := NewStore(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return s, nil
}

// NewStore wraps an existing database and ensures the schema exists.
func NewStore(db *sql.DB) (*Store, error) {
	if db == nil {
		return nil, fmt.Errorf("archive: db is nil")
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("archive: create schema: %w", err)
	}

	return &Store{db: db, now: time.Now}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record stores sol under name if no solution is stored yet or sol's penalty is
// strictly lower than the stored one. It reports whether the archive changed.
// Invalid solutions are rejected with ErrInvalidSolution wrapping the validation error.
func (s *Store) Record(ctx context.Context, name, strategy string, sol *solution.Solution) (bool, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := sol.Validate(); err != nil {
		return false, fmt.Errorf("%w: %w", ErrInvalidSolution, err)
	}
	var body bytes.Buffer
	if err := sol.Serialize(&body); err != nil {
		return false, err
	}
	penalty := sol.Penalty()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer func() { _ = tx.Rollback() }()

	var stored float64
	err = tx.QueryRowContext(ctx, `SELECT penalty FROM solutions WHERE instance = ?`, name).Scan(&stored)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		// First solution for this instance.
	case err != nil:
		return false, err
	case penalty >= stored:
		return false, nil
	}

	_, err = tx.ExecContext(ctx, `INSERT INTO solutions(instance, run_id, strategy, towers, penalty, body, created_at)
VALUES(?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(instance) DO UPDATE SET
    run_id = excluded.run_id,
    strategy = excluded.strategy,
    towers = excluded.towers,
    penalty = excluded.penalty,
    body = excluded.body,
    created_at = excluded.created_at`,
		name, uuid.NewString(), strategy, len(sol.Towers), penalty, body.String(), s.now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return false, err
	}
	if err := tx.Commit(); err != nil {
		return false, err
	}

	return true, nil
}

// Best returns the stored entry for name, or ErrNotFound.
func (s *Store) Best(ctx context.Context, name string) (Entry, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	row := s.db.QueryRowContext(ctx, `SELECT instance, run_id, strategy, towers, penalty, body, created_at
FROM solutions WHERE instance = ?`, name)

	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if err != nil {
		return Entry{}, err
	}

	return e, nil
}

// List returns every stored entry ordered by instance name.
func (s *Store) List(ctx context.Context) ([]Entry, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	rows, err := s.db.QueryContext(ctx, `SELECT instance, run_id, strategy, towers, penalty, body, created_at
FROM solutions ORDER BY instance`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

// scanner is the subset of *sql.Row and *sql.Rows used by scanEntry.
type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(sc scanner) (Entry, error) {
	var (
		e       Entry
		created string
	)
	if err := sc.Scan(&e.Instance, &e.RunID, &e.Strategy, &e.Towers, &e.Penalty, &e.Body, &created); err != nil {
		return Entry{}, err
	}
	t, err := time.Parse(time.RFC3339Nano, created)
	if err != nil {
		return Entry{}, fmt.Errorf("archive: bad created_at %q: %w", created, err)
	}
	e.CreatedAt = t

	return e, nil
}
