// Package sqlite persists the solution history in a SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/oklog/ulid/v2"
	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"

	"mathpad/core"
)

type sqliteStore struct {
	db *sql.DB
}

// NewStore creates a new SQLite-based store.
func NewStore(dataSourceName string) *sqliteStore {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		log.Fatalf("failed to open sqlite database: %v", err)
	}

	tableStmt := `
	CREATE TABLE IF NOT EXISTS solutions (
		id TEXT PRIMARY KEY,
		expression TEXT,
		result TEXT,
		explanation TEXT,
		source TEXT,
		created_at DATETIME
	);`
	if _, err = db.Exec(tableStmt); err != nil {
		log.Fatalf("failed to create solutions table: %v", err)
	}

	return &sqliteStore{db}
}

// List returns all solutions, newest first.
func (s *sqliteStore) List(ctx context.Context) ([]*core.Solution, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, expression, result, explanation, source, created_at FROM solutions ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var solutions []*core.Solution
	for rows.Next() {
		var solution core.Solution
		if err := rows.Scan(&solution.ID, &solution.Expression, &solution.Result,
			&solution.Explanation, &solution.Source, &solution.CreatedAt); err != nil {
			return nil, err
		}
		solutions = append(solutions, &solution)
	}
	return solutions, rows.Err()
}

// Get returns a single solution by its ID.
func (s *sqliteStore) Get(ctx context.Context, id string) (*core.Solution, error) {
	var solution core.Solution
	err := s.db.QueryRowContext(ctx,
		"SELECT id, expression, result, explanation, source, created_at FROM solutions WHERE id = ?", id).
		Scan(&solution.ID, &solution.Expression, &solution.Result,
			&solution.Explanation, &solution.Source, &solution.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("solution with id %s not found", id)
		}
		logrus.WithError(err).Error("Failed to retrieve solution")
		return nil, err
	}
	return &solution, nil
}

// Save stores a solution, assigning a ULID when it has no ID yet.
func (s *sqliteStore) Save(ctx context.Context, solution *core.Solution) error {
	if solution.ID == "" {
		solution.ID = ulid.Make().String()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO solutions (id, expression, result, explanation, source, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   expression = excluded.expression,
		   result = excluded.result,
		   explanation = excluded.explanation,
		   source = excluded.source`,
		solution.ID, solution.Expression, solution.Result,
		solution.Explanation, solution.Source, solution.CreatedAt)
	if err != nil {
		logrus.WithError(err).Error("Failed to save solution")
		return err
	}

	logrus.WithField("solution_id", solution.ID).Info("Solution saved")
	return nil
}

// Delete removes a solution.
func (s *sqliteStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM solutions WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("solution with id %s not found", id)
	}
	return nil
}
