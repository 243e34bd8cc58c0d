// Package store provides optional PostgreSQL persistence for tailoring runs
// and their rendered artifacts.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store wraps a PostgreSQL connection pool.
type Store struct {
	pool *pgxpool.Pool
}

// Run is one recorded tailoring run.
type Run struct {
	ID             uuid.UUID  `json:"id"`
	Label          string     `json:"label"`
	Tailored       bool       `json:"tailored"`
	Pages          int        `json:"pages"`
	FitIterations  int        `json:"fit_iterations"`
	Fitted         bool       `json:"fitted"`
	Recommendation string     `json:"recommendation,omitempty"`
	Confidence     *int       `json:"confidence,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
}

// Connect opens a connection pool and verifies it with a ping.
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return &Store{pool: pool}, nil
}

// Close closes the connection pool.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// EnsureSchema creates the tables used by the store when they do not exist.
func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS tailoring_runs (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			label TEXT NOT NULL DEFAULT '',
			tailored BOOLEAN NOT NULL DEFAULT FALSE,
			pages INT NOT NULL DEFAULT 0,
			fit_iterations INT NOT NULL DEFAULT 0,
			fitted BOOLEAN NOT NULL DEFAULT FALSE,
			recommendation TEXT NOT NULL DEFAULT '',
			confidence INT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			completed_at TIMESTAMPTZ
		);
		CREATE TABLE IF NOT EXISTS run_artifacts (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			run_id UUID NOT NULL REFERENCES tailoring_runs(id) ON DELETE CASCADE,
			kind TEXT NOT NULL,
			filename TEXT NOT NULL DEFAULT '',
			content BYTEA,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (run_id, kind)
		)`)
	if err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}

// CreateRun records a new tailoring run and returns its ID.
func (s *Store) CreateRun(ctx context.Context, label string, tailored bool) (uuid.UUID, error) {
	var id uuid.UUID
	err := s.pool.QueryRow(ctx,
		`INSERT INTO tailoring_runs (label, tailored) VALUES ($1, $2) RETURNING id`,
		label, tailored,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create run: %w", err)
	}
	return id, nil
}

// CompleteRun records the outcome of a finished run.
func (s *Store) CompleteRun(ctx context.Context, runID uuid.UUID, pages, fitIterations int, fitted bool) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE tailoring_runs
		 SET pages = $1, fit_iterations = $2, fitted = $3, completed_at = NOW()
		 WHERE id = $4`,
		pages, fitIterations, fitted, runID,
	)
	if err != nil {
		return fmt.Errorf("failed to complete run: %w", err)
	}
	return nil
}

// SaveAssessment attaches a fit recommendation to a run.
func (s *Store) SaveAssessment(ctx context.Context, runID uuid.UUID, recommendation string, confidence int) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE tailoring_runs SET recommendation = $1, confidence = $2 WHERE id = $3`,
		recommendation, confidence, runID,
	)
	if err != nil {
		return fmt.Errorf("failed to save assessment: %w", err)
	}
	return nil
}

// SaveArtifact stores a rendered artifact (html, pdf, cover letter) for a run.
func (s *Store) SaveArtifact(ctx context.Context, runID uuid.UUID, kind, filename string, content []byte) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO run_artifacts (run_id, kind, filename, content)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (run_id, kind) DO UPDATE SET filename = $3, content = $4, created_at = NOW()`,
		runID, kind, filename, content,
	)
	if err != nil {
		return fmt.Errorf("failed to save artifact %s: %w", kind, err)
	}
	return nil
}

// GetArtifact retrieves an artifact for a run. A missing artifact returns
// nil content and no error.
func (s *Store) GetArtifact(ctx context.Context, runID uuid.UUID, kind string) (string, []byte, error) {
	var filename string
	var content []byte
	err := s.pool.QueryRow(ctx,
		`SELECT filename, content FROM run_artifacts WHERE run_id = $1 AND kind = $2`,
		runID, kind,
	).Scan(&filename, &content)
	if err != nil {
		if err == pgx.ErrNoRows {
			return "", nil, nil
		}
		return "", nil, fmt.Errorf("failed to get artifact %s: %w", kind, err)
	}
	return filename, content, nil
}

// GetRun retrieves one run by ID, or nil when it does not exist.
func (s *Store) GetRun(ctx context.Context, runID uuid.UUID) (*Run, error) {
	var run Run
	err := s.pool.QueryRow(ctx,
		`SELECT id, label, tailored, pages, fit_iterations, fitted, recommendation, confidence, created_at, completed_at
		 FROM tailoring_runs WHERE id = $1`,
		runID,
	).Scan(&run.ID, &run.Label, &run.Tailored, &run.Pages, &run.FitIterations, &run.Fitted,
		&run.Recommendation, &run.Confidence, &run.CreatedAt, &run.CompletedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return &run, nil
}

// ListRuns retrieves recent runs, newest first.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.pool.Query(ctx,
		`SELECT id, label, tailored, pages, fit_iterations, fitted, recommendation, confidence, created_at, completed_at
		 FROM tailoring_runs ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		if err := rows.Scan(&run.ID, &run.Label, &run.Tailored, &run.Pages, &run.FitIterations, &run.Fitted,
			&run.Recommendation, &run.Confidence, &run.CreatedAt, &run.CompletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, nil
}

// DeleteRun deletes a run and its artifacts.
func (s *Store) DeleteRun(ctx context.Context, runID uuid.UUID) error {
	result, err := s.pool.Exec(ctx, `DELETE FROM tailoring_runs WHERE id = $1`, runID)
	if err != nil {
		return fmt.Errorf("failed to delete run: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("run not found: %s", runID)
	}
	return nil
}
