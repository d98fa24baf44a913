// Package db provides PostgreSQL storage for interview sessions,
// transcripts, and parsed resume profiles.
package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/google/uuid"
)

// ErrNotFound reports that a row targeted by an update or delete does not
// exist. Callers match it with errors.Is and translate it to their own
// not-found representation.
var ErrNotFound = errors.New("not found")

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// CreateInterview creates a new interview session record and returns its ID
func (db *DB) CreateInterview(ctx context.Context, userID, interviewType, role string) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO interviews (user_id, interview_type, role, status)
		 VALUES ($1, $2, $3, 'active')
		 RETURNING id`,
		userID, interviewType, role,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create interview: %w", err)
	}
	return id, nil
}

// CompleteInterview marks an interview session as completed
func (db *DB) CompleteInterview(ctx context.Context, interviewID uuid.UUID) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE interviews SET status = $1, completed_at = NOW() WHERE id = $2`,
		StatusCompleted, interviewID,
	)
	if err != nil {
		return fmt.Errorf("failed to complete interview: %w", err)
	}
	return nil
}

// GetInterview retrieves an interview session by ID
func (db *DB) GetInterview(ctx context.Context, interviewID uuid.UUID) (*Interview, error) {
	var iv Interview
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, interview_type, role, status, created_at, completed_at
		 FROM interviews WHERE id = $1`,
		interviewID,
	).Scan(&iv.ID, &iv.UserID, &iv.InterviewType, &iv.Role, &iv.Status, &iv.CreatedAt, &iv.CompletedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get interview: %w", err)
	}
	return &iv, nil
}

// InterviewFilters holds optional filters for listing interviews
type InterviewFilters struct {
	UserID        string
	InterviewType string
	Status        string
	Limit         int
}

// ListInterviews retrieves interview sessions with optional filters
func (db *DB) ListInterviews(ctx context.Context, filters InterviewFilters) ([]Interview, error) {
	if filters.Limit == 0 {
		filters.Limit = 50
	}

	query := `SELECT id, user_id, interview_type, role, status, created_at, completed_at
		FROM interviews WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.UserID != "" {
		query += fmt.Sprintf(" AND user_id = $%d", argNum)
		args = append(args, filters.UserID)
		argNum++
	}
	if filters.InterviewType != "" {
		query += fmt.Sprintf(" AND interview_type = $%d", argNum)
		args = append(args, filters.InterviewType)
		argNum++
	}
	if filters.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", argNum)
		args = append(args, filters.Status)
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", argNum)
	args = append(args, filters.Limit)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list interviews: %w", err)
	}
	defer rows.Close()

	var interviews []Interview
	for rows.Next() {
		var iv Interview
		if err := rows.Scan(&iv.ID, &iv.UserID, &iv.InterviewType, &iv.Role, &iv.Status, &iv.CreatedAt, &iv.CompletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan interview: %w", err)
		}
		interviews = append(interviews, iv)
	}
	return interviews, nil
}

// DeleteInterview deletes an interview and its transcript turns.
func (db *DB) DeleteInterview(ctx context.Context, interviewID uuid.UUID) error {
	if _, err := db.pool.Exec(ctx, `DELETE FROM transcript_turns WHERE interview_id = $1`, interviewID); err != nil {
		return fmt.Errorf("failed to delete transcript turns: %w", err)
	}
	result, err := db.pool.Exec(ctx, `DELETE FROM interviews WHERE id = $1`, interviewID)
	if err != nil {
		return fmt.Errorf("failed to delete interview: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("interview %s: %w", interviewID, ErrNotFound)
	}
	return nil
}
