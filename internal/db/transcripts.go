package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/careergpt/internal/types"
)

// SaveTurn appends one utterance to an interview's transcript. Seq is
// assigned from the current transcript length so turns stay ordered even
// when clients retry.
func (db *DB) SaveTurn(ctx context.Context, interviewID uuid.UUID, speaker, text string) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO transcript_turns (interview_id, seq, speaker, text)
		 VALUES ($1,
		         (SELECT COALESCE(MAX(seq), -1) + 1 FROM transcript_turns WHERE interview_id = $1),
		         $2, $3)`,
		interviewID, speaker, text,
	)
	if err != nil {
		return fmt.Errorf("failed to save turn: %w", err)
	}
	return nil
}

// GetTranscript retrieves all turns for an interview in order
func (db *DB) GetTranscript(ctx context.Context, interviewID uuid.UUID) ([]TranscriptTurn, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, interview_id, seq, speaker, text, created_at
		 FROM transcript_turns WHERE interview_id = $1 ORDER BY seq ASC`,
		interviewID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get transcript: %w", err)
	}
	defer rows.Close()

	var turns []TranscriptTurn
	for rows.Next() {
		var turn TranscriptTurn
		if err := rows.Scan(&turn.ID, &turn.InterviewID, &turn.Seq, &turn.Speaker, &turn.Text, &turn.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan turn: %w", err)
		}
		turns = append(turns, turn)
	}
	return turns, nil
}

// SaveProfile stores the parsed resume profile for a user, replacing any
// earlier upload
func (db *DB) SaveProfile(ctx context.Context, userID string, profile *types.ResumeProfile) error {
	jsonBytes, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO resume_profiles (user_id, profile)
		 VALUES ($1, $2)
		 ON CONFLICT (user_id) DO UPDATE SET profile = $2, updated_at = NOW()`,
		userID, jsonBytes,
	)
	if err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

// GetProfile retrieves a user's stored resume profile. Returns nil when the
// user has not uploaded a resume.
func (db *DB) GetProfile(ctx context.Context, userID string) (*types.ResumeProfile, error) {
	var jsonBytes []byte
	err := db.pool.QueryRow(ctx,
		`SELECT profile FROM resume_profiles WHERE user_id = $1`,
		userID,
	).Scan(&jsonBytes)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	var profile types.ResumeProfile
	if err := json.Unmarshal(jsonBytes, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	return &profile, nil
}

// DeleteProfile removes a user's stored resume profile
func (db *DB) DeleteProfile(ctx context.Context, userID string) error {
	_, err := db.pool.Exec(ctx, `DELETE FROM resume_profiles WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	return nil
}
