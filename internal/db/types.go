package db

import (
	"time"

	"github.com/google/uuid"
)

// Interview represents an interview session record
type Interview struct {
	ID            uuid.UUID  `json:"id"`
	UserID        string     `json:"user_id"`
	InterviewType string     `json:"interview_type"`
	Role          string     `json:"role"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
}

// TranscriptTurn represents one utterance within an interview transcript
type TranscriptTurn struct {
	ID          uuid.UUID `json:"id"`
	InterviewID uuid.UUID `json:"interview_id"`
	Seq         int       `json:"seq"`
	Speaker     string    `json:"speaker"`
	Text        string    `json:"text"`
	CreatedAt   time.Time `json:"created_at"`
}

// Interview status constants
const (
	StatusActive    = "active"
	StatusCompleted = "completed"
)
