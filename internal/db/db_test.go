package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusConstants(t *testing.T) {
	assert.Equal(t, "active", StatusActive)
	assert.Equal(t, "completed", StatusCompleted)
}

func TestInterviewType(t *testing.T) {
	// Verify Interview struct can be instantiated
	iv := Interview{
		UserID:        "user-123",
		InterviewType: "technical",
		Role:          "Backend Engineer",
		Status:        StatusActive,
	}

	assert.Equal(t, "user-123", iv.UserID)
	assert.Equal(t, "technical", iv.InterviewType)
	assert.Equal(t, "Backend Engineer", iv.Role)
	assert.Nil(t, iv.CompletedAt)
}

func TestTranscriptTurnType(t *testing.T) {
	turn := TranscriptTurn{
		Seq:     0,
		Speaker: "interviewer",
		Text:    "Tell me about yourself.",
	}

	assert.Equal(t, 0, turn.Seq)
	assert.Equal(t, "interviewer", turn.Speaker)
	assert.NotEmpty(t, turn.Text)
}
