package types

import "strings"

// Speaker identifies who produced a conversation message.
type Speaker string

// Speaker constants for the two sides of a mock interview.
const (
	SpeakerUser        Speaker = "user"
	SpeakerInterviewer Speaker = "interviewer"
)

// InterviewType selects the question-selection bias for a mock interview.
type InterviewType string

// Supported interview types. Anything else normalizes to TypeScreening.
const (
	TypeScreening    InterviewType = "screening"
	TypeTechnical    InterviewType = "technical"
	TypeBehavioral   InterviewType = "behavioral"
	TypeSystemDesign InterviewType = "system-design"
	TypeCulturalFit  InterviewType = "cultural-fit"
)

// ParseInterviewType normalizes a raw string to a known interview type.
// Unrecognized or empty values fall back to TypeScreening; this is never an error.
func ParseInterviewType(s string) InterviewType {
	switch InterviewType(strings.ToLower(strings.TrimSpace(s))) {
	case TypeTechnical:
		return TypeTechnical
	case TypeBehavioral:
		return TypeBehavioral
	case TypeSystemDesign:
		return TypeSystemDesign
	case TypeCulturalFit:
		return TypeCulturalFit
	default:
		return TypeScreening
	}
}

// Message is one turn of an interview conversation.
type Message struct {
	Speaker Speaker `json:"speaker"`
	Text    string  `json:"text"`
}

// TurnContext carries everything the question selector needs for one turn.
// It is constructed fresh per request from caller-supplied conversation state
// and never persisted by the core.
type TurnContext struct {
	Role              string         `json:"role"`
	InterviewType     InterviewType  `json:"interview_type"`
	History           []Message      `json:"history"`
	LatestUserMessage string         `json:"latest_user_message"`
	Profile           *ResumeProfile `json:"profile,omitempty"`
}

// Turn returns the zero-based turn counter for this context,
// defined as the number of messages exchanged so far.
func (c *TurnContext) Turn() int {
	if c == nil {
		return 0
	}
	return len(c.History)
}
