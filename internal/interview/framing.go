package interview

import (
	"regexp"

	"github.com/jonathan/careergpt/internal/types"
)

// Keyword detectors for shaping the reply to the latest user message.
// Shaping applies regardless of turn count.
var (
	greetingPattern = regexp.MustCompile(`(?i)\b(?:hello|hi|hey|good\s+(?:morning|afternoon|evening)|nice\s+to\s+meet|i'?m\s+ready|let'?s\s+(?:start|begin))\b`)
	topicPattern    = regexp.MustCompile(`(?i)\b(?:project|experience|work(?:ed|ing)?)\b`)
	problemPattern  = regexp.MustCompile(`(?i)\b(?:challenge|challenging|problem|difficult)\b`)
)

// typeFraming is the one-sentence framing added after a greeting
// acknowledgment, keyed by interview type.
var typeFraming = map[types.InterviewType]string{
	types.TypeScreening:    "This is a screening conversation, so I'd like to get a feel for your background and what you're looking for.",
	types.TypeTechnical:    "We'll focus on the technical depth of your experience.",
	types.TypeBehavioral:   "We'll focus on specific situations from your past work, so concrete examples are perfect.",
	types.TypeSystemDesign: "We'll work through some architecture scenarios together, so feel free to think out loud.",
	types.TypeCulturalFit:  "We'll talk about how you like to work and what kind of team brings out your best.",
}

// framing returns an acknowledgment or follow-up framing sentence based on
// the latest user message, or empty when no keyword applies. Greeting
// detection wins over topic detection.
func framing(latest string, itype types.InterviewType) string {
	if latest == "" {
		return ""
	}
	if greetingPattern.MatchString(latest) {
		return "Great to meet you! " + typeFraming[itype]
	}
	if topicPattern.MatchString(latest) {
		return "That's helpful context - let's dig into the technical approach behind it."
	}
	if problemPattern.MatchString(latest) {
		return "Good, problem-solving is exactly what I want to hear about."
	}
	return ""
}
