package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/careergpt/internal/interview"
	"github.com/jonathan/careergpt/internal/types"
)

// Interviewer produces the next interviewer utterance. When a generative
// client is configured it is tried first; the rule-based selector answers
// whenever the client is absent, errors, or returns nothing. The caller
// never sees a failure either way.
type Interviewer struct {
	client   Client
	selector *interview.Selector
}

// NewInterviewer creates an Interviewer. A nil client means rule-based only;
// a nil selector uses the default banks with a time-seeded random source.
func NewInterviewer(client Client, selector *interview.Selector) *Interviewer {
	if selector == nil {
		selector = interview.NewSelector(nil, nil)
	}
	return &Interviewer{client: client, selector: selector}
}

// NextUtterance returns the next interviewer utterance for the turn.
func (iv *Interviewer) NextUtterance(ctx context.Context, turn *types.TurnContext) string {
	if iv.client != nil && turn != nil && !turn.Profile.IsEmpty() {
		if out, err := iv.client.GenerateContent(ctx, BuildPrompt(turn)); err == nil {
			if utterance := strings.TrimSpace(out); utterance != "" {
				return utterance
			}
		}
	}
	return iv.selector.NextUtterance(turn)
}

// BuildPrompt assembles the generative prompt from the resume profile and
// the conversation so far. The model plays the interviewer; the candidate's
// resume signal keeps its questions grounded.
func BuildPrompt(turn *types.TurnContext) string {
	var sb strings.Builder

	itype := types.ParseInterviewType(string(turn.InterviewType))
	sb.WriteString(fmt.Sprintf("You are a professional interviewer conducting a %s interview", itype))
	if turn.Role != "" {
		sb.WriteString(fmt.Sprintf(" for a %s position", turn.Role))
	}
	sb.WriteString(".\n\n")

	if p := turn.Profile; p != nil {
		sb.WriteString("Candidate resume signal:\n")
		writeList(&sb, "Skills", p.Skills)
		writeList(&sb, "Job titles", p.JobTitles)
		writeList(&sb, "Companies", p.Companies)
		writeList(&sb, "Projects", p.Projects)
		writeList(&sb, "Achievements", p.Achievements)
		sb.WriteString("\n")
	}

	if len(turn.History) > 0 {
		sb.WriteString("Conversation so far:\n")
		for _, msg := range turn.History {
			sb.WriteString(fmt.Sprintf("%s: %s\n", msg.Speaker, msg.Text))
		}
		sb.WriteString("\n")
	}
	if turn.LatestUserMessage != "" {
		sb.WriteString(fmt.Sprintf("Candidate's latest message: %s\n\n", turn.LatestUserMessage))
	}

	sb.WriteString("Reply with the interviewer's next utterance only: one question or transition statement grounded in the resume signal above. No markup, no preamble.")
	return sb.String()
}

func writeList(sb *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(fmt.Sprintf("- %s: %s\n", label, strings.Join(items, "; ")))
}
