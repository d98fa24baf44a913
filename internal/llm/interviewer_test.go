package llm

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jonathan/careergpt/internal/interview"
	"github.com/jonathan/careergpt/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubClient lets tests script the generative path.
type stubClient struct {
	response string
	err      error
}

func (s *stubClient) GenerateContent(_ context.Context, _ string) (string, error) {
	return s.response, s.err
}

func (s *stubClient) Close() error { return nil }

func profileCtx() *types.TurnContext {
	return &types.TurnContext{
		InterviewType: types.TypeTechnical,
		Role:          "Frontend Engineer",
		History: []types.Message{
			{Speaker: types.SpeakerInterviewer, Text: "Tell me about React."},
			{Speaker: types.SpeakerUser, Text: "I love hooks."},
		},
		LatestUserMessage: "I love hooks.",
		Profile: &types.ResumeProfile{
			Skills:       []string{"React", "TypeScript"},
			Companies:    []string{"Acme Corp"},
			Achievements: []string{"increased conversion by 20%"},
		},
	}
}

func TestInterviewer_UsesClientWhenAvailable(t *testing.T) {
	iv := NewInterviewer(&stubClient{response: "  What did hooks replace for you?  "}, nil)

	utterance := iv.NextUtterance(context.Background(), profileCtx())
	assert.Equal(t, "What did hooks replace for you?", utterance)
}

func TestInterviewer_FallsBackOnClientError(t *testing.T) {
	iv := NewInterviewer(&stubClient{err: errors.New("quota exceeded")}, nil)

	utterance := iv.NextUtterance(context.Background(), profileCtx())
	require.NotEmpty(t, utterance)
	assert.NotContains(t, utterance, "quota")
}

func TestInterviewer_FallsBackOnEmptyResponse(t *testing.T) {
	iv := NewInterviewer(&stubClient{response: "   "}, nil)

	utterance := iv.NextUtterance(context.Background(), profileCtx())
	assert.NotEmpty(t, utterance)
}

func TestInterviewer_NilClientIsRuleBased(t *testing.T) {
	iv := NewInterviewer(nil, nil)

	utterance := iv.NextUtterance(context.Background(), profileCtx())
	assert.NotEmpty(t, utterance)
}

func TestInterviewer_NoResumeSkipsModel(t *testing.T) {
	// Without resume signal there is nothing to ground a generated
	// question in; the fixed upload prompt answers instead.
	iv := NewInterviewer(&stubClient{response: "Generated question"}, nil)

	utterance := iv.NextUtterance(context.Background(), &types.TurnContext{})
	assert.Equal(t, interview.PromptUploadResume, utterance)
}

func TestBuildPrompt_IncludesResumeSignalAndHistory(t *testing.T) {
	prompt := BuildPrompt(profileCtx())

	assert.Contains(t, prompt, "technical interview")
	assert.Contains(t, prompt, "Frontend Engineer")
	assert.Contains(t, prompt, "React; TypeScript")
	assert.Contains(t, prompt, "Acme Corp")
	assert.Contains(t, prompt, "increased conversion by 20%")
	assert.Contains(t, prompt, "interviewer: Tell me about React.")
	assert.True(t, strings.HasSuffix(prompt, "No markup, no preamble."))
}

func TestBuildPrompt_UnknownTypeNormalizes(t *testing.T) {
	ctx := profileCtx()
	ctx.InterviewType = types.InterviewType("panel")

	prompt := BuildPrompt(ctx)
	assert.Contains(t, prompt, "screening interview")
}
