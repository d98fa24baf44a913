package interview

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/jonathan/careergpt/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestSelector returns a selector with a pinned seed so tie-breaking
// among canned questions is reproducible.
func newTestSelector() *Selector {
	return NewSelector(nil, rand.New(rand.NewSource(1)))
}

func history(n int) []types.Message {
	msgs := make([]types.Message, 0, n)
	for i := 0; i < n; i++ {
		speaker := types.SpeakerUser
		if i%2 == 1 {
			speaker = types.SpeakerInterviewer
		}
		msgs = append(msgs, types.Message{Speaker: speaker, Text: "..."})
	}
	return msgs
}

func TestNextUtterance_NoResume(t *testing.T) {
	s := newTestSelector()

	for _, itype := range []types.InterviewType{
		types.TypeScreening, types.TypeTechnical, types.TypeBehavioral,
		types.TypeSystemDesign, types.TypeCulturalFit,
	} {
		ctx := &types.TurnContext{
			InterviewType:     itype,
			LatestUserMessage: "Hello, I am ready to start!",
		}
		assert.Equal(t, PromptUploadResume, s.NextUtterance(ctx), "type %s", itype)
	}
}

func TestNextUtterance_NilContext(t *testing.T) {
	s := newTestSelector()
	assert.Equal(t, PromptUploadResume, s.NextUtterance(nil))
}

func TestNextUtterance_EmptyExtraction(t *testing.T) {
	s := newTestSelector()
	ctx := &types.TurnContext{Profile: &types.ResumeProfile{}}
	assert.Equal(t, PromptUnreadableResume, s.NextUtterance(ctx))
}

func TestNextUtterance_TechnicalTurnZeroReferencesTopSkill(t *testing.T) {
	s := newTestSelector()
	ctx := &types.TurnContext{
		InterviewType: types.TypeTechnical,
		Profile:       &types.ResumeProfile{Skills: []string{"React"}},
	}

	utterance := s.NextUtterance(ctx)
	assert.Contains(t, utterance, "React")
}

func TestNextUtterance_SkillQuestionComesFromBank(t *testing.T) {
	s := newTestSelector()
	ctx := &types.TurnContext{
		InterviewType: types.TypeTechnical,
		Profile:       &types.ResumeProfile{Skills: []string{"JavaScript"}},
	}

	// Randomized tie-breaking: the utterance must be one of the bank's
	// JavaScript questions, not any fixed literal.
	utterance := s.NextUtterance(ctx)
	assert.Contains(t, defaultSkillQuestions["JavaScript"], utterance)
}

func TestNextUtterance_SkillWithoutBankEntryGetsGenericPhrasing(t *testing.T) {
	s := newTestSelector()
	ctx := &types.TurnContext{
		InterviewType: types.TypeTechnical,
		Profile:       &types.ResumeProfile{Skills: []string{"Figma"}},
	}

	utterance := s.NextUtterance(ctx)
	assert.Contains(t, utterance, "Figma")
}

func TestNextUtterance_BehavioralQuotesAchievement(t *testing.T) {
	s := newTestSelector()
	ctx := &types.TurnContext{
		InterviewType: types.TypeBehavioral,
		Profile: &types.ResumeProfile{
			Skills:       []string{"React"},
			Achievements: []string{"increased conversion by 20%"},
		},
	}

	utterance := s.NextUtterance(ctx)
	assert.Contains(t, utterance, "increased conversion by 20%")
}

func TestNextUtterance_EarlyPriorityProjectBeforeCompany(t *testing.T) {
	s := newTestSelector()
	ctx := &types.TurnContext{
		InterviewType: types.TypeScreening,
		Profile: &types.ResumeProfile{
			Projects:  []string{"built a payments platform"},
			Companies: []string{"Acme"},
		},
	}

	utterance := s.NextUtterance(ctx)
	assert.Contains(t, utterance, "built a payments platform")
	assert.NotContains(t, utterance, "Acme")
}

func TestNextUtterance_MidTurnTechnicalCombinesSkills(t *testing.T) {
	s := newTestSelector()
	ctx := &types.TurnContext{
		InterviewType: types.TypeTechnical,
		History:       history(4),
		Profile:       &types.ResumeProfile{Skills: []string{"Go", "PostgreSQL"}},
	}

	utterance := s.NextUtterance(ctx)
	assert.Contains(t, utterance, "Go")
	assert.Contains(t, utterance, "PostgreSQL")
}

func TestNextUtterance_MidTurnBehavioralLeadership(t *testing.T) {
	s := newTestSelector()
	ctx := &types.TurnContext{
		InterviewType: types.TypeBehavioral,
		History:       history(5),
		Profile: &types.ResumeProfile{
			JobTitles: []string{"Senior Software Engineer"},
		},
	}

	utterance := s.NextUtterance(ctx)
	assert.Contains(t, utterance, "Senior Software Engineer")
	assert.Contains(t, strings.ToLower(utterance), "team")
}

func TestNextUtterance_MidTurnSystemDesignUsesCloudSkill(t *testing.T) {
	s := newTestSelector()
	ctx := &types.TurnContext{
		InterviewType: types.TypeSystemDesign,
		History:       history(4),
		Profile:       &types.ResumeProfile{Skills: []string{"AWS", "Docker"}},
	}

	utterance := s.NextUtterance(ctx)
	assert.Contains(t, utterance, "AWS")
}

func TestNextUtterance_WrapUpAfterThreshold(t *testing.T) {
	s := newTestSelector()
	ctx := &types.TurnContext{
		InterviewType: types.TypeTechnical,
		History:       history(9),
		Profile:       &types.ResumeProfile{Skills: []string{"React"}},
	}

	utterance := s.NextUtterance(ctx)
	assert.Contains(t, utterance, "ask me anything about the role")
}

func TestNextUtterance_NoWrapUpAtThreshold(t *testing.T) {
	s := newTestSelector()
	ctx := &types.TurnContext{
		InterviewType: types.TypeTechnical,
		History:       history(8),
		Profile:       &types.ResumeProfile{Skills: []string{"React"}},
	}

	utterance := s.NextUtterance(ctx)
	assert.NotContains(t, utterance, "ask me anything about the role")
}

func TestNextUtterance_GreetingAcknowledged(t *testing.T) {
	s := newTestSelector()
	ctx := &types.TurnContext{
		InterviewType:     types.TypeTechnical,
		LatestUserMessage: "Hi, nice to meet you!",
		Profile:           &types.ResumeProfile{Skills: []string{"React"}},
	}

	utterance := s.NextUtterance(ctx)
	assert.True(t, strings.HasPrefix(utterance, "Great to meet you!"), "got %q", utterance)
	assert.Contains(t, utterance, "technical depth")
}

func TestNextUtterance_UnrecognizedTypeTreatedAsScreening(t *testing.T) {
	s := newTestSelector()
	ctx := &types.TurnContext{
		InterviewType:     types.InterviewType("panel"),
		LatestUserMessage: "Hello!",
		Profile:           &types.ResumeProfile{Skills: []string{"React"}},
	}

	utterance := s.NextUtterance(ctx)
	assert.Contains(t, utterance, typeFraming[types.TypeScreening])
}

func TestNextUtterance_SparseProfileFallsBackToTypeBank(t *testing.T) {
	s := newTestSelector()
	ctx := &types.TurnContext{
		InterviewType: types.TypeCulturalFit,
		History:       history(7), // past the mid band
		Profile:       &types.ResumeProfile{Education: []string{"Bachelor of Science"}},
	}

	utterance := s.NextUtterance(ctx)
	assert.Contains(t, defaultTypeQuestions["cultural-fit"], utterance)
}

func TestNextUtterance_DeterministicWithFixedSeed(t *testing.T) {
	ctx := &types.TurnContext{
		InterviewType: types.TypeTechnical,
		Profile:       &types.ResumeProfile{Skills: []string{"JavaScript"}},
	}

	first := NewSelector(nil, rand.New(rand.NewSource(7))).NextUtterance(ctx)
	second := NewSelector(nil, rand.New(rand.NewSource(7))).NextUtterance(ctx)
	assert.Equal(t, first, second)
}

func TestNextUtterance_NeverEmpty(t *testing.T) {
	s := newTestSelector()

	profiles := []*types.ResumeProfile{
		nil,
		{},
		{Skills: []string{"React"}},
		{Companies: []string{"Acme"}},
		{Education: []string{"MIT"}},
		{Achievements: []string{"promoted twice in three years"}},
	}
	for _, p := range profiles {
		for turns := 0; turns <= 10; turns++ {
			ctx := &types.TurnContext{
				InterviewType: types.TypeScreening,
				History:       history(turns),
				Profile:       p,
			}
			require.NotEmpty(t, s.NextUtterance(ctx))
		}
	}
}
