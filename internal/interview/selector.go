// Package interview implements the heuristic interview question selector.
// Given an extracted resume profile and the conversation so far, it picks
// the next interviewer utterance from canned, data-driven question banks.
// The selector is a pure function of its arguments plus an injectable
// random source used only to break ties among equally eligible questions.
package interview

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/jonathan/careergpt/internal/types"
)

// Turn-count boundaries for the personalized branches.
const (
	earlyTurnMax    = 2 // turns 0-2 target the single most specific signal
	midTurnMax      = 6 // turns 3-6 escalate to combinations
	wrapUpThreshold = 8 // past this, invite candidate questions
)

// Fixed utterances for the no-signal paths. These are valid, expected
// outputs, not error signals.
const (
	PromptUploadResume = "I don't have your resume yet. Please upload it so I can ask questions grounded in your actual experience."

	PromptUnreadableResume = "I couldn't extract enough detail from your resume to personalize this interview. Could you upload a clearer copy, ideally as plain text or PDF?"

	wrapUpInvite = "By the way, we've covered a lot of ground - feel free to ask me anything about the role or the company as well."
)

// Selector picks the next interviewer utterance for a turn context.
// It holds no per-conversation state; conversation state arrives in the
// TurnContext on every call, so one Selector can serve all conversations.
type Selector struct {
	banks *Banks
	rng   *rand.Rand
}

// NewSelector creates a Selector. A nil banks uses the built-in defaults;
// a nil rng uses a time-seeded source. Tests pass a fixed-seed rng to make
// tie-breaking deterministic.
func NewSelector(banks *Banks, rng *rand.Rand) *Selector {
	if banks == nil {
		banks = DefaultBanks()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Selector{banks: banks, rng: rng}
}

// NextUtterance returns the next interviewer utterance for the given turn.
// It never fails: absent fields degrade to the next branch in priority
// order, an unrecognized interview type is treated as screening, and the
// worst case is a fixed re-upload prompt.
func (s *Selector) NextUtterance(ctx *types.TurnContext) string {
	if ctx == nil || ctx.Profile == nil {
		return PromptUploadResume
	}
	if ctx.Profile.IsEmpty() {
		return PromptUnreadableResume
	}

	itype := types.ParseInterviewType(string(ctx.InterviewType))
	turn := ctx.Turn()

	var parts []string
	if prefix := framing(ctx.LatestUserMessage, itype); prefix != "" {
		parts = append(parts, prefix)
	}
	parts = append(parts, s.mainQuestion(ctx.Profile, itype, turn))
	if turn > wrapUpThreshold {
		parts = append(parts, wrapUpInvite)
	}
	return strings.Join(parts, " ")
}

// mainQuestion picks the core question for the turn, before framing and
// wrap-up are applied.
func (s *Selector) mainQuestion(p *types.ResumeProfile, itype types.InterviewType, turn int) string {
	switch {
	case turn <= earlyTurnMax:
		if q := s.earlyQuestion(p, itype); q != "" {
			return q
		}
	case turn <= midTurnMax:
		if q := s.midQuestion(p, itype); q != "" {
			return q
		}
	}
	return s.fallbackQuestion(p, itype)
}

// earlyQuestion targets the single most specific signal, in priority order
// skill, project, company, title, achievement. Behavioral interviews flip
// the order so achievements and companies come first.
func (s *Selector) earlyQuestion(p *types.ResumeProfile, itype types.InterviewType) string {
	if itype == types.TypeBehavioral {
		if q := s.achievementQuestion(p); q != "" {
			return q
		}
		if q := s.companyQuestion(p, itype); q != "" {
			return q
		}
	}

	if q := s.skillQuestion(p, itype); q != "" {
		return q
	}
	if q := s.projectQuestion(p, itype); q != "" {
		return q
	}
	if q := s.companyQuestion(p, itype); q != "" {
		return q
	}
	if q := s.titleQuestion(p); q != "" {
		return q
	}
	return s.achievementQuestion(p)
}

// skillQuestion asks about the first resume skill that has a canned bank
// entry; otherwise it builds a type-flavored question around the top skill.
func (s *Selector) skillQuestion(p *types.ResumeProfile, itype types.InterviewType) string {
	for _, skill := range p.Skills {
		if qs := s.banks.SkillQuestions[skill]; len(qs) > 0 {
			return s.pick(qs)
		}
	}
	if len(p.Skills) == 0 {
		return ""
	}
	top := p.Skills[0]
	switch itype {
	case types.TypeTechnical, types.TypeSystemDesign:
		return fmt.Sprintf("Walk me through how you would architect a system built around %s. What tradeoffs would you be watching for?", top)
	default:
		return fmt.Sprintf("I see %s on your resume. Tell me about a time you used it to solve a real problem.", top)
	}
}

func (s *Selector) projectQuestion(p *types.ResumeProfile, itype types.InterviewType) string {
	if len(p.Projects) == 0 {
		return ""
	}
	project := p.Projects[0]
	if itype == types.TypeTechnical || itype == types.TypeSystemDesign {
		return fmt.Sprintf("Your resume mentions that you %s. Walk me through the key technical decisions you made there.", project)
	}
	return fmt.Sprintf("Your resume mentions that you %s. What was your specific contribution, and what would you do differently today?", project)
}

func (s *Selector) companyQuestion(p *types.ResumeProfile, itype types.InterviewType) string {
	if len(p.Companies) == 0 {
		return ""
	}
	company := p.Companies[0]
	if itype == types.TypeBehavioral {
		return fmt.Sprintf("Tell me about a difficult situation you faced during your time at %s and how you handled it.", company)
	}
	return fmt.Sprintf("Tell me about your time at %s. What were you responsible for there?", company)
}

func (s *Selector) titleQuestion(p *types.ResumeProfile) string {
	if len(p.JobTitles) == 0 {
		return ""
	}
	return fmt.Sprintf("Your resume lists %s. What did a typical week look like in that role?", p.JobTitles[0])
}

func (s *Selector) achievementQuestion(p *types.ResumeProfile) string {
	if len(p.Achievements) == 0 {
		return ""
	}
	return fmt.Sprintf("Your resume mentions that you %q. How did you accomplish that, and how did you measure it?", p.Achievements[0])
}

// midQuestion escalates to combinations of signals, biased by interview type.
func (s *Selector) midQuestion(p *types.ResumeProfile, itype types.InterviewType) string {
	switch itype {
	case types.TypeTechnical:
		if len(p.Skills) >= 2 {
			return fmt.Sprintf("You've worked with both %s and %s. How do you decide which to reach for, and where have you seen each fall short?", p.Skills[0], p.Skills[1])
		}
		if q := s.projectQuestion(p, itype); q != "" {
			return q
		}
	case types.TypeBehavioral:
		if leadershipTitle(p) != "" {
			return fmt.Sprintf("As a %s, tell me about a time you had to get a team moving on something they didn't initially agree with.", leadershipTitle(p))
		}
		if q := s.achievementQuestion(p); q != "" {
			return q
		}
		if q := s.companyQuestion(p, itype); q != "" {
			return q
		}
	case types.TypeSystemDesign:
		if cloud := firstCloudSkill(p); cloud != "" {
			return fmt.Sprintf("Let's design something together. Sketch an architecture for a high-traffic web service on %s: where does it break first as load grows?", cloud)
		}
		if hasSkill(p, "React") && hasSkill(p, "Node.js") {
			return "Given your full-stack background, design the API boundary between a React frontend and a Node.js backend for a collaborative editing tool. What goes where, and why?"
		}
	case types.TypeScreening, types.TypeCulturalFit:
		if len(p.Experience) > 0 {
			return fmt.Sprintf("I noticed %q on your resume. What are you hoping the next few years add to that story?", p.Experience[0])
		}
		if len(p.JobTitles) > 0 {
			return fmt.Sprintf("What drew you to working as a %s, and what keeps you motivated in it?", p.JobTitles[0])
		}
	}
	return ""
}

// fallbackQuestion handles sparse profiles: richest single field first,
// then the interview type's default bank. An entirely empty profile never
// reaches here; NextUtterance short-circuits it.
func (s *Selector) fallbackQuestion(p *types.ResumeProfile, itype types.InterviewType) string {
	if len(p.Skills) >= 2 {
		return fmt.Sprintf("Your background spans %s and %s, among others. Which of these do you feel strongest in right now, and why?", p.Skills[0], p.Skills[1])
	}
	if len(p.Companies) > 0 {
		return fmt.Sprintf("Tell me more about what you worked on at %s.", p.Companies[0])
	}
	if len(p.Projects) > 0 {
		return fmt.Sprintf("Tell me more about the work where you %s.", p.Projects[0])
	}
	if qs := s.banks.TypeQuestions[string(itype)]; len(qs) > 0 {
		return s.pick(qs)
	}
	return PromptUnreadableResume
}

// pick chooses uniformly among equally eligible canned questions.
// This is intentional variety; tests treat the result as membership in
// the candidate set, not a fixed literal.
func (s *Selector) pick(qs []string) string {
	return qs[s.rng.Intn(len(qs))]
}

func hasSkill(p *types.ResumeProfile, name string) bool {
	for _, s := range p.Skills {
		if s == name {
			return true
		}
	}
	return false
}

var cloudSkillOrder = []string{"AWS", "Azure", "GCP", "Kubernetes", "Docker"}

func firstCloudSkill(p *types.ResumeProfile) string {
	for _, c := range cloudSkillOrder {
		if hasSkill(p, c) {
			return c
		}
	}
	return ""
}

// leadershipTitle returns the first title carrying a seniority marker.
func leadershipTitle(p *types.ResumeProfile) string {
	for _, t := range p.JobTitles {
		lower := strings.ToLower(t)
		if strings.Contains(lower, "senior") || strings.Contains(lower, "lead") || strings.Contains(lower, "manager") {
			return t
		}
	}
	return ""
}
