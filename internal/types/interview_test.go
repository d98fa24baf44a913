package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseInterviewType(t *testing.T) {
	assert.Equal(t, TypeTechnical, ParseInterviewType("technical"))
	assert.Equal(t, TypeBehavioral, ParseInterviewType(" Behavioral "))
	assert.Equal(t, TypeSystemDesign, ParseInterviewType("SYSTEM-DESIGN"))
	assert.Equal(t, TypeCulturalFit, ParseInterviewType("cultural-fit"))
	assert.Equal(t, TypeScreening, ParseInterviewType("screening"))

	// Unrecognized and empty values normalize to screening.
	assert.Equal(t, TypeScreening, ParseInterviewType(""))
	assert.Equal(t, TypeScreening, ParseInterviewType("panel"))
	assert.Equal(t, TypeScreening, ParseInterviewType("system design"))
}

func TestTurnContext_Turn(t *testing.T) {
	var nilCtx *TurnContext
	assert.Equal(t, 0, nilCtx.Turn())
	assert.Equal(t, 0, (&TurnContext{}).Turn())

	ctx := &TurnContext{History: []Message{
		{Speaker: SpeakerUser, Text: "hi"},
		{Speaker: SpeakerInterviewer, Text: "hello"},
	}}
	assert.Equal(t, 2, ctx.Turn())
}
