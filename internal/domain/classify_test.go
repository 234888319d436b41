package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected bool
	}{
		{"sighting at string start", "slf spotted in my yard today", true},
		{"sighting mid-string", "i saw a slf on the porch", true},
		{"killed trigger", "killed a slf this morning", true},
		{"infested trigger", "our block is infested with slf", true},
		{"trigger at string end", "so many slf everywhere", true},
		{"no species token", "spotted a weird bug in my yard", false},
		{"no positive trigger", "slf season is starting", false},
		{"negative trigger wins", "slf spotted call this number to report a sighting", false},
		{"report is negative despite reported being positive", "report slf sightings reported to the hotline", false},
		{"website negative", "slf found info on our website", false},
		{"information negative", "slf seen more information here", false},
		{"partial word does not trigger", "slf misreported numbers", false},
		{"species token must stand alone", "slfs spotted in my yard", false},
		{"empty text", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.text))
		})
	}
}

// Classification is a pure function of the two-step normalization output:
// the same raw text always yields the same verdict.
func TestClassifyDeterministicOverNormalization(t *testing.T) {
	raw := "Spotted Lanternfly spotted in Trenton today! #slf"
	tokens := []Token{
		{Text: "slf", Alphabetic: true},
		{Text: "spotted", Alphabetic: true},
		{Text: "in", Alphabetic: true},
		{Text: "trenton", Alphabetic: true},
		{Text: "today", Alphabetic: true},
		{Text: "!"},
	}

	first := Classify(NormalizeStepTwo(tokens))
	second := Classify(NormalizeStepTwo(tokens))

	assert.True(t, first)
	assert.Equal(t, first, second)
	assert.Equal(t, "slf spotted in trenton today! slf", NormalizeStepOne(raw))
}
