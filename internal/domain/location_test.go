package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveRegionCode(t *testing.T) {
	tests := []struct {
		name       string
		structured string
		code       RegionCode
		ok         bool
	}{
		{"full path", "USA.PA.SomeCity", "PA", true},
		{"state only", "USA.NJ", "NJ", true},
		{"unknown code still resolves", "USA.XX.Nowhere", "XX", true},
		{"nan literal", "nan", "", false},
		{"empty", "", "", false},
		{"foreign country", "Canada.ON", "", false},
		{"bare country marker", "USA", "", false},
		{"marker must match exactly", "USAX.PA", "", false},
		{"whitespace only", "   ", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, ok := ResolveRegionCode(tt.structured)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.code, code)
		})
	}
}

// stubTagger returns canned entities and whitespace-split tokens.
type stubTagger struct {
	entities []Entity
	err      error
}

func (s *stubTagger) Tokenize(string) ([]Token, error) { return nil, nil }

func (s *stubTagger) Entities(string) ([]Entity, error) {
	return s.entities, s.err
}

func TestExtractMentions(t *testing.T) {
	t.Run("keeps GPE entities in detection order", func(t *testing.T) {
		tagger := &stubTagger{entities: []Entity{
			{Text: "Trenton", Label: "GPE"},
			{Text: "Jane Doe", Label: "PERSON"},
			{Text: "New Jersey", Label: "GPE"},
		}}

		mentions, err := ExtractMentions(tagger, "saw one near Trenton, New Jersey")

		require.NoError(t, err)
		assert.Equal(t, []string{"Trenton", "New Jersey"}, mentions)
	})

	t.Run("no entities", func(t *testing.T) {
		mentions, err := ExtractMentions(&stubTagger{}, "nothing here")

		require.NoError(t, err)
		assert.Empty(t, mentions)
	})

	t.Run("tagger error propagates", func(t *testing.T) {
		tagger := &stubTagger{err: errors.New("model not loaded")}

		_, err := ExtractMentions(tagger, "text")

		require.Error(t, err)
	})
}

func TestJoinMentions(t *testing.T) {
	assert.Equal(t, "", JoinMentions(nil))
	assert.Equal(t, "Trenton", JoinMentions([]string{"Trenton"}))
	assert.Equal(t, "Trenton, New Jersey", JoinMentions([]string{"Trenton", "New Jersey"}))
}
