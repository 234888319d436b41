// Package nlp adapts the prose NLP library to the domain Tagger interface.
package nlp

import (
	"fmt"
	"unicode"

	prose "github.com/jdkato/prose/v2"

	"github.com/haved-jossain/spotted-lanternfly-mapper/internal/domain"
)

// Tagger implements domain.Tagger on top of prose: tokenization for the
// normalization pipeline and named-entity recognition for location mentions.
type Tagger struct{}

// New verifies the prose English model with a smoke parse so a broken model
// fails at startup rather than mid-scan.
func New() (*Tagger, error) {
	if _, err := prose.NewDocument("smoke test",
		prose.WithSegmentation(false),
		prose.WithTagging(false),
		prose.WithExtraction(false),
	); err != nil {
		return nil, fmt.Errorf("load NLP model: %w", err)
	}
	return &Tagger{}, nil
}

// Tokenize splits text into tokens with character-class flags. Tagging and
// extraction are disabled; only the tokenizer runs.
func (t *Tagger) Tokenize(text string) ([]domain.Token, error) {
	doc, err := prose.NewDocument(text,
		prose.WithSegmentation(false),
		prose.WithTagging(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return nil, fmt.Errorf("tokenize: %w", err)
	}

	proseTokens := doc.Tokens()
	tokens := make([]domain.Token, 0, len(proseTokens))
	for _, tok := range proseTokens {
		tokens = append(tokens, domain.Token{
			Text:       tok.Text,
			Alphabetic: isAlphabetic(tok.Text),
			Numeric:    isNumeric(tok.Text),
		})
	}
	return tokens, nil
}

// Entities runs the full prose pipeline over raw text and returns every
// recognized entity with its label. The caller filters for GPE.
func (t *Tagger) Entities(text string) ([]domain.Entity, error) {
	doc, err := prose.NewDocument(text)
	if err != nil {
		return nil, fmt.Errorf("extract entities: %w", err)
	}

	proseEntities := doc.Entities()
	entities := make([]domain.Entity, 0, len(proseEntities))
	for _, ent := range proseEntities {
		entities = append(entities, domain.Entity{Text: ent.Text, Label: ent.Label})
	}
	return entities, nil
}

func isAlphabetic(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return s != ""
}

func isNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return s != ""
}
