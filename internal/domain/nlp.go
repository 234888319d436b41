package domain

// Token is a single tokenizer output with the character-class flags the
// normalization pipeline filters on.
type Token struct {
	Text       string
	Alphabetic bool
	Numeric    bool
}

// Entity is a named entity recognized in raw post text.
type Entity struct {
	Text  string
	Label string
}

// LabelGPE is the entity label for geopolitical entities (countries, states,
// cities). Only GPE-labeled entities are surfaced as location mentions.
const LabelGPE = "GPE"

// Tagger is the external NLP capability consumed by the pipeline: tokenization
// with per-token character-class flags, and named-entity recognition. The
// model behind it is loaded once at startup; a load failure is fatal before
// any scanning begins.
type Tagger interface {
	Tokenize(text string) ([]Token, error)
	Entities(text string) ([]Entity, error)
}
