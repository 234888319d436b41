package domain

import (
	"regexp"
	"strings"
)

// urlRe matches URL-shaped substrings: "http" followed by any non-whitespace run.
var urlRe = regexp.MustCompile(`http\S+`)

// slfReplacer folds every recognized spelling variant of the species name
// into the canonical "slf" token. Argument order matters: the spaced and
// prefixed variants must be listed before the bare ones so "spotted lantern
// fly" does not fold to "spotted slf".
var slfReplacer = strings.NewReplacer(
	"spotted lanternfly", "slf",
	"spotted lanternflies", "slf",
	"spotted lantern fly", "slf",
	"spotted lantern flies", "slf",
	"spottedlanternfly", "slf",
	"spottedlanternflies", "slf",
	"lanternfly", "slf",
	"lanternflies", "slf",
	"lantern fly", "slf",
	"lantern flies", "slf",
)

// symbolReplacer strips hashtag and mention markers without removing the
// word they annotate.
var symbolReplacer = strings.NewReplacer("#", "", "@", "")

// NormalizeStepOne lower-cases text, folds species-name variants to "slf",
// strips "#" and "@" markers, removes URLs, and trims surrounding whitespace.
// Deterministic; text with nothing to fold passes through otherwise unchanged.
func NormalizeStepOne(text string) string {
	text = strings.ToLower(text)
	text = slfReplacer.Replace(text)
	text = symbolReplacer.Replace(text)
	text = urlRe.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// NormalizeStepTwo rebuilds a space-joined string from the tokens the NLP
// tokenizer flagged as alphabetic or numeric, preserving order. Punctuation
// and symbol tokens are dropped. No linguistic analysis happens here; the
// flags come from the [Tagger].
func NormalizeStepTwo(tokens []Token) string {
	var b strings.Builder
	for _, tok := range tokens {
		if !tok.Alphabetic && !tok.Numeric {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(tok.Text)
	}
	return b.String()
}
