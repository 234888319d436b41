package domain

import "strings"

// canonicalToken is what every species-name variant folds to in step-one
// normalization.
const canonicalToken = "slf"

// positiveTriggers are verbs/phrases describing a direct observation or
// encounter. At least one must appear for a spread/sighting verdict.
var positiveTriggers = []string{
	"found", "killed", "spotted", "attacked", "attacking", "caught",
	"saw", "squished", "stomped", "discovered", "quarantine", "everywhere",
	"reported", "seen", "infested", "stumbled", "invade", "observed",
}

// negativeTriggers mark informational/administrative mentions ("call this
// number to report a sighting"). Any hit forces an Other verdict.
var negativeTriggers = []string{
	"call", "report", "website", "page", "information",
}

// Classify returns true for spread/sighting posts, false otherwise.
// The verdict is true iff the canonical species token appears as a standalone
// word, at least one positive trigger is present, and no negative trigger is
// present. The negative list takes precedence. Matching is space-delimited
// over padded text so words at the string boundaries still match; this keeps
// partial words like "misreported" from triggering.
func Classify(normalized string) bool {
	padded := " " + normalized + " "
	if !strings.Contains(padded, " "+canonicalToken+" ") {
		return false
	}
	if containsWord(padded, negativeTriggers) {
		return false
	}
	return containsWord(padded, positiveTriggers)
}

// containsWord reports whether any word from the list appears space-bounded
// in the already-padded text.
func containsWord(padded string, words []string) bool {
	for _, w := range words {
		if strings.Contains(padded, " "+w+" ") {
			return true
		}
	}
	return false
}
