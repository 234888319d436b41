package domain

import "strings"

const (
	// countryMarker is the first segment of a counted structured location.
	countryMarker = "USA"

	// missingLocation is the literal the upstream export writes for empty
	// cells after numeric coercion.
	missingLocation = "nan"
)

// ResolveRegionCode parses a dot-delimited structured location field into a
// region code. "USA.PA.Philadelphia" resolves to "PA". Fields that are empty,
// "nan"-valued, or not rooted at the USA marker resolve to nothing. The
// returned code is not validated against the known region set; that decision
// belongs to [RegionCounter.Increment].
func ResolveRegionCode(structured string) (RegionCode, bool) {
	structured = strings.TrimSpace(structured)
	if structured == "" || structured == missingLocation {
		return "", false
	}
	parts := strings.Split(structured, ".")
	if len(parts) < 2 || parts[0] != countryMarker {
		return "", false
	}
	return RegionCode(parts[1]), true
}

// ExtractMentions runs entity recognition over the raw (pre-normalization)
// post text and returns the geopolitical-entity mentions in detection order.
// Mentions only annotate the export; they never affect counts.
func ExtractMentions(tagger Tagger, rawText string) ([]string, error) {
	entities, err := tagger.Entities(rawText)
	if err != nil {
		return nil, err
	}
	var mentions []string
	for _, e := range entities {
		if e.Label == LabelGPE {
			mentions = append(mentions, e.Text)
		}
	}
	return mentions, nil
}

// JoinMentions formats extracted mentions as the comma-separated display
// string used in the detailed export.
func JoinMentions(mentions []string) string {
	return strings.Join(mentions, ", ")
}
