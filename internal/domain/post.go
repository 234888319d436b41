package domain

import (
	"strings"
	"time"
)

// Post is one spreadsheet row from the Twitter export.
type Post struct {
	Row      int    // 1-based position within the data rows, used as the export index
	Text     string // raw post text
	Location string // structured location, e.g. "USA.PA.Philadelphia"; "" or "nan" when absent
	Date     string // timestamp string, "YYYY-MM-DD HH:MM:SS.0"
}

// Verdict labels for classified posts.
const (
	VerdictSighting = "Spread/Sighting"
	VerdictOther    = "Other"
)

// ClassificationRecord is the per-post result handed to the export
// collaborators. It is emitted for every in-range post regardless of verdict.
type ClassificationRecord struct {
	Index              int       `json:"index"`
	Date               string    `json:"date"`
	Verdict            string    `json:"verdict"`
	Location           string    `json:"location,omitempty"`
	ExtractedLocations []string  `json:"extracted_locations,omitempty"`
	Text               string    `json:"text"`
	ProcessedAt        time.Time `json:"processed_at"`
}

// PostYear extracts the 4-digit year from a post timestamp.
// Returns false for timestamps that do not begin with "YYYY-".
func PostYear(date string) (string, bool) {
	datePart, _, _ := strings.Cut(date, " ")
	year, rest, found := strings.Cut(datePart, "-")
	if !found || rest == "" || len(year) != 4 {
		return "", false
	}
	for _, c := range year {
		if c < '0' || c > '9' {
			return "", false
		}
	}
	return year, true
}

// YearInRange reports whether year falls in [start, end] inclusive.
// Years are 4-digit zero-padded strings, so lexicographic comparison matches
// numeric ordering.
func YearInRange(year, start, end string) bool {
	return start <= year && year <= end
}
