// Package domain models spotted lanternfly (SLF) sighting reports mined from
// short social-media posts.
//
// # Data Source
//
// Posts come from a Twitter export spreadsheet. Each row carries the post
// text, a structured location code, and a timestamp. The spreadsheet layout
// (sheet name, header row, column names) is configurable because exports from
// different harvest runs shift the header around.
//
// # Data Conventions
//
// Structured location format:
//
//	"<country>.<region>.<city>"  →  e.g. "USA.PA.Philadelphia"
//	Only rows whose first segment is "USA" are counted; the second segment is
//	the two-letter USPS region code. Empty cells surface as "" or the literal
//	string "nan" (an artifact of upstream numeric coercion) and are treated
//	as absent.
//
// Timestamp format:
//
//	"YYYY-MM-DD HH:MM:SS.0". Only the leading 4-digit year is used for
//	bucketing. Timestamps that do not start with a 4-digit year match no
//	requested year and the row is skipped.
//
// Region codes:
//
//	A closed set of 53 codes: the 50 states, DC, and the AS/MP/PR/VI
//	territories. A resolved code outside this set is reported but never
//	counted; see [RegionCounter.Increment].
//
// # Classification
//
// A post counts as a spread/sighting report when, after normalization, it
// contains the canonical "slf" token, at least one observation trigger word
// ("found", "spotted", "killed", ...), and none of the administrative trigger
// words ("call", "report", "website", ...). Administrative triggers always
// win, which keeps "call this number to report a sighting" style service
// announcements out of the counts. The rule lists are fixed; changing them
// changes classification output, so treat them as data, not tuning knobs.
//
// Normalization runs in two steps: [NormalizeStepOne] folds the species-name
// spelling variants into "slf" and strips hashtag/mention markers and URLs;
// [NormalizeStepTwo] keeps only tokens the NLP tokenizer flags as alphabetic
// or numeric. Classification and duplicate suppression both operate on the
// fully normalized text.
package domain
