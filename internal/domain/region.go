package domain

import "sort"

// RegionCode is a two-letter USPS state/territory code.
type RegionCode string

// regionCodes is the closed set of counted regions: the 50 states, DC, and
// the named territories. The counter's key set never grows beyond this list.
var regionCodes = []RegionCode{
	"AK", "AL", "AR", "AS", "AZ",
	"CA", "CO", "CT", "DC", "DE",
	"FL", "GA", "MN", "HI", "IA",
	"ID", "IL", "IN", "KS", "KY",
	"LA", "MA", "MD", "ME", "MI",
	"MO", "MP", "MS", "MT", "NC",
	"ND", "NE", "NH", "NJ", "NM",
	"NV", "NY", "OH", "OK", "OR",
	"PA", "PR", "RI", "SC", "SD",
	"TN", "TX", "UT", "VA", "VI",
	"VT", "WA", "WI", "WV", "WY",
}

var knownRegions = func() map[RegionCode]struct{} {
	m := make(map[RegionCode]struct{}, len(regionCodes))
	for _, code := range regionCodes {
		m[code] = struct{}{}
	}
	return m
}()

// KnownRegion reports whether code is a member of the counted region set.
func KnownRegion(code RegionCode) bool {
	_, ok := knownRegions[code]
	return ok
}

func zeroCounts() map[RegionCode]int {
	m := make(map[RegionCode]int, len(regionCodes))
	for _, code := range regionCodes {
		m[code] = 0
	}
	return m
}

// RegionCounter holds per-region post counts for one output bucket.
// The key set is fixed at construction; all counts start at zero.
type RegionCounter struct {
	Title  string
	counts map[RegionCode]int
}

// NewRegionCounter creates a counter with every known region at zero.
func NewRegionCounter(title string) *RegionCounter {
	return &RegionCounter{Title: title, counts: zeroCounts()}
}

// Increment adds one to the count for code. Returns false without counting
// when code is outside the known region set — the unknown-code branch is
// explicit rather than a silent map miss.
func (c *RegionCounter) Increment(code RegionCode) bool {
	if _, ok := c.counts[code]; !ok {
		return false
	}
	c.counts[code]++
	return true
}

// Count returns the current count for code, zero for unknown codes.
func (c *RegionCounter) Count(code RegionCode) int {
	return c.counts[code]
}

// Merge adds other's counts into c. Merge is commutative and associative
// over the fixed key set; merging an all-zero counter is a no-op.
func (c *RegionCounter) Merge(other *RegionCounter) {
	for code := range c.counts {
		c.counts[code] += other.counts[code]
	}
}

// Codes returns the known region codes in sorted order for deterministic
// rendering and export.
func (c *RegionCounter) Codes() []RegionCode {
	codes := make([]RegionCode, 0, len(c.counts))
	for code := range c.counts {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}

// Total returns the sum of all region counts.
func (c *RegionCounter) Total() int {
	total := 0
	for _, n := range c.counts {
		total += n
	}
	return total
}
