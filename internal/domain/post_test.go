package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPostYear(t *testing.T) {
	tests := []struct {
		name string
		date string
		year string
		ok   bool
	}{
		{"full timestamp", "2019-05-01 10:32:00.0", "2019", true},
		{"date only", "2020-12-31", "2020", true},
		{"nan literal", "nan", "", false},
		{"empty", "", "", false},
		{"year without separator", "2019", "", false},
		{"short year", "219-05-01", "", false},
		{"non-numeric year", "abcd-05-01", "", false},
		{"long first segment", "20190-05-01", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			year, ok := PostYear(tt.date)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.year, year)
		})
	}
}

func TestYearInRange(t *testing.T) {
	assert.True(t, YearInRange("2019", "2017", "2020"))
	assert.True(t, YearInRange("2017", "2017", "2020"))
	assert.True(t, YearInRange("2020", "2017", "2020"))
	assert.False(t, YearInRange("2016", "2017", "2020"))
	assert.False(t, YearInRange("2021", "2017", "2020"))
	assert.True(t, YearInRange("2019", "2019", "2019"))
}
