package kafka

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haved-jossain/spotted-lanternfly-mapper/internal/domain"
)

func TestSerializeRecord(t *testing.T) {
	processedAt := time.Date(2024, time.April, 26, 12, 0, 0, 0, time.UTC)
	rec := domain.ClassificationRecord{
		Index:              7,
		Date:               "2019-05-01 10:32:00.0",
		Verdict:            domain.VerdictSighting,
		Location:           "USA.NJ.Trenton",
		ExtractedLocations: []string{"Trenton"},
		Text:               "SLF spotted in my yard",
		ProcessedAt:        processedAt,
	}

	msg, err := serializeRecord(rec)
	require.NoError(t, err)

	assert.Equal(t, []byte("7"), msg.Key)

	headers := make(map[string]string, len(msg.Headers))
	for _, h := range msg.Headers {
		headers[h.Key] = string(h.Value)
	}
	assert.Equal(t, domain.VerdictSighting, headers["verdict"])
	assert.Equal(t, "2024-04-26T12:00:00Z", headers["processed_at"])

	var decoded domain.ClassificationRecord
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, rec, decoded)
}
