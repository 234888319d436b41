package csvexport

import (
	"context"
	"encoding/csv"
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haved-jossain/spotted-lanternfly-mapper/internal/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestWriter(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWriter(dir, discardLogger())
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, w.Write(ctx, domain.ClassificationRecord{
		Index:              1,
		Date:               "2019-05-01 10:32:00.0",
		Verdict:            domain.VerdictSighting,
		Location:           "USA.NJ.Trenton",
		ExtractedLocations: []string{"Trenton", "New Jersey"},
		Text:               `SLF "spotted" in my yard`,
	}))
	require.NoError(t, w.Write(ctx, domain.ClassificationRecord{
		Index:    2,
		Date:     "2019-05-02 08:00:00.0",
		Verdict:  domain.VerdictOther,
		Location: "nan",
		Text:     "Call to report a sighting",
	}))
	require.NoError(t, w.Close())

	f, err := os.Open(w.Path())
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"Index", "Date", "Classification", "CityCode", "ExtractedLocation", "Text"}, rows[0])
	assert.Equal(t, []string{"1", "2019-05-01", "Spread/Sighting", "USA.NJ.Trenton", "Trenton, New Jersey", "SLF 'spotted' in my yard"}, rows[1])
	assert.Equal(t, []string{"2", "2019-05-02", "Other", "", "", "Call to report a sighting"}, rows[2])
}

func TestNewWriterInvalidDirectory(t *testing.T) {
	_, err := NewWriter("/nonexistent/dir", discardLogger())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "create results file")
}
