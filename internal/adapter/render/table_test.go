package render

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haved-jossain/spotted-lanternfly-mapper/internal/domain"
)

func TestTablePresenter(t *testing.T) {
	counter := domain.NewRegionCounter("2019")
	require.True(t, counter.Increment("NJ"))
	require.True(t, counter.Increment("NJ"))
	require.True(t, counter.Increment("PA"))

	var buf bytes.Buffer
	p := NewTablePresenter(&buf, slog.New(slog.NewTextHandler(io.Discard, nil)))

	require.NoError(t, p.Present(context.Background(), counter))

	out := buf.String()
	assert.Contains(t, out, "Spotted Lanternfly Spread/Sighting, 2019")
	assert.Contains(t, out, "NJ")
	assert.Contains(t, out, "PA")
	assert.Contains(t, out, "WY", "zero-count regions are still listed")
	assert.Contains(t, out, "TOTAL")
	assert.Contains(t, out, "3")
}
