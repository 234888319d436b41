// Package render displays per-bucket region counts.
package render

import (
	"context"
	"io"
	"log/slog"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/haved-jossain/spotted-lanternfly-mapper/internal/domain"
)

// TablePresenter renders one region-count table per output bucket. It
// implements pipeline.Presenter and stands in for the map layer: every known
// region appears with its count, zeros included, in code order.
type TablePresenter struct {
	out    io.Writer
	logger *slog.Logger
}

// NewTablePresenter creates a presenter writing to out.
func NewTablePresenter(out io.Writer, logger *slog.Logger) *TablePresenter {
	return &TablePresenter{out: out, logger: logger}
}

// Present renders the counter as a titled table with a total footer.
func (p *TablePresenter) Present(_ context.Context, counter *domain.RegionCounter) error {
	t := table.NewWriter()
	t.SetOutputMirror(p.out)
	t.SetStyle(table.StyleLight)
	t.SetTitle("Spotted Lanternfly Spread/Sighting, " + counter.Title)
	t.AppendHeader(table.Row{"Region", "Posts"})

	for _, code := range counter.Codes() {
		t.AppendRow(table.Row{string(code), counter.Count(code)})
	}
	t.AppendFooter(table.Row{"Total", counter.Total()})

	t.Render()
	p.logger.Debug("bucket rendered", "label", counter.Title, "total", counter.Total())
	return nil
}
