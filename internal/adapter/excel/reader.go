// Package excel loads the Twitter export spreadsheet into domain posts.
package excel

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"github.com/haved-jossain/spotted-lanternfly-mapper/internal/config"
	"github.com/haved-jossain/spotted-lanternfly-mapper/internal/domain"
)

// Reader loads posts from an .xlsx workbook. It implements
// pipeline.PostSource. The sheet name, header row offset, and column names
// are configurable because exports from different harvest runs shift the
// layout around.
type Reader struct {
	path      string
	sheet     string
	headerRow int // 0-based offset of the header row within the sheet
	textCol   string
	locCol    string
	dateCol   string
	logger    *slog.Logger
}

// NewReader creates a Reader from the tool configuration.
func NewReader(cfg *config.Config, logger *slog.Logger) *Reader {
	return &Reader{
		path:      cfg.InputPath,
		sheet:     cfg.SheetName,
		headerRow: cfg.HeaderRow,
		textCol:   cfg.TextColumn,
		locCol:    cfg.LocationColumn,
		dateCol:   cfg.DateColumn,
		logger:    logger,
	}
}

// Load reads the workbook once and returns the data rows in sheet order.
// Rows before and including the header row are skipped. Rows too short to
// hold any selected column yield empty fields, which downstream treats as
// absent values.
func (r *Reader) Load(_ context.Context) ([]domain.Post, error) {
	f, err := excelize.OpenFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("open input workbook %s: %w", r.path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			r.logger.Warn("close input workbook", "error", cerr)
		}
	}()

	rows, err := f.GetRows(r.sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", r.sheet, err)
	}
	if len(rows) <= r.headerRow {
		return nil, fmt.Errorf("sheet %q has no header row at offset %d", r.sheet, r.headerRow)
	}

	textIdx, err := columnIndex(rows[r.headerRow], r.textCol)
	if err != nil {
		return nil, err
	}
	locIdx, err := columnIndex(rows[r.headerRow], r.locCol)
	if err != nil {
		return nil, err
	}
	dateIdx, err := columnIndex(rows[r.headerRow], r.dateCol)
	if err != nil {
		return nil, err
	}

	dataRows := rows[r.headerRow+1:]
	posts := make([]domain.Post, 0, len(dataRows))
	for i, row := range dataRows {
		posts = append(posts, domain.Post{
			Row:      i + 1,
			Text:     cell(row, textIdx),
			Location: cell(row, locIdx),
			Date:     cell(row, dateIdx),
		})
	}

	r.logger.Info("input loaded", "path", r.path, "sheet", r.sheet, "posts", len(posts))
	return posts, nil
}

// columnIndex finds the 0-based index of a named column in the header row.
func columnIndex(header []string, name string) (int, error) {
	for i, h := range header {
		if h == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("column %q not found in header row", name)
}

// cell returns the value at idx, or "" when the row is too short. excelize
// trims trailing empty cells from each row.
func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return row[idx]
}
