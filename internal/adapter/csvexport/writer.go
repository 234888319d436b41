// Package csvexport writes the detailed classification results file.
package csvexport

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/haved-jossain/spotted-lanternfly-mapper/internal/domain"
)

const resultsFileName = "Results.csv"

var columns = []string{"Index", "Date", "Classification", "CityCode", "ExtractedLocation", "Text"}

// Writer streams classification records to Results.csv in the output
// directory. It implements pipeline.RecordExporter.
type Writer struct {
	file   *os.File
	csv    *csv.Writer
	path   string
	logger *slog.Logger
}

// NewWriter creates the results file and writes the column header.
func NewWriter(outputDir string, logger *slog.Logger) (*Writer, error) {
	path := filepath.Join(outputDir, resultsFileName)
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create results file %s: %w", path, err)
	}

	w := &Writer{file: f, csv: csv.NewWriter(f), path: path, logger: logger}
	if err := w.csv.Write(columns); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("write results header: %w", err)
	}
	return w, nil
}

// Write appends one record. Double quotes in the post text are folded to
// single quotes and "nan" locations to empty.
func (w *Writer) Write(_ context.Context, rec domain.ClassificationRecord) error {
	location := rec.Location
	if location == "nan" {
		location = ""
	}
	datePart, _, _ := strings.Cut(rec.Date, " ")
	text := strings.ReplaceAll(rec.Text, `"`, "'")

	if err := w.csv.Write([]string{
		strconv.Itoa(rec.Index),
		datePart,
		rec.Verdict,
		location,
		domain.JoinMentions(rec.ExtractedLocations),
		text,
	}); err != nil {
		return fmt.Errorf("write results row %d: %w", rec.Index, err)
	}
	return nil
}

// Path returns the results file location.
func (w *Writer) Path() string {
	return w.path
}

// Close flushes and closes the results file.
func (w *Writer) Close() error {
	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		_ = w.file.Close()
		return fmt.Errorf("flush results file: %w", err)
	}
	if err := w.file.Close(); err != nil {
		return fmt.Errorf("close results file: %w", err)
	}
	w.logger.Info("classification results exported", "path", w.path)
	return nil
}
