package exporter

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"voclab/internal/dataprocessing"
)

// CSVWriter provides CSV export rooted at an output directory.
type CSVWriter struct {
	outDir string
}

// NewCSVWriter creates a new CSV writer writing under outDir.
func NewCSVWriter(outDir string) *CSVWriter {
	return &CSVWriter{outDir: outDir}
}

// WriteOptions configures CSV writing behavior.
type WriteOptions struct {
	Headers   []string
	Records   [][]string
	BOMPrefix bool // add UTF-8 BOM so Excel opens the file correctly
}

// WriteCSV writes data to a CSV file with the given options.
func (w *CSVWriter) WriteCSV(filename string, options WriteOptions) error {
	fullPath := w.resolvePath(filename)

	slog.Info("writing CSV file",
		slog.String("path", fullPath),
		slog.Int("record_count", len(options.Records)))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if options.BOMPrefix {
		if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
			return fmt.Errorf("failed to write BOM: %w", err)
		}
	}

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if len(options.Headers) > 0 {
		if err := writer.Write(options.Headers); err != nil {
			return fmt.Errorf("failed to write headers: %w", err)
		}
	}
	for i, record := range options.Records {
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	return writer.Error()
}

// WriteTable writes a cleaned table as CSV: header row, no index column.
func (w *CSVWriter) WriteTable(filename string, t *dataprocessing.Table) error {
	return w.WriteCSV(filename, WriteOptions{
		Headers:   t.Columns,
		Records:   t.Rows,
		BOMPrefix: true,
	})
}

// WriteSummary writes the batch grouping summary as CSV.
func (w *CSVWriter) WriteSummary(filename string, summary []dataprocessing.GroupCount) error {
	records := make([][]string, 0, len(summary))
	for _, g := range summary {
		records = append(records, []string{g.Timepoint, g.Group, g.Adsorbent, formatInt(g.Compounds)})
	}
	return w.WriteCSV(filename, WriteOptions{
		Headers:   dataprocessing.SummaryColumns,
		Records:   records,
		BOMPrefix: true,
	})
}

// EncodeTable streams a table as CSV to any writer. Used by the HTTP
// download handler, which writes straight to the response body.
func EncodeTable(wr io.Writer, t *dataprocessing.Table) error {
	writer := csv.NewWriter(wr)
	if err := writer.Write(t.Columns); err != nil {
		return fmt.Errorf("failed to write headers: %w", err)
	}
	for i, record := range t.Rows {
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

func (w *CSVWriter) resolvePath(filename string) string {
	if filepath.IsAbs(filename) {
		return filename
	}
	return filepath.Join(w.outDir, filename)
}
