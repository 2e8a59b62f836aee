// Package services hosts the application services between transport and
// the data-processing pipeline.
package services

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"voclab/internal/dataprocessing"
)

var (
	filesCleanedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "voclab_files_cleaned_total",
		Help: "Workbooks cleaned successfully.",
	})
	filesFailedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "voclab_files_failed_total",
		Help: "Workbooks that failed cleaning and were excluded from the batch.",
	})
	rowsEmittedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "voclab_rows_emitted_total",
		Help: "Cleaned compound rows emitted across all batches.",
	})
)

// BatchFile is one uploaded workbook: its original name and its content.
type BatchFile struct {
	Name   string
	Reader io.Reader
}

// FileResult reports the outcome of cleaning one file. Err is the error
// message for failed files and empty for successful ones.
type FileResult struct {
	SourceFile string `json:"source_file"`
	RowCount   int    `json:"row_count"`
	Err        string `json:"error,omitempty"`
}

// BatchResult is the outcome of one synchronous batch pass.
type BatchResult struct {
	BatchID  string                      `json:"batch_id"`
	Files    []FileResult                `json:"files"`
	Summary  []dataprocessing.GroupCount `json:"summary"`
	Combined *dataprocessing.Table       `json:"combined"`
}

// Succeeded reports whether at least one file yielded rows.
func (r *BatchResult) Succeeded() bool {
	for _, f := range r.Files {
		if f.Err == "" {
			return true
		}
	}
	return false
}

// CleanService runs the cleaning pipeline over uploaded batches. Files are
// processed to completion one at a time; a failing file is reported and
// excluded without aborting the rest of the batch.
type CleanService struct {
	logger *slog.Logger
}

// NewCleanService creates a new clean service.
func NewCleanService(logger *slog.Logger) *CleanService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CleanService{logger: logger.With(slog.String("component", "clean_service"))}
}

// CleanBatch cleans every file in order and aggregates the survivors into
// one combined table plus a grouping summary.
func (s *CleanService) CleanBatch(ctx context.Context, files []BatchFile) *BatchResult {
	result := &BatchResult{
		BatchID: uuid.NewString(),
		Files:   make([]FileResult, 0, len(files)),
	}

	s.logger.InfoContext(ctx, "starting batch clean",
		slog.String("batch_id", result.BatchID),
		slog.Int("file_count", len(files)))

	tables := make([]*dataprocessing.Table, 0, len(files))
	for _, f := range files {
		cleaned, err := dataprocessing.CleanFile(f.Reader, f.Name)
		if err != nil {
			filesFailedTotal.Inc()
			s.logger.ErrorContext(ctx, "failed to clean workbook",
				slog.String("batch_id", result.BatchID),
				slog.String("file", f.Name),
				slog.String("error", err.Error()))
			result.Files = append(result.Files, FileResult{SourceFile: f.Name, Err: err.Error()})
			continue
		}

		filesCleanedTotal.Inc()
		rowsEmittedTotal.Add(float64(len(cleaned.Rows)))
		result.Files = append(result.Files, FileResult{SourceFile: f.Name, RowCount: len(cleaned.Rows)})
		tables = append(tables, cleaned)
	}

	result.Combined = dataprocessing.Combine(tables)
	result.Summary = dataprocessing.Summarize(result.Combined)

	s.logger.InfoContext(ctx, "batch clean finished",
		slog.String("batch_id", result.BatchID),
		slog.Int("files_ok", len(tables)),
		slog.Int("files_failed", len(files)-len(tables)),
		slog.Int("rows", len(result.Combined.Rows)))

	return result
}
