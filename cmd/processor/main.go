// Command processor cleans every raw GC-MS workbook in a directory and
// writes the combined table and its grouping summary as CSV.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path/filepath"

	"voclab/internal/config"
	"voclab/internal/exporter"
	"voclab/internal/infrastructure"
	"voclab/internal/services"
	"voclab/internal/validation"
)

const (
	combinedCSVName = "voc_clean_combined.csv"
	summaryCSVName  = "voc_summary.csv"
)

func main() {
	inDir := flag.String("in", "", "input directory containing .xls/.xlsx instrument exports (defaults to configured input dir)")
	outDir := flag.String("out", "", "output directory for CSV files (defaults to configured output dir)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("failed to load config, using defaults", "error", err)
		cfg = config.Default()
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}

	if *inDir == "" {
		*inDir = cfg.Paths.InputDir
	}
	if *outDir == "" {
		*outDir = cfg.Paths.OutputDir
	}

	logger.Info("starting workbook cleaning",
		slog.String("input_dir", *inDir),
		slog.String("output_dir", *outDir))

	validator := validation.NewFileValidator(logger)
	if err := validator.ValidateInputDirectory(*inDir); err != nil {
		logger.Error("input directory invalid", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := validator.ValidateOutputDirectory(*outDir); err != nil {
		logger.Error("output directory invalid", slog.String("error", err.Error()))
		os.Exit(1)
	}

	paths, err := validator.ListWorkbooks(*inDir)
	if err != nil {
		logger.Error("failed to list workbooks", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if len(paths) == 0 {
		logger.Warn("no workbooks found, nothing to do", slog.String("input_dir", *inDir))
		return
	}

	files := make([]services.BatchFile, 0, len(paths))
	var open []*os.File
	defer func() {
		for _, f := range open {
			f.Close()
		}
	}()
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			logger.Error("failed to open workbook, skipping",
				slog.String("file", path),
				slog.String("error", err.Error()))
			continue
		}
		open = append(open, f)
		files = append(files, services.BatchFile{Name: filepath.Base(path), Reader: f})
	}

	svc := services.NewCleanService(logger)
	result := svc.CleanBatch(context.Background(), files)

	for _, fr := range result.Files {
		if fr.Err != "" {
			logger.Error("workbook excluded from combined output",
				slog.String("file", fr.SourceFile),
				slog.String("error", fr.Err))
		}
	}

	if !result.Succeeded() {
		logger.Error("no workbook could be cleaned")
		os.Exit(1)
	}

	writer := exporter.NewCSVWriter(*outDir)
	if err := writer.WriteTable(combinedCSVName, result.Combined); err != nil {
		logger.Error("failed to write combined CSV", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := writer.WriteSummary(summaryCSVName, result.Summary); err != nil {
		logger.Error("failed to write summary CSV", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("cleaning complete",
		slog.String("batch_id", result.BatchID),
		slog.Int("files", len(result.Files)),
		slog.Int("rows", len(result.Combined.Rows)),
		slog.String("combined_csv", filepath.Join(*outDir, combinedCSVName)),
		slog.String("summary_csv", filepath.Join(*outDir, summaryCSVName)))
}
