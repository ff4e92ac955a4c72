// Command footscan_analyzer batch-processes one condition's worth of
// foot-pressure exports: every file matching the glob is parsed,
// padded and resampled to a common resolution, the trials are
// averaged, and the mean grid is written out as a heatmap PNG and,
// optionally, a PDF report.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/user/footscan_analyzer_go/internal/analysis"
	"github.com/user/footscan_analyzer_go/internal/config"
	"github.com/user/footscan_analyzer_go/internal/parser"
	"github.com/user/footscan_analyzer_go/internal/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	glob := flag.String("glob", cfg.Glob, "glob pattern of pressure export files")
	rows := flag.Int("rows", cfg.TargetRows, "target resolution rows")
	cols := flag.Int("cols", cfg.TargetCols, "target resolution columns")
	pngOut := flag.String("png", cfg.PNGOut, "output heatmap PNG path")
	pdfOut := flag.String("pdf", cfg.PDFOut, "output PDF report path (empty = no PDF)")
	skipBad := flag.Bool("skip-bad", cfg.SkipBad, "skip unreadable files instead of aborting the batch")
	logLevel := flag.String("log-level", cfg.LogLevel, "debug | info | warn | error")
	flag.Parse()

	cfg.Glob = *glob
	cfg.TargetRows = *rows
	cfg.TargetCols = *cols
	cfg.PNGOut = *pngOut
	cfg.PDFOut = *pdfOut
	cfg.SkipBad = *skipBad
	cfg.LogLevel = *logLevel

	logger := newLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}
	if err := run(cfg, logger); err != nil {
		logger.Error("Batch failed", "error", err)
		os.Exit(1)
	}
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

func run(cfg *config.Config, logger *slog.Logger) error {
	paths, err := filepath.Glob(cfg.Glob)
	if err != nil {
		return fmt.Errorf("bad glob pattern %q: %w", cfg.Glob, err)
	}
	if len(paths) == 0 {
		return fmt.Errorf("no files match %q", cfg.Glob)
	}
	sort.Strings(paths)

	logger.Info("Starting batch",
		slog.Int("files", len(paths)),
		slog.String("glob", cfg.Glob),
		slog.Int("target_rows", cfg.TargetRows),
		slog.Int("target_cols", cfg.TargetCols))

	batch := &analysis.TrialSet{}
	for _, path := range paths {
		raw, resampled, err := analysis.ProcessTrialFile(path, cfg.TargetRows, cfg.TargetCols)
		if err != nil {
			logger.Error("Trial failed", "file", path, "kind", errorKind(err), "error", err)
			if cfg.SkipBad {
				continue
			}
			return err
		}
		r, c := raw.Dims()
		logger.Info("Trial processed", "file", path, "raw_rows", r, "raw_cols", c)
		batch.Add(path, raw, resampled)
	}

	mean, err := batch.MeanGrid()
	if err != nil {
		return fmt.Errorf("aggregating %d trials: %w", batch.Len(), err)
	}
	logger.Info("Aggregated batch", slog.Int("trials", batch.Len()))

	png, err := report.RenderMeanHeatmap(mean, report.DefaultPressureColors)
	if err != nil {
		return fmt.Errorf("rendering heatmap: %w", err)
	}
	if err := os.WriteFile(cfg.PNGOut, png, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", cfg.PNGOut, err)
	}
	logger.Info("Wrote heatmap", "path", cfg.PNGOut)

	if cfg.PDFOut != "" {
		if err := report.BuildPDFReport(cfg.PDFOut, batch, mean, png); err != nil {
			return fmt.Errorf("building PDF report: %w", err)
		}
		logger.Info("Wrote report", "path", cfg.PDFOut)
	}
	return nil
}

// errorKind names the pipeline error category for log output.
func errorKind(err error) string {
	var (
		detErr    *parser.DetectionError
		malErr    *parser.MalformedFileError
		interpErr *analysis.InterpolationError
	)
	switch {
	case errors.As(err, &detErr):
		return "detection"
	case errors.As(err, &malErr):
		return "malformed-file"
	case errors.As(err, &interpErr):
		return "interpolation"
	default:
		return "io"
	}
}
