package analysis

import (
	"fmt"

	"github.com/user/footscan_analyzer_go/internal/parser"
	"gonum.org/v1/gonum/mat"
)

// ProcessTrialFile runs the full per-file normalization pipeline:
// separator detection, raw grid parsing, zero-border padding and cubic
// resampling to the target resolution. It returns the raw grid (for
// report metadata) alongside the resampled one. Any stage error aborts
// the file; the caller decides whether the batch continues.
func ProcessTrialFile(path string, targetRows, targetCols int) (raw, resampled *mat.Dense, err error) {
	sep, err := parser.DetectFileSeparator(path)
	if err != nil {
		return nil, nil, fmt.Errorf("detecting separator for %s: %w", path, err)
	}
	raw, err = parser.ParseGridFile(path, sep)
	if err != nil {
		return nil, nil, err
	}
	resampled, err = ResampleGrid(PadGrid(raw), targetRows, targetCols)
	if err != nil {
		return nil, nil, fmt.Errorf("resampling %s: %w", path, err)
	}
	return raw, resampled, nil
}
