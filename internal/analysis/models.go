package analysis

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Default target resolution for resampled grids. The values keep the
// roughly 7:3 aspect of the padded sensor mat.
const (
	DefaultTargetRows = 336
	DefaultTargetCols = 144
)

// ErrEmptyInput is returned when aggregation is asked to average zero
// grids.
var ErrEmptyInput = errors.New("no grids to aggregate")

// InterpolationError reports a padded grid too small for cubic
// resampling.
type InterpolationError struct {
	Rows, Cols int
}

func (e *InterpolationError) Error() string {
	return fmt.Sprintf("grid %dx%d is below the %dx%d minimum lattice for cubic resampling",
		e.Rows, e.Cols, minLattice, minLattice)
}

// DimensionMismatchError reports a grid whose dimensions differ from
// the rest of a trial set.
type DimensionMismatchError struct {
	WantRows, WantCols int
	GotRows, GotCols   int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("grid is %dx%d, expected %dx%d",
		e.GotRows, e.GotCols, e.WantRows, e.WantCols)
}

// Trial records one processed input file: where it came from, the raw
// matrix dimensions before padding, and the peak reading. Kept for the
// batch report.
type Trial struct {
	Path    string
	RawRows int
	RawCols int
	PeakRaw float64
}

// TrialSet accumulates the resampled grids of a batch in file order,
// together with per-trial metadata.
type TrialSet struct {
	Trials []Trial
	Grids  []*mat.Dense
}

// Add appends one trial's resampled grid. raw is the matrix as parsed,
// before padding; it is only consulted for report metadata.
func (ts *TrialSet) Add(path string, raw, resampled *mat.Dense) {
	r, c := raw.Dims()
	ts.Trials = append(ts.Trials, Trial{
		Path:    path,
		RawRows: r,
		RawCols: c,
		PeakRaw: mat.Max(raw),
	})
	ts.Grids = append(ts.Grids, resampled)
}

// Len returns the number of trials collected so far.
func (ts *TrialSet) Len() int { return len(ts.Grids) }

// MeanGrid averages the collected grids element-wise.
func (ts *TrialSet) MeanGrid() (*mat.Dense, error) {
	return AggregateMean(ts.Grids)
}
