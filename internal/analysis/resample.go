package analysis

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"
	"gonum.org/v1/gonum/mat"
)

// minLattice is the smallest grid side accepted for cubic resampling.
// Natural cubic splines fit as few as two points, but below four the
// fit degenerates to lower-order segments; requiring a 4x4 lattice
// keeps genuine cubic behavior on both axes.
const minLattice = 4

// ResampleGrid evaluates a smooth interpolant over g at an evenly
// spaced targetRows x targetCols query lattice spanning the full grid
// extent. The grid values are treated as samples on the integer
// lattice (0..R-1) x (0..C-1) and the interpolant is a tensor product
// of natural cubic splines: one pass along each row to the target
// column coordinates, then one pass down each intermediate column to
// the target row coordinates. Splines interpolate exactly at the
// knots, so the zero border of a padded grid is reproduced at the
// extremes and resampling a grid to its own size is an identity up to
// rounding. Cubic overshoot can yield small negative values near steep
// gradients; they are returned as-is.
func ResampleGrid(g *mat.Dense, targetRows, targetCols int) (*mat.Dense, error) {
	r, c := g.Dims()
	if r < minLattice || c < minLattice {
		return nil, &InterpolationError{Rows: r, Cols: c}
	}
	if targetRows < 2 || targetCols < 2 {
		return nil, fmt.Errorf("invalid target resolution %dx%d", targetRows, targetCols)
	}

	rowKnots := floats.Span(make([]float64, r), 0, float64(r-1))
	colKnots := floats.Span(make([]float64, c), 0, float64(c-1))
	rowCoords := floats.Span(make([]float64, targetRows), 0, float64(r-1))
	colCoords := floats.Span(make([]float64, targetCols), 0, float64(c-1))

	// Pass 1: resample every original row onto the target column
	// coordinates.
	horiz := mat.NewDense(r, targetCols, nil)
	var spline interp.NaturalCubic
	for i := 0; i < r; i++ {
		if err := spline.Fit(colKnots, g.RawRowView(i)); err != nil {
			return nil, fmt.Errorf("row %d spline fit: %w", i, err)
		}
		for j, x := range colCoords {
			horiz.Set(i, j, spline.Predict(x))
		}
	}

	// Pass 2: resample every intermediate column onto the target row
	// coordinates.
	out := mat.NewDense(targetRows, targetCols, nil)
	col := make([]float64, r)
	for j := 0; j < targetCols; j++ {
		mat.Col(col, j, horiz)
		if err := spline.Fit(rowKnots, col); err != nil {
			return nil, fmt.Errorf("column %d spline fit: %w", j, err)
		}
		for i, y := range rowCoords {
			out.Set(i, j, spline.Predict(y))
		}
	}
	return out, nil
}
