package analysis

import "gonum.org/v1/gonum/mat"

// AggregateMean computes the element-wise arithmetic mean of grids.
// All grids must share the dimensions of the first; the input order
// fixes the summation order, so the result is deterministic for a
// given batch up to floating-point rounding.
func AggregateMean(grids []*mat.Dense) (*mat.Dense, error) {
	if len(grids) == 0 {
		return nil, ErrEmptyInput
	}
	r, c := grids[0].Dims()
	sum := mat.NewDense(r, c, nil)
	for _, g := range grids {
		gr, gc := g.Dims()
		if gr != r || gc != c {
			return nil, &DimensionMismatchError{
				WantRows: r, WantCols: c,
				GotRows: gr, GotCols: gc,
			}
		}
		sum.Add(sum, g)
	}
	sum.Scale(1/float64(len(grids)), sum)
	return sum, nil
}
