package analysis

import "gonum.org/v1/gonum/mat"

// PadGrid surrounds a raw grid with a zero border on three sides: one
// row above, one row below, one column on the left. The right edge is
// left unpadded on purpose — it matches the physical orientation of
// the sensor mat, where the rightmost column already sits at the mat
// boundary. Padding always grows the grid, even when the existing
// border is zero.
func PadGrid(g *mat.Dense) *mat.Dense {
	r, c := g.Dims()
	padded := mat.NewDense(r+2, c+1, nil)
	padded.Slice(1, r+1, 1, c+1).(*mat.Dense).Copy(g)
	return padded
}
