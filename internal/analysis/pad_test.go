package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func constGrid(r, c int, v float64) *mat.Dense {
	g := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			g.Set(i, j, v)
		}
	}
	return g
}

func TestPadGrid(t *testing.T) {
	g := constGrid(41, 19, 5.0)
	padded := PadGrid(g)

	r, c := padded.Dims()
	require.Equal(t, 43, r)
	require.Equal(t, 20, c)

	// Zero border on top, bottom and left; no right-side pad.
	for j := 0; j < c; j++ {
		assert.Zero(t, padded.At(0, j))
		assert.Zero(t, padded.At(r-1, j))
	}
	for i := 0; i < r; i++ {
		assert.Zero(t, padded.At(i, 0))
	}
	for i := 1; i < r-1; i++ {
		assert.Equal(t, 5.0, padded.At(i, c-1))
	}

	// Interior untouched.
	for i := 1; i < r-1; i++ {
		for j := 1; j < c; j++ {
			assert.Equal(t, 5.0, padded.At(i, j))
		}
	}
}

func TestPadGridAlwaysGrows(t *testing.T) {
	// Padding never deduplicates: an already zero-bordered grid gains
	// a second border.
	g := PadGrid(constGrid(3, 3, 1.0))
	again := PadGrid(g)

	r, c := again.Dims()
	assert.Equal(t, 7, r)
	assert.Equal(t, 5, c)
	for j := 0; j < c; j++ {
		assert.Zero(t, again.At(0, j))
		assert.Zero(t, again.At(1, j))
	}
}

func TestPadGridSingleCell(t *testing.T) {
	padded := PadGrid(constGrid(1, 1, 2.5))
	r, c := padded.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 2, c)
	assert.Equal(t, 2.5, padded.At(1, 1))
}
