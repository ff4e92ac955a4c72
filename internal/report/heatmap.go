package report

import (
	"bytes"
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ColorThreshold maps pressures at or above Pressure (up to the next
// breakpoint) to one display color.
type ColorThreshold struct {
	Pressure float64 // N/cm²
	Color    color.Color
}

// ColorThresholdTable is an ordered sequence of breakpoints defining a
// piecewise-constant pressure-to-color mapping. Pressures below the
// first breakpoint render as the page background (white), so the
// zero-padded border of the mean grid disappears into the page.
type ColorThresholdTable []ColorThreshold

// DefaultPressureColors is the standard plantar-pressure scale, white
// through blue/green/yellow to dark red, in N/cm².
var DefaultPressureColors = ColorThresholdTable{
	{0.05, color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 255}}, // blue
	{2.0, color.RGBA{R: 0x17, G: 0xbe, B: 0xcf, A: 255}},  // cyan
	{4.0, color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 255}},  // green
	{6.0, color.RGBA{R: 0xbc, G: 0xbd, B: 0x22, A: 255}},  // yellow-green
	{8.0, color.RGBA{R: 0xff, G: 0xdd, B: 0x00, A: 255}},  // yellow
	{10.0, color.RGBA{R: 0xff, G: 0xa5, B: 0x00, A: 255}}, // orange
	{12.5, color.RGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 255}}, // dark orange
	{15.0, color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 255}}, // red
	{20.0, color.RGBA{R: 0x8b, G: 0x00, B: 0x00, A: 255}}, // dark red
}

var underColor = color.White

// At returns the color for a pressure value: the color of the highest
// breakpoint not exceeding z, or white below the first breakpoint.
// Values above the last breakpoint keep the last color.
func (t ColorThresholdTable) At(z float64) color.Color {
	if math.IsNaN(z) || len(t) == 0 || z < t[0].Pressure {
		return underColor
	}
	c := t[0].Color
	for _, bp := range t[1:] {
		if z < bp.Pressure {
			break
		}
		c = bp.Color
	}
	return c
}

// bandPalette is a discrete palette sampled from a threshold table.
type bandPalette []color.Color

func (p bandPalette) Colors() []color.Color { return p }

// samplePalette discretizes the table over [min, max] into n colors so
// that gonum/plot's linear palette lookup reproduces the
// piecewise-constant bands to within (max-min)/n.
func (t ColorThresholdTable) samplePalette(n int, min, max float64) palette.Palette {
	colors := make(bandPalette, n)
	for i := range colors {
		z := min + (float64(i)+0.5)/float64(n)*(max-min)
		colors[i] = t.At(z)
	}
	return colors
}

// matGrid adapts a mat.Dense to plotter.GridXYZ. Matrix row 0 maps to
// the top of the plot so the heatmap shows the mat in sensor order.
type matGrid struct {
	m *mat.Dense
}

func (g matGrid) Dims() (c, r int) {
	rr, cc := g.m.Dims()
	return cc, rr
}

func (g matGrid) Z(c, r int) float64 {
	rows, _ := g.m.Dims()
	return g.m.At(rows-1-r, c)
}

func (g matGrid) X(c int) float64 { return float64(c) }
func (g matGrid) Y(r int) float64 { return float64(r) }

// RenderMeanHeatmap draws the mean pressure grid as a PNG heatmap
// using the given threshold table and returns the encoded image.
func RenderMeanHeatmap(mean *mat.Dense, table ColorThresholdTable) ([]byte, error) {
	if mean == nil {
		return nil, fmt.Errorf("no mean grid to render")
	}
	if len(table) == 0 {
		return nil, fmt.Errorf("empty color threshold table")
	}

	p := plot.New()
	p.Title.Text = "Mean Plantar Pressure"
	p.X.Label.Text = "Mediolateral (cells)"
	p.Y.Label.Text = "Anteroposterior (cells)"

	// The palette range must cover cubic undershoot below zero and any
	// peak above the last breakpoint, or HeatMap would leave those
	// cells undrawn.
	lo := math.Min(0, mat.Min(mean))
	hi := math.Max(table[len(table)-1].Pressure, mat.Max(mean))

	hm := plotter.NewHeatMap(matGrid{m: mean}, table.samplePalette(256, lo, hi))
	hm.Min = lo
	hm.Max = hi
	p.Add(hm)

	rows, cols := mean.Dims()
	width := vg.Points(120 + 2.5*float64(cols))
	height := vg.Points(120 + 2.5*float64(rows))
	writer, err := p.WriterTo(width, height, "png")
	if err != nil {
		return nil, fmt.Errorf("failed to create heatmap writer: %v", err)
	}
	buf := new(bytes.Buffer)
	if _, err := writer.WriteTo(buf); err != nil {
		return nil, fmt.Errorf("failed to write heatmap to buffer: %v", err)
	}
	return buf.Bytes(), nil
}
