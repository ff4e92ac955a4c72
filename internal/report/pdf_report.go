package report

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"
	"github.com/user/footscan_analyzer_go/internal/analysis"
	"gonum.org/v1/gonum/mat"
)

const (
	pdfPageWidth  = 210.0 // A4 portrait, mm
	pdfPageHeight = 297.0
	pdfMargin     = 12.7
	pdfContent    = pdfPageWidth - 2*pdfMargin
)

// pdfStyler holds reusable styling and flowing-Y state for the report.
type pdfStyler struct {
	pdf        *gofpdf.Fpdf
	styles     map[string]func()
	lineHeight float64
	currentY   float64
	pageBottom float64
}

func newPDFStyler(pdf *gofpdf.Fpdf) *pdfStyler {
	s := &pdfStyler{
		pdf:        pdf,
		styles:     make(map[string]func()),
		lineHeight: 6,
		currentY:   pdfMargin,
		pageBottom: pdfPageHeight - pdfMargin,
	}
	s.styles["h1"] = func() {
		s.pdf.SetFont("Arial", "B", 16)
		s.pdf.SetTextColor(0, 0, 0)
	}
	s.styles["h2"] = func() {
		s.pdf.SetFont("Arial", "B", 13)
		s.pdf.SetTextColor(0, 0, 0)
	}
	s.styles["normal"] = func() {
		s.pdf.SetFont("Arial", "", 10)
		s.pdf.SetTextColor(0, 0, 0)
	}
	s.styles["tableHeader"] = func() {
		s.pdf.SetFont("Arial", "B", 9)
		s.pdf.SetFillColor(200, 200, 200)
		s.pdf.SetTextColor(0, 0, 0)
	}
	s.styles["tableCell"] = func() {
		s.pdf.SetFont("Arial", "", 9)
		s.pdf.SetTextColor(50, 50, 50)
	}
	return s
}

func (s *pdfStyler) applyStyle(name string) {
	if fn, ok := s.styles[name]; ok {
		fn()
	} else {
		s.styles["normal"]()
	}
}

func (s *pdfStyler) checkAddPage(neededHeight float64) {
	if s.currentY+neededHeight > s.pageBottom {
		s.pdf.AddPage()
		s.currentY = pdfMargin
	}
}

func (s *pdfStyler) writeParagraph(text, style, align string) {
	s.applyStyle(style)
	s.checkAddPage(s.lineHeight)
	s.pdf.SetXY(pdfMargin, s.currentY)
	s.pdf.MultiCell(pdfContent, s.lineHeight, text, "", align, false)
	s.currentY = s.pdf.GetY() + 1
}

func (s *pdfStyler) addSpacer(height float64) {
	s.currentY += height
}

func (s *pdfStyler) addTable(headers []string, widthsRel []float64, rows [][]string) {
	widths := make([]float64, len(widthsRel))
	for i, rel := range widthsRel {
		widths[i] = rel * pdfContent
	}

	s.checkAddPage(s.lineHeight * 2)
	x := pdfMargin
	s.applyStyle("tableHeader")
	for i, h := range headers {
		s.pdf.SetXY(x, s.currentY)
		s.pdf.CellFormat(widths[i], s.lineHeight, h, "1", 0, "C", true, 0, "")
		x += widths[i]
	}
	s.currentY += s.lineHeight

	s.applyStyle("tableCell")
	for _, row := range rows {
		s.checkAddPage(s.lineHeight)
		x = pdfMargin
		for i, cell := range row {
			s.pdf.SetXY(x, s.currentY)
			align := "C"
			if i == 0 {
				align = "L"
			}
			s.pdf.CellFormat(widths[i], s.lineHeight, cell, "1", 0, align, false, 0, "")
			x += widths[i]
		}
		s.currentY += s.lineHeight
	}
}

func (s *pdfStyler) addImage(imageBytes []byte, name string, width, height float64) {
	s.pdf.RegisterImageReader(name, "PNG", bytes.NewReader(imageBytes))
	if width > pdfContent {
		height *= pdfContent / width
		width = pdfContent
	}
	s.checkAddPage(height)
	x := pdfMargin + (pdfContent-width)/2
	s.pdf.Image(name, x, s.currentY, width, height, false, "PNG", 0, "")
	s.currentY += height + 2
}

// BuildPDFReport writes the batch report: run summary, per-trial
// table and the rendered mean-pressure heatmap.
func BuildPDFReport(path string, batch *analysis.TrialSet, mean *mat.Dense, heatmapPNG []byte) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.AddPage()

	styler := newPDFStyler(pdf)
	styler.writeParagraph("Plantar Pressure Batch Report", "h1", "C")
	styler.addSpacer(3)

	if batch == nil || batch.Len() == 0 {
		styler.writeParagraph("No trials were processed.", "normal", "L")
		return pdf.OutputFileAndClose(path)
	}

	rows, cols := mean.Dims()
	styler.writeParagraph(fmt.Sprintf(
		"Trials averaged: %d. Target resolution: %d x %d. "+
			"Mean-grid peak pressure: %.2f N/cm2.",
		batch.Len(), rows, cols, mat.Max(mean)), "normal", "L")
	styler.addSpacer(3)

	styler.writeParagraph("Trials", "h2", "L")
	tableRows := make([][]string, 0, len(batch.Trials))
	for _, t := range batch.Trials {
		tableRows = append(tableRows, []string{
			filepath.Base(t.Path),
			fmt.Sprintf("%d x %d", t.RawRows, t.RawCols),
			fmt.Sprintf("%.2f", t.PeakRaw),
		})
	}
	styler.addTable(
		[]string{"File", "Raw Grid", "Peak (N/cm2)"},
		[]float64{0.55, 0.2, 0.25},
		tableRows)
	styler.addSpacer(5)

	styler.writeParagraph("Mean Pressure Heatmap", "h2", "L")
	if len(heatmapPNG) > 0 {
		imgWidth := pdfContent * 0.55
		imgHeight := imgWidth * float64(rows) / float64(cols)
		styler.addImage(heatmapPNG, "mean_heatmap", imgWidth, imgHeight)
	} else {
		styler.writeParagraph("Heatmap not available.", "normal", "L")
	}

	return pdf.OutputFileAndClose(path)
}
