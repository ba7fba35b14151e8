package adapters

import (
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// PDFRenderer lays CSA text out as a printable A4 sheet in a monospace font.
type PDFRenderer struct {
	FontSize   float64
	LineHeight float64
}

func NewPDFRenderer() PDFRenderer {
	return PDFRenderer{FontSize: 10, LineHeight: 4.5}
}

func (p PDFRenderer) Render(w io.Writer, title string, csaText string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(title, true)
	pdf.AddPage()

	pdf.SetFont("Courier", "B", p.FontSize+2)
	pdf.Cell(40, 10, tr(title))
	pdf.Ln(10)

	pdf.SetFont("Courier", "", p.FontSize)
	for _, line := range strings.Split(strings.TrimSuffix(csaText, "\n"), "\n") {
		pdf.MultiCell(0, p.LineHeight, tr(line), "", "L", false)
	}

	return pdf.Output(w)
}
