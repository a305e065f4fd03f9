package document

import (
	"alcyxob/workout-planner/internal/domain"
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
)

const fontFamily = "Helvetica"

// pdfMeasurer measures with the core font metrics of the document being
// drawn, so page-break estimates match what is rendered.
type pdfMeasurer struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

func (m pdfMeasurer) TextWidth(text string, font Font) float64 {
	m.pdf.SetFont(fontFamily, font.Style, font.Size)
	return m.pdf.GetStringWidth(m.tr(text))
}

func newPDF(ref time.Time) (*fpdf.Fpdf, pdfMeasurer) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(Margin, Margin, Margin)
	pdf.SetCreationDate(ref)
	pdf.SetModificationDate(ref)
	pdf.SetCatalogSort(true)
	pdf.SetTitle("Plano de Treino Personalizado", true)
	// Core fonts are cp1252; accented Portuguese text must be translated.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	return pdf, pdfMeasurer{pdf: pdf, tr: tr}
}

// RenderPDF lays the plan out and renders it as an A4 PDF.
func RenderPDF(plan domain.WorkoutPlan, profile domain.UserProfile, ref time.Time) ([]byte, error) {
	pdf, m := newPDF(ref)
	layout, err := BuildLayout(plan, profile, ref, m)
	if err != nil {
		return nil, err
	}
	draw(pdf, m, layout)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func draw(pdf *fpdf.Fpdf, m pdfMeasurer, layout Layout) {
	for _, page := range layout.Pages {
		pdf.AddPage()
		for _, l := range page.Lines {
			pdf.SetFont(fontFamily, l.Font.Style, l.Font.Size)
			pdf.Text(l.X, l.Y, m.tr(l.Text))
		}
	}
}
