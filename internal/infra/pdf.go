package infra

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/santosdevelop/Manto/internal/model"
)

// GenerateGalponesPDF renders the galpón listing as an A4 table for the
// operations binder: name, location, status and last maintenance date,
// with alternating row fill.
func GenerateGalponesPDF(galpones []model.Galpon) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(12, 14, 12)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 24

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(contentW, 8, tr("Listado de Galpones"), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, tr(fmt.Sprintf("Generado el %s", time.Now().Format("02/01/2006 15:04"))), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	col1 := contentW * 0.28 // nombre
	col2 := contentW * 0.32 // ubicación
	col3 := contentW * 0.18 // estado
	col4 := contentW * 0.22 // último mantenimiento

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(221, 235, 247)
	pdf.CellFormat(col1, 7, tr("Nombre"), "1", 0, "L", true, 0, "")
	pdf.CellFormat(col2, 7, tr("Ubicación"), "1", 0, "L", true, 0, "")
	pdf.CellFormat(col3, 7, tr("Estado"), "1", 0, "C", true, 0, "")
	pdf.CellFormat(col4, 7, tr("Último Mant."), "1", 1, "C", true, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetFillColor(245, 245, 245)
	for i, g := range galpones {
		ultimo := g.UltimoMantenimiento
		if ultimo == "" {
			ultimo = "-"
		}
		fill := i%2 == 1
		pdf.CellFormat(col1, 6, tr(g.Nombre), "1", 0, "L", fill, 0, "")
		pdf.CellFormat(col2, 6, tr(g.Ubicacion), "1", 0, "L", fill, 0, "")
		pdf.CellFormat(col3, 6, tr(g.Estado), "1", 0, "C", fill, 0, "")
		pdf.CellFormat(col4, 6, tr(ultimo), "1", 1, "C", fill, 0, "")
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.CellFormat(contentW, 5, tr(fmt.Sprintf("Total: %d galpones", len(galpones))), "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: render galpones: %w", err)
	}
	return buf.Bytes(), nil
}
