package invoice

import (
	"fmt"
	"io"

	"hotel/internal/domain"

	"github.com/phpdave11/gofpdf"
)

// RenderPDF writes an A4 invoice. The core fonts are cp1252, so text goes
// through the translator to keep Spanish accents.
func RenderPDF(w io.Writer, inv *domain.Invoice, settings Settings) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(inv.Number, true)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, tr(settings.HotelName))
	pdf.Ln(8)
	if settings.HotelTaxID != "" {
		pdf.SetFont("Arial", "", 10)
		pdf.Cell(0, 6, tr("NIT: "+settings.HotelTaxID))
		pdf.Ln(6)
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, tr("Factura "+inv.Number))
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 7, tr("Fecha de emisión: "+inv.IssuedAt.Format("02/01/2006 15:04")))
	pdf.Ln(7)
	if p := inv.Payment; p != nil {
		pdf.Cell(0, 7, tr(fmt.Sprintf("Pago #%d (%s)", p.ID, p.Method)))
		pdf.Ln(7)
		if res := p.Reservation; res != nil {
			pdf.Cell(0, 7, tr(fmt.Sprintf("Reserva #%d", res.ID)))
			pdf.Ln(7)
			if res.User != nil {
				pdf.Cell(0, 7, tr(fmt.Sprintf("Cliente: %s (%s)", res.User.Name, res.User.Email)))
				pdf.Ln(7)
			}
		}
	}

	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 11)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(100, 8, tr("Descripción"), "1", 0, "L", true, 0, "")
	pdf.CellFormat(20, 8, "Cant.", "1", 0, "C", true, 0, "")
	pdf.CellFormat(35, 8, "P. unitario", "1", 0, "R", true, 0, "")
	pdf.CellFormat(35, 8, "Total", "1", 1, "R", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, it := range inv.Items {
		pdf.CellFormat(100, 8, tr(it.Description), "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 8, fmt.Sprintf("%d", it.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(35, 8, money(it.UnitPrice), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 8, money(it.Total), "1", 1, "R", false, 0, "")
	}

	pdf.Ln(4)
	totals := []struct {
		label string
		value float64
	}{
		{"Subtotal", inv.Subtotal},
		{fmt.Sprintf("Impuesto (%.0f%%)", settings.TaxRate*100), inv.Tax},
		{"Total", inv.Total},
	}
	for i, row := range totals {
		if i == len(totals)-1 {
			pdf.SetFont("Arial", "B", 11)
		}
		pdf.CellFormat(155, 8, tr(row.label), "", 0, "R", false, 0, "")
		pdf.CellFormat(35, 8, money(row.value), "1", 1, "R", false, 0, "")
	}

	return pdf.Output(w)
}

func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}
