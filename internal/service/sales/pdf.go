package sales

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/staffhive/erp-backend-go/internal/domain/sales"
)

// renderInvoicePDF lays out a single-page A4 invoice: header block, line item
// table, totals box. Long invoices flow to extra pages automatically.
func renderInvoicePDF(inv sales.Invoice) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 12, "INVOICE")
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Invoice No: %s", inv.InvoiceNumber))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Date: %s", inv.InvoiceDate.Format("2006-01-02")))
	pdf.Ln(6)
	if inv.DueDate != nil {
		pdf.Cell(0, 7, fmt.Sprintf("Due Date: %s", inv.DueDate.Format("2006-01-02")))
		pdf.Ln(6)
	}
	if inv.ClientName != nil {
		pdf.Cell(0, 7, fmt.Sprintf("Billed To: %s", *inv.ClientName))
		pdf.Ln(6)
	}
	pdf.Cell(0, 7, fmt.Sprintf("Status: %s", strings.ToUpper(string(inv.Status))))
	pdf.Ln(10)

	// Item table
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(90, 8, "Description", "1", 0, "L", true, 0, "")
	pdf.CellFormat(25, 8, "Qty", "1", 0, "R", true, 0, "")
	pdf.CellFormat(35, 8, "Unit Price", "1", 0, "R", true, 0, "")
	pdf.CellFormat(35, 8, "Amount", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, it := range inv.Items {
		pdf.CellFormat(90, 8, it.Description, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 8, it.Quantity.String(), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 8, it.UnitPrice.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 8, it.Amount.StringFixed(2), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	// Totals
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(150, 7, "Subtotal", "", 0, "R", false, 0, "")
	pdf.CellFormat(35, 7, inv.Subtotal.StringFixed(2), "", 1, "R", false, 0, "")
	pdf.CellFormat(150, 7, fmt.Sprintf("Tax (%s%%)", inv.TaxRate.StringFixed(2)), "", 0, "R", false, 0, "")
	pdf.CellFormat(35, 7, inv.TaxAmount.StringFixed(2), "", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(150, 8, "Total", "", 0, "R", false, 0, "")
	pdf.CellFormat(35, 8, inv.Total.StringFixed(2), "", 1, "R", false, 0, "")

	if inv.Notes != nil && *inv.Notes != "" {
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "I", 9)
		pdf.MultiCell(0, 5, *inv.Notes, "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render invoice pdf: %w", err)
	}
	return buf.Bytes(), nil
}
