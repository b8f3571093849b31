package sales

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffhive/erp-backend-go/internal/domain/sales"
)

func TestRenderInvoicePDF(t *testing.T) {
	clientName := "Acme Logistics Pvt Ltd"
	notes := "Payment due within 30 days of the invoice date."
	due := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	inv := sales.Invoice{
		ID:            42,
		InvoiceNumber: "INV-2026-0042",
		InvoiceDate:   time.Date(2026, 2, 13, 0, 0, 0, 0, time.UTC),
		DueDate:       &due,
		Status:        sales.InvoiceStatusSent,
		ClientName:    &clientName,
		Notes:         &notes,
		TaxRate:       decimal.NewFromInt(18),
		Items: []sales.InvoiceItem{
			{Description: "Consulting hours", Quantity: decimal.NewFromInt(40), UnitPrice: decimal.NewFromInt(120)},
			{Description: "On-site support", Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(950)},
		},
	}
	inv.Recalculate()

	data, err := renderInvoicePDF(inv)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestRenderInvoicePDFMinimalInvoice(t *testing.T) {
	inv := sales.Invoice{
		InvoiceNumber: "INV-2026-0001",
		InvoiceDate:   time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
		Status:        sales.InvoiceStatusDraft,
	}
	inv.Recalculate()

	data, err := renderInvoicePDF(inv)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))
}
