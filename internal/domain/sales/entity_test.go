package sales

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestRecalculate(t *testing.T) {
	inv := Invoice{
		TaxRate: dec("18"),
		Items: []InvoiceItem{
			{Quantity: dec("2"), UnitPrice: dec("1500.00")},
			{Quantity: dec("0.5"), UnitPrice: dec("800")},
		},
	}

	inv.Recalculate()

	assert.True(t, inv.Items[0].Amount.Equal(dec("3000")))
	assert.True(t, inv.Items[1].Amount.Equal(dec("400")))
	assert.True(t, inv.Subtotal.Equal(dec("3400")))
	assert.True(t, inv.TaxAmount.Equal(dec("612")))
	assert.True(t, inv.Total.Equal(dec("4012")))
}

func TestRecalculateRoundsTax(t *testing.T) {
	inv := Invoice{
		TaxRate: dec("12.5"),
		Items:   []InvoiceItem{{Quantity: dec("1"), UnitPrice: dec("99.99")}},
	}

	inv.Recalculate()

	// 99.99 * 12.5% = 12.49875, rounded to 12.50.
	assert.True(t, inv.TaxAmount.Equal(dec("12.50")))
	assert.True(t, inv.Total.Equal(dec("112.49")))
}

func TestRecalculateNoItems(t *testing.T) {
	inv := Invoice{TaxRate: dec("18")}
	inv.Recalculate()

	assert.True(t, inv.Subtotal.IsZero())
	assert.True(t, inv.Total.IsZero())
}

func TestInvoiceStatusValid(t *testing.T) {
	for _, s := range []InvoiceStatus{InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusPaid, InvoiceStatusVoid} {
		assert.True(t, s.Valid())
	}
	assert.False(t, InvoiceStatus("overdue").Valid())
}
