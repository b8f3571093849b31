package sales

import (
	"time"

	"github.com/shopspring/decimal"
)

type Invoice struct {
	ID            int64
	ClientID      int64
	InvoiceNumber string
	InvoiceDate   time.Time
	DueDate       *time.Time
	Status        InvoiceStatus
	Notes         *string
	Subtotal      decimal.Decimal
	TaxRate       decimal.Decimal
	TaxAmount     decimal.Decimal
	Total         decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time

	// Resolved for responses
	ClientName *string
	Items      []InvoiceItem
}

type InvoiceItem struct {
	ID          int64
	InvoiceID   int64
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	Amount      decimal.Decimal
}

type InvoiceStatus string

const (
	InvoiceStatusDraft InvoiceStatus = "draft"
	InvoiceStatusSent  InvoiceStatus = "sent"
	InvoiceStatusPaid  InvoiceStatus = "paid"
	InvoiceStatusVoid  InvoiceStatus = "void"
)

func (s InvoiceStatus) Valid() bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusPaid, InvoiceStatusVoid:
		return true
	}
	return false
}

// Recalculate recomputes item amounts and invoice totals from quantities,
// unit prices and the tax rate.
func (inv *Invoice) Recalculate() {
	subtotal := decimal.Zero
	for i := range inv.Items {
		inv.Items[i].Amount = inv.Items[i].Quantity.Mul(inv.Items[i].UnitPrice)
		subtotal = subtotal.Add(inv.Items[i].Amount)
	}
	inv.Subtotal = subtotal
	inv.TaxAmount = subtotal.Mul(inv.TaxRate).Div(decimal.NewFromInt(100)).Round(2)
	inv.Total = inv.Subtotal.Add(inv.TaxAmount)
}
