package sales

import "context"

type InvoiceRepository interface {
	GetByID(ctx context.Context, id int64) (Invoice, error)
	Create(ctx context.Context, inv Invoice) (Invoice, error)
	UpdateHeader(ctx context.Context, req UpdateInvoiceRequest, recalculated *Invoice) error
	ReplaceItems(ctx context.Context, invoiceID int64, items []InvoiceItem) error
	SoftDelete(ctx context.Context, id int64) error
	List(ctx context.Context, filter InvoiceFilter) ([]Invoice, int64, error)
	NumberExists(ctx context.Context, number string) (bool, error)
}

type SalesService interface {
	GetInvoice(ctx context.Context, id int64) (InvoiceResponse, error)
	CreateInvoice(ctx context.Context, req CreateInvoiceRequest) (InvoiceResponse, error)
	UpdateInvoice(ctx context.Context, req UpdateInvoiceRequest) (InvoiceResponse, error)
	DeleteInvoice(ctx context.Context, id int64) error
	ListInvoices(ctx context.Context, filter InvoiceFilter) (ListInvoiceResponse, error)
	// RenderInvoicePDF renders the invoice as a PDF document.
	RenderInvoicePDF(ctx context.Context, id int64) ([]byte, error)
}
