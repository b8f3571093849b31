package sales

import (
	"github.com/shopspring/decimal"

	"github.com/staffhive/erp-backend-go/internal/pkg/validator"
)

type InvoiceItemInput struct {
	Description string `json:"description"`
	Quantity    string `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
}

type CreateInvoiceRequest struct {
	ClientID      int64              `json:"client_id"`
	InvoiceNumber string             `json:"invoice_number"`
	InvoiceDate   string             `json:"invoice_date"`
	DueDate       *string            `json:"due_date,omitempty"`
	TaxRate       *string            `json:"tax_rate,omitempty"`
	Notes         *string            `json:"notes,omitempty"`
	Items         []InvoiceItemInput `json:"items"`
}

func (r CreateInvoiceRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.ClientID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "client_id", Message: "Client is required"})
	}
	if validator.IsEmpty(r.InvoiceNumber) {
		errs = append(errs, validator.ValidationError{Field: "invoice_number", Message: "Invoice number is required"})
	} else if !validator.IsValidInvoiceNumber(r.InvoiceNumber) {
		errs = append(errs, validator.ValidationError{Field: "invoice_number", Message: "Invalid invoice number format"})
	}
	if _, ok := validator.IsValidDate(r.InvoiceDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "invoice_date", Message: "Date must be YYYY-MM-DD"})
	}
	if r.DueDate != nil && *r.DueDate != "" {
		if _, ok := validator.IsValidDate(*r.DueDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "due_date", Message: "Date must be YYYY-MM-DD"})
		}
	}
	if len(r.Items) == 0 {
		errs = append(errs, validator.ValidationError{Field: "items", Message: "At least one line item is required"})
	}
	for _, item := range r.Items {
		if validator.IsEmpty(item.Description) {
			errs = append(errs, validator.ValidationError{Field: "items", Message: "Line item description is required"})
			break
		}
		if _, err := decimal.NewFromString(item.Quantity); err != nil {
			errs = append(errs, validator.ValidationError{Field: "items", Message: "Line item quantity must be numeric"})
			break
		}
		if _, err := decimal.NewFromString(item.UnitPrice); err != nil {
			errs = append(errs, validator.ValidationError{Field: "items", Message: "Line item unit price must be numeric"})
			break
		}
	}
	if r.TaxRate != nil && *r.TaxRate != "" {
		if _, err := decimal.NewFromString(*r.TaxRate); err != nil {
			errs = append(errs, validator.ValidationError{Field: "tax_rate", Message: "Tax rate must be numeric"})
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateInvoiceRequest patches invoice header fields. Line items are
// replaced wholesale when present: invoices are small documents and partial
// item reconciliation is not worth the ambiguity.
type UpdateInvoiceRequest struct {
	ID          int64              `json:"-"`
	ClientID    *int64             `json:"client_id,omitempty"`
	InvoiceDate *string            `json:"invoice_date,omitempty"`
	DueDate     *string            `json:"due_date,omitempty"`
	Status      *string            `json:"status,omitempty"`
	TaxRate     *string            `json:"tax_rate,omitempty"`
	Notes       *string            `json:"notes,omitempty"`
	Items       []InvoiceItemInput `json:"items,omitempty"`
}

func (r UpdateInvoiceRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.Status != nil && !InvoiceStatus(*r.Status).Valid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "Unknown invoice status"})
	}
	if r.InvoiceDate != nil && *r.InvoiceDate != "" {
		if _, ok := validator.IsValidDate(*r.InvoiceDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "invoice_date", Message: "Date must be YYYY-MM-DD"})
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type InvoiceFilter struct {
	Page     int
	Limit    int
	Search   string
	ClientID *int64
	Status   *InvoiceStatus
}

type InvoiceItemResponse struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
	Quantity    string `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	Amount      string `json:"amount"`
}

type InvoiceResponse struct {
	ID            int64                 `json:"id"`
	ClientID      int64                 `json:"client_id"`
	ClientName    *string               `json:"client_name,omitempty"`
	InvoiceNumber string                `json:"invoice_number"`
	InvoiceDate   string                `json:"invoice_date"`
	DueDate       *string               `json:"due_date,omitempty"`
	Status        string                `json:"status"`
	Notes         *string               `json:"notes,omitempty"`
	Subtotal      string                `json:"subtotal"`
	TaxRate       string                `json:"tax_rate"`
	TaxAmount     string                `json:"tax_amount"`
	Total         string                `json:"total"`
	Items         []InvoiceItemResponse `json:"items"`
	CreatedAt     string                `json:"created_at"`
	UpdatedAt     string                `json:"updated_at"`
}

type ListInvoiceResponse struct {
	Invoices   []InvoiceResponse `json:"invoices"`
	TotalItems int64             `json:"total_items"`
	TotalPages int               `json:"total_pages"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
}
