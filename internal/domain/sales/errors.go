package sales

import "errors"

var (
	ErrInvoiceNotFound     = errors.New("invoice not found")
	ErrInvoiceNumberExists = errors.New("invoice number already exists")
	ErrClientNotFound      = errors.New("client not found for invoice")
)
