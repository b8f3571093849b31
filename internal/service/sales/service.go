package sales

import (
	"context"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/staffhive/erp-backend-go/internal/domain/audit"
	"github.com/staffhive/erp-backend-go/internal/domain/client"
	"github.com/staffhive/erp-backend-go/internal/domain/sales"
	"github.com/staffhive/erp-backend-go/internal/pkg/database"
	"github.com/staffhive/erp-backend-go/internal/repository/postgresql"
)

type SalesServiceImpl struct {
	db          *database.DB
	invoiceRepo sales.InvoiceRepository
	clientRepo  client.ClientRepository
	auditor     audit.Recorder
}

func NewSalesService(
	db *database.DB,
	invoiceRepo sales.InvoiceRepository,
	clientRepo client.ClientRepository,
	auditor audit.Recorder,
) sales.SalesService {
	return &SalesServiceImpl{
		db:          db,
		invoiceRepo: invoiceRepo,
		clientRepo:  clientRepo,
		auditor:     auditor,
	}
}

func mapInvoiceToResponse(inv sales.Invoice) sales.InvoiceResponse {
	resp := sales.InvoiceResponse{
		ID:            inv.ID,
		ClientID:      inv.ClientID,
		ClientName:    inv.ClientName,
		InvoiceNumber: inv.InvoiceNumber,
		InvoiceDate:   inv.InvoiceDate.Format("2006-01-02"),
		Status:        string(inv.Status),
		Notes:         inv.Notes,
		Subtotal:      inv.Subtotal.StringFixed(2),
		TaxRate:       inv.TaxRate.StringFixed(2),
		TaxAmount:     inv.TaxAmount.StringFixed(2),
		Total:         inv.Total.StringFixed(2),
		Items:         []sales.InvoiceItemResponse{},
		CreatedAt:     inv.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     inv.UpdatedAt.Format(time.RFC3339),
	}
	if inv.DueDate != nil {
		s := inv.DueDate.Format("2006-01-02")
		resp.DueDate = &s
	}
	for _, it := range inv.Items {
		resp.Items = append(resp.Items, sales.InvoiceItemResponse{
			ID:          it.ID,
			Description: it.Description,
			Quantity:    it.Quantity.String(),
			UnitPrice:   it.UnitPrice.StringFixed(2),
			Amount:      it.Amount.StringFixed(2),
		})
	}
	return resp
}

func parseItems(inputs []sales.InvoiceItemInput) []sales.InvoiceItem {
	items := make([]sales.InvoiceItem, 0, len(inputs))
	for _, in := range inputs {
		qty, _ := decimal.NewFromString(in.Quantity)
		price, _ := decimal.NewFromString(in.UnitPrice)
		items = append(items, sales.InvoiceItem{
			Description: in.Description,
			Quantity:    qty,
			UnitPrice:   price,
		})
	}
	return items
}

func (s *SalesServiceImpl) GetInvoice(ctx context.Context, id int64) (sales.InvoiceResponse, error) {
	inv, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return sales.InvoiceResponse{}, err
	}
	return mapInvoiceToResponse(inv), nil
}

func (s *SalesServiceImpl) CreateInvoice(ctx context.Context, req sales.CreateInvoiceRequest) (sales.InvoiceResponse, error) {
	if err := req.Validate(); err != nil {
		return sales.InvoiceResponse{}, err
	}

	if _, err := s.clientRepo.GetByID(ctx, req.ClientID); err != nil {
		return sales.InvoiceResponse{}, sales.ErrClientNotFound
	}
	exists, err := s.invoiceRepo.NumberExists(ctx, req.InvoiceNumber)
	if err != nil {
		return sales.InvoiceResponse{}, err
	}
	if exists {
		return sales.InvoiceResponse{}, sales.ErrInvoiceNumberExists
	}

	invoiceDate, _ := time.Parse("2006-01-02", req.InvoiceDate)
	inv := sales.Invoice{
		ClientID:      req.ClientID,
		InvoiceNumber: req.InvoiceNumber,
		InvoiceDate:   invoiceDate,
		Status:        sales.InvoiceStatusDraft,
		Notes:         req.Notes,
		Items:         parseItems(req.Items),
	}
	if req.DueDate != nil && *req.DueDate != "" {
		if t, err := time.Parse("2006-01-02", *req.DueDate); err == nil {
			inv.DueDate = &t
		}
	}
	if req.TaxRate != nil && *req.TaxRate != "" {
		inv.TaxRate, _ = decimal.NewFromString(*req.TaxRate)
	}
	inv.Recalculate()

	var created sales.Invoice
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		created, err = s.invoiceRepo.Create(txCtx, inv)
		return err
	})
	if err != nil {
		return sales.InvoiceResponse{}, err
	}

	s.auditor.Record(ctx, "sales_invoice", created.ID, audit.ActionCreate, map[string]interface{}{
		"invoice_number": created.InvoiceNumber,
		"total":          created.Total.StringFixed(2),
	})

	return s.GetInvoice(ctx, created.ID)
}

func (s *SalesServiceImpl) UpdateInvoice(ctx context.Context, req sales.UpdateInvoiceRequest) (sales.InvoiceResponse, error) {
	if err := req.Validate(); err != nil {
		return sales.InvoiceResponse{}, err
	}

	inv, err := s.invoiceRepo.GetByID(ctx, req.ID)
	if err != nil {
		return sales.InvoiceResponse{}, err
	}

	if req.ClientID != nil {
		if _, err := s.clientRepo.GetByID(ctx, *req.ClientID); err != nil {
			return sales.InvoiceResponse{}, sales.ErrClientNotFound
		}
	}

	// Recompute totals whenever items or the tax rate change.
	recalc := inv
	changed := false
	if req.Items != nil {
		recalc.Items = parseItems(req.Items)
		changed = true
	}
	if req.TaxRate != nil && *req.TaxRate != "" {
		if rate, err := decimal.NewFromString(*req.TaxRate); err == nil {
			recalc.TaxRate = rate
			changed = true
		}
	}
	var recalculated *sales.Invoice
	if changed {
		recalc.Recalculate()
		recalculated = &recalc
	}

	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.invoiceRepo.UpdateHeader(txCtx, req, recalculated); err != nil {
			return err
		}
		if req.Items != nil {
			return s.invoiceRepo.ReplaceItems(txCtx, req.ID, recalc.Items)
		}
		return nil
	})
	if err != nil {
		return sales.InvoiceResponse{}, err
	}

	action := audit.ActionUpdate
	if req.Status != nil {
		action = audit.ActionStatusChange
	}
	s.auditor.Record(ctx, "sales_invoice", req.ID, action, nil)

	return s.GetInvoice(ctx, req.ID)
}

func (s *SalesServiceImpl) DeleteInvoice(ctx context.Context, id int64) error {
	if err := s.invoiceRepo.SoftDelete(ctx, id); err != nil {
		return err
	}
	s.auditor.Record(ctx, "sales_invoice", id, audit.ActionDelete, nil)
	return nil
}

func (s *SalesServiceImpl) ListInvoices(ctx context.Context, filter sales.InvoiceFilter) (sales.ListInvoiceResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 10
	}

	invoices, total, err := s.invoiceRepo.List(ctx, filter)
	if err != nil {
		return sales.ListInvoiceResponse{}, err
	}

	resp := sales.ListInvoiceResponse{
		Invoices:   []sales.InvoiceResponse{},
		TotalItems: total,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		Page:       filter.Page,
		Limit:      filter.Limit,
	}
	for _, inv := range invoices {
		resp.Invoices = append(resp.Invoices, mapInvoiceToResponse(inv))
	}
	return resp, nil
}

func (s *SalesServiceImpl) RenderInvoicePDF(ctx context.Context, id int64) ([]byte, error) {
	inv, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return renderInvoicePDF(inv)
}
