package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/staffhive/erp-backend-go/internal/domain/sales"
	"github.com/staffhive/erp-backend-go/internal/handler/http/response"
	"github.com/staffhive/erp-backend-go/internal/pkg/validator"
)

type SalesHandler interface {
	GetInvoice(w http.ResponseWriter, r *http.Request)
	CreateInvoice(w http.ResponseWriter, r *http.Request)
	UpdateInvoice(w http.ResponseWriter, r *http.Request)
	DeleteInvoice(w http.ResponseWriter, r *http.Request)
	ListInvoices(w http.ResponseWriter, r *http.Request)
	DownloadInvoicePDF(w http.ResponseWriter, r *http.Request)
}

type salesHandlerImpl struct {
	salesService sales.SalesService
}

func NewSalesHandler(salesService sales.SalesService) SalesHandler {
	return &salesHandlerImpl{salesService: salesService}
}

func (h *salesHandlerImpl) GetInvoice(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Invoice ID must be numeric")
		return
	}

	result, err := h.salesService.GetInvoice(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *salesHandlerImpl) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	var req sales.CreateInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	result, err := h.salesService.CreateInvoice(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Invoice created successfully", result)
}

func (h *salesHandlerImpl) UpdateInvoice(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Invoice ID must be numeric")
		return
	}

	var req sales.UpdateInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	req.ID = id

	result, err := h.salesService.UpdateInvoice(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Invoice updated successfully", result)
}

func (h *salesHandlerImpl) DeleteInvoice(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Invoice ID must be numeric")
		return
	}

	if err := h.salesService.DeleteInvoice(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Invoice deleted successfully", nil)
}

func (h *salesHandlerImpl) ListInvoices(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := sales.InvoiceFilter{Search: q.Get("search")}
	filter.Page, _ = strconv.Atoi(q.Get("page"))
	filter.Limit, _ = strconv.Atoi(q.Get("limit"))
	if v := q.Get("client_id"); v != "" {
		id, ok := validator.ParseID(v)
		if !ok {
			response.BadRequest(w, "client_id must be numeric")
			return
		}
		filter.ClientID = &id
	}
	if v := q.Get("status"); v != "" {
		status := sales.InvoiceStatus(v)
		if !status.Valid() {
			response.BadRequest(w, "Unknown invoice status")
			return
		}
		filter.Status = &status
	}

	result, err := h.salesService.ListInvoices(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMeta(w, result.Invoices, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalItems,
		TotalPages: result.TotalPages,
	})
}

func (h *salesHandlerImpl) DownloadInvoicePDF(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Invoice ID must be numeric")
		return
	}

	pdf, err := h.salesService.RenderInvoicePDF(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="invoice-%d.pdf"`, id))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}
