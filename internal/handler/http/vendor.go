package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/staffhive/erp-backend-go/internal/domain/vendor"
	"github.com/staffhive/erp-backend-go/internal/handler/http/response"
)

type VendorHandler interface {
	GetVendor(w http.ResponseWriter, r *http.Request)
	CreateVendor(w http.ResponseWriter, r *http.Request)
	UpdateVendor(w http.ResponseWriter, r *http.Request)
	DeleteVendor(w http.ResponseWriter, r *http.Request)
	ListVendors(w http.ResponseWriter, r *http.Request)
}

type vendorHandlerImpl struct {
	vendorService vendor.VendorService
}

func NewVendorHandler(vendorService vendor.VendorService) VendorHandler {
	return &vendorHandlerImpl{vendorService: vendorService}
}

func (h *vendorHandlerImpl) GetVendor(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Vendor ID must be numeric")
		return
	}

	result, err := h.vendorService.GetVendor(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *vendorHandlerImpl) CreateVendor(w http.ResponseWriter, r *http.Request) {
	var req vendor.CreateVendorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	result, err := h.vendorService.CreateVendor(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Vendor created successfully", result)
}

func (h *vendorHandlerImpl) UpdateVendor(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Vendor ID must be numeric")
		return
	}

	var req vendor.UpdateVendorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	req.ID = id

	result, err := h.vendorService.UpdateVendor(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Vendor updated successfully", result)
}

func (h *vendorHandlerImpl) DeleteVendor(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Vendor ID must be numeric")
		return
	}

	if err := h.vendorService.DeleteVendor(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Vendor deleted successfully", nil)
}

func (h *vendorHandlerImpl) ListVendors(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := vendor.VendorFilter{Search: q.Get("search")}
	filter.Page, _ = strconv.Atoi(q.Get("page"))
	filter.Limit, _ = strconv.Atoi(q.Get("limit"))
	if v := q.Get("service_type"); v != "" {
		filter.ServiceType = &v
	}
	if v := q.Get("status"); v != "" {
		active, err := strconv.ParseBool(v)
		if err != nil {
			response.BadRequest(w, "status must be a boolean")
			return
		}
		filter.Active = &active
	}

	result, err := h.vendorService.ListVendors(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMeta(w, result.Vendors, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalItems,
		TotalPages: result.TotalPages,
	})
}
