package http

import (
	"encoding/json"
	"net/http"

	"github.com/staffhive/erp-backend-go/internal/domain/master"
	"github.com/staffhive/erp-backend-go/internal/handler/http/response"
)

// MasterHandler serves the four lookup collections through one set of
// handlers; the router binds each route group to a Kind.
type MasterHandler interface {
	Create(kind master.Kind) http.HandlerFunc
	Get(kind master.Kind) http.HandlerFunc
	List(kind master.Kind) http.HandlerFunc
	Update(kind master.Kind) http.HandlerFunc
	Delete(kind master.Kind) http.HandlerFunc
}

type masterHandlerImpl struct {
	masterService master.MasterService
}

func NewMasterHandler(masterService master.MasterService) MasterHandler {
	return &masterHandlerImpl{masterService: masterService}
}

func (h *masterHandlerImpl) Create(kind master.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req master.CreateLookupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid request body")
			return
		}

		result, err := h.masterService.Create(r.Context(), kind, req)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.Created(w, "Entry created", result)
	}
}

func (h *masterHandlerImpl) Get(kind master.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			response.BadRequest(w, "ID must be numeric")
			return
		}

		result, err := h.masterService.Get(r.Context(), kind, id)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.Success(w, result)
	}
}

func (h *masterHandlerImpl) List(kind master.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := h.masterService.List(r.Context(), kind)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.Success(w, result)
	}
}

func (h *masterHandlerImpl) Update(kind master.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			response.BadRequest(w, "ID must be numeric")
			return
		}

		var req master.UpdateLookupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid request body")
			return
		}
		req.ID = id

		result, err := h.masterService.Update(r.Context(), kind, req)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.SuccessWithMessage(w, "Entry updated", result)
	}
}

func (h *masterHandlerImpl) Delete(kind master.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			response.BadRequest(w, "ID must be numeric")
			return
		}

		if err := h.masterService.Delete(r.Context(), kind, id); err != nil {
			response.HandleError(w, err)
			return
		}
		response.SuccessWithMessage(w, "Entry deleted", nil)
	}
}
