package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/staffhive/erp-backend-go/internal/domain/client"
	"github.com/staffhive/erp-backend-go/internal/handler/http/response"
)

type ClientHandler interface {
	GetClient(w http.ResponseWriter, r *http.Request)
	CreateClient(w http.ResponseWriter, r *http.Request)
	UpdateClient(w http.ResponseWriter, r *http.Request)
	DeleteClient(w http.ResponseWriter, r *http.Request)
	ListClients(w http.ResponseWriter, r *http.Request)
}

type clientHandlerImpl struct {
	clientService client.ClientService
}

func NewClientHandler(clientService client.ClientService) ClientHandler {
	return &clientHandlerImpl{clientService: clientService}
}

func (h *clientHandlerImpl) GetClient(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Client ID must be numeric")
		return
	}

	result, err := h.clientService.GetClient(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *clientHandlerImpl) CreateClient(w http.ResponseWriter, r *http.Request) {
	var req client.CreateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	result, err := h.clientService.CreateClient(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Client created successfully", result)
}

func (h *clientHandlerImpl) UpdateClient(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Client ID must be numeric")
		return
	}

	var req client.UpdateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	req.ID = id

	result, err := h.clientService.UpdateClient(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Client updated successfully", result)
}

func (h *clientHandlerImpl) DeleteClient(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Client ID must be numeric")
		return
	}

	if err := h.clientService.DeleteClient(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Client deleted successfully", nil)
}

func (h *clientHandlerImpl) ListClients(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := client.ClientFilter{Search: q.Get("search")}
	filter.Page, _ = strconv.Atoi(q.Get("page"))
	filter.Limit, _ = strconv.Atoi(q.Get("limit"))
	if v := q.Get("city"); v != "" {
		filter.City = &v
	}
	if v := q.Get("status"); v != "" {
		active, err := strconv.ParseBool(v)
		if err != nil {
			response.BadRequest(w, "status must be a boolean")
			return
		}
		filter.Active = &active
	}

	result, err := h.clientService.ListClients(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMeta(w, result.Clients, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalItems,
		TotalPages: result.TotalPages,
	})
}
