package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/staffhive/erp-backend-go/internal/domain/employee"
	"github.com/staffhive/erp-backend-go/internal/handler/http/response"
	"github.com/staffhive/erp-backend-go/internal/pkg/validator"
)

type EmployeeHandler interface {
	GetEmployee(w http.ResponseWriter, r *http.Request)
	CreateEmployee(w http.ResponseWriter, r *http.Request)
	UpdateEmployee(w http.ResponseWriter, r *http.Request)
	DeleteEmployee(w http.ResponseWriter, r *http.Request)
	ListEmployees(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &employeeHandlerImpl{employeeService: employeeService}
}

// idParam parses the {id} route parameter. Non-numeric ids are rejected here,
// before anything touches the datastore.
func idParam(r *http.Request) (int64, bool) {
	return validator.ParseID(chi.URLParam(r, "id"))
}

func (h *employeeHandlerImpl) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Employee ID must be numeric")
		return
	}

	result, err := h.employeeService.GetEmployee(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *employeeHandlerImpl) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	result, err := h.employeeService.CreateEmployee(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Employee created successfully", result)
}

func (h *employeeHandlerImpl) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Employee ID must be numeric")
		return
	}

	// Unknown JSON keys fall away here; only fields of the typed patch can
	// ever reach the database.
	var req employee.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	req.ID = id

	result, err := h.employeeService.UpdateEmployee(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Employee updated successfully", result)
}

func (h *employeeHandlerImpl) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Employee ID must be numeric")
		return
	}

	if err := h.employeeService.DeleteEmployee(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Employee deleted successfully", nil)
}

func (h *employeeHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := employee.EmployeeFilter{
		Search: q.Get("search"),
	}
	filter.Page, _ = strconv.Atoi(q.Get("page"))
	filter.Limit, _ = strconv.Atoi(q.Get("limit"))

	for _, p := range []struct {
		param string
		dst   **int64
	}{
		{"designation_id", &filter.DesignationID},
		{"role_id", &filter.RoleID},
		{"status_id", &filter.StatusID},
	} {
		if v := q.Get(p.param); v != "" {
			id, ok := validator.ParseID(v)
			if !ok {
				response.BadRequest(w, p.param+" must be numeric")
				return
			}
			*p.dst = &id
		}
	}
	if v := q.Get("status"); v != "" {
		active, err := strconv.ParseBool(v)
		if err != nil {
			response.BadRequest(w, "status must be a boolean")
			return
		}
		filter.Active = &active
	}

	result, err := h.employeeService.ListEmployees(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMeta(w, result.Employees, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalItems,
		TotalPages: result.TotalPages,
	})
}
