package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/staffhive/erp-backend-go/internal/domain/leave"
	"github.com/staffhive/erp-backend-go/internal/handler/http/response"
	"github.com/staffhive/erp-backend-go/internal/pkg/validator"
	"github.com/staffhive/erp-backend-go/internal/service/file"
)

type LeaveHandler interface {
	CreateLeave(w http.ResponseWriter, r *http.Request)
	GetLeave(w http.ResponseWriter, r *http.Request)
	ListLeaves(w http.ResponseWriter, r *http.Request)
	ApproveLeave(w http.ResponseWriter, r *http.Request)
	GetBalances(w http.ResponseWriter, r *http.Request)

	CreateLeaveType(w http.ResponseWriter, r *http.Request)
	ListLeaveTypes(w http.ResponseWriter, r *http.Request)
	DeleteLeaveType(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	leaveService leave.LeaveService
	fileService  file.FileService
}

func NewLeaveHandler(leaveService leave.LeaveService, fileService file.FileService) LeaveHandler {
	return &leaveHandlerImpl{leaveService: leaveService, fileService: fileService}
}

// CreateLeave accepts plain JSON, or multipart/form-data with a "payload"
// JSON part and an optional "attachment" file part.
func (h *leaveHandlerImpl) CreateLeave(w http.ResponseWriter, r *http.Request) {
	var req leave.CreateLeaveRequest

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(10 << 20); err != nil {
			response.BadRequest(w, "Invalid multipart form")
			return
		}
		if err := json.Unmarshal([]byte(r.FormValue("payload")), &req); err != nil {
			response.BadRequest(w, "Invalid payload")
			return
		}
		if f, header, err := r.FormFile("attachment"); err == nil {
			defer f.Close()
			path, err := h.fileService.UploadLeaveAttachment(r.Context(), req.EmployeeID, f, header.Filename)
			if err != nil {
				response.BadRequest(w, err.Error())
				return
			}
			req.AttachmentPath = &path
		}
	} else {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid request body")
			return
		}
	}

	result, err := h.leaveService.CreateLeave(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Leave application submitted", result)
}

func (h *leaveHandlerImpl) GetLeave(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Leave ID must be numeric")
		return
	}

	result, err := h.leaveService.GetLeave(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *leaveHandlerImpl) ListLeaves(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var filter leave.LeaveFilter
	filter.Page, _ = strconv.Atoi(q.Get("page"))
	filter.Limit, _ = strconv.Atoi(q.Get("limit"))

	if v := q.Get("employee_id"); v != "" {
		id, ok := validator.ParseID(v)
		if !ok {
			response.BadRequest(w, "employee_id must be numeric")
			return
		}
		filter.EmployeeID = &id
	}
	if v := q.Get("status_id"); v != "" {
		code, err := strconv.Atoi(v)
		if err != nil || !leave.Status(code).Valid() {
			response.BadRequest(w, "status_id must be a valid status code")
			return
		}
		status := leave.Status(code)
		filter.StatusID = &status
	}

	result, err := h.leaveService.ListLeaves(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMeta(w, result.Leaves, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalItems,
		TotalPages: result.TotalPages,
	})
}

func (h *leaveHandlerImpl) ApproveLeave(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Leave ID must be numeric")
		return
	}

	var req leave.ApproveLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	req.LeaveID = id

	result, err := h.leaveService.ApplyAction(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Leave application updated", result)
}

func (h *leaveHandlerImpl) GetBalances(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Employee ID must be numeric")
		return
	}
	year, _ := strconv.Atoi(r.URL.Query().Get("year"))

	result, err := h.leaveService.GetBalances(r.Context(), id, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *leaveHandlerImpl) CreateLeaveType(w http.ResponseWriter, r *http.Request) {
	var req leave.CreateLeaveTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	result, err := h.leaveService.CreateLeaveType(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Leave type created", result)
}

func (h *leaveHandlerImpl) ListLeaveTypes(w http.ResponseWriter, r *http.Request) {
	result, err := h.leaveService.ListLeaveTypes(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *leaveHandlerImpl) DeleteLeaveType(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Leave type ID must be numeric")
		return
	}

	if err := h.leaveService.DeleteLeaveType(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Leave type deleted", nil)
}
