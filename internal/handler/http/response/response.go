package response

import (
	"encoding/json"
	"net/http"
)

// Response is the envelope every endpoint returns. Code mirrors the HTTP
// status on error responses so browser clients can branch without inspecting
// transport status.
type Response struct {
	Success bool              `json:"success"`
	Code    int               `json:"code,omitempty"`
	Message string            `json:"message,omitempty"`
	Data    interface{}       `json:"data,omitempty"`
	Error   string            `json:"error,omitempty"`
	Details map[string]string `json:"details,omitempty"`
	Meta    *Meta             `json:"meta,omitempty"`
}

type Meta struct {
	Page       int   `json:"page,omitempty"`
	Limit      int   `json:"limit,omitempty"`
	TotalItems int64 `json:"total_items,omitempty"`
	TotalPages int   `json:"total_pages,omitempty"`
}

func writeJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		_ = json.NewEncoder(w).Encode(Response{
			Success: false,
			Code:    http.StatusInternalServerError,
			Error:   "Failed to encode response",
		})
	}
}

// Success responses

func Success(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    data,
	})
}

func SuccessWithMessage(w http.ResponseWriter, message string, data interface{}) {
	writeJSON(w, http.StatusOK, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func Created(w http.ResponseWriter, message string, data interface{}) {
	writeJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func SuccessWithMeta(w http.ResponseWriter, data interface{}, meta *Meta) {
	writeJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    data,
		Meta:    meta,
	})
}

// Error responses

func BadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, Response{
		Success: false,
		Code:    http.StatusBadRequest,
		Error:   message,
	})
}

func ValidationFailed(w http.ResponseWriter, details map[string]string) {
	writeJSON(w, http.StatusBadRequest, Response{
		Success: false,
		Code:    http.StatusBadRequest,
		Error:   "Validation failed",
		Details: details,
	})
}

func Unauthorized(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusUnauthorized, Response{
		Success: false,
		Code:    http.StatusUnauthorized,
		Error:   message,
	})
}

func Forbidden(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusForbidden, Response{
		Success: false,
		Code:    http.StatusForbidden,
		Error:   message,
	})
}

func NotFound(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusNotFound, Response{
		Success: false,
		Code:    http.StatusNotFound,
		Error:   message,
	})
}

func Conflict(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusConflict, Response{
		Success: false,
		Code:    http.StatusConflict,
		Error:   message,
	})
}

// InternalServerError deliberately carries no detail beyond the correlation
// id; the matching log line holds the cause.
func InternalServerError(w http.ResponseWriter, correlationID string) {
	writeJSON(w, http.StatusInternalServerError, Response{
		Success: false,
		Code:    http.StatusInternalServerError,
		Error:   "An unexpected error occurred. Reference: " + correlationID,
	})
}
