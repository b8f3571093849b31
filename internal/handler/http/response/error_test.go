package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffhive/erp-backend-go/internal/domain/auth"
	"github.com/staffhive/erp-backend-go/internal/domain/employee"
	"github.com/staffhive/erp-backend-go/internal/domain/leave"
	"github.com/staffhive/erp-backend-go/internal/domain/sales"
)

func TestHandleErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"employee not found", employee.ErrEmployeeNotFound, http.StatusNotFound},
		{"duplicate email", employee.ErrEmailExists, http.StatusBadRequest},
		{"child row ownership", employee.ErrChildNotFound, http.StatusBadRequest},
		{"invalid transition", leave.ErrInvalidTransition, http.StatusBadRequest},
		{"concurrent approval", leave.ErrAlreadyProcessed, http.StatusConflict},
		{"insufficient quota", leave.ErrInsufficientQuota, http.StatusBadRequest},
		{"bad credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized},
		{"duplicate invoice number", sales.ErrInvoiceNumberExists, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.NotEmpty(t, body.Error)
		})
	}
}

func TestHandleErrorWrappedError(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, errors.Join(errors.New("update failed"), leave.ErrAlreadyProcessed))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandleErrorUnknownErrorGetsCorrelationID(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, errors.New("pq: unreachable"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	// The correlation reference is surfaced; the raw error is not.
	assert.Contains(t, body.Error, "Reference: ")
	assert.NotContains(t, body.Error, "unreachable")
}
