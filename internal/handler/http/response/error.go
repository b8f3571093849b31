package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/staffhive/erp-backend-go/internal/domain/auth"
	"github.com/staffhive/erp-backend-go/internal/domain/candidate"
	"github.com/staffhive/erp-backend-go/internal/domain/client"
	"github.com/staffhive/erp-backend-go/internal/domain/employee"
	"github.com/staffhive/erp-backend-go/internal/domain/leave"
	"github.com/staffhive/erp-backend-go/internal/domain/master"
	"github.com/staffhive/erp-backend-go/internal/domain/sales"
	"github.com/staffhive/erp-backend-go/internal/domain/user"
	"github.com/staffhive/erp-backend-go/internal/domain/vendor"
	"github.com/staffhive/erp-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses.
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationFailed(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, "Token revoked")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		BadRequest(w, "Email already registered")

	// Employee
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		BadRequest(w, "Email already in use")
	case errors.Is(err, employee.ErrCodeExists):
		BadRequest(w, "Employee code already in use")
	case errors.Is(err, employee.ErrChildNotFound):
		BadRequest(w, "Referenced record does not belong to this employee")
	case errors.Is(err, employee.ErrInvalidSalaryLine):
		BadRequest(w, "Salary amount must be numeric")

	// Leave
	case errors.Is(err, leave.ErrLeaveNotFound):
		NotFound(w, "Leave application not found")
	case errors.Is(err, leave.ErrLeaveTypeNotFound):
		NotFound(w, "Leave type not found")
	case errors.Is(err, leave.ErrBalanceNotFound):
		NotFound(w, "Leave balance not found")
	case errors.Is(err, leave.ErrUnknownAction):
		BadRequest(w, "Unknown approval action type")
	case errors.Is(err, leave.ErrInvalidTransition):
		BadRequest(w, "Action is not valid for the current leave status")
	case errors.Is(err, leave.ErrReasonRequired):
		BadRequest(w, "Cancellation reason is required")
	case errors.Is(err, leave.ErrInsufficientQuota):
		BadRequest(w, "Insufficient leave balance")
	case errors.Is(err, leave.ErrOverlappingLeave):
		BadRequest(w, "An overlapping leave application already exists")
	case errors.Is(err, leave.ErrAlreadyProcessed):
		Conflict(w, "Leave application was modified by another request")

	// Master data
	case errors.Is(err, master.ErrLookupNotFound):
		NotFound(w, "Entry not found")
	case errors.Is(err, master.ErrNameExists):
		BadRequest(w, "An entry with this name already exists")
	case errors.Is(err, master.ErrUnknownKind):
		NotFound(w, "Unknown resource")
	case errors.Is(err, master.ErrInUse):
		BadRequest(w, "Entry is referenced by other records")

	// Directory
	case errors.Is(err, client.ErrClientNotFound):
		NotFound(w, "Client not found")
	case errors.Is(err, client.ErrNameExists):
		BadRequest(w, "Client with this name already exists")
	case errors.Is(err, vendor.ErrVendorNotFound):
		NotFound(w, "Vendor not found")
	case errors.Is(err, vendor.ErrNameExists):
		BadRequest(w, "Vendor with this name already exists")
	case errors.Is(err, candidate.ErrCandidateNotFound):
		NotFound(w, "Candidate not found")
	case errors.Is(err, candidate.ErrEmailExists):
		BadRequest(w, "Candidate with this email already exists")

	// Sales
	case errors.Is(err, sales.ErrInvoiceNotFound):
		NotFound(w, "Invoice not found")
	case errors.Is(err, sales.ErrInvoiceNumberExists):
		BadRequest(w, "Invoice number already exists")
	case errors.Is(err, sales.ErrClientNotFound):
		BadRequest(w, "Client not found for invoice")

	default:
		correlationID := uuid.New().String()
		slog.Error("unhandled error", "correlation_id", correlationID, "error", err)
		InternalServerError(w, correlationID)
	}
}
