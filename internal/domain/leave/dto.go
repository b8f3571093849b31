package leave

import (
	"github.com/staffhive/erp-backend-go/internal/pkg/validator"
)

type CreateLeaveRequest struct {
	EmployeeID  int64   `json:"employee_id"`
	LeaveTypeID int64   `json:"leave_type_id"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	Reason      *string `json:"reason,omitempty"`
	// AttachmentPath is set by the handler after a multipart upload.
	AttachmentPath *string `json:"-"`
}

func (r CreateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "Employee is required"})
	}
	if r.LeaveTypeID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "leave_type_id", Message: "Leave type is required"})
	}
	start, okStart := validator.IsValidDate(r.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "Date must be YYYY-MM-DD"})
	}
	end, okEnd := validator.IsValidDate(r.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "Date must be YYYY-MM-DD"})
	}
	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "End date cannot be before start date"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ApproveLeaveRequest is the body of POST /leaves/{id}/approve. Type selects
// the transition: 1 approve, 0 reject, 3 request cancellation (reason
// required), 4 approve cancellation.
type ApproveLeaveRequest struct {
	LeaveID int64   `json:"-"`
	Type    *int    `json:"type"`
	Reason  *string `json:"reason,omitempty"`
}

func (r ApproveLeaveRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.Type == nil {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "Action type is required"})
	} else if !Action(*r.Type).Valid() {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "Action type must be one of 0, 1, 3, 4"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LeaveFilter struct {
	Page       int
	Limit      int
	EmployeeID *int64
	StatusID   *Status
}

type LeaveResponse struct {
	ID                 int64   `json:"id"`
	EmployeeID         int64   `json:"employee_id"`
	EmployeeName       *string `json:"employee_name,omitempty"`
	LeaveTypeID        int64   `json:"leave_type_id"`
	LeaveTypeName      *string `json:"leave_type_name,omitempty"`
	StartDate          string  `json:"start_date"`
	EndDate            string  `json:"end_date"`
	Days               float64 `json:"days"`
	StatusID           int     `json:"status_id"`
	StatusName         string  `json:"status_name"`
	Reason             *string `json:"reason,omitempty"`
	CancellationReason *string `json:"cancellation_reason,omitempty"`
	AttachmentPath     *string `json:"attachment_path,omitempty"`
	CreatedAt          string  `json:"created_at"`
	UpdatedAt          string  `json:"updated_at"`
}

type ListLeaveResponse struct {
	Leaves     []LeaveResponse `json:"leaves"`
	TotalItems int64           `json:"total_items"`
	TotalPages int             `json:"total_pages"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
}

type BalanceResponse struct {
	LeaveTypeID   int64   `json:"leave_type_id"`
	LeaveTypeName string  `json:"leave_type_name"`
	Year          int     `json:"year"`
	Allocated     float64 `json:"allocated"`
	Used          float64 `json:"used"`
	Pending       float64 `json:"pending"`
	Remaining     float64 `json:"remaining"`
}

type CreateLeaveTypeRequest struct {
	Name              string  `json:"name"`
	Code              *string `json:"code,omitempty"`
	DefaultAllocation float64 `json:"default_allocation"`
}

func (r CreateLeaveTypeRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "Name is required"})
	}
	if r.DefaultAllocation < 0 {
		errs = append(errs, validator.ValidationError{Field: "default_allocation", Message: "Allocation cannot be negative"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LeaveTypeResponse struct {
	ID                int64   `json:"id"`
	Name              string  `json:"name"`
	Code              *string `json:"code,omitempty"`
	DefaultAllocation float64 `json:"default_allocation"`
}
