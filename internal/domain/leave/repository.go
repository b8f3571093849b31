package leave

import (
	"context"
	"time"
)

type LeaveRepository interface {
	GetByID(ctx context.Context, id int64) (LeaveApplication, error)
	Create(ctx context.Context, application LeaveApplication) (LeaveApplication, error)
	List(ctx context.Context, filter LeaveFilter) ([]LeaveApplication, int64, error)
	// UpdateStatus writes the new status only when the row still holds
	// expected, guarding against concurrent approvers. Returns
	// ErrAlreadyProcessed when the guard fails.
	UpdateStatus(ctx context.Context, id int64, expected, next Status, cancellationReason *string) error
	HasOverlapping(ctx context.Context, employeeID int64, start, end time.Time) (bool, error)
}

type LeaveTypeRepository interface {
	GetByID(ctx context.Context, id int64) (LeaveType, error)
	Create(ctx context.Context, lt LeaveType) (LeaveType, error)
	List(ctx context.Context) ([]LeaveType, error)
	SoftDelete(ctx context.Context, id int64) error
}

type LeaveBalanceRepository interface {
	Get(ctx context.Context, employeeID, leaveTypeID int64, year int) (LeaveBalance, error)
	ListByEmployee(ctx context.Context, employeeID int64, year int) ([]LeaveBalance, error)
	Ensure(ctx context.Context, employeeID, leaveTypeID int64, year int, allocated float64) (LeaveBalance, error)
	// Adjust adds the deltas to used and pending. Callers derive deltas from
	// the state transition being applied.
	Adjust(ctx context.Context, employeeID, leaveTypeID int64, year int, usedDelta, pendingDelta float64) error
}
