package leave

import "context"

type LeaveService interface {
	CreateLeave(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error)
	GetLeave(ctx context.Context, id int64) (LeaveResponse, error)
	ListLeaves(ctx context.Context, filter LeaveFilter) (ListLeaveResponse, error)
	// ApplyAction runs one transition of the approval state machine against
	// the persisted status and keeps the leave balance in step.
	ApplyAction(ctx context.Context, req ApproveLeaveRequest) (LeaveResponse, error)

	GetBalances(ctx context.Context, employeeID int64, year int) ([]BalanceResponse, error)

	CreateLeaveType(ctx context.Context, req CreateLeaveTypeRequest) (LeaveTypeResponse, error)
	ListLeaveTypes(ctx context.Context) ([]LeaveTypeResponse, error)
	DeleteLeaveType(ctx context.Context, id int64) error
}
