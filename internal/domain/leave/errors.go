package leave

import "errors"

var (
	ErrLeaveNotFound      = errors.New("leave application not found")
	ErrLeaveTypeNotFound  = errors.New("leave type not found")
	ErrUnknownAction      = errors.New("unknown approval action type")
	ErrInvalidTransition  = errors.New("action is not valid for the current leave status")
	ErrReasonRequired     = errors.New("cancellation reason is required")
	ErrAlreadyProcessed   = errors.New("leave application was modified by another request")
	ErrInsufficientQuota  = errors.New("insufficient leave balance")
	ErrOverlappingLeave   = errors.New("overlapping leave application exists")
	ErrBalanceNotFound    = errors.New("leave balance not found")
)
