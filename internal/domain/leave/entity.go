package leave

import "time"

// LeaveType entity
type LeaveType struct {
	ID                int64
	Name              string
	Code              *string
	DefaultAllocation float64
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         *time.Time
}

// LeaveApplication entity
type LeaveApplication struct {
	ID          int64
	EmployeeID  int64
	LeaveTypeID int64

	StartDate time.Time
	EndDate   time.Time
	Days      float64

	StatusID           Status
	Reason             *string
	CancellationReason *string
	AttachmentPath     *string

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time

	// Resolved for responses
	LeaveTypeName *string
	EmployeeName  *string
}

// LeaveBalance entity. Remaining is not stored; it is always
// allocated - used - pending.
type LeaveBalance struct {
	ID          int64
	EmployeeID  int64
	LeaveTypeID int64
	Year        int
	Allocated   float64
	Used        float64
	Pending     float64
	CreatedAt   time.Time
	UpdatedAt   time.Time

	LeaveTypeName *string
}

func (b LeaveBalance) Remaining() float64 {
	return b.Allocated - b.Used - b.Pending
}
