package leave

import (
	"context"
	"math"
	"time"

	"github.com/staffhive/erp-backend-go/internal/domain/audit"
	"github.com/staffhive/erp-backend-go/internal/domain/employee"
	"github.com/staffhive/erp-backend-go/internal/domain/leave"
	"github.com/staffhive/erp-backend-go/internal/pkg/database"
	"github.com/staffhive/erp-backend-go/internal/pkg/validator"
	"github.com/staffhive/erp-backend-go/internal/repository/postgresql"
)

type LeaveServiceImpl struct {
	db            *database.DB
	leaveRepo     leave.LeaveRepository
	leaveTypeRepo leave.LeaveTypeRepository
	balanceRepo   leave.LeaveBalanceRepository
	employeeRepo  employee.EmployeeRepository
	auditor       audit.Recorder
}

func NewLeaveService(
	db *database.DB,
	leaveRepo leave.LeaveRepository,
	leaveTypeRepo leave.LeaveTypeRepository,
	balanceRepo leave.LeaveBalanceRepository,
	employeeRepo employee.EmployeeRepository,
	auditor audit.Recorder,
) leave.LeaveService {
	return &LeaveServiceImpl{
		db:            db,
		leaveRepo:     leaveRepo,
		leaveTypeRepo: leaveTypeRepo,
		balanceRepo:   balanceRepo,
		employeeRepo:  employeeRepo,
		auditor:       auditor,
	}
}

func mapLeaveToResponse(la leave.LeaveApplication) leave.LeaveResponse {
	return leave.LeaveResponse{
		ID:                 la.ID,
		EmployeeID:         la.EmployeeID,
		EmployeeName:       la.EmployeeName,
		LeaveTypeID:        la.LeaveTypeID,
		LeaveTypeName:      la.LeaveTypeName,
		StartDate:          la.StartDate.Format("2006-01-02"),
		EndDate:            la.EndDate.Format("2006-01-02"),
		Days:               la.Days,
		StatusID:           int(la.StatusID),
		StatusName:         la.StatusID.String(),
		Reason:             la.Reason,
		CancellationReason: la.CancellationReason,
		AttachmentPath:     la.AttachmentPath,
		CreatedAt:          la.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          la.UpdatedAt.Format(time.RFC3339),
	}
}

// countDays is inclusive of both endpoints. Weekends and holidays are not
// excluded; allocation policy handles those upstream.
func countDays(start, end time.Time) float64 {
	return end.Sub(start).Hours()/24 + 1
}

func (s *LeaveServiceImpl) CreateLeave(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return leave.LeaveResponse{}, err
	}
	lt, err := s.leaveTypeRepo.GetByID(ctx, req.LeaveTypeID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)
	days := countDays(start, end)

	overlapping, err := s.leaveRepo.HasOverlapping(ctx, req.EmployeeID, start, end)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if overlapping {
		return leave.LeaveResponse{}, leave.ErrOverlappingLeave
	}

	var created leave.LeaveApplication
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		balance, err := s.balanceRepo.Ensure(txCtx, req.EmployeeID, req.LeaveTypeID, start.Year(), lt.DefaultAllocation)
		if err != nil {
			return err
		}
		if balance.Remaining() < days {
			return leave.ErrInsufficientQuota
		}

		created, err = s.leaveRepo.Create(txCtx, leave.LeaveApplication{
			EmployeeID:     req.EmployeeID,
			LeaveTypeID:    req.LeaveTypeID,
			StartDate:      start,
			EndDate:        end,
			Days:           days,
			StatusID:       leave.StatusPending,
			Reason:         req.Reason,
			AttachmentPath: req.AttachmentPath,
		})
		if err != nil {
			return err
		}

		// A pending application reserves its days.
		return s.balanceRepo.Adjust(txCtx, req.EmployeeID, req.LeaveTypeID, start.Year(), 0, days)
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	s.auditor.Record(ctx, "leave_application", created.ID, audit.ActionCreate, map[string]interface{}{
		"employee_id": req.EmployeeID,
		"days":        days,
	})

	created.LeaveTypeName = &lt.Name
	return mapLeaveToResponse(created), nil
}

func (s *LeaveServiceImpl) GetLeave(ctx context.Context, id int64) (leave.LeaveResponse, error) {
	la, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	return mapLeaveToResponse(la), nil
}

func (s *LeaveServiceImpl) ListLeaves(ctx context.Context, filter leave.LeaveFilter) (leave.ListLeaveResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 10
	}

	leaves, total, err := s.leaveRepo.List(ctx, filter)
	if err != nil {
		return leave.ListLeaveResponse{}, err
	}

	resp := leave.ListLeaveResponse{
		Leaves:     []leave.LeaveResponse{},
		TotalItems: total,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		Page:       filter.Page,
		Limit:      filter.Limit,
	}
	for _, la := range leaves {
		resp.Leaves = append(resp.Leaves, mapLeaveToResponse(la))
	}
	return resp, nil
}

// balanceDeltas returns the (used, pending) adjustment for a transition.
// Pending days are reserved at submission, so every transition out of the
// pending pool has to release it.
func balanceDeltas(action leave.Action, days float64) (usedDelta, pendingDelta float64) {
	switch action {
	case leave.ActionApprove:
		return days, -days
	case leave.ActionReject:
		return 0, -days
	case leave.ActionRequestCancellation:
		return 0, 0
	case leave.ActionApproveCancellation:
		return -days, 0
	}
	return 0, 0
}

// ApplyAction validates the requested action against the persisted status,
// not against whatever state the client last saw. The guarded status write
// and the balance adjustment commit together.
func (s *LeaveServiceImpl) ApplyAction(ctx context.Context, req leave.ApproveLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}
	action := leave.Action(*req.Type)

	// A cancellation request must say why; enforced here, next to the state
	// machine, rather than trusting the client form.
	if action == leave.ActionRequestCancellation {
		if req.Reason == nil || validator.IsEmpty(*req.Reason) {
			return leave.LeaveResponse{}, leave.ErrReasonRequired
		}
	}

	la, err := s.leaveRepo.GetByID(ctx, req.LeaveID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	next, err := leave.Transition(la.StatusID, action)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	var cancellationReason *string
	if action == leave.ActionRequestCancellation {
		cancellationReason = req.Reason
	}

	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.leaveRepo.UpdateStatus(txCtx, la.ID, la.StatusID, next, cancellationReason); err != nil {
			return err
		}
		usedDelta, pendingDelta := balanceDeltas(action, la.Days)
		if usedDelta == 0 && pendingDelta == 0 {
			return nil
		}
		return s.balanceRepo.Adjust(txCtx, la.EmployeeID, la.LeaveTypeID, la.StartDate.Year(), usedDelta, pendingDelta)
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	s.auditor.Record(ctx, "leave_application", la.ID, audit.ActionStatusChange, map[string]interface{}{
		"from": int(la.StatusID),
		"to":   int(next),
	})

	updated, err := s.leaveRepo.GetByID(ctx, la.ID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	return mapLeaveToResponse(updated), nil
}

func (s *LeaveServiceImpl) GetBalances(ctx context.Context, employeeID int64, year int) ([]leave.BalanceResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}
	if year == 0 {
		year = time.Now().Year()
	}

	balances, err := s.balanceRepo.ListByEmployee(ctx, employeeID, year)
	if err != nil {
		return nil, err
	}

	out := []leave.BalanceResponse{}
	for _, b := range balances {
		name := ""
		if b.LeaveTypeName != nil {
			name = *b.LeaveTypeName
		}
		out = append(out, leave.BalanceResponse{
			LeaveTypeID:   b.LeaveTypeID,
			LeaveTypeName: name,
			Year:          b.Year,
			Allocated:     b.Allocated,
			Used:          b.Used,
			Pending:       b.Pending,
			Remaining:     b.Remaining(),
		})
	}
	return out, nil
}

func (s *LeaveServiceImpl) CreateLeaveType(ctx context.Context, req leave.CreateLeaveTypeRequest) (leave.LeaveTypeResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveTypeResponse{}, err
	}

	lt, err := s.leaveTypeRepo.Create(ctx, leave.LeaveType{
		Name:              req.Name,
		Code:              req.Code,
		DefaultAllocation: req.DefaultAllocation,
	})
	if err != nil {
		return leave.LeaveTypeResponse{}, err
	}

	s.auditor.Record(ctx, "leave_type", lt.ID, audit.ActionCreate, nil)
	return leave.LeaveTypeResponse{
		ID:                lt.ID,
		Name:              lt.Name,
		Code:              lt.Code,
		DefaultAllocation: lt.DefaultAllocation,
	}, nil
}

func (s *LeaveServiceImpl) ListLeaveTypes(ctx context.Context) ([]leave.LeaveTypeResponse, error) {
	types, err := s.leaveTypeRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := []leave.LeaveTypeResponse{}
	for _, lt := range types {
		out = append(out, leave.LeaveTypeResponse{
			ID:                lt.ID,
			Name:              lt.Name,
			Code:              lt.Code,
			DefaultAllocation: lt.DefaultAllocation,
		})
	}
	return out, nil
}

func (s *LeaveServiceImpl) DeleteLeaveType(ctx context.Context, id int64) error {
	if err := s.leaveTypeRepo.SoftDelete(ctx, id); err != nil {
		return err
	}
	s.auditor.Record(ctx, "leave_type", id, audit.ActionDelete, nil)
	return nil
}
