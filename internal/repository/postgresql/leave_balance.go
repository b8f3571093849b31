package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/staffhive/erp-backend-go/internal/domain/leave"
	"github.com/staffhive/erp-backend-go/internal/pkg/database"
)

type leaveBalanceRepositoryImpl struct {
	db *database.DB
}

func NewLeaveBalanceRepository(db *database.DB) leave.LeaveBalanceRepository {
	return &leaveBalanceRepositoryImpl{db: db}
}

func (r *leaveBalanceRepositoryImpl) Get(ctx context.Context, employeeID, leaveTypeID int64, year int) (leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)
	var b leave.LeaveBalance
	err := q.QueryRow(ctx, `
		SELECT lb.id, lb.employee_id, lb.leave_type_id, lb.year, lb.allocated, lb.used, lb.pending,
			lb.created_at, lb.updated_at, lt.name
		FROM leave_balances lb
		JOIN leave_types lt ON lt.id = lb.leave_type_id
		WHERE lb.employee_id = $1 AND lb.leave_type_id = $2 AND lb.year = $3
	`, employeeID, leaveTypeID, year).Scan(
		&b.ID, &b.EmployeeID, &b.LeaveTypeID, &b.Year, &b.Allocated, &b.Used, &b.Pending,
		&b.CreatedAt, &b.UpdatedAt, &b.LeaveTypeName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveBalance{}, leave.ErrBalanceNotFound
		}
		return leave.LeaveBalance{}, fmt.Errorf("failed to get leave balance: %w", err)
	}
	return b, nil
}

func (r *leaveBalanceRepositoryImpl) ListByEmployee(ctx context.Context, employeeID int64, year int) ([]leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)
	rows, err := q.Query(ctx, `
		SELECT lb.id, lb.employee_id, lb.leave_type_id, lb.year, lb.allocated, lb.used, lb.pending,
			lb.created_at, lb.updated_at, lt.name
		FROM leave_balances lb
		JOIN leave_types lt ON lt.id = lb.leave_type_id
		WHERE lb.employee_id = $1 AND lb.year = $2
		ORDER BY lt.name
	`, employeeID, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave balances: %w", err)
	}
	defer rows.Close()

	var out []leave.LeaveBalance
	for rows.Next() {
		var b leave.LeaveBalance
		if err := rows.Scan(&b.ID, &b.EmployeeID, &b.LeaveTypeID, &b.Year, &b.Allocated, &b.Used,
			&b.Pending, &b.CreatedAt, &b.UpdatedAt, &b.LeaveTypeName); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// Ensure creates the balance row for the employee/type/year if it does not
// exist yet, seeding it with the given allocation. Existing rows keep their
// allocation untouched.
func (r *leaveBalanceRepositoryImpl) Ensure(ctx context.Context, employeeID, leaveTypeID int64, year int, allocated float64) (leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)
	_, err := q.Exec(ctx, `
		INSERT INTO leave_balances (employee_id, leave_type_id, year, allocated, used, pending)
		VALUES ($1, $2, $3, $4, 0, 0)
		ON CONFLICT (employee_id, leave_type_id, year) DO NOTHING
	`, employeeID, leaveTypeID, year, allocated)
	if err != nil {
		return leave.LeaveBalance{}, fmt.Errorf("failed to ensure leave balance: %w", err)
	}
	return r.Get(ctx, employeeID, leaveTypeID, year)
}

func (r *leaveBalanceRepositoryImpl) Adjust(ctx context.Context, employeeID, leaveTypeID int64, year int, usedDelta, pendingDelta float64) error {
	q := GetQuerier(ctx, r.db)
	var id int64
	err := q.QueryRow(ctx, `
		UPDATE leave_balances
		SET used = used + $1, pending = pending + $2, updated_at = NOW()
		WHERE employee_id = $3 AND leave_type_id = $4 AND year = $5
		RETURNING id
	`, usedDelta, pendingDelta, employeeID, leaveTypeID, year).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.ErrBalanceNotFound
		}
		return fmt.Errorf("failed to adjust leave balance: %w", err)
	}
	return nil
}
