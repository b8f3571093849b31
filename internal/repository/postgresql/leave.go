package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/staffhive/erp-backend-go/internal/domain/leave"
	"github.com/staffhive/erp-backend-go/internal/pkg/database"
)

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepositoryImpl{db: db}
}

const leaveColumns = `
	la.id, la.employee_id, la.leave_type_id, la.start_date, la.end_date, la.days,
	la.status_id, la.reason, la.cancellation_reason, la.attachment_path,
	la.created_at, la.updated_at, la.deleted_at,
	lt.name AS leave_type_name,
	TRIM(CONCAT(e.first_name, ' ', COALESCE(e.last_name, ''))) AS employee_name`

const leaveJoins = `
	FROM leave_applications la
	JOIN leave_types lt ON lt.id = la.leave_type_id
	JOIN employees e ON e.id = la.employee_id`

func scanLeave(row pgx.Row) (leave.LeaveApplication, error) {
	var la leave.LeaveApplication
	var statusID int
	err := row.Scan(
		&la.ID, &la.EmployeeID, &la.LeaveTypeID, &la.StartDate, &la.EndDate, &la.Days,
		&statusID, &la.Reason, &la.CancellationReason, &la.AttachmentPath,
		&la.CreatedAt, &la.UpdatedAt, &la.DeletedAt,
		&la.LeaveTypeName, &la.EmployeeName,
	)
	la.StatusID = leave.Status(statusID)
	return la, err
}

func (r *leaveRepositoryImpl) GetByID(ctx context.Context, id int64) (leave.LeaveApplication, error) {
	q := GetQuerier(ctx, r.db)
	row := q.QueryRow(ctx,
		"SELECT"+leaveColumns+leaveJoins+" WHERE la.id = $1 AND la.deleted_at IS NULL", id)
	la, err := scanLeave(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveApplication{}, leave.ErrLeaveNotFound
		}
		return leave.LeaveApplication{}, fmt.Errorf("failed to get leave application: %w", err)
	}
	return la, nil
}

func (r *leaveRepositoryImpl) Create(ctx context.Context, la leave.LeaveApplication) (leave.LeaveApplication, error) {
	q := GetQuerier(ctx, r.db)
	err := q.QueryRow(ctx, `
		INSERT INTO leave_applications (employee_id, leave_type_id, start_date, end_date, days, status_id, reason, attachment_path)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`, la.EmployeeID, la.LeaveTypeID, la.StartDate, la.EndDate, la.Days, int(la.StatusID), la.Reason, la.AttachmentPath).
		Scan(&la.ID, &la.CreatedAt, &la.UpdatedAt)
	if err != nil {
		return leave.LeaveApplication{}, fmt.Errorf("failed to create leave application: %w", err)
	}
	return la, nil
}

func (r *leaveRepositoryImpl) List(ctx context.Context, filter leave.LeaveFilter) ([]leave.LeaveApplication, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"la.deleted_at IS NULL"}
	args := []interface{}{}
	i := 1
	if filter.EmployeeID != nil {
		conditions = append(conditions, fmt.Sprintf("la.employee_id = $%d", i))
		args = append(args, *filter.EmployeeID)
		i++
	}
	if filter.StatusID != nil {
		conditions = append(conditions, fmt.Sprintf("la.status_id = $%d", i))
		args = append(args, int(*filter.StatusID))
		i++
	}
	where := " WHERE " + strings.Join(conditions, " AND ")

	var total int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*)"+leaveJoins+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count leave applications: %w", err)
	}

	offset := (filter.Page - 1) * filter.Limit
	args = append(args, filter.Limit, offset)
	rows, err := q.Query(ctx,
		"SELECT"+leaveColumns+leaveJoins+where+
			fmt.Sprintf(" ORDER BY la.id DESC LIMIT $%d OFFSET $%d", i, i+1),
		args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list leave applications: %w", err)
	}
	defer rows.Close()

	var out []leave.LeaveApplication
	for rows.Next() {
		la, err := scanLeave(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, la)
	}
	return out, total, rows.Err()
}

// UpdateStatus applies the guarded transition. The WHERE clause pins the
// status the caller decided on, so a concurrent approver who got there first
// makes this a no-op and the caller sees ErrAlreadyProcessed.
func (r *leaveRepositoryImpl) UpdateStatus(ctx context.Context, id int64, expected, next leave.Status, cancellationReason *string) error {
	q := GetQuerier(ctx, r.db)

	var updatedID int64
	err := q.QueryRow(ctx, `
		UPDATE leave_applications
		SET status_id = $1,
			cancellation_reason = COALESCE($2, cancellation_reason),
			updated_at = NOW()
		WHERE id = $3 AND status_id = $4 AND deleted_at IS NULL
		RETURNING id
	`, int(next), cancellationReason, id, int(expected)).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Row exists but the status moved, or the row is gone. Either
			// way the caller's view is stale.
			return leave.ErrAlreadyProcessed
		}
		return fmt.Errorf("failed to update leave status: %w", err)
	}
	return nil
}

func (r *leaveRepositoryImpl) HasOverlapping(ctx context.Context, employeeID int64, start, end time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)
	var exists bool
	err := q.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM leave_applications
			WHERE employee_id = $1
				AND deleted_at IS NULL
				AND status_id IN ($2, $3)
				AND start_date <= $4
				AND end_date >= $5
		)
	`, employeeID, int(leave.StatusPending), int(leave.StatusApproved), end, start).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check overlapping leave: %w", err)
	}
	return exists, nil
}
