package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/staffhive/erp-backend-go/internal/domain/leave"
	"github.com/staffhive/erp-backend-go/internal/pkg/database"
)

type leaveTypeRepositoryImpl struct {
	db *database.DB
}

func NewLeaveTypeRepository(db *database.DB) leave.LeaveTypeRepository {
	return &leaveTypeRepositoryImpl{db: db}
}

func (r *leaveTypeRepositoryImpl) GetByID(ctx context.Context, id int64) (leave.LeaveType, error) {
	q := GetQuerier(ctx, r.db)
	var lt leave.LeaveType
	err := q.QueryRow(ctx, `
		SELECT id, name, code, default_allocation, created_at, updated_at, deleted_at
		FROM leave_types
		WHERE id = $1 AND deleted_at IS NULL
	`, id).Scan(&lt.ID, &lt.Name, &lt.Code, &lt.DefaultAllocation, &lt.CreatedAt, &lt.UpdatedAt, &lt.DeletedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveType{}, leave.ErrLeaveTypeNotFound
		}
		return leave.LeaveType{}, fmt.Errorf("failed to get leave type: %w", err)
	}
	return lt, nil
}

func (r *leaveTypeRepositoryImpl) Create(ctx context.Context, lt leave.LeaveType) (leave.LeaveType, error) {
	q := GetQuerier(ctx, r.db)
	err := q.QueryRow(ctx, `
		INSERT INTO leave_types (name, code, default_allocation)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, lt.Name, lt.Code, lt.DefaultAllocation).Scan(&lt.ID, &lt.CreatedAt, &lt.UpdatedAt)
	if err != nil {
		return leave.LeaveType{}, fmt.Errorf("failed to create leave type: %w", err)
	}
	return lt, nil
}

func (r *leaveTypeRepositoryImpl) List(ctx context.Context) ([]leave.LeaveType, error) {
	q := GetQuerier(ctx, r.db)
	rows, err := q.Query(ctx, `
		SELECT id, name, code, default_allocation, created_at, updated_at, deleted_at
		FROM leave_types
		WHERE deleted_at IS NULL
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave types: %w", err)
	}
	defer rows.Close()

	var out []leave.LeaveType
	for rows.Next() {
		var lt leave.LeaveType
		if err := rows.Scan(&lt.ID, &lt.Name, &lt.Code, &lt.DefaultAllocation,
			&lt.CreatedAt, &lt.UpdatedAt, &lt.DeletedAt); err != nil {
			return nil, err
		}
		out = append(out, lt)
	}
	return out, rows.Err()
}

func (r *leaveTypeRepositoryImpl) SoftDelete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)
	var deletedID int64
	err := q.QueryRow(ctx, `
		UPDATE leave_types
		SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING id
	`, id).Scan(&deletedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.ErrLeaveTypeNotFound
		}
		return fmt.Errorf("failed to delete leave type: %w", err)
	}
	return nil
}
