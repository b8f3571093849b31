package postgresql

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/staffhive/erp-backend-go/internal/domain/audit"
	"github.com/staffhive/erp-backend-go/internal/pkg/database"
)

type auditLogRepositoryImpl struct {
	db *database.DB
}

func NewAuditLogRepository(db *database.DB) audit.AuditLogRepository {
	return &auditLogRepositoryImpl{db: db}
}

func (r *auditLogRepositoryImpl) Insert(ctx context.Context, entry audit.AuditLog) error {
	var detail []byte
	if entry.Detail != nil {
		b, err := json.Marshal(entry.Detail)
		if err != nil {
			return fmt.Errorf("failed to encode audit detail: %w", err)
		}
		detail = b
	}

	q := GetQuerier(ctx, r.db)
	_, err := q.Exec(ctx, `
		INSERT INTO audit_logs (user_id, entity_type, entity_id, action, detail)
		VALUES ($1, $2, $3, $4, $5)
	`, entry.UserID, entry.EntityType, entry.EntityID, string(entry.Action), detail)
	if err != nil {
		return fmt.Errorf("failed to insert audit log: %w", err)
	}
	return nil
}

func (r *auditLogRepositoryImpl) List(ctx context.Context, filter audit.AuditFilter) ([]audit.AuditLog, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"TRUE"}
	args := []interface{}{}
	i := 1
	if filter.EntityType != nil {
		conditions = append(conditions, fmt.Sprintf("entity_type = $%d", i))
		args = append(args, *filter.EntityType)
		i++
	}
	if filter.EntityID != nil {
		conditions = append(conditions, fmt.Sprintf("entity_id = $%d", i))
		args = append(args, *filter.EntityID)
		i++
	}
	if filter.UserID != nil {
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", i))
		args = append(args, *filter.UserID)
		i++
	}
	if filter.Action != nil {
		conditions = append(conditions, fmt.Sprintf("action = $%d", i))
		args = append(args, string(*filter.Action))
		i++
	}
	if filter.From != nil {
		conditions = append(conditions, fmt.Sprintf("created_at >= $%d", i))
		args = append(args, *filter.From)
		i++
	}
	if filter.To != nil {
		conditions = append(conditions, fmt.Sprintf("created_at <= $%d", i))
		args = append(args, *filter.To)
		i++
	}
	where := " WHERE " + strings.Join(conditions, " AND ")

	var total int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) FROM audit_logs"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count audit logs: %w", err)
	}

	offset := (filter.Page - 1) * filter.Limit
	args = append(args, filter.Limit, offset)
	rows, err := q.Query(ctx,
		"SELECT id, user_id, entity_type, entity_id, action, detail, created_at FROM audit_logs"+where+
			fmt.Sprintf(" ORDER BY id DESC LIMIT $%d OFFSET $%d", i, i+1),
		args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list audit logs: %w", err)
	}
	defer rows.Close()

	var out []audit.AuditLog
	for rows.Next() {
		var entry audit.AuditLog
		var action string
		var detail []byte
		if err := rows.Scan(&entry.ID, &entry.UserID, &entry.EntityType, &entry.EntityID,
			&action, &detail, &entry.CreatedAt); err != nil {
			return nil, 0, err
		}
		entry.Action = audit.Action(action)
		if len(detail) > 0 {
			// Detail is opaque to readers; a corrupt payload is left nil.
			_ = json.Unmarshal(detail, &entry.Detail)
		}
		out = append(out, entry)
	}
	return out, total, rows.Err()
}
