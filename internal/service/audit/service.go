package audit

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/staffhive/erp-backend-go/internal/domain/audit"
)

type AuditServiceImpl struct {
	auditRepo audit.AuditLogRepository
}

func NewAuditService(auditRepo audit.AuditLogRepository) audit.AuditService {
	return &AuditServiceImpl{auditRepo: auditRepo}
}

// userIDFromContext pulls the acting user's id from JWT claims, if present.
// Unauthenticated or system-originated writes record a nil user.
func userIDFromContext(ctx context.Context) *int64 {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return nil
	}
	raw, ok := claims["user_id"]
	if !ok {
		return nil
	}
	// JWT numeric claims surface as float64.
	f, ok := raw.(float64)
	if !ok {
		return nil
	}
	id := int64(f)
	return &id
}

// Record is best-effort. A failed insert is logged and swallowed so audit
// outages never fail business requests.
func (s *AuditServiceImpl) Record(ctx context.Context, entityType string, entityID int64, action audit.Action, detail map[string]interface{}) {
	entry := audit.AuditLog{
		UserID:     userIDFromContext(ctx),
		EntityType: entityType,
		EntityID:   entityID,
		Action:     action,
		Detail:     detail,
	}
	if err := s.auditRepo.Insert(ctx, entry); err != nil {
		slog.Error("failed to record audit entry",
			"entity_type", entityType, "entity_id", entityID, "action", action, "error", err)
	}
}

func (s *AuditServiceImpl) ListLogs(ctx context.Context, filter audit.AuditFilter) (audit.ListAuditLogResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	logs, total, err := s.auditRepo.List(ctx, filter)
	if err != nil {
		return audit.ListAuditLogResponse{}, err
	}

	resp := audit.ListAuditLogResponse{
		Logs:       []audit.AuditLogResponse{},
		TotalItems: total,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		Page:       filter.Page,
		Limit:      filter.Limit,
	}
	for _, entry := range logs {
		resp.Logs = append(resp.Logs, audit.AuditLogResponse{
			ID:         entry.ID,
			UserID:     entry.UserID,
			EntityType: entry.EntityType,
			EntityID:   entry.EntityID,
			Action:     string(entry.Action),
			Detail:     entry.Detail,
			CreatedAt:  entry.CreatedAt.Format(time.RFC3339),
		})
	}
	return resp, nil
}
