package audit

import "context"

type AuditLogRepository interface {
	Insert(ctx context.Context, entry AuditLog) error
	List(ctx context.Context, filter AuditFilter) ([]AuditLog, int64, error)
}

// Recorder is what mutating services depend on. Recording is best-effort:
// implementations log failures instead of returning them, so an audit outage
// never fails a business request.
type Recorder interface {
	Record(ctx context.Context, entityType string, entityID int64, action Action, detail map[string]interface{})
}

type AuditService interface {
	Recorder
	ListLogs(ctx context.Context, filter AuditFilter) (ListAuditLogResponse, error)
}
