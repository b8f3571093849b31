package audit

import "time"

type AuditFilter struct {
	Page       int
	Limit      int
	EntityType *string
	EntityID   *int64
	UserID     *int64
	Action     *Action
	From       *time.Time
	To         *time.Time
}

type AuditLogResponse struct {
	ID         int64                  `json:"id"`
	UserID     *int64                 `json:"user_id,omitempty"`
	EntityType string                 `json:"entity_type"`
	EntityID   int64                  `json:"entity_id"`
	Action     string                 `json:"action"`
	Detail     map[string]interface{} `json:"detail,omitempty"`
	CreatedAt  string                 `json:"created_at"`
}

type ListAuditLogResponse struct {
	Logs       []AuditLogResponse `json:"logs"`
	TotalItems int64              `json:"total_items"`
	TotalPages int                `json:"total_pages"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
}
