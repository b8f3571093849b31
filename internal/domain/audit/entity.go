package audit

import "time"

type AuditLog struct {
	ID         int64
	UserID     *int64
	EntityType string
	EntityID   int64
	Action     Action
	Detail     map[string]interface{}
	CreatedAt  time.Time
}

type Action string

const (
	ActionCreate       Action = "create"
	ActionUpdate       Action = "update"
	ActionDelete       Action = "delete"
	ActionStatusChange Action = "status_change"
)
