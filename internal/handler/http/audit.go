package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/staffhive/erp-backend-go/internal/domain/audit"
	"github.com/staffhive/erp-backend-go/internal/handler/http/response"
	"github.com/staffhive/erp-backend-go/internal/pkg/validator"
)

type AuditHandler interface {
	ListLogs(w http.ResponseWriter, r *http.Request)
}

type auditHandlerImpl struct {
	auditService audit.AuditService
}

func NewAuditHandler(auditService audit.AuditService) AuditHandler {
	return &auditHandlerImpl{auditService: auditService}
}

func (h *auditHandlerImpl) ListLogs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var filter audit.AuditFilter
	filter.Page, _ = strconv.Atoi(q.Get("page"))
	filter.Limit, _ = strconv.Atoi(q.Get("limit"))

	if v := q.Get("entity_type"); v != "" {
		filter.EntityType = &v
	}
	if v := q.Get("entity_id"); v != "" {
		id, ok := validator.ParseID(v)
		if !ok {
			response.BadRequest(w, "entity_id must be numeric")
			return
		}
		filter.EntityID = &id
	}
	if v := q.Get("user_id"); v != "" {
		id, ok := validator.ParseID(v)
		if !ok {
			response.BadRequest(w, "user_id must be numeric")
			return
		}
		filter.UserID = &id
	}
	if v := q.Get("action"); v != "" {
		action := audit.Action(v)
		filter.Action = &action
	}
	for _, p := range []struct {
		param string
		dst   **time.Time
	}{
		{"from", &filter.From},
		{"to", &filter.To},
	} {
		if v := q.Get(p.param); v != "" {
			t, ok := validator.IsValidDate(v)
			if !ok {
				response.BadRequest(w, p.param+" must be YYYY-MM-DD")
				return
			}
			*p.dst = &t
		}
	}

	result, err := h.auditService.ListLogs(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMeta(w, result.Logs, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalItems,
		TotalPages: result.TotalPages,
	})
}
