package dto

import (
	"time"

	"github.com/spec-kit/inventory-service/internal/domain"
)

// ActivityResponse is the wire shape of an audit trail entry.
type ActivityResponse struct {
	ID        int       `json:"id"`
	Action    string    `json:"action"`
	Entity    string    `json:"entity"`
	EntityRef int       `json:"entity_ref"`
	Actor     string    `json:"actor"`
	Detail    string    `json:"detail"`
	CreatedAt time.Time `json:"created_at"`
}

// NewActivityListResponse maps audit entries to their response shape.
func NewActivityListResponse(entries []domain.LogActivity) []ActivityResponse {
	out := make([]ActivityResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, ActivityResponse{
			ID:        e.ID,
			Action:    e.Action,
			Entity:    e.Entity,
			EntityRef: e.EntityRef,
			Actor:     e.Actor,
			Detail:    e.Detail,
			CreatedAt: e.CreatedAt,
		})
	}
	return out
}
