package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/inventory-service/internal/api/dto"
	"github.com/spec-kit/inventory-service/internal/service"
)

// ActivitiesHandler exposes the audit trail to administrators.
type ActivitiesHandler struct {
	audit *service.AuditService
}

// NewActivitiesHandler constructs handler.
func NewActivitiesHandler(audit *service.AuditService) *ActivitiesHandler {
	return &ActivitiesHandler{audit: audit}
}

// List handles GET /api/activities?limit=.
func (h *ActivitiesHandler) List(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "50"))

	entries, err := h.audit.ListRecent(c.UserContext(), limit)
	if err != nil {
		return err
	}
	return respondData(c, http.StatusOK, dto.NewActivityListResponse(entries))
}
