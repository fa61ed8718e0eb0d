package handler

import (
	"go-stockroom/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ActivityLogHandler struct {
	service service.ActivityLogService
}

func NewActivityLogHandler(s service.ActivityLogService) *ActivityLogHandler {
	return &ActivityLogHandler{service: s}
}

// GetAll returns the most recent audit entries, newest first. The trail is
// append-only; there is no update or delete endpoint.
func (h *ActivityLogHandler) GetAll(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 100)
	entries, err := h.service.GetAll(limit)
	if err != nil {
		return handleServiceError(c, err)
	}
	return ok(c, entries)
}
