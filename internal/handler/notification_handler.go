package handler

import (
	"go-stockroom/internal/service"

	"github.com/gofiber/fiber/v2"
)

type NotificationHandler struct {
	service service.NotificationService
}

func NewNotificationHandler(s service.NotificationService) *NotificationHandler {
	return &NotificationHandler{service: s}
}

func (h *NotificationHandler) GetAll(c *fiber.Ctx) error {
	notifications, err := h.service.GetAll()
	if err != nil {
		return handleServiceError(c, err)
	}
	return ok(c, notifications)
}

func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid notification ID")
	}
	if err := h.service.MarkRead(id); err != nil {
		return handleServiceError(c, err)
	}
	return okMessage(c, "Notification marked as read", nil)
}

func (h *NotificationHandler) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid notification ID")
	}
	if err := h.service.Delete(id); err != nil {
		return handleServiceError(c, err)
	}
	return okMessage(c, "Notification deleted", nil)
}
