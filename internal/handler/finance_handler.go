package handler

import (
	"go-stockroom/internal/model"
	"go-stockroom/internal/service"

	"github.com/gofiber/fiber/v2"
)

type FinanceHandler struct {
	service  service.FinanceService
	activity service.ActivityLogService
}

func NewFinanceHandler(s service.FinanceService, activity service.ActivityLogService) *FinanceHandler {
	return &FinanceHandler{service: s, activity: activity}
}

func (h *FinanceHandler) GetAll(c *fiber.Ctx) error {
	records, err := h.service.GetAll()
	if err != nil {
		return handleServiceError(c, err)
	}
	return ok(c, records)
}

func (h *FinanceHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid finance record ID")
	}
	record, err := h.service.GetByID(id)
	if err != nil {
		return handleServiceError(c, err)
	}
	return ok(c, record)
}

func (h *FinanceHandler) Create(c *fiber.Ctx) error {
	var record model.FinanceRecord
	if err := c.BodyParser(&record); err != nil {
		return badRequest(c, "Invalid JSON")
	}
	if err := h.service.Create(&record, getUserID(c)); err != nil {
		return handleServiceError(c, err)
	}
	go h.activity.Record(getUserUUID(c), "created", "finance_record", &record.ID,
		"Finance record created", nil, record)
	return created(c, "Finance record created", record)
}

func (h *FinanceHandler) Update(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid finance record ID")
	}
	var patch model.FinanceRecord
	if err := c.BodyParser(&patch); err != nil {
		return badRequest(c, "Invalid JSON")
	}
	updated, err := h.service.Update(id, &patch, getUserID(c))
	if err != nil {
		return handleServiceError(c, err)
	}
	return okMessage(c, "Finance record updated", updated)
}

func (h *FinanceHandler) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid finance record ID")
	}
	if err := h.service.Delete(id); err != nil {
		return handleServiceError(c, err)
	}
	return okMessage(c, "Finance record deleted", nil)
}
