package handler

import (
	"go-stockroom/internal/model"
	"go-stockroom/internal/service"

	"github.com/gofiber/fiber/v2"
)

type StockInHandler struct {
	service  service.StockInService
	activity service.ActivityLogService
}

func NewStockInHandler(s service.StockInService, activity service.ActivityLogService) *StockInHandler {
	return &StockInHandler{service: s, activity: activity}
}

func (h *StockInHandler) GetAll(c *fiber.Ctx) error {
	records, err := h.service.GetAll()
	if err != nil {
		return handleServiceError(c, err)
	}
	return ok(c, records)
}

func (h *StockInHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid stock in ID")
	}
	record, err := h.service.GetByID(id)
	if err != nil {
		return handleServiceError(c, err)
	}
	return ok(c, record)
}

// Create takes a full receipt payload: header plus items. Stock counters move
// in the same transaction.
func (h *StockInHandler) Create(c *fiber.Ctx) error {
	var record model.StockIn
	if err := c.BodyParser(&record); err != nil {
		return badRequest(c, "Invalid JSON")
	}

	createdRecord, err := h.service.Create(&record, getUserID(c))
	if err != nil {
		return handleServiceError(c, err)
	}

	go h.activity.Record(getUserUUID(c), "created", "stock_in", &createdRecord.ID,
		"Stock in "+createdRecord.ReferenceNumber+" recorded", nil, createdRecord)

	return created(c, "Stock in recorded", createdRecord)
}

// Update touches header fields only; items are immutable after receipt.
func (h *StockInHandler) Update(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid stock in ID")
	}

	var patch model.StockIn
	if err := c.BodyParser(&patch); err != nil {
		return badRequest(c, "Invalid JSON")
	}

	updated, err := h.service.UpdateHeader(id, &patch, getUserID(c))
	if err != nil {
		return handleServiceError(c, err)
	}

	go h.activity.Record(getUserUUID(c), "updated", "stock_in", &updated.ID,
		"Stock in "+updated.ReferenceNumber+" updated", nil, updated)

	return okMessage(c, "Stock in updated", updated)
}

func (h *StockInHandler) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid stock in ID")
	}
	if err := h.service.Delete(id, getUserID(c)); err != nil {
		return handleServiceError(c, err)
	}

	go h.activity.Record(getUserUUID(c), "deleted", "stock_in", &id, "Stock in reversed", nil, nil)

	return okMessage(c, "Stock in deleted", nil)
}
