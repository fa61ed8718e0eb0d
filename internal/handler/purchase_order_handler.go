package handler

import (
	"go-stockroom/internal/model"
	"go-stockroom/internal/service"

	"github.com/gofiber/fiber/v2"
)

type PurchaseOrderHandler struct {
	service  service.PurchaseOrderService
	activity service.ActivityLogService
}

func NewPurchaseOrderHandler(s service.PurchaseOrderService, activity service.ActivityLogService) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{service: s, activity: activity}
}

func (h *PurchaseOrderHandler) GetAll(c *fiber.Ctx) error {
	orders, err := h.service.GetAll()
	if err != nil {
		return handleServiceError(c, err)
	}
	return ok(c, orders)
}

// GetOpen lists orders still eligible for receiving, for the wizard's scan
// step.
func (h *PurchaseOrderHandler) GetOpen(c *fiber.Ctx) error {
	orders, err := h.service.GetOpenOrders()
	if err != nil {
		return handleServiceError(c, err)
	}
	return ok(c, orders)
}

func (h *PurchaseOrderHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid purchase order ID")
	}
	order, err := h.service.GetByID(id)
	if err != nil {
		return handleServiceError(c, err)
	}
	return ok(c, order)
}

// GetByOrderNumber resolves a scanned or typed order number.
func (h *PurchaseOrderHandler) GetByOrderNumber(c *fiber.Ctx) error {
	orderNumber := c.Query("order_number")
	if orderNumber == "" {
		return badRequest(c, "order_number query parameter is required")
	}
	order, err := h.service.GetByOrderNumber(orderNumber)
	if err != nil {
		return handleServiceError(c, err)
	}
	return ok(c, order)
}

func (h *PurchaseOrderHandler) Create(c *fiber.Ctx) error {
	var order model.PurchaseOrder
	if err := c.BodyParser(&order); err != nil {
		return badRequest(c, "Invalid JSON")
	}

	createdOrder, err := h.service.Create(&order, getUserID(c))
	if err != nil {
		return handleServiceError(c, err)
	}

	go h.activity.Record(getUserUUID(c), "created", "purchase_order", &createdOrder.ID,
		"Purchase order "+createdOrder.OrderNumber+" created", nil, createdOrder)

	return created(c, "Purchase order created", createdOrder)
}

func (h *PurchaseOrderHandler) Update(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid purchase order ID")
	}

	var patch model.PurchaseOrder
	if err := c.BodyParser(&patch); err != nil {
		return badRequest(c, "Invalid JSON")
	}

	updated, err := h.service.Update(id, &patch, getUserID(c))
	if err != nil {
		return handleServiceError(c, err)
	}

	go h.activity.Record(getUserUUID(c), "updated", "purchase_order", &updated.ID,
		"Purchase order "+updated.OrderNumber+" updated", nil, updated)

	return okMessage(c, "Purchase order updated", updated)
}

func (h *PurchaseOrderHandler) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid purchase order ID")
	}
	if err := h.service.Delete(id); err != nil {
		return handleServiceError(c, err)
	}

	go h.activity.Record(getUserUUID(c), "deleted", "purchase_order", &id, "Purchase order deleted", nil, nil)

	return okMessage(c, "Purchase order deleted", nil)
}
