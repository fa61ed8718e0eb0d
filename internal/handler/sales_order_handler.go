package handler

import (
	"go-stockroom/internal/model"
	"go-stockroom/internal/service"

	"github.com/gofiber/fiber/v2"
)

type SalesOrderHandler struct {
	service  service.SalesOrderService
	activity service.ActivityLogService
}

func NewSalesOrderHandler(s service.SalesOrderService, activity service.ActivityLogService) *SalesOrderHandler {
	return &SalesOrderHandler{service: s, activity: activity}
}

func (h *SalesOrderHandler) GetAll(c *fiber.Ctx) error {
	orders, err := h.service.GetAll()
	if err != nil {
		return handleServiceError(c, err)
	}
	return ok(c, orders)
}

func (h *SalesOrderHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid sales order ID")
	}
	order, err := h.service.GetByID(id)
	if err != nil {
		return handleServiceError(c, err)
	}
	return ok(c, order)
}

func (h *SalesOrderHandler) Create(c *fiber.Ctx) error {
	var order model.SalesOrder
	if err := c.BodyParser(&order); err != nil {
		return badRequest(c, "Invalid JSON")
	}

	createdOrder, err := h.service.Create(&order, getUserID(c))
	if err != nil {
		return handleServiceError(c, err)
	}

	go h.activity.Record(getUserUUID(c), "created", "sales_order", &createdOrder.ID,
		"Sales order "+createdOrder.OrderNumber+" created", nil, createdOrder)

	return created(c, "Sales order created", createdOrder)
}

func (h *SalesOrderHandler) Update(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid sales order ID")
	}

	var patch model.SalesOrder
	if err := c.BodyParser(&patch); err != nil {
		return badRequest(c, "Invalid JSON")
	}

	updated, err := h.service.Update(id, &patch, getUserID(c))
	if err != nil {
		return handleServiceError(c, err)
	}

	go h.activity.Record(getUserUUID(c), "updated", "sales_order", &updated.ID,
		"Sales order "+updated.OrderNumber+" updated", nil, updated)

	return okMessage(c, "Sales order updated", updated)
}

func (h *SalesOrderHandler) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid sales order ID")
	}
	if err := h.service.Delete(id, getUserID(c)); err != nil {
		return handleServiceError(c, err)
	}

	go h.activity.Record(getUserUUID(c), "deleted", "sales_order", &id, "Sales order deleted", nil, nil)

	return okMessage(c, "Sales order deleted", nil)
}
