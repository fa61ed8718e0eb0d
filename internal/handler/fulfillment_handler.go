package handler

import (
	"go-stockroom/internal/model"
	"go-stockroom/internal/service"

	"github.com/gofiber/fiber/v2"
)

type FulfillmentHandler struct {
	service  service.FulfillmentService
	activity service.ActivityLogService
}

func NewFulfillmentHandler(s service.FulfillmentService, activity service.ActivityLogService) *FulfillmentHandler {
	return &FulfillmentHandler{service: s, activity: activity}
}

func (h *FulfillmentHandler) GetRequestSlips(c *fiber.Ctx) error {
	slips, err := h.service.GetRequestSlips()
	if err != nil {
		return handleServiceError(c, err)
	}
	return ok(c, slips)
}

func (h *FulfillmentHandler) GetRequestSlip(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid request slip ID")
	}
	slip, err := h.service.GetRequestSlip(id)
	if err != nil {
		return handleServiceError(c, err)
	}
	return ok(c, slip)
}

func (h *FulfillmentHandler) CreateRequestSlip(c *fiber.Ctx) error {
	var slip model.RequestSlip
	if err := c.BodyParser(&slip); err != nil {
		return badRequest(c, "Invalid JSON")
	}
	createdSlip, err := h.service.CreateRequestSlip(&slip, getUserID(c))
	if err != nil {
		return handleServiceError(c, err)
	}
	go h.activity.Record(getUserUUID(c), "created", "request_slip", &createdSlip.ID,
		"Request slip "+createdSlip.SlipNumber+" created", nil, createdSlip)
	return created(c, "Request slip created", createdSlip)
}

type slipStatusRequest struct {
	Status model.RequestSlipStatus `json:"status"`
}

// UpdateRequestSlipStatus drives the approve/reject/fulfill flow. The approver
// is the authenticated user.
func (h *FulfillmentHandler) UpdateRequestSlipStatus(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid request slip ID")
	}
	var req slipStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid JSON")
	}
	if req.Status == "" {
		return validationFail(c, map[string]string{"status": "status is required"})
	}

	updated, err := h.service.UpdateRequestSlipStatus(id, req.Status, getUserName(c), getUserID(c))
	if err != nil {
		return handleServiceError(c, err)
	}
	go h.activity.Record(getUserUUID(c), "updated", "request_slip", &updated.ID,
		"Request slip "+updated.SlipNumber+" marked "+string(updated.Status), nil, updated)
	return okMessage(c, "Request slip updated", updated)
}

func (h *FulfillmentHandler) DeleteRequestSlip(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid request slip ID")
	}
	if err := h.service.DeleteRequestSlip(id); err != nil {
		return handleServiceError(c, err)
	}
	return okMessage(c, "Request slip deleted", nil)
}

func (h *FulfillmentHandler) GetShippings(c *fiber.Ctx) error {
	shipments, err := h.service.GetShippings()
	if err != nil {
		return handleServiceError(c, err)
	}
	return ok(c, shipments)
}

func (h *FulfillmentHandler) GetShipping(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid shipping ID")
	}
	shipping, err := h.service.GetShipping(id)
	if err != nil {
		return handleServiceError(c, err)
	}
	return ok(c, shipping)
}

func (h *FulfillmentHandler) CreateShipping(c *fiber.Ctx) error {
	var shipping model.Shipping
	if err := c.BodyParser(&shipping); err != nil {
		return badRequest(c, "Invalid JSON")
	}
	if err := h.service.CreateShipping(&shipping, getUserID(c)); err != nil {
		return handleServiceError(c, err)
	}
	go h.activity.Record(getUserUUID(c), "created", "shipping", &shipping.ID,
		"Shipment "+shipping.TrackingNumber+" created", nil, shipping)
	return created(c, "Shipping created", shipping)
}

func (h *FulfillmentHandler) UpdateShipping(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid shipping ID")
	}
	var patch model.Shipping
	if err := c.BodyParser(&patch); err != nil {
		return badRequest(c, "Invalid JSON")
	}
	updated, err := h.service.UpdateShipping(id, &patch, getUserID(c))
	if err != nil {
		return handleServiceError(c, err)
	}
	return okMessage(c, "Shipping updated", updated)
}

func (h *FulfillmentHandler) DeleteShipping(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid shipping ID")
	}
	if err := h.service.DeleteShipping(id); err != nil {
		return handleServiceError(c, err)
	}
	return okMessage(c, "Shipping deleted", nil)
}
