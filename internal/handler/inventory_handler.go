package handler

import (
	"go-stockroom/internal/model"
	"go-stockroom/internal/service"

	"github.com/gofiber/fiber/v2"
)

type InventoryHandler struct {
	service  service.InventoryService
	activity service.ActivityLogService
}

func NewInventoryHandler(s service.InventoryService, activity service.ActivityLogService) *InventoryHandler {
	return &InventoryHandler{service: s, activity: activity}
}

func (h *InventoryHandler) GetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts()
	if err != nil {
		return handleServiceError(c, err)
	}
	return ok(c, products)
}

// GetProductOptions serves the lightweight dropdown used by order forms.
func (h *InventoryHandler) GetProductOptions(c *fiber.Ctx) error {
	products, err := h.service.GetActiveProducts()
	if err != nil {
		return handleServiceError(c, err)
	}
	return ok(c, products)
}

func (h *InventoryHandler) GetProduct(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid product ID")
	}
	product, err := h.service.GetProduct(id)
	if err != nil {
		return handleServiceError(c, err)
	}
	return ok(c, product)
}

func (h *InventoryHandler) CreateProduct(c *fiber.Ctx) error {
	var product model.Product
	if err := c.BodyParser(&product); err != nil {
		return badRequest(c, "Invalid JSON")
	}

	userID := getUserID(c)
	if err := h.service.CreateProduct(&product, userID); err != nil {
		return handleServiceError(c, err)
	}

	go h.activity.Record(getUserUUID(c), "created", "product", &product.ID,
		"Product "+product.SKU+" created", nil, product)

	return created(c, "Product created", product)
}

func (h *InventoryHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid product ID")
	}

	var patch model.Product
	if err := c.BodyParser(&patch); err != nil {
		return badRequest(c, "Invalid JSON")
	}

	updated, err := h.service.UpdateProduct(id, &patch, getUserID(c))
	if err != nil {
		return handleServiceError(c, err)
	}

	go h.activity.Record(getUserUUID(c), "updated", "product", &updated.ID,
		"Product "+updated.SKU+" updated", nil, updated)

	return okMessage(c, "Product updated", updated)
}

func (h *InventoryHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid product ID")
	}
	if err := h.service.DeleteProduct(id, getUserID(c)); err != nil {
		return handleServiceError(c, err)
	}

	go h.activity.Record(getUserUUID(c), "deleted", "product", &id, "Product deleted", nil, nil)

	return okMessage(c, "Product deleted", nil)
}

func (h *InventoryHandler) GetBatches(c *fiber.Ctx) error {
	batches, err := h.service.GetAllBatches()
	if err != nil {
		return handleServiceError(c, err)
	}
	return ok(c, batches)
}

func (h *InventoryHandler) CreateBatch(c *fiber.Ctx) error {
	var batch model.Batch
	if err := c.BodyParser(&batch); err != nil {
		return badRequest(c, "Invalid JSON")
	}

	if err := h.service.CreateBatch(&batch, getUserID(c)); err != nil {
		return handleServiceError(c, err)
	}

	go h.activity.Record(getUserUUID(c), "created", "batch", &batch.ID,
		"Batch "+batch.BatchNumber+" created", nil, batch)

	return created(c, "Batch created", batch)
}
