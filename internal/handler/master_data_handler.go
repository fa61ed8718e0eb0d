package handler

import (
	"go-stockroom/internal/model"
	"go-stockroom/internal/service"

	"github.com/gofiber/fiber/v2"
)

type MasterDataHandler struct {
	service  service.MasterDataService
	activity service.ActivityLogService
}

func NewMasterDataHandler(s service.MasterDataService, activity service.ActivityLogService) *MasterDataHandler {
	return &MasterDataHandler{service: s, activity: activity}
}

func (h *MasterDataHandler) GetCategories(c *fiber.Ctx) error {
	categories, err := h.service.GetCategories()
	if err != nil {
		return handleServiceError(c, err)
	}
	return ok(c, categories)
}

func (h *MasterDataHandler) CreateCategory(c *fiber.Ctx) error {
	var category model.Category
	if err := c.BodyParser(&category); err != nil {
		return badRequest(c, "Invalid JSON")
	}
	if err := h.service.CreateCategory(&category, getUserID(c)); err != nil {
		return handleServiceError(c, err)
	}
	go h.activity.Record(getUserUUID(c), "created", "category", &category.ID,
		"Category "+category.Name+" created", nil, category)
	return created(c, "Category created", category)
}

func (h *MasterDataHandler) UpdateCategory(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid category ID")
	}
	var patch model.Category
	if err := c.BodyParser(&patch); err != nil {
		return badRequest(c, "Invalid JSON")
	}
	updated, err := h.service.UpdateCategory(id, &patch, getUserID(c))
	if err != nil {
		return handleServiceError(c, err)
	}
	return okMessage(c, "Category updated", updated)
}

func (h *MasterDataHandler) DeleteCategory(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid category ID")
	}
	if err := h.service.DeleteCategory(id); err != nil {
		return handleServiceError(c, err)
	}
	return okMessage(c, "Category deleted", nil)
}

func (h *MasterDataHandler) GetSuppliers(c *fiber.Ctx) error {
	suppliers, err := h.service.GetSuppliers()
	if err != nil {
		return handleServiceError(c, err)
	}
	return ok(c, suppliers)
}

func (h *MasterDataHandler) GetSupplier(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid supplier ID")
	}
	supplier, err := h.service.GetSupplier(id)
	if err != nil {
		return handleServiceError(c, err)
	}
	return ok(c, supplier)
}

func (h *MasterDataHandler) CreateSupplier(c *fiber.Ctx) error {
	var supplier model.Supplier
	if err := c.BodyParser(&supplier); err != nil {
		return badRequest(c, "Invalid JSON")
	}
	if err := h.service.CreateSupplier(&supplier, getUserID(c)); err != nil {
		return handleServiceError(c, err)
	}
	go h.activity.Record(getUserUUID(c), "created", "supplier", &supplier.ID,
		"Supplier "+supplier.CompanyName+" created", nil, supplier)
	return created(c, "Supplier created", supplier)
}

func (h *MasterDataHandler) UpdateSupplier(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid supplier ID")
	}
	var patch model.Supplier
	if err := c.BodyParser(&patch); err != nil {
		return badRequest(c, "Invalid JSON")
	}
	updated, err := h.service.UpdateSupplier(id, &patch, getUserID(c))
	if err != nil {
		return handleServiceError(c, err)
	}
	return okMessage(c, "Supplier updated", updated)
}

func (h *MasterDataHandler) DeleteSupplier(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid supplier ID")
	}
	if err := h.service.DeleteSupplier(id); err != nil {
		return handleServiceError(c, err)
	}
	return okMessage(c, "Supplier deleted", nil)
}

func (h *MasterDataHandler) GetCustomers(c *fiber.Ctx) error {
	customers, err := h.service.GetCustomers()
	if err != nil {
		return handleServiceError(c, err)
	}
	return ok(c, customers)
}

func (h *MasterDataHandler) GetCustomer(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid customer ID")
	}
	customer, err := h.service.GetCustomer(id)
	if err != nil {
		return handleServiceError(c, err)
	}
	return ok(c, customer)
}

func (h *MasterDataHandler) CreateCustomer(c *fiber.Ctx) error {
	var customer model.Customer
	if err := c.BodyParser(&customer); err != nil {
		return badRequest(c, "Invalid JSON")
	}
	if err := h.service.CreateCustomer(&customer, getUserID(c)); err != nil {
		return handleServiceError(c, err)
	}
	go h.activity.Record(getUserUUID(c), "created", "customer", &customer.ID,
		"Customer "+customer.Name+" created", nil, customer)
	return created(c, "Customer created", customer)
}

func (h *MasterDataHandler) UpdateCustomer(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid customer ID")
	}
	var patch model.Customer
	if err := c.BodyParser(&patch); err != nil {
		return badRequest(c, "Invalid JSON")
	}
	updated, err := h.service.UpdateCustomer(id, &patch, getUserID(c))
	if err != nil {
		return handleServiceError(c, err)
	}
	return okMessage(c, "Customer updated", updated)
}

func (h *MasterDataHandler) DeleteCustomer(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid customer ID")
	}
	if err := h.service.DeleteCustomer(id); err != nil {
		return handleServiceError(c, err)
	}
	return okMessage(c, "Customer deleted", nil)
}
