package handler

import (
	"errors"

	"go-stockroom/internal/service"
	"go-stockroom/internal/wizard"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Every endpoint answers the same envelope: success, data, message, errors.
// Validation failures are 422 with a field-keyed error map and imply that
// nothing was written.

func ok(c *fiber.Ctx, data interface{}) error {
	return c.JSON(fiber.Map{"success": true, "data": data})
}

func okMessage(c *fiber.Ctx, message string, data interface{}) error {
	return c.JSON(fiber.Map{"success": true, "message": message, "data": data})
}

func created(c *fiber.Ctx, message string, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": message, "data": data})
}

func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"success": false, "message": message})
}

func badRequest(c *fiber.Ctx, message string) error {
	return fail(c, fiber.StatusBadRequest, message)
}

func validationFail(c *fiber.Ctx, fields map[string]string) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"success": false,
		"message": "Validation failed",
		"errors":  fields,
	})
}

var notFoundErrors = []error{
	service.ErrNotFound,
	service.ErrProductNotFound,
	service.ErrStockInNotFound,
	service.ErrPurchaseOrderNotFound,
	service.ErrSalesOrderNotFound,
	service.ErrCategoryNotFound,
	service.ErrSupplierNotFound,
	service.ErrCustomerNotFound,
	service.ErrRequestSlipNotFound,
	service.ErrShippingNotFound,
	service.ErrFinanceRecordNotFound,
	service.ErrNotificationNotFound,
	service.ErrUserNotFound,
	service.ErrRoleNotFound,
	wizard.ErrSessionNotFound,
}

var conflictErrors = []error{
	service.ErrStockInConsumed,
	service.ErrEmailExists,
	wizard.ErrSubmitInFlight,
	wizard.ErrAlreadySubmitted,
}

// handleServiceError maps service failures onto the envelope. Unrecognized
// errors become opaque 500s; their detail belongs in the server log, not the
// response.
func handleServiceError(c *fiber.Ctx, err error) error {
	if ve, isValidation := service.AsValidationError(err); isValidation {
		return validationFail(c, ve.Fields)
	}
	for _, sentinel := range notFoundErrors {
		if errors.Is(err, sentinel) {
			return fail(c, fiber.StatusNotFound, err.Error())
		}
	}
	for _, sentinel := range conflictErrors {
		if errors.Is(err, sentinel) {
			return fail(c, fiber.StatusConflict, err.Error())
		}
	}
	return fail(c, fiber.StatusInternalServerError, "Internal Server Error")
}

// Helpers for user info from the JWT context (set by the auth middleware).

func getUserID(c *fiber.Ctx) string {
	userID := c.Locals("user_id")
	if userID == nil {
		return "system"
	}
	return userID.(string)
}

func getUserUUID(c *fiber.Ctx) *uuid.UUID {
	id, err := uuid.Parse(getUserID(c))
	if err != nil {
		return nil
	}
	return &id
}

func getUserName(c *fiber.Ctx) string {
	userName := c.Locals("user_name")
	if userName == nil {
		return "Unknown"
	}
	return userName.(string)
}

func getUserEmail(c *fiber.Ctx) string {
	userEmail := c.Locals("user_email")
	if userEmail == nil {
		return ""
	}
	return userEmail.(string)
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Params(name))
}
