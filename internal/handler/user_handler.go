package handler

import (
	"go-stockroom/internal/service"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	service service.UserService
}

func NewUserHandler(s service.UserService) *UserHandler {
	return &UserHandler{service: s}
}

func (h *UserHandler) GetAll(c *fiber.Ctx) error {
	users, err := h.service.GetAllUsers()
	if err != nil {
		return handleServiceError(c, err)
	}
	return ok(c, users)
}

func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid user ID")
	}
	user, err := h.service.GetUserByID(id)
	if err != nil {
		return handleServiceError(c, err)
	}
	return ok(c, user)
}

func (h *UserHandler) Create(c *fiber.Ctx) error {
	var req service.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid JSON")
	}

	user, err := h.service.CreateUser(&req, getUserID(c))
	if err != nil {
		return handleServiceError(c, err)
	}
	return created(c, "User created", user.ToResponse())
}

func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid user ID")
	}

	var req service.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid JSON")
	}

	user, err := h.service.UpdateUser(id, &req, getUserID(c))
	if err != nil {
		return handleServiceError(c, err)
	}
	return okMessage(c, "User updated", user.ToResponse())
}

func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid user ID")
	}
	if err := h.service.DeleteUser(id); err != nil {
		return handleServiceError(c, err)
	}
	return okMessage(c, "User deleted", nil)
}

type updatePrivilegesRequest struct {
	Privileges []string `json:"privileges"`
}

func (h *UserHandler) UpdatePrivileges(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid user ID")
	}

	var req updatePrivilegesRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid JSON")
	}

	user, err := h.service.UpdateUserPrivileges(id, req.Privileges, getUserID(c))
	if err != nil {
		return handleServiceError(c, err)
	}
	return okMessage(c, "Privileges updated", user.ToResponse())
}

func (h *UserHandler) GetRoles(c *fiber.Ctx) error {
	roles, err := h.service.GetAllRoles()
	if err != nil {
		return handleServiceError(c, err)
	}
	return ok(c, roles)
}
