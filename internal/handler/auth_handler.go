package handler

import (
	"errors"

	"go-stockroom/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type AuthHandler struct {
	service service.AuthService
}

func NewAuthHandler(s service.AuthService) *AuthHandler {
	return &AuthHandler{service: s}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid JSON")
	}
	if req.Email == "" || req.Password == "" {
		return validationFail(c, map[string]string{"email": "email and password are required"})
	}

	resp, err := h.service.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) || errors.Is(err, service.ErrUserInactive) {
			return fail(c, fiber.StatusUnauthorized, err.Error())
		}
		return handleServiceError(c, err)
	}

	return okMessage(c, "Login successful", resp)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	userID, err := uuid.Parse(getUserID(c))
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, "Invalid session")
	}
	if err := h.service.Logout(userID); err != nil {
		return handleServiceError(c, err)
	}
	return okMessage(c, "Logged out", nil)
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID, err := uuid.Parse(getUserID(c))
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, "Invalid session")
	}
	user, err := h.service.CurrentUser(userID)
	if err != nil {
		return handleServiceError(c, err)
	}
	return ok(c, user)
}

type resetPasswordRequest struct {
	Email       string `json:"email"`
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var req resetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid JSON")
	}
	if len(req.NewPassword) < 6 {
		return validationFail(c, map[string]string{"new_password": "must be at least 6 characters"})
	}

	if err := h.service.ResetPassword(req.Email, req.OldPassword, req.NewPassword); err != nil {
		if errors.Is(err, service.ErrWrongPassword) {
			return fail(c, fiber.StatusUnauthorized, err.Error())
		}
		return handleServiceError(c, err)
	}
	return okMessage(c, "Password updated", nil)
}
