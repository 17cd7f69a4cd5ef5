package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/okiroth/gallery_backend/internal/application"
)

type AuthHandler struct {
	auth   *application.AuthService
	shared *application.SharedSecretAuthorizer
}

func NewAuthHandler(auth *application.AuthService, shared *application.SharedSecretAuthorizer) *AuthHandler {
	return &AuthHandler{auth: auth, shared: shared}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	token, err := h.auth.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid credentials"})
	}
	return c.JSON(fiber.Map{"token": token})
}

// Check is the shared-secret probe the admin panel uses before showing
// the editing UI.
func (h *AuthHandler) Check(c *fiber.Ctx) error {
	var req struct {
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if _, err := h.shared.Authorize(req.Password); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid password"})
	}
	return c.JSON(fiber.Map{"message": "ok"})
}
