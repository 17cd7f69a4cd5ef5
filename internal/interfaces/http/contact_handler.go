package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/okiroth/gallery_backend/internal/application"
	"github.com/okiroth/gallery_backend/internal/domain"
)

type ContactHandler struct {
	service *application.ContactService
}

func NewContactHandler(service *application.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

func (h *ContactHandler) Contact(c *fiber.Ctx) error {
	var in application.ContactInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if err := h.service.SubmitContact(c.Context(), c.IP(), in); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "message received"})
}

func (h *ContactHandler) Report(c *fiber.Ctx) error {
	var in application.ReportInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if err := h.service.SubmitReport(c.Context(), c.IP(), in); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "report received"})
}

// List is admin-panel only.
func (h *ContactHandler) List(c *fiber.Ctx) error {
	msgs, err := h.service.ListMessages(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	if msgs == nil {
		msgs = []domain.ContactMessage{}
	}
	return c.JSON(msgs)
}
