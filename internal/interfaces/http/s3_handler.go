package http

import (
	"log"

	"github.com/gofiber/fiber/v2"

	services "github.com/okiroth/gallery_backend/internal/service"
)

type S3Handler struct {
	service *services.S3Service
}

func NewS3Handler(service *services.S3Service) *S3Handler {
	return &S3Handler{service: service}
}

// HandleUploadImage accepts a multipart image for the admin panel and
// returns the hosted URL to put in the item's imageUrl field.
func (h *S3Handler) HandleUploadImage(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing file field"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("upload: failed to open file: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to read upload"})
	}
	defer file.Close()

	url, err := h.service.UploadImage(c.Context(), file, fileHeader)
	if err != nil {
		log.Printf("upload: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to store image"})
	}

	return c.JSON(fiber.Map{"url": url})
}
