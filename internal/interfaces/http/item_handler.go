package http

import (
	"context"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/okiroth/gallery_backend/internal/application"
	"github.com/okiroth/gallery_backend/internal/domain"
	"github.com/okiroth/gallery_backend/internal/viewmodel"
)

type ItemHandler struct {
	service *application.ItemService
}

func NewItemHandler(service *application.ItemService) *ItemHandler {
	return &ItemHandler{service: service}
}

func (h *ItemHandler) List(c *fiber.Ctx) error {
	items, err := h.service.ListItems(c.Context(), c.Query("sort"), c.Query("order"))
	if err != nil {
		return respondError(c, err)
	}
	if items == nil {
		items = []domain.GalleryItem{}
	}
	return c.JSON(items)
}

// ViewPage runs the gallery view-model pipeline server-side and returns
// the page slice the client would compute for the same controls.
func (h *ItemHandler) ViewPage(c *fiber.Ctx) error {
	items, err := h.service.ListItems(c.Context(), "", "")
	if err != nil {
		return respondError(c, err)
	}

	state := viewmodel.NewState()
	state.SearchTerm = c.Query("search")
	if cat := c.Query("category"); cat != "" {
		state.Category = cat
	}
	switch viewmodel.SortKey(c.Query("sort")) {
	case viewmodel.SortName:
		state.SortKey = viewmodel.SortName
	case viewmodel.SortLikes:
		state.SortKey = viewmodel.SortLikes
	default:
		state.SortKey = viewmodel.SortDate
	}
	switch c.Query("dir") {
	case "asc":
		state.Directions[state.SortKey] = viewmodel.Ascending
	case "desc":
		state.Directions[state.SortKey] = viewmodel.Descending
	}
	state.Page = c.QueryInt("page", 1)

	return c.JSON(viewmodel.Apply(items, state))
}

func (h *ItemHandler) Create(c *fiber.Ctx) error {
	var in application.ItemInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	item, err := h.service.CreateItem(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "item created", "item": item})
}

func (h *ItemHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	var in application.ItemInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	item, err := h.service.UpdateItem(c.Context(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "item updated", "item": item})
}

func (h *ItemHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	if err := h.service.DeleteItem(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "item deleted"})
}

// Like/dislike adjustments carry no auth; double-count prevention is
// the client's job.

func (h *ItemHandler) Like(c *fiber.Ctx) error {
	return h.adjust(c, h.service.AddLikes, 1)
}

func (h *ItemHandler) Unlike(c *fiber.Ctx) error {
	return h.adjust(c, h.service.AddLikes, -1)
}

func (h *ItemHandler) Dislike(c *fiber.Ctx) error {
	return h.adjust(c, h.service.AddDislikes, 1)
}

func (h *ItemHandler) Undislike(c *fiber.Ctx) error {
	return h.adjust(c, h.service.AddDislikes, -1)
}

func (h *ItemHandler) adjust(c *fiber.Ctx, op func(ctx context.Context, id, delta int) error, delta int) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}
	if err := op(c.Context(), id, delta); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
