package handlers

import (
	"errors"

	"shadeworks/internal/domain"
	applog "shadeworks/internal/log"
	"shadeworks/internal/services"
	"shadeworks/internal/validate"

	"github.com/gofiber/fiber/v2"
)

// SavedHandler serves the saved-for-later list.
type SavedHandler struct {
	Saved *services.SavedForLaterService
}

func (h *SavedHandler) List(c *fiber.Ctx) error {
	sid := ensureSID(c)
	items := h.Saved.List(sid)
	if items == nil {
		items = []domain.CartItem{}
	}
	return c.JSON(items)
}

func (h *SavedHandler) MoveToSaved(c *fiber.Ctx) error {
	sid := ensureSID(c)
	itemID, ok := validate.ItemID(c.FormValue("itemId"))
	if !ok {
		return badRequest(c, "missing itemId")
	}
	if err := h.Saved.MoveToSaved(sid, itemID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFound(c, "item not in cart")
		}
		return err
	}
	applog.Audit(c, "saved.move", map[string]any{"item": itemID})
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *SavedHandler) MoveToCart(c *fiber.Ctx) error {
	sid := ensureSID(c)
	itemID, ok := validate.ItemID(c.FormValue("itemId"))
	if !ok {
		return badRequest(c, "missing itemId")
	}
	if err := h.Saved.MoveToCart(sid, itemID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFound(c, "saved item not found")
		}
		return err
	}
	applog.Audit(c, "saved.restore", map[string]any{"item": itemID})
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *SavedHandler) Remove(c *fiber.Ctx) error {
	sid := ensureSID(c)
	itemID, ok := validate.ItemID(c.FormValue("itemId"))
	if !ok {
		return badRequest(c, "missing itemId")
	}
	h.Saved.Remove(sid, itemID)
	applog.Audit(c, "saved.remove", map[string]any{"item": itemID})
	return c.SendStatus(fiber.StatusNoContent)
}
