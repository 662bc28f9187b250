package handlers

import (
	"errors"

	"shadeworks/internal/domain"
	applog "shadeworks/internal/log"
	"shadeworks/internal/services"
	"shadeworks/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type SavedCartHandler struct {
	Saved *services.SavedCartService
}

func (h *SavedCartHandler) List(c *fiber.Ctx) error {
	sid := ensureSID(c)
	list := h.Saved.List(sid)
	if list == nil {
		list = []domain.SavedCart{}
	}
	return c.JSON(list)
}

func (h *SavedCartHandler) Save(c *fiber.Ctx) error {
	sid := ensureSID(c)
	name, ok := validate.Name(c.FormValue("name"))
	if !ok {
		return badRequest(c, "name too long")
	}
	saved, err := h.Saved.Save(sid, name, validate.Notes(c.FormValue("notes")))
	if errors.Is(err, domain.ErrEmptyCart) {
		return badRequest(c, "cannot save an empty cart")
	}
	if err != nil {
		applog.Error(c, "savedcart.save.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not save cart"})
	}
	applog.Audit(c, "savedcart.save", map[string]any{"id": saved.ID, "name": saved.Name})
	return c.Status(fiber.StatusCreated).JSON(saved)
}

func (h *SavedCartHandler) Delete(c *fiber.Ctx) error {
	sid := ensureSID(c)
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "missing id")
	}
	h.Saved.Delete(sid, id)
	applog.Audit(c, "savedcart.delete", map[string]any{"id": id})
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *SavedCartHandler) Load(c *fiber.Ctx) error {
	sid := ensureSID(c)
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "missing id")
	}
	cart, err := h.Saved.Replace(sid, id)
	if errors.Is(err, domain.ErrNotFound) {
		return notFound(c, "saved cart not found")
	}
	applog.Audit(c, "savedcart.load", map[string]any{"id": id})
	return c.JSON(cart)
}

func (h *SavedCartHandler) Merge(c *fiber.Ctx) error {
	sid := ensureSID(c)
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "missing id")
	}
	cart, err := h.Saved.Merge(sid, id)
	if errors.Is(err, domain.ErrNotFound) {
		return notFound(c, "saved cart not found")
	}
	applog.Audit(c, "savedcart.merge", map[string]any{"id": id})
	return c.JSON(cart)
}
