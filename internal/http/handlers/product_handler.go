package handlers

import (
	"strconv"

	applog "shadeworks/internal/log"
	"shadeworks/internal/services"
	"shadeworks/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	Catalog *services.CatalogService
}

func (h *ProductHandler) List(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	catID := c.Query("category")

	var (
		products any
		err      error
	)
	if catID != "" {
		products, err = h.Catalog.ListByCategory(catID, page, 0)
	} else {
		products, err = h.Catalog.List(page, 0)
	}
	if err != nil {
		applog.Error(c, "catalog.list.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not load products"})
	}
	return c.JSON(products)
}

func (h *ProductHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "missing id")
	}
	p, err := h.Catalog.Get(id)
	if err != nil {
		return notFound(c, "product not found")
	}
	return c.JSON(p)
}
