package handlers

import (
	"shadeworks/internal/pricing"
	"shadeworks/internal/services"
	"shadeworks/internal/validate"

	"github.com/gofiber/fiber/v2"
)

// QuoteHandler prices a configuration without touching the cart, so a
// product page can itemize before add-to-cart.
type QuoteHandler struct {
	Catalog *services.CatalogService
}

func (h *QuoteHandler) Quote(c *fiber.Ctx) error {
	productID, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		return badRequest(c, "missing productId")
	}
	width, wok := validate.Dimension(c.FormValue("width"))
	height, hok := validate.Dimension(c.FormValue("height"))
	if !wok || !hok {
		return badRequest(c, "dimensions must be between 6 and 200 inches")
	}

	p, err := h.Catalog.Get(productID)
	if err != nil {
		return notFound(c, "product not found")
	}

	cfg := pricing.FromOptions(p.ProductType, width, height, formOptions(c))
	return c.JSON(pricing.CalculateForBase(p.BasePrice, cfg))
}
