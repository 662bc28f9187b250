package handlers

import (
	"strings"

	applog "shadeworks/internal/log"
	"shadeworks/internal/services"
	"shadeworks/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type CartHandler struct {
	Cart    *services.CartService
	Catalog *services.CatalogService
}

// formOptions collects the dynamic option bag from opt.<name> form
// fields. Invalid names or values drop the pair.
func formOptions(c *fiber.Ctx) map[string]string {
	opts := map[string]string{}
	c.Request().PostArgs().VisitAll(func(key, value []byte) {
		k := string(key)
		if !strings.HasPrefix(k, "opt.") {
			return
		}
		name := strings.TrimPrefix(k, "opt.")
		v, ok := validate.OptionValue(string(value))
		if !validate.OptionName(name) || !ok {
			return
		}
		opts[name] = v
	})
	if len(opts) == 0 {
		return nil
	}
	return opts
}

func (h *CartHandler) View(c *fiber.Ctx) error {
	sid := ensureSID(c)
	return c.JSON(h.Cart.Current(sid))
}

func (h *CartHandler) Add(c *fiber.Ctx) error {
	sid := ensureSID(c)
	productID, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		return badRequest(c, "missing productId")
	}
	qty := validate.Qty(c.FormValue("qty"))
	width, wok := validate.Dimension(c.FormValue("width"))
	height, hok := validate.Dimension(c.FormValue("height"))
	if !wok || !hok {
		return badRequest(c, "dimensions must be between 6 and 200 inches")
	}

	p, err := h.Catalog.Get(productID)
	if err != nil {
		applog.Error(c, "cart.add.lookup.fail", err, map[string]any{"product": productID})
		return notFound(c, "product not found")
	}

	cart := h.Cart.AddProduct(sid, p, qty, width, height, formOptions(c))
	applog.Audit(c, "cart.add", map[string]any{"product": productID, "qty": qty})
	return c.JSON(cart)
}

func (h *CartHandler) UpdateQuantity(c *fiber.Ctx) error {
	sid := ensureSID(c)
	itemID, ok := validate.ItemID(c.FormValue("itemId"))
	if !ok {
		return badRequest(c, "missing itemId")
	}
	qty := validate.Qty(c.FormValue("qty"))
	return c.JSON(h.Cart.UpdateQuantity(sid, itemID, qty))
}

func (h *CartHandler) Remove(c *fiber.Ctx) error {
	sid := ensureSID(c)
	itemID, ok := validate.ItemID(c.FormValue("itemId"))
	if !ok {
		return badRequest(c, "missing itemId")
	}
	cart := h.Cart.RemoveItem(sid, itemID)
	applog.Audit(c, "cart.remove", map[string]any{"item": itemID})
	return c.JSON(cart)
}

func (h *CartHandler) Clear(c *fiber.Ctx) error {
	sid := ensureSID(c)
	applog.Audit(c, "cart.clear", nil)
	return c.JSON(h.Cart.Clear(sid))
}

func (h *CartHandler) ApplyCoupon(c *fiber.Ctx) error {
	sid := ensureSID(c)
	code := c.FormValue("code")
	if strings.TrimSpace(code) == "" {
		return badRequest(c, "missing code")
	}
	cart, ok, msg := h.Cart.ApplyCoupon(sid, code)
	if ok {
		applog.Audit(c, "cart.coupon", map[string]any{"code": cart.CouponCode})
	}
	return c.JSON(fiber.Map{"success": ok, "message": msg, "cart": cart})
}
