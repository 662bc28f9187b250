package services

import (
	"math"

	"shadeworks/internal/domain"
	"shadeworks/internal/pricing"
	"shadeworks/internal/store"
)

// CartService is the ledger for the active cart. Every mutation is a
// pure transform of the persisted cart followed by a recalculation and
// a write through the gateway, which broadcasts the change to other
// open views.
type CartService struct {
	Store   *store.Gateway
	TaxRate float64
}

func NewCartService(gw *store.Gateway, taxRate float64) *CartService {
	if taxRate <= 0 {
		taxRate = 0.07
	}
	return &CartService{Store: gw, TaxRate: taxRate}
}

// Current returns the persisted cart with totals freshly derived.
func (s *CartService) Current(profile string) domain.Cart {
	return s.Recalculate(s.Store.LoadCart(profile))
}

// AddProduct configures and prices a catalog product, then adds it to
// the cart. The unit price is locked in here; it is never recomputed
// after this point.
func (s *CartService) AddProduct(profile string, p domain.Product, qty int, width, height float64, options map[string]string) domain.Cart {
	if qty < 1 {
		qty = 1
	}
	cfg := pricing.FromOptions(p.ProductType, width, height, options)
	price := pricing.CalculateForBase(p.BasePrice, cfg).Total

	item := domain.CartItem{
		ID:        domain.ItemIdentity(p.ID, width, height, options),
		ProductID: p.ID,
		Title:     p.Title,
		Image:     p.Image,
		Price:     price,
		Quantity:  qty,
		Width:     width,
		Height:    height,
		Options:   options,
	}
	return s.AddItem(profile, item)
}

// AddItem merges an already-priced item into the cart: same identity
// key means the quantities are summed on the existing line, otherwise
// the item is appended.
func (s *CartService) AddItem(profile string, item domain.CartItem) domain.Cart {
	if item.Quantity < 1 {
		item.Quantity = 1
	}
	cart := s.Store.LoadCart(profile)

	merged := false
	for i := range cart.Items {
		if cart.Items[i].ID == item.ID {
			cart.Items[i].Quantity += item.Quantity
			merged = true
			break
		}
	}
	if !merged {
		cart.Items = append(cart.Items, item.Clone())
	}
	return s.persist(profile, cart)
}

// UpdateQuantity sets a line's quantity, clamped to a minimum of 1.
// Quantity zero never removes a line; use RemoveItem for that.
func (s *CartService) UpdateQuantity(profile, itemID string, qty int) domain.Cart {
	if qty < 1 {
		qty = 1
	}
	cart := s.Store.LoadCart(profile)
	for i := range cart.Items {
		if cart.Items[i].ID == itemID {
			cart.Items[i].Quantity = qty
			break
		}
	}
	return s.persist(profile, cart)
}

// RemoveItem drops a line entirely. A missing id is a no-op.
func (s *CartService) RemoveItem(profile, itemID string) domain.Cart {
	cart := s.Store.LoadCart(profile)
	for i := range cart.Items {
		if cart.Items[i].ID == itemID {
			cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
			break
		}
	}
	return s.persist(profile, cart)
}

// Clear empties the cart, dropping any active coupon with it.
func (s *CartService) Clear(profile string) domain.Cart {
	return s.persist(profile, domain.Cart{})
}

// ApplyCoupon validates a code against the coupon table. On success the
// discount is derived from the subtotal and tax is charged on the
// discounted amount; the last applied coupon replaces any prior one.
// Unknown codes leave the cart untouched.
func (s *CartService) ApplyCoupon(profile, code string) (domain.Cart, bool, string) {
	cart := s.Store.LoadCart(profile)
	canonical, ok := pricing.CanonicalCoupon(code)
	if !ok {
		return s.Recalculate(cart), false, "invalid coupon code"
	}
	cart.CouponCode = canonical
	return s.persist(profile, cart), true, "coupon applied"
}

// ReplaceItems swaps the entire line set, used by saved-cart loads.
func (s *CartService) ReplaceItems(profile string, items []domain.CartItem) domain.Cart {
	cart := s.Store.LoadCart(profile)
	cart.Items = domain.CloneItems(items)
	return s.persist(profile, cart)
}

// MergeItems folds a snapshot's lines into the cart, summing quantities
// on identity matches and appending the rest.
func (s *CartService) MergeItems(profile string, items []domain.CartItem) domain.Cart {
	cart := s.Store.LoadCart(profile)
	for _, in := range items {
		merged := false
		for i := range cart.Items {
			if cart.Items[i].ID == in.ID {
				cart.Items[i].Quantity += in.Quantity
				merged = true
				break
			}
		}
		if !merged {
			cart.Items = append(cart.Items, in.Clone())
		}
	}
	return s.persist(profile, cart)
}

func (s *CartService) persist(profile string, cart domain.Cart) domain.Cart {
	cart = s.Recalculate(cart)
	s.Store.SaveCart(profile, cart)
	return cart
}

// Recalculate derives every monetary field from the items and the
// active coupon. Pure and idempotent: recalculating an already
// recalculated cart changes nothing.
func (s *CartService) Recalculate(cart domain.Cart) domain.Cart {
	cart.TaxRate = s.TaxRate
	if cart.Items == nil {
		cart.Items = []domain.CartItem{}
	}

	subtotal := 0.0
	for _, it := range cart.Items {
		subtotal += it.Price * float64(it.Quantity)
	}
	cart.Subtotal = round2(subtotal)

	cart.Discount = 0
	if cart.CouponCode != "" {
		if frac, ok := pricing.LookupCoupon(cart.CouponCode); ok {
			cart.Discount = round2(cart.Subtotal * frac)
		}
	}

	// Flat-rate shipping under the free threshold; nothing to ship on
	// an empty cart.
	switch {
	case len(cart.Items) == 0 || cart.Subtotal >= 100:
		cart.ShippingAmount = 0
	default:
		cart.ShippingAmount = 9.99
	}

	taxable := cart.Subtotal - cart.Discount
	if taxable < 0 {
		taxable = 0
	}
	cart.TaxAmount = round2(cart.TaxRate * taxable)
	cart.Total = round2(taxable + cart.TaxAmount + cart.ShippingAmount)
	return cart
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
