package domain

// Product is a catalog row. BasePrice is the starting price before any
// size or option adjustments; denormalized fields (Title, Image) are
// copied onto cart items at add-time and never re-fetched.
type Product struct {
	ID          string  `db:"id" json:"id"`
	CategoryID  string  `db:"category_id" json:"categoryId"`
	Title       string  `db:"title" json:"title"`
	Description string  `db:"description" json:"description"`
	ProductType string  `db:"product_type" json:"productType"` // faux-wood | wood | cellular | roller | roman | vertical | aluminum | woven
	BasePrice   float64 `db:"base_price" json:"basePrice"`
	Image       string  `db:"image" json:"image"`
	Active      bool    `db:"active" json:"active"`
	CreatedAt   string  `db:"created_at" json:"createdAt"`
	UpdatedAt   string  `db:"updated_at" json:"updatedAt"`
}

// CartItem is one configured, priced line in a cart or in the
// saved-for-later list. ID is the identity key (see ItemIdentity) and is
// immutable once created. Price is the unit price locked in at add-time;
// it is never recomputed on later reads.
type CartItem struct {
	ID        string            `json:"id"`
	ProductID string            `json:"productId"`
	Title     string            `json:"title"`
	Image     string            `json:"image"`
	Price     float64           `json:"price"`
	Quantity  int               `json:"quantity"`
	Width     float64           `json:"width,omitempty"`
	Height    float64           `json:"height,omitempty"`
	Options   map[string]string `json:"options,omitempty"`
}

// Clone returns a deep copy, so snapshots never alias live cart state.
func (it CartItem) Clone() CartItem {
	cp := it
	if it.Options != nil {
		cp.Options = make(map[string]string, len(it.Options))
		for k, v := range it.Options {
			cp.Options[k] = v
		}
	}
	return cp
}

// CloneItems deep-copies a slice of items.
func CloneItems(items []CartItem) []CartItem {
	out := make([]CartItem, len(items))
	for i, it := range items {
		out[i] = it.Clone()
	}
	return out
}

// Cart is the aggregate for the active shopping session. Subtotal,
// Discount, TaxAmount, ShippingAmount and Total are derived: they are
// overwritten by Recalculate on every mutation, never authored directly.
type Cart struct {
	Items          []CartItem `json:"items"`
	CouponCode     string     `json:"couponCode,omitempty"`
	Subtotal       float64    `json:"subtotal"`
	Discount       float64    `json:"discount"`
	TaxRate        float64    `json:"taxRate"`
	TaxAmount      float64    `json:"taxAmount"`
	ShippingAmount float64    `json:"shippingAmount"`
	Total          float64    `json:"total"`
}

// SavedCart is a named snapshot of cart items, immutable after creation.
type SavedCart struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	CreatedAt string     `json:"createdAt"` // RFC3339
	Items     []CartItem `json:"items"`
	Notes     string     `json:"notes,omitempty"`
}
