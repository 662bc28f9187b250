package services

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"shadeworks/internal/domain"
	"shadeworks/internal/store"
)

// SavedCartService manages named cart snapshots.
type SavedCartService struct {
	Store *store.Gateway
	Cart  *CartService
}

func NewSavedCartService(gw *store.Gateway, cart *CartService) *SavedCartService {
	return &SavedCartService{Store: gw, Cart: cart}
}

func (s *SavedCartService) List(profile string) []domain.SavedCart {
	return s.Store.LoadSavedCarts(profile)
}

// Save snapshots the active cart under a name. The items are deep
// copied, so later cart mutations never leak into the snapshot. Saving
// an empty cart is rejected with domain.ErrEmptyCart.
func (s *SavedCartService) Save(profile, name, notes string) (domain.SavedCart, error) {
	cart := s.Store.LoadCart(profile)
	if len(cart.Items) == 0 {
		return domain.SavedCart{}, domain.ErrEmptyCart
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = "Saved cart"
	}

	saved := domain.SavedCart{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Items:     domain.CloneItems(cart.Items),
		Notes:     notes,
	}

	list := s.Store.LoadSavedCarts(profile)
	list = append(list, saved)
	s.Store.SaveSavedCarts(profile, list)
	return saved, nil
}

// Delete removes a snapshot by id. Deleting an unknown id is a no-op.
func (s *SavedCartService) Delete(profile, cartID string) {
	list := s.Store.LoadSavedCarts(profile)
	for i, sc := range list {
		if sc.ID == cartID {
			list = append(list[:i], list[i+1:]...)
			s.Store.SaveSavedCarts(profile, list)
			return
		}
	}
}

// Replace discards the active cart's items and loads the snapshot's
// instead. Destructive: nothing is merged.
func (s *SavedCartService) Replace(profile, cartID string) (domain.Cart, error) {
	saved, err := s.find(profile, cartID)
	if err != nil {
		return domain.Cart{}, err
	}
	return s.Cart.ReplaceItems(profile, saved.Items), nil
}

// Merge folds the snapshot into the active cart: identity matches sum
// quantities, everything else is appended. Merging the same snapshot
// twice doubles the affected quantities.
func (s *SavedCartService) Merge(profile, cartID string) (domain.Cart, error) {
	saved, err := s.find(profile, cartID)
	if err != nil {
		return domain.Cart{}, err
	}
	return s.Cart.MergeItems(profile, saved.Items), nil
}

func (s *SavedCartService) find(profile, cartID string) (domain.SavedCart, error) {
	for _, sc := range s.Store.LoadSavedCarts(profile) {
		if sc.ID == cartID {
			return sc, nil
		}
	}
	return domain.SavedCart{}, domain.ErrNotFound
}
