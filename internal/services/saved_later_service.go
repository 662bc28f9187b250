package services

import (
	"shadeworks/internal/domain"
	"shadeworks/internal/store"
)

// SavedForLaterService moves items between the active cart and a side
// list. The list keeps whole lines (quantity included) and never
// collapses duplicates: moving the same configuration twice leaves two
// entries.
type SavedForLaterService struct {
	Store *store.Gateway
	Cart  *CartService
}

func NewSavedForLaterService(gw *store.Gateway, cart *CartService) *SavedForLaterService {
	return &SavedForLaterService{Store: gw, Cart: cart}
}

func (s *SavedForLaterService) List(profile string) []domain.CartItem {
	return s.Store.LoadSavedItems(profile)
}

// MoveToSaved pulls a line out of the active cart and appends it to the
// saved-for-later list.
func (s *SavedForLaterService) MoveToSaved(profile, itemID string) error {
	cart := s.Store.LoadCart(profile)
	idx := -1
	for i := range cart.Items {
		if cart.Items[i].ID == itemID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return domain.ErrNotFound
	}
	item := cart.Items[idx].Clone()
	s.Cart.RemoveItem(profile, itemID)

	list := s.Store.LoadSavedItems(profile)
	list = append(list, item)
	s.Store.SaveSavedItems(profile, list)
	return nil
}

// MoveToCart re-enters a saved line through the normal add path, so an
// equivalent line already in the cart absorbs its quantity. With
// duplicate saved entries the first match moves.
func (s *SavedForLaterService) MoveToCart(profile, itemID string) error {
	list := s.Store.LoadSavedItems(profile)
	idx := -1
	for i := range list {
		if list[i].ID == itemID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return domain.ErrNotFound
	}
	item := list[idx]
	list = append(list[:idx], list[idx+1:]...)
	s.Store.SaveSavedItems(profile, list)

	s.Cart.AddItem(profile, item)
	return nil
}

// Remove deletes from the saved-for-later list only. Unknown ids are a
// no-op.
func (s *SavedForLaterService) Remove(profile, itemID string) {
	list := s.Store.LoadSavedItems(profile)
	for i := range list {
		if list[i].ID == itemID {
			list = append(list[:i], list[i+1:]...)
			s.Store.SaveSavedItems(profile, list)
			return
		}
	}
}
