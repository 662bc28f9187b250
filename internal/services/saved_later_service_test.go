package services_test

import (
	"errors"
	"testing"

	"shadeworks/internal/domain"
	"shadeworks/internal/services"
	"shadeworks/internal/store"
)

func newSavedLaterSvc(t *testing.T) (*services.SavedForLaterService, *services.CartService) {
	t.Helper()
	gw := store.NewGateway(store.NewMemoryBackend())
	cart := services.NewCartService(gw, 0.07)
	return services.NewSavedForLaterService(gw, cart), cart
}

func TestMoveToSaved_RemovesFromCart(t *testing.T) {
	svc, cart := newSavedLaterSvc(t)
	sid := "test-session"

	cart.AddItem(sid, item("line-a", 20, 3))
	if err := svc.MoveToSaved(sid, "line-a"); err != nil {
		t.Fatal(err)
	}

	if got := cart.Current(sid); len(got.Items) != 0 {
		t.Fatalf("item should leave the cart, got %+v", got.Items)
	}
	list := svc.List(sid)
	if len(list) != 1 || list[0].Quantity != 3 {
		t.Fatalf("saved list should hold the whole line: %+v", list)
	}
}

func TestMoveToSaved_DuplicatesAllowed(t *testing.T) {
	svc, cart := newSavedLaterSvc(t)
	sid := "test-session"

	cart.AddItem(sid, item("line-a", 20, 1))
	if err := svc.MoveToSaved(sid, "line-a"); err != nil {
		t.Fatal(err)
	}
	cart.AddItem(sid, item("line-a", 20, 1))
	if err := svc.MoveToSaved(sid, "line-a"); err != nil {
		t.Fatal(err)
	}

	if got := len(svc.List(sid)); got != 2 {
		t.Fatalf("saved-for-later keeps duplicates, want 2 entries, got %d", got)
	}
}

func TestMoveToCart_MergesWithExistingLine(t *testing.T) {
	svc, cart := newSavedLaterSvc(t)
	sid := "test-session"

	cart.AddItem(sid, item("line-a", 20, 2))
	if err := svc.MoveToSaved(sid, "line-a"); err != nil {
		t.Fatal(err)
	}
	cart.AddItem(sid, item("line-a", 20, 1))

	if err := svc.MoveToCart(sid, "line-a"); err != nil {
		t.Fatal(err)
	}

	got := cart.Current(sid)
	if len(got.Items) != 1 || got.Items[0].Quantity != 3 {
		t.Fatalf("restore should merge quantities: %+v", got.Items)
	}
	if got := len(svc.List(sid)); got != 0 {
		t.Fatalf("saved list should be empty, got %d", got)
	}
}

func TestSavedLater_NotFound(t *testing.T) {
	svc, _ := newSavedLaterSvc(t)
	sid := "test-session"

	if err := svc.MoveToSaved(sid, "ghost"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
	if err := svc.MoveToCart(sid, "ghost"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
	svc.Remove(sid, "ghost") // no-op, must not panic
}
