package services_test

import (
	"errors"
	"testing"

	"shadeworks/internal/domain"
	"shadeworks/internal/services"
	"shadeworks/internal/store"
)

func newSavedCartSvc(t *testing.T) (*services.SavedCartService, *services.CartService) {
	t.Helper()
	gw := store.NewGateway(store.NewMemoryBackend())
	cart := services.NewCartService(gw, 0.07)
	return services.NewSavedCartService(gw, cart), cart
}

func TestSave_RejectsEmptyCart(t *testing.T) {
	svc, _ := newSavedCartSvc(t)
	sid := "test-session"

	_, err := svc.Save(sid, "weekend order", "")
	if !errors.Is(err, domain.ErrEmptyCart) {
		t.Fatalf("want ErrEmptyCart, got %v", err)
	}
	if got := len(svc.List(sid)); got != 0 {
		t.Fatalf("saved list must be unchanged, got %d entries", got)
	}
}

func TestSave_SnapshotIsDeepCopy(t *testing.T) {
	svc, cart := newSavedCartSvc(t)
	sid := "test-session"

	cart.AddItem(sid, item("line-a", 50, 1))
	saved, err := svc.Save(sid, "before remodel", "living room")
	if err != nil {
		t.Fatal(err)
	}
	if saved.ID == "" || saved.CreatedAt == "" {
		t.Fatalf("snapshot missing id/timestamp: %+v", saved)
	}

	// Mutating the live cart must not touch the snapshot.
	cart.UpdateQuantity(sid, "line-a", 7)
	list := svc.List(sid)
	if len(list) != 1 || list[0].Items[0].Quantity != 1 {
		t.Fatalf("snapshot aliased live cart: %+v", list)
	}
}

func TestDelete_Idempotent(t *testing.T) {
	svc, cart := newSavedCartSvc(t)
	sid := "test-session"

	cart.AddItem(sid, item("line-a", 50, 1))
	saved, _ := svc.Save(sid, "one", "")

	svc.Delete(sid, saved.ID)
	svc.Delete(sid, saved.ID) // second delete is a no-op
	svc.Delete(sid, "never-existed")

	if got := len(svc.List(sid)); got != 0 {
		t.Fatalf("want empty list, got %d", got)
	}
}

func TestReplace_IsDestructive(t *testing.T) {
	svc, cart := newSavedCartSvc(t)
	sid := "test-session"

	cart.AddItem(sid, item("snap-1", 10, 1))
	cart.AddItem(sid, item("snap-2", 10, 1))
	saved, _ := svc.Save(sid, "two items", "")

	cart.Clear(sid)
	cart.AddItem(sid, item("live-1", 5, 1))
	cart.AddItem(sid, item("live-2", 5, 1))
	cart.AddItem(sid, item("live-3", 5, 1))

	got, err := svc.Replace(sid, saved.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Items) != 2 {
		t.Fatalf("replace should leave exactly the snapshot's 2 items, got %d", len(got.Items))
	}
}

func TestMerge_AppendsAndSums(t *testing.T) {
	svc, cart := newSavedCartSvc(t)
	sid := "test-session"

	cart.AddItem(sid, item("snap-1", 10, 1))
	cart.AddItem(sid, item("snap-2", 10, 1))
	saved, _ := svc.Save(sid, "two items", "")

	cart.Clear(sid)
	cart.AddItem(sid, item("live-1", 5, 1))
	cart.AddItem(sid, item("live-2", 5, 1))
	cart.AddItem(sid, item("live-3", 5, 1))

	got, err := svc.Merge(sid, saved.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Items) != 5 {
		t.Fatalf("merge of disjoint identities should yield 3+2=5 items, got %d", len(got.Items))
	}
}

func TestMerge_TwiceDoublesQuantities(t *testing.T) {
	svc, cart := newSavedCartSvc(t)
	sid := "test-session"

	cart.AddItem(sid, item("line-a", 10, 2))
	saved, _ := svc.Save(sid, "dup", "")

	if _, err := svc.Merge(sid, saved.ID); err != nil {
		t.Fatal(err)
	}
	got, err := svc.Merge(sid, saved.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Items) != 1 || got.Items[0].Quantity != 6 {
		t.Fatalf("want single line qty 2+2+2=6, got %+v", got.Items)
	}
}

func TestReplaceAndMerge_UnknownID(t *testing.T) {
	svc, _ := newSavedCartSvc(t)
	sid := "test-session"

	if _, err := svc.Replace(sid, "ghost"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("replace: want ErrNotFound, got %v", err)
	}
	if _, err := svc.Merge(sid, "ghost"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("merge: want ErrNotFound, got %v", err)
	}
}
