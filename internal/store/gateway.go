package store

import (
	"encoding/json"
	"sync"

	"shadeworks/internal/domain"
	applog "shadeworks/internal/log"
)

// Gateway owns all reads and writes of cart state. Values are whole
// JSON documents under three logical keys per profile; a write replaces
// the whole value, so the last writer wins. Corrupted or missing values
// read as empty. If the durable backend fails, the gateway degrades to
// an in-memory backend for the rest of the process: the in-memory
// mutation still succeeds and the caller never sees the error.
type Gateway struct {
	mu       sync.Mutex
	backend  Backend
	fallback *MemoryBackend
	degraded bool

	subMu sync.RWMutex
	subs  map[Topic][]chan Topic
}

func NewGateway(backend Backend) *Gateway {
	return &Gateway{
		backend:  backend,
		fallback: NewMemoryBackend(),
		subs:     make(map[Topic][]chan Topic),
	}
}

// Degraded reports whether the gateway has abandoned the durable store.
func (g *Gateway) Degraded() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.degraded
}

func (g *Gateway) read(key string, out any) {
	g.mu.Lock()
	b := g.backend
	if g.degraded {
		b = g.fallback
	}
	g.mu.Unlock()

	raw, err := b.Get(key)
	if err != nil {
		applog.Error(nil, "store.read.fail", err, map[string]any{"key": key})
		g.degrade()
		raw, _ = g.fallback.Get(key)
	}
	if len(raw) == 0 {
		return
	}
	if err := json.Unmarshal(raw, out); err != nil {
		// Corrupted value: treat as absent, never crash.
		applog.Error(nil, "store.decode.fail", err, map[string]any{"key": key})
	}
}

func (g *Gateway) write(key string, v any, topic Topic) {
	raw, err := json.Marshal(v)
	if err != nil {
		applog.Error(nil, "store.encode.fail", err, map[string]any{"key": key})
		return
	}

	g.mu.Lock()
	b := g.backend
	if g.degraded {
		b = g.fallback
	}
	g.mu.Unlock()

	if err := b.Set(key, raw); err != nil {
		applog.Error(nil, "store.persist.fail", err, map[string]any{"key": key})
		g.degrade()
		_ = g.fallback.Set(key, raw)
	}
	g.Publish(topic)
}

func (g *Gateway) degrade() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.degraded {
		g.degraded = true
		applog.Info(nil, "store.degraded", map[string]any{"mode": "memory"})
	}
}

// LoadCart returns the persisted cart for a profile, or an empty cart.
func (g *Gateway) LoadCart(profile string) domain.Cart {
	var cart domain.Cart
	g.read(cartKey(profile), &cart)
	return cart
}

// SaveCart persists the cart and broadcasts TopicCart.
func (g *Gateway) SaveCart(profile string, cart domain.Cart) {
	g.write(cartKey(profile), cart, TopicCart)
}

// LoadSavedCarts returns the profile's saved-cart snapshots.
func (g *Gateway) LoadSavedCarts(profile string) []domain.SavedCart {
	var carts []domain.SavedCart
	g.read(savedCartsKey(profile), &carts)
	return carts
}

// SaveSavedCarts persists the snapshot list and broadcasts TopicSavedCarts.
func (g *Gateway) SaveSavedCarts(profile string, carts []domain.SavedCart) {
	g.write(savedCartsKey(profile), carts, TopicSavedCarts)
}

// LoadSavedItems returns the profile's saved-for-later list.
func (g *Gateway) LoadSavedItems(profile string) []domain.CartItem {
	var items []domain.CartItem
	g.read(savedItemsKey(profile), &items)
	return items
}

// SaveSavedItems persists the saved-for-later list and broadcasts
// TopicSavedItems.
func (g *Gateway) SaveSavedItems(profile string, items []domain.CartItem) {
	g.write(savedItemsKey(profile), items, TopicSavedItems)
}

// Subscribe registers for change notifications on a topic. The returned
// cancel func drops the subscription. Notifications carry no payload;
// re-read the key on receipt.
func (g *Gateway) Subscribe(topic Topic) (<-chan Topic, func()) {
	ch := make(chan Topic, 8)
	g.subMu.Lock()
	g.subs[topic] = append(g.subs[topic], ch)
	g.subMu.Unlock()

	cancel := func() {
		g.subMu.Lock()
		defer g.subMu.Unlock()
		list := g.subs[topic]
		for i, c := range list {
			if c == ch {
				g.subs[topic] = append(list[:i], list[i+1:]...)
				break
			}
		}
	}
	return ch, cancel
}

// Publish fans a topic out to its subscribers. Fire and forget: a
// subscriber with a full buffer misses the signal rather than blocking
// the writer.
func (g *Gateway) Publish(topic Topic) {
	g.subMu.RLock()
	defer g.subMu.RUnlock()
	for _, ch := range g.subs[topic] {
		select {
		case ch <- topic:
		default:
		}
	}
}
