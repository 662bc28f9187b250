package store

// Backend is a durable key-value store holding whole JSON values. The
// sqlite implementation lives in internal/repos; memory.go provides the
// degraded in-process fallback.
type Backend interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
}

// Topic identifies which logical key changed. Broadcasts carry no
// payload; subscribers re-read the key they care about.
type Topic string

const (
	TopicCart       Topic = "cart"
	TopicSavedCarts Topic = "saved-carts"
	TopicSavedItems Topic = "saved-items"
)

// Per-profile storage keys. One browser profile maps to one sid.
func cartKey(profile string) string       { return "cart:" + profile }
func savedCartsKey(profile string) string { return "saved_carts:" + profile }
func savedItemsKey(profile string) string { return "saved_items:" + profile }
