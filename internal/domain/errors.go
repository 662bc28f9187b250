package domain

import "errors"

var (
	// ErrEmptyCart rejects snapshotting a cart with no items. Surfaced
	// to the user as a validation message, not logged as a fault.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrNotFound reports a saved-cart or saved-item id that no longer
	// exists. Recoverable at the handler boundary.
	ErrNotFound = errors.New("not found")
)
