package order

import "errors"

// The business error set for order creation and reads. Table and menu
// lookups surface table.ErrNotFound / menu.ErrNotFound from their own
// packages; everything order-specific lives here.
var (
	ErrEmptyOrder        = errors.New("order must contain at least one item")
	ErrInvalidQuantity   = errors.New("item quantity must be at least 1")
	ErrMenuUnavailable   = errors.New("menu is no longer available")
	ErrOrderNotFound     = errors.New("order not found")
	ErrSequenceExhausted = errors.New("daily order number sequence exhausted")
)
