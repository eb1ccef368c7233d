package orders

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidStatus     = errors.New("invalid order status")
	ErrNotCancellable    = errors.New("order can no longer be cancelled")
	ErrNothingReordered  = errors.New("no items from the order could be added to the cart")
	ErrUnknownOrder      = errors.New("order not on the board")
	ErrMissingProductRef = errors.New("order line has no product reference")
)

// ReorderFailure is one order line that could not be re-added.
type ReorderFailure struct {
	ProductID   int64  `json:"product_id"`
	ProductName string `json:"product_name"`
	Reason      string `json:"reason"`
	NotFound    bool   `json:"not_found"`
	Err         error  `json:"-"`
}

func (f ReorderFailure) Error() string {
	return fmt.Sprintf("reorder product %d: %s", f.ProductID, f.Reason)
}

func (f ReorderFailure) Unwrap() error { return f.Err }
