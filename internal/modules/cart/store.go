package cart

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/modules/catalog"
)

// Store is one shopper's cart. Every method is safe for concurrent use and
// totals are derived from the current items on each call.
type Store struct {
	mu    sync.RWMutex
	items []Item
	now   func() time.Time
}

func NewStore() *Store {
	return &Store{now: time.Now}
}

// AddToCart adds one unit of p.
func (s *Store) AddToCart(p catalog.Product) {
	s.Add(p, 1)
}

// Add adds qty units of p to the lens-less line for p, or appends a new line.
// qty below 1 is treated as 1.
func (s *Store) Add(p catalog.Product, qty int) {
	if qty < 1 {
		qty = 1
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].Product.ID == p.ID && s.items[i].LensOption == nil {
			s.items[i].Quantity += qty
			return
		}
	}
	s.items = append(s.items, Item{Product: p, Quantity: qty, AddedAt: s.now()})
}

// UpdateQuantity sets qty on every line of productID. qty < 1 is a no-op.
func (s *Store) UpdateQuantity(productID int64, qty int) {
	if qty < 1 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].Product.ID == productID {
			s.items[i].Quantity = qty
		}
	}
}

// RemoveFromCart drops every line of productID.
func (s *Store) RemoveFromCart(productID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.items[:0]
	for _, it := range s.items {
		if it.Product.ID != productID {
			kept = append(kept, it)
		}
	}
	clear(s.items[len(kept):])
	s.items = kept
}

func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
}

// UpdateLensOption attaches lo to every line of productID; nil detaches.
func (s *Store) UpdateLensOption(productID int64, lo *LensOption) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].Product.ID != productID {
			continue
		}
		if lo == nil {
			s.items[i].LensOption = nil
			continue
		}
		cp := *lo
		s.items[i].LensOption = &cp
	}
}

func (s *Store) Has(productID int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, it := range s.items {
		if it.Product.ID == productID {
			return true
		}
	}
	return false
}

// CartTotal is Σ price × quantity.
func (s *Store) CartTotal() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := decimal.Zero
	for _, it := range s.items {
		total = total.Add(it.LineTotal())
	}
	return total
}

// LensTotal is Σ lens price × quantity; lines without a lens add 0.
func (s *Store) LensTotal() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := decimal.Zero
	for _, it := range s.items {
		total = total.Add(it.LensLineTotal())
	}
	return total
}

// Count is the number of units across all lines.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, it := range s.items {
		n += it.Quantity
	}
	return n
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

func (s *Store) IsEmpty() bool { return s.Len() == 0 }

func (s *Store) HasEyeglasses() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, it := range s.items {
		if it.Product.IsEyeglasses() {
			return true
		}
	}
	return false
}

func (s *Store) HasPrescriptionLenses() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, it := range s.items {
		if it.LensOption != nil && it.LensOption.Type == LensPrescription {
			return true
		}
	}
	return false
}

// MissingLenses returns the eyeglasses lines that have no lens attached.
func (s *Store) MissingLenses() []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Item
	for _, it := range s.items {
		if it.Product.IsEyeglasses() && it.LensOption == nil {
			out = append(out, it.clone())
		}
	}
	return out
}

// Items returns a deep copy of the lines in insertion order.
func (s *Store) Items() []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Item, len(s.items))
	for i, it := range s.items {
		out[i] = it.clone()
	}
	return out
}

// Snapshot is the persisted form of a cart.
type Snapshot struct {
	Items []Item `json:"items"`
}

func (s *Store) Snapshot() Snapshot {
	return Snapshot{Items: s.Items()}
}

// Restore replaces the contents with snap. Lines with quantity below 1 are
// dropped.
func (s *Store) Restore(snap Snapshot) {
	items := make([]Item, 0, len(snap.Items))
	for _, it := range snap.Items {
		if it.Quantity < 1 {
			continue
		}
		items = append(items, it.clone())
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = items
}
