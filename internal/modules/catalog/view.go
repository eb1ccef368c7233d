package catalog

import (
	"slices"
	"sync"
)

// View is the per-session storefront listing: the fetched products, the
// current filters and the list derived from both.
type View struct {
	mu       sync.Mutex
	all      []Product
	filters  Filters
	filtered []Product
}

func NewView() *View {
	return &View{filters: DefaultFilters()}
}

// SetProducts replaces the source list and recomputes.
func (v *View) SetProducts(all []Product) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.all = slices.Clone(all)
	v.filtered = Apply(v.all, v.filters)
}

// Update applies fn to the current filters and recomputes.
func (v *View) Update(fn func(Filters) Filters) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.filters = fn(v.filters)
	v.filtered = Apply(v.all, v.filters)
}

// Clear resets the filters and restores the full list as fetched.
func (v *View) Clear() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.filters = DefaultFilters()
	v.filtered = slices.Clone(v.all)
}

func (v *View) Filters() Filters {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.filters.clone()
}

func (v *View) Products() []Product {
	v.mu.Lock()
	defer v.mu.Unlock()
	return slices.Clone(v.filtered)
}

func (v *View) Loaded() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.all != nil
}
