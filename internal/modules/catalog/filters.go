package catalog

import (
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

type Facet string

const (
	FacetFaceShape     Facet = "faceShape"
	FacetFrameType     Facet = "frameType"
	FacetFrameMaterial Facet = "frameMaterial"
	FacetVisionProblem Facet = "visionProblem"
	FacetCategory      Facet = "category"
)

// ClearFacet passed to Toggle resets that facet.
const ClearFacet = ""

// UnknownFaceShape is the profile preference that seeds nothing.
const UnknownFaceShape = "unknown"

var (
	DefaultMinPrice = decimal.Zero
	DefaultMaxPrice = decimal.NewFromInt(20000)
)

func ParseFacet(s string) (Facet, error) {
	switch f := Facet(s); f {
	case FacetFaceShape, FacetFrameType, FacetFrameMaterial, FacetVisionProblem, FacetCategory:
		return f, nil
	default:
		return "", fmt.Errorf("unknown filter facet %q", s)
	}
}

// Filters is a value object; every method returns a modified copy.
type Filters struct {
	Search        string          `json:"search"`
	FaceShape     []string        `json:"faceShape"`
	FrameType     []string        `json:"frameType"`
	FrameMaterial []string        `json:"frameMaterial"`
	VisionProblem []string        `json:"visionProblem"`
	Category      []string        `json:"category"`
	MinPrice      decimal.Decimal `json:"minPrice"`
	MaxPrice      decimal.Decimal `json:"maxPrice"`
}

func DefaultFilters() Filters {
	return Filters{
		FaceShape:     []string{},
		FrameType:     []string{},
		FrameMaterial: []string{},
		VisionProblem: []string{},
		Category:      []string{},
		MinPrice:      DefaultMinPrice,
		MaxPrice:      DefaultMaxPrice,
	}
}

func (f Filters) clone() Filters {
	f.FaceShape = slices.Clone(f.FaceShape)
	f.FrameType = slices.Clone(f.FrameType)
	f.FrameMaterial = slices.Clone(f.FrameMaterial)
	f.VisionProblem = slices.Clone(f.VisionProblem)
	f.Category = slices.Clone(f.Category)
	return f
}

func (f *Filters) facet(name Facet) *[]string {
	switch name {
	case FacetFaceShape:
		return &f.FaceShape
	case FacetFrameType:
		return &f.FrameType
	case FacetFrameMaterial:
		return &f.FrameMaterial
	case FacetVisionProblem:
		return &f.VisionProblem
	case FacetCategory:
		return &f.Category
	}
	return nil
}

// Values returns the current selection of a facet.
func (f Filters) Values(name Facet) []string {
	p := f.facet(name)
	if p == nil {
		return nil
	}
	return slices.Clone(*p)
}

// Toggle adds value to the facet, removes it if already selected, or
// resets the facet when value is ClearFacet.
func (f Filters) Toggle(name Facet, value string) Filters {
	out := f.clone()
	p := out.facet(name)
	if p == nil {
		return out
	}
	if value == ClearFacet {
		*p = []string{}
		return out
	}
	if i := slices.Index(*p, value); i >= 0 {
		*p = slices.Delete(*p, i, i+1)
		return out
	}
	*p = append(*p, value)
	return out
}

// WithPriceRange sets the inclusive bounds; inverted bounds are swapped.
func (f Filters) WithPriceRange(lo, hi decimal.Decimal) Filters {
	out := f.clone()
	if lo.GreaterThan(hi) {
		lo, hi = hi, lo
	}
	out.MinPrice, out.MaxPrice = lo, hi
	return out
}

func (f Filters) WithSearch(q string) Filters {
	out := f.clone()
	out.Search = strings.TrimSpace(q)
	return out
}

// Clear returns the default filters.
func (f Filters) Clear() Filters { return DefaultFilters() }

// HasActive reports whether any facet or the price range narrows the
// list. Search alone does not count.
func (f Filters) HasActive() bool {
	return len(f.FaceShape) > 0 ||
		len(f.FrameType) > 0 ||
		len(f.FrameMaterial) > 0 ||
		len(f.VisionProblem) > 0 ||
		len(f.Category) > 0 ||
		f.MinPrice.GreaterThan(DefaultMinPrice) ||
		f.MaxPrice.LessThan(DefaultMaxPrice)
}

// SeedFaceShape applies a profile preference; "unknown" and "" are ignored.
func (f Filters) SeedFaceShape(shape string) Filters {
	shape = strings.TrimSpace(shape)
	if shape == "" || strings.EqualFold(shape, UnknownFaceShape) {
		return f
	}
	out := f.clone()
	out.FaceShape = []string{shape}
	return out
}

// FiltersFromQuery builds filters from a query string. search and
// faceShape seed the storefront; the other keys allow stateless listing.
// Repeated keys and comma lists are both accepted.
func FiltersFromQuery(q url.Values) (Filters, error) {
	f := DefaultFilters().WithSearch(q.Get("search"))
	for _, name := range []Facet{FacetFaceShape, FacetFrameType, FacetFrameMaterial, FacetVisionProblem, FacetCategory} {
		for _, raw := range q[string(name)] {
			for _, v := range strings.Split(raw, ",") {
				v = strings.TrimSpace(v)
				if v == "" || slices.Contains(*f.facet(name), v) {
					continue
				}
				*f.facet(name) = append(*f.facet(name), v)
			}
		}
	}

	lo, hi := f.MinPrice, f.MaxPrice
	if v := q.Get("minPrice"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return Filters{}, fmt.Errorf("minPrice: %w", err)
		}
		lo = d
	}
	if v := q.Get("maxPrice"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return Filters{}, fmt.Errorf("maxPrice: %w", err)
		}
		hi = d
	}
	return f.WithPriceRange(lo, hi), nil
}
