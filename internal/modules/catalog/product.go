package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	UncategorizedName = "Uncategorized"
	UnknownFrameType  = "Unknown Type"

	// EyeglassesCategory marks products that need a lens choice at checkout.
	EyeglassesCategory = "Eyeglasses"
)

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type FrameType struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Product is a read-only catalog entry as served by the backend.
type Product struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Price          decimal.Decimal `json:"price"`
	Category       Category        `json:"category"`
	FrameType      FrameType       `json:"frame_type"`
	FrameMaterial  string          `json:"frame_material,omitempty"`
	FaceShapes     []string        `json:"face_shapes"`
	VisionProblems []string        `json:"vision_problems"`
	Features       []string        `json:"features"`
	Colors         []string        `json:"colors,omitempty"`
	Stock          int             `json:"stock"`
	Sold           int             `json:"sold,omitempty"`
	Images         []string        `json:"images"`
	Size           string          `json:"size,omitempty"`
	Weight         float64         `json:"weight,omitempty"`
	ManufacturerID int64           `json:"manufacturer,omitempty"`
	CreatedAt      *time.Time      `json:"created_at,omitempty"`
}

func (p Product) IsEyeglasses() bool {
	return p.Category.Name == EyeglassesCategory
}

func (p Product) InStock() bool { return p.Stock > 0 }

func (p Product) PrimaryImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// wireProduct mirrors the backend payload before normalization.
type wireProduct struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Price          decimal.Decimal `json:"price"`
	Category       json.RawMessage `json:"category"`
	FrameType      json.RawMessage `json:"frame_type"`
	FrameMaterial  string          `json:"frame_material"`
	FaceShapes     []string        `json:"face_shapes"`
	VisionProblems []string        `json:"vision_problems"`
	Features       []string        `json:"features"`
	Colors         json.RawMessage `json:"colors"`
	Stock          int             `json:"stock"`
	Sold           int             `json:"sold"`
	Images         []string        `json:"images"`
	Size           string          `json:"size"`
	Weight         float64         `json:"weight"`
	ManufacturerID *int64          `json:"manufacturer"`
	CreatedAt      *time.Time      `json:"created_at"`
}

// UnmarshalJSON normalizes missing relations: a null category becomes
// "Uncategorized", a null frame type "Unknown Type". Relations may arrive
// as objects or bare names.
func (p *Product) UnmarshalJSON(data []byte) error {
	var w wireProduct
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	cat, err := decodeNamed(w.Category, UncategorizedName)
	if err != nil {
		return fmt.Errorf("product %d category: %w", w.ID, err)
	}
	ft, err := decodeNamed(w.FrameType, UnknownFrameType)
	if err != nil {
		return fmt.Errorf("product %d frame_type: %w", w.ID, err)
	}
	colors, err := decodeColors(w.Colors)
	if err != nil {
		return fmt.Errorf("product %d colors: %w", w.ID, err)
	}

	*p = Product{
		ID:             w.ID,
		Name:           w.Name,
		Description:    w.Description,
		Price:          w.Price,
		Category:       Category(cat),
		FrameType:      FrameType(ft),
		FrameMaterial:  w.FrameMaterial,
		FaceShapes:     nonNil(w.FaceShapes),
		VisionProblems: nonNil(w.VisionProblems),
		Features:       nonNil(w.Features),
		Colors:         colors,
		Stock:          w.Stock,
		Sold:           w.Sold,
		Images:         nonNil(w.Images),
		Size:           w.Size,
		Weight:         w.Weight,
		CreatedAt:      w.CreatedAt,
	}
	if w.ManufacturerID != nil {
		p.ManufacturerID = *w.ManufacturerID
	}
	return nil
}

type named struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func decodeNamed(raw json.RawMessage, fallback string) (named, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return named{Name: fallback}, nil
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return named{}, err
		}
		if s == "" {
			return named{Name: fallback}, nil
		}
		return named{Name: s}, nil
	}
	var n named
	if err := json.Unmarshal(raw, &n); err != nil {
		return named{}, err
	}
	return n, nil
}

func decodeColors(raw json.RawMessage) ([]string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, err
		}
		var out []string
		for _, c := range strings.Split(s, ",") {
			if c = strings.TrimSpace(c); c != "" {
				out = append(out, c)
			}
		}
		return out, nil
	}
	var out []string
	err := json.Unmarshal(raw, &out)
	return out, err
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
