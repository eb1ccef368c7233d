package catalog

import (
	"slices"
	"strings"
)

type predicate func(Product) bool

// Apply returns the products matching f. all is never modified; the
// result is a fresh slice in the original order.
func Apply(all []Product, f Filters) []Product {
	preds := make([]predicate, 0, 7)
	if f.Search != "" {
		preds = append(preds, matchSearch(strings.ToLower(f.Search)))
	}
	if len(f.Category) > 0 {
		preds = append(preds, func(p Product) bool { return slices.Contains(f.Category, p.Category.Name) })
	}
	if len(f.FaceShape) > 0 {
		preds = append(preds, func(p Product) bool { return intersects(p.FaceShapes, f.FaceShape) })
	}
	if len(f.FrameType) > 0 {
		preds = append(preds, func(p Product) bool { return slices.Contains(f.FrameType, p.FrameType.Name) })
	}
	if len(f.FrameMaterial) > 0 {
		preds = append(preds, func(p Product) bool {
			return p.FrameMaterial != "" && slices.Contains(f.FrameMaterial, p.FrameMaterial)
		})
	}
	preds = append(preds, func(p Product) bool {
		return p.Price.GreaterThanOrEqual(f.MinPrice) && p.Price.LessThanOrEqual(f.MaxPrice)
	})
	if len(f.VisionProblem) > 0 {
		preds = append(preds, func(p Product) bool { return intersects(p.VisionProblems, f.VisionProblem) })
	}

	out := make([]Product, 0, len(all))
next:
	for _, p := range all {
		for _, keep := range preds {
			if !keep(p) {
				continue next
			}
		}
		out = append(out, p)
	}
	return out
}

func matchSearch(term string) predicate {
	return func(p Product) bool {
		for _, field := range []string{p.Name, p.Description, p.FrameType.Name, p.FrameMaterial, p.Category.Name} {
			if field != "" && strings.Contains(strings.ToLower(field), term) {
				return true
			}
		}
		return false
	}
}

func intersects(have, want []string) bool {
	for _, w := range want {
		if slices.Contains(have, w) {
			return true
		}
	}
	return false
}
