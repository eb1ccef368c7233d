package catalog

import "github.com/shopspring/decimal"

func sampleProducts() []Product {
	return []Product{
		{
			ID: 1, Name: "Aviator Classic", Description: "Metal aviator frame",
			Price:          decimal.NewFromInt(4000),
			Category:       Category{ID: 1, Name: "Eyeglasses"},
			FrameType:      FrameType{ID: 1, Name: "Aviator"},
			FrameMaterial:  "Metal",
			FaceShapes:     []string{"oval", "square"},
			VisionProblems: []string{"myopia"},
			Stock:          5,
		},
		{
			ID: 2, Name: "Round Acetate", Description: "Light round frame",
			Price:          decimal.NewFromInt(2500),
			Category:       Category{ID: 1, Name: "Eyeglasses"},
			FrameType:      FrameType{ID: 2, Name: "Round"},
			FrameMaterial:  "Acetate",
			FaceShapes:     []string{"heart"},
			VisionProblems: []string{"hyperopia", "astigmatism"},
			Stock:          0,
		},
		{
			ID: 3, Name: "Lens Cleaning Kit", Description: "Spray and cloth",
			Price:     decimal.NewFromInt(500),
			Category:  Category{ID: 2, Name: "Accessories"},
			FrameType: FrameType{Name: UnknownFrameType},
			Stock:     40,
		},
		{
			ID: 4, Name: "Sport Wrap", Description: "Polarized sunglasses",
			Price:          decimal.RequireFromString("18999.99"),
			Category:       Category{ID: 3, Name: "Sunglasses"},
			FrameType:      FrameType{ID: 3, Name: "Wrap"},
			FrameMaterial:  "Nylon",
			FaceShapes:     []string{"oval"},
			VisionProblems: []string{},
			Stock:          2,
		},
	}
}

func ids(ps []Product) []int64 {
	out := make([]int64, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.ID)
	}
	return out
}
