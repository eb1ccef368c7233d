package view

type ProductCard struct {
	ID             int64    `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Price          string   `json:"price"`
	PriceValue     string   `json:"price_value"`
	Category       string   `json:"category"`
	FrameType      string   `json:"frame_type"`
	FrameMaterial  string   `json:"frame_material,omitempty"`
	FaceShapes     []string `json:"face_shapes"`
	VisionProblems []string `json:"vision_problems"`
	ImageURL       string   `json:"image_url,omitempty"`
	InStock        bool     `json:"in_stock"`
}

type CatalogPage struct {
	Filters          any           `json:"filters"`
	HasActiveFilters bool          `json:"has_active_filters"`
	Total            int           `json:"total"`
	Products         []ProductCard `json:"products"`
}

type LensChoice struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Price       string `json:"price"`
	Description string `json:"description"`
}
