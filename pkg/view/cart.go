package view

type Lens struct {
	Type           string `json:"type"`
	Option         string `json:"option"`
	Price          string `json:"price"`
	PrescriptionID string `json:"prescription_id,omitempty"`
}

type CartLine struct {
	ProductID   int64  `json:"product_id"`
	ProductName string `json:"product_name"`
	Category    string `json:"category"`
	ImageURL    string `json:"image_url,omitempty"`
	Qty         int    `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	LineTotal   string `json:"line_total"`
	Lens        *Lens  `json:"lens_option,omitempty"`
	NeedsLens   bool   `json:"needs_lens"`
}

// Summary carries display-rounded totals next to the raw full-precision values.
type Summary struct {
	Currency       string `json:"currency"`
	DeliveryOption string `json:"delivery_option"`
	CartTotal      string `json:"cart_total"`
	LensTotal      string `json:"lens_total"`
	Subtotal       string `json:"subtotal"`
	Shipping       string `json:"shipping"`
	Tax            string `json:"tax"`
	Total          string `json:"total"`
	TotalValue     string `json:"total_value"`
}

type CartPage struct {
	Items                 []CartLine `json:"items"`
	Count                 int        `json:"count"`
	HasEyeglasses         bool       `json:"has_eyeglasses"`
	HasPrescriptionLenses bool       `json:"has_prescription_lenses"`
	Summary               Summary    `json:"summary"`
}
