package view

type CheckoutStep struct {
	Number int    `json:"number"`
	Label  string `json:"label"`
	Done   bool   `json:"done"`
}

type CheckoutPage struct {
	Step           int            `json:"step"`
	StepLabel      string         `json:"step_label"`
	Steps          []CheckoutStep `json:"steps"`
	HasEyeglasses  bool           `json:"has_eyeglasses"`
	Billing        any            `json:"billing"`
	DeliveryOption string         `json:"delivery_option"`
	PaymentMethod  string         `json:"payment_method"`
	Submitting     bool           `json:"submitting"`
	Complete       bool           `json:"complete"`
	OrderNumber    string         `json:"order_number,omitempty"`
	LensItems      []CartLine     `json:"lens_items,omitempty"`
	Summary        Summary        `json:"summary"`
}
