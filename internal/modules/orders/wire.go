package orders

import "github.com/shopspring/decimal"

// CreateRequest is the order creation payload.
type CreateRequest struct {
	OrderNumber    string     `json:"order_number"`
	User           *int64     `json:"user,omitempty"`
	PaymentMethod  string     `json:"payment_method"`
	DeliveryOption string     `json:"delivery_option"`
	TotalPrice     string     `json:"total_price"`
	Items          []WireItem `json:"items"`
	Billing        Billing    `json:"billing"`
}

type WireItem struct {
	ProductID    int64           `json:"product_id"`
	ProductName  string          `json:"product_name"`
	Quantity     int             `json:"quantity"`
	Price        decimal.Decimal `json:"price"`
	LensOption   *WireLens       `json:"lens_option"`
	Prescription *string         `json:"prescription"`
}

type WireLens struct {
	Option         string          `json:"option"`
	Type           string          `json:"type"`
	Price          decimal.Decimal `json:"price"`
	PrescriptionID string          `json:"prescriptionId,omitempty"`
}
