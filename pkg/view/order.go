package view

type OrderItem struct {
	ProductID   int64  `json:"product_id,omitempty"`
	ProductName string `json:"product_name"`
	Qty         int    `json:"quantity"`
	PriceEach   string `json:"price"`
	Lens        string `json:"lens_option,omitempty"`
}

type OrderListItem struct {
	Number         string `json:"order_number"`
	Status         string `json:"status"`
	StatusLabel    string `json:"status_label"`
	PendingStatus  string `json:"pending_status,omitempty"`
	Total          string `json:"total"`
	PaymentMethod  string `json:"payment_method"`
	DeliveryOption string `json:"delivery_option"`
	CreatedAt      string `json:"created_at"`
	ItemCount      int    `json:"item_count"`
	Customer       string `json:"customer,omitempty"`
	DeliveryPerson string `json:"delivery_person,omitempty"`
}

type OrderDetail struct {
	OrderListItem
	Items   []OrderItem `json:"items"`
	Billing any         `json:"billing"`
}
