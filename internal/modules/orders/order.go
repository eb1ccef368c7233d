package orders

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

const (
	PaymentCard = "card"
	PaymentCash = "cash"

	DeliveryHome   = "home"
	DeliveryPickup = "pickup"
)

// Order is an order as returned by the backend.
type Order struct {
	ID              int64           `json:"id"`
	Number          string          `json:"order_number"`
	User            UserRef         `json:"user"`
	Status          Status          `json:"status"`
	PaymentMethod   string          `json:"payment_method"`
	DeliveryOption  string          `json:"delivery_option"`
	TotalPrice      decimal.Decimal `json:"total_price"`
	Items           []Item          `json:"items"`
	Billing         Billing         `json:"billing"`
	CreatedAt       time.Time       `json:"created_at"`
	StatusUpdatedAt *time.Time      `json:"status_updated_at,omitempty"`
	DeliveryPerson  *DeliveryPerson `json:"assigned_delivery_person,omitempty"`
}

func (o Order) ItemCount() int {
	n := 0
	for _, it := range o.Items {
		n += it.Quantity
	}
	return n
}

// Item is an order line. The backend may identify the product through
// product_id or product.
type Item struct {
	ProductID    int64           `json:"product_id,omitempty"`
	Product      int64           `json:"product,omitempty"`
	ProductName  string          `json:"product_name"`
	Quantity     int             `json:"quantity"`
	Price        decimal.Decimal `json:"price"`
	LensOption   *Lens           `json:"lens_option,omitempty"`
	Prescription json.RawMessage `json:"prescription,omitempty"`
}

func (it Item) ProductRef() int64 {
	if it.ProductID != 0 {
		return it.ProductID
	}
	return it.Product
}

type Lens struct {
	Option         string          `json:"option"`
	Type           string          `json:"type"`
	Price          decimal.Decimal `json:"price"`
	PrescriptionID string          `json:"prescriptionId,omitempty"`
}

// Billing is the wire billing shape; zip_code on the wire, address2 nullable.
type Billing struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Phone    string  `json:"phone"`
	Address1 string  `json:"address1"`
	Address2 *string `json:"address2"`
	City     string  `json:"city"`
	State    string  `json:"state"`
	ZipCode  string  `json:"zip_code"`
	Country  string  `json:"country"`
}

type DeliveryPerson struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserRef is the order owner: a bare id or an embedded user object.
type UserRef struct {
	ID    int64  `json:"id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

func (u *UserRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*u = UserRef{}
		return nil
	case data[0] == '{':
		type plain UserRef
		var p plain
		if err := json.Unmarshal(data, &p); err != nil {
			return err
		}
		*u = UserRef(p)
		return nil
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if id, err := strconv.ParseInt(s, 10, 64); err == nil {
			*u = UserRef{ID: id}
		} else {
			*u = UserRef{Name: s}
		}
		return nil
	default:
		var id int64
		if err := json.Unmarshal(data, &id); err != nil {
			return err
		}
		*u = UserRef{ID: id}
		return nil
	}
}

// StatusUpdate is the backend acknowledgement of a status change.
type StatusUpdate struct {
	Message     string `json:"message"`
	OrderNumber string `json:"order_number,omitempty"`
	Status      Status `json:"status,omitempty"`
}

type Assignment struct {
	OrderID          int64 `json:"order"`
	DeliveryPersonID int64 `json:"delivery_person"`
}
