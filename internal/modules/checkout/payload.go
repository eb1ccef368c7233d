package checkout

import (
	"github.com/shopspring/decimal"

	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/modules/cart"
	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/modules/orders"
)

type PayloadInput struct {
	OrderNumber    string
	UserID         *int64
	Items          []cart.Item
	Billing        BillingInfo
	PaymentMethod  string
	DeliveryOption string
	Total          decimal.Decimal
}

// BuildPayload maps checkout state to the order creation request.
func BuildPayload(in PayloadInput) orders.CreateRequest {
	items := make([]orders.WireItem, 0, len(in.Items))
	for _, it := range in.Items {
		wi := orders.WireItem{
			ProductID:   it.Product.ID,
			ProductName: it.Product.Name,
			Quantity:    it.Quantity,
			Price:       it.Product.Price,
		}
		if lo := it.LensOption; lo != nil {
			wi.LensOption = &orders.WireLens{
				Option:         lo.Option,
				Type:           string(lo.Type),
				Price:          lo.Price,
				PrescriptionID: lo.PrescriptionID,
			}
			if lo.PrescriptionID != "" {
				rx := lo.PrescriptionID
				wi.Prescription = &rx
			}
		}
		items = append(items, wi)
	}
	return orders.CreateRequest{
		OrderNumber:    in.OrderNumber,
		User:           in.UserID,
		PaymentMethod:  in.PaymentMethod,
		DeliveryOption: in.DeliveryOption,
		TotalPrice:     in.Total.StringFixed(2),
		Items:          items,
		Billing:        in.Billing.Wire(),
	}
}
