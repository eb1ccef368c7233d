package checkout

import (
	"github.com/shopspring/decimal"

	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/modules/cart"
	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/modules/orders"
)

// Calculator derives order totals. Amounts keep full precision; only
// Totals.Display rounds.
type Calculator struct {
	FreeShippingThreshold decimal.Decimal
	ShippingFee           decimal.Decimal
	TaxRate               decimal.Decimal
}

func DefaultPricing() Calculator {
	return Calculator{
		FreeShippingThreshold: decimal.NewFromInt(1000),
		ShippingFee:           decimal.NewFromInt(500),
		TaxRate:               decimal.RequireFromString("0.05"),
	}
}

type Totals struct {
	CartTotal decimal.Decimal
	LensTotal decimal.Decimal
	Subtotal  decimal.Decimal
	Shipping  decimal.Decimal
	Tax       decimal.Decimal
	Total     decimal.Decimal
}

// ItemSource is what the calculator reads from a cart.
type ItemSource interface {
	Items() []cart.Item
}

// Quote computes every figure from one read of the cart.
func (c Calculator) Quote(src ItemSource, delivery string) Totals {
	return c.QuoteItems(src.Items(), delivery)
}

func (c Calculator) QuoteItems(items []cart.Item, delivery string) Totals {
	cartTotal, lensTotal := decimal.Zero, decimal.Zero
	for _, it := range items {
		cartTotal = cartTotal.Add(it.LineTotal())
		lensTotal = lensTotal.Add(it.LensLineTotal())
	}
	return c.QuoteAmounts(cartTotal, lensTotal, delivery)
}

func (c Calculator) QuoteAmounts(cartTotal, lensTotal decimal.Decimal, delivery string) Totals {
	t := Totals{CartTotal: cartTotal, LensTotal: lensTotal}
	t.Subtotal = cartTotal.Add(lensTotal)
	t.Shipping = c.shipping(t.Subtotal, delivery)
	t.Tax = t.Subtotal.Mul(c.TaxRate)
	t.Total = t.Subtotal.Add(t.Shipping).Add(t.Tax)
	return t
}

func (c Calculator) shipping(subtotal decimal.Decimal, delivery string) decimal.Decimal {
	if delivery == orders.DeliveryPickup {
		return decimal.Zero
	}
	if subtotal.GreaterThanOrEqual(c.FreeShippingThreshold) {
		return decimal.Zero
	}
	return c.ShippingFee
}

// Display returns the totals rounded to two decimals.
func (t Totals) Display() Totals {
	return Totals{
		CartTotal: t.CartTotal.Round(2),
		LensTotal: t.LensTotal.Round(2),
		Subtotal:  t.Subtotal.Round(2),
		Shipping:  t.Shipping.Round(2),
		Tax:       t.Tax.Round(2),
		Total:     t.Total.Round(2),
	}
}
