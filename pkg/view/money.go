package view

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is the storefront display currency.
const DefaultCurrency = "LKR"

// Money renders an amount with two decimals, e.g. 4725 LKR -> "LKR 4725.00".
// Rounding happens here only; callers keep full precision.
func Money(amount decimal.Decimal, currency string) string {
	return currencySymbol(currency) + amount.StringFixed(2)
}

func currencySymbol(code string) string {
	switch strings.ToUpper(strings.TrimSpace(code)) {
	case "EUR":
		return "€"
	case "USD":
		return "$"
	case "GBP":
		return "£"
	case "":
		return DefaultCurrency + " "
	default:
		return strings.ToUpper(code) + " "
	}
}

func PaymentMethodLabel(code string) string {
	switch code {
	case "card":
		return "Credit / Debit Card"
	case "cash":
		return "Cash on Delivery"
	default:
		return code
	}
}

func DeliveryLabel(code string) string {
	switch code {
	case "home":
		return "Home Delivery"
	case "pickup":
		return "Store Pickup"
	default:
		return code
	}
}
