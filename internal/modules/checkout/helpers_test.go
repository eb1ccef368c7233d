package checkout

import (
	"github.com/shopspring/decimal"

	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/modules/cart"
	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/modules/catalog"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func eyeglasses(id int64, price string) catalog.Product {
	return catalog.Product{ID: id, Name: "Aviator Classic", Price: dec(price), Category: catalog.Category{ID: 1, Name: "Eyeglasses"}}
}

func accessory(id int64, price string) catalog.Product {
	return catalog.Product{ID: id, Name: "Cleaning Kit", Price: dec(price), Category: catalog.Category{ID: 2, Name: "Accessories"}}
}

func completeBilling() BillingInfo {
	return BillingInfo{
		Name:     "Nimal Perera",
		Email:    "nimal@example.com",
		Phone:    "0771234567",
		Address1: "12 Galle Rd",
		City:     "Colombo",
		State:    "Western",
		ZipCode:  "00300",
		Country:  "Sri Lanka",
	}
}

func storeWith(products ...catalog.Product) *cart.Store {
	s := cart.NewStore()
	for _, p := range products {
		s.AddToCart(p)
	}
	return s
}
