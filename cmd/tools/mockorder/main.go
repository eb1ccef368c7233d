package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/backend"
	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/modules/cart"
	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/modules/catalog"
	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/modules/checkout"
	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/modules/orders"
)

// mockorder builds a sample order the same way checkout does and posts it
// to the backend, or prints it with -dry-run.
func main() {
	url := flag.String("url", envOr("BACKEND_URL", "http://localhost:8000"), "Backend base URL")
	token := flag.String("token", os.Getenv("ACCESS_TOKEN"), "Bearer token")
	price := flag.String("price", "4500.00", "Frame price")
	lens := flag.String("lens", "prescription", "Lens type (standard, prescription, none)")
	rx := flag.String("prescription-id", "1", "Prescription id for prescription lenses")
	delivery := flag.String("delivery", orders.DeliveryHome, "Delivery option (home, pickup)")
	payment := flag.String("payment", orders.PaymentCard, "Payment method (card, cash)")
	dryRun := flag.Bool("dry-run", false, "Only print the payload, don't send")
	flag.Parse()

	p, err := decimal.NewFromString(*price)
	if err != nil {
		fail("invalid -price: %v", err)
	}

	store := cart.NewStore()
	store.AddToCart(catalog.Product{
		ID:       1,
		Name:     "Sample Frame",
		Price:    p,
		Category: catalog.Category{Name: catalog.EyeglassesCategory},
		Stock:    1,
	})
	if *lens != "none" {
		lo, err := cart.LookupLens(cart.LensType(*lens), "", *rx)
		if err != nil {
			fail("invalid -lens: %v", err)
		}
		store.UpdateLensOption(1, &lo)
	}

	billing := checkout.BillingInfo{
		Name:     "Sample Customer",
		Email:    "customer@example.com",
		Phone:    "0771234567",
		Address1: "12 Lake Road",
		City:     "Colombo",
		State:    "Western",
		ZipCode:  "00500",
		Country:  "Sri Lanka",
	}
	items := store.Items()
	totals := checkout.DefaultPricing().QuoteItems(items, *delivery)
	req := checkout.BuildPayload(checkout.PayloadInput{
		OrderNumber:    checkout.NewNumberGenerator().Next(),
		Items:          items,
		Billing:        billing,
		PaymentMethod:  *payment,
		DeliveryOption: *delivery,
		Total:          totals.Total,
	})

	body, err := json.MarshalIndent(req, "", "  ")
	if err != nil {
		fail("marshal payload: %v", err)
	}
	fmt.Println(string(body))
	if *dryRun {
		return
	}

	client := backend.New(*url, 15*time.Second, slog.New(slog.NewTextHandler(os.Stderr, nil)))
	ctx := backend.WithToken(context.Background(), *token)
	o, err := client.CreateOrder(ctx, req)
	if err != nil {
		fail("create order: %v", err)
	}
	fmt.Printf("Created order #%s (status %s, total %s)\n", o.Number, o.Status.Label(), o.TotalPrice.StringFixed(2))
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
