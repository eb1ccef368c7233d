package orders

import (
	"fmt"
	"strings"

	"github.com/Ainkaran01/Thusha-Shop-sub001/pkg/view"
)

// Invoice renders a plain-text invoice for o.
func Invoice(o Order, currency string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Invoice for Order #%s\n", o.Number)
	if !o.CreatedAt.IsZero() {
		fmt.Fprintf(&b, "Date: %s\n", o.CreatedAt.Format("2006-01-02"))
	}
	fmt.Fprintf(&b, "Payment Method: %s\n", view.PaymentMethodLabel(o.PaymentMethod))
	fmt.Fprintf(&b, "Delivery Option: %s\n", view.DeliveryLabel(o.DeliveryOption))
	b.WriteString("\n--- Items ---\n")
	for i, it := range o.Items {
		fmt.Fprintf(&b, "%d. %s - Qty: %d - Price: %s", i+1, it.ProductName, it.Quantity, view.Money(it.Price, currency))
		if it.LensOption != nil {
			fmt.Fprintf(&b, " - Lens: %s (%s)", it.LensOption.Option, it.LensOption.Type)
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "\nTotal: %s\n\n", view.Money(o.TotalPrice, currency))

	bi := o.Billing
	addr := []string{bi.Address1}
	if bi.Address2 != nil && *bi.Address2 != "" {
		addr = append(addr, *bi.Address2)
	}
	addr = append(addr, bi.City, bi.State+" - "+bi.ZipCode, bi.Country)
	b.WriteString("Billing Info:\n")
	fmt.Fprintf(&b, "Name: %s\nEmail: %s\nPhone: %s\n", bi.Name, bi.Email, bi.Phone)
	fmt.Fprintf(&b, "Address: %s\n", strings.Join(addr, ", "))
	b.WriteString("\nThank you for shopping with us!\n")
	return b.String()
}
