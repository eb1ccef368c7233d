package orders

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvoice(t *testing.T) {
	var o Order
	require.NoError(t, json.Unmarshal([]byte(orderJSON), &o))

	inv := Invoice(o, "LKR")

	assert.True(t, strings.HasPrefix(inv, "Invoice for Order #ORD-20240501-4821\n"))
	assert.Contains(t, inv, "Date: 2024-05-01\n")
	assert.Contains(t, inv, "Payment Method: Credit / Debit Card\n")
	assert.Contains(t, inv, "Delivery Option: Home Delivery\n")
	assert.Contains(t, inv, "1. Aviator Classic - Qty: 1 - Price: ")
	assert.Contains(t, inv, "4000.00 - Lens: Basic (standard)\n")
	assert.Contains(t, inv, "2. Lens Cleaning Kit - Qty: 2 - Price: ")
	for _, line := range strings.Split(inv, "\n") {
		if strings.HasPrefix(line, "2. ") {
			assert.NotContains(t, line, "Lens:")
		}
	}
	assert.Contains(t, inv, "4725.00\n")
	assert.Contains(t, inv, "Address: 12 Galle Rd, Colombo, Western - 00300, Sri Lanka\n")
	assert.True(t, strings.HasSuffix(inv, "Thank you for shopping with us!\n"))
}

func TestInvoiceSkipsEmptyOptionalFields(t *testing.T) {
	addr2 := ""
	o := Order{Number: "ORD-1", Billing: Billing{Address1: "1 Main St", Address2: &addr2, City: "Kandy"}}

	inv := Invoice(o, "LKR")

	assert.NotContains(t, inv, "Date:")
	assert.Contains(t, inv, "Address: 1 Main St, Kandy, ")
}
