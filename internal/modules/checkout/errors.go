package checkout

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrEmptyCart          = errors.New("cart is empty")
	ErrSubmissionInFlight = errors.New("order submission already in progress")
	ErrAlreadyComplete    = errors.New("order already placed")
	ErrPaymentNotReady    = errors.New("checkout is not at the payment step")
	ErrInvalidDelivery    = errors.New("invalid delivery option")
	ErrInvalidPayment     = errors.New("invalid payment method")
)

// LensRequirement is the field name used when eyeglasses lack a lens.
const LensRequirement = "lensOptions"

// ValidationError blocks a step transition. Fields maps each missing
// requirement to a user-facing message.
type ValidationError struct {
	Step    Step
	Fields  map[string]string
	Message string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (%s)", e.Message, strings.Join(e.Missing(), ", "))
}

// Missing lists the field names in a stable order.
func (e *ValidationError) Missing() []string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
