package checkout

import (
	"fmt"
	"strings"
)

type Step int

const (
	StepBilling Step = iota + 1
	StepDelivery
	StepLens
	StepPayment
	StepConfirmation
)

func (s Step) Valid() bool { return s >= StepBilling && s <= StepConfirmation }

func (s Step) Label() string {
	switch s {
	case StepBilling:
		return "Billing"
	case StepDelivery:
		return "Shipping"
	case StepLens:
		return "Lens Selection"
	case StepPayment:
		return "Payment"
	case StepConfirmation:
		return "Confirmation"
	default:
		return fmt.Sprintf("Step %d", int(s))
	}
}

// Path lists the steps a shopper walks through.
func Path(hasEyeglasses bool) []Step {
	if hasEyeglasses {
		return []Step{StepBilling, StepDelivery, StepLens, StepPayment, StepConfirmation}
	}
	return []Step{StepBilling, StepDelivery, StepConfirmation}
}

// Conditions is what the forward transitions are gated on.
type Conditions struct {
	Billing       BillingInfo
	HasEyeglasses bool
	// MissingLenses names eyeglasses lines without a lens option.
	MissingLenses []string
}

// Next returns the step after from, or a *ValidationError and from when
// the transition is blocked.
func Next(from Step, c Conditions) (Step, error) {
	switch from {
	case StepBilling:
		if missing := c.Billing.Validate(); len(missing) > 0 {
			return from, &ValidationError{Step: from, Fields: missing, Message: "Please fill in all required billing fields"}
		}
		return StepDelivery, nil
	case StepDelivery:
		if c.HasEyeglasses {
			return StepLens, nil
		}
		return StepConfirmation, nil
	case StepLens:
		if len(c.MissingLenses) > 0 {
			fields := make(map[string]string, 1)
			fields[LensRequirement] = fmt.Sprintf("Select lens options for: %s", strings.Join(c.MissingLenses, ", "))
			return from, &ValidationError{Step: from, Fields: fields, Message: "Please select lens options"}
		}
		if c.HasEyeglasses {
			return StepPayment, nil
		}
		return StepConfirmation, nil
	case StepPayment:
		return StepConfirmation, nil
	case StepConfirmation:
		return StepConfirmation, nil
	default:
		return StepBilling, fmt.Errorf("unknown checkout step %d", int(from))
	}
}

// Prev mirrors Next.
func Prev(from Step, hasEyeglasses bool) Step {
	switch from {
	case StepConfirmation:
		if hasEyeglasses {
			return StepPayment
		}
		return StepDelivery
	case StepPayment:
		return StepLens
	case StepLens:
		return StepDelivery
	case StepDelivery, StepBilling:
		return StepBilling
	default:
		return StepBilling
	}
}
