package checkout

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/modules/orders"
)

// BillingInfo is the customer's contact and address record.
type BillingInfo struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
	Address1 string `json:"address1" validate:"required"`
	Address2 string `json:"address2"`
	City     string `json:"city" validate:"required"`
	State    string `json:"state" validate:"required"`
	ZipCode  string `json:"zipCode" validate:"required"`
	Country  string `json:"country" validate:"required"`
}

// Normalize trims surrounding whitespace from every field.
func (b BillingInfo) Normalize() BillingInfo {
	b.Name = strings.TrimSpace(b.Name)
	b.Email = strings.TrimSpace(b.Email)
	b.Phone = strings.TrimSpace(b.Phone)
	b.Address1 = strings.TrimSpace(b.Address1)
	b.Address2 = strings.TrimSpace(b.Address2)
	b.City = strings.TrimSpace(b.City)
	b.State = strings.TrimSpace(b.State)
	b.ZipCode = strings.TrimSpace(b.ZipCode)
	b.Country = strings.TrimSpace(b.Country)
	return b
}

// Merge fills empty fields of b from defaults.
func (b BillingInfo) Merge(defaults BillingInfo) BillingInfo {
	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}
	fill(&b.Name, defaults.Name)
	fill(&b.Email, defaults.Email)
	fill(&b.Phone, defaults.Phone)
	fill(&b.Address1, defaults.Address1)
	fill(&b.Address2, defaults.Address2)
	fill(&b.City, defaults.City)
	fill(&b.State, defaults.State)
	fill(&b.ZipCode, defaults.ZipCode)
	fill(&b.Country, defaults.Country)
	return b
}

// Validate returns the missing required fields keyed by JSON name, or nil.
func (b BillingInfo) Validate() map[string]string {
	err := billingValidator().Struct(b.Normalize())
	if err == nil {
		return nil
	}
	out := map[string]string{}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			out[fe.Field()] = messageForTag(fe.Tag())
		}
		return out
	}
	out["_"] = "Billing information is invalid."
	return out
}

// Wire maps to the order payload shape: zip_code, nullable address2.
func (b BillingInfo) Wire() orders.Billing {
	b = b.Normalize()
	w := orders.Billing{
		Name:     b.Name,
		Email:    b.Email,
		Phone:    b.Phone,
		Address1: b.Address1,
		City:     b.City,
		State:    b.State,
		ZipCode:  b.ZipCode,
		Country:  b.Country,
	}
	if b.Address2 != "" {
		a2 := b.Address2
		w.Address2 = &a2
	}
	return w
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func billingValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return f.Name
			}
			return name
		})
	})
	return validate
}

func messageForTag(tag string) string {
	switch tag {
	case "required":
		return "This field is required."
	default:
		return "Invalid value."
	}
}
