package users

import (
	"context"
	"strings"

	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/modules/checkout"
)

// Profile is the signed-in customer's profile as served by the backend.
type Profile struct {
	ID           int64  `json:"id,omitempty"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PhoneNumber  string `json:"phone_number"`
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zip_code"`
	Country      string `json:"country"`
	FaceShape    string `json:"face_shape,omitempty"`
	CreatedAt    string `json:"created_at,omitempty"`
}

// BillingDefaults seeds the checkout billing form.
func (p Profile) BillingDefaults() checkout.BillingInfo {
	return checkout.BillingInfo{
		Name:     p.Name,
		Email:    p.Email,
		Phone:    p.PhoneNumber,
		Address1: p.AddressLine1,
		Address2: p.AddressLine2,
		City:     p.City,
		State:    p.State,
		ZipCode:  p.ZipCode,
		Country:  p.Country,
	}.Normalize()
}

// FaceShapePreference returns the stored face shape, or "" when unknown.
func (p Profile) FaceShapePreference() string {
	s := strings.TrimSpace(p.FaceShape)
	if strings.EqualFold(s, "unknown") {
		return ""
	}
	return s
}

type ProfileSource interface {
	FetchProfile(ctx context.Context) (Profile, error)
}

// Defaults loads the profile and returns billing defaults. A missing or
// unreachable profile yields empty defaults and the error for logging.
func Defaults(ctx context.Context, src ProfileSource) (checkout.BillingInfo, Profile, error) {
	p, err := src.FetchProfile(ctx)
	if err != nil {
		return checkout.BillingInfo{}, Profile{}, err
	}
	return p.BillingDefaults(), p, nil
}
