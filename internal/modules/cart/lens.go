package cart

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type LensChoice struct {
	ID          string
	Name        string
	Type        LensType
	Price       decimal.Decimal
	Description string
}

var lensCatalog = map[LensType][]LensChoice{
	LensStandard: {
		{ID: "basic", Name: "Basic", Type: LensStandard, Price: decimal.NewFromInt(50), Description: "Standard lenses with no additional features"},
		{ID: "antiBlue", Name: "Anti-Blue Light", Type: LensStandard, Price: decimal.NewFromInt(95), Description: "Lenses with blue light filtering technology"},
		{ID: "premium", Name: "Premium", Type: LensStandard, Price: decimal.NewFromInt(150), Description: "High-quality lenses with advanced features"},
	},
	LensPrescription: {
		{ID: "basicRx", Name: "Basic Powered", Type: LensPrescription, Price: decimal.NewFromInt(100), Description: "Standard prescription lenses"},
		{ID: "antiBlueRx", Name: "Anti-Blue Light Powered", Type: LensPrescription, Price: decimal.NewFromInt(145), Description: "Prescription lenses with blue light filtering"},
		{ID: "premiumRx", Name: "Premium Powered", Type: LensPrescription, Price: decimal.NewFromInt(200), Description: "High-quality prescription lenses with all features"},
	},
}

// LensChoices lists the options of one lens type.
func LensChoices(t LensType) []LensChoice {
	return append([]LensChoice(nil), lensCatalog[t]...)
}

// AllLensChoices lists standard options first, then prescription.
func AllLensChoices() []LensChoice {
	return append(LensChoices(LensStandard), LensChoices(LensPrescription)...)
}

// LookupLens resolves a lens selection. An empty optionID picks the first
// option of the type.
func LookupLens(t LensType, optionID, prescriptionID string) (LensOption, error) {
	choices, ok := lensCatalog[t]
	if !ok {
		return LensOption{}, fmt.Errorf("%w: %q", ErrUnknownLensType, t)
	}
	choice := choices[0]
	if optionID != "" {
		found := false
		for _, c := range choices {
			if c.ID == optionID {
				choice, found = c, true
				break
			}
		}
		if !found {
			return LensOption{}, fmt.Errorf("%w: %q for %s lenses", ErrUnknownLensOption, optionID, t)
		}
	}
	lo := LensOption{Type: t, Option: choice.Name, Price: choice.Price}
	if t == LensPrescription {
		lo.PrescriptionID = prescriptionID
	}
	return lo, nil
}
