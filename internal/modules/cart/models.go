package cart

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/modules/catalog"
)

type LensType string

const (
	LensStandard     LensType = "standard"
	LensPrescription LensType = "prescription"
)

func (t LensType) Valid() bool {
	return t == LensStandard || t == LensPrescription
}

// LensOption is the lens choice attached to an eyeglasses line.
type LensOption struct {
	Type           LensType        `json:"type"`
	Option         string          `json:"option"`
	Price          decimal.Decimal `json:"price"`
	PrescriptionID string          `json:"prescriptionId,omitempty"`
}

type Item struct {
	Product    catalog.Product `json:"product"`
	Quantity   int             `json:"quantity"`
	LensOption *LensOption     `json:"lensOption,omitempty"`
	AddedAt    time.Time       `json:"addedAt"`
}

func (it Item) LineTotal() decimal.Decimal {
	return it.Product.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))
}

func (it Item) LensLineTotal() decimal.Decimal {
	if it.LensOption == nil {
		return decimal.Zero
	}
	return it.LensOption.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))
}

func (it Item) clone() Item {
	if it.LensOption != nil {
		lo := *it.LensOption
		it.LensOption = &lo
	}
	return it
}
