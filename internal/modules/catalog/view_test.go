package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestViewRecomputesOnChange(t *testing.T) {
	v := NewView()
	assert.False(t, v.Loaded())

	v.SetProducts(sampleProducts())
	assert.True(t, v.Loaded())
	assert.Len(t, v.Products(), 4)

	v.Update(func(f Filters) Filters { return f.Toggle(FacetCategory, "Eyeglasses") })
	assert.Equal(t, []int64{1, 2}, ids(v.Products()))

	v.SetProducts(sampleProducts()[2:])
	assert.Empty(t, v.Products())
}

func TestViewClearRestoresFullList(t *testing.T) {
	all := sampleProducts()
	// Outside the default price range; Clear must still restore it.
	all = append(all, Product{ID: 9, Name: "Gold Rimless", Price: decimal.NewFromInt(45000)})

	v := NewView()
	v.SetProducts(all)
	v.Update(func(f Filters) Filters { return f.Toggle(FacetFaceShape, "oval").WithSearch("x") })
	v.Clear()

	assert.Equal(t, ids(all), ids(v.Products()))
	assert.False(t, v.Filters().HasActive())
	assert.Equal(t, "", v.Filters().Search)
}
