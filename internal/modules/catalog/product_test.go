package catalog

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductUnmarshalNormalizesRelations(t *testing.T) {
	raw := `{
		"id": 7, "name": "Cat Eye", "description": "", "price": "3250.50",
		"category": null, "frame_type": null, "stock": 3,
		"face_shapes": ["round"], "images": null, "manufacturer": 12
	}`
	var p Product
	require.NoError(t, json.Unmarshal([]byte(raw), &p))

	assert.Equal(t, Category{ID: 0, Name: UncategorizedName}, p.Category)
	assert.Equal(t, FrameType{ID: 0, Name: UnknownFrameType}, p.FrameType)
	assert.True(t, p.Price.Equal(decimal.RequireFromString("3250.50")))
	assert.Equal(t, []string{}, p.Images)
	assert.Equal(t, []string{}, p.VisionProblems)
	assert.Equal(t, int64(12), p.ManufacturerID)
	assert.False(t, p.IsEyeglasses())
}

func TestProductUnmarshalObjectAndStringRelations(t *testing.T) {
	raw := `{"id": 1, "name": "A", "price": 4000, "category": {"id": 2, "name": "Eyeglasses"},
		"frame_type": "Round", "colors": "black, gold"}`
	var p Product
	require.NoError(t, json.Unmarshal([]byte(raw), &p))

	assert.Equal(t, Category{ID: 2, Name: "Eyeglasses"}, p.Category)
	assert.Equal(t, FrameType{Name: "Round"}, p.FrameType)
	assert.Equal(t, []string{"black", "gold"}, p.Colors)
	assert.True(t, p.Price.Equal(decimal.NewFromInt(4000)))
	assert.True(t, p.IsEyeglasses())
}

func TestProductJSONSurvivesCacheEncoding(t *testing.T) {
	in := sampleProducts()
	raw, err := json.Marshal(in)
	require.NoError(t, err)

	var out []Product
	require.NoError(t, json.Unmarshal(raw, &out))
	require.Len(t, out, len(in))
	for i := range in {
		assert.Equal(t, in[i].ID, out[i].ID)
		assert.Equal(t, in[i].Category, out[i].Category)
		assert.Equal(t, in[i].FrameType, out[i].FrameType)
		assert.True(t, in[i].Price.Equal(out[i].Price))
	}
}

func TestProductBadRelation(t *testing.T) {
	var p Product
	err := json.Unmarshal([]byte(`{"id": 1, "category": 5}`), &p)
	assert.Error(t, err)
}

func TestIsEyeglassesMatchesExactName(t *testing.T) {
	assert.True(t, Product{Category: Category{Name: "Eyeglasses"}}.IsEyeglasses())
	assert.False(t, Product{Category: Category{Name: "eyeglasses"}}.IsEyeglasses())
	assert.False(t, Product{Category: Category{Name: "EYEGLASSES"}}.IsEyeglasses())
}
