package types

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItemDefaults(t *testing.T) {
	it := NewItem("Black hoodie")

	assert.NotEmpty(t, it.ID)
	assert.Equal(t, "Black hoodie", it.Name)
	assert.Equal(t, DefaultColor, it.Color)
	assert.Equal(t, DefaultLegacyCategory, it.Legacy)
	assert.Equal(t, DefaultSize, it.Size)
	assert.Equal(t, DefaultCustomSize, it.CustomSize)
	assert.Equal(t, DefaultSeason, it.Season)
	assert.False(t, it.Categorized())
}

func TestItemApplyDefaults(t *testing.T) {
	var it Item
	it.ApplyDefaults()

	assert.Equal(t, ColorBlack, it.Color)
	assert.Equal(t, LegacyUncategorized, it.Legacy)
	assert.Equal(t, SizeNA, it.Size)
	assert.Equal(t, CustomSizeNone, it.CustomSize)
	assert.Equal(t, SeasonSummer, it.Season)
}

func TestItemApplyDefaultsKeepsSetValues(t *testing.T) {
	it := Item{Color: ColorRed, Legacy: LegacyPants, Size: SizeXL, Season: SeasonWinter}
	it.ApplyDefaults()

	assert.Equal(t, ColorRed, it.Color)
	assert.Equal(t, LegacyPants, it.Legacy)
	assert.Equal(t, SizeXL, it.Size)
	assert.Equal(t, SeasonWinter, it.Season)
}

func TestItemValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Item)
		wantErr error
	}{
		{"valid item passes", func(it *Item) {}, nil},
		{"empty name rejected", func(it *Item) { it.Name = "  " }, ErrEmptyItemName},
		{"negative cost rejected", func(it *Item) { it.CostPrice = decimal.NewFromInt(-1) }, ErrNegativePrice},
		{"negative sale rejected", func(it *Item) { it.SalePrice = decimal.NewFromInt(-1) }, ErrNegativePrice},
		{"negative quantity rejected", func(it *Item) { it.Quantity = -1 }, ErrNegativeQuantity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := NewItem("shirt")
			tt.mutate(&it)
			err := it.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestItemJSONRoundTrip(t *testing.T) {
	it := NewItem("Chinos")
	it.CostPrice = decimal.RequireFromString("12.50")
	it.SalePrice = decimal.RequireFromString("29.99")
	it.Quantity = 7
	it.CategoryID = "cat-1"
	it.Legacy = LegacyPants

	data, err := json.Marshal(it)
	require.NoError(t, err)

	// Prices serialize as JSON numbers and the legacy tag keeps its
	// historical field name.
	assert.Contains(t, string(data), `"price":12.5`)
	assert.Contains(t, string(data), `"categorie":"pants"`)

	var got Item
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, it.ID, got.ID)
	assert.True(t, it.CostPrice.Equal(got.CostPrice))
	assert.True(t, it.SalePrice.Equal(got.SalePrice))
	assert.Equal(t, "cat-1", got.CategoryID)
}

func TestItemDecodeMissingFieldsDefaults(t *testing.T) {
	// A minimal record from an older document version.
	raw := `{"id":"i-1","name":"Old shirt","description":"","quantity":3,"image":""}`

	var it Item
	require.NoError(t, json.Unmarshal([]byte(raw), &it))
	it.ApplyDefaults()

	assert.True(t, it.SalePrice.IsZero())
	assert.Equal(t, DefaultColor, it.Color)
	assert.Equal(t, DefaultLegacyCategory, it.Legacy)
	assert.Equal(t, DefaultSeason, it.Season)
	assert.False(t, it.Categorized())
}
