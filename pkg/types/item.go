package types

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func init() {
	// Inventory documents carry prices as JSON numbers, matching the
	// historical file format.
	decimal.MarshalJSONWithoutQuotes = true
}

// Item validation errors.
var (
	ErrNegativePrice    = errors.New("price must not be negative")
	ErrNegativeQuantity = errors.New("quantity must not be negative")
	ErrEmptyItemName    = errors.New("item name must not be empty")
)

// Item is a single inventory record. CategoryID references a Category by ID;
// the empty string means uncategorized, either deliberately or because the
// item predates the dynamic category system and still carries only its
// legacy tag.
type Item struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	CostPrice   decimal.Decimal `json:"price"`
	SalePrice   decimal.Decimal `json:"salePrice"`
	Quantity    int             `json:"quantity"`
	Color       Color           `json:"color"`
	Image       string          `json:"image"`
	CategoryID  string          `json:"categoryId,omitempty"`
	Legacy      LegacyCategory  `json:"categorie"`
	Size        Size            `json:"size"`
	CustomSize  CustomSize      `json:"customSize"`
	Season      Season          `json:"season"`
}

// NewItem creates an item with a fresh UUID and default enum values.
func NewItem(name string) Item {
	return Item{
		ID:         uuid.NewString(),
		Name:       name,
		Color:      DefaultColor,
		Legacy:     DefaultLegacyCategory,
		Size:       DefaultSize,
		CustomSize: DefaultCustomSize,
		Season:     DefaultSeason,
	}
}

// ApplyDefaults fills zero-valued enum fields with their declared defaults.
// Decoding applies it to every loaded record so documents written by older
// versions, or edited by hand, hydrate into complete items.
func (it *Item) ApplyDefaults() {
	if it.Color == "" {
		it.Color = DefaultColor
	}
	if it.Legacy == "" {
		it.Legacy = DefaultLegacyCategory
	}
	if it.Size == "" {
		it.Size = DefaultSize
	}
	if it.CustomSize == "" {
		it.CustomSize = DefaultCustomSize
	}
	if it.Season == "" {
		it.Season = DefaultSeason
	}
}

// Validate checks the item against the data-model constraints: non-empty
// name, non-negative prices and quantity.
func (it Item) Validate() error {
	if NormalizeName(it.Name) == "" {
		return ErrEmptyItemName
	}
	if it.CostPrice.IsNegative() || it.SalePrice.IsNegative() {
		return ErrNegativePrice
	}
	if it.Quantity < 0 {
		return ErrNegativeQuantity
	}
	return nil
}

// Categorized reports whether the item references a dynamic category.
func (it Item) Categorized() bool { return it.CategoryID != "" }
