package types

// LegacyCategory is the original fixed category enumeration, superseded by
// dynamic Category records. Items keep the tag so the reconciliation routine
// can move them into the dynamic system; after migration the tag is treated
// as read-only.
type LegacyCategory string

const (
	LegacyLongSleeves   LegacyCategory = "longSleeves"
	LegacyHoodies       LegacyCategory = "hoodies"
	LegacyPants         LegacyCategory = "pants"
	LegacyShorts        LegacyCategory = "shorts"
	LegacyUncategorized LegacyCategory = "uncategorized"
)

// DefaultLegacyCategory is applied when an item record carries no legacy tag.
const DefaultLegacyCategory = LegacyUncategorized

// UncategorizedName is the category name items with an unknown or default
// legacy tag migrate into.
const UncategorizedName = "Uncategorized"

// legacyCategoryNames maps each known legacy tag to its dynamic category name.
var legacyCategoryNames = map[LegacyCategory]string{
	LegacyLongSleeves: "Long Sleeves",
	LegacyHoodies:     "Hoodies",
	LegacyPants:       "Pants",
	LegacyShorts:      "Shorts",
}

// CategoryName returns the dynamic category name for the tag. Unknown tags,
// including the uncategorized default, map to UncategorizedName.
func (l LegacyCategory) CategoryName() string {
	if name, ok := legacyCategoryNames[l]; ok {
		return name
	}
	return UncategorizedName
}

// Valid reports whether l is one of the known tags or the uncategorized
// default.
func (l LegacyCategory) Valid() bool {
	if l == LegacyUncategorized {
		return true
	}
	_, ok := legacyCategoryNames[l]
	return ok
}

// LegacyCategories lists the four known tags plus the uncategorized default.
func LegacyCategories() []LegacyCategory {
	return []LegacyCategory{
		LegacyLongSleeves, LegacyHoodies, LegacyPants, LegacyShorts,
		LegacyUncategorized,
	}
}
