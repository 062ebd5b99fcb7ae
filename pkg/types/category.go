package types

import (
	"sort"
	"strings"

	"github.com/google/uuid"
)

// Category is a user-defined inventory grouping. The ID is assigned at
// creation and immutable; the name is unique case-insensitively across the
// category set.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// DefaultCategoryNames is the starter set a backend seeds when its category
// collection loads empty.
var DefaultCategoryNames = []string{"Long Sleeves", "Hoodies", "Pants"}

// NewCategory creates a category with a fresh UUID and the given name.
// The name is stored as supplied; callers validate and trim first.
func NewCategory(name string) Category {
	return Category{ID: uuid.NewString(), Name: name}
}

// NormalizeName trims surrounding whitespace from a candidate category name.
// An empty result means the name is invalid.
func NormalizeName(name string) string {
	return strings.TrimSpace(name)
}

// SameName reports whether two category names collide under the
// case-insensitive uniqueness rule.
func SameName(a, b string) bool {
	return strings.EqualFold(a, b)
}

// SortCategories orders categories alphabetically by name, case-insensitive.
// Ties between names that differ only in case keep their relative order.
func SortCategories(categories []Category) {
	sort.SliceStable(categories, func(i, j int) bool {
		return strings.ToLower(categories[i].Name) < strings.ToLower(categories[j].Name)
	})
}
