package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLegacyCategoryName(t *testing.T) {
	tests := []struct {
		name string
		tag  LegacyCategory
		want string
	}{
		{"long sleeves", LegacyLongSleeves, "Long Sleeves"},
		{"hoodies", LegacyHoodies, "Hoodies"},
		{"pants", LegacyPants, "Pants"},
		{"shorts", LegacyShorts, "Shorts"},
		{"uncategorized default", LegacyUncategorized, UncategorizedName},
		{"unknown tag falls back", LegacyCategory("capes"), UncategorizedName},
		{"empty tag falls back", LegacyCategory(""), UncategorizedName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.tag.CategoryName())
		})
	}
}

func TestLegacyCategoryValid(t *testing.T) {
	for _, tag := range LegacyCategories() {
		assert.True(t, tag.Valid(), string(tag))
	}
	assert.False(t, LegacyCategory("capes").Valid())
	assert.False(t, LegacyCategory("").Valid())
}
