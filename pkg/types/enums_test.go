package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnumValidity(t *testing.T) {
	for _, c := range Colors() {
		assert.True(t, c.Valid(), string(c))
	}
	assert.False(t, Color("magenta").Valid())

	for _, s := range Sizes() {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, Size("XS").Valid())

	for _, cs := range CustomSizes() {
		assert.True(t, cs.Valid(), string(cs))
	}
	assert.False(t, CustomSize("37").Valid())

	for _, se := range Seasons() {
		assert.True(t, se.Valid(), string(se))
	}
	assert.False(t, Season("Monsoon").Valid())
}

func TestEnumDefaults(t *testing.T) {
	assert.Equal(t, ColorBlack, DefaultColor)
	assert.Equal(t, SizeNA, DefaultSize)
	assert.Equal(t, CustomSizeNone, DefaultCustomSize)
	assert.Equal(t, SeasonSummer, DefaultSeason)
}
