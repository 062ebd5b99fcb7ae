package types

// Color is the closed set of garment colors.
type Color string

const (
	ColorRed       Color = "red"
	ColorGreen     Color = "green"
	ColorBlue      Color = "blue"
	ColorBlack     Color = "black"
	ColorWhite     Color = "white"
	ColorYellow    Color = "yellow"
	ColorOrange    Color = "orange"
	ColorPurple    Color = "purple"
	ColorPink      Color = "pink"
	ColorBrown     Color = "brown"
	ColorGray      Color = "gray"
	ColorLightGray Color = "lightGray"
	ColorDarkGray  Color = "darkGray"
	ColorCyan      Color = "cyan"
)

// DefaultColor is applied when an item record carries no color.
const DefaultColor = ColorBlack

// validColors is the set of recognized color values.
var validColors = map[Color]bool{
	ColorRed: true, ColorGreen: true, ColorBlue: true, ColorBlack: true,
	ColorWhite: true, ColorYellow: true, ColorOrange: true, ColorPurple: true,
	ColorPink: true, ColorBrown: true, ColorGray: true, ColorLightGray: true,
	ColorDarkGray: true, ColorCyan: true,
}

// Valid reports whether c is a recognized color.
func (c Color) Valid() bool { return validColors[c] }

// Colors lists every recognized color in declaration order.
func Colors() []Color {
	return []Color{
		ColorRed, ColorGreen, ColorBlue, ColorBlack, ColorWhite, ColorYellow,
		ColorOrange, ColorPurple, ColorPink, ColorBrown, ColorGray,
		ColorLightGray, ColorDarkGray, ColorCyan,
	}
}

// Size is the closed set of standard garment sizes.
type Size string

const (
	SizeNA   Size = "NA"
	SizeS    Size = "S"
	SizeM    Size = "M"
	SizeL    Size = "L"
	SizeXL   Size = "XL"
	SizeXXL  Size = "XXL"
	SizeXXXL Size = "XXXL"
)

// DefaultSize is applied when an item record carries no size.
const DefaultSize = SizeNA

var validSizes = map[Size]bool{
	SizeNA: true, SizeS: true, SizeM: true, SizeL: true,
	SizeXL: true, SizeXXL: true, SizeXXXL: true,
}

// Valid reports whether s is a recognized size.
func (s Size) Valid() bool { return validSizes[s] }

// Sizes lists every recognized size in declaration order.
func Sizes() []Size {
	return []Size{SizeNA, SizeS, SizeM, SizeL, SizeXL, SizeXXL, SizeXXXL}
}

// CustomSize is the closed set of numeric garment sizes, with "NA" meaning
// no custom size applies.
type CustomSize string

const CustomSizeNone CustomSize = "NA"

// DefaultCustomSize is applied when an item record carries no custom size.
const DefaultCustomSize = CustomSizeNone

var validCustomSizes = map[CustomSize]bool{
	CustomSizeNone: true,
	"38":           true, "40": true, "42": true, "44": true, "46": true,
	"48": true, "50": true, "52": true, "54": true, "56": true,
	"58": true, "60": true, "62": true,
}

// Valid reports whether c is a recognized custom size.
func (c CustomSize) Valid() bool { return validCustomSizes[c] }

// CustomSizes lists every recognized custom size, "NA" first.
func CustomSizes() []CustomSize {
	return []CustomSize{
		CustomSizeNone, "38", "40", "42", "44", "46", "48", "50", "52",
		"54", "56", "58", "60", "62",
	}
}

// Season is the closed set of selling seasons.
type Season string

const (
	SeasonSpring Season = "Spring"
	SeasonSummer Season = "Summer"
	SeasonAutumn Season = "Autumn"
	SeasonWinter Season = "Winter"
	SeasonAll    Season = "All"
)

// DefaultSeason is applied when an item record carries no season.
const DefaultSeason = SeasonSummer

var validSeasons = map[Season]bool{
	SeasonSpring: true, SeasonSummer: true, SeasonAutumn: true,
	SeasonWinter: true, SeasonAll: true,
}

// Valid reports whether s is a recognized season.
func (s Season) Valid() bool { return validSeasons[s] }

// Seasons lists every recognized season in declaration order.
func Seasons() []Season {
	return []Season{SeasonSpring, SeasonSummer, SeasonAutumn, SeasonWinter, SeasonAll}
}
