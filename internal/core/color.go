package core

// Color is a logical foreground color for a screen cell.
// Each frontend maps it to its own palette.
type Color uint8

const (
	ColorDefault Color = iota
	ColorGreen
	ColorBrightGreen
	ColorRed
	ColorYellow
	ColorCyan
	ColorGray
	ColorBrightWhite
)

// Colors lists every defined color, in declaration order.
func Colors() []Color {
	return []Color{
		ColorDefault,
		ColorGreen,
		ColorBrightGreen,
		ColorRed,
		ColorYellow,
		ColorCyan,
		ColorGray,
		ColorBrightWhite,
	}
}
