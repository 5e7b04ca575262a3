package core

// Color is a semantic foreground color for a screen cell. The platform maps
// it to terminal styles.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorWhite
	ColorGray
	ColorBrightGreen
	ColorBrightRed
)
