package rustbox

// Color selects one of the nine terminal palette entries.
type Color uint16

const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
)

// Style packs a color selector and attribute flags into a single word.
//
// Bits 0-3 hold the Color; the attribute flags live in higher bits and never
// overlap the color field. Foreground and background are each carried as an
// independent Style value; the background only ever uses the color field.
type Style uint16

const (
	StyleNormal    Style = 0x0000
	StyleBold      Style = 0x0100
	StyleUnderline Style = 0x0200
	StyleReverse   Style = 0x0400
)

const (
	colorMask Style = 0x000F
	attrMask  Style = StyleBold | StyleUnderline | StyleReverse
)

// FromColor masks a color into the 4-bit color field of a fresh Style,
// with no attribute bits set.
func FromColor(c Color) Style {
	return Style(c) & colorMask
}

// Color extracts the color field of the style.
func (s Style) Color() Color {
	return Color(s & colorMask)
}

// Attrs extracts the attribute flags of the style, dropping the color field.
func (s Style) Attrs() Style {
	return s & attrMask
}

// combine merges attribute flags with a color into one foreground style.
// Both operands are masked before the OR so neither can corrupt the other's
// field.
func combine(attrs Style, c Color) Style {
	return FromColor(c) | attrs.Attrs()
}
