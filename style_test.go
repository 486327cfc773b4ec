package rustbox

import "testing"

var allColors = []Color{
	ColorDefault, ColorBlack, ColorRed, ColorGreen, ColorYellow,
	ColorBlue, ColorMagenta, ColorCyan, ColorWhite,
}

func TestFromColorRoundTrip(t *testing.T) {
	for _, c := range allColors {
		s := FromColor(c)
		if s.Color() != c {
			t.Errorf("Expected color %d to round-trip, got %d", c, s.Color())
		}
		if s.Attrs() != StyleNormal {
			t.Errorf("Expected FromColor(%d) to carry no attributes, got %#x", c, s.Attrs())
		}
	}
}

func TestAttrsIndependentOfColor(t *testing.T) {
	attrSets := []Style{
		StyleNormal,
		StyleBold,
		StyleUnderline,
		StyleReverse,
		StyleBold | StyleUnderline,
		StyleBold | StyleReverse,
		StyleUnderline | StyleReverse,
		StyleBold | StyleUnderline | StyleReverse,
	}
	for _, attrs := range attrSets {
		for _, c := range allColors {
			s := attrs | FromColor(c)
			if s.Attrs() != attrs {
				t.Errorf("Expected attrs %#x with color %d to mask back out, got %#x", attrs, c, s.Attrs())
			}
			if s.Color() != c {
				t.Errorf("Expected color %d to survive attrs %#x, got %d", c, attrs, s.Color())
			}
		}
	}
}

func TestMasksDisjoint(t *testing.T) {
	if colorMask&attrMask != 0 {
		t.Errorf("Expected color and attribute masks to be disjoint, overlap %#x", colorMask&attrMask)
	}
	for _, c := range allColors {
		if Style(c)&attrMask != 0 {
			t.Errorf("Expected color %d to stay inside the color field", c)
		}
	}
}

func TestCombineMasksBothFields(t *testing.T) {
	// A style word polluted outside its fields must not leak through.
	dirty := StyleBold | Style(0x00F0) | Style(0x8000)
	s := combine(dirty, ColorRed)
	if s != StyleBold|FromColor(ColorRed) {
		t.Errorf("Expected combine to mask stray bits, got %#x", s)
	}
}
