package rustbox

// Key identifies a coded (non-character) keyboard or mouse input unit.
//
// Coded keys occupy two disjoint ranges: the ASCII control plane
// (0x00-0x1F and 0x7F) and a range counting down from 0xFFFF for function,
// navigation and mouse keys. The printable range 0x20-0x7E is reserved for
// character keys and never produced as a coded key; character keys travel in
// Event.Ch instead.
type Key uint16

// High-range coded keys, counting down from 0xFFFF in fixed order.
const (
	KeyF1 Key = 0xFFFF - iota
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyInsert
	KeyDelete
	KeyHome
	KeyEnd
	KeyPgup
	KeyPgdn
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyMouseLeft
	KeyMouseRight
	KeyMouseMiddle
	KeyMouseRelease
	KeyMouseWheelUp
	KeyMouseWheelDown
)

// Control-plane coded keys. Several codes are reachable through more than
// one physical key combination; every alias is kept on purpose.
const (
	KeyCtrlTilde      Key = 0x00
	KeyCtrl2          Key = 0x00 // clash with KeyCtrlTilde
	KeyCtrlA          Key = 0x01
	KeyCtrlB          Key = 0x02
	KeyCtrlC          Key = 0x03
	KeyCtrlD          Key = 0x04
	KeyCtrlE          Key = 0x05
	KeyCtrlF          Key = 0x06
	KeyCtrlG          Key = 0x07
	KeyBackspace      Key = 0x08
	KeyCtrlH          Key = 0x08 // clash with KeyBackspace
	KeyTab            Key = 0x09
	KeyCtrlI          Key = 0x09 // clash with KeyTab
	KeyCtrlJ          Key = 0x0A
	KeyCtrlK          Key = 0x0B
	KeyCtrlL          Key = 0x0C
	KeyEnter          Key = 0x0D
	KeyCtrlM          Key = 0x0D // clash with KeyEnter
	KeyCtrlN          Key = 0x0E
	KeyCtrlO          Key = 0x0F
	KeyCtrlP          Key = 0x10
	KeyCtrlQ          Key = 0x11
	KeyCtrlR          Key = 0x12
	KeyCtrlS          Key = 0x13
	KeyCtrlT          Key = 0x14
	KeyCtrlU          Key = 0x15
	KeyCtrlV          Key = 0x16
	KeyCtrlW          Key = 0x17
	KeyCtrlX          Key = 0x18
	KeyCtrlY          Key = 0x19
	KeyCtrlZ          Key = 0x1A
	KeyEsc            Key = 0x1B
	KeyCtrlLsqBracket Key = 0x1B // clash with KeyEsc
	KeyCtrl3          Key = 0x1B // clash with KeyEsc
	KeyCtrl4          Key = 0x1C
	KeyCtrlBackslash  Key = 0x1C // clash with KeyCtrl4
	KeyCtrl5          Key = 0x1D
	KeyCtrlRsqBracket Key = 0x1D // clash with KeyCtrl5
	KeyCtrl6          Key = 0x1E
	KeyCtrl7          Key = 0x1F
	KeyCtrlSlash      Key = 0x1F // clash with KeyCtrl7
	KeyCtrlUnderscore Key = 0x1F // clash with KeyCtrl7
	KeySpace          Key = 0x20
	KeyBackspace2     Key = 0x7F
	KeyCtrl8          Key = 0x7F // clash with KeyBackspace2
)

// Control maps a source character to its control-code key.
//
// The mapping is case-insensitive over letters and deliberately many-to-one:
// CTRL+2 and CTRL+~ both produce KeyCtrlTilde, CTRL+7, CTRL+/ and CTRL+_
// all produce 0x1F, and so on. Characters above 0xFF and characters outside
// the table are not valid control-key sources and report false.
func Control(ch rune) (Key, bool) {
	if ch < 0 || ch > 0xFF {
		return 0, false
	}
	switch {
	case ch >= 'a' && ch <= 'z':
		return Key(ch-'a') + 1, true
	case ch >= 'A' && ch <= 'Z':
		return Key(ch-'A') + 1, true
	}
	switch ch {
	case '2', '~':
		return KeyCtrlTilde, true
	case '3', '[':
		return KeyEsc, true
	case '4', '\\':
		return KeyCtrl4, true
	case '5', ']':
		return KeyCtrl5, true
	case '6':
		return KeyCtrl6, true
	case '7', '/', '_':
		return KeyCtrl7, true
	case '8':
		return KeyCtrl8, true
	}
	return 0, false
}

// Function returns the coded key for function key n, valid for n in [1,12].
//
// The encoding is 0xFFFF - n - 1, carried over bit-for-bit from the original
// derivation. Note that this lands Function(1) on 0xFFFD, two slots below
// KeyF1; callers that have compatibility expectations around the historical
// values rely on the formula, not on the named constants.
func Function(n int) (Key, bool) {
	if n < 1 || n > 12 {
		return 0, false
	}
	return Key(0xFFFF - n - 1), true
}

// keyToName maps coded keys to canonical names. Alias groups resolve to the
// first-listed (canonical) name of their code.
var keyToName = map[Key]string{
	KeyF1:             "f1",
	KeyF2:             "f2",
	KeyF3:             "f3",
	KeyF4:             "f4",
	KeyF5:             "f5",
	KeyF6:             "f6",
	KeyF7:             "f7",
	KeyF8:             "f8",
	KeyF9:             "f9",
	KeyF10:            "f10",
	KeyF11:            "f11",
	KeyF12:            "f12",
	KeyInsert:         "insert",
	KeyDelete:         "delete",
	KeyHome:           "home",
	KeyEnd:            "end",
	KeyPgup:           "page_up",
	KeyPgdn:           "page_down",
	KeyArrowUp:        "up",
	KeyArrowDown:      "down",
	KeyArrowLeft:      "left",
	KeyArrowRight:     "right",
	KeyMouseLeft:      "mouse_left",
	KeyMouseRight:     "mouse_right",
	KeyMouseMiddle:    "mouse_middle",
	KeyMouseRelease:   "mouse_release",
	KeyMouseWheelUp:   "mouse_wheel_up",
	KeyMouseWheelDown: "mouse_wheel_down",

	KeyCtrlTilde:  "ctrl_tilde", // also ctrl_2
	KeyCtrlA:      "ctrl_a",
	KeyCtrlB:      "ctrl_b",
	KeyCtrlC:      "ctrl_c",
	KeyCtrlD:      "ctrl_d",
	KeyCtrlE:      "ctrl_e",
	KeyCtrlF:      "ctrl_f",
	KeyCtrlG:      "ctrl_g",
	KeyBackspace:  "backspace", // also ctrl_h
	KeyTab:        "tab",       // also ctrl_i
	KeyCtrlJ:      "ctrl_j",
	KeyCtrlK:      "ctrl_k",
	KeyCtrlL:      "ctrl_l",
	KeyEnter:      "enter", // also ctrl_m
	KeyCtrlN:      "ctrl_n",
	KeyCtrlO:      "ctrl_o",
	KeyCtrlP:      "ctrl_p",
	KeyCtrlQ:      "ctrl_q",
	KeyCtrlR:      "ctrl_r",
	KeyCtrlS:      "ctrl_s",
	KeyCtrlT:      "ctrl_t",
	KeyCtrlU:      "ctrl_u",
	KeyCtrlV:      "ctrl_v",
	KeyCtrlW:      "ctrl_w",
	KeyCtrlX:      "ctrl_x",
	KeyCtrlY:      "ctrl_y",
	KeyCtrlZ:      "ctrl_z",
	KeyEsc:        "escape", // also ctrl_lsq_bracket, ctrl_3
	KeyCtrl4:      "ctrl_4", // also ctrl_backslash
	KeyCtrl5:      "ctrl_5", // also ctrl_rsq_bracket
	KeyCtrl6:      "ctrl_6",
	KeyCtrl7:      "ctrl_7", // also ctrl_slash, ctrl_underscore
	KeySpace:      "space",
	KeyBackspace2: "backspace2", // also ctrl_8
}

// KeyName returns the canonical name of a coded key.
// Returns the empty string for codes without a named constant.
func KeyName(k Key) string {
	return keyToName[k]
}
