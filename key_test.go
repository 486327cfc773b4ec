package rustbox

import "testing"

func TestControlLetters(t *testing.T) {
	for i := 0; i < 26; i++ {
		lower := rune('a' + i)
		upper := rune('A' + i)
		want := Key(i + 1)

		k, ok := Control(lower)
		if !ok {
			t.Fatalf("Expected Control(%q) to be defined", lower)
		}
		if k != want {
			t.Errorf("Expected Control(%q) = %#x, got %#x", lower, want, k)
		}

		uk, ok := Control(upper)
		if !ok {
			t.Fatalf("Expected Control(%q) to be defined", upper)
		}
		if uk != k {
			t.Errorf("Expected Control(%q) == Control(%q), got %#x and %#x", upper, lower, uk, k)
		}
	}
}

func TestControlAliases(t *testing.T) {
	cases := []struct {
		ch   rune
		want Key
	}{
		{'2', KeyCtrlTilde},
		{'~', KeyCtrlTilde},
		{'3', KeyEsc},
		{'[', KeyEsc},
		{'4', KeyCtrl4},
		{'\\', KeyCtrl4},
		{'5', KeyCtrl5},
		{']', KeyCtrl5},
		{'6', KeyCtrl6},
		{'7', KeyCtrl7},
		{'/', KeyCtrl7},
		{'_', KeyCtrl7},
		{'8', KeyCtrl8},
	}
	for _, c := range cases {
		k, ok := Control(c.ch)
		if !ok {
			t.Errorf("Expected Control(%q) to be defined", c.ch)
			continue
		}
		if k != c.want {
			t.Errorf("Expected Control(%q) = %#x, got %#x", c.ch, c.want, k)
		}
	}

	if k, _ := Control('2'); k != 0 {
		t.Errorf("Expected Control('2') to equal code 0, got %#x", k)
	}
}

func TestControlUndefined(t *testing.T) {
	for _, ch := range []rune{'0', '1', '9', ' ', '!', '.', 'Ā', 'λ', '€'} {
		if k, ok := Control(ch); ok {
			t.Errorf("Expected Control(%q) to be undefined, got %#x", ch, k)
		}
	}
}

func TestFunctionRange(t *testing.T) {
	for n := 1; n <= 12; n++ {
		if _, ok := Function(n); !ok {
			t.Errorf("Expected Function(%d) to be defined", n)
		}
	}
	for _, n := range []int{-1, 0, 13, 100} {
		if k, ok := Function(n); ok {
			t.Errorf("Expected Function(%d) to be undefined, got %#x", n, k)
		}
	}
}

func TestFunctionFormula(t *testing.T) {
	// The historical encoding is 0xFFFF - n - 1, reproduced bit-for-bit;
	// it does not land on the KeyF1-based constant of the same ordinal.
	for n := 1; n <= 12; n++ {
		k, _ := Function(n)
		if want := Key(0xFFFF - n - 1); k != want {
			t.Errorf("Expected Function(%d) = %#x, got %#x", n, want, k)
		}
	}
	if k, _ := Function(1); k != 0xFFFD {
		t.Errorf("Expected Function(1) = 0xfffd, got %#x", k)
	}
}

func TestKeyConstantTable(t *testing.T) {
	cases := []struct {
		key  Key
		want uint16
	}{
		{KeyF1, 0xFFFF},
		{KeyF12, 0xFFFF - 11},
		{KeyInsert, 0xFFFF - 12},
		{KeyArrowRight, 0xFFFF - 21},
		{KeyMouseWheelDown, 0xFFFF - 27},
		{KeyCtrlTilde, 0x00},
		{KeyCtrl2, 0x00},
		{KeyCtrlA, 0x01},
		{KeyCtrlZ, 0x1A},
		{KeyEsc, 0x1B},
		{KeySpace, 0x20},
		{KeyBackspace2, 0x7F},
		{KeyCtrl8, 0x7F},
	}
	for _, c := range cases {
		if uint16(c.key) != c.want {
			t.Errorf("Expected key constant %#x, got %#x", c.want, uint16(c.key))
		}
	}
}

func TestKeyName(t *testing.T) {
	cases := []struct {
		key  Key
		want string
	}{
		{KeyF1, "f1"},
		{KeyArrowUp, "up"},
		{KeyCtrlTilde, "ctrl_tilde"},
		{KeyCtrl2, "ctrl_tilde"}, // alias resolves to the canonical name
		{KeyCtrlH, "backspace"},
		{KeyCtrl3, "escape"},
		{Key(0x2A), ""}, // reserved printable range has no coded name
	}
	for _, c := range cases {
		if got := KeyName(c.key); got != c.want {
			t.Errorf("Expected KeyName(%#x) = %q, got %q", uint16(c.key), c.want, got)
		}
	}
}
