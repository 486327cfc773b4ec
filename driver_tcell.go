package rustbox

import (
	"errors"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gdamore/tcell/v2/terminfo"
	"golang.org/x/term"
)

// tcellDriver drives the terminal through gdamore/tcell. tcell has its own
// key space and style model, so this driver translates both into the coded
// key and packed style spaces at the boundary.
type tcellDriver struct {
	screen tcell.Screen
	events chan tcell.Event
	quit   chan struct{}
	mode   InputMode
}

// NewTcellDriver returns a tcell-backed terminal driver.
func NewTcellDriver() Driver {
	return &tcellDriver{}
}

func (d *tcellDriver) Init() error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return ErrFailedToOpenTty
	}
	s, err := tcell.NewScreen()
	if err != nil {
		if errors.Is(err, terminfo.ErrTermNotFound) {
			return ErrUnsupportedTerminal
		}
		return err
	}
	if err := s.Init(); err != nil {
		return err
	}
	d.screen = s
	d.events = make(chan tcell.Event, 16)
	d.quit = make(chan struct{})
	go s.ChannelEvents(d.events, d.quit)
	// tcell resolves ambiguous ESC input internally; the recorded mode only
	// feeds the SetInputMode query contract.
	d.mode = InputEsc
	return nil
}

func (d *tcellDriver) Close() {
	close(d.quit)
	d.screen.Fini()
}

func (d *tcellDriver) Size() (int, int) {
	return d.screen.Size()
}

func (d *tcellDriver) Clear() {
	d.screen.Clear()
}

func (d *tcellDriver) Present() {
	d.screen.Show()
}

func (d *tcellDriver) Sync() {
	d.screen.Sync()
}

func (d *tcellDriver) SetCursor(x, y int) {
	d.screen.ShowCursor(x, y)
}

func (d *tcellDriver) HideCursor() {
	d.screen.HideCursor()
}

func (d *tcellDriver) SetCell(x, y int, ch rune, fg, bg Style) {
	d.screen.SetContent(x, y, ch, nil, tcellStyle(fg, bg))
}

func (d *tcellDriver) SetInputMode(mode InputMode) InputMode {
	prev := d.mode
	if mode != InputCurrent {
		d.mode = mode
	}
	return prev
}

func (d *tcellDriver) PollEvent() (RawEvent, error) {
	for {
		ev, ok := <-d.events
		if !ok {
			return RawEvent{}, errors.New("rustbox: tcell event stream closed")
		}
		raw, handled, err := convertTcellEvent(ev)
		if err != nil {
			return RawEvent{}, err
		}
		if handled {
			return raw, nil
		}
	}
}

func (d *tcellDriver) PeekEvent(timeout time.Duration) (RawEvent, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	for {
		select {
		case ev, ok := <-d.events:
			if !ok {
				return RawEvent{}, errors.New("rustbox: tcell event stream closed")
			}
			raw, handled, err := convertTcellEvent(ev)
			if err != nil {
				return RawEvent{}, err
			}
			if handled {
				return raw, nil
			}
		case <-timer.C:
			return RawEvent{Type: EventNone}, nil
		}
	}
}

// convertTcellEvent maps a tcell event onto the raw record contract.
// Event kinds outside the contract (focus, paste, interrupts) report
// handled=false and are skipped by the callers.
func convertTcellEvent(ev tcell.Event) (raw RawEvent, handled bool, err error) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		raw = RawEvent{Type: EventKey}
		if ev.Modifiers()&tcell.ModAlt != 0 {
			raw.Mod = uint8(ModAlt)
		}
		k := ev.Key()
		switch {
		case k == tcell.KeyRune:
			raw.Ch = ev.Rune()
		case k <= 0x1F || k == 0x7F:
			// tcell's control-key values are the ASCII control plane.
			raw.Key = uint16(k)
		default:
			code, ok := tcellKeys[k]
			if !ok {
				return RawEvent{}, false, nil
			}
			raw.Key = uint16(code)
		}
		return raw, true, nil
	case *tcell.EventResize:
		w, h := ev.Size()
		return RawEvent{Type: EventResize, Width: w, Height: h}, true, nil
	case *tcell.EventError:
		return RawEvent{}, true, errors.New(ev.Error())
	default:
		return RawEvent{}, false, nil
	}
}

// tcellKeys maps tcell's special keys onto the high coded-key range.
var tcellKeys = map[tcell.Key]Key{
	tcell.KeyF1:     KeyF1,
	tcell.KeyF2:     KeyF2,
	tcell.KeyF3:     KeyF3,
	tcell.KeyF4:     KeyF4,
	tcell.KeyF5:     KeyF5,
	tcell.KeyF6:     KeyF6,
	tcell.KeyF7:     KeyF7,
	tcell.KeyF8:     KeyF8,
	tcell.KeyF9:     KeyF9,
	tcell.KeyF10:    KeyF10,
	tcell.KeyF11:    KeyF11,
	tcell.KeyF12:    KeyF12,
	tcell.KeyInsert: KeyInsert,
	tcell.KeyDelete: KeyDelete,
	tcell.KeyHome:   KeyHome,
	tcell.KeyEnd:    KeyEnd,
	tcell.KeyPgUp:   KeyPgup,
	tcell.KeyPgDn:   KeyPgdn,
	tcell.KeyUp:     KeyArrowUp,
	tcell.KeyDown:   KeyArrowDown,
	tcell.KeyLeft:   KeyArrowLeft,
	tcell.KeyRight:  KeyArrowRight,
}

// tcellStyle rebuilds a tcell style from the packed foreground and
// background words. Only the foreground carries attribute bits.
func tcellStyle(fg, bg Style) tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcellColor(fg.Color())).
		Background(tcellColor(bg.Color())).
		Bold(fg&StyleBold != 0).
		Underline(fg&StyleUnderline != 0).
		Reverse(fg&StyleReverse != 0)
}

func tcellColor(c Color) tcell.Color {
	if c == ColorDefault {
		return tcell.ColorDefault
	}
	// Colors 1-8 are the first eight palette entries.
	return tcell.PaletteColor(int(c) - 1)
}
