package rustbox

import (
	"fmt"
	"os"
	"time"

	termbox "github.com/nsf/termbox-go"
	"golang.org/x/term"
)

// termboxDriver drives the terminal through nsf/termbox-go. It is the
// default driver: the coded-key space of this package is the termbox key
// space, so key codes pass through untranslated.
type termboxDriver struct{}

// NewTermboxDriver returns the termbox-backed terminal driver.
func NewTermboxDriver() Driver {
	return &termboxDriver{}
}

func (d *termboxDriver) Init() error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return ErrFailedToOpenTty
	}
	return termbox.Init()
}

func (d *termboxDriver) Close() {
	termbox.Close()
}

func (d *termboxDriver) Size() (int, int) {
	return termbox.Size()
}

func (d *termboxDriver) Clear() {
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
}

func (d *termboxDriver) Present() {
	termbox.Flush()
}

func (d *termboxDriver) Sync() {
	termbox.Sync()
}

func (d *termboxDriver) SetCursor(x, y int) {
	termbox.SetCursor(x, y)
}

func (d *termboxDriver) HideCursor() {
	termbox.HideCursor()
}

func (d *termboxDriver) SetCell(x, y int, ch rune, fg, bg Style) {
	termbox.SetCell(x, y, ch, termboxAttr(fg), termboxAttr(bg))
}

func (d *termboxDriver) SetInputMode(mode InputMode) InputMode {
	var m termbox.InputMode
	switch mode {
	case InputEsc:
		m = termbox.InputEsc
	case InputAlt:
		m = termbox.InputAlt
	default:
		m = termbox.InputCurrent
	}
	prev := termbox.SetInputMode(m)
	if prev&termbox.InputAlt != 0 {
		return InputAlt
	}
	return InputEsc
}

func (d *termboxDriver) PollEvent() (RawEvent, error) {
	for {
		ev := termbox.PollEvent()
		if ev.Type == termbox.EventInterrupt {
			// Leftover interrupt from an expired PeekEvent that lost the
			// race against a real event; not a terminal notification.
			continue
		}
		return convertTermboxEvent(ev)
	}
}

// PeekEvent bounds a blocking termbox poll with termbox.Interrupt. The
// poll goroutine always finishes before PeekEvent returns: on timeout the
// interrupt forces it to yield.
func (d *termboxDriver) PeekEvent(timeout time.Duration) (RawEvent, error) {
	deadline := time.Now().Add(timeout)
	for {
		ch := make(chan termbox.Event, 1)
		go func() { ch <- termbox.PollEvent() }()

		wait := time.Until(deadline)
		if wait < 0 {
			wait = 0
		}
		select {
		case ev := <-ch:
			if ev.Type == termbox.EventInterrupt {
				continue // stale interrupt from an earlier expired peek
			}
			return convertTermboxEvent(ev)
		case <-time.After(wait):
			termbox.Interrupt()
			ev := <-ch
			if ev.Type != termbox.EventInterrupt {
				// A real event won the race; the queued interrupt is
				// skipped by a later poll.
				return convertTermboxEvent(ev)
			}
			return RawEvent{Type: EventNone}, nil
		}
	}
}

func convertTermboxEvent(ev termbox.Event) (RawEvent, error) {
	switch ev.Type {
	case termbox.EventKey:
		// Mod passes through unmasked so the translator can catch a
		// termbox ABI drift instead of papering over it.
		return RawEvent{
			Type: EventKey,
			Mod:  uint8(ev.Mod),
			Key:  uint16(ev.Key),
			Ch:   ev.Ch,
		}, nil
	case termbox.EventMouse:
		// Mouse buttons and wheel arrive as coded keys; coordinates are
		// outside the key model and dropped.
		return RawEvent{Type: EventKey, Key: uint16(ev.Key)}, nil
	case termbox.EventResize:
		return RawEvent{Type: EventResize, Width: ev.Width, Height: ev.Height}, nil
	case termbox.EventError:
		return RawEvent{}, ev.Err
	case termbox.EventNone:
		return RawEvent{Type: EventNone}, nil
	default:
		panic(fmt.Sprintf("rustbox: unexpected termbox event type %d", ev.Type))
	}
}

// termboxAttr rebuilds a termbox attribute from a packed style word.
// termbox-go moved its attribute bits for 256-color support, so the raw
// bits cannot be passed through.
func termboxAttr(s Style) termbox.Attribute {
	attr := termboxColors[s.Color()]
	if s&StyleBold != 0 {
		attr |= termbox.AttrBold
	}
	if s&StyleUnderline != 0 {
		attr |= termbox.AttrUnderline
	}
	if s&StyleReverse != 0 {
		attr |= termbox.AttrReverse
	}
	return attr
}

var termboxColors = [...]termbox.Attribute{
	ColorDefault: termbox.ColorDefault,
	ColorBlack:   termbox.ColorBlack,
	ColorRed:     termbox.ColorRed,
	ColorGreen:   termbox.ColorGreen,
	ColorYellow:  termbox.ColorYellow,
	ColorBlue:    termbox.ColorBlue,
	ColorMagenta: termbox.ColorMagenta,
	ColorCyan:    termbox.ColorCyan,
	ColorWhite:   termbox.ColorWhite,
}
