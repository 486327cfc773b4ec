package rustbox

import "time"

// InputMode controls how the driver resolves ambiguous escape sequences.
type InputMode int

const (
	// InputCurrent leaves the driver's current setting untouched.
	InputCurrent InputMode = 0
	// InputEsc makes an unmatched ESC terminate the sequence as KeyEsc.
	InputEsc InputMode = 1
	// InputAlt makes an unmatched ESC set ModAlt on the next key event.
	InputAlt InputMode = 2
)

// Driver is the terminal-control collaborator behind a Session.
//
// Implementations own the process-level terminal mode switches, the cell
// buffer and the raw input stream; the Session layers the typed key, event
// and style models on top. Calls other than Init/Close are only made while
// the driver is initialized, from one goroutine at a time.
type Driver interface {
	// Init claims the terminal. Initialization failures are reported as
	// ErrUnsupportedTerminal, ErrFailedToOpenTty or ErrPipeTrapError where
	// the cause can be classified, or passed through otherwise.
	Init() error

	// Close restores the terminal. Called exactly once, after Init succeeded.
	Close()

	Size() (width, height int)
	Clear()
	Present()

	// Sync forces a full redraw on the next Present.
	Sync()

	SetCursor(x, y int)
	HideCursor()

	// SetCell writes one rune at a cell position. Styles arrive pre-masked:
	// the background carries only a color field.
	SetCell(x, y int, ch rune, fg, bg Style)

	// SetInputMode applies an escape disambiguation mode and reports the
	// previous one. InputCurrent only queries.
	SetInputMode(mode InputMode) InputMode

	// PollEvent blocks until a terminal notification or an OS error occurs.
	// A blocking poll never yields a RawEvent with Type EventNone.
	PollEvent() (RawEvent, error)

	// PeekEvent blocks up to timeout; on expiry it yields a RawEvent with
	// Type EventNone and no error.
	PeekEvent(timeout time.Duration) (RawEvent, error)
}
