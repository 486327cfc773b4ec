package rustbox

import (
	"errors"
	"fmt"
)

// Named initialization failures. Open reports these so callers can render a
// specific diagnostic instead of a generic one.
var (
	// ErrAlreadyOpen means another Session is live in this process.
	ErrAlreadyOpen = errors.New("rustbox: session already open")
	// ErrUnsupportedTerminal means the terminal type could not be resolved.
	ErrUnsupportedTerminal = errors.New("rustbox: unsupported terminal")
	// ErrFailedToOpenTty means the control device could not be opened.
	ErrFailedToOpenTty = errors.New("rustbox: failed to open tty")
	// ErrPipeTrapError means the driver's internal signal pipe setup failed.
	ErrPipeTrapError = errors.New("rustbox: pipe trap failed")
)

// InitErrorFromCode maps the documented negative init status codes of a
// termbox-style driver to the named failures. An unrecognized code means the
// driver ABI has drifted and panics.
func InitErrorFromCode(code int) error {
	switch code {
	case -1:
		return ErrUnsupportedTerminal
	case -2:
		return ErrFailedToOpenTty
	case -3:
		return ErrPipeTrapError
	default:
		panic(fmt.Sprintf("rustbox: unhandled driver init code %d", code))
	}
}
