package rustbox

import (
	"sync"
	"time"
)

// Session is the single live, exclusive binding between this process and
// the terminal, bounded by Open and Close.
//
// A Session grants exclusive access to the terminal but does not serialize
// its own methods; callers invoking them from several goroutines must
// coordinate externally.
type Session struct {
	drv       Driver
	closeOnce sync.Once
}

type config struct {
	driver Driver
	mode   InputMode
}

// Option configures Open.
type Option func(*config)

// WithDriver selects the terminal driver. The default is the termbox driver.
func WithDriver(d Driver) Option {
	return func(c *config) { c.driver = d }
}

// WithInputMode applies an escape disambiguation mode right after the driver
// initializes. InputCurrent (the default) leaves the driver setting as-is.
func WithInputMode(m InputMode) Option {
	return func(c *config) { c.mode = m }
}

// Open claims the process-wide session slot, initializes the terminal
// driver and returns the Session.
//
// If a Session is already open, Open reports ErrAlreadyOpen without any
// driver call. On any initialization failure the slot is released again, so
// a later Open can succeed.
func Open(opts ...Option) (*Session, error) {
	cfg := config{mode: InputCurrent}
	for _, opt := range opts {
		opt(&cfg)
	}

	if !acquireRunning() {
		return nil, ErrAlreadyOpen
	}
	ok := false
	defer func() {
		// Covers error returns and panics out of driver init.
		if !ok {
			releaseRunning()
		}
	}()

	drv := cfg.driver
	if drv == nil {
		drv = NewTermboxDriver()
	}
	if err := drv.Init(); err != nil {
		return nil, err
	}
	if cfg.mode != InputCurrent {
		drv.SetInputMode(cfg.mode)
	}

	ok = true
	return &Session{drv: drv}, nil
}

// Close shuts the driver down and releases the session slot. Safe to call
// more than once. The slot is released strictly after driver shutdown so a
// concurrent Running() never reads false while the terminal is still being
// restored.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		s.drv.Close()
		releaseRunning()
	})
}

// Size returns the current terminal dimensions in cells.
func (s *Session) Size() (width, height int) {
	return s.drv.Size()
}

// Clear empties the back buffer.
func (s *Session) Clear() {
	s.drv.Clear()
}

// Present writes the back buffer to the terminal.
func (s *Session) Present() {
	s.drv.Present()
}

// Sync forces a full redraw, discarding the driver's damage tracking.
func (s *Session) Sync() {
	s.drv.Sync()
}

// SetCursor places the terminal cursor (0-indexed).
func (s *Session) SetCursor(x, y int) {
	s.drv.SetCursor(x, y)
}

// HideCursor makes the terminal cursor invisible.
func (s *Session) HideCursor() {
	s.drv.HideCursor()
}

// SetCell writes one rune at a cell position. Out-of-bounds writes are
// dropped. The style words are masked before crossing the driver boundary:
// the foreground keeps its color and attribute fields, the background keeps
// only its color field.
func (s *Session) SetCell(x, y int, ch rune, fg, bg Style) {
	w, h := s.drv.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	s.drv.SetCell(x, y, ch, fg&(colorMask|attrMask), bg&colorMask)
}

// Print writes a string starting at (x, y), one cell per rune.
//
// Every rune consumes exactly one column; wide characters and combining
// marks get no special treatment. That is a documented limitation of the
// cell-write primitive, not an accounting bug.
func (s *Session) Print(x, y int, sty Style, fg, bg Color, msg string) {
	fgs := combine(sty, fg)
	bgs := FromColor(bg)
	i := 0
	for _, ch := range msg {
		s.SetCell(x+i, y, ch, fgs, bgs)
		i++
	}
}

// PrintChar writes a single rune at (x, y) with the combined style.
func (s *Session) PrintChar(x, y int, sty Style, fg, bg Color, ch rune) {
	s.SetCell(x, y, ch, combine(sty, fg), FromColor(bg))
}

// PollEvent blocks until a terminal notification arrives and returns it
// translated. Driver OS errors surface to the caller unretried.
func (s *Session) PollEvent() (Event, error) {
	raw, err := s.PollEventRaw()
	if err != nil {
		return Event{}, err
	}
	return DecodeEvent(raw), nil
}

// PollEventRaw blocks until a terminal notification arrives and returns the
// untranslated driver record.
func (s *Session) PollEventRaw() (RawEvent, error) {
	raw, err := s.drv.PollEvent()
	if err != nil {
		return RawEvent{}, err
	}
	if raw.Type == EventNone {
		panic("rustbox: driver returned no event from a blocking poll")
	}
	return raw, nil
}

// PeekEvent blocks up to timeout for a terminal notification. On expiry it
// returns an Event with Type EventNone and no error.
func (s *Session) PeekEvent(timeout time.Duration) (Event, error) {
	raw, err := s.PeekEventRaw(timeout)
	if err != nil {
		return Event{}, err
	}
	return DecodeEvent(raw), nil
}

// PeekEventRaw blocks up to timeout and returns the untranslated driver
// record; on expiry the record has Type EventNone.
func (s *Session) PeekEventRaw(timeout time.Duration) (RawEvent, error) {
	return s.drv.PeekEvent(timeout)
}

// SetInputMode applies an escape disambiguation mode and reports the
// previous one. InputCurrent only queries the driver.
func (s *Session) SetInputMode(m InputMode) InputMode {
	return s.drv.SetInputMode(m)
}
