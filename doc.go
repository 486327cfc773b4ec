// Package rustbox provides a safe, structured layer over a raw
// character-cell terminal driver.
//
// Features:
//   - Typed key, event and style models decoded from flat driver records
//   - Packed style words: a 4-bit color selector plus bold/underline/reverse
//   - Single active session per process, enforced by an atomic guard
//   - Pluggable drivers: termbox (default) and tcell
//
// A Session is opened with Open, used from a single goroutine, and released
// with Close. Only one Session can exist per process; a second Open reports
// ErrAlreadyOpen without touching the terminal.
package rustbox
