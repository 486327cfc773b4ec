package rustbox

import (
	"fmt"
	"unicode/utf8"
)

// EventType distinguishes event categories. The values match the status
// codes of the driver call contract: 0 no event, 1 key, 2 resize.
type EventType int8

const (
	EventNone   EventType = 0
	EventKey    EventType = 1
	EventResize EventType = 2
)

// Modifier is an optional flag attached to a key event.
// Alt is the only defined value; anything else coming out of a driver is a
// contract violation.
type Modifier uint8

const (
	ModNone Modifier = 0
	ModAlt  Modifier = 1
)

// RawEvent is the flat, untranslated record produced by a Driver.
// It is exposed for callers that want to decode driver notifications
// themselves instead of going through DecodeEvent.
type RawEvent struct {
	Type   EventType
	Mod    uint8
	Key    uint16
	Ch     rune
	Width  int
	Height int
}

// Event is a translated terminal notification. Type selects which fields
// are meaningful: Key/Ch/Mod for EventKey, Width/Height for EventResize.
//
// For a key event exactly one representation is populated: Key carries a
// coded key when the driver reported one, otherwise Ch carries the decoded
// character. When the driver reports a character code that is not a valid
// Unicode scalar the event carries no key at all; that is silent absence,
// not an error.
type Event struct {
	Type   EventType
	Mod    Modifier
	Key    Key
	Ch     rune
	Width  int
	Height int
}

// DecodeEvent translates a raw driver record into a structured Event.
//
// Both decoding modes work from the same record: capture the RawEvent once
// (PollEventRaw/PeekEventRaw) and run DecodeEvent over it later if needed;
// no second driver query happens.
//
// An unrecognized event type or modifier value means the driver's ABI no
// longer matches this layer and panics rather than guessing.
func DecodeEvent(raw RawEvent) Event {
	switch raw.Type {
	case EventNone:
		return Event{Type: EventNone}
	case EventKey:
		ev := Event{Type: EventKey}
		switch raw.Mod {
		case uint8(ModNone):
		case uint8(ModAlt):
			ev.Mod = ModAlt
		default:
			panic(fmt.Sprintf("rustbox: driver returned unknown modifier %#x", raw.Mod))
		}
		if raw.Key == 0 {
			if utf8.ValidRune(raw.Ch) {
				ev.Ch = raw.Ch
			}
		} else {
			ev.Key = Key(raw.Key)
		}
		return ev
	case EventResize:
		return Event{Type: EventResize, Width: raw.Width, Height: raw.Height}
	default:
		panic(fmt.Sprintf("rustbox: unsupported event type %d from driver", raw.Type))
	}
}
