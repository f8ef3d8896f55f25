package window

import (
	"math"
)

// ============================================================================
// Event Types and Constants
// ============================================================================

// EventType is the discriminant of the native event union (sfEventType).
type EventType int32

const (
	EventClosed                 EventType = 0
	EventResized                EventType = 1
	EventLostFocus              EventType = 2
	EventGainedFocus            EventType = 3
	EventTextEntered            EventType = 4
	EventKeyPressed             EventType = 5
	EventKeyReleased            EventType = 6
	EventMouseWheelMoved        EventType = 7
	EventMouseButtonPressed     EventType = 8
	EventMouseButtonReleased    EventType = 9
	EventMouseMoved             EventType = 10
	EventMouseEntered           EventType = 11
	EventMouseLeft              EventType = 12
	EventJoystickButtonPressed  EventType = 13
	EventJoystickButtonReleased EventType = 14
	EventJoystickMoved          EventType = 15
	EventJoystickConnected      EventType = 16
	EventJoystickDisconnected   EventType = 17

	eventTypeCount = 18
)

var eventTypeNames = [eventTypeCount]string{
	"Closed",
	"Resized",
	"LostFocus",
	"GainedFocus",
	"TextEntered",
	"KeyPressed",
	"KeyReleased",
	"MouseWheelMoved",
	"MouseButtonPressed",
	"MouseButtonReleased",
	"MouseMoved",
	"MouseEntered",
	"MouseLeft",
	"JoystickButtonPressed",
	"JoystickButtonReleased",
	"JoystickMoved",
	"JoystickConnected",
	"JoystickDisconnected",
}

func (t EventType) String() string {
	if t < 0 || t >= eventTypeCount {
		return "Unknown"
	}
	return eventTypeNames[t]
}

// payloadFields names the union member that is valid for each discriminant.
// An empty entry means the event carries no payload.
var payloadFields = [eventTypeCount]string{
	EventClosed:                 "",
	EventResized:                "size",
	EventLostFocus:              "",
	EventGainedFocus:            "",
	EventTextEntered:            "text",
	EventKeyPressed:             "key",
	EventKeyReleased:            "key",
	EventMouseWheelMoved:        "mouseWheel",
	EventMouseButtonPressed:     "mouseButton",
	EventMouseButtonReleased:    "mouseButton",
	EventMouseMoved:             "mouseMove",
	EventMouseEntered:           "",
	EventMouseLeft:              "",
	EventJoystickButtonPressed:  "joystickButton",
	EventJoystickButtonReleased: "joystickButton",
	EventJoystickMoved:          "joystickMove",
	EventJoystickConnected:      "joystickConnect",
	EventJoystickDisconnected:   "joystickConnect",
}

// PayloadField returns the union member valid for t, or "" when t has no
// payload or is out of range.
func PayloadField(t EventType) string {
	if t < 0 || t >= eventTypeCount {
		return ""
	}
	return payloadFields[t]
}

// ============================================================================
// Event Records
// ============================================================================

// Event is implemented by RawEvent and every decoded payload type.
type Event interface {
	EventType() EventType
}

// RawEvent matches the memory layout of the sfEvent union: the discriminant
// followed by the largest payload. Poll and wait calls write into it.
type RawEvent struct {
	Type EventType
	Data [7]uint32
}

// EventType returns the discriminant.
func (e RawEvent) EventType() EventType { return e.Type }

func (e RawEvent) int32At(i int) int32 { return int32(e.Data[i]) }

func (e RawEvent) boolAt(i int) bool { return e.Data[i] != 0 }

// SizeEvent is delivered for Resized.
type SizeEvent struct {
	Type   EventType
	Width  uint32
	Height uint32
}

// KeyEvent is delivered for KeyPressed and KeyReleased.
type KeyEvent struct {
	Type    EventType
	Code    Key
	Alt     bool
	Control bool
	Shift   bool
	System  bool
}

// TextEvent is delivered for TextEntered.
type TextEvent struct {
	Type    EventType
	Unicode rune
}

// MouseWheelEvent is delivered for MouseWheelMoved.
type MouseWheelEvent struct {
	Type  EventType
	Delta int32
	X, Y  int32
}

// MouseButtonEvent is delivered for MouseButtonPressed and MouseButtonReleased.
type MouseButtonEvent struct {
	Type   EventType
	Button MouseButton
	X, Y   int32
}

// MouseMoveEvent is delivered for MouseMoved.
type MouseMoveEvent struct {
	Type EventType
	X, Y int32
}

// JoystickButtonEvent is delivered for JoystickButtonPressed and JoystickButtonReleased.
type JoystickButtonEvent struct {
	Type       EventType
	JoystickID uint32
	Button     uint32
}

// JoystickMoveEvent is delivered for JoystickMoved.
type JoystickMoveEvent struct {
	Type       EventType
	JoystickID uint32
	Axis       JoystickAxis
	Position   float32
}

// JoystickConnectEvent is delivered for JoystickConnected and JoystickDisconnected.
type JoystickConnectEvent struct {
	Type       EventType
	JoystickID uint32
}

func (e SizeEvent) EventType() EventType            { return e.Type }
func (e KeyEvent) EventType() EventType             { return e.Type }
func (e TextEvent) EventType() EventType            { return e.Type }
func (e MouseWheelEvent) EventType() EventType      { return e.Type }
func (e MouseButtonEvent) EventType() EventType     { return e.Type }
func (e MouseMoveEvent) EventType() EventType       { return e.Type }
func (e JoystickButtonEvent) EventType() EventType  { return e.Type }
func (e JoystickMoveEvent) EventType() EventType    { return e.Type }
func (e JoystickConnectEvent) EventType() EventType { return e.Type }

// ============================================================================
// Decoding
// ============================================================================

var payloadDecoders = map[string]func(RawEvent) Event{
	"size": func(e RawEvent) Event {
		return SizeEvent{Type: e.Type, Width: e.Data[0], Height: e.Data[1]}
	},
	"key": func(e RawEvent) Event {
		return KeyEvent{
			Type:    e.Type,
			Code:    Key(e.int32At(0)),
			Alt:     e.boolAt(1),
			Control: e.boolAt(2),
			Shift:   e.boolAt(3),
			System:  e.boolAt(4),
		}
	},
	"text": func(e RawEvent) Event {
		return TextEvent{Type: e.Type, Unicode: rune(e.Data[0])}
	},
	"mouseWheel": func(e RawEvent) Event {
		return MouseWheelEvent{Type: e.Type, Delta: e.int32At(0), X: e.int32At(1), Y: e.int32At(2)}
	},
	"mouseButton": func(e RawEvent) Event {
		return MouseButtonEvent{Type: e.Type, Button: MouseButton(e.int32At(0)), X: e.int32At(1), Y: e.int32At(2)}
	},
	"mouseMove": func(e RawEvent) Event {
		return MouseMoveEvent{Type: e.Type, X: e.int32At(0), Y: e.int32At(1)}
	},
	"joystickButton": func(e RawEvent) Event {
		return JoystickButtonEvent{Type: e.Type, JoystickID: e.Data[0], Button: e.Data[1]}
	},
	"joystickMove": func(e RawEvent) Event {
		return JoystickMoveEvent{
			Type:       e.Type,
			JoystickID: e.Data[0],
			Axis:       JoystickAxis(e.int32At(1)),
			Position:   math.Float32frombits(e.Data[2]),
		}
	},
	"joystickConnect": func(e RawEvent) Event {
		return JoystickConnectEvent{Type: e.Type, JoystickID: e.Data[0]}
	},
}

// DecodeEvent resolves a raw union record to its payload type. Events
// without a payload and unknown discriminants come back as the RawEvent.
func DecodeEvent(raw RawEvent) Event {
	field := PayloadField(raw.Type)
	if field == "" {
		return raw
	}
	return payloadDecoders[field](raw)
}
