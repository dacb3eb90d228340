package input

import (
	"fmt"
	"strconv"
	"strings"
)

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

func (b MouseButton) String() string {
	switch b {
	case MouseButtonLeft:
		return "left"
	case MouseButtonRight:
		return "right"
	case MouseButtonMiddle:
		return "middle"
	default:
		return "button" + strconv.Itoa(int(b))
	}
}

// MarshalText implements encoding.TextMarshaler so configs and scripts can
// name buttons.
func (b MouseButton) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText accepts "left", "right", "middle" or "button<n>".
func (b *MouseButton) UnmarshalText(text []byte) error {
	s := string(text)
	switch s {
	case "left":
		*b = MouseButtonLeft
	case "right":
		*b = MouseButtonRight
	case "middle":
		*b = MouseButtonMiddle
	default:
		n, err := strconv.ParseUint(strings.TrimPrefix(s, "button"), 10, 8)
		if err != nil || !strings.HasPrefix(s, "button") {
			return fmt.Errorf("input: unknown mouse button %q", s)
		}
		*b = MouseButton(n)
	}
	return nil
}

// ElementState is the state of a mouse button in a raw event.
type ElementState uint8

const (
	Pressed ElementState = iota
	Released
)

func (s ElementState) String() string {
	if s == Pressed {
		return "pressed"
	}
	return "released"
}

// TouchPhase is the lifecycle stage reported by a raw touch event.
type TouchPhase uint8

const (
	TouchStarted TouchPhase = iota
	TouchMoved
	TouchEnded
	TouchCancelled
)

var touchPhaseNames = [...]string{
	TouchStarted:   "started",
	TouchMoved:     "moved",
	TouchEnded:     "ended",
	TouchCancelled: "cancelled",
}

func (p TouchPhase) String() string {
	if int(p) < len(touchPhaseNames) {
		return touchPhaseNames[p]
	}
	return "phase" + strconv.Itoa(int(p))
}

// MarshalText implements encoding.TextMarshaler.
func (p TouchPhase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText accepts "started", "moved", "ended" or "cancelled".
func (p *TouchPhase) UnmarshalText(text []byte) error {
	for i, name := range touchPhaseNames {
		if name == string(text) {
			*p = TouchPhase(i)
			return nil
		}
	}
	return fmt.Errorf("input: unknown touch phase %q", text)
}

// Touch is a single touch point as reported by the device.
type Touch struct {
	Phase TouchPhase
	X, Y  float64
	ID    uint64
}

// RawKind identifies the variant held by a RawEvent.
type RawKind uint8

const (
	RawMouseMoved RawKind = iota // pointer moved to (X, Y)
	RawMouseInput                // Button changed to State
	RawTouch                     // Touch changed phase or position
)

// RawEvent is a device-level input occurrence. Only the fields belonging to
// Kind are meaningful.
type RawEvent struct {
	Kind   RawKind
	X, Y   int
	State  ElementState
	Button MouseButton
	Touch  Touch
}

// IntermediateType identifies the variant held by an IntermediateEvent.
type IntermediateType uint8

const (
	TypeButtonPressed             IntermediateType = iota // ID
	TypeButtonReleased                                    // ID
	TypeButtonCanceled                                    // ID
	TypeCursorPressed                                     // X, Y, Button
	TypeCursorReleased                                    // X, Y, Button
	TypeSelectablePressed                                 // ID, X, Y
	TypeSelectableDragged                                 // ID, X, Y
	TypeSelectableReleased                                // ID, X, Y
	TypeSelectableSpecialPressed                          // ID, X, Y
	TypeSelectableSpecialDragged                          // ID, X, Y
	TypeSelectableSpecialReleased                         // ID, X, Y
)

var intermediateTypeNames = [...]string{
	TypeButtonPressed:             "ButtonPressed",
	TypeButtonReleased:            "ButtonReleased",
	TypeButtonCanceled:            "ButtonCanceled",
	TypeCursorPressed:             "CursorPressed",
	TypeCursorReleased:            "CursorReleased",
	TypeSelectablePressed:         "SelectablePressed",
	TypeSelectableDragged:         "SelectableDragged",
	TypeSelectableReleased:        "SelectableReleased",
	TypeSelectableSpecialPressed:  "SelectableSpecialPressed",
	TypeSelectableSpecialDragged:  "SelectableSpecialDragged",
	TypeSelectableSpecialReleased: "SelectableSpecialReleased",
}

func (t IntermediateType) String() string {
	if int(t) < len(intermediateTypeNames) {
		return intermediateTypeNames[t]
	}
	return "IntermediateType(" + strconv.Itoa(int(t)) + ")"
}

// IntermediateEvent is a semantic gesture event synthesized by a filter.
// Only the fields belonging to Type are meaningful.
type IntermediateEvent struct {
	Type   IntermediateType
	ID     uint32
	X, Y   int
	Button MouseButton
}

func (e IntermediateEvent) String() string {
	switch e.Type {
	case TypeButtonPressed, TypeButtonReleased, TypeButtonCanceled:
		return fmt.Sprintf("%s(%d)", e.Type, e.ID)
	case TypeCursorPressed, TypeCursorReleased:
		return fmt.Sprintf("%s(%d, %d, %s)", e.Type, e.X, e.Y, e.Button)
	default:
		return fmt.Sprintf("%s(%d, %d, %d)", e.Type, e.ID, e.X, e.Y)
	}
}

func (e RawEvent) String() string {
	switch e.Kind {
	case RawMouseMoved:
		return fmt.Sprintf("MouseMoved(%d, %d)", e.X, e.Y)
	case RawMouseInput:
		return fmt.Sprintf("MouseInput(%s, %s)", e.State, e.Button)
	case RawTouch:
		return fmt.Sprintf("Touch(%s, %g, %g, %d)", e.Touch.Phase, e.Touch.X, e.Touch.Y, e.Touch.ID)
	default:
		return fmt.Sprintf("RawEvent(%d)", e.Kind)
	}
}

// EventKind tells whether an Event wraps a raw or an intermediate event.
type EventKind uint8

const (
	EventRaw EventKind = iota
	EventIntermediate
)

// Event is the unit flowing through a Pipeline: either a RawEvent or an
// IntermediateEvent, selected by Kind.
type Event struct {
	Kind         EventKind
	Raw          RawEvent
	Intermediate IntermediateEvent
}

// IsIntermediate reports whether e carries an intermediate event of type t.
func (e Event) IsIntermediate(t IntermediateType) bool {
	return e.Kind == EventIntermediate && e.Intermediate.Type == t
}

func (e Event) String() string {
	if e.Kind == EventIntermediate {
		return e.Intermediate.String()
	}
	return e.Raw.String()
}

// --- Constructors ---

func raw(r RawEvent) Event {
	return Event{Kind: EventRaw, Raw: r}
}

func intermediate(i IntermediateEvent) Event {
	return Event{Kind: EventIntermediate, Intermediate: i}
}

// MouseMoved returns a raw pointer-moved event.
func MouseMoved(x, y int) Event {
	return raw(RawEvent{Kind: RawMouseMoved, X: x, Y: y})
}

// MouseInput returns a raw mouse-button event.
func MouseInput(state ElementState, button MouseButton) Event {
	return raw(RawEvent{Kind: RawMouseInput, State: state, Button: button})
}

// TouchEvent returns a raw touch event.
func TouchEvent(phase TouchPhase, x, y float64, id uint64) Event {
	return raw(RawEvent{Kind: RawTouch, Touch: Touch{Phase: phase, X: x, Y: y, ID: id}})
}

func ButtonPressed(id uint32) Event {
	return intermediate(IntermediateEvent{Type: TypeButtonPressed, ID: id})
}

func ButtonReleased(id uint32) Event {
	return intermediate(IntermediateEvent{Type: TypeButtonReleased, ID: id})
}

func ButtonCanceled(id uint32) Event {
	return intermediate(IntermediateEvent{Type: TypeButtonCanceled, ID: id})
}

func CursorPressed(x, y int, button MouseButton) Event {
	return intermediate(IntermediateEvent{Type: TypeCursorPressed, X: x, Y: y, Button: button})
}

func CursorReleased(x, y int, button MouseButton) Event {
	return intermediate(IntermediateEvent{Type: TypeCursorReleased, X: x, Y: y, Button: button})
}

func SelectablePressed(id uint32, x, y int) Event {
	return intermediate(IntermediateEvent{Type: TypeSelectablePressed, ID: id, X: x, Y: y})
}

func SelectableDragged(id uint32, x, y int) Event {
	return intermediate(IntermediateEvent{Type: TypeSelectableDragged, ID: id, X: x, Y: y})
}

func SelectableReleased(id uint32, x, y int) Event {
	return intermediate(IntermediateEvent{Type: TypeSelectableReleased, ID: id, X: x, Y: y})
}

func SelectableSpecialPressed(id uint32, x, y int) Event {
	return intermediate(IntermediateEvent{Type: TypeSelectableSpecialPressed, ID: id, X: x, Y: y})
}

func SelectableSpecialDragged(id uint32, x, y int) Event {
	return intermediate(IntermediateEvent{Type: TypeSelectableSpecialDragged, ID: id, X: x, Y: y})
}

func SelectableSpecialReleased(id uint32, x, y int) Event {
	return intermediate(IntermediateEvent{Type: TypeSelectableSpecialReleased, ID: id, X: x, Y: y})
}
