package input

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Source produces one batch of raw events per frame.
type Source interface {
	Poll() []Event
}

// SourceFunc adapts an ordinary function to the Source interface.
type SourceFunc func() []Event

// Poll calls f().
func (f SourceFunc) Poll() []Event { return f() }

// Merge returns a Source that polls every source in order each frame and
// concatenates their batches.
func Merge(sources ...Source) Source {
	sources = slices.Clone(sources)
	return SourceFunc(func() []Event {
		var out []Event
		for _, s := range sources {
			out = append(out, s.Poll()...)
		}
		return out
	})
}

// Device is the polling surface of a windowing backend. The method set
// mirrors Ebitengine's ebiten and inpututil functions so the real backend is
// a thin shim and tests can substitute a fake.
type Device interface {
	CursorPosition() (x, y int)
	IsMouseButtonJustPressed(b MouseButton) bool
	IsMouseButtonJustReleased(b MouseButton) bool
	AppendJustPressedTouchIDs(ids []ebiten.TouchID) []ebiten.TouchID
	AppendTouchIDs(ids []ebiten.TouchID) []ebiten.TouchID
	AppendJustReleasedTouchIDs(ids []ebiten.TouchID) []ebiten.TouchID
	TouchPosition(id ebiten.TouchID) (x, y int)
	TouchPositionInPreviousTick(id ebiten.TouchID) (x, y int)
}

// polledButtons are the mouse buttons a DeviceSource reports.
var polledButtons = [...]MouseButton{MouseButtonLeft, MouseButtonRight, MouseButtonMiddle}

// DeviceSource diffs a Device once per frame into raw events: a cursor move
// when the position changed, button edges, and touch phases.
type DeviceSource struct {
	dev Device

	x, y  int
	known bool

	started, active, ended []ebiten.TouchID
}

// NewDeviceSource returns a Source polling dev.
func NewDeviceSource(dev Device) *DeviceSource {
	return &DeviceSource{dev: dev}
}

// NewEbitenSource returns a Source polling Ebitengine's input state. Poll
// must be called from ebiten.Game.Update.
func NewEbitenSource() *DeviceSource {
	return NewDeviceSource(ebitenDevice{})
}

// Poll implements Source.
func (s *DeviceSource) Poll() []Event {
	var out []Event

	x, y := s.dev.CursorPosition()
	if !s.known || x != s.x || y != s.y {
		s.x, s.y, s.known = x, y, true
		out = append(out, MouseMoved(x, y))
	}

	for _, b := range polledButtons {
		if s.dev.IsMouseButtonJustPressed(b) {
			out = append(out, MouseInput(Pressed, b))
		}
		if s.dev.IsMouseButtonJustReleased(b) {
			out = append(out, MouseInput(Released, b))
		}
	}

	s.started = s.dev.AppendJustPressedTouchIDs(s.started[:0])
	for _, id := range s.started {
		tx, ty := s.dev.TouchPosition(id)
		out = append(out, TouchEvent(TouchStarted, float64(tx), float64(ty), uint64(id)))
	}

	s.active = s.dev.AppendTouchIDs(s.active[:0])
	for _, id := range s.active {
		if slices.Contains(s.started, id) {
			continue
		}
		tx, ty := s.dev.TouchPosition(id)
		px, py := s.dev.TouchPositionInPreviousTick(id)
		if tx != px || ty != py {
			out = append(out, TouchEvent(TouchMoved, float64(tx), float64(ty), uint64(id)))
		}
	}

	s.ended = s.dev.AppendJustReleasedTouchIDs(s.ended[:0])
	for _, id := range s.ended {
		// Released touches no longer report a current position.
		tx, ty := s.dev.TouchPositionInPreviousTick(id)
		out = append(out, TouchEvent(TouchEnded, float64(tx), float64(ty), uint64(id)))
	}

	return out
}

// ebitenDevice forwards to Ebitengine's global input state.
type ebitenDevice struct{}

func ebitenButton(b MouseButton) ebiten.MouseButton {
	switch b {
	case MouseButtonLeft:
		return ebiten.MouseButtonLeft
	case MouseButtonRight:
		return ebiten.MouseButtonRight
	case MouseButtonMiddle:
		return ebiten.MouseButtonMiddle
	default:
		return ebiten.MouseButton(b)
	}
}

func (ebitenDevice) CursorPosition() (int, int) { return ebiten.CursorPosition() }

func (ebitenDevice) IsMouseButtonJustPressed(b MouseButton) bool {
	return inpututil.IsMouseButtonJustPressed(ebitenButton(b))
}

func (ebitenDevice) IsMouseButtonJustReleased(b MouseButton) bool {
	return inpututil.IsMouseButtonJustReleased(ebitenButton(b))
}

func (ebitenDevice) AppendJustPressedTouchIDs(ids []ebiten.TouchID) []ebiten.TouchID {
	return inpututil.AppendJustPressedTouchIDs(ids)
}

func (ebitenDevice) AppendTouchIDs(ids []ebiten.TouchID) []ebiten.TouchID {
	return ebiten.AppendTouchIDs(ids)
}

func (ebitenDevice) AppendJustReleasedTouchIDs(ids []ebiten.TouchID) []ebiten.TouchID {
	return inpututil.AppendJustReleasedTouchIDs(ids)
}

func (ebitenDevice) TouchPosition(id ebiten.TouchID) (int, int) {
	return ebiten.TouchPosition(id)
}

func (ebitenDevice) TouchPositionInPreviousTick(id ebiten.TouchID) (int, int) {
	return inpututil.TouchPositionInPreviousTick(id)
}
