package vmath

import (
	"fmt"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Behavior selects the easing curve of an Interpolator.
type Behavior uint8

const (
	// Linear maps t to t.
	Linear Behavior = iota
	// Acc accelerates: t².
	Acc
	// Dec decelerates: 1 - (1 - t)².
	Dec
	// AccDec accelerates then decelerates: cos((t + 1)π) / 2 + 0.5.
	AccDec
)

var behaviorNames = [...]string{
	Linear: "linear",
	Acc:    "acc",
	Dec:    "dec",
	AccDec: "accdec",
}

func (b Behavior) String() string {
	if int(b) < len(behaviorNames) {
		return behaviorNames[b]
	}
	return fmt.Sprintf("Behavior(%d)", uint8(b))
}

// ParseBehavior returns the Behavior named s ("linear", "acc", "dec" or
// "accdec").
func ParseBehavior(s string) (Behavior, error) {
	for i, name := range behaviorNames {
		if name == s {
			return Behavior(i), nil
		}
	}
	return 0, fmt.Errorf("vmath: unknown behavior %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (b Behavior) MarshalText() ([]byte, error) {
	if int(b) >= len(behaviorNames) {
		return nil, fmt.Errorf("vmath: unknown behavior %d", uint8(b))
	}
	return []byte(behaviorNames[b]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Behavior) UnmarshalText(text []byte) error {
	v, err := ParseBehavior(string(text))
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// Ease returns the gween easing function implementing b. Unknown behaviors
// fall back to linear.
func (b Behavior) Ease() ease.TweenFunc {
	switch b {
	case Acc:
		return ease.InQuad
	case Dec:
		return ease.OutQuad
	case AccDec:
		return ease.InOutSine
	default:
		return ease.Linear
	}
}

// Interpolator maps a point in time onto an interpolation ratio. Start maps
// to 0 and Start+Duration maps to 1; times outside that window extrapolate.
type Interpolator struct {
	Start    float32
	Duration float32
	Behavior Behavior
}

// NewInterpolator returns an Interpolator starting at start and lasting
// duration.
func NewInterpolator(start, duration float32, behavior Behavior) Interpolator {
	return Interpolator{Start: start, Duration: duration, Behavior: behavior}
}

// Ratio returns the eased ratio for time.
func (i Interpolator) Ratio(time float32) float32 {
	t := (time - i.Start) / i.Duration
	return i.Behavior.Ease()(t, 0, 1, 1)
}

// Tween returns a gween tween that runs from→to over the interpolator's
// duration with its easing.
func (i Interpolator) Tween(from, to float32) *gween.Tween {
	return gween.New(from, to, i.Duration, i.Behavior.Ease())
}

func (i Interpolator) String() string {
	return fmt.Sprintf("Interpolator(start=%g, duration=%g, behavior=%s)", i.Start, i.Duration, i.Behavior)
}
