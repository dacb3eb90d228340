package vmath

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// PathTween moves a point along a BezierPath over a fixed duration. The
// easing function shapes the path ratio, so ease.Linear travels at constant
// speed along the normalized arc length. Call Update(dt) each frame.
type PathTween struct {
	path  *BezierPath
	tween *gween.Tween
	pos   Vector
	done  bool
}

// NewPathTween returns a tween over path lasting duration seconds. A nil fn
// means ease.Linear.
func NewPathTween(path *BezierPath, duration float32, fn ease.TweenFunc) *PathTween {
	if fn == nil {
		fn = ease.Linear
	}
	return &PathTween{
		path:  path,
		tween: gween.New(0, 1, duration, fn),
		pos:   path.Interpolate(0),
	}
}

// Update advances the tween by dt seconds and returns the current position
// and whether the end of the path has been reached.
func (t *PathTween) Update(dt float32) (Vector, bool) {
	if t.done {
		return t.pos, true
	}
	ratio, finished := t.tween.Update(dt)
	t.pos = t.path.Interpolate(ratio)
	t.done = finished
	return t.pos, finished
}

// Position returns the position computed by the last Update.
func (t *PathTween) Position() Vector { return t.pos }

// Done reports whether the tween has finished.
func (t *PathTween) Done() bool { return t.done }

// Reset rewinds the tween to the start of the path.
func (t *PathTween) Reset() {
	t.tween.Reset()
	t.pos = t.path.Interpolate(0)
	t.done = false
}

// ValueTween animates a Vector between two values, one gween tween per
// component.
type ValueTween struct {
	tweens [3]*gween.Tween
	from   Vector
	pos    Vector
	done   bool
}

// NewValueTween returns a tween from from to to lasting duration seconds. A
// nil fn means ease.Linear.
func NewValueTween(from, to Vector, duration float32, fn ease.TweenFunc) *ValueTween {
	if fn == nil {
		fn = ease.Linear
	}
	t := &ValueTween{from: from, pos: from}
	t.tweens[0] = gween.New(from.X, to.X, duration, fn)
	t.tweens[1] = gween.New(from.Y, to.Y, duration, fn)
	t.tweens[2] = gween.New(from.Z, to.Z, duration, fn)
	return t
}

// Update advances the tween by dt seconds and returns the current value and
// whether all components have arrived.
func (t *ValueTween) Update(dt float32) (Vector, bool) {
	if t.done {
		return t.pos, true
	}
	var out [3]float32
	allDone := true
	for i, tw := range t.tweens {
		v, finished := tw.Update(dt)
		out[i] = v
		if !finished {
			allDone = false
		}
	}
	t.pos = Vector{X: out[0], Y: out[1], Z: out[2]}
	t.done = allDone
	return t.pos, allDone
}

// Position returns the value computed by the last Update.
func (t *ValueTween) Position() Vector { return t.pos }

// Done reports whether the tween has finished.
func (t *ValueTween) Done() bool { return t.done }

// Reset rewinds the tween to its starting value.
func (t *ValueTween) Reset() {
	for _, tw := range t.tweens {
		tw.Reset()
	}
	t.pos = t.from
	t.done = false
}
