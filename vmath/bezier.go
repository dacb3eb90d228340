package vmath

import "fmt"

// DefaultSteps is the number of polyline segments used to approximate curve
// lengths when no explicit step count is given.
const DefaultSteps = 20

// Bezier is a square (quadratic) or cubic Bézier curve.
type Bezier struct {
	v1, v2, v3, v4 Vector
	cubic          bool
}

// Square returns the quadratic curve from v1 to v3 bending towards v2.
func Square(v1, v2, v3 Vector) Bezier {
	return Bezier{v1: v1, v2: v2, v3: v3}
}

// Cubic returns the cubic curve from v1 to v4 bending towards v2 and v3.
func Cubic(v1, v2, v3, v4 Vector) Bezier {
	return Bezier{v1: v1, v2: v2, v3: v3, v4: v4, cubic: true}
}

// IsCubic reports whether b has four control points.
func (b Bezier) IsCubic() bool { return b.cubic }

// Points returns the control points of b: three for a square curve, four for
// a cubic one.
func (b Bezier) Points() []Vector {
	if b.cubic {
		return []Vector{b.v1, b.v2, b.v3, b.v4}
	}
	return []Vector{b.v1, b.v2, b.v3}
}

// Start returns the first control point.
func (b Bezier) Start() Vector { return b.v1 }

// End returns the last control point.
func (b Bezier) End() Vector {
	if b.cubic {
		return b.v4
	}
	return b.v3
}

// Interpolate evaluates the curve at ratio using the Bernstein blend.
func (b Bezier) Interpolate(ratio float32) Vector {
	t := ratio
	u := 1 - ratio
	if b.cubic {
		return b.v1.Scale(u * u * u).
			Add(b.v2.Scale(3 * u * u * t)).
			Add(b.v3.Scale(3 * u * t * t)).
			Add(b.v4.Scale(t * t * t))
	}
	return b.v1.Scale(u * u).
		Add(b.v2.Scale(2 * u * t)).
		Add(b.v3.Scale(t * t))
}

// Len approximates the arc length by summing the distances between steps+1
// evenly spaced points on the curve.
func (b Bezier) Len(steps int) float32 {
	var length float32
	prev := b.v1
	for i := 1; i <= steps; i++ {
		next := b.Interpolate(float32(i) / float32(steps))
		length += prev.Dist(next)
		prev = next
	}
	return length
}

// Length is Len(DefaultSteps).
func (b Bezier) Length() float32 {
	return b.Len(DefaultSteps)
}

func (b Bezier) String() string {
	return fmt.Sprintf("Bezier%v", b.Points())
}

// BezierPath chains connected curves into one path parameterized by
// normalized arc length.
type BezierPath struct {
	curves  []Bezier
	lengths []float32
}

// NewBezierPath builds a path from curves, which must be connected end to
// start. It returns ErrEmptyPath when no curves are given and
// ErrZeroLengthPath when every curve is degenerate.
func NewBezierPath(curves ...Bezier) (*BezierPath, error) {
	if len(curves) == 0 {
		return nil, ErrEmptyPath
	}

	lengths := make([]float32, len(curves))
	var sum float32
	for i, c := range curves {
		lengths[i] = c.Len(DefaultSteps)
		sum += lengths[i]
	}
	if sum == 0 {
		return nil, ErrZeroLengthPath
	}
	for i := range lengths {
		lengths[i] /= sum
	}

	return &BezierPath{
		curves:  append([]Bezier(nil), curves...),
		lengths: lengths,
	}, nil
}

// Curves returns a copy of the path's curves.
func (p *BezierPath) Curves() []Bezier {
	return append([]Bezier(nil), p.curves...)
}

// Lengths returns each curve's share of the total length; they sum to 1.
func (p *BezierPath) Lengths() []float32 {
	return append([]float32(nil), p.lengths...)
}

// Interpolate evaluates the path at ratio. Ratios past 1 extrapolate along
// the last curve.
func (p *BezierPath) Interpolate(ratio float32) Vector {
	var sum float32
	for i, l := range p.lengths {
		if l > 0 && ratio <= sum+l {
			return p.curves[i].Interpolate((ratio - sum) / l)
		}
		sum += l
	}

	// Past the end: extrapolate along the last curve that has a length.
	last := len(p.curves) - 1
	for last > 0 && p.lengths[last] == 0 {
		last--
	}
	var before float32
	for _, l := range p.lengths[:last] {
		before += l
	}
	return p.curves[last].Interpolate((ratio - before) / p.lengths[last])
}

// Len sums the approximated lengths of every curve, each using steps
// segments.
func (p *BezierPath) Len(steps int) float32 {
	var total float32
	for _, c := range p.curves {
		total += c.Len(steps)
	}
	return total
}

// Length is Len(DefaultSteps).
func (p *BezierPath) Length() float32 {
	return p.Len(DefaultSteps)
}
