package vmath

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Vector is a 3D vector tailored for graphics. It is an immutable value type:
// every operation returns a new Vector.
type Vector struct {
	X, Y, Z float32
}

// Vec returns the vector (x, y, z).
func Vec(x, y, z float32) Vector {
	return Vector{X: x, Y: y, Z: z}
}

// Uniform returns a vector with all three components set to v.
func Uniform(v float32) Vector {
	return Vector{X: v, Y: v, Z: v}
}

// Zero returns (0, 0, 0).
func Zero() Vector { return Vector{} }

// One returns (1, 1, 1).
func One() Vector { return Uniform(1) }

// Axis helpers. The engine's axis naming has Left on +X and Forward on +Z.

func Up() Vector      { return Vector{Y: 1} }
func Down() Vector    { return Vector{Y: -1} }
func Left() Vector    { return Vector{X: 1} }
func Right() Vector   { return Vector{X: -1} }
func Forward() Vector { return Vector{Z: 1} }
func Back() Vector    { return Vector{Z: -1} }

// VectorFromVec3 converts an mgl32 vector.
func VectorFromVec3(v mgl32.Vec3) Vector {
	return Vector{X: v[0], Y: v[1], Z: v[2]}
}

// Vec3 converts v to an mgl32 vector.
func (v Vector) Vec3() mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}

// Add returns v + o.
func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Sub returns v - o.
func (v Vector) Sub(o Vector) Vector {
	return Vector{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// Mul returns the component-wise product of v and o.
func (v Vector) Mul(o Vector) Vector {
	return Vector{X: v.X * o.X, Y: v.Y * o.Y, Z: v.Z * o.Z}
}

// Scale returns v multiplied by the scalar s.
func (v Vector) Scale(s float32) Vector {
	return Vector{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Neg returns -v.
func (v Vector) Neg() Vector {
	return Vector{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Dot returns the dot product of v and o.
func (v Vector) Dot(o Vector) float32 {
	return v.Vec3().Dot(o.Vec3())
}

// Cross returns the cross product v × o.
func (v Vector) Cross(o Vector) Vector {
	return VectorFromVec3(v.Vec3().Cross(o.Vec3()))
}

// Len returns the Euclidean length of v.
func (v Vector) Len() float32 {
	return v.Vec3().Len()
}

// Dist returns the distance between v and o.
func (v Vector) Dist(o Vector) float32 {
	return v.Sub(o).Len()
}

// Norm returns v scaled to unit length. The zero vector has no direction and
// is returned unchanged.
func (v Vector) Norm() Vector {
	l := v.Len()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// Angle returns the angle in radians between v and o.
func (v Vector) Angle(o Vector) float32 {
	l := v.Len() * o.Len()
	if l == 0 {
		return 0
	}
	return acos(v.Dot(o) / l)
}

// Rot rotates v by the rotation quaternion q.
func (v Vector) Rot(q Quaternion) Vector {
	return VectorFromVec3(q.Quat().Rotate(v.Vec3()))
}

// Less orders vectors by length.
func (v Vector) Less(o Vector) bool {
	return v.Len() < o.Len()
}

// Interpolate blends linearly between v (ratio 0) and o (ratio 1).
func (v Vector) Interpolate(o Vector, ratio float32) Vector {
	return v.Scale(1 - ratio).Add(o.Scale(ratio))
}

func (v Vector) String() string {
	return fmt.Sprintf("Vector(%g, %g, %g)", v.X, v.Y, v.Z)
}

// acos clamps its argument to [-1, 1] so rounding never yields NaN.
func acos(x float32) float32 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}
	return float32(math.Acos(float64(x)))
}
