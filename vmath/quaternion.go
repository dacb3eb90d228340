package vmath

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Quaternion is a rotation quaternion tailored for graphics. X, Y and Z are
// the imaginary i, j, k parts and W is the real part.
type Quaternion struct {
	X, Y, Z, W float32
}

// Quat returns the quaternion (x, y, z, w).
func Quat(x, y, z, w float32) Quaternion {
	return Quaternion{X: x, Y: y, Z: z, W: w}
}

// Ident returns the identity quaternion (0, 0, 0, 1).
func Ident() Quaternion {
	return Quaternion{W: 1}
}

// Rotation returns the quaternion rotating by angle radians around axis.
// The axis does not need to be normalized.
func Rotation(axis Vector, angle float32) Quaternion {
	axis = axis.Norm()
	sin, cos := math.Sincos(float64(angle) / 2)
	s := float32(sin)
	return Quaternion{X: axis.X * s, Y: axis.Y * s, Z: axis.Z * s, W: float32(cos)}
}

// SphericalRotation returns the shortest rotation that turns the direction
// start onto the direction finish.
func SphericalRotation(start, finish Vector) Quaternion {
	angle := start.Angle(finish)
	if angle == 0 {
		return Ident()
	}
	axis := start.Cross(finish)
	if axis.Len() == 0 {
		// Opposite directions: any perpendicular axis works.
		axis = start.Cross(Left())
		if axis.Len() == 0 {
			axis = start.Cross(Up())
		}
	}
	return Rotation(axis, angle)
}

// QuaternionFromQuat converts an mgl32 quaternion.
func QuaternionFromQuat(q mgl32.Quat) Quaternion {
	return Quaternion{X: q.V[0], Y: q.V[1], Z: q.V[2], W: q.W}
}

// Quat converts q to an mgl32 quaternion.
func (q Quaternion) Quat() mgl32.Quat {
	return mgl32.Quat{W: q.W, V: mgl32.Vec3{q.X, q.Y, q.Z}}
}

// Mul returns the Hamilton product q * o, the rotation o followed by q.
func (q Quaternion) Mul(o Quaternion) Quaternion {
	return QuaternionFromQuat(q.Quat().Mul(o.Quat()))
}

// Conj returns the conjugate of q.
func (q Quaternion) Conj() Quaternion {
	return Quaternion{X: -q.X, Y: -q.Y, Z: -q.Z, W: q.W}
}

// Inv returns the multiplicative inverse of q. The zero quaternion has no
// inverse and yields non-finite components.
func (q Quaternion) Inv() Quaternion {
	norm := q.Dot(q)
	return Quaternion{X: -q.X / norm, Y: -q.Y / norm, Z: -q.Z / norm, W: q.W / norm}
}

// Dot returns the four-dimensional dot product of q and o.
func (q Quaternion) Dot(o Quaternion) float32 {
	return q.X*o.X + q.Y*o.Y + q.Z*o.Z + q.W*o.W
}

// Angle returns the angle in radians between the rotations q and o.
func (q Quaternion) Angle(o Quaternion) float32 {
	return acos(q.Dot(o)) * 2
}

// slerpEpsilon bounds sin(θ/2) below which two rotations are treated as
// identical or opposed.
const slerpEpsilon = 1e-6

// Slerp interpolates spherically between q (ratio 0) and o (ratio 1).
// Interpolating between two exactly opposed quaternions is undefined and
// returns ErrOpposedRotations.
func (q Quaternion) Slerp(o Quaternion, ratio float32) (Quaternion, error) {
	cosHalf := q.Dot(o)
	halfTheta := float64(acos(cosHalf))
	sinHalf := math.Sin(halfTheta)

	if math.Abs(sinHalf) < slerpEpsilon {
		if cosHalf > 0 {
			return q, nil
		}
		return Quaternion{}, ErrOpposedRotations
	}

	r1 := float32(math.Sin((1-float64(ratio))*halfTheta) / sinHalf)
	r2 := float32(math.Sin(float64(ratio)*halfTheta) / sinHalf)

	return Quaternion{
		X: q.X*r1 + o.X*r2,
		Y: q.Y*r1 + o.Y*r2,
		Z: q.Z*r1 + o.Z*r2,
		W: q.W*r1 + o.W*r2,
	}, nil
}

// Interpolate is Slerp for callers that have already ruled out opposed
// rotations. It panics with ErrOpposedRotations otherwise.
func (q Quaternion) Interpolate(o Quaternion, ratio float32) Quaternion {
	r, err := q.Slerp(o, ratio)
	if err != nil {
		panic(err)
	}
	return r
}

func (q Quaternion) String() string {
	return fmt.Sprintf("Quaternion(%g, %g, %g, %g)", q.X, q.Y, q.Z, q.W)
}
