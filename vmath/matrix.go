package vmath

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Matrix is a 4x4 transformation matrix stored column-major: Array[col*4+row].
// Transform builders (Trans, Scale, Rot, RotAround) apply the new transform
// on the left, so Ident().Scale(s).Trans(t) scales first and then translates.
type Matrix struct {
	Array [16]float32
}

// NewMatrix returns a matrix over the given column-major values.
func NewMatrix(array [16]float32) Matrix {
	return Matrix{Array: array}
}

// IdentMatrix returns the identity matrix.
func IdentMatrix() Matrix {
	return Matrix{Array: mgl32.Ident4()}
}

// MatrixFromMat4 converts an mgl32 matrix; both are column-major.
func MatrixFromMat4(m mgl32.Mat4) Matrix {
	return Matrix{Array: m}
}

// Mat4 converts m to an mgl32 matrix.
func (m Matrix) Mat4() mgl32.Mat4 {
	return mgl32.Mat4(m.Array)
}

// Trans returns the translation by v applied after m.
func (m Matrix) Trans(v Vector) Matrix {
	return MatrixFromMat4(mgl32.Translate3D(v.X, v.Y, v.Z).Mul4(m.Mat4()))
}

// Scale returns the per-axis scale by v applied after m.
func (m Matrix) Scale(v Vector) Matrix {
	return MatrixFromMat4(mgl32.Scale3D(v.X, v.Y, v.Z).Mul4(m.Mat4()))
}

// Rot returns the rotation by q applied after m.
func (m Matrix) Rot(q Quaternion) Matrix {
	return MatrixFromMat4(q.Quat().Mat4().Mul4(m.Mat4()))
}

// RotAround returns the rotation by q around point applied after m.
func (m Matrix) RotAround(q Quaternion, point Vector) Matrix {
	return m.Trans(point.Neg()).Rot(q).Trans(point)
}

// Mul returns the matrix product m * o.
func (m Matrix) Mul(o Matrix) Matrix {
	return MatrixFromMat4(m.Mat4().Mul4(o.Mat4()))
}

// MulVector transforms the point v by m, dividing by the resulting w.
func (m Matrix) MulVector(v Vector) Vector {
	r := m.Mat4().Mul4x1(mgl32.Vec4{v.X, v.Y, v.Z, 1})
	return Vector{X: r[0] / r[3], Y: r[1] / r[3], Z: r[2] / r[3]}
}

// minors holds the 2x2 sub-determinants shared by Det and Inv.
type minors struct {
	s0, s1, s2, s3, s4, s5 float32
	c0, c1, c2, c3, c4, c5 float32
}

func (m Matrix) minors() minors {
	a := m.Array
	return minors{
		s0: a[0]*a[5] - a[1]*a[4],
		s1: a[0]*a[9] - a[1]*a[8],
		s2: a[0]*a[13] - a[1]*a[12],
		s3: a[4]*a[9] - a[5]*a[8],
		s4: a[4]*a[13] - a[5]*a[12],
		s5: a[8]*a[13] - a[9]*a[12],

		c5: a[10]*a[15] - a[11]*a[14],
		c4: a[6]*a[15] - a[7]*a[14],
		c3: a[6]*a[11] - a[7]*a[10],
		c2: a[2]*a[15] - a[3]*a[14],
		c1: a[2]*a[11] - a[3]*a[10],
		c0: a[2]*a[7] - a[3]*a[6],
	}
}

func (n minors) det() float32 {
	return n.s0*n.c5 - n.s1*n.c4 + n.s2*n.c3 + n.s3*n.c2 - n.s4*n.c1 + n.s5*n.c0
}

// Det returns the determinant of m.
func (m Matrix) Det() float32 {
	return m.minors().det()
}

// Inv returns the inverse of m, or ErrNotInvertible when the determinant is
// exactly zero.
func (m Matrix) Inv() (Matrix, error) {
	a := m.Array
	n := m.minors()

	det := n.det()
	if det == 0 {
		return Matrix{}, fmt.Errorf("%w: %v", ErrNotInvertible, a)
	}
	inv := 1 / det

	return Matrix{Array: [16]float32{
		(a[5]*n.c5 - a[9]*n.c4 + a[13]*n.c3) * inv,
		(-a[1]*n.c5 + a[9]*n.c2 - a[13]*n.c1) * inv,
		(a[1]*n.c4 - a[5]*n.c2 + a[13]*n.c0) * inv,
		(-a[1]*n.c3 + a[5]*n.c1 - a[9]*n.c0) * inv,
		(-a[4]*n.c5 + a[8]*n.c4 - a[12]*n.c3) * inv,
		(a[0]*n.c5 - a[8]*n.c2 + a[12]*n.c1) * inv,
		(-a[0]*n.c4 + a[4]*n.c2 - a[12]*n.c0) * inv,
		(a[0]*n.c3 - a[4]*n.c1 + a[8]*n.c0) * inv,
		(a[7]*n.s5 - a[11]*n.s4 + a[15]*n.s3) * inv,
		(-a[3]*n.s5 + a[11]*n.s2 - a[15]*n.s1) * inv,
		(a[3]*n.s4 - a[7]*n.s2 + a[15]*n.s0) * inv,
		(-a[3]*n.s3 + a[7]*n.s1 - a[11]*n.s0) * inv,
		(-a[6]*n.s5 + a[10]*n.s4 - a[14]*n.s3) * inv,
		(a[2]*n.s5 - a[10]*n.s2 + a[14]*n.s1) * inv,
		(-a[2]*n.s4 + a[6]*n.s2 - a[14]*n.s0) * inv,
		(a[2]*n.s3 - a[6]*n.s1 + a[10]*n.s0) * inv,
	}}, nil
}

func (m Matrix) String() string {
	return fmt.Sprintf("Matrix%v", m.Array)
}
