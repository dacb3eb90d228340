package vmath

import "errors"

var (
	// ErrEmptyPath is returned when a BezierPath is built without curves.
	ErrEmptyPath = errors.New("vmath: cannot interpolate an empty path")
	// ErrZeroLengthPath is returned when every curve of a BezierPath is degenerate.
	ErrZeroLengthPath = errors.New("vmath: cannot interpolate a path of zero length")
	// ErrOpposedRotations is returned when slerping between antipodal quaternions.
	ErrOpposedRotations = errors.New("vmath: cannot interpolate between two opposing rotations")
	// ErrNotInvertible is returned when inverting a matrix with a zero determinant.
	ErrNotInvertible = errors.New("vmath: matrix is not invertible")
)
