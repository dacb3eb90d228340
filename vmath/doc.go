// Package vmath provides the linear-algebra and interpolation primitives of
// the anima engine: [Vector], [Quaternion] and [Matrix] value types, the
// [Interpolator] ratio helper with its easing [Behavior]s, quadratic and
// cubic [Bezier] curves chained into a [BezierPath], and [PathTween] to move
// a point along a path over time.
//
// All types are immutable values using float32 components, interoperable
// with [mgl32] through the Vec3, Quat and Mat4 conversion methods.
//
// Operations whose inputs can be invalid (inverting a singular matrix,
// slerping opposed rotations, building an empty path) return one of the
// package's sentinel errors instead of producing garbage.
//
// [mgl32]: https://github.com/go-gl/mathgl
package vmath
