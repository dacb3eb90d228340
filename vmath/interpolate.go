package vmath

// Interpolate is implemented by values that can blend towards another value
// of the same type. A ratio of 0 yields the receiver and 1 yields other; the
// blend does not have to be linear.
type Interpolate[T any] interface {
	Interpolate(other T, ratio float32) T
}

// Lerp blends from towards to by ratio using T's own Interpolate method.
func Lerp[T Interpolate[T]](from, to T, ratio float32) T {
	return from.Interpolate(to, ratio)
}

// LerpFloat blends two scalars linearly.
func LerpFloat(from, to, ratio float32) float32 {
	return (1-ratio)*from + ratio*to
}

var (
	_ Interpolate[Vector]     = Vector{}
	_ Interpolate[Quaternion] = Quaternion{}
)
