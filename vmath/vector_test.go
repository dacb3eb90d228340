package vmath

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const epsilon = 1e-5

func approxEqual(a, b, eps float32) bool {
	return float32(math.Abs(float64(a-b))) <= eps
}

func vecApprox(a, b Vector, eps float32) bool {
	return approxEqual(a.X, b.X, eps) && approxEqual(a.Y, b.Y, eps) && approxEqual(a.Z, b.Z, eps)
}

func TestVectorArithmetic(t *testing.T) {
	v1 := Uniform(1)
	v2 := Uniform(2)

	tests := []struct {
		name string
		got  Vector
		want Vector
	}{
		{"add", v1.Add(v2), Vec(3, 3, 3)},
		{"sub", v1.Sub(v2), Vec(-1, -1, -1)},
		{"mul", v1.Mul(v2), Vec(2, 2, 2)},
		{"scale", Vec(1, 2, 3).Scale(2), Vec(2, 4, 6)},
		{"neg", Vec(1, -2, 3).Neg(), Vec(-1, 2, -3)},
		{"cross", Left().Cross(Up()), Forward()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestVectorAxes(t *testing.T) {
	if Left() != Vec(1, 0, 0) || Right() != Vec(-1, 0, 0) {
		t.Errorf("Left/Right = %v/%v", Left(), Right())
	}
	if Forward() != Vec(0, 0, 1) || Back() != Vec(0, 0, -1) {
		t.Errorf("Forward/Back = %v/%v", Forward(), Back())
	}
	if Up() != Vec(0, 1, 0) || Down() != Vec(0, -1, 0) {
		t.Errorf("Up/Down = %v/%v", Up(), Down())
	}
	if Zero() != Uniform(0) || One() != Uniform(1) {
		t.Errorf("Zero/One = %v/%v", Zero(), One())
	}
}

func TestVectorLenDistNorm(t *testing.T) {
	v := Vec(3, 4, 0)
	if v.Len() != 5 {
		t.Errorf("Len = %v, want 5", v.Len())
	}
	if d := Zero().Dist(v); d != 5 {
		t.Errorf("Dist = %v, want 5", d)
	}
	if n := v.Norm(); !vecApprox(n, Vec(0.6, 0.8, 0), epsilon) {
		t.Errorf("Norm = %v, want (0.6, 0.8, 0)", n)
	}
	if n := Zero().Norm(); n != Zero() {
		t.Errorf("Zero().Norm() = %v, want zero", n)
	}
	if v.Dot(Vec(1, 1, 1)) != 7 {
		t.Errorf("Dot = %v, want 7", v.Dot(Vec(1, 1, 1)))
	}
}

func TestVectorAngle(t *testing.T) {
	if a := Left().Angle(Up()); !approxEqual(a, math.Pi/2, epsilon) {
		t.Errorf("Angle(Left, Up) = %v, want pi/2", a)
	}
	if a := Left().Angle(Right()); !approxEqual(a, math.Pi, epsilon) {
		t.Errorf("Angle(Left, Right) = %v, want pi", a)
	}
	if a := Vec(2, 2, 2).Angle(Vec(1, 1, 1)); a != 0 {
		t.Errorf("Angle of parallel vectors = %v, want 0", a)
	}
	if a := Zero().Angle(Up()); a != 0 {
		t.Errorf("Angle with zero vector = %v, want 0", a)
	}
}

func TestVectorRot(t *testing.T) {
	q := Rotation(Up(), math.Pi/2)
	if got := Left().Rot(q); !vecApprox(got, Back(), epsilon) {
		t.Errorf("Left rotated around Up = %v, want %v", got, Back())
	}
	if got := Forward().Rot(Ident()); got != Forward() {
		t.Errorf("identity rotation = %v, want %v", got, Forward())
	}
}

func TestVectorLessAndInterpolate(t *testing.T) {
	if !Vec(1, 0, 0).Less(Vec(0, 2, 0)) {
		t.Error("(1,0,0) should be shorter than (0,2,0)")
	}
	if Vec(0, 2, 0).Less(Vec(1, 0, 0)) {
		t.Error("(0,2,0) should not be shorter than (1,0,0)")
	}
	got := Lerp(Uniform(0), Uniform(2), 0.5)
	if got != Uniform(1) {
		t.Errorf("Lerp = %v, want %v", got, Uniform(1))
	}
	if LerpFloat(10, 20, 0.25) != 12.5 {
		t.Errorf("LerpFloat = %v, want 12.5", LerpFloat(10, 20, 0.25))
	}
}

func TestVectorMglRoundTrip(t *testing.T) {
	v := Vec(1, 2, 3)
	if got := VectorFromVec3(v.Vec3()); got != v {
		t.Errorf("round trip = %v, want %v", got, v)
	}
	if v.Vec3() != (mgl32.Vec3{1, 2, 3}) {
		t.Errorf("Vec3 = %v", v.Vec3())
	}
}

func TestVectorString(t *testing.T) {
	if s := Vec(1, 0.5, -2).String(); s != "Vector(1, 0.5, -2)" {
		t.Errorf("String = %q", s)
	}
}
