package vecmath

import "github.com/chewxy/math32"

// Epsilon is the floor applied to vector lengths before dividing.
const Epsilon float32 = 1e-8

// Vec3 represents a 3D vector
type Vec3 struct {
	X, Y, Z float32
}

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float32) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns the sum of two vectors
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns the difference of two vectors
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// MulVec returns component-wise multiplication of two vectors
func (v Vec3) MulVec(other Vec3) Vec3 {
	return Vec3{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

// Mul returns the vector scaled by a scalar
func (v Vec3) Mul(scalar float32) Vec3 {
	return Vec3{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// Div returns the vector divided by a scalar
func (v Vec3) Div(d float32) Vec3 {
	return v.Mul(1 / d)
}

// Neg returns the negative of the vector
func (v Vec3) Neg() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Dot returns the dot product of two vectors
func (v Vec3) Dot(other Vec3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Length returns the magnitude of the vector
func (v Vec3) Length() float32 {
	return math32.Sqrt(v.Dot(v))
}

// Normalized returns a unit vector in the same direction. Lengths below
// Epsilon are floored, so a zero vector stays finite instead of turning
// into NaN.
func (v Vec3) Normalized() Vec3 {
	return v.Div(math32.Max(v.Length(), Epsilon))
}

// Clamp01 clamps every component to [0,1]
func (v Vec3) Clamp01() Vec3 {
	return Vec3{Saturate(v.X), Saturate(v.Y), Saturate(v.Z)}
}

// Mix blends v toward other by k: v*(1-k) + other*k. k is not clamped.
func (v Vec3) Mix(other Vec3, k float32) Vec3 {
	return v.Mul(1 - k).Add(other.Mul(k))
}

// IsFinite reports whether no component is NaN or infinite
func (v Vec3) IsFinite() bool {
	return isFinite(v.X) && isFinite(v.Y) && isFinite(v.Z)
}

func isFinite(x float32) bool {
	return !math32.IsNaN(x) && !math32.IsInf(x, 0)
}
