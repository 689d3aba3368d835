package game

import (
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

// ClosestPointOnBBox returns the point on the bounding box closest to v,
// clamping v into the box on each axis.
func ClosestPointOnBBox(v mgl32.Vec3, b cube.BBox) mgl32.Vec3 {
	return mgl32.Vec3{
		math32.Min(math32.Max(v.X(), b.Min().X()), b.Max().X()),
		math32.Min(math32.Max(v.Y(), b.Min().Y()), b.Max().Y()),
		math32.Min(math32.Max(v.Z(), b.Min().Z()), b.Max().Z()),
	}
}

// Vec3HzDistSqr returns the squared horizontal distance in a vector.
func Vec3HzDistSqr(vec3 mgl32.Vec3) float32 {
	return vec3.X()*vec3.X() + vec3.Z()*vec3.Z()
}

// AbsVec32 will return the given vector, but all the values of it are switched to their absolute values.
func AbsVec32(vec mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{math32.Abs(vec.X()), math32.Abs(vec.Y()), math32.Abs(vec.Z())}
}

// Round32 will round a float32 to a given precision.
func Round32(val float32, precision int) float32 {
	pwr := math32.Pow(10, float32(precision))
	return math32.Round(val*pwr) / pwr
}

// Float32ApproxEq determines whether two floating point numbers are close enough to each other
// by a threshold of 1e-5.
func Float32ApproxEq(a, b float32) bool {
	return math32.Abs(a-b) <= 1e-5
}

// RoundToCell rounds a continuous coordinate to its nearest grid cell,
// ties away from zero. Which neighbor a boundary value lands in decides
// adjacency, so every caller must share this convention.
func RoundToCell(v float32) int {
	return int(math32.Round(v))
}

// ClampFloat clamps the given value to the given range.
func ClampFloat(num, min, max float32) float32 {
	if num < min {
		return min
	}
	return math32.Min(num, max)
}
