package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// WorldUp is the world-space up axis shared by every view computation.
var WorldUp = mgl32.Vec3{0, 1, 0}

// RotateView returns the point at distance dist from center along the horizontal angle h
// (around the Y axis, 0 = +Z) and the vertical angle v (0 = horizontal, positive = above).
// The layout matches the spherical placement used by the orbit controllers.
//
// Parameters:
//   - center: the orbit pivot in world space
//   - h: horizontal angle in radians
//   - v: vertical angle in radians
//   - dist: distance from the pivot
//
// Returns:
//   - mgl32.Vec3: the placed point
func RotateView(center mgl32.Vec3, h, v, dist float32) mgl32.Vec3 {
	return center.Add(Direction(h, v).Mul(dist))
}

// Direction returns the unit vector for the horizontal angle h and vertical angle v.
//
// Parameters:
//   - h: horizontal angle in radians (0 = +Z)
//   - v: vertical angle in radians (positive = up)
//
// Returns:
//   - mgl32.Vec3: unit direction vector
func Direction(h, v float32) mgl32.Vec3 {
	cosV := float32(math.Cos(float64(v)))
	sinV := float32(math.Sin(float64(v)))
	cosH := float32(math.Cos(float64(h)))
	sinH := float32(math.Sin(float64(h)))
	return mgl32.Vec3{cosV * sinH, sinV, cosV * cosH}
}

// Angles is the inverse of Direction: it returns the horizontal and vertical angles of d.
// A zero-length vector yields (0, 0).
//
// Parameters:
//   - d: direction vector (need not be normalized)
//
// Returns:
//   - h: horizontal angle in radians
//   - v: vertical angle in radians
func Angles(d mgl32.Vec3) (h, v float32) {
	l := d.Len()
	if l < 1e-8 {
		return 0, 0
	}
	h = float32(math.Atan2(float64(d[0]), float64(d[2])))
	v = float32(math.Asin(float64(Clamp(d[1]/l, -1, 1))))
	return h, v
}

// NormAngle wraps an angle into [0, 2π).
//
// Parameters:
//   - a: angle in radians
//
// Returns:
//   - float32: the equivalent angle in [0, 2π)
func NormAngle(a float32) float32 {
	twoPi := float32(2 * math.Pi)
	a = float32(math.Mod(float64(a), float64(twoPi)))
	if a < 0 {
		a += twoPi
	}
	return a
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Perspective creates a perspective projection matrix for the WebGPU clip space (depth in [0, 1]).
// mgl32.Perspective targets the OpenGL [-1, 1] depth range, so the WebGPU variant is built here.
//
// Parameters:
//   - fovY: vertical field of view in radians
//   - aspect: viewport aspect ratio (width/height)
//   - near: near clipping plane distance (must be > 0)
//   - far: far clipping plane distance (must be > near)
//
// Returns:
//   - mgl32.Mat4: column-major projection matrix
func Perspective(fovY, aspect, near, far float32) mgl32.Mat4 {
	f := 1.0 / float32(math.Tan(float64(fovY)/2.0))
	var out mgl32.Mat4
	out[0] = f / aspect
	out[5] = f
	out[10] = far / (near - far)
	out[11] = -1.0
	out[14] = (near * far) / (near - far)
	return out
}

// LookAt creates a view matrix for an eye looking at center. When the view direction is parallel
// to up, a fallback up axis (+Z) is used so the matrix stays finite.
//
// Parameters:
//   - eye: camera position in world space
//   - center: point the camera looks at
//   - up: preferred up vector (typically WorldUp)
//
// Returns:
//   - mgl32.Mat4: column-major view matrix
func LookAt(eye, center, up mgl32.Vec3) mgl32.Mat4 {
	f := center.Sub(eye)
	if f.Len() < 1e-8 {
		f = mgl32.Vec3{0, 0, -1}
		center = eye.Add(f)
	}
	if f.Normalize().Cross(up).Len() < 1e-6 {
		up = mgl32.Vec3{0, 0, 1}
	}
	return mgl32.LookAtV(eye, center, up)
}
