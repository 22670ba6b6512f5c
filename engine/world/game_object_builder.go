package world

import "github.com/go-gl/mathgl/mgl32"

// gameObjectSpec collects spawn parameters before the entity exists.
type gameObjectSpec struct {
	position  mgl32.Vec3
	yaw       float32
	pitch     float32
	roll      float32
	eyeOffset mgl32.Vec3
	radius    float32
	solid     bool
}

func defaultGameObjectSpec() gameObjectSpec {
	return gameObjectSpec{
		eyeOffset: mgl32.Vec3{0, 2, 0},
		radius:    1,
		solid:     true,
	}
}

// GameObjectBuilderOption is a functional option for configuring a GameObject at spawn.
type GameObjectBuilderOption func(*gameObjectSpec)

// WithPosition sets the spawn position.
//
// Parameters:
//   - p: world-space position
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the position
func WithPosition(p mgl32.Vec3) GameObjectBuilderOption {
	return func(s *gameObjectSpec) {
		s.position = p
	}
}

// WithOrientation sets the spawn Euler angles in radians.
//
// Parameters:
//   - yaw, pitch, roll: rotation angles
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the orientation
func WithOrientation(yaw, pitch, roll float32) GameObjectBuilderOption {
	return func(s *gameObjectSpec) {
		s.yaw, s.pitch, s.roll = yaw, pitch, roll
	}
}

// WithEyeOffset sets the cockpit position in local space. Defaults to (0, 2, 0).
//
// Parameters:
//   - offset: eye offset before yaw is applied
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the eye offset
func WithEyeOffset(offset mgl32.Vec3) GameObjectBuilderOption {
	return func(s *gameObjectSpec) {
		s.eyeOffset = offset
	}
}

// WithRadius sets the bounding sphere radius. Defaults to 1.
//
// Parameters:
//   - r: the radius
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the radius
func WithRadius(r float32) GameObjectBuilderOption {
	return func(s *gameObjectSpec) {
		s.radius = max(r, 0)
	}
}

// WithSolid sets whether the camera must stay outside the object. Defaults to true.
//
// Parameters:
//   - solid: true to block the camera
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the Solid flag
func WithSolid(solid bool) GameObjectBuilderOption {
	return func(s *gameObjectSpec) {
		s.solid = solid
	}
}
