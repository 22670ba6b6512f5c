package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Object is a tracked game entity. The controller only holds a reference; it never owns
// the entity's lifetime.
type Object interface {
	// ID returns the entity's unique identifier.
	//
	// Returns:
	//   - uint64: the object ID
	ID() uint64

	// Position returns the entity's world-space position.
	//
	// Returns:
	//   - mgl32.Vec3: world-space position
	Position() mgl32.Vec3

	// Orientation returns the entity's Euler angles in radians. Yaw 0 faces +Z.
	//
	// Returns:
	//   - yaw, pitch, roll: rotation angles
	Orientation() (yaw, pitch, roll float32)
}

// EyeAnchor is implemented by objects with a cockpit or head position. The offset is in the
// object's local space (before yaw is applied). Objects without it use Tuning.OnBoardEyeOffset.
type EyeAnchor interface {
	EyeOffset() mgl32.Vec3
}

// Terrain answers ground queries.
type Terrain interface {
	// HeightAt returns the ground height at the given horizontal coordinate.
	//
	// Parameters:
	//   - x, z: horizontal world coordinates
	//
	// Returns:
	//   - float32: ground height
	HeightAt(x, z float32) float32

	// Collide tests the segment from -> to against the ground.
	//
	// Parameters:
	//   - from: segment start
	//   - to: segment end
	//
	// Returns:
	//   - mgl32.Vec3: the first hit point, if any
	//   - bool: true if the segment crosses the ground
	Collide(from, to mgl32.Vec3) (mgl32.Vec3, bool)
}

// Obstacle is the bounding sphere of a solid object near the camera.
type Obstacle struct {
	ID     uint64
	Center mgl32.Vec3
	Radius float32
}

// ObjectQuery finds solid objects near a point.
type ObjectQuery interface {
	// Nearby returns the solid objects whose bounding spheres come within radius of center.
	//
	// Parameters:
	//   - center: query point
	//   - radius: query radius
	//
	// Returns:
	//   - []Obstacle: the obstacles found (order unspecified)
	Nearby(center mgl32.Vec3, radius float32) []Obstacle
}
