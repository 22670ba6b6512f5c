package world

import (
	"github.com/Carmen-Shannon/oxy-cam/engine/camera"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
)

type gameObject struct {
	id    uint64
	world *World
}

// GameObject is a handle to an entity stored in a World. Handles stay safe to use after the
// object is removed: getters return zero values and setters do nothing.
type GameObject interface {
	camera.Object
	camera.EyeAnchor

	// Valid reports whether the object still exists in its world.
	//
	// Returns:
	//   - bool: true while the object is live
	Valid() bool

	// Radius returns the bounding sphere radius used for camera exclusion.
	//
	// Returns:
	//   - float32: the radius
	Radius() float32

	// Solid reports whether the camera must stay outside the object.
	//
	// Returns:
	//   - bool: true if solid
	Solid() bool

	// SetPosition moves the object. The broadphase catches up on the next World.Sync.
	//
	// Parameters:
	//   - p: new world-space position
	SetPosition(p mgl32.Vec3)

	// SetOrientation sets the object's Euler angles in radians.
	//
	// Parameters:
	//   - yaw, pitch, roll: rotation angles
	SetOrientation(yaw, pitch, roll float32)

	// SetEyeOffset sets the local-space cockpit position.
	//
	// Parameters:
	//   - offset: eye offset before yaw is applied
	SetEyeOffset(offset mgl32.Vec3)

	// SetRadius sets the bounding sphere radius.
	//
	// Parameters:
	//   - r: the radius
	SetRadius(r float32)

	// SetSolid marks the object as an obstacle for the camera or not.
	//
	// Parameters:
	//   - solid: true to block the camera
	SetSolid(solid bool)
}

var _ GameObject = &gameObject{}

func (o *gameObject) ID() uint64 {
	return o.id
}

func (o *gameObject) Valid() bool {
	o.world.mu.Lock()
	defer o.world.mu.Unlock()
	return o.world.entry(o.id) != nil
}

func (o *gameObject) Position() mgl32.Vec3 {
	var p mgl32.Vec3
	o.with(func(e *donburi.Entry) { p = Transform.Get(e).Position })
	return p
}

func (o *gameObject) Orientation() (yaw, pitch, roll float32) {
	o.with(func(e *donburi.Entry) {
		t := Transform.Get(e)
		yaw, pitch, roll = t.Yaw, t.Pitch, t.Roll
	})
	return yaw, pitch, roll
}

func (o *gameObject) EyeOffset() mgl32.Vec3 {
	var off mgl32.Vec3
	o.with(func(e *donburi.Entry) { off = Body.Get(e).EyeOffset })
	return off
}

func (o *gameObject) Radius() float32 {
	var r float32
	o.with(func(e *donburi.Entry) { r = Body.Get(e).Radius })
	return r
}

func (o *gameObject) Solid() bool {
	var solid bool
	o.with(func(e *donburi.Entry) { solid = Body.Get(e).Solid })
	return solid
}

func (o *gameObject) SetPosition(p mgl32.Vec3) {
	o.with(func(e *donburi.Entry) { Transform.Get(e).Position = p })
}

func (o *gameObject) SetOrientation(yaw, pitch, roll float32) {
	o.with(func(e *donburi.Entry) {
		t := Transform.Get(e)
		t.Yaw, t.Pitch, t.Roll = yaw, pitch, roll
	})
}

func (o *gameObject) SetEyeOffset(offset mgl32.Vec3) {
	o.with(func(e *donburi.Entry) { Body.Get(e).EyeOffset = offset })
}

func (o *gameObject) SetRadius(r float32) {
	o.with(func(e *donburi.Entry) { Body.Get(e).Radius = max(r, 0) })
}

func (o *gameObject) SetSolid(solid bool) {
	o.with(func(e *donburi.Entry) { Body.Get(e).Solid = solid })
}

// with runs fn on the object's entry under the world mutex. fn is skipped once the object is gone.
func (o *gameObject) with(fn func(e *donburi.Entry)) {
	o.world.mu.Lock()
	defer o.world.mu.Unlock()
	if e := o.world.entry(o.id); e != nil {
		fn(e)
	}
}
