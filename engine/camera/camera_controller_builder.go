package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// CameraControllerOption is a functional option for configuring a CameraController.
type CameraControllerOption func(*cameraControllerImpl)

// WithTerrain sets the terrain used for ground clearance and line-of-sight exclusion.
//
// Parameters:
//   - terrain: the terrain query
//
// Returns:
//   - CameraControllerOption: functional option to set the terrain
func WithTerrain(terrain Terrain) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.terrain = terrain
	}
}

// WithObjects sets the query used for object exclusion in Back mode.
//
// Parameters:
//   - objects: the object query
//
// Returns:
//   - CameraControllerOption: functional option to set the object query
func WithObjects(objects ObjectQuery) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.objects = objects
	}
}

// WithTuning replaces the default constants.
//
// Parameters:
//   - t: the tuning
//
// Returns:
//   - CameraControllerOption: functional option to set the tuning
func WithTuning(t Tuning) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.tuning = t
	}
}

// WithSmoothing sets the initial smoothing mode.
//
// Parameters:
//   - s: the smoothing mode
//
// Returns:
//   - CameraControllerOption: functional option to set the smoothing
func WithSmoothing(s Smoothing) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.smoothing = s
	}
}

// WithObject binds the tracked object at construction.
//
// Parameters:
//   - obj: the object to track
//
// Returns:
//   - CameraControllerOption: functional option to bind the object
func WithObject(obj Object) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.object = obj
	}
}

// WithMode sets the initial mode.
//
// Parameters:
//   - m: the initial mode
//
// Returns:
//   - CameraControllerOption: functional option to set the mode
func WithMode(m Mode) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.mode = m
	}
}

// WithView sets the initial eye and look-at.
//
// Parameters:
//   - eye: eye position
//   - lookat: look-at position
//
// Returns:
//   - CameraControllerOption: functional option to set the initial view
func WithView(eye, lookat mgl32.Vec3) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.actual = View{Eye: eye, Lookat: lookat}
		cc.final = cc.actual
	}
}

// WithInputFlags sets the operator toggles.
//
// Parameters:
//   - scroll: edge scrolling
//   - invertX: negate the horizontal axis
//   - invertY: negate the vertical axis
//   - effects: positional effects
//
// Returns:
//   - CameraControllerOption: functional option to set the toggles
func WithInputFlags(scroll, invertX, invertY, effects bool) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.scroll = scroll
		cc.invertX = invertX
		cc.invertY = invertY
		cc.effectsEnabled = effects
	}
}
