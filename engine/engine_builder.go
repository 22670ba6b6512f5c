package engine

import (
	"time"

	"github.com/Carmen-Shannon/oxy-cam/common"
	"github.com/Carmen-Shannon/oxy-cam/engine/camera"
	"github.com/Carmen-Shannon/oxy-cam/engine/cutscene"
	"github.com/Carmen-Shannon/oxy-cam/engine/gpu"
	"github.com/Carmen-Shannon/oxy-cam/engine/window"
	"github.com/Carmen-Shannon/oxy-cam/engine/world"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithTickRate sets the engine tick rate in frames per second.
// Values <= 0 will be treated as the default (60Hz).
//
// Parameters:
//   - fps: target ticks per second (default 60)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithTickRate(fps float64) EngineBuilderOption {
	return func(e *engine) {
		if fps <= 0 {
			fps = 60.0
		}
		e.engineTickRate = time.Second / time.Duration(fps)
	}
}

// WithWindow sets the window the engine pumps messages for and reads input from.
// Without a window the engine runs headless until Quit.
//
// Parameters:
//   - w: a pre-configured Window instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithDevice sets the GPU device frames are presented on. The surface is configured to the
// window size during construction and on every resize.
//
// Parameters:
//   - d: the device
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithDevice(d gpu.Device) EngineBuilderOption {
	return func(e *engine) {
		e.device = d
	}
}

// WithCamera sets the camera updated each tick.
//
// Parameters:
//   - c: the camera, normally carrying a controller
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithCamera(c camera.Camera) EngineBuilderOption {
	return func(e *engine) {
		e.cam = c
	}
}

// WithUniformSink sets where the camera uniform is published each render frame.
//
// Parameters:
//   - s: the sink, typically a *camera.UniformWriter
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithUniformSink(s camera.UniformSink) EngineBuilderOption {
	return func(e *engine) {
		e.uniform = s
	}
}

// WithWorld sets the world whose broadphase is synced each tick before the camera update.
//
// Parameters:
//   - w: the world
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWorld(w *world.World) EngineBuilderOption {
	return func(e *engine) {
		e.world = w
	}
}

// WithDirector sets the cutscene director stepped each tick while it runs.
//
// Parameters:
//   - d: the director
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithDirector(d cutscene.Director) EngineBuilderOption {
	return func(e *engine) {
		e.director = d
	}
}

// WithBackground sets the clear color the overlay tint is blended onto.
//
// Parameters:
//   - c: background color
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithBackground(c common.Color) EngineBuilderOption {
	return func(e *engine) {
		e.background = c
	}
}

// WithRenderFrameLimit sets an optional render frame rate cap in frames per second.
// Pass 0 to uncap the render loop (default).
//
// Parameters:
//   - fps: maximum render frames per second (0 = uncapped)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderFrameLimit(fps float64) EngineBuilderOption {
	return func(e *engine) {
		if fps <= 0 {
			e.renderFrameLimit = 0
			return
		}
		e.renderFrameLimit = time.Second / time.Duration(fps)
	}
}
