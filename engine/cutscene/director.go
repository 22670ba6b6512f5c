// Package cutscene drives the camera's Script mode from tengo scripts.
//
// A script is compiled once and re-run every step. Before each run the director sets the inputs
// `t` (seconds since Start) and `focus` (the bound object's position, or [0, 0, 0]). The script
// must assign the outputs `eye` and `lookat` as three-number arrays and may assign `done = true`
// to end the cutscene. Outputs are pre-declared, so scripts assign them with `=`:
//
//	math := import("math")
//	eye = [focus[0] + 30 * math.cos(t), focus[1] + 10, focus[2] + 30 * math.sin(t)]
//	lookat = focus
//	done = t > 8
package cutscene

import (
	"errors"

	"github.com/Carmen-Shannon/oxy-cam/engine/camera"
)

// ErrMissingOutput is returned when a script run leaves `eye` or `lookat` unset or malformed.
var ErrMissingOutput = errors.New("cutscene: missing or malformed output")

// Director plays a script against a CameraController.
type Director interface {
	// Start remembers the controller's current mode, switches it to Script and resets the clock.
	// Starting a running director restarts the clock and keeps the remembered mode.
	Start()

	// Step advances the clock by dt seconds, runs the script and feeds its eye and look-at to the
	// controller. When the script reports done, or the run fails, the remembered mode is restored.
	//
	// Parameters:
	//   - dt: elapsed seconds, negative values count as 0
	//
	// Returns:
	//   - bool: true when the cutscene is over (also true for a director that is not running)
	//   - error: error if the script fails or its outputs are unusable
	Step(dt float32) (bool, error)

	// Stop restores the remembered mode immediately. Stopping an idle director is a no-op.
	Stop()

	// Running reports whether the director is between Start and its end.
	//
	// Returns:
	//   - bool: true while playing
	Running() bool

	// Elapsed returns the script clock.
	//
	// Returns:
	//   - float32: seconds since Start
	Elapsed() float32

	// Controller returns the driven controller.
	//
	// Returns:
	//   - camera.CameraController: the controller
	Controller() camera.CameraController
}
