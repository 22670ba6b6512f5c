package camera

import (
	"github.com/Carmen-Shannon/oxy-cam/common"
	"github.com/go-gl/mathgl/mgl32"
)

// CameraController converts the bound object's motion, operator input, scripted cues and
// collision constraints into one smoothly interpolated eye/look-at pair per frame.
//
// The controller is frame driven: Update is called once per rendered frame and every
// mutator takes effect on the next Update. All methods are safe to call from the
// goroutine that drives Update and from readers such as the Camera.
type CameraController interface {
	// Update advances the controller by one frame.
	//
	// Parameters:
	//   - ev: elapsed time and sampled input for the frame
	//
	// Returns:
	//   - FrameResult: the published view, visit completion, motor turn and cursor kind
	Update(ev FrameEvent) FrameResult

	// View returns the authoritative camera placement, effect offset included.
	//
	// Returns:
	//   - View: eye and look-at
	View() View

	// ActualView returns the smoothed placement without the effect offset.
	//
	// Returns:
	//   - View: eye and look-at
	ActualView() View

	// FinalView returns the placement the mode computed on the last frame.
	//
	// Returns:
	//   - View: eye and look-at
	FinalView() View

	// Init places the camera directly at eye/lookat. For delay seconds afterwards the view
	// glides with the Special rate unless smoothing is SmoothNone.
	//
	// Parameters:
	//   - eye: eye position
	//   - lookat: look-at position
	//   - delay: glide time in seconds
	Init(eye, lookat mgl32.Vec3, delay float32)

	// FixCamera snaps the actual view onto the final view.
	FixCamera()

	// Reset clears all per-mode namespaces, centering, effect, overlay and base color and
	// switches to ModeUndefined. Used on level load.
	Reset()

	// SetObject binds the tracked object. Binding a different object resets every mode
	// namespace, aborts centering, flushes the effect and releases a drag; the mode is kept.
	//
	// Parameters:
	//   - obj: the object to track, or nil to unbind
	SetObject(obj Object)

	// Object returns the bound object or nil.
	//
	// Returns:
	//   - Object: the bound object
	Object() Object

	// SetMode switches mode. Switching to the current mode is a no-op. Any in-flight
	// centering is aborted and leaving Visit discards the visit state.
	//
	// Parameters:
	//   - m: the new mode
	SetMode(m Mode)

	// Mode returns the active mode.
	//
	// Returns:
	//   - Mode: the active mode
	Mode() Mode

	// SetSmoothing selects the blend rate of the actual view toward the final view.
	//
	// Parameters:
	//   - s: the smoothing mode
	SetSmoothing(s Smoothing)

	// Smoothing returns the current smoothing mode.
	//
	// Returns:
	//   - Smoothing: the smoothing mode
	Smoothing() Smoothing

	// SetDistance sets the distance of the active mode (Back, Fixed, Visit, Dialog; the height
	// in Plane and Edit). Other modes store it in the Fixed namespace. Stored exactly.
	//
	// Parameters:
	//   - d: the distance
	SetDistance(d float32)

	// Distance returns the value SetDistance targets.
	//
	// Returns:
	//   - float32: the distance
	Distance() float32

	// SetFixDirection sets the horizontal direction of Fixed mode in radians.
	//
	// Parameters:
	//   - h: horizontal angle
	SetFixDirection(h float32)

	// FixDirection returns the horizontal direction of Fixed mode.
	//
	// Returns:
	//   - float32: horizontal angle
	FixDirection() float32

	// SetFixDirectionV sets the vertical direction of Fixed mode in radians; positive puts the
	// eye above the object.
	//
	// Parameters:
	//   - v: vertical angle
	SetFixDirectionV(v float32)

	// FixDirectionV returns the vertical direction of Fixed mode.
	//
	// Returns:
	//   - float32: vertical angle
	FixDirectionV() float32

	// SetEditHeight sets the eye height of Edit mode.
	//
	// Parameters:
	//   - h: height above the object
	SetEditHeight(h float32)

	// EditHeight returns the eye height of Edit mode.
	//
	// Returns:
	//   - float32: height above the object
	EditHeight() float32

	// SetBackMinDistance sets the closest distance exclusion may pull the Back eye to.
	//
	// Parameters:
	//   - d: minimum distance
	SetBackMinDistance(d float32)

	// BackMinDistance returns the Back mode minimum distance.
	//
	// Returns:
	//   - float32: minimum distance
	BackMinDistance() float32

	// SetRemotePan sets an extra horizontal angle applied in Back mode.
	//
	// Parameters:
	//   - v: angle in radians
	SetRemotePan(v float32)

	// RemotePan returns the Back mode remote pan angle.
	//
	// Returns:
	//   - float32: angle in radians
	RemotePan() float32

	// SetRemoteZoom maps v, clamped to [0, 1], onto the distance range of the active mode.
	// Modes without a range only remember the value.
	//
	// Parameters:
	//   - v: normalized zoom
	SetRemoteZoom(v float32)

	// RemoteZoom returns the last value passed to SetRemoteZoom after clamping.
	//
	// Returns:
	//   - float32: normalized zoom
	RemoteZoom() float32

	// StartVisit orbits goal at dist, remembering the active mode for StopVisit.
	// Calling it while visiting retargets the orbit and keeps the remembered mode.
	//
	// Parameters:
	//   - goal: orbit center
	//   - dist: orbit radius
	StartVisit(goal mgl32.Vec3, dist float32)

	// StopVisit restores the mode that was active before StartVisit. No-op outside Visit.
	StopVisit()

	// StartCentering animates the Back/Fixed direction and distance toward h, v, dist over
	// duration seconds.
	//
	// Parameters:
	//   - target: the object the maneuver is for
	//   - h, v: target angles
	//   - dist: target distance
	//   - duration: animation length in seconds
	//
	// Returns:
	//   - bool: false if the mode does not support centering, the camera is unbound, or a
	//     centering for a different object has not been stopped
	StartCentering(target Object, h, v, dist, duration float32) bool

	// StopCentering animates back to the values captured by StartCentering.
	//
	// Parameters:
	//   - target: must be the object passed to StartCentering
	//   - duration: animation length in seconds
	//
	// Returns:
	//   - bool: false if no centering for target is running
	StopCentering(target Object, duration float32) bool

	// AbortCentering returns to CenteringIdle without animating.
	AbortCentering()

	// CenteringPhase returns the centering phase.
	//
	// Returns:
	//   - CenteringPhase: the phase
	CenteringPhase() CenteringPhase

	// CenteringState returns the current interpolated centering values.
	//
	// Returns:
	//   - h, v, dist: angles and distance
	CenteringState() (h, v, dist float32)

	// StartEffect starts a positional shake, replacing any running one.
	//
	// Parameters:
	//   - kind: the effect kind; EffectNone flushes
	//   - origin: world position of the cause, used for attenuation
	//   - force: strength multiplier
	StartEffect(kind EffectKind, origin mgl32.Vec3, force float32)

	// FlushEffect stops the effect and zeroes its offset immediately.
	FlushEffect()

	// Effect returns the running effect kind.
	//
	// Returns:
	//   - EffectKind: the effect kind
	Effect() EffectKind

	// EffectOffset returns the offset currently added to eye and look-at.
	//
	// Returns:
	//   - mgl32.Vec3: the offset
	EffectOffset() mgl32.Vec3

	// StartOver starts a full-screen color layer, replacing any running one.
	//
	// Parameters:
	//   - kind: the overlay kind; OverlayNone flushes
	//   - origin: world position of the cause, used for attenuation
	//   - force: strength multiplier
	StartOver(kind OverlayKind, origin mgl32.Vec3, force float32)

	// FlushOver stops the overlay. The base color stays.
	FlushOver()

	// SetOverBaseColor sets the resting tint drawn under transient overlays.
	//
	// Parameters:
	//   - c: the base color
	SetOverBaseColor(c common.Color)

	// Overlay returns the running overlay kind.
	//
	// Returns:
	//   - OverlayKind: the overlay kind
	Overlay() OverlayKind

	// OverColor returns the overlay color for the current frame.
	//
	// Returns:
	//   - common.Color: the color to blend over the scene
	OverColor() common.Color

	// SetScriptEye sets the eye used in Script mode.
	//
	// Parameters:
	//   - eye: eye position
	SetScriptEye(eye mgl32.Vec3)

	// SetScriptLookat sets the look-at used in Script mode.
	//
	// Parameters:
	//   - lookat: look-at position
	SetScriptLookat(lookat mgl32.Vec3)

	// SetScroll enables edge scrolling.
	SetScroll(enabled bool)

	// Scroll reports whether edge scrolling is enabled.
	Scroll() bool

	// SetInvertX negates the horizontal input axis.
	SetInvertX(invert bool)

	// InvertX reports whether the horizontal axis is inverted.
	InvertX() bool

	// SetInvertY negates the vertical input axis.
	SetInvertY(invert bool)

	// InvertY reports whether the vertical axis is inverted.
	InvertY() bool

	// SetEffectsEnabled toggles positional effects. EffectSpleen ignores the toggle.
	SetEffectsEnabled(enabled bool)

	// EffectsEnabled reports whether positional effects are enabled.
	EffectsEnabled() bool

	// MotorTurn returns the vehicle turn request produced by edge scrolling in OnBoard mode.
	//
	// Returns:
	//   - float32: turn request in [-1, 1]
	MotorTurn() float32

	// ClassifyMousePosition returns the cursor kind for a normalized screen position.
	//
	// Parameters:
	//   - pos: position in [0, 1] on both axes, origin bottom-left
	//
	// Returns:
	//   - CursorKind: the cursor kind
	ClassifyMousePosition(pos mgl32.Vec2) CursorKind

	// SetTuning replaces every constant. Existing mode namespaces keep their values.
	//
	// Parameters:
	//   - t: the new tuning
	SetTuning(t Tuning)

	// Tuning returns the active constants.
	//
	// Returns:
	//   - Tuning: the tuning
	Tuning() Tuning
}
