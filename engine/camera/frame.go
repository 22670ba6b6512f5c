package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// View is an eye / look-at pair.
type View struct {
	Eye    mgl32.Vec3
	Lookat mgl32.Vec3
}

// Input is the operator input sampled for one frame.
type Input struct {
	// MousePos is the cursor position normalized to [0, 1] on both axes, origin bottom-left.
	MousePos mgl32.Vec2
	// MouseInside is false while the cursor is outside the window. Edge scrolling and
	// drag start are ignored then.
	MouseInside bool
	// WheelDelta is the accumulated wheel movement since the last frame; positive zooms in.
	WheelDelta float32
	// RightDown is the right mouse button state.
	RightDown bool
	// Move is the free-flight axis input: X strafes right, Y moves forward. Range [-1, 1].
	Move mgl32.Vec2
	// Lift raises (positive) or lowers the free-flight height. Range [-1, 1].
	Lift float32
}

// FrameEvent is delivered once per rendered frame.
type FrameEvent struct {
	// DeltaTime is the elapsed time since the previous frame in seconds.
	DeltaTime float32
	Input     Input
}

// FrameResult is what a frame update publishes.
type FrameResult struct {
	// View is the placement the renderer should use, effect offset included.
	View View
	// VisitComplete is set once a visit orbit has run its full duration; the caller is
	// expected to call StopVisit.
	VisitComplete bool
	// MotorTurn is the turn request for the bound vehicle in [-1, 1].
	MotorTurn float32
	// Cursor is the classification of the frame's mouse position.
	Cursor CursorKind
}
