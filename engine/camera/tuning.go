package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Tuning holds every constant the controller uses. All distances are world units, all angles
// radians, all durations seconds and all rates per second.
type Tuning struct {
	// Back mode.
	BackDistance    float32
	BackMinDistance float32
	BackMaxDistance float32
	BackElevation   float32 // resting elevation of the eye above the object's horizon
	BackLookHeight  float32 // look-at offset above the object origin
	BackMinAddV     float32
	BackMaxAddV     float32

	// Fixed mode.
	FixedDistance    float32
	FixedMinDistance float32
	FixedMaxDistance float32
	FixedDirectionH  float32
	FixedDirectionV  float32 // positive puts the eye above the object
	FixedLookHeight  float32

	// Visit mode.
	VisitMinDistance float32
	VisitMaxDistance float32
	VisitDuration    float32 // time for one full orbit
	VisitElevation   float32
	VisitEaseTime    float32 // time to settle from the entry elevation to VisitElevation

	// Edit, OnBoard, Plane, Dialog and Free modes.
	EditHeight       float32
	OnBoardEyeOffset mgl32.Vec3
	PlaneHeight      float32
	PlaneSlant       float32 // horizontal eye offset as a fraction of PlaneHeight
	DialogDistance   float32
	DialogHeight     float32
	FreeHeight       float32
	FreeSpeed        float32
	FreeLookDistance float32
	FreeMaxPitch     float32

	// Collision exclusion.
	GroundClearance     float32
	ExclusionIterations int
	ExclusionTolerance  float32
	ExclusionStep       float32 // vertical angle added per iteration when the segment is blocked
	ExclusionRelax      float32 // rate at which a previous lift is released
	ObjectProbeRadius   float32
	ObjectMargin        float32

	// Input.
	MouseMargin     float32 // edge band width as a fraction of the screen
	ScrollSpeed     float32
	WheelStep       float32
	DragSensitivity float32 // radians per full-screen drag

	// Smoothing.
	SmoothNormal  float32
	SmoothHard    float32
	SmoothSpecial float32
	SnapEpsilon   float32

	// Effects.
	EffectNear    float32 // full force within this distance of the origin
	EffectFalloff float32 // force reaches zero EffectFalloff past EffectNear
}

// DefaultTuning returns the stock constants.
//
// Returns:
//   - Tuning: the default tuning
func DefaultTuning() Tuning {
	return Tuning{
		BackDistance:    30,
		BackMinDistance: 10,
		BackMaxDistance: 200,
		BackElevation:   0.25,
		BackLookHeight:  2,
		BackMinAddV:     -0.2,
		BackMaxAddV:     1.2,

		FixedDistance:    50,
		FixedMinDistance: 10,
		FixedMaxDistance: 200,
		FixedDirectionH:  math.Pi / 4,
		FixedDirectionV:  0.3,
		FixedLookHeight:  0,

		VisitMinDistance: 20,
		VisitMaxDistance: 200,
		VisitDuration:    10,
		VisitElevation:   0.35,
		VisitEaseTime:    2,

		EditHeight:       40,
		OnBoardEyeOffset: mgl32.Vec3{0, 2, 0},
		PlaneHeight:      60,
		PlaneSlant:       0.2,
		DialogDistance:   12,
		DialogHeight:     3,
		FreeHeight:       5,
		FreeSpeed:        20,
		FreeLookDistance: 50,
		FreeMaxPitch:     1.4,

		GroundClearance:     2,
		ExclusionIterations: 8,
		ExclusionTolerance:  0.01,
		ExclusionStep:       0.05,
		ExclusionRelax:      0.5,
		ObjectProbeRadius:   20,
		ObjectMargin:        1,

		MouseMargin:     0.02,
		ScrollSpeed:     1.5,
		WheelStep:       8,
		DragSensitivity: math.Pi,

		SmoothNormal:  4,
		SmoothHard:    12,
		SmoothSpecial: 1,
		SnapEpsilon:   0.001,

		EffectNear:    100,
		EffectFalloff: 100,
	}
}

// rate returns the exponential blend rate for a smoothing mode; 0 means snap.
func (t Tuning) rate(s Smoothing) float32 {
	switch s {
	case SmoothNormal:
		return t.SmoothNormal
	case SmoothHard:
		return t.SmoothHard
	case SmoothSpecial:
		return t.SmoothSpecial
	}
	return 0
}
