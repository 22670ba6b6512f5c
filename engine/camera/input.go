package camera

import (
	"github.com/Carmen-Shannon/oxy-cam/common"
	"github.com/go-gl/mathgl/mgl32"
)

// drag is the right-button free-look override. Offsets are relative to the press position and
// are committed into the mode's baseline on release.
type drag struct {
	active bool
	origin mgl32.Vec2
	offH   float32
	offV   float32
}

// processInput applies one frame of operator input. Caller must hold the mutex.
func (cc *cameraControllerImpl) processInput(in Input, dt float32) {
	cc.motorTurn = 0
	cc.updateDrag(in)
	if in.WheelDelta != 0 {
		cc.wheel(in.WheelDelta)
	}

	if !in.MouseInside || cc.drag.active || !cc.scroll {
		return
	}
	sh, sv := edgeScroll(in.MousePos, cc.tuning.MouseMargin)
	if cc.invertX {
		sh = -sh
	}
	if cc.invertY {
		sv = -sv
	}
	tr := traitsOf(cc.mode)
	if !tr.scrollH {
		sh = 0
	}
	if !tr.scrollV {
		sv = 0
	}
	if sh == 0 && sv == 0 {
		return
	}

	step := cc.tuning.ScrollSpeed * dt
	switch s := cc.active.(type) {
	case *freeState:
		s.dirH = common.NormAngle(s.dirH + sh*step)
		s.dirV = common.Clamp(s.dirV+sv*step, -cc.tuning.FreeMaxPitch, cc.tuning.FreeMaxPitch)
	case *backState:
		s.addH = common.NormAngle(s.addH + sh*step)
		s.addV = common.Clamp(s.addV+sv*step, cc.tuning.BackMinAddV, cc.tuning.BackMaxAddV)
	case *fixedState:
		s.dirH = common.NormAngle(s.dirH + sh*step)
	case *onBoardState:
		cc.motorTurn = sh
	}
}

// updateDrag starts, updates or releases the right-button drag.
func (cc *cameraControllerImpl) updateDrag(in Input) {
	d := &cc.drag
	if !d.active {
		if in.RightDown && in.MouseInside && cc.mode != ModeInfo {
			*d = drag{active: true, origin: in.MousePos}
		}
		return
	}
	if !in.RightDown {
		cc.commitDrag()
		return
	}
	delta := in.MousePos.Sub(d.origin)
	d.offH = delta.X() * cc.tuning.DragSensitivity
	d.offV = delta.Y() * cc.tuning.DragSensitivity
	if cc.invertX {
		d.offH = -d.offH
	}
	if cc.invertY {
		d.offV = -d.offV
	}
}

// commitDrag folds the drag offset into the mode baseline and ends the drag.
func (cc *cameraControllerImpl) commitDrag() {
	d := cc.drag
	cc.drag = drag{}
	switch s := cc.active.(type) {
	case *freeState:
		s.dirH = common.NormAngle(s.dirH + d.offH)
		s.dirV = common.Clamp(s.dirV+d.offV, -cc.tuning.FreeMaxPitch, cc.tuning.FreeMaxPitch)
	case *backState:
		s.addH += d.offH
		s.addV = common.Clamp(s.addV+d.offV, cc.tuning.BackMinAddV, cc.tuning.BackMaxAddV)
	case *fixedState:
		s.dirH += d.offH
		s.dirV = common.Clamp(s.dirV+d.offV, -maxElevation, maxElevation)
	case *visitState:
		s.startH += d.offH
	}
}

// wheel adjusts the active mode's distance; positive delta zooms in.
func (cc *cameraControllerImpl) wheel(delta float32) {
	t := cc.tuning
	step := delta * t.WheelStep
	switch s := cc.active.(type) {
	case *backState:
		s.dist = common.Clamp(s.dist-step, s.minDist, t.BackMaxDistance)
	case *fixedState:
		s.dist = common.Clamp(s.dist-step, t.FixedMinDistance, t.FixedMaxDistance)
	case *planeState:
		s.height = common.Clamp(s.height-step, t.FixedMinDistance, t.FixedMaxDistance)
	case *visitState:
		s.dist = common.Clamp(s.dist-step, t.VisitMinDistance, t.VisitMaxDistance)
	case *freeState:
		s.height = max(s.height-step, t.GroundClearance)
	}
}

// edgeScroll maps a position inside the edge bands to scroll factors in [-1, 1]; 0 outside.
func edgeScroll(pos mgl32.Vec2, margin float32) (h, v float32) {
	if margin <= 0 {
		return 0, 0
	}
	return edgeAxis(pos.X(), margin), edgeAxis(pos.Y(), margin)
}

func edgeAxis(x, margin float32) float32 {
	switch {
	case x < margin:
		return common.Clamp(x/margin-1, -1, 0)
	case x > 1-margin:
		return common.Clamp(1-(1-x)/margin, 0, 1)
	}
	return 0
}

// classify returns the cursor kind for pos. Vertical scrolling wins over horizontal in corners.
func (cc *cameraControllerImpl) classify(pos mgl32.Vec2) CursorKind {
	if cc.mode == ModeInfo {
		return CursorNormal
	}
	if cc.drag.active {
		return CursorMove
	}
	if !cc.scroll {
		return CursorNormal
	}
	tr := traitsOf(cc.mode)
	h, v := edgeScroll(pos, cc.tuning.MouseMargin)
	kind := CursorNormal
	if tr.scrollH {
		switch {
		case h < 0:
			kind = CursorScrollLeft
		case h > 0:
			kind = CursorScrollRight
		}
	}
	if tr.scrollV {
		switch {
		case v < 0:
			kind = CursorScrollDown
		case v > 0:
			kind = CursorScrollUp
		}
	}
	return kind
}
