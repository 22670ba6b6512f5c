package camera

import (
	"math"

	"github.com/Carmen-Shannon/oxy-cam/common"
	"github.com/go-gl/mathgl/mgl32"
)

func (cc *cameraControllerImpl) Update(ev FrameEvent) FrameResult {
	cc.mu.Lock()
	defer cc.mu.Unlock()

	dt := ev.DeltaTime
	if !(dt > 0) {
		dt = 0
	}

	cc.processInput(ev.Input, dt)
	cc.centering.advance(dt)
	snap, visitDone := cc.frame(ev.Input, dt)
	cc.blend(dt, snap)
	cc.effectFrame(dt)
	cc.overFrame(dt)
	if cc.initDelay > 0 {
		cc.initDelay = max(cc.initDelay-dt, 0)
	}

	return FrameResult{
		View:          cc.view(),
		VisitComplete: visitDone,
		MotorTurn:     cc.motorTurn,
		Cursor:        cc.classify(ev.Input.MousePos),
	}
}

// frame computes the final view for the active mode. Modes that need an object leave the
// final view untouched while the camera is unbound.
//
// Returns:
//   - snap: the actual view must jump to the final view
//   - visitDone: a visit orbit completed its duration
func (cc *cameraControllerImpl) frame(in Input, dt float32) (snap, visitDone bool) {
	tr := traitsOf(cc.mode)
	if tr.needsObject && cc.object == nil {
		return false, false
	}
	switch s := cc.active.(type) {
	case *freeState:
		cc.frameFree(s, in, dt)
	case *editState:
		cc.frameEdit(s)
	case *onBoardState:
		cc.frameOnBoard()
	case *backState:
		cc.frameBack(s, dt)
	case *fixedState:
		cc.frameFixed(s)
	case *explosionState:
		cc.final = View{Eye: s.eye, Lookat: s.lookat}
	case *scriptState:
		cc.final = View{Eye: s.eye, Lookat: s.lookat}
	case *infoState:
		cc.final = View{Lookat: mgl32.Vec3{0, 0, 1}}
	case *visitState:
		visitDone = cc.frameVisit(s, dt)
	case *dialogState:
		cc.frameDialog(s)
	case *planeState:
		cc.framePlane(s)
	case *undefinedState:
	}
	return tr.snap, visitDone
}

func (cc *cameraControllerImpl) frameFree(s *freeState, in Input, dt float32) {
	t := cc.tuning
	h := s.dirH + cc.drag.offH
	v := common.Clamp(s.dirV+cc.drag.offV, -t.FreeMaxPitch, t.FreeMaxPitch)

	forward := common.Direction(h, 0)
	right := common.Direction(h-math.Pi/2, 0)
	step := t.FreeSpeed * dt
	s.eye = s.eye.Add(forward.Mul(in.Move.Y() * step)).Add(right.Mul(in.Move.X() * step))
	s.height = max(s.height+in.Lift*step, t.GroundClearance)

	eye := s.eye
	eye[1] = s.height
	if ground, ok := cc.groundAt(eye); ok {
		eye[1] = ground + s.height
	}
	cc.final = View{Eye: eye, Lookat: eye.Add(common.Direction(h, v).Mul(t.FreeLookDistance))}
}

func (cc *cameraControllerImpl) frameEdit(s *editState) {
	p := cc.object.Position()
	eye := p.Add(mgl32.Vec3{0, s.height, -s.height * 0.25})
	cc.final = View{Eye: eye, Lookat: p}
}

func (cc *cameraControllerImpl) frameOnBoard() {
	p := cc.object.Position()
	yaw, pitch, _ := cc.object.Orientation()
	offset := cc.tuning.OnBoardEyeOffset
	if a, ok := cc.object.(EyeAnchor); ok {
		offset = a.EyeOffset()
	}
	eye := p.Add(mgl32.Rotate3DY(yaw).Mul3x1(offset))
	cc.final = View{Eye: eye, Lookat: eye.Add(common.Direction(yaw, pitch).Mul(cc.tuning.FreeLookDistance))}
}

func (cc *cameraControllerImpl) frameBack(s *backState, dt float32) {
	t := cc.tuning
	p := cc.object.Position()
	yaw, _, _ := cc.object.Orientation()
	lookat := p.Add(mgl32.Vec3{0, t.BackLookHeight, 0})

	addH, addV, dist := s.addH, s.addV, s.dist
	if cc.centering.active() {
		addH, addV, dist = cc.centering.h, cc.centering.v, cc.centering.dist
	}
	h := yaw + math.Pi + addH + cc.remotePan + cc.drag.offH
	requested := t.BackElevation + addV + cc.drag.offV

	// release last frame's lift gradually so the eye does not drop back in one frame
	s.lift = max(s.lift-t.ExclusionRelax*dt, 0)
	v := min(requested+s.lift, maxElevation)

	_, v = excludeTerrain(cc.terrain, t, lookat, h, v, dist)
	eye, v, dist := excludeObjects(cc.objects, t, cc.object.ID(), lookat, h, v, dist, s.minDist)
	eye, v = excludeTerrain(cc.terrain, t, lookat, h, v, dist)

	s.lift = max(v-requested, 0)
	cc.final = View{Eye: eye, Lookat: lookat}
}

func (cc *cameraControllerImpl) frameFixed(s *fixedState) {
	t := cc.tuning
	lookat := cc.object.Position().Add(mgl32.Vec3{0, t.FixedLookHeight, 0})
	dirH, dirV, dist := s.dirH, s.dirV, s.dist
	if cc.centering.active() {
		dirH, dirV, dist = cc.centering.h, cc.centering.v, cc.centering.dist
	}
	eye, _ := excludeTerrain(cc.terrain, t, lookat, dirH+cc.drag.offH, dirV+cc.drag.offV, dist)
	cc.final = View{Eye: eye, Lookat: lookat}
}

func (cc *cameraControllerImpl) frameVisit(s *visitState, dt float32) bool {
	t := cc.tuning
	s.elapsed += dt
	turn := float32(1)
	if t.VisitDuration > 0 {
		turn = s.elapsed / t.VisitDuration
	}
	v, _ := s.elevation.Update(dt)
	h := s.startH + 2*math.Pi*turn + cc.drag.offH
	eye, _ := excludeTerrain(cc.terrain, t, s.goal, h, v+cc.drag.offV, s.dist)
	cc.final = View{Eye: eye, Lookat: s.goal}
	return s.elapsed >= t.VisitDuration
}

func (cc *cameraControllerImpl) frameDialog(s *dialogState) {
	p := cc.object.Position()
	yaw, _, _ := cc.object.Orientation()
	lookat := p.Add(mgl32.Vec3{0, s.height * 0.5, 0})
	eye := p.Add(common.Direction(yaw, 0).Mul(s.dist)).Add(mgl32.Vec3{0, s.height, 0})
	cc.final = View{Eye: eye, Lookat: lookat}
}

func (cc *cameraControllerImpl) framePlane(s *planeState) {
	p := cc.object.Position()
	ground := float32(0)
	if g, ok := cc.groundAt(p); ok {
		ground = g
	}
	eye := mgl32.Vec3{p.X(), ground + s.height, p.Z() - s.height*cc.tuning.PlaneSlant}
	cc.final = View{Eye: eye, Lookat: mgl32.Vec3{p.X(), ground, p.Z()}}
}

// groundAt returns the terrain height below p, if a terrain is attached.
func (cc *cameraControllerImpl) groundAt(p mgl32.Vec3) (float32, bool) {
	if cc.terrain == nil {
		return 0, false
	}
	return cc.terrain.HeightAt(p.X(), p.Z()), true
}

// blend moves the actual view toward the final view with rate k = 1 - exp(-rate*dt), snapping
// once within SnapEpsilon.
func (cc *cameraControllerImpl) blend(dt float32, snap bool) {
	rate := cc.tuning.rate(cc.smoothing)
	if cc.initDelay > 0 && cc.smoothing != SmoothNone {
		rate = cc.tuning.SmoothSpecial
	}
	if snap || rate <= 0 {
		cc.actual = cc.final
		return
	}
	k := 1 - float32(math.Exp(-float64(rate*dt)))
	cc.actual.Eye = approach(cc.actual.Eye, cc.final.Eye, k, cc.tuning.SnapEpsilon)
	cc.actual.Lookat = approach(cc.actual.Lookat, cc.final.Lookat, k, cc.tuning.SnapEpsilon)
}

func approach(from, to mgl32.Vec3, k, eps float32) mgl32.Vec3 {
	next := from.Add(to.Sub(from).Mul(k))
	if to.Sub(next).Len() <= eps {
		return to
	}
	return next
}
