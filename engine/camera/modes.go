package camera

import (
	"log"
	"math"

	"github.com/Carmen-Shannon/oxy-cam/common"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// modeTraits describes how a mode interacts with shared controller machinery.
type modeTraits struct {
	needsObject bool // frame is skipped while unbound
	snap        bool // actual = final every frame regardless of smoothing
	scrollH     bool // horizontal edge scroll is honored
	scrollV     bool // vertical edge scroll is honored
	centering   bool // StartCentering is accepted
}

var traitTable = map[Mode]modeTraits{
	ModeUndefined: {},
	ModeFree:      {scrollH: true, scrollV: true},
	ModeEdit:      {needsObject: true},
	ModeOnBoard:   {needsObject: true, snap: true, scrollH: true},
	ModeBack:      {needsObject: true, scrollH: true, scrollV: true, centering: true},
	ModeFixed:     {needsObject: true, scrollH: true, centering: true},
	ModeExplosion: {},
	ModeScript:    {},
	ModeInfo:      {snap: true},
	ModeVisit:     {},
	ModeDialog:    {needsObject: true},
	ModePlane:     {needsObject: true},
}

func traitsOf(m Mode) modeTraits {
	return traitTable[m]
}

// modeState is the parameter namespace of one mode. Each mode owns exactly one variant, so
// fields of one mode can never be read while another is active.
type modeState interface {
	mode() Mode
}

type freeState struct {
	eye    mgl32.Vec3 // horizontal position; Y is derived from terrain and height
	height float32
	dirH   float32
	dirV   float32
}

type editState struct {
	height float32
}

type onBoardState struct{}

type backState struct {
	dist    float32
	minDist float32
	addH    float32 // operator yaw on top of the object's heading
	addV    float32 // operator pitch on top of BackElevation
	lift    float32 // elevation added by exclusion on the previous frame
}

type fixedState struct {
	dist float32
	dirH float32
	dirV float32
}

type explosionState struct {
	eye    mgl32.Vec3
	lookat mgl32.Vec3
}

type scriptState struct {
	eye    mgl32.Vec3
	lookat mgl32.Vec3
}

type infoState struct{}

type visitState struct {
	goal      mgl32.Vec3
	dist      float32
	startH    float32
	elapsed   float32
	elevation *gween.Tween
	prior     Mode
}

type dialogState struct {
	dist   float32
	height float32
}

type planeState struct {
	height float32
}

type undefinedState struct{}

func (*freeState) mode() Mode      { return ModeFree }
func (*editState) mode() Mode      { return ModeEdit }
func (*onBoardState) mode() Mode   { return ModeOnBoard }
func (*backState) mode() Mode      { return ModeBack }
func (*fixedState) mode() Mode     { return ModeFixed }
func (*explosionState) mode() Mode { return ModeExplosion }
func (*scriptState) mode() Mode    { return ModeScript }
func (*infoState) mode() Mode      { return ModeInfo }
func (*visitState) mode() Mode     { return ModeVisit }
func (*dialogState) mode() Mode    { return ModeDialog }
func (*planeState) mode() Mode     { return ModePlane }
func (*undefinedState) mode() Mode { return ModeUndefined }

// newState builds the default namespace for m. Caller must hold the mutex.
func (cc *cameraControllerImpl) newState(m Mode) modeState {
	t := cc.tuning
	switch m {
	case ModeFree:
		s := &freeState{eye: cc.actual.Eye, height: t.FreeHeight}
		if ground, ok := cc.groundAt(cc.actual.Eye); ok {
			s.height = max(cc.actual.Eye.Y()-ground, t.GroundClearance)
		} else if cc.actual.Eye.Y() > 0 {
			s.height = cc.actual.Eye.Y()
		}
		s.dirH, s.dirV = common.Angles(cc.actual.Lookat.Sub(cc.actual.Eye))
		return s
	case ModeEdit:
		return &editState{height: t.EditHeight}
	case ModeOnBoard:
		return &onBoardState{}
	case ModeBack:
		return &backState{dist: t.BackDistance, minDist: t.BackMinDistance}
	case ModeFixed:
		return &fixedState{dist: t.FixedDistance, dirH: t.FixedDirectionH, dirV: t.FixedDirectionV}
	case ModeExplosion:
		return &explosionState{eye: cc.actual.Eye, lookat: cc.actual.Lookat}
	case ModeScript:
		return &scriptState{eye: cc.actual.Eye, lookat: cc.actual.Lookat}
	case ModeInfo:
		return &infoState{}
	case ModeVisit:
		return cc.newVisit(cc.actual.Lookat, t.VisitMinDistance, cc.mode)
	case ModeDialog:
		return &dialogState{dist: t.DialogDistance, height: t.DialogHeight}
	case ModePlane:
		return &planeState{height: t.PlaneHeight}
	}
	return &undefinedState{}
}

// newVisit starts an orbit from the current eye bearing so entering Visit does not jump. A
// Script override is never recorded as the prior mode; the mode it replaced is used instead.
func (cc *cameraControllerImpl) newVisit(goal mgl32.Vec3, dist float32, prior Mode) *visitState {
	if prior == ModeScript {
		prior = cc.scriptPrior
	}
	if prior == ModeVisit || prior == ModeScript {
		prior = ModeUndefined
	}
	h, v := common.Angles(cc.actual.Eye.Sub(goal))
	if cc.actual.Eye == goal {
		v = cc.tuning.VisitElevation
	}
	return &visitState{
		goal:      goal,
		dist:      dist,
		startH:    h,
		elevation: gween.New(v, cc.tuning.VisitElevation, cc.tuning.VisitEaseTime, ease.InOutQuad),
		prior:     prior,
	}
}

// stateFor returns the namespace for m, creating it on first use. Explosion is recreated so it
// captures the view at the moment it starts, except when returning from a visit or a script
// that interrupted it. Caller must hold the mutex.
func (cc *cameraControllerImpl) stateFor(m Mode) modeState {
	if s, ok := cc.states[m]; ok && (m != ModeExplosion || returnsToPrior(cc.mode)) {
		return s
	}
	s := cc.newState(m)
	cc.states[m] = s
	return s
}

// fixed returns the Fixed namespace whether or not Fixed is active.
func (cc *cameraControllerImpl) fixed() *fixedState {
	return cc.stateFor(ModeFixed).(*fixedState)
}

func (cc *cameraControllerImpl) back() *backState {
	return cc.stateFor(ModeBack).(*backState)
}

func (cc *cameraControllerImpl) edit() *editState {
	return cc.stateFor(ModeEdit).(*editState)
}

func (cc *cameraControllerImpl) script() *scriptState {
	return cc.stateFor(ModeScript).(*scriptState)
}

// setMode switches the active namespace. Caller must hold the mutex.
func (cc *cameraControllerImpl) setMode(m Mode) {
	if m == cc.mode {
		return
	}
	prev := cc.mode
	// A visit or an explosion interrupted by a script or a visit survives until the
	// interruption ends somewhere else.
	switch {
	case prev == ModeVisit && m != ModeScript:
		delete(cc.states, ModeVisit)
	case prev == ModeScript && m != ModeVisit:
		delete(cc.states, ModeVisit)
	}
	if m != ModeExplosion && !returnsToPrior(m) {
		delete(cc.states, ModeExplosion)
	}
	if m == ModeScript {
		cc.scriptPrior = prev
	}
	cc.centering.abort()
	cc.drag = drag{}
	cc.motorTurn = 0
	cc.active = cc.stateFor(m)
	cc.mode = m
	log.Printf("[Camera] mode %s -> %s", prev, m)
}

// returnsToPrior reports whether leaving m resumes the mode it interrupted.
func returnsToPrior(m Mode) bool {
	return m == ModeVisit || m == ModeScript
}

// distanceRef returns the distance-like parameter of the active mode, falling back to the
// Fixed namespace for modes that have none.
func (cc *cameraControllerImpl) distanceRef() *float32 {
	switch s := cc.active.(type) {
	case *backState:
		return &s.dist
	case *fixedState:
		return &s.dist
	case *planeState:
		return &s.height
	case *visitState:
		return &s.dist
	case *dialogState:
		return &s.dist
	case *editState:
		return &s.height
	}
	return &cc.fixed().dist
}

// zoomRange returns the remote zoom range of the active mode.
func (cc *cameraControllerImpl) zoomRange() (float32, float32, bool) {
	t := cc.tuning
	switch s := cc.active.(type) {
	case *backState:
		return s.minDist, t.BackMaxDistance, true
	case *fixedState, *planeState:
		return t.FixedMinDistance, t.FixedMaxDistance, true
	case *visitState:
		return t.VisitMinDistance, t.VisitMaxDistance, true
	}
	return 0, 0, false
}

const maxElevation = math.Pi/2 - 0.01
