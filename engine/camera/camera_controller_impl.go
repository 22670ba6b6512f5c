package camera

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-cam/common"
	"github.com/go-gl/mathgl/mgl32"
)

type cameraControllerImpl struct {
	mu *sync.Mutex

	tuning  Tuning
	terrain Terrain
	objects ObjectQuery
	object  Object

	mode   Mode
	active modeState
	states map[Mode]modeState
	// scriptPrior is the mode a Script override replaced.
	scriptPrior Mode

	smoothing Smoothing
	initDelay float32
	actual    View
	final     View

	centering centering
	effect    effect
	overlay   overlay
	drag      drag

	scroll         bool
	invertX        bool
	invertY        bool
	effectsEnabled bool

	remotePan  float32
	remoteZoom float32
	motorTurn  float32
}

var _ CameraController = &cameraControllerImpl{}

// NewCameraController creates a CameraController. Without options it starts unbound in
// ModeUndefined with default tuning, Normal smoothing, scrolling and effects enabled.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the newly created controller
func NewCameraController(options ...CameraControllerOption) CameraController {
	cc := &cameraControllerImpl{
		mu:             &sync.Mutex{},
		tuning:         DefaultTuning(),
		states:         make(map[Mode]modeState),
		smoothing:      SmoothNormal,
		actual:         View{Lookat: mgl32.Vec3{0, 0, 1}},
		scroll:         true,
		effectsEnabled: true,
	}
	cc.final = cc.actual
	for _, option := range options {
		option(cc)
	}
	cc.active = cc.stateFor(cc.mode)
	return cc
}

func (cc *cameraControllerImpl) View() View {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.view()
}

func (cc *cameraControllerImpl) ActualView() View {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.actual
}

func (cc *cameraControllerImpl) FinalView() View {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.final
}

func (cc *cameraControllerImpl) Init(eye, lookat mgl32.Vec3, delay float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.actual = View{Eye: eye, Lookat: lookat}
	cc.final = cc.actual
	cc.initDelay = max(delay, 0)
	cc.effect.flush()
	cc.overlay.flush()
	delete(cc.states, ModeFree)
	if cc.mode == ModeFree {
		cc.active = cc.stateFor(ModeFree)
	}
}

func (cc *cameraControllerImpl) FixCamera() {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.actual = cc.final
}

func (cc *cameraControllerImpl) Reset() {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.resetNamespaces()
	cc.overlay = overlay{}
	cc.remotePan = 0
	cc.remoteZoom = 0
	cc.initDelay = 0
	cc.setMode(ModeUndefined)
}

func (cc *cameraControllerImpl) SetObject(obj Object) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	if sameObject(cc.object, obj) {
		return
	}
	cc.object = obj
	cc.resetNamespaces()
}

func (cc *cameraControllerImpl) Object() Object {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.object
}

func (cc *cameraControllerImpl) SetMode(m Mode) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.setMode(m)
}

func (cc *cameraControllerImpl) Mode() Mode {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.mode
}

func (cc *cameraControllerImpl) SetSmoothing(s Smoothing) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.smoothing = s
}

func (cc *cameraControllerImpl) Smoothing() Smoothing {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.smoothing
}

func (cc *cameraControllerImpl) SetDistance(d float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	*cc.distanceRef() = d
}

func (cc *cameraControllerImpl) Distance() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return *cc.distanceRef()
}

func (cc *cameraControllerImpl) SetFixDirection(h float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.fixed().dirH = h
}

func (cc *cameraControllerImpl) FixDirection() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.fixed().dirH
}

func (cc *cameraControllerImpl) SetFixDirectionV(v float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.fixed().dirV = v
}

func (cc *cameraControllerImpl) FixDirectionV() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.fixed().dirV
}

func (cc *cameraControllerImpl) SetEditHeight(h float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.edit().height = h
}

func (cc *cameraControllerImpl) EditHeight() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.edit().height
}

func (cc *cameraControllerImpl) SetBackMinDistance(d float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.back().minDist = d
}

func (cc *cameraControllerImpl) BackMinDistance() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.back().minDist
}

func (cc *cameraControllerImpl) SetRemotePan(v float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.remotePan = v
}

func (cc *cameraControllerImpl) RemotePan() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.remotePan
}

func (cc *cameraControllerImpl) SetRemoteZoom(v float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.remoteZoom = common.Clamp(v, 0, 1)
	if lo, hi, ok := cc.zoomRange(); ok {
		*cc.distanceRef() = lo + (hi-lo)*cc.remoteZoom
	}
}

func (cc *cameraControllerImpl) RemoteZoom() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.remoteZoom
}

func (cc *cameraControllerImpl) StartVisit(goal mgl32.Vec3, dist float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	if s, ok := cc.active.(*visitState); ok {
		s.goal = goal
		s.dist = dist
		return
	}
	cc.states[ModeVisit] = cc.newVisit(goal, dist, cc.mode)
	cc.setMode(ModeVisit)
}

func (cc *cameraControllerImpl) StopVisit() {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	s, ok := cc.active.(*visitState)
	if !ok {
		return
	}
	cc.setMode(s.prior)
}

func (cc *cameraControllerImpl) StartCentering(target Object, h, v, dist, duration float32) bool {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	if target == nil || cc.object == nil || !traitsOf(cc.mode).centering {
		return false
	}
	if cc.centering.running() && cc.centering.target != target.ID() {
		return false
	}
	var fromH, fromV, fromD float32
	switch s := cc.active.(type) {
	case *backState:
		fromH, fromV, fromD = s.addH, s.addV, s.dist
	case *fixedState:
		fromH, fromV, fromD = s.dirH, s.dirV, s.dist
	}
	if cc.centering.phase == CenteringIdle {
		cc.centering.base = [3]float32{fromH, fromV, fromD}
	} else {
		fromH, fromV, fromD = cc.centering.h, cc.centering.v, cc.centering.dist
	}
	cc.centering.start(target.ID(), [3]float32{fromH, fromV, fromD}, [3]float32{h, v, dist}, duration)
	return true
}

func (cc *cameraControllerImpl) StopCentering(target Object, duration float32) bool {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	if target == nil || !cc.centering.running() || cc.centering.target != target.ID() {
		return false
	}
	cc.centering.stop(duration)
	return true
}

func (cc *cameraControllerImpl) AbortCentering() {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.centering.abort()
}

func (cc *cameraControllerImpl) CenteringPhase() CenteringPhase {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.centering.phase
}

func (cc *cameraControllerImpl) CenteringState() (h, v, dist float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.centering.h, cc.centering.v, cc.centering.dist
}

func (cc *cameraControllerImpl) StartEffect(kind EffectKind, origin mgl32.Vec3, force float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	if kind == EffectNone {
		cc.effect.flush()
		return
	}
	if !cc.effectsEnabled && kind != EffectSpleen {
		return
	}
	cc.effect.start(kind, origin, force)
}

func (cc *cameraControllerImpl) FlushEffect() {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.effect.flush()
}

func (cc *cameraControllerImpl) Effect() EffectKind {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.effect.kind
}

func (cc *cameraControllerImpl) EffectOffset() mgl32.Vec3 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.effect.offset
}

func (cc *cameraControllerImpl) StartOver(kind OverlayKind, origin mgl32.Vec3, force float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	if kind == OverlayNone {
		cc.overlay.flush()
		return
	}
	cc.overlay.start(kind, force*cc.overlayAttenuation(kind, origin))
}

func (cc *cameraControllerImpl) FlushOver() {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.overlay.flush()
}

func (cc *cameraControllerImpl) SetOverBaseColor(c common.Color) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.overlay.base = c
	if cc.overlay.kind == OverlayNone {
		cc.overlay.color = c
	}
}

func (cc *cameraControllerImpl) Overlay() OverlayKind {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.overlay.kind
}

func (cc *cameraControllerImpl) OverColor() common.Color {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.overlay.color
}

func (cc *cameraControllerImpl) SetScriptEye(eye mgl32.Vec3) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.script().eye = eye
}

func (cc *cameraControllerImpl) SetScriptLookat(lookat mgl32.Vec3) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.script().lookat = lookat
}

func (cc *cameraControllerImpl) SetScroll(enabled bool) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.scroll = enabled
}

func (cc *cameraControllerImpl) Scroll() bool {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.scroll
}

func (cc *cameraControllerImpl) SetInvertX(invert bool) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.invertX = invert
}

func (cc *cameraControllerImpl) InvertX() bool {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.invertX
}

func (cc *cameraControllerImpl) SetInvertY(invert bool) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.invertY = invert
}

func (cc *cameraControllerImpl) InvertY() bool {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.invertY
}

func (cc *cameraControllerImpl) SetEffectsEnabled(enabled bool) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.effectsEnabled = enabled
}

func (cc *cameraControllerImpl) EffectsEnabled() bool {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.effectsEnabled
}

func (cc *cameraControllerImpl) MotorTurn() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.motorTurn
}

func (cc *cameraControllerImpl) ClassifyMousePosition(pos mgl32.Vec2) CursorKind {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.classify(pos)
}

func (cc *cameraControllerImpl) SetTuning(t Tuning) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.tuning = t
}

func (cc *cameraControllerImpl) Tuning() Tuning {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.tuning
}

// view returns the actual view with the effect offset applied. Caller must hold the mutex.
func (cc *cameraControllerImpl) view() View {
	return View{
		Eye:    cc.actual.Eye.Add(cc.effect.offset),
		Lookat: cc.actual.Lookat.Add(cc.effect.offset),
	}
}

// resetNamespaces drops every mode namespace and all transient animation state, keeping the
// active mode. Caller must hold the mutex.
func (cc *cameraControllerImpl) resetNamespaces() {
	prior := ModeUndefined
	if s, ok := cc.active.(*visitState); ok {
		prior = s.prior
	}
	clear(cc.states)
	cc.centering.abort()
	cc.effect.flush()
	cc.drag = drag{}
	cc.motorTurn = 0
	cc.active = cc.stateFor(cc.mode)
	if s, ok := cc.active.(*visitState); ok {
		s.prior = prior
	}
}

// sameObject compares bindings by identity without requiring comparable dynamic types.
func sameObject(a, b Object) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.ID() == b.ID()
}
