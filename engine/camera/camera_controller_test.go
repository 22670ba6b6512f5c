package camera

import (
	"fmt"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

var allModes = []Mode{
	ModeUndefined, ModeFree, ModeEdit, ModeOnBoard, ModeBack, ModeFixed, ModeExplosion,
	ModeScript, ModeInfo, ModeVisit, ModeDialog, ModePlane,
}

// TestCameraController_SnapWithoutSmoothing tests that one frame with SmoothNone puts the
// actual view on the final view in every mode.
func TestCameraController_SnapWithoutSmoothing(t *testing.T) {
	for _, m := range allModes {
		t.Run(m.String(), func(t *testing.T) {
			obj := &fakeObject{id: 1, pos: mgl32.Vec3{5, 0, 5}, yaw: 0.4}
			cc := NewCameraController(
				WithObject(obj),
				WithTerrain(flatTerrain(0)),
				WithSmoothing(SmoothNone),
				WithView(mgl32.Vec3{100, 80, -100}, mgl32.Vec3{0, 0, 0}),
			)
			cc.SetScriptEye(mgl32.Vec3{1, 2, 3})
			cc.SetScriptLookat(mgl32.Vec3{4, 5, 6})
			cc.SetMode(m)
			cc.Update(FrameEvent{DeltaTime: 1.0 / 60})

			actual, final := cc.ActualView(), cc.FinalView()
			if actual != final {
				t.Errorf("Expected actual == final in %s, got %v vs %v", m, actual, final)
			}
		})
	}
}

// TestCameraController_SmoothingConverges tests that Normal and Hard smoothing converge
// monotonically and that Hard needs fewer frames.
func TestCameraController_SmoothingConverges(t *testing.T) {
	frames := func(s Smoothing) int {
		obj := &fakeObject{id: 1}
		cc := NewCameraController(WithObject(obj), WithTerrain(flatTerrain(0)), WithMode(ModeFixed), WithSmoothing(SmoothNone))
		cc.Update(FrameEvent{DeltaTime: 1.0 / 60})
		final := cc.FinalView()
		cc.Init(final.Eye.Add(mgl32.Vec3{10, 0, 0}), final.Lookat, 0)
		cc.SetSmoothing(s)

		prev := float32(math.MaxFloat32)
		for i := 1; i <= 2000; i++ {
			cc.Update(FrameEvent{DeltaTime: 1.0 / 60})
			d := cc.ActualView().Eye.Sub(cc.FinalView().Eye).Len()
			if d > prev {
				t.Fatalf("Expected non-increasing distance for %s, got %v after %v at frame %d", s, d, prev, i)
			}
			prev = d
			if d == 0 {
				return i
			}
		}
		t.Fatalf("Expected %s to converge within 2000 frames", s)
		return 0
	}

	normal := frames(SmoothNormal)
	hard := frames(SmoothHard)
	if hard >= normal {
		t.Errorf("Expected Hard to converge in fewer frames than Normal, got hard=%d normal=%d", hard, normal)
	}
}

// TestCameraController_InitDelayUsesSpecialRate tests that the glide after Init is slower than
// Normal smoothing.
func TestCameraController_InitDelayUsesSpecialRate(t *testing.T) {
	obj := &fakeObject{id: 1}
	run := func(delay float32) float32 {
		cc := NewCameraController(WithObject(obj), WithMode(ModeFixed), WithSmoothing(SmoothNone))
		cc.Update(FrameEvent{DeltaTime: 0.1})
		final := cc.FinalView()
		cc.SetSmoothing(SmoothNormal)
		cc.Init(final.Eye.Add(mgl32.Vec3{0, 0, 20}), final.Lookat, delay)
		cc.Update(FrameEvent{DeltaTime: 0.1})
		return cc.ActualView().Eye.Sub(cc.FinalView().Eye).Len()
	}
	if glide, normal := run(5), run(0); glide <= normal {
		t.Errorf("Expected remaining distance with delay > without, got %v <= %v", glide, normal)
	}
}

// TestCameraController_Centering tests the Starting -> Holding -> Stopping -> Idle sequence and
// exact end values.
func TestCameraController_Centering(t *testing.T) {
	obj := &fakeObject{id: 7}
	cc := NewCameraController(WithObject(obj), WithMode(ModeBack))

	if !cc.StartCentering(obj, 0.5, 0.1, 20, 2.0) {
		t.Fatal("Expected StartCentering to succeed in Back mode")
	}
	if cc.CenteringPhase() != CenteringStarting {
		t.Errorf("Expected phase starting, got %s", cc.CenteringPhase())
	}

	step(cc, 105, 1.0/60)
	if cc.CenteringPhase() != CenteringStarting {
		t.Errorf("Expected phase starting after 1.75s, got %s", cc.CenteringPhase())
	}
	step(cc, 15, 1.0/60)
	if cc.CenteringPhase() != CenteringHolding {
		t.Fatalf("Expected phase holding after 2.0s, got %s", cc.CenteringPhase())
	}
	h, v, d := cc.CenteringState()
	if h != 0.5 || v != 0.1 || d != 20 {
		t.Errorf("Expected centering values (0.5, 0.1, 20), got (%v, %v, %v)", h, v, d)
	}

	other := &fakeObject{id: 8}
	if cc.StartCentering(other, 0, 0, 10, 1) {
		t.Error("Expected StartCentering for a different object to fail while holding")
	}
	if cc.StopCentering(other, 1) {
		t.Error("Expected StopCentering for a different object to fail")
	}

	if !cc.StopCentering(obj, 1.0) {
		t.Fatal("Expected StopCentering to succeed")
	}
	if cc.CenteringPhase() != CenteringStopping {
		t.Errorf("Expected phase stopping, got %s", cc.CenteringPhase())
	}
	step(cc, 60, 1.0/60)
	if cc.CenteringPhase() != CenteringIdle {
		t.Errorf("Expected phase idle, got %s", cc.CenteringPhase())
	}
	h, v, d = cc.CenteringState()
	if h != 0 || v != 0 || d != DefaultTuning().BackDistance {
		t.Errorf("Expected values restored to (0, 0, %v), got (%v, %v, %v)", DefaultTuning().BackDistance, h, v, d)
	}

	if !cc.StartCentering(other, 0, 0, 10, 1) {
		t.Error("Expected StartCentering for a new object to succeed once stopped")
	}
	cc.AbortCentering()
	if cc.CenteringPhase() != CenteringIdle {
		t.Errorf("Expected phase idle after abort, got %s", cc.CenteringPhase())
	}
}

// TestCameraController_CenteringFrameRates tests that centering lands exactly on its end values
// after its duration at common frame rates.
func TestCameraController_CenteringFrameRates(t *testing.T) {
	for _, hz := range []int{24, 30, 60, 75, 144, 240} {
		t.Run(fmt.Sprintf("%dHz", hz), func(t *testing.T) {
			obj := &fakeObject{id: 7}
			cc := NewCameraController(WithObject(obj), WithMode(ModeBack))
			cc.StartCentering(obj, 0.5, 0.1, 20, 2.0)

			step(cc, 2*hz, 1/float32(hz))
			if cc.CenteringPhase() != CenteringHolding {
				t.Fatalf("Expected phase holding after 2.0s, got %s", cc.CenteringPhase())
			}
			h, v, d := cc.CenteringState()
			if h != 0.5 || v != 0.1 || d != 20 {
				t.Errorf("Expected centering values (0.5, 0.1, 20), got (%v, %v, %v)", h, v, d)
			}
		})
	}
}

// TestCameraController_CenteringRejected tests the modes and bindings that refuse centering.
func TestCameraController_CenteringRejected(t *testing.T) {
	obj := &fakeObject{id: 1}

	free := NewCameraController(WithObject(obj), WithMode(ModeFree))
	if free.StartCentering(obj, 0.5, 0.1, 20, 1) {
		t.Error("Expected StartCentering to fail in Free mode")
	}

	unbound := NewCameraController(WithMode(ModeBack))
	if unbound.StartCentering(obj, 0.5, 0.1, 20, 1) {
		t.Error("Expected StartCentering to fail while unbound")
	}

	cc := NewCameraController(WithObject(obj), WithMode(ModeFixed))
	cc.StartCentering(obj, 1, 0.2, 30, 1)
	cc.SetMode(ModeBack)
	if cc.CenteringPhase() != CenteringIdle {
		t.Errorf("Expected mode switch to abort centering, got %s", cc.CenteringPhase())
	}
}

// TestCameraController_VisitRestoresMode tests that StopVisit returns to the prior mode with
// its parameters untouched.
func TestCameraController_VisitRestoresMode(t *testing.T) {
	obj := &fakeObject{id: 1}
	cc := NewCameraController(WithObject(obj), WithTerrain(flatTerrain(0)), WithMode(ModeBack))
	cc.SetDistance(42)
	cc.SetRemotePan(0.3)

	cc.StartVisit(mgl32.Vec3{50, 0, 50}, 60)
	if cc.Mode() != ModeVisit {
		t.Fatalf("Expected visit mode, got %s", cc.Mode())
	}
	if cc.Distance() != 60 {
		t.Errorf("Expected visit distance 60, got %v", cc.Distance())
	}

	for i := 1; i <= 20; i++ {
		res := cc.Update(FrameEvent{DeltaTime: 0.5, Input: Input{WheelDelta: 1}})
		if res.VisitComplete != (i == 20) {
			t.Errorf("Expected VisitComplete=%v at frame %d, got %v", i == 20, i, res.VisitComplete)
		}
	}

	cc.StopVisit()
	if cc.Mode() != ModeBack {
		t.Errorf("Expected back mode restored, got %s", cc.Mode())
	}
	if cc.Distance() != 42 {
		t.Errorf("Expected back distance 42, got %v", cc.Distance())
	}
	if cc.RemotePan() != 0.3 {
		t.Errorf("Expected remote pan 0.3, got %v", cc.RemotePan())
	}

	cc.StopVisit()
	if cc.Mode() != ModeBack {
		t.Errorf("Expected StopVisit outside visit to be a no-op, got %s", cc.Mode())
	}
}

// TestCameraController_VisitOrbitsGoal tests that the visit eye stays at the orbit distance and
// looks at the goal.
func TestCameraController_VisitOrbitsGoal(t *testing.T) {
	goal := mgl32.Vec3{10, 0, -10}
	cc := NewCameraController(WithSmoothing(SmoothNone), WithView(mgl32.Vec3{0, 30, 0}, goal))
	cc.StartVisit(goal, 40)
	res := step(cc, 10, 0.1)
	if res.View.Lookat != goal {
		t.Errorf("Expected look-at %v, got %v", goal, res.View.Lookat)
	}
	if d := res.View.Eye.Sub(goal).Len(); !near(d, 40, 1e-3) {
		t.Errorf("Expected orbit distance 40, got %v", d)
	}
}

// TestCameraController_ScriptInterruptsVisit tests that a script override during a visit hands
// back the same visit, and that the visit still returns to the mode it started from.
func TestCameraController_ScriptInterruptsVisit(t *testing.T) {
	obj := &fakeObject{id: 1}
	cc := NewCameraController(WithObject(obj), WithTerrain(flatTerrain(0)), WithMode(ModeBack))
	cc.StartVisit(mgl32.Vec3{50, 0, 50}, 40)
	step(cc, 4, 0.5)

	cc.SetMode(ModeScript)
	step(cc, 3, 0.5)
	cc.SetMode(ModeVisit)
	if cc.Distance() != 40 {
		t.Errorf("Expected visit distance 40 after the script, got %v", cc.Distance())
	}

	var done bool
	for i := 0; i < 40 && !done; i++ {
		done = cc.Update(FrameEvent{DeltaTime: 0.5}).VisitComplete
	}
	if !done {
		t.Fatal("Expected the resumed visit to complete")
	}
	cc.StopVisit()
	if cc.Mode() != ModeBack {
		t.Errorf("Expected back mode restored, got %s", cc.Mode())
	}
}

// TestCameraController_VisitFromScript tests that a visit started under a script override
// returns to the mode the script replaced.
func TestCameraController_VisitFromScript(t *testing.T) {
	obj := &fakeObject{id: 1}
	cc := NewCameraController(WithObject(obj), WithMode(ModeFixed))
	cc.SetMode(ModeScript)
	cc.StartVisit(mgl32.Vec3{0, 0, 0}, 30)
	cc.StopVisit()
	if cc.Mode() != ModeFixed {
		t.Errorf("Expected fixed mode restored, got %s", cc.Mode())
	}

	cc.SetMode(ModeScript)
	cc.SetMode(ModeBack)
	cc.SetMode(ModeVisit)
	if cc.Distance() != DefaultTuning().VisitMinDistance {
		t.Errorf("Expected a fresh visit at %v, got %v", DefaultTuning().VisitMinDistance, cc.Distance())
	}
}

// TestCameraController_VisitKeepsExplosionView tests that returning from a visit to Explosion
// restores the view held before the visit.
func TestCameraController_VisitKeepsExplosionView(t *testing.T) {
	held := View{Eye: mgl32.Vec3{20, 15, -5}, Lookat: mgl32.Vec3{0, 0, 0}}
	cc := NewCameraController(
		WithSmoothing(SmoothNone),
		WithView(held.Eye, held.Lookat),
		WithMode(ModeExplosion),
	)
	step(cc, 1, 0.1)
	if got := cc.FinalView(); got != held {
		t.Fatalf("Expected explosion view %v, got %v", held, got)
	}

	cc.StartVisit(mgl32.Vec3{100, 0, 100}, 40)
	step(cc, 10, 0.25)
	cc.StopVisit()
	if cc.Mode() != ModeExplosion {
		t.Fatalf("Expected explosion mode restored, got %s", cc.Mode())
	}
	step(cc, 1, 0.1)
	if got := cc.FinalView(); got != held {
		t.Errorf("Expected explosion view %v after the visit, got %v", held, got)
	}

	cc.SetMode(ModeFree)
	cc.Init(mgl32.Vec3{-30, 10, 30}, mgl32.Vec3{-30, 0, 0}, 0)
	step(cc, 1, 0.1)
	cc.SetMode(ModeExplosion)
	step(cc, 1, 0.1)
	if got := cc.FinalView(); got == held {
		t.Error("Expected a new explosion to capture the current view")
	}
}

// TestCameraController_UnboundSetters tests that setters on an unbound camera store their values
// while frames leave the view alone, and that centering is refused.
func TestCameraController_UnboundSetters(t *testing.T) {
	start := View{Eye: mgl32.Vec3{0, 10, -10}, Lookat: mgl32.Vec3{0, 0, 0}}
	cc := NewCameraController(WithMode(ModeBack), WithSmoothing(SmoothNone), WithView(start.Eye, start.Lookat))

	cc.SetDistance(33)
	cc.SetRemotePan(0.2)
	step(cc, 3, 0.1)
	if cc.Distance() != 33 || cc.RemotePan() != 0.2 {
		t.Errorf("Expected stored (33, 0.2), got (%v, %v)", cc.Distance(), cc.RemotePan())
	}
	if got := cc.FinalView(); got != start {
		t.Errorf("Expected unbound frames to keep %v, got %v", start, got)
	}
	if cc.StartCentering(&fakeObject{id: 3}, 0.1, 0, 10, 1) {
		t.Error("Expected StartCentering to fail while unbound")
	}
}

// TestCameraController_RoundTrip tests that scalar mutators return exactly the value set.
func TestCameraController_RoundTrip(t *testing.T) {
	obj := &fakeObject{id: 1}

	tests := []struct {
		name string
		mode Mode
		set  func(CameraController, float32)
		get  func(CameraController) float32
		in   float32
	}{
		{"distance back", ModeBack, CameraController.SetDistance, CameraController.Distance, 3.25},
		{"distance fixed", ModeFixed, CameraController.SetDistance, CameraController.Distance, 512},
		{"distance free", ModeFree, CameraController.SetDistance, CameraController.Distance, 0.1},
		{"distance plane", ModePlane, CameraController.SetDistance, CameraController.Distance, 77},
		{"fix direction", ModeFixed, CameraController.SetFixDirection, CameraController.FixDirection, -7.5},
		{"fix direction v", ModeBack, CameraController.SetFixDirectionV, CameraController.FixDirectionV, 1.2},
		{"edit height", ModeEdit, CameraController.SetEditHeight, CameraController.EditHeight, 0},
		{"back min distance", ModeFree, CameraController.SetBackMinDistance, CameraController.BackMinDistance, 4.5},
		{"remote pan", ModeBack, CameraController.SetRemotePan, CameraController.RemotePan, -2.75},
		{"remote zoom", ModeBack, CameraController.SetRemoteZoom, CameraController.RemoteZoom, 0.375},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cc := NewCameraController(WithObject(obj), WithMode(tt.mode))
			tt.set(cc, tt.in)
			if got := tt.get(cc); got != tt.in {
				t.Errorf("Expected %v, got %v", tt.in, got)
			}
		})
	}
}

// TestCameraController_DistanceFollowsNamespace tests that a distance set outside Fixed mode
// lands in the Fixed namespace.
func TestCameraController_DistanceFollowsNamespace(t *testing.T) {
	cc := NewCameraController(WithObject(&fakeObject{id: 1}), WithMode(ModeFree))
	cc.SetDistance(99)
	cc.SetMode(ModeFixed)
	if cc.Distance() != 99 {
		t.Errorf("Expected fixed distance 99, got %v", cc.Distance())
	}
	cc.SetMode(ModeBack)
	if cc.Distance() != DefaultTuning().BackDistance {
		t.Errorf("Expected back distance %v, got %v", DefaultTuning().BackDistance, cc.Distance())
	}
}

// TestCameraController_RemoteZoomBounds tests the documented [0, 1] clamp and its mapping onto
// the Back distance range.
func TestCameraController_RemoteZoomBounds(t *testing.T) {
	tun := DefaultTuning()
	cc := NewCameraController(WithObject(&fakeObject{id: 1}), WithMode(ModeBack))

	tests := []struct {
		in, zoom, dist float32
	}{
		{-0.5, 0, tun.BackMinDistance},
		{0, 0, tun.BackMinDistance},
		{1, 1, tun.BackMaxDistance},
		{1.5, 1, tun.BackMaxDistance},
	}
	for _, tt := range tests {
		cc.SetRemoteZoom(tt.in)
		if cc.RemoteZoom() != tt.zoom {
			t.Errorf("SetRemoteZoom(%v): expected zoom %v, got %v", tt.in, tt.zoom, cc.RemoteZoom())
		}
		if cc.Distance() != tt.dist {
			t.Errorf("SetRemoteZoom(%v): expected distance %v, got %v", tt.in, tt.dist, cc.Distance())
		}
	}
}

// TestCameraController_WheelClamps tests the wheel against the Back distance range.
func TestCameraController_WheelClamps(t *testing.T) {
	tun := DefaultTuning()
	cc := NewCameraController(WithObject(&fakeObject{id: 1}), WithMode(ModeBack))

	cc.Update(FrameEvent{DeltaTime: 0.01, Input: Input{WheelDelta: 100}})
	if cc.Distance() != tun.BackMinDistance {
		t.Errorf("Expected distance clamped to %v, got %v", tun.BackMinDistance, cc.Distance())
	}
	cc.Update(FrameEvent{DeltaTime: 0.01, Input: Input{WheelDelta: -100}})
	if cc.Distance() != tun.BackMaxDistance {
		t.Errorf("Expected distance clamped to %v, got %v", tun.BackMaxDistance, cc.Distance())
	}
	cc.Update(FrameEvent{DeltaTime: 0.01, Input: Input{WheelDelta: 1}})
	if want := tun.BackMaxDistance - tun.WheelStep; cc.Distance() != want {
		t.Errorf("Expected distance %v, got %v", want, cc.Distance())
	}
}

// TestCameraController_SetModeSameIsNoop tests that re-entering the active mode keeps state.
func TestCameraController_SetModeSameIsNoop(t *testing.T) {
	obj := &fakeObject{id: 1}
	cc := NewCameraController(WithObject(obj), WithMode(ModeBack))
	cc.StartCentering(obj, 0.5, 0, 20, 1)
	cc.SetMode(ModeBack)
	if cc.CenteringPhase() != CenteringStarting {
		t.Errorf("Expected centering to survive SetMode(current), got %s", cc.CenteringPhase())
	}
}

// TestCameraController_SetObjectResets tests that binding a new object resets namespaces but
// keeps the mode, and that rebinding the same object does not.
func TestCameraController_SetObjectResets(t *testing.T) {
	a := &fakeObject{id: 1}
	cc := NewCameraController(WithObject(a), WithMode(ModeBack))
	cc.SetDistance(55)

	cc.SetObject(&fakeObject{id: 1, pos: mgl32.Vec3{1, 1, 1}})
	if cc.Distance() != 55 {
		t.Errorf("Expected same object to keep distance 55, got %v", cc.Distance())
	}

	cc.SetObject(&fakeObject{id: 2})
	if cc.Mode() != ModeBack {
		t.Errorf("Expected mode kept, got %s", cc.Mode())
	}
	if cc.Distance() != DefaultTuning().BackDistance {
		t.Errorf("Expected distance reset to %v, got %v", DefaultTuning().BackDistance, cc.Distance())
	}
	if cc.Object().ID() != 2 {
		t.Errorf("Expected object 2, got %d", cc.Object().ID())
	}
}

// TestCameraController_Reset tests the level-load reset.
func TestCameraController_Reset(t *testing.T) {
	cc := NewCameraController(WithObject(&fakeObject{id: 1}), WithMode(ModeFixed))
	cc.SetDistance(12)
	cc.StartOver(OverlayFadeOutWhite, mgl32.Vec3{}, 1)
	cc.Reset()
	if cc.Mode() != ModeUndefined {
		t.Errorf("Expected undefined mode, got %s", cc.Mode())
	}
	if cc.Overlay() != OverlayNone {
		t.Errorf("Expected no overlay, got %s", cc.Overlay())
	}
	cc.SetMode(ModeFixed)
	if cc.Distance() != DefaultTuning().FixedDistance {
		t.Errorf("Expected fixed distance reset to %v, got %v", DefaultTuning().FixedDistance, cc.Distance())
	}
}

// TestCameraController_UnboundIsNoop tests that object modes leave the view untouched while
// unbound.
func TestCameraController_UnboundIsNoop(t *testing.T) {
	eye, lookat := mgl32.Vec3{1, 2, 3}, mgl32.Vec3{4, 5, 6}
	for _, m := range []Mode{ModeEdit, ModeOnBoard, ModeBack, ModeFixed, ModeDialog, ModePlane} {
		cc := NewCameraController(WithView(eye, lookat), WithMode(m))
		res := step(cc, 3, 0.1)
		if res.View.Eye != eye || res.View.Lookat != lookat {
			t.Errorf("Expected %s to keep the view while unbound, got %v", m, res.View)
		}
	}
}

// TestCameraController_InvalidDeltaTime tests that negative and NaN frame times do not move
// the camera.
func TestCameraController_InvalidDeltaTime(t *testing.T) {
	cc := NewCameraController(WithObject(&fakeObject{id: 1}), WithMode(ModeFixed), WithSmoothing(SmoothNormal))
	before := cc.ActualView()
	cc.Update(FrameEvent{DeltaTime: -1})
	cc.Update(FrameEvent{DeltaTime: float32(math.NaN())})
	if cc.ActualView() != before {
		t.Errorf("Expected actual view unchanged, got %v want %v", cc.ActualView(), before)
	}
}

// TestCameraController_OnBoard tests the cockpit anchor and the absence of smoothing.
func TestCameraController_OnBoard(t *testing.T) {
	obj := &fakeObject{id: 1, pos: mgl32.Vec3{10, 0, 0}}
	cc := NewCameraController(WithObject(obj), WithMode(ModeOnBoard), WithSmoothing(SmoothSpecial))
	res := cc.Update(FrameEvent{DeltaTime: 1.0 / 60})

	want := mgl32.Vec3{10, 2, 0}
	if res.View.Eye != want {
		t.Errorf("Expected eye %v, got %v", want, res.View.Eye)
	}
	if res.View.Lookat.Z() <= res.View.Eye.Z() {
		t.Errorf("Expected look-at ahead of the eye along +Z, got %v", res.View.Lookat)
	}
}

// TestCameraController_MotorTurn tests that horizontal edge scroll in OnBoard mode becomes a
// turn request.
func TestCameraController_MotorTurn(t *testing.T) {
	cc := NewCameraController(WithObject(&fakeObject{id: 1}), WithMode(ModeOnBoard))
	res := cc.Update(FrameEvent{DeltaTime: 0.1, Input: Input{MousePos: mgl32.Vec2{0, 0.5}, MouseInside: true}})
	if res.MotorTurn != -1 {
		t.Errorf("Expected motor turn -1, got %v", res.MotorTurn)
	}
	if cc.MotorTurn() != -1 {
		t.Errorf("Expected MotorTurn() -1, got %v", cc.MotorTurn())
	}

	cc.SetInvertX(true)
	res = cc.Update(FrameEvent{DeltaTime: 0.1, Input: Input{MousePos: mgl32.Vec2{0, 0.5}, MouseInside: true}})
	if res.MotorTurn != 1 {
		t.Errorf("Expected inverted motor turn 1, got %v", res.MotorTurn)
	}
}

// TestCameraController_EdgeScrollBack tests that edge scrolling accumulates yaw in Back mode
// and respects the scroll toggle.
func TestCameraController_EdgeScrollBack(t *testing.T) {
	obj := &fakeObject{id: 1}
	cc := NewCameraController(WithObject(obj), WithMode(ModeBack))
	right := Input{MousePos: mgl32.Vec2{1, 0.5}, MouseInside: true}

	cc.Update(FrameEvent{DeltaTime: 0.1, Input: right})
	s := impl(cc).active.(*backState)
	if want := DefaultTuning().ScrollSpeed * 0.1; !near(s.addH, want, 1e-5) {
		t.Errorf("Expected addH %v, got %v", want, s.addH)
	}

	cc.SetScroll(false)
	before := s.addH
	cc.Update(FrameEvent{DeltaTime: 0.1, Input: right})
	if s.addH != before {
		t.Errorf("Expected no scroll while disabled, got %v want %v", s.addH, before)
	}
}

// TestCameraController_DragCommitsBaseline tests that a right-button drag rotates the free view
// relative to the press point and becomes the new baseline on release.
func TestCameraController_DragCommitsBaseline(t *testing.T) {
	cc := NewCameraController(WithMode(ModeFree), WithSmoothing(SmoothNone))
	s := impl(cc).active.(*freeState)
	start := s.dirH

	press := Input{MousePos: mgl32.Vec2{0.5, 0.5}, MouseInside: true, RightDown: true}
	cc.Update(FrameEvent{DeltaTime: 0.01, Input: press})
	if cc.ClassifyMousePosition(press.MousePos) != CursorMove {
		t.Errorf("Expected move cursor while dragging, got %s", cc.ClassifyMousePosition(press.MousePos))
	}

	moved := press
	moved.MousePos = mgl32.Vec2{0.6, 0.5}
	res := cc.Update(FrameEvent{DeltaTime: 0.01, Input: moved})
	if res.Cursor != CursorMove {
		t.Errorf("Expected move cursor in frame result, got %s", res.Cursor)
	}
	if s.dirH != start {
		t.Errorf("Expected baseline unchanged during drag, got %v want %v", s.dirH, start)
	}

	released := moved
	released.RightDown = false
	cc.Update(FrameEvent{DeltaTime: 0.01, Input: released})
	want := start + 0.1*DefaultTuning().DragSensitivity
	if !near(s.dirH, want, 1e-4) {
		t.Errorf("Expected baseline %v after release, got %v", want, s.dirH)
	}
	if impl(cc).drag.active {
		t.Error("Expected drag released")
	}
}

// TestCameraController_FreeMove tests that free flight moves along the heading and keeps the
// height above terrain.
func TestCameraController_FreeMove(t *testing.T) {
	cc := NewCameraController(WithTerrain(flatTerrain(10)), WithMode(ModeFree), WithSmoothing(SmoothNone))
	res := cc.Update(FrameEvent{DeltaTime: 1, Input: Input{Move: mgl32.Vec2{0, 1}}})
	tun := DefaultTuning()
	if !near(res.View.Eye.Z(), tun.FreeSpeed, 1e-4) {
		t.Errorf("Expected eye z %v, got %v", tun.FreeSpeed, res.View.Eye.Z())
	}
	if res.View.Eye.Y() < 10+tun.GroundClearance {
		t.Errorf("Expected eye above ground clearance, got %v", res.View.Eye.Y())
	}
}

// TestCameraController_Plane tests the top-down placement above terrain.
func TestCameraController_Plane(t *testing.T) {
	obj := &fakeObject{id: 1, pos: mgl32.Vec3{3, 50, 4}}
	cc := NewCameraController(WithObject(obj), WithTerrain(flatTerrain(5)), WithMode(ModePlane), WithSmoothing(SmoothNone))
	res := cc.Update(FrameEvent{DeltaTime: 0.1})
	tun := DefaultTuning()
	if res.View.Eye.Y() != 5+tun.PlaneHeight || res.View.Eye.X() != 3 {
		t.Errorf("Expected eye at x=3 y=%v, got %v", 5+tun.PlaneHeight, res.View.Eye)
	}
	if res.View.Lookat != (mgl32.Vec3{3, 5, 4}) {
		t.Errorf("Expected look-at on the ground below the object, got %v", res.View.Lookat)
	}
}

// TestCameraController_ExplosionFreezes tests that Explosion ignores object movement.
func TestCameraController_ExplosionFreezes(t *testing.T) {
	obj := &fakeObject{id: 1}
	cc := NewCameraController(WithObject(obj), WithMode(ModeBack), WithSmoothing(SmoothNone))
	cc.Update(FrameEvent{DeltaTime: 0.1})
	held := cc.ActualView()

	cc.SetMode(ModeExplosion)
	obj.pos = mgl32.Vec3{100, 0, 100}
	res := step(cc, 5, 0.1)
	if res.View != held {
		t.Errorf("Expected view held at %v, got %v", held, res.View)
	}
}

// TestCameraController_BackStaysAboveTerrain tests that Back mode lifts the eye over a hill
// behind the object.
func TestCameraController_BackStaysAboveTerrain(t *testing.T) {
	hill := heightFunc(func(x, z float32) float32 {
		if z < -5 {
			return 25
		}
		return 0
	})
	cc := NewCameraController(WithObject(&fakeObject{id: 1}), WithTerrain(hill), WithMode(ModeBack), WithSmoothing(SmoothNone))
	res := cc.Update(FrameEvent{DeltaTime: 0.1})
	eye := res.View.Eye
	if ground := hill(eye.X(), eye.Z()) + DefaultTuning().GroundClearance; eye.Y() < ground {
		t.Errorf("Expected eye above %v, got %v", ground, eye)
	}
}
