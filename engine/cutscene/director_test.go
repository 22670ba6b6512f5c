package cutscene

import (
	"errors"
	"testing"

	"github.com/Carmen-Shannon/oxy-cam/engine/camera"
	"github.com/d5/tengo/v2"
	"github.com/go-gl/mathgl/mgl32"
)

type stubObject struct {
	pos mgl32.Vec3
}

func (o *stubObject) ID() uint64 { return 7 }

func (o *stubObject) Position() mgl32.Vec3 { return o.pos }

func (o *stubObject) Orientation() (float32, float32, float32) { return 0, 0, 0 }

const orbitScript = `
eye = [focus[0] + 10, focus[1] + 5, focus[2]]
lookat = focus
done = t >= 1.0
`

func newController() camera.CameraController {
	return camera.NewCameraController(
		camera.WithSmoothing(camera.SmoothNone),
		camera.WithObject(&stubObject{pos: mgl32.Vec3{1, 2, 3}}),
		camera.WithMode(camera.ModeBack),
	)
}

// TestDirector_FeedsScriptMode tests that a step switches to Script mode and publishes the outputs.
func TestDirector_FeedsScriptMode(t *testing.T) {
	cc := newController()
	d, err := NewDirector([]byte(orbitScript), cc)
	if err != nil {
		t.Fatalf("NewDirector() error: %v", err)
	}

	d.Start()
	if cc.Mode() != camera.ModeScript {
		t.Fatalf("Mode after Start: got %v, want script", cc.Mode())
	}
	done, err := d.Step(0.25)
	if err != nil {
		t.Fatalf("Step() error: %v", err)
	}
	if done {
		t.Error("Step: expected the cutscene to continue at t=0.25")
	}

	cc.Update(camera.FrameEvent{DeltaTime: 0.016})
	view := cc.FinalView()
	if view.Eye != (mgl32.Vec3{11, 7, 3}) {
		t.Errorf("Eye: got %v, want [11 7 3]", view.Eye)
	}
	if view.Lookat != (mgl32.Vec3{1, 2, 3}) {
		t.Errorf("Lookat: got %v, want [1 2 3]", view.Lookat)
	}
}

// TestDirector_DoneRestoresMode tests that the prior mode comes back once the script reports done.
func TestDirector_DoneRestoresMode(t *testing.T) {
	cc := newController()
	d, err := NewDirector([]byte(orbitScript), cc)
	if err != nil {
		t.Fatalf("NewDirector() error: %v", err)
	}

	d.Start()
	for i := 0; i < 3; i++ {
		if done, err := d.Step(0.25); err != nil || done {
			t.Fatalf("Step %d: done=%v err=%v, want running", i, done, err)
		}
	}
	done, err := d.Step(0.25)
	if err != nil {
		t.Fatalf("Step() error: %v", err)
	}
	if !done {
		t.Error("Step: expected done at t=1")
	}
	if d.Running() {
		t.Error("Running: expected false after done")
	}
	if cc.Mode() != camera.ModeBack {
		t.Errorf("Mode: got %v, want back", cc.Mode())
	}
	if d.Elapsed() != 1 {
		t.Errorf("Elapsed: got %v, want 1", d.Elapsed())
	}
}

// TestDirector_Stop tests that Stop restores the prior mode and that an idle director is inert.
func TestDirector_Stop(t *testing.T) {
	cc := newController()
	d, err := NewDirector([]byte(orbitScript), cc)
	if err != nil {
		t.Fatalf("NewDirector() error: %v", err)
	}

	d.Stop()
	if cc.Mode() != camera.ModeBack {
		t.Errorf("Mode after idle Stop: got %v, want back", cc.Mode())
	}
	if done, err := d.Step(1); !done || err != nil {
		t.Errorf("idle Step: got done=%v err=%v, want done=true err=nil", done, err)
	}

	d.Start()
	d.Stop()
	if cc.Mode() != camera.ModeBack {
		t.Errorf("Mode after Stop: got %v, want back", cc.Mode())
	}
}

// TestDirector_MissingOutput tests that unusable outputs end the cutscene with ErrMissingOutput.
func TestDirector_MissingOutput(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"no eye", `lookat = [0, 0, 0]`},
		{"no lookat", `eye = [0, 0, 0]`},
		{"short array", "eye = [1, 2]\nlookat = [0, 0, 0]"},
		{"not a number", "eye = [1, \"up\", 3]\nlookat = [0, 0, 0]"},
		{"not an array", "eye = 4\nlookat = [0, 0, 0]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cc := newController()
			d, err := NewDirector([]byte(tt.src), cc)
			if err != nil {
				t.Fatalf("NewDirector() error: %v", err)
			}
			d.Start()
			if _, err := d.Step(0.1); !errors.Is(err, ErrMissingOutput) {
				t.Errorf("Step(): got %v, want ErrMissingOutput", err)
			}
			if cc.Mode() != camera.ModeBack {
				t.Errorf("Mode: got %v, want back", cc.Mode())
			}
		})
	}
}

// TestDirector_Modules tests stdlib imports and the module allow-list.
func TestDirector_Modules(t *testing.T) {
	src := []byte(`
math := import("math")
eye = [math.cos(0) * 10, 0, 0]
lookat = [0, 0, 0]
`)
	cc := newController()
	d, err := NewDirector(src, cc)
	if err != nil {
		t.Fatalf("NewDirector() error: %v", err)
	}
	d.Start()
	if _, err := d.Step(0.1); err != nil {
		t.Fatalf("Step() error: %v", err)
	}
	cc.Update(camera.FrameEvent{})
	if got := cc.FinalView().Eye; got != (mgl32.Vec3{10, 0, 0}) {
		t.Errorf("Eye: got %v, want [10 0 0]", got)
	}

	if _, err := NewDirector(src, cc, WithModules("fmt")); err == nil {
		t.Error("NewDirector(): expected a compile error when math is not allowed")
	}
}

// TestNewDirector_Errors tests constructor failures.
func TestNewDirector_Errors(t *testing.T) {
	if _, err := NewDirector([]byte(orbitScript), nil); err == nil {
		t.Error("NewDirector(nil controller): expected an error")
	}
	if _, err := NewDirector([]byte("eye = ["), newController()); err == nil {
		t.Error("NewDirector(syntax error): expected an error")
	}
	if _, err := NewDirector([]byte("eye := [0, 0, 0]"), newController()); err == nil {
		t.Error("NewDirector(redeclared output): expected an error")
	}
}

// TestDirector_ResumesVisit tests that a cutscene played during a visit hands the same visit
// back, and that the visit then returns to the mode it started from.
func TestDirector_ResumesVisit(t *testing.T) {
	cc := newController()
	cc.StartVisit(mgl32.Vec3{50, 0, 50}, 40)
	d, err := NewDirector([]byte(orbitScript), cc)
	if err != nil {
		t.Fatalf("NewDirector() error: %v", err)
	}

	d.Start()
	for i := 0; i < 4 && d.Running(); i++ {
		if _, err := d.Step(0.25); err != nil {
			t.Fatalf("Step() error: %v", err)
		}
	}
	if cc.Mode() != camera.ModeVisit {
		t.Fatalf("Mode after cutscene: got %v, want visit", cc.Mode())
	}
	if cc.Distance() != 40 {
		t.Errorf("Distance after cutscene: got %v, want 40", cc.Distance())
	}

	var complete bool
	for i := 0; i < 100 && !complete; i++ {
		complete = cc.Update(camera.FrameEvent{DeltaTime: 0.25}).VisitComplete
	}
	if !complete {
		t.Fatal("Update: expected the visit to complete")
	}
	cc.StopVisit()
	if cc.Mode() != camera.ModeBack {
		t.Errorf("Mode after StopVisit: got %v, want back", cc.Mode())
	}
}

// TestDeclare_RejectsUnsupported tests that a global tengo cannot hold stops declaration.
func TestDeclare_RejectsUnsupported(t *testing.T) {
	script := tengo.NewScript([]byte("x := 1"))
	if err := declare(script, scriptGlobals()); err != nil {
		t.Fatalf("declare(defaults) error: %v", err)
	}
	err := declare(script, []global{{"ch", make(chan int)}, {"later", 1}})
	if err == nil {
		t.Fatal("declare(chan): expected an error")
	}
	if script.Remove("later") {
		t.Error("declare: expected globals after the failing one to be skipped")
	}
}
