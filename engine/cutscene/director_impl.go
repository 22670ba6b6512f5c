package cutscene

import (
	"context"
	"fmt"
	"log"
	"slices"
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-cam/engine/camera"
	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	inputTime  = "t"
	inputFocus = "focus"
	outputEye  = "eye"
	outputLook = "lookat"
	outputDone = "done"
)

const defaultRunTimeout = 250 * time.Millisecond

type directorImpl struct {
	mu        *sync.Mutex
	cam       camera.CameraController
	compiled  *tengo.Compiled
	modules   []string
	maxAllocs int64
	timeout   time.Duration

	running bool
	elapsed float32
	prior   camera.Mode
}

var _ Director = &directorImpl{}

// NewDirector compiles src and binds it to cam.
//
// Parameters:
//   - src: tengo source
//   - cam: the controller to drive
//   - options: optional configuration
//
// Returns:
//   - Director: the director
//   - error: error if cam is nil or the script does not compile
func NewDirector(src []byte, cam camera.CameraController, options ...DirectorOption) (Director, error) {
	if cam == nil {
		return nil, fmt.Errorf("cutscene: nil camera controller")
	}
	d := &directorImpl{
		mu:        &sync.Mutex{},
		cam:       cam,
		modules:   defaultModules(),
		maxAllocs: -1,
		timeout:   defaultRunTimeout,
	}
	for _, opt := range options {
		opt(d)
	}

	script := tengo.NewScript(src)
	if err := declare(script, scriptGlobals()); err != nil {
		return nil, err
	}
	script.SetImports(stdlib.GetModuleMap(d.modules...))
	script.SetMaxAllocs(d.maxAllocs)

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("cutscene: compile: %w", err)
	}
	d.compiled = compiled
	return d, nil
}

// global is a script variable declared before compilation.
type global struct {
	name  string
	value any
}

// scriptGlobals returns the inputs and outputs every cutscene script sees, at their initial values.
func scriptGlobals() []global {
	return []global{
		{inputTime, 0.0},
		{inputFocus, []any{0.0, 0.0, 0.0}},
		{outputEye, nil},
		{outputLook, nil},
		{outputDone, false},
	}
}

// declare adds globals to script, stopping at the first value tengo cannot convert.
func declare(script *tengo.Script, globals []global) error {
	for _, g := range globals {
		if err := script.Add(g.name, g.value); err != nil {
			return fmt.Errorf("cutscene: declare %s: %w", g.name, err)
		}
	}
	return nil
}

func defaultModules() []string {
	return slices.DeleteFunc(stdlib.AllModuleNames(), func(name string) bool {
		return name == "os"
	})
}

func (d *directorImpl) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.running {
		d.prior = d.cam.Mode()
		d.running = true
	}
	d.elapsed = 0
	d.cam.SetMode(camera.ModeScript)
	log.Printf("[Cutscene] started (restores %s)", d.prior)
}

func (d *directorImpl) Step(dt float32) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.running {
		return true, nil
	}
	if dt > 0 {
		d.elapsed += dt
	}

	eye, lookat, done, err := d.run()
	if err != nil {
		d.finish()
		return true, err
	}
	d.cam.SetScriptEye(eye)
	d.cam.SetScriptLookat(lookat)
	if done {
		d.finish()
		log.Printf("[Cutscene] finished after %.2fs", d.elapsed)
	}
	return done, nil
}

func (d *directorImpl) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.running {
		d.finish()
	}
}

func (d *directorImpl) Running() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.running
}

func (d *directorImpl) Elapsed() float32 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.elapsed
}

func (d *directorImpl) Controller() camera.CameraController {
	return d.cam
}

// finish restores the remembered mode. Caller must hold the mutex.
func (d *directorImpl) finish() {
	d.running = false
	d.cam.SetMode(d.prior)
}

// run executes one pass of the script. Caller must hold the mutex.
func (d *directorImpl) run() (mgl32.Vec3, mgl32.Vec3, bool, error) {
	var focus mgl32.Vec3
	if obj := d.cam.Object(); obj != nil {
		focus = obj.Position()
	}

	inputs := map[string]any{
		inputTime:  float64(d.elapsed),
		inputFocus: []any{float64(focus.X()), float64(focus.Y()), float64(focus.Z())},
		outputEye:  nil,
		outputLook: nil,
		outputDone: false,
	}
	for name, v := range inputs {
		if err := d.compiled.Set(name, v); err != nil {
			return mgl32.Vec3{}, mgl32.Vec3{}, false, fmt.Errorf("cutscene: set %s: %w", name, err)
		}
	}

	ctx := context.Background()
	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}
	if err := d.compiled.RunContext(ctx); err != nil {
		return mgl32.Vec3{}, mgl32.Vec3{}, false, fmt.Errorf("cutscene: run: %w", err)
	}

	eye, err := vec3Output(d.compiled.Get(outputEye))
	if err != nil {
		return mgl32.Vec3{}, mgl32.Vec3{}, false, err
	}
	lookat, err := vec3Output(d.compiled.Get(outputLook))
	if err != nil {
		return mgl32.Vec3{}, mgl32.Vec3{}, false, err
	}
	return eye, lookat, d.compiled.Get(outputDone).Bool(), nil
}

func vec3Output(v *tengo.Variable) (mgl32.Vec3, error) {
	if v.IsUndefined() {
		return mgl32.Vec3{}, fmt.Errorf("%w: %s not assigned", ErrMissingOutput, v.Name())
	}
	arr := v.Array()
	if len(arr) != 3 {
		return mgl32.Vec3{}, fmt.Errorf("%w: %s must be a 3-element array, got %s", ErrMissingOutput, v.Name(), v.ValueType())
	}
	var out mgl32.Vec3
	for i, e := range arr {
		switch n := e.(type) {
		case float64:
			out[i] = float32(n)
		case int64:
			out[i] = float32(n)
		default:
			return mgl32.Vec3{}, fmt.Errorf("%w: %s[%d] is %T, want a number", ErrMissingOutput, v.Name(), i, e)
		}
	}
	return out, nil
}
