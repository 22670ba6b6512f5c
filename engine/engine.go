package engine

import (
	"log"
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-cam/common"
	"github.com/Carmen-Shannon/oxy-cam/engine/camera"
	"github.com/Carmen-Shannon/oxy-cam/engine/cutscene"
	"github.com/Carmen-Shannon/oxy-cam/engine/gpu"
	"github.com/Carmen-Shannon/oxy-cam/engine/profiler"
	"github.com/Carmen-Shannon/oxy-cam/engine/window"
	"github.com/Carmen-Shannon/oxy-cam/engine/world"
)

// headlessFrameLimit paces the render loop when no device presents frames.
const headlessFrameLimit = time.Second / 60

// engine implements the Engine interface.
// Coordinates the tick, render, and window threads.
type engine struct {
	tickRateChannel chan time.Duration // Channel for dynamic tick rate updates

	running bool
	wg      sync.WaitGroup

	quitChannel chan struct{}
	quitOnce    sync.Once // Ensures quitChannel is only closed once

	window window.Window
	input  *window.InputState
	device gpu.Device

	// mu guards the camera frame state shared by the tick and render loops.
	mu         *sync.Mutex
	cam        camera.Camera
	uniform    camera.UniformSink
	director   cutscene.Director
	world      *world.World
	background common.Color
	lastResult camera.FrameResult

	profiler         *profiler.Profiler
	profilingEnabled bool

	engineTickRate time.Duration
	tickCallback   func(deltaTime float32)
	renderCallback func(deltaTime float32)
	resultCallback func(result camera.FrameResult)

	renderFrameLimit time.Duration // minimum frame duration; 0 = uncapped
}

// Engine is the main entry point for the engine.
// It orchestrates the camera tick loop, the render loop, and window management.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance, or nil when running headless
	Window() window.Window

	// Camera returns the camera driven by the tick loop.
	//
	// Returns:
	//   - camera.Camera: the camera
	Camera() camera.Camera

	// Controller returns the camera's controller, or nil when the camera has none.
	//
	// Returns:
	//   - camera.CameraController: the controller
	Controller() camera.CameraController

	// Input returns the input state fed to the controller each tick.
	//
	// Returns:
	//   - *window.InputState: the input state
	Input() *window.InputState

	// LastResult returns the controller's output from the most recent tick.
	//
	// Returns:
	//   - camera.FrameResult: the last frame result
	LastResult() camera.FrameResult

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetTickRate sets the engine tick rate in frames per second.
	// The camera is updated once per tick.
	//
	// Parameters:
	//   - fps: target frames per second (defaults to 60 if <= 0)
	SetTickRate(fps float64)

	// SetTickCallback registers the function called each engine tick after the camera update.
	// Use this for game logic that moves the objects the camera follows.
	//
	// Parameters:
	//   - callback: function to call at the configured tick rate, receiving the delta time in seconds
	SetTickCallback(callback func(deltaTime float32))

	// SetResultCallback registers the function that receives each tick's camera frame result.
	// Use this to act on motor turn requests and cursor changes.
	//
	// Parameters:
	//   - callback: function receiving the frame result
	SetResultCallback(callback func(result camera.FrameResult))

	// SetRenderCallback registers the function called each render frame after the uniform upload.
	//
	// Parameters:
	//   - callback: function to call each render frame, receiving the delta time in seconds
	SetRenderCallback(callback func(deltaTime float32))

	// SetRenderFrameLimit sets an optional render frame rate cap in frames per second.
	// Pass 0 to uncap the render loop (default). Without a device an uncapped loop runs at 60.
	//
	// Parameters:
	//   - fps: maximum render frames per second (0 = uncapped)
	SetRenderFrameLimit(fps float64)

	// SetDirector installs the cutscene director stepped each tick while it runs. Pass nil to remove it.
	//
	// Parameters:
	//   - d: the director
	SetDirector(d cutscene.Director)

	// Run starts the tick and render loops and pumps window messages (blocks until the window closes).
	Run()

	// Quit signals all engine goroutines to stop and shuts down the engine.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

// NewEngine creates a new Engine instance with the provided options.
// A camera with a default controller is created when WithCamera is not given.
//
// Parameters:
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		tickRateChannel:  make(chan time.Duration, 1),
		quitChannel:      make(chan struct{}),
		running:          false,
		wg:               sync.WaitGroup{},
		mu:               &sync.Mutex{},
		input:            window.NewInputState(),
		background:       common.Color{R: 0.45, G: 0.6, B: 0.8, A: 1},
		profiler:         profiler.NewProfiler(),
		profilingEnabled: false,
		engineTickRate:   time.Second / 60,
	}

	for _, opt := range options {
		opt(e)
	}

	if e.cam == nil {
		e.cam = camera.NewCamera(camera.WithController(camera.NewCameraController()))
	}

	if e.window != nil {
		e.input.Bind(e.window)
		if h := e.window.Height(); h > 0 {
			e.cam.SetAspect(float32(e.window.Width()) / float32(h))
		}
		e.window.SetResizeCallback(func(width, height int) {
			if e.device != nil {
				e.device.ConfigureSurface(width, height)
			}
			if height > 0 {
				e.cam.SetAspect(float32(width) / float32(height))
			}
		})
	}
	if e.device != nil && e.window != nil {
		e.device.ConfigureSurface(e.window.Width(), e.window.Height())
	}

	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Camera() camera.Camera {
	return e.cam
}

func (e *engine) Controller() camera.CameraController {
	return e.cam.Controller()
}

func (e *engine) Input() *window.InputState {
	return e.input
}

func (e *engine) LastResult() camera.FrameResult {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lastResult
}

func (e *engine) Run() {
	e.running = true
	e.handle()
	if e.window != nil {
		e.window.ProcessMessages()
		e.signalQuit()
	}
	e.wg.Wait()
}

// Quit signals all engine goroutines to stop and shuts down the engine.
// Safe to call multiple times; subsequent calls are no-ops due to sync.Once.
func (e *engine) Quit() {
	e.signalQuit()
}

// signalQuit closes the quit channel to signal all goroutines to exit.
// Uses sync.Once to ensure the channel is only closed once.
func (e *engine) signalQuit() {
	e.quitOnce.Do(func() {
		e.running = false
		close(e.quitChannel)
	})
}

// handle launches the tick and render goroutines.
// Each goroutine is tracked by the engine's WaitGroup.
func (e *engine) handle() {
	e.wg.Add(2)
	go e.handleEngine()
	go e.handleRender()
}

// handleEngine runs the fixed-rate tick loop in its own goroutine.
// Listens for dynamic rate changes via tickRateChannel. Exits when the quit channel is closed.
func (e *engine) handleEngine() {
	defer e.wg.Done()

	ticker := time.NewTicker(e.engineTickRate)
	defer ticker.Stop()

	lastTick := time.Now()

	for {
		select {
		case <-e.quitChannel:
			return
		case <-ticker.C:
			now := time.Now()
			dt := float32(now.Sub(lastTick).Seconds())
			lastTick = now
			e.tick(dt)
		case newRate := <-e.tickRateChannel:
			ticker.Reset(newRate)
			e.engineTickRate = newRate
		}
	}
}

// tick runs one simulation step: cutscene and input feed the camera, then game logic moves the
// objects and the broadphase catches up for the next step.
func (e *engine) tick(dt float32) {
	e.mu.Lock()
	director := e.director
	e.mu.Unlock()
	if director != nil && director.Running() {
		if _, err := director.Step(dt); err != nil {
			log.Printf("[Cutscene] step failed: %v", err)
		}
	}

	var width, height int
	if e.window != nil {
		width, height = e.window.Width(), e.window.Height()
	}
	in := e.input.Frame(width, height)

	result := camera.FrameResult{}
	start := time.Now()
	if cc := e.cam.Controller(); cc != nil {
		result = cc.Update(camera.FrameEvent{DeltaTime: dt, Input: in})
		if result.VisitComplete {
			cc.StopVisit()
		}
	}
	e.cam.Update()
	e.profiler.ObserveCameraUpdate(time.Since(start))

	e.mu.Lock()
	e.lastResult = result
	e.mu.Unlock()

	if e.resultCallback != nil {
		e.resultCallback(result)
	}
	if e.tickCallback != nil {
		e.tickCallback(dt)
	}
	if e.world != nil {
		e.world.Sync()
	}
}

// handleRender runs the uncapped (or frame-limited) render loop in its own goroutine.
// Recovers from panics to avoid crashing the process and signals quit on recovery.
func (e *engine) handleRender() {
	defer e.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			log.Printf("render goroutine recovered from panic: %v", r)
			e.signalQuit()
		}
	}()

	lastRender := time.Now()

	for {
		select {
		case <-e.quitChannel:
			return
		default:
			now := time.Now()
			dt := float32(now.Sub(lastRender).Seconds())
			lastRender = now

			e.render(dt)

			if limit := e.frameLimit(); limit > 0 {
				elapsed := time.Since(lastRender)
				if remaining := limit - elapsed; remaining > 0 {
					time.Sleep(remaining)
				}
			}
		}
	}
}

// frameLimit returns the minimum render frame duration. Without a device nothing paces the
// loop, so it falls back to headlessFrameLimit.
func (e *engine) frameLimit() time.Duration {
	if e.renderFrameLimit == 0 && e.device == nil {
		return headlessFrameLimit
	}
	return e.renderFrameLimit
}

// render publishes the camera uniform and presents one frame.
func (e *engine) render(dt float32) {
	u := e.cam.Uniform()
	if e.uniform != nil {
		e.uniform.Write(&u)
	}
	if e.device != nil {
		overlay := common.Color{
			R: u.OverlayColor[0],
			G: u.OverlayColor[1],
			B: u.OverlayColor[2],
			A: u.OverlayColor[3],
		}
		if err := e.device.Clear(e.background, overlay); err != nil {
			log.Printf("[Engine] frame skipped: %v", err)
		}
	}

	if e.renderCallback != nil {
		e.renderCallback(dt)
	}

	if e.profilingEnabled && e.profiler != nil {
		e.profiler.Tick()
	}
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

// SetTickRate sets the engine tick rate in frames per second.
// If the engine is running, the change takes effect immediately.
func (e *engine) SetTickRate(fps float64) {
	if fps <= 0 {
		fps = 60
	}
	newRate := time.Second / time.Duration(fps)

	if e.running {
		select {
		case e.tickRateChannel <- newRate:
		default:
			// Channel has a pending update, drain and send new value
			select {
			case <-e.tickRateChannel:
			default:
			}
			e.tickRateChannel <- newRate
		}
	} else {
		e.engineTickRate = newRate
	}
}

func (e *engine) SetTickCallback(callback func(deltaTime float32)) {
	e.tickCallback = callback
}

func (e *engine) SetResultCallback(callback func(result camera.FrameResult)) {
	e.resultCallback = callback
}

func (e *engine) SetRenderCallback(callback func(deltaTime float32)) {
	e.renderCallback = callback
}

// SetRenderFrameLimit sets an optional render frame rate cap.
// Pass 0 to uncap the render loop.
func (e *engine) SetRenderFrameLimit(fps float64) {
	if fps <= 0 {
		e.renderFrameLimit = 0
		return
	}
	e.renderFrameLimit = time.Second / time.Duration(fps)
}

func (e *engine) SetDirector(d cutscene.Director) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.director = d
}
