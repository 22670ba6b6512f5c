package window

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-cam/common"
	"github.com/Carmen-Shannon/oxy-cam/engine/camera"
	"github.com/go-gl/mathgl/mgl32"
)

// InputState accumulates window events between camera frames. Event handlers run on the window
// thread; Frame runs on the tick loop.
type InputState struct {
	mu        *sync.Mutex
	cursor    mgl32.Vec2 // pixels, origin top-left
	inside    bool
	wheel     float32
	rightDown bool
	keys      map[uint32]bool
}

// NewInputState creates an empty input state. The cursor is assumed inside until told otherwise.
//
// Returns:
//   - *InputState: the input state
func NewInputState() *InputState {
	return &InputState{
		mu:     &sync.Mutex{},
		inside: true,
		keys:   make(map[uint32]bool),
	}
}

// Bind installs the state's handlers as the window's mouse, wheel and key callbacks.
//
// Parameters:
//   - w: the window to listen to
func (s *InputState) Bind(w Window) {
	w.SetMouseMoveCallback(s.OnMouseMove)
	w.SetMouseButtonCallback(s.OnMouseButton)
	w.SetCursorEnterCallback(s.OnCursorEnter)
	w.SetScrollCallback(s.OnScroll)
	w.SetKeyDownCallback(s.OnKeyDown)
	w.SetKeyUpCallback(s.OnKeyUp)
}

func (s *InputState) OnMouseMove(x, y int32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cursor = mgl32.Vec2{float32(x), float32(y)}
}

func (s *InputState) OnMouseButton(button int, pressed bool, x, y int32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cursor = mgl32.Vec2{float32(x), float32(y)}
	if button == common.MouseButtonRight {
		s.rightDown = pressed
	}
}

func (s *InputState) OnCursorEnter(entered bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inside = entered
}

func (s *InputState) OnScroll(delta float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wheel += delta
}

func (s *InputState) OnKeyDown(key uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.keys[key] = true
}

func (s *InputState) OnKeyUp(key uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.keys, key)
}

// KeyDown reports whether key is held.
//
// Parameters:
//   - key: virtual key code
//
// Returns:
//   - bool: true while held
func (s *InputState) KeyDown(key uint32) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.keys[key]
}

// Frame snapshots the state as camera input and consumes the accumulated wheel delta.
// The mouse position is normalized to [0,1] with y pointing up. WASD drive Move, E and Q drive Lift.
// A zero-sized window reports the cursor as outside.
//
// Parameters:
//   - width, height: window client size in the same units as the cursor position
//
// Returns:
//   - camera.Input: the frame input
func (s *InputState) Frame(width, height int) camera.Input {
	s.mu.Lock()
	defer s.mu.Unlock()

	in := camera.Input{
		MouseInside: s.inside,
		WheelDelta:  s.wheel,
		RightDown:   s.rightDown,
		Move: mgl32.Vec2{
			axis(s.keys, common.KeyD, common.KeyA),
			axis(s.keys, common.KeyW, common.KeyS),
		},
		Lift: axis(s.keys, common.KeyE, common.KeyQ),
	}
	if width > 0 && height > 0 {
		in.MousePos = mgl32.Vec2{
			s.cursor.X() / float32(width),
			1 - s.cursor.Y()/float32(height),
		}
	} else {
		in.MouseInside = false
	}
	s.wheel = 0
	return in
}

func axis(keys map[uint32]bool, pos, neg uint32) float32 {
	var v float32
	if keys[pos] {
		v++
	}
	if keys[neg] {
		v--
	}
	return v
}
