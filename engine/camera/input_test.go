package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// TestClassifyMousePosition tests cursor classification per mode and edge.
func TestClassifyMousePosition(t *testing.T) {
	tests := []struct {
		name   string
		mode   Mode
		scroll bool
		pos    mgl32.Vec2
		want   CursorKind
	}{
		{"back center", ModeBack, true, mgl32.Vec2{0.5, 0.5}, CursorNormal},
		{"back left", ModeBack, true, mgl32.Vec2{0.001, 0.5}, CursorScrollLeft},
		{"back right", ModeBack, true, mgl32.Vec2{0.999, 0.5}, CursorScrollRight},
		{"back bottom", ModeBack, true, mgl32.Vec2{0.5, 0.001}, CursorScrollDown},
		{"back top", ModeBack, true, mgl32.Vec2{0.5, 0.999}, CursorScrollUp},
		{"back corner prefers vertical", ModeBack, true, mgl32.Vec2{0.001, 0.001}, CursorScrollDown},
		{"back margin boundary", ModeBack, true, mgl32.Vec2{0.02, 0.5}, CursorNormal},
		{"fixed top has no vertical", ModeFixed, true, mgl32.Vec2{0.5, 0.999}, CursorNormal},
		{"fixed left", ModeFixed, true, mgl32.Vec2{0, 0.5}, CursorScrollLeft},
		{"onboard right", ModeOnBoard, true, mgl32.Vec2{1, 0.5}, CursorScrollRight},
		{"free top", ModeFree, true, mgl32.Vec2{0.5, 1}, CursorScrollUp},
		{"info never scrolls", ModeInfo, true, mgl32.Vec2{0, 0}, CursorNormal},
		{"script never scrolls", ModeScript, true, mgl32.Vec2{0, 0.5}, CursorNormal},
		{"scroll disabled", ModeBack, false, mgl32.Vec2{0, 0.5}, CursorNormal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cc := NewCameraController(WithObject(&fakeObject{id: 1}), WithMode(tt.mode))
			cc.SetScroll(tt.scroll)
			if got := cc.ClassifyMousePosition(tt.pos); got != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
		})
	}
}

// TestEdgeScroll tests the band mapping including the invert-independent raw values.
func TestEdgeScroll(t *testing.T) {
	tests := []struct {
		pos  mgl32.Vec2
		h, v float32
	}{
		{mgl32.Vec2{0, 0}, -1, -1},
		{mgl32.Vec2{1, 1}, 1, 1},
		{mgl32.Vec2{0.01, 0.5}, -0.5, 0},
		{mgl32.Vec2{0.5, 0.5}, 0, 0},
	}
	for _, tt := range tests {
		h, v := edgeScroll(tt.pos, 0.02)
		if !near(h, tt.h, 1e-5) || !near(v, tt.v, 1e-5) {
			t.Errorf("edgeScroll(%v): expected (%v, %v), got (%v, %v)", tt.pos, tt.h, tt.v, h, v)
		}
	}
	if h, v := edgeScroll(mgl32.Vec2{0, 0}, 0); h != 0 || v != 0 {
		t.Errorf("Expected zero margin to disable scrolling, got (%v, %v)", h, v)
	}
}

// TestInput_OutsideWindowIgnored tests that a cursor outside the window neither scrolls nor
// starts a drag.
func TestInput_OutsideWindowIgnored(t *testing.T) {
	cc := NewCameraController(WithObject(&fakeObject{id: 1}), WithMode(ModeBack))
	cc.Update(FrameEvent{DeltaTime: 0.1, Input: Input{MousePos: mgl32.Vec2{0, 0}, RightDown: true}})
	s := impl(cc).active.(*backState)
	if s.addH != 0 || s.addV != 0 {
		t.Errorf("Expected no scroll, got addH=%v addV=%v", s.addH, s.addV)
	}
	if impl(cc).drag.active {
		t.Error("Expected no drag from outside the window")
	}
}
