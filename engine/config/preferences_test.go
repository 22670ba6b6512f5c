package config

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-cam/engine/camera"
	"github.com/quasilyte/gdata/v2"
)

func openTestManager(t *testing.T) *gdata.Manager {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_DATA_HOME", home)
	m, err := gdata.Open(gdata.Config{AppName: "oxy_cam_test"})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return m
}

// TestPreferenceStore_Defaults tests that an empty storage yields the defaults.
func TestPreferenceStore_Defaults(t *testing.T) {
	s := NewPreferenceStore(openTestManager(t))
	if s.Preferences() != DefaultPreferences() {
		t.Errorf("Preferences: got %+v, want %+v", s.Preferences(), DefaultPreferences())
	}
}

// TestPreferenceStore_SaveLoad tests that saved preferences are read back by a new store.
func TestPreferenceStore_SaveLoad(t *testing.T) {
	m := openTestManager(t)
	want := Preferences{Scroll: false, InvertX: true, InvertY: true, Effects: false}

	s := NewPreferenceStore(m)
	s.SetPreferences(want)
	if err := s.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	reloaded := NewPreferenceStore(m)
	if reloaded.Preferences() != want {
		t.Errorf("Preferences: got %+v, want %+v", reloaded.Preferences(), want)
	}
}

// TestPreferenceStore_NilManager tests the in-memory fallback.
func TestPreferenceStore_NilManager(t *testing.T) {
	s := NewPreferenceStore(nil)
	s.SetPreferences(Preferences{InvertX: true})
	if err := s.Save(); err != nil {
		t.Errorf("Save() with nil manager: got %v, want nil", err)
	}
	if err := s.Load(); err != nil {
		t.Errorf("Load() with nil manager: got %v, want nil", err)
	}
	if s.Preferences() != DefaultPreferences() {
		t.Errorf("Preferences after Load: got %+v, want defaults", s.Preferences())
	}
}

// TestPreferenceStore_ApplyCapture tests moving toggles between a store and a controller.
func TestPreferenceStore_ApplyCapture(t *testing.T) {
	s := NewPreferenceStore(nil)
	s.SetPreferences(Preferences{Scroll: false, InvertX: true, InvertY: false, Effects: false})

	cc := camera.NewCameraController()
	s.Apply(cc)
	if cc.Scroll() || !cc.InvertX() || cc.InvertY() || cc.EffectsEnabled() {
		t.Errorf("Apply: got scroll=%v invertX=%v invertY=%v effects=%v", cc.Scroll(), cc.InvertX(), cc.InvertY(), cc.EffectsEnabled())
	}

	cc.SetInvertY(true)
	cc.SetEffectsEnabled(true)
	s.Capture(cc)
	want := Preferences{Scroll: false, InvertX: true, InvertY: true, Effects: true}
	if s.Preferences() != want {
		t.Errorf("Capture: got %+v, want %+v", s.Preferences(), want)
	}
}
