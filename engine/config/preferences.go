package config

import (
	"fmt"
	"log"
	"sync"

	"github.com/Carmen-Shannon/oxy-cam/engine/camera"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	preferencesObject   = "camera"
	preferencesProperty = "preferences"
)

// Preferences are the operator toggles that survive restarts.
type Preferences struct {
	Scroll  bool `yaml:"scroll"`
	InvertX bool `yaml:"invert_x"`
	InvertY bool `yaml:"invert_y"`
	Effects bool `yaml:"effects"`
}

// DefaultPreferences returns scrolling and effects on, no inversion.
//
// Returns:
//   - Preferences: the defaults
func DefaultPreferences() Preferences {
	return Preferences{Scroll: true, Effects: true}
}

// PreferenceStore persists Preferences through gdata as a YAML blob. A nil manager keeps the
// preferences in memory only.
type PreferenceStore struct {
	mu      *sync.Mutex
	manager *gdata.Manager
	prefs   Preferences
}

// OpenPreferences opens the gdata storage for appName and loads the saved preferences.
//
// Parameters:
//   - appName: the application storage name
//
// Returns:
//   - *PreferenceStore: the store
//   - error: error if the storage cannot be opened
func OpenPreferences(appName string) (*PreferenceStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("config: open preferences: %w", err)
	}
	return NewPreferenceStore(m), nil
}

// NewPreferenceStore wraps manager and loads the saved preferences, falling back to the
// defaults when nothing usable is stored.
//
// Parameters:
//   - manager: gdata manager, may be nil
//
// Returns:
//   - *PreferenceStore: the store
func NewPreferenceStore(manager *gdata.Manager) *PreferenceStore {
	s := &PreferenceStore{
		mu:      &sync.Mutex{},
		manager: manager,
		prefs:   DefaultPreferences(),
	}
	if err := s.Load(); err != nil {
		log.Printf("[Config] Warning: failed to load preferences: %v (using defaults)", err)
	}
	return s
}

// Load reads the stored preferences. Missing data resets to the defaults without error.
//
// Returns:
//   - error: error if stored data cannot be read or decoded
func (s *PreferenceStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.prefs = DefaultPreferences()
	if s.manager == nil || !s.manager.ObjectPropExists(preferencesObject, preferencesProperty) {
		return nil
	}
	data, err := s.manager.LoadObjectProp(preferencesObject, preferencesProperty)
	if err != nil {
		return fmt.Errorf("failed to load preferences: %w", err)
	}
	var loaded Preferences
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to unmarshal preferences: %w", err)
	}
	s.prefs = loaded
	return nil
}

// Save writes the current preferences.
//
// Returns:
//   - error: error if encoding or writing fails
func (s *PreferenceStore) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.manager == nil {
		return nil
	}
	data, err := yaml.Marshal(s.prefs)
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}
	if err := s.manager.SaveObjectProp(preferencesObject, preferencesProperty, data); err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}
	return nil
}

// Preferences returns the current preferences.
//
// Returns:
//   - Preferences: the preferences
func (s *PreferenceStore) Preferences() Preferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prefs
}

// SetPreferences replaces the in-memory preferences. Call Save to persist them.
//
// Parameters:
//   - p: the new preferences
func (s *PreferenceStore) SetPreferences(p Preferences) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs = p
}

// Apply pushes the preferences into a controller.
//
// Parameters:
//   - cc: the controller
func (s *PreferenceStore) Apply(cc camera.CameraController) {
	p := s.Preferences()
	cc.SetScroll(p.Scroll)
	cc.SetInvertX(p.InvertX)
	cc.SetInvertY(p.InvertY)
	cc.SetEffectsEnabled(p.Effects)
}

// Capture copies the controller's toggles into the store.
//
// Parameters:
//   - cc: the controller
func (s *PreferenceStore) Capture(cc camera.CameraController) {
	s.SetPreferences(Preferences{
		Scroll:  cc.Scroll(),
		InvertX: cc.InvertX(),
		InvertY: cc.InvertY(),
		Effects: cc.EffectsEnabled(),
	})
}
