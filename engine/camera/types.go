package camera

// Mode selects the per-frame rule that places the eye and the look-at point.
type Mode int

const (
	ModeUndefined Mode = iota // no placement rule, the view stays where it is
	ModeFree                  // free flight driven by operator input
	ModeEdit                  // above the object whose program is being edited
	ModeOnBoard               // inside the bound object's cockpit
	ModeBack                  // behind the bound object
	ModeFixed                 // static offset around the bound object
	ModeExplosion             // frozen where the explosion started
	ModeScript                // eye and look-at supplied by a script
	ModeInfo                  // static framing for information panels
	ModeVisit                 // orbit around a goal position
	ModeDialog                // framing for dialogue
	ModePlane                 // fixed height above terrain, top-down
)

var modeNames = [...]string{
	ModeUndefined: "undefined",
	ModeFree:      "free",
	ModeEdit:      "edit",
	ModeOnBoard:   "onboard",
	ModeBack:      "back",
	ModeFixed:     "fixed",
	ModeExplosion: "explosion",
	ModeScript:    "script",
	ModeInfo:      "info",
	ModeVisit:     "visit",
	ModeDialog:    "dialog",
	ModePlane:     "plane",
}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return "unknown"
	}
	return modeNames[m]
}

// ParseMode returns the Mode with the given name.
//
// Parameters:
//   - name: lower-case mode name as produced by Mode.String
//
// Returns:
//   - Mode: the parsed mode
//   - bool: false if the name is not known
func ParseMode(name string) (Mode, bool) {
	for i, n := range modeNames {
		if n == name {
			return Mode(i), true
		}
	}
	return ModeUndefined, false
}

// Smoothing controls how fast the actual view chases the final view.
type Smoothing int

const (
	SmoothNone    Smoothing = iota // snap
	SmoothNormal                   // regular follow
	SmoothHard                     // faster correction than SmoothNormal
	SmoothSpecial                  // slow glide for short scripted transitions
)

func (s Smoothing) String() string {
	switch s {
	case SmoothNone:
		return "none"
	case SmoothNormal:
		return "normal"
	case SmoothHard:
		return "hard"
	case SmoothSpecial:
		return "special"
	}
	return "unknown"
}

// CenteringPhase is the step of a timed re-centering maneuver.
type CenteringPhase int

const (
	CenteringIdle CenteringPhase = iota
	CenteringStarting
	CenteringHolding
	CenteringStopping
)

func (p CenteringPhase) String() string {
	switch p {
	case CenteringIdle:
		return "idle"
	case CenteringStarting:
		return "starting"
	case CenteringHolding:
		return "holding"
	case CenteringStopping:
		return "stopping"
	}
	return "unknown"
}

// EffectKind is a positional shake applied on top of the computed view.
type EffectKind int

const (
	EffectNone EffectKind = iota
	EffectTerraform
	EffectCrash
	EffectExplosion
	EffectShot
	EffectVibration // vibration during construction
	EffectSpleen    // spleen reactor, not subject to the effects toggle
)

func (k EffectKind) String() string {
	switch k {
	case EffectNone:
		return "none"
	case EffectTerraform:
		return "terraform"
	case EffectCrash:
		return "crash"
	case EffectExplosion:
		return "explosion"
	case EffectShot:
		return "shot"
	case EffectVibration:
		return "vibration"
	case EffectSpleen:
		return "spleen"
	}
	return "unknown"
}

// OverlayKind is a full-screen color layer.
type OverlayKind int

const (
	OverlayNone         OverlayKind = iota
	OverlayBlood                    // red flash
	OverlayFadeInWhite              // white -> nothing
	OverlayFadeOutWhite             // nothing -> white
	OverlayFadeOutBlue              // nothing -> blue
	OverlayLightning                // lightning flash
)

func (k OverlayKind) String() string {
	switch k {
	case OverlayNone:
		return "none"
	case OverlayBlood:
		return "blood"
	case OverlayFadeInWhite:
		return "fade-in-white"
	case OverlayFadeOutWhite:
		return "fade-out-white"
	case OverlayFadeOutBlue:
		return "fade-out-blue"
	case OverlayLightning:
		return "lightning"
	}
	return "unknown"
}

// CursorKind is the cursor shape the UI should show for a screen position.
type CursorKind int

const (
	CursorNormal CursorKind = iota
	CursorMove              // right-button free look in progress
	CursorScrollLeft
	CursorScrollRight
	CursorScrollUp
	CursorScrollDown
)

func (k CursorKind) String() string {
	switch k {
	case CursorNormal:
		return "normal"
	case CursorMove:
		return "move"
	case CursorScrollLeft:
		return "scroll-left"
	case CursorScrollRight:
		return "scroll-right"
	case CursorScrollUp:
		return "scroll-up"
	case CursorScrollDown:
		return "scroll-down"
	}
	return "unknown"
}
