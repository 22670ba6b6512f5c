package camera

import (
	"math"

	"github.com/Carmen-Shannon/oxy-cam/common"
	"github.com/go-gl/mathgl/mgl32"
)

// overlayProfile is the fixed timing and color of one overlay kind.
type overlayProfile struct {
	color   common.Color
	fadeIn  float32
	fadeOut float32
	near    float32 // attenuation start; 0 means not attenuated
	falloff float32
	flicker bool
}

var overlayProfiles = map[OverlayKind]overlayProfile{
	OverlayBlood:        {color: common.Color{R: 0.8, G: 0.1, B: 0.1, A: 0.6}, fadeIn: 0.4, fadeOut: 0.8, near: 25, falloff: 75},
	OverlayFadeInWhite:  {color: common.Color{R: 1, G: 1, B: 1, A: 1}, fadeOut: 20},
	OverlayFadeOutWhite: {color: common.Color{R: 1, G: 1, B: 1, A: 1}, fadeIn: 6, fadeOut: 100000},
	OverlayFadeOutBlue:  {color: common.Color{R: 0.2, G: 0.4, B: 1, A: 1}, fadeIn: 4, fadeOut: 100000},
	OverlayLightning:    {color: common.Color{R: 0.9, G: 1, B: 1, A: 0.8}, fadeOut: 1, near: 100, falloff: 400, flicker: true},
}

// overlay is the full-screen color layer. It never touches geometry.
type overlay struct {
	kind    OverlayKind
	force   float32
	elapsed float32
	base    common.Color
	color   common.Color
}

func (o *overlay) start(kind OverlayKind, force float32) {
	o.kind = kind
	o.force = force
	o.elapsed = 0
}

func (o *overlay) flush() {
	o.kind = OverlayNone
	o.force = 0
	o.elapsed = 0
	o.color = o.base
}

// intensity returns the layer weight at the current time, 0..1.
func (o *overlay) intensity(p overlayProfile) float32 {
	t := o.elapsed
	if t < p.fadeIn {
		return t / p.fadeIn
	}
	t -= p.fadeIn
	if p.fadeOut <= 0 {
		return 0
	}
	return 1 - common.Clamp(t/p.fadeOut, 0, 1)
}

// overFrame advances the overlay timers. Caller must hold the mutex.
func (cc *cameraControllerImpl) overFrame(dt float32) {
	o := &cc.overlay
	if o.kind == OverlayNone {
		o.color = o.base
		return
	}
	p, ok := overlayProfiles[o.kind]
	if !ok {
		o.flush()
		return
	}
	o.elapsed += dt
	if o.elapsed >= p.fadeIn+p.fadeOut {
		o.flush()
		return
	}
	w := o.intensity(p) * o.force
	if p.flicker {
		w *= 0.6 + 0.4*float32(math.Abs(math.Sin(float64(o.elapsed)*37)))
	}
	o.color = o.base.Lerp(p.color, common.Clamp(w, 0, 1))
}

func (cc *cameraControllerImpl) overlayAttenuation(kind OverlayKind, origin mgl32.Vec3) float32 {
	p := overlayProfiles[kind]
	if p.near <= 0 {
		return 1
	}
	return attenuation(cc.actual.Eye.Sub(origin).Len(), p.near, p.falloff)
}
