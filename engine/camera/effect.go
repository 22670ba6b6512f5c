package camera

import (
	"math"

	"github.com/Carmen-Shannon/oxy-cam/common"
	"github.com/go-gl/mathgl/mgl32"
)

// effectProfile is the fixed shape of one effect kind.
type effectProfile struct {
	duration  float32
	amplitude float32
	frequency float32 // oscillations per second
	impulse   bool    // single push away from the origin instead of an oscillation
	sustained bool    // constant envelope instead of a linear decay
	global    bool    // not attenuated by distance
}

var effectProfiles = map[EffectKind]effectProfile{
	EffectTerraform: {duration: 2.0, amplitude: 2.0, frequency: 9},
	EffectCrash:     {duration: 0.8, amplitude: 4.0, impulse: true},
	EffectExplosion: {duration: 1.5, amplitude: 6.0, frequency: 7},
	EffectShot:      {duration: 0.4, amplitude: 1.5, impulse: true},
	EffectVibration: {duration: 3.0, amplitude: 0.5, frequency: 20, sustained: true},
	EffectSpleen:    {duration: 2.0, amplitude: 3.0, frequency: 3, global: true},
}

// effect is the additive positional perturbation applied to eye and look-at.
type effect struct {
	kind    EffectKind
	origin  mgl32.Vec3
	force   float32
	elapsed float32
	offset  mgl32.Vec3
}

func (e *effect) start(kind EffectKind, origin mgl32.Vec3, force float32) {
	*e = effect{kind: kind, origin: origin, force: force}
}

func (e *effect) flush() {
	*e = effect{}
}

// effectFrame advances the running effect and recomputes its offset. Caller must hold the mutex.
func (cc *cameraControllerImpl) effectFrame(dt float32) {
	e := &cc.effect
	if e.kind == EffectNone {
		return
	}
	p, ok := effectProfiles[e.kind]
	if !ok || p.duration <= 0 {
		e.flush()
		return
	}
	e.elapsed += dt
	progress := e.elapsed / p.duration
	if progress >= 1 {
		e.flush()
		return
	}
	if cc.mode == ModeVisit {
		e.offset = mgl32.Vec3{}
		return
	}

	force := e.force * p.amplitude
	if !p.global {
		force *= attenuation(cc.actual.Eye.Sub(e.origin).Len(), cc.tuning.EffectNear, cc.tuning.EffectFalloff)
	}

	if p.impulse {
		away := cc.actual.Eye.Sub(e.origin)
		if away.Len() < 1e-6 {
			away = common.WorldUp
		}
		// rises and settles once over the duration
		env := float32(math.Sin(math.Pi*float64(progress))) * (1 - progress)
		e.offset = away.Normalize().Mul(force * env)
		return
	}

	env := 1 - progress
	if p.sustained {
		env = 1
	}
	w := 2 * math.Pi * float64(p.frequency) * float64(e.elapsed)
	e.offset = mgl32.Vec3{
		float32(math.Sin(w)),
		float32(math.Sin(1.3*w + 1)),
		float32(math.Sin(0.7*w + 2)),
	}.Mul(force * env)
}

// attenuation is 1 within near, falling linearly to 0 over falloff.
func attenuation(d, near, falloff float32) float32 {
	if falloff <= 0 {
		if d <= near {
			return 1
		}
		return 0
	}
	return 1 - common.Clamp((d-near)/falloff, 0, 1)
}
