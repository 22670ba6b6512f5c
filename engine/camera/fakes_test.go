package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

type fakeObject struct {
	id   uint64
	pos  mgl32.Vec3
	yaw  float32
	tilt float32
}

func (o *fakeObject) ID() uint64 { return o.id }

func (o *fakeObject) Position() mgl32.Vec3 { return o.pos }

func (o *fakeObject) Orientation() (float32, float32, float32) { return o.yaw, o.tilt, 0 }

// heightFunc is a terrain defined by a height function. Collide samples the segment.
type heightFunc func(x, z float32) float32

func (f heightFunc) HeightAt(x, z float32) float32 {
	return f(x, z)
}

func (f heightFunc) Collide(from, to mgl32.Vec3) (mgl32.Vec3, bool) {
	const steps = 64
	for i := 1; i <= steps; i++ {
		p := from.Add(to.Sub(from).Mul(float32(i) / steps))
		if p.Y() < f(p.X(), p.Z()) {
			return p, true
		}
	}
	return mgl32.Vec3{}, false
}

func flatTerrain(h float32) heightFunc {
	return func(x, z float32) float32 { return h }
}

var terrainProfiles = map[string]heightFunc{
	"flat":  flatTerrain(0),
	"slope": func(x, z float32) float32 { return 0.5*x + 0.25*z },
	"bumps": func(x, z float32) float32 {
		return 6 * float32(math.Sin(float64(x)*0.3)*math.Cos(float64(z)*0.2))
	},
	"cliff": func(x, z float32) float32 {
		if z > 10 {
			return 40
		}
		return 0
	},
	"plateau": flatTerrain(100),
}

type fakeObjects []Obstacle

func (f fakeObjects) Nearby(center mgl32.Vec3, radius float32) []Obstacle {
	var out []Obstacle
	for _, o := range f {
		if o.Center.Sub(center).Len() <= radius+o.Radius {
			out = append(out, o)
		}
	}
	return out
}

func impl(cc CameraController) *cameraControllerImpl {
	return cc.(*cameraControllerImpl)
}

func near(a, b, eps float32) bool {
	return float32(math.Abs(float64(a-b))) <= eps
}

// step runs n frames of dt seconds with no input.
func step(cc CameraController, n int, dt float32) FrameResult {
	var res FrameResult
	for range n {
		res = cc.Update(FrameEvent{DeltaTime: dt})
	}
	return res
}
