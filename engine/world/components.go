package world

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// TransformData is an object's placement.
type TransformData struct {
	Position mgl32.Vec3
	Yaw      float32
	Pitch    float32
	Roll     float32
}

// BodyData is an object's physical extent as seen by the camera.
type BodyData struct {
	ID        uint64
	Radius    float32
	Solid     bool
	EyeOffset mgl32.Vec3
}

// ColliderData ties an object to its broadphase proxy.
type ColliderData struct {
	*resolv.Object
}

var (
	Transform = donburi.NewComponentType[TransformData]()
	Body      = donburi.NewComponentType[BodyData]()
	Collider  = donburi.NewComponentType[ColliderData]()
)

// tagObject marks broadphase proxies owned by a GameObject.
const tagObject = "object"
