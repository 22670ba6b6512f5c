// Package world holds reference implementations of the camera's collaborators: a sampled
// heightfield for ground queries and an entity store with a 2D broadphase for nearby objects.
package world

import (
	"cmp"
	"log"
	"slices"
	"sync"

	"github.com/Carmen-Shannon/oxy-cam/engine/camera"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

const (
	DefaultExtent   = 2048
	DefaultCellSize = 16
)

// World stores game objects as donburi entities and mirrors their footprints into a resolv space
// on the XZ plane. Transform changes reach the broadphase on the next Sync.
type World struct {
	mu       *sync.Mutex
	ecs      donburi.World
	space    *resolv.Space
	min      mgl32.Vec2
	width    int
	depth    int
	cellSize int
	nextID   uint64
	entities map[uint64]donburi.Entity
}

var _ camera.ObjectQuery = &World{}

// WorldOption configures a World.
type WorldOption func(*World)

// WithBounds sets the XZ area covered by the broadphase. Objects outside it are never returned
// by Nearby.
//
// Parameters:
//   - minX, minZ: lower corner
//   - width, depth: extent along X and Z
//
// Returns:
//   - WorldOption: option function
func WithBounds(minX, minZ float32, width, depth int) WorldOption {
	return func(w *World) {
		w.min = mgl32.Vec2{minX, minZ}
		w.width = width
		w.depth = depth
	}
}

// WithCellSize sets the broadphase cell edge length.
//
// Parameters:
//   - size: cell size in world units
//
// Returns:
//   - WorldOption: option function
func WithCellSize(size int) WorldOption {
	return func(w *World) {
		w.cellSize = size
	}
}

// NewWorld creates an empty world centered on the origin unless WithBounds says otherwise.
//
// Parameters:
//   - options: optional configuration
//
// Returns:
//   - *World: the world
func NewWorld(options ...WorldOption) *World {
	w := &World{
		mu:       &sync.Mutex{},
		ecs:      donburi.NewWorld(),
		min:      mgl32.Vec2{-DefaultExtent / 2, -DefaultExtent / 2},
		width:    DefaultExtent,
		depth:    DefaultExtent,
		cellSize: DefaultCellSize,
		entities: make(map[uint64]donburi.Entity),
	}
	for _, opt := range options {
		opt(w)
	}
	if w.cellSize <= 0 {
		w.cellSize = DefaultCellSize
	}
	w.space = resolv.NewSpace(w.width, w.depth, w.cellSize, w.cellSize)
	return w
}

// Spawn creates a game object and registers its footprint.
//
// Parameters:
//   - options: initial placement and body
//
// Returns:
//   - GameObject: the new object
func (w *World) Spawn(options ...GameObjectBuilderOption) GameObject {
	spec := defaultGameObjectSpec()
	for _, opt := range options {
		opt(&spec)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	w.nextID++
	id := w.nextID

	entity := w.ecs.Create(Transform, Body, Collider)
	entry := w.ecs.Entry(entity)
	Transform.Set(entry, &TransformData{
		Position: spec.position,
		Yaw:      spec.yaw,
		Pitch:    spec.pitch,
		Roll:     spec.roll,
	})
	Body.Set(entry, &BodyData{
		ID:        id,
		Radius:    spec.radius,
		Solid:     spec.solid,
		EyeOffset: spec.eyeOffset,
	})

	x, z, size := w.footprint(spec.position, spec.radius)
	proxy := resolv.NewObject(x, z, size, size, tagObject)
	proxy.Data = id
	w.space.Add(proxy)
	Collider.Set(entry, &ColliderData{Object: proxy})

	w.entities[id] = entity
	return &gameObject{id: id, world: w}
}

// Remove deletes obj from the world. Removing an unknown or already removed object is a no-op.
//
// Parameters:
//   - obj: the object to remove
func (w *World) Remove(obj GameObject) {
	if obj == nil {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()

	entry := w.entry(obj.ID())
	if entry == nil {
		return
	}
	if c := Collider.Get(entry); c != nil && c.Object != nil {
		w.space.Remove(c.Object)
	}
	w.ecs.Remove(entry.Entity())
	delete(w.entities, obj.ID())
}

// Lookup returns the live object with the given ID.
//
// Parameters:
//   - id: object ID
//
// Returns:
//   - GameObject: the object
//   - bool: false if no such object exists
func (w *World) Lookup(id uint64) (GameObject, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.entry(id) == nil {
		return nil, false
	}
	return &gameObject{id: id, world: w}, true
}

// Len returns the number of live objects.
//
// Returns:
//   - int: object count
func (w *World) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.entities)
}

// Sync moves every broadphase proxy to its object's current transform and radius.
func (w *World) Sync() {
	w.mu.Lock()
	defer w.mu.Unlock()

	Collider.Each(w.ecs, func(entry *donburi.Entry) {
		t := Transform.Get(entry)
		b := Body.Get(entry)
		c := Collider.Get(entry)
		x, z, size := w.footprint(t.Position, b.Radius)
		c.X, c.Y, c.W, c.H = x, z, size, size
		c.Update()
	})
}

// Nearby returns the solid objects whose bounding spheres come within radius of center,
// ordered by ID.
func (w *World) Nearby(center mgl32.Vec3, radius float32) []camera.Obstacle {
	w.mu.Lock()
	defer w.mu.Unlock()

	x, z, size := w.footprint(center, radius)
	probe := resolv.NewObject(x, z, size, size)
	w.space.Add(probe)
	hit := probe.Check(0, 0, tagObject)
	w.space.Remove(probe)
	if hit == nil {
		return nil
	}

	var out []camera.Obstacle
	seen := make(map[uint64]bool, len(hit.Objects))
	for _, proxy := range hit.Objects {
		id, ok := proxy.Data.(uint64)
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		entry := w.entry(id)
		if entry == nil {
			continue
		}
		b := Body.Get(entry)
		if !b.Solid {
			continue
		}
		pos := Transform.Get(entry).Position
		if pos.Sub(center).Len() > radius+b.Radius {
			continue
		}
		out = append(out, camera.Obstacle{ID: id, Center: pos, Radius: b.Radius})
	}
	slices.SortFunc(out, func(a, b camera.Obstacle) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return out
}

// Close drops every object.
func (w *World) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()

	for id, entity := range w.entities {
		if w.ecs.Valid(entity) {
			entry := w.ecs.Entry(entity)
			if c := Collider.Get(entry); c != nil && c.Object != nil {
				w.space.Remove(c.Object)
			}
			w.ecs.Remove(entity)
		}
		delete(w.entities, id)
	}
	log.Printf("[World] closed")
}

// entry returns the live entry for id, or nil. Caller must hold the mutex.
func (w *World) entry(id uint64) *donburi.Entry {
	entity, ok := w.entities[id]
	if !ok || !w.ecs.Valid(entity) {
		return nil
	}
	return w.ecs.Entry(entity)
}

// footprint converts a sphere on the XZ plane into a square in broadphase space, padded by half
// a unit so that point-sized spheres still occupy a cell.
func (w *World) footprint(center mgl32.Vec3, radius float32) (x, z, size float64) {
	r := float64(max(radius, 0)) + 0.5
	x = float64(center.X()-w.min.X()) - r
	z = float64(center.Z()-w.min.Y()) - r
	return x, z, 2 * r
}
