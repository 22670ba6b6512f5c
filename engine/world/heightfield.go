package world

import (
	"fmt"
	"log"
	"math"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-cam/common"
	"github.com/Carmen-Shannon/oxy-cam/engine/camera"
	"github.com/go-gl/mathgl/mgl32"
)

// HeightGenerator returns the ground height at a world-space sample position.
type HeightGenerator func(x, z float32) float32

// HeightField is a regular grid of ground samples. Sample (col, row) sits at
// origin + (col, row) * cellSize on the XZ plane. Queries outside the grid clamp to the edge.
type HeightField struct {
	origin   mgl32.Vec2
	cellSize float32
	cols     int
	rows     int
	heights  []float32
	workers  int
}

var _ camera.Terrain = &HeightField{}

// HeightFieldOption configures a HeightField.
type HeightFieldOption func(*HeightField)

// WithOrigin places sample (0, 0) at the given world XZ position.
//
// Parameters:
//   - x, z: world coordinates of the first sample
//
// Returns:
//   - HeightFieldOption: option function
func WithOrigin(x, z float32) HeightFieldOption {
	return func(h *HeightField) {
		h.origin = mgl32.Vec2{x, z}
	}
}

// WithBuildWorkers sets how many workers fill rows in parallel. Defaults to GOMAXPROCS.
//
// Parameters:
//   - n: worker count
//
// Returns:
//   - HeightFieldOption: option function
func WithBuildWorkers(n int) HeightFieldOption {
	return func(h *HeightField) {
		h.workers = n
	}
}

// NewHeightField samples gen over a cols x rows grid. Rows are filled in parallel on a worker pool.
//
// Parameters:
//   - cols, rows: sample counts along X and Z, at least 2 each
//   - cellSize: spacing between samples
//   - gen: height generator
//   - options: optional configuration
//
// Returns:
//   - *HeightField: the built field
//   - error: error if the dimensions are unusable or gen is nil
func NewHeightField(cols, rows int, cellSize float32, gen HeightGenerator, options ...HeightFieldOption) (*HeightField, error) {
	if cols < 2 || rows < 2 {
		return nil, fmt.Errorf("world: heightfield needs at least 2x2 samples, got %dx%d", cols, rows)
	}
	if !(cellSize > 0) {
		return nil, fmt.Errorf("world: heightfield cell size must be positive, got %v", cellSize)
	}
	if gen == nil {
		return nil, fmt.Errorf("world: nil height generator")
	}

	h := &HeightField{
		cellSize: cellSize,
		cols:     cols,
		rows:     rows,
		heights:  make([]float32, cols*rows),
		workers:  runtime.GOMAXPROCS(0),
	}
	for _, opt := range options {
		opt(h)
	}

	start := time.Now()
	pool := worker.NewDynamicWorkerPool(h.workers, rows, time.Second)
	defer pool.Stop()

	var wg sync.WaitGroup
	for r := range rows {
		wg.Add(1)
		row := r
		pool.SubmitTask(worker.Task{
			ID:      row,
			Payload: row,
			Do: func() (any, error) {
				defer wg.Done()
				z := h.origin.Y() + float32(row)*cellSize
				base := row * cols
				for c := range cols {
					h.heights[base+c] = gen(h.origin.X()+float32(c)*cellSize, z)
				}
				return nil, nil
			},
		})
	}
	wg.Wait()

	log.Printf("[World] heightfield %dx%d built in %s", cols, rows, time.Since(start))
	return h, nil
}

// Size returns the sample counts.
//
// Returns:
//   - cols, rows: samples along X and Z
func (h *HeightField) Size() (cols, rows int) {
	return h.cols, h.rows
}

// CellSize returns the sample spacing.
//
// Returns:
//   - float32: spacing in world units
func (h *HeightField) CellSize() float32 {
	return h.cellSize
}

// Sample returns the stored height at a grid index, clamped to the grid.
//
// Parameters:
//   - col, row: grid indices
//
// Returns:
//   - float32: the sample height
func (h *HeightField) Sample(col, row int) float32 {
	col = min(max(col, 0), h.cols-1)
	row = min(max(row, 0), h.rows-1)
	return h.heights[row*h.cols+col]
}

// HeightAt interpolates the four samples around (x, z) bilinearly.
func (h *HeightField) HeightAt(x, z float32) float32 {
	gx := common.Clamp((x-h.origin.X())/h.cellSize, 0, float32(h.cols-1))
	gz := common.Clamp((z-h.origin.Y())/h.cellSize, 0, float32(h.rows-1))

	c0 := int(math.Floor(float64(gx)))
	r0 := int(math.Floor(float64(gz)))
	fx := gx - float32(c0)
	fz := gz - float32(r0)

	h00 := h.Sample(c0, r0)
	h10 := h.Sample(c0+1, r0)
	h01 := h.Sample(c0, r0+1)
	h11 := h.Sample(c0+1, r0+1)

	top := h00 + (h10-h00)*fx
	bottom := h01 + (h11-h01)*fx
	return top + (bottom-top)*fz
}

// Collide marches the segment at half-cell steps and reports the first point below the ground.
// The start point itself is not tested.
func (h *HeightField) Collide(from, to mgl32.Vec3) (mgl32.Vec3, bool) {
	d := to.Sub(from)
	steps := int(math.Ceil(float64(d.Len() / (h.cellSize / 2))))
	if steps < 1 {
		steps = 1
	}
	for i := 1; i <= steps; i++ {
		p := from.Add(d.Mul(float32(i) / float32(steps)))
		if p.Y() < h.HeightAt(p.X(), p.Z()) {
			return p, true
		}
	}
	return mgl32.Vec3{}, false
}
