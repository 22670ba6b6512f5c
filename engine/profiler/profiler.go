package profiler

import (
	"log"
	"runtime"
	"sync"
	"time"
)

// CameraStats summarizes camera update timings collected since the last report.
type CameraStats struct {
	Updates int
	Avg     time.Duration
	Max     time.Duration
}

// Profiler tracks frame rate, camera update cost, and memory statistics for performance monitoring.
// Outputs stats to the log at a configurable interval.
// Tick runs on the render goroutine while ObserveCameraUpdate runs on the tick goroutine.
type Profiler struct {
	mu *sync.Mutex

	camUpdates int
	camTotal   time.Duration
	camMax     time.Duration

	frameCount     int
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64
}

// NewProfiler creates a new Profiler with default settings.
// Update interval defaults to 1 second.
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler() *Profiler {
	return &Profiler{
		mu:             &sync.Mutex{},
		frameCount:     0,
		lastTime:       time.Now(),
		updateInterval: time.Second,
		memStats:       runtime.MemStats{},
	}
}

// SetInterval changes how often Tick reports. Non-positive values are ignored.
//
// Parameters:
//   - d: the reporting interval
func (p *Profiler) SetInterval(d time.Duration) {
	if d <= 0 {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.updateInterval = d
}

// ObserveCameraUpdate records the duration of one camera controller update.
//
// Parameters:
//   - d: how long the update took
func (p *Profiler) ObserveCameraUpdate(d time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.camUpdates++
	p.camTotal += d
	if d > p.camMax {
		p.camMax = d
	}
}

// CameraStats returns the camera update timings collected since the last report.
//
// Returns:
//   - CameraStats: count, average, and maximum update duration
func (p *Profiler) CameraStats() CameraStats {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cameraStats()
}

// cameraStats builds the current camera summary.
// Caller must hold the mutex.
func (p *Profiler) cameraStats() CameraStats {
	st := CameraStats{Updates: p.camUpdates, Max: p.camMax}
	if p.camUpdates > 0 {
		st.Avg = p.camTotal / time.Duration(p.camUpdates)
	}
	return st
}

// Tick should be called once per frame to track frame timing.
// Logs performance statistics when the update interval has elapsed.
// Statistics include: FPS, heap usage, allocation rate, GC count/pause times, total memory.
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.frameCount++
	currentTime := time.Now()
	elapsed := currentTime.Sub(p.lastTime)

	if elapsed >= p.updateInterval {
		fps := float64(p.frameCount) / elapsed.Seconds()

		runtime.ReadMemStats(&p.memStats)
		// Alloc: Bytes of allocated heap objects (live memory)
		// TotalAlloc: Cumulative bytes allocated for heap objects (increases forever, tracks churn)
		// Sys: Total bytes of memory obtained from the OS (actual process footprint)
		allocMB := float64(p.memStats.Alloc) / 1024 / 1024
		sysMB := float64(p.memStats.Sys) / 1024 / 1024

		// Calculate allocation rate (MB/sec)
		allocDelta := p.memStats.TotalAlloc - p.lastTotalAlloc
		allocRateMB := float64(allocDelta) / 1024 / 1024 / elapsed.Seconds()

		// Calculate GC pause stats (last pause and max recent pause)
		gcCount := p.memStats.NumGC
		var lastPauseUs, maxPauseUs uint64
		if gcCount > 0 {
			// PauseNs is a circular buffer of last 256 GC pauses
			lastPauseUs = p.memStats.PauseNs[(gcCount-1)%256] / 1000

			// Find max pause since last tick
			startIdx := p.lastGCCount
			if gcCount-startIdx > 256 {
				startIdx = gcCount - 256
			}
			for i := startIdx; i < gcCount; i++ {
				pause := p.memStats.PauseNs[i%256] / 1000
				if pause > maxPauseUs {
					maxPauseUs = pause
				}
			}
		}

		cam := p.cameraStats()
		log.Printf("[Profiler] FPS: %.2f | Camera: %d updates (avg: %s, max: %s) | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC: %d (last: %d µs, max: %d µs) | Sys: %.2f MB",
			fps, cam.Updates, cam.Avg, cam.Max, allocMB, allocRateMB, gcCount, lastPauseUs, maxPauseUs, sysMB)

		p.frameCount = 0
		p.lastTime = currentTime
		p.lastGCCount = gcCount
		p.lastTotalAlloc = p.memStats.TotalAlloc
		p.camUpdates = 0
		p.camTotal = 0
		p.camMax = 0
		return true
	}

	return false
}
