package camera

import (
	"fmt"
	"sync"

	"github.com/cogentcore/webgpu/wgpu"
)

// UniformSink receives the camera uniform once per rendered frame.
type UniformSink interface {
	// Write uploads the uniform.
	//
	// Parameters:
	//   - u: the uniform to upload
	Write(u *GPUCameraUniform)
}

// UniformWriter owns the GPU buffer backing CameraUniform and uploads it through the device queue.
type UniformWriter struct {
	mu     *sync.Mutex
	queue  *wgpu.Queue
	buffer *wgpu.Buffer
}

var _ UniformSink = &UniformWriter{}

// NewUniformWriter allocates the uniform buffer on device.
//
// Parameters:
//   - device: the WebGPU device
//   - label: debug label for the buffer
//
// Returns:
//   - *UniformWriter: the writer
//   - error: error if the buffer could not be created
func NewUniformWriter(device *wgpu.Device, label string) (*UniformWriter, error) {
	var u GPUCameraUniform
	buffer, err := device.CreateBuffer(&wgpu.BufferDescriptor{
		Label:            label,
		Size:             uint64(u.Size()),
		Usage:            wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
		MappedAtCreation: false,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create camera uniform buffer: %w", err)
	}
	return &UniformWriter{
		mu:     &sync.Mutex{},
		queue:  device.GetQueue(),
		buffer: buffer,
	}, nil
}

// Write uploads u into the uniform buffer.
func (w *UniformWriter) Write(u *GPUCameraUniform) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.buffer == nil {
		return
	}
	w.queue.WriteBuffer(w.buffer, 0, u.Marshal())
}

// Buffer returns the GPU buffer for bind group creation.
//
// Returns:
//   - *wgpu.Buffer: the uniform buffer
func (w *UniformWriter) Buffer() *wgpu.Buffer {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.buffer
}

// Release frees the GPU buffer.
func (w *UniformWriter) Release() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.buffer != nil {
		w.buffer.Release()
		w.buffer = nil
	}
}
