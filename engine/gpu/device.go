// Package gpu bootstraps the WebGPU device the camera uniform is uploaded to.
package gpu

import (
	"github.com/Carmen-Shannon/oxy-cam/common"
	"github.com/cogentcore/webgpu/wgpu"
)

// PresentMode controls how frames are presented to the display surface.
type PresentMode int

const (
	// PresentModeVSync waits for the next vertical blank before presenting.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped presents frames immediately. May tear.
	PresentModeUncapped
)

// Device owns the WebGPU instance, surface, adapter, device and queue for one window.
type Device interface {
	// Device returns the logical device.
	//
	// Returns:
	//   - *wgpu.Device: the device
	Device() *wgpu.Device

	// Queue returns the device queue.
	//
	// Returns:
	//   - *wgpu.Queue: the queue
	Queue() *wgpu.Queue

	// ConfigureSurface (re)configures the swapchain for the given pixel size.
	// Zero-sized requests are ignored (minimized window).
	//
	// Parameters:
	//   - width, height: framebuffer size in pixels
	ConfigureSurface(width, height int)

	// SetPresentMode changes the present mode. Takes effect on the next ConfigureSurface.
	//
	// Parameters:
	//   - mode: the present mode
	SetPresentMode(mode PresentMode)

	// Clear acquires the next surface image, clears it to base tinted by overlay and presents it.
	//
	// Parameters:
	//   - base: background color
	//   - overlay: overlay color; its alpha is the tint strength
	//
	// Returns:
	//   - error: error if the surface image cannot be acquired or the commands cannot be encoded
	Clear(base, overlay common.Color) error

	// Release frees all GPU objects. The device must not be used afterwards.
	Release()
}
