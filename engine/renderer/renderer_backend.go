package renderer

import "github.com/cogentcore/webgpu/wgpu"

// RendererBackendType identifies the GPU backend implementation used by the Renderer.
type RendererBackendType int

const (
	// BackendTypeWGPU selects the WebGPU-based rendering backend.
	BackendTypeWGPU RendererBackendType = iota
)

// PresentMode controls how rendered frames are presented to the display surface.
type PresentMode int

const (
	// PresentModeVSync waits for the next vertical blank before presenting. Eliminates tearing.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped presents frames immediately without waiting for vertical blank.
	PresentModeUncapped
)

// RendererBackend is the top-level backend interface for the Renderer.
type RendererBackend interface {
	wgpuRendererBackend
}

// wgpuRendererBackend is the WebGPU implementation surface used by the renderer.
type wgpuRendererBackend interface {
	// ConfigureSurface (re)configures the swapchain for the given pixel size.
	ConfigureSurface(width, height int)

	// SetPresentMode selects the present mode used by the next ConfigureSurface.
	SetPresentMode(mode PresentMode)

	// RegisterQuadPipeline compiles the quad shader and creates the render pipeline,
	// the uniform buffer and its bind group.
	//
	// Parameters:
	//   - source: the WGSL source
	//
	// Returns:
	//   - error: error if shader or pipeline creation fails
	RegisterQuadPipeline(source string) error

	// WriteUniforms uploads the post-processing uniform.
	WriteUniforms(data []byte)

	// WriteVertices uploads the frame's vertex data, growing the vertex buffer as needed.
	//
	// Returns:
	//   - error: error if a larger buffer cannot be created
	WriteVertices(data []byte) error

	// DrawFrame clears the surface, draws vertexCount vertices and presents.
	//
	// Returns:
	//   - error: error if the surface texture cannot be acquired
	DrawFrame(vertexCount uint32, clear wgpu.Color) error

	// Release frees every GPU object owned by the backend.
	Release()
}
