package renderer

import (
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/oxy-breakout/common"
	"github.com/Carmen-Shannon/oxy-breakout/engine/window"
	"github.com/cogentcore/webgpu/wgpu"
)

// renderer is the implementation of the Renderer interface.
type renderer struct {
	mu *sync.Mutex

	backendType RendererBackendType
	backend     RendererBackend

	width, height int

	// view is the pixel area quads are given in, fixed at the initial window size.
	view       common.Vec2
	clearColor wgpu.Color
	vertices   []byte

	// Pre-creation config collected from builder options
	forceFallbackAdapter bool
	pendingPresentMode   *PresentMode
}

// Renderer draws a frame of flat-coloured quads to the window surface.
//
// Quads are given in pixel space with the origin at the top-left corner, matching the
// coordinate system of the game simulation. The pixel space is fixed at the window size
// the renderer was created with, so a resized surface scales the play area. Post effects
// are applied in the shader from a single uniform.
type Renderer interface {
	// Resize configures the underlying backend to handle a new surface size.
	// This should be called when re-sizing the window or when the surface size should change.
	//
	// Parameters:
	//   - width: the new width of the surface in pixels
	//   - height: the new height of the surface in pixels
	Resize(width, height int)

	// SetPresentMode changes the present mode and reconfigures the surface.
	//
	// Parameters:
	//   - mode: the PresentMode to use
	SetPresentMode(mode PresentMode)

	// Draw renders one frame and presents it.
	//
	// Parameters:
	//   - quads: the rectangles to draw, back to front
	//   - fx: the post effects active this frame
	//   - t: seconds since start, used to animate the effects
	//
	// Returns:
	//   - error: error if the frame could not be drawn
	Draw(quads []common.Quad, fx PostEffects, t float32) error

	// Release frees every GPU resource held by the renderer.
	Release()
}

var _ Renderer = &renderer{}

// NewRenderer creates a Renderer bound to the given window's surface.
// Panics if no GPU adapter or device is available.
//
// Parameters:
//   - backendType: the GPU backend to use
//   - window: the window providing the surface and its initial size
//   - options: functional options for renderer configuration
//
// Returns:
//   - Renderer: the newly created renderer
//   - error: error if the quad pipeline cannot be created
func NewRenderer(backendType RendererBackendType, window window.Window, options ...RendererBuilderOption) (Renderer, error) {
	r := &renderer{
		mu:          &sync.Mutex{},
		backendType: backendType,
		clearColor:  wgpu.Color{R: 0, G: 0, B: 0, A: 1},
		width:       window.Width(),
		height:      window.Height(),
	}
	r.view = common.Vec2{float32(r.width), float32(r.height)}

	// Apply options first so config flags (e.g. forceFallbackAdapter) are
	// available before the backend requests a GPU adapter.
	for _, opt := range options {
		opt(r)
	}

	switch backendType {
	case BackendTypeWGPU:
		fallthrough
	default:
		r.backend = newWGPURendererBackend(window.SurfaceDescriptor(), r.forceFallbackAdapter)
	}

	if r.pendingPresentMode != nil {
		r.backend.SetPresentMode(*r.pendingPresentMode)
	}
	r.backend.ConfigureSurface(r.width, r.height)

	if err := r.backend.RegisterQuadPipeline(QuadShaderSource); err != nil {
		r.backend.Release()
		return nil, fmt.Errorf("failed to register quad pipeline: %w", err)
	}
	return r, nil
}

func (r *renderer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.mu.Lock()
	r.width, r.height = width, height
	r.mu.Unlock()
	r.backend.ConfigureSurface(width, height)
}

func (r *renderer) SetPresentMode(mode PresentMode) {
	r.backend.SetPresentMode(mode)
	r.mu.Lock()
	w, h := r.width, r.height
	r.mu.Unlock()
	r.backend.ConfigureSurface(w, h)
}

func (r *renderer) Draw(quads []common.Quad, fx PostEffects, t float32) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.vertices = AppendQuadVertices(r.vertices[:0], quads, r.view[0], r.view[1])
	params := NewPostParams(fx, t)
	r.backend.WriteUniforms(params.Marshal())
	if err := r.backend.WriteVertices(r.vertices); err != nil {
		return fmt.Errorf("failed to upload vertices: %w", err)
	}

	count := uint32(len(r.vertices) / quadVertexStride)
	if err := r.backend.DrawFrame(count, r.clearColor); err != nil {
		return fmt.Errorf("failed to draw frame: %w", err)
	}
	return nil
}

func (r *renderer) Release() {
	r.backend.Release()
}
