package renderer

import (
	"encoding/binary"
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/Carmen-Shannon/oxy-breakout/common"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f32At(buf []byte, off int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(buf[off : off+4]))
}

func TestGPUTypeSizes(t *testing.T) {
	var v GPUQuadVertex
	var p GPUPostParams
	assert.Equal(t, quadVertexStride, v.Size())
	assert.Equal(t, postParamsSize, p.Size())
	assert.Len(t, p.Marshal(), postParamsSize)
}

func TestAppendQuadVerticesMapsPixelsToClipSpace(t *testing.T) {
	q := common.Quad{
		Position: common.Vec2{0, 0},
		Size:     common.Vec2{400, 300},
		Color:    common.Vec3{0.2, 0.6, 1.0},
	}
	buf := AppendQuadVertices(nil, []common.Quad{q}, 800, 600)
	require.Len(t, buf, 6*quadVertexStride)

	// First vertex is the top-left corner, third is bottom-right.
	assert.Equal(t, float32(-1), f32At(buf, 0))
	assert.Equal(t, float32(1), f32At(buf, 4))
	assert.Equal(t, float32(0), f32At(buf, 2*quadVertexStride))
	assert.Equal(t, float32(0), f32At(buf, 2*quadVertexStride+4))

	for i := 0; i < 6; i++ {
		off := i * quadVertexStride
		assert.Equal(t, float32(0.2), f32At(buf, off+8))
		assert.Equal(t, float32(0.6), f32At(buf, off+12))
		assert.Equal(t, float32(1.0), f32At(buf, off+16))
	}
}

func TestAppendQuadVerticesReusesBuffer(t *testing.T) {
	quads := []common.Quad{{Size: common.Vec2{1, 1}}, {Size: common.Vec2{1, 1}}}
	buf := AppendQuadVertices(nil, quads, 10, 10)
	again := AppendQuadVertices(buf[:0], quads[:1], 10, 10)
	assert.Len(t, again, 6*quadVertexStride)
	assert.Equal(t, &buf[0], &again[0])
}

func TestNewPostParams(t *testing.T) {
	none := NewPostParams(PostEffects{}, 1.5)
	assert.Equal(t, [2]float32{}, none.ShakeOffset)
	assert.Zero(t, none.Confuse)
	assert.Zero(t, none.Chaos)

	all := NewPostParams(PostEffects{Shake: true, Confuse: true, Chaos: true}, 0)
	assert.InDelta(t, shakeStrength, all.ShakeOffset[0], 1e-6)
	assert.InDelta(t, shakeStrength, all.ShakeOffset[1], 1e-6)
	assert.Equal(t, float32(1), all.Confuse)
	assert.Equal(t, float32(1), all.Chaos)

	buf := all.Marshal()
	assert.InDelta(t, shakeStrength, f32At(buf, 0), 1e-6)
	assert.Equal(t, float32(1), f32At(buf, 12))
	assert.Equal(t, float32(1), f32At(buf, 16))
}

func TestQuadShaderSourceEmbedded(t *testing.T) {
	assert.Contains(t, QuadShaderSource, "fn vs_main")
	assert.Contains(t, QuadShaderSource, "fn fs_main")
	assert.Contains(t, QuadShaderSource, "struct PostParams")
}

type fakeBackend struct {
	mu         sync.Mutex
	configured [][2]int
	present    PresentMode
	uniforms   []byte
	vertices   []byte
	drawn      []uint32
	drawErr    error
	released   bool
}

var _ RendererBackend = &fakeBackend{}

func (f *fakeBackend) ConfigureSurface(width, height int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.configured = append(f.configured, [2]int{width, height})
}

func (f *fakeBackend) SetPresentMode(mode PresentMode) { f.present = mode }

func (f *fakeBackend) RegisterQuadPipeline(string) error { return nil }

func (f *fakeBackend) WriteUniforms(data []byte) { f.uniforms = append([]byte(nil), data...) }

func (f *fakeBackend) WriteVertices(data []byte) error {
	f.vertices = append([]byte(nil), data...)
	return nil
}

func (f *fakeBackend) DrawFrame(vertexCount uint32, _ wgpu.Color) error {
	f.drawn = append(f.drawn, vertexCount)
	return f.drawErr
}

func (f *fakeBackend) Release() { f.released = true }

func newTestRenderer(b RendererBackend) *renderer {
	return &renderer{mu: &sync.Mutex{}, backend: b, width: 800, height: 600, view: common.Vec2{800, 600}}
}

func TestRendererDraw(t *testing.T) {
	b := &fakeBackend{}
	r := newTestRenderer(b)

	quads := []common.Quad{{Size: common.Vec2{10, 10}}, {Size: common.Vec2{5, 5}}}
	require.NoError(t, r.Draw(quads, PostEffects{Confuse: true}, 2))

	assert.Equal(t, []uint32{12}, b.drawn)
	assert.Len(t, b.vertices, 12*quadVertexStride)
	assert.Equal(t, float32(1), f32At(b.uniforms, 12))
	assert.Equal(t, float32(2), f32At(b.uniforms, 8))

	b.drawErr = errors.New("lost surface")
	err := r.Draw(nil, PostEffects{}, 0)
	assert.ErrorIs(t, err, b.drawErr)
}

func TestRendererResize(t *testing.T) {
	b := &fakeBackend{}
	r := newTestRenderer(b)

	r.Resize(0, 100)
	assert.Empty(t, b.configured, "minimised windows are ignored")

	r.Resize(1024, 768)
	r.SetPresentMode(PresentModeUncapped)
	assert.Equal(t, [][2]int{{1024, 768}, {1024, 768}}, b.configured)
	assert.Equal(t, PresentModeUncapped, b.present)

	require.NoError(t, r.Draw([]common.Quad{{Size: common.Vec2{800, 600}}}, PostEffects{}, 0))
	assert.Equal(t, float32(1), f32At(b.vertices, 2*quadVertexStride), "quads keep the creation-time pixel space")

	r.Release()
	assert.True(t, b.released)
}
