package renderer

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/Carmen-Shannon/oxy-breakout/common"
	"github.com/chewxy/math32"
)

// QuadShaderSource is the WGSL source of the flat-colour quad shader. Its
// PostParams struct matches GPUPostParams and its vertex inputs match
// GPUQuadVertex.
//
//go:embed assets/quad.wgsl
var QuadShaderSource string

// GPUQuadVertex is one vertex of a quad triangle in clip space.
// Size: 20 bytes (vec2<f32> position, vec3<f32> color), tightly packed.
type GPUQuadVertex struct {
	Position [2]float32 // offset 0
	Color    [3]float32 // offset 8
}

const quadVertexStride = 20

// Size returns the size of the GPUQuadVertex struct in bytes.
func (v *GPUQuadVertex) Size() int {
	return int(unsafe.Sizeof(*v))
}

// AppendTo serializes the vertex onto buf.
//
// Parameters:
//   - buf: the destination buffer
//
// Returns:
//   - []byte: buf with the 20 vertex bytes appended
func (v *GPUQuadVertex) AppendTo(buf []byte) []byte {
	buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(v.Position[0]))
	buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(v.Position[1]))
	buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(v.Color[0]))
	buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(v.Color[1]))
	buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(v.Color[2]))
	return buf
}

// GPUPostParams is the post-processing uniform read by both shader stages.
// Size: 32 bytes, padded to a multiple of 16 for uniform layout.
type GPUPostParams struct {
	ShakeOffset [2]float32 // offset 0
	Time        float32    // offset 8
	Confuse     float32    // offset 12
	Chaos       float32    // offset 16
	_           [3]float32 // offset 20
}

const postParamsSize = 32

// Size returns the size of the GPUPostParams struct in bytes.
func (g *GPUPostParams) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the params into a 32-byte buffer suitable for GPU upload.
func (g *GPUPostParams) Marshal() []byte {
	buf := make([]byte, postParamsSize)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(g.ShakeOffset[0]))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(g.ShakeOffset[1]))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(g.Time))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(g.Confuse))
	binary.LittleEndian.PutUint32(buf[16:20], math.Float32bits(g.Chaos))
	return buf
}

// shakeStrength is the clip-space amplitude of the screen shake.
const shakeStrength = 0.01

// PostEffects are the post-processing switches for a frame.
type PostEffects struct {
	Shake   bool
	Confuse bool
	Chaos   bool
}

// NewPostParams builds the uniform for the given effects at time t seconds.
//
// Parameters:
//   - fx: the active effects
//   - t: seconds since the renderer started, driving the shake and chaos animation
//
// Returns:
//   - GPUPostParams: the uniform contents
func NewPostParams(fx PostEffects, t float32) GPUPostParams {
	p := GPUPostParams{Time: t}
	if fx.Shake {
		p.ShakeOffset = [2]float32{
			math32.Cos(t*10) * shakeStrength,
			math32.Cos(t*15) * shakeStrength,
		}
	}
	if fx.Confuse {
		p.Confuse = 1
	}
	if fx.Chaos {
		p.Chaos = 1
	}
	return p
}

// AppendQuadVertices converts pixel-space quads into two clip-space triangles
// each and appends the vertex bytes to dst. Pixel (0, 0) is the top-left corner
// of a width × height surface.
//
// Parameters:
//   - dst: the destination buffer, reused when large enough
//   - quads: the rectangles to draw, back to front
//   - width: surface width in pixels
//   - height: surface height in pixels
//
// Returns:
//   - []byte: dst with 6 vertices per quad appended
func AppendQuadVertices(dst []byte, quads []common.Quad, width, height float32) []byte {
	toClip := func(x, y float32) [2]float32 {
		return [2]float32{x/width*2 - 1, 1 - y/height*2}
	}
	for _, q := range quads {
		x0, y0 := q.Position[0], q.Position[1]
		x1, y1 := x0+q.Size[0], y0+q.Size[1]
		tl, tr := toClip(x0, y0), toClip(x1, y0)
		bl, br := toClip(x0, y1), toClip(x1, y1)
		for _, p := range [6][2]float32{tl, bl, br, tl, br, tr} {
			v := GPUQuadVertex{Position: p, Color: q.Color}
			dst = v.AppendTo(dst)
		}
	}
	return dst
}
