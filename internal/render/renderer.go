//go:build ebiten

package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Renderer draws a packed bit grid onto an ebiten image.
type Renderer interface {
	Draw(dst *ebiten.Image, bits []byte, on, off color.Color, scale int)
}

// ShaderRenderer uploads the packed cell bytes as a texture and lets the grid
// shader decode them per fragment.
type ShaderRenderer struct {
	w, h   int
	shader *ebiten.Shader
	tex    *ebiten.Image
	texW   int
	buf    []byte

	vertices [4]ebiten.Vertex
	indices  []uint16
	opts     ebiten.DrawTrianglesShaderOptions
}

// NewShaderRenderer compiles the grid shader for a w*h board.
func NewShaderRenderer(w, h int) (*ShaderRenderer, error) {
	shader, err := ebiten.NewShader(GridShaderSource())
	if err != nil {
		return nil, fmt.Errorf("compile grid shader: %w", err)
	}
	texW, texH := ByteTextureSize((w*h + 7) / 8)
	r := &ShaderRenderer{
		w:       w,
		h:       h,
		shader:  shader,
		tex:     ebiten.NewImageWithOptions(image.Rect(0, 0, texW, texH), &ebiten.NewImageOptions{Unmanaged: true}),
		texW:    texW,
		buf:     make([]byte, 4*texW*texH),
		indices: []uint16{0, 1, 2, 1, 2, 3},
	}
	r.opts.Images[0] = r.tex
	r.opts.Uniforms = map[string]any{
		"GridWidth": float32(w),
		"TexWidth":  float32(texW),
	}
	return r, nil
}

// Draw uploads bits and covers a (w*scale)x(h*scale) area of dst with the
// decoded board.
func (r *ShaderRenderer) Draw(dst *ebiten.Image, bits []byte, on, off color.Color, scale int) {
	if len(bits) != (r.w*r.h+7)/8 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	fillByteTexels(r.buf, bits)
	r.tex.WritePixels(r.buf)

	dw, dh := float32(r.w*scale), float32(r.h*scale)
	sw, sh := float32(r.w), float32(r.h)
	r.vertices[0] = ebiten.Vertex{DstX: 0, DstY: 0, SrcX: 0, SrcY: 0, ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1}
	r.vertices[1] = ebiten.Vertex{DstX: dw, DstY: 0, SrcX: sw, SrcY: 0, ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1}
	r.vertices[2] = ebiten.Vertex{DstX: 0, DstY: dh, SrcX: 0, SrcY: sh, ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1}
	r.vertices[3] = ebiten.Vertex{DstX: dw, DstY: dh, SrcX: sw, SrcY: sh, ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1}

	r.opts.Uniforms["AliveColor"] = colorVec(on)
	r.opts.Uniforms["DeadColor"] = colorVec(off)
	dst.DrawTrianglesShader(r.vertices[:], r.indices, r.shader, &r.opts)
}

// GridPainter decodes the board on the CPU into a single RGBA image.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Draw decodes bits into the painter image and draws it scaled onto dst.
func (gp *GridPainter) Draw(dst *ebiten.Image, bits []byte, on, off color.Color, scale int) {
	if len(bits) != (gp.w*gp.h+7)/8 {
		return
	}
	fillBitsRGBA(gp.buf, bits, gp.w*gp.h, on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}
