package render

// gridShaderSource decodes the packed cell buffer per fragment. The source
// coordinates carry the cell position (one unit per cell); image 0 holds one
// packed byte per texel in its red channel, ByteTextureWidth texels per row.
// Bit i of the board is bit i%8 of byte i/8, least significant first.
const gridShaderSource = `//kage:unit pixels

package main

var GridWidth float
var TexWidth float
var AliveColor vec4
var DeadColor vec4

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	cell := floor(srcPos - imageSrc0Origin())
	idx := cell.y*GridWidth + cell.x
	byteIdx := floor(idx / 8)
	bit := idx - byteIdx*8

	texel := vec2(mod(byteIdx, TexWidth), floor(byteIdx/TexWidth)) + 0.5
	value := floor(imageSrc0At(imageSrc0Origin()+texel).r*255 + 0.5)
	if mod(floor(value/exp2(bit)), 2) >= 1 {
		return AliveColor
	}
	return DeadColor
}
`

// GridShaderSource returns the Kage source of the packed-bit grid shader.
func GridShaderSource() []byte { return []byte(gridShaderSource) }
