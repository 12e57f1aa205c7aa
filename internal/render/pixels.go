package render

import "image/color"

// ByteTextureWidth is the column count of the texture that carries packed
// cell bytes to the shader, one byte per texel.
const ByteTextureWidth = 256

// ByteTextureSize returns the texture dimensions needed to hold n bytes.
func ByteTextureSize(n int) (w, h int) {
	if n <= 0 {
		return 1, 1
	}
	w = min(n, ByteTextureWidth)
	h = (n + w - 1) / w
	return w, h
}

// fillByteTexels writes each packed byte into the red channel of one opaque
// RGBA texel. Texels past the end of bits are zeroed.
func fillByteTexels(buf []byte, bits []byte) {
	for i := 0; i*4 < len(buf); i++ {
		base := i * 4
		var v byte
		if i < len(bits) {
			v = bits[i]
		}
		buf[base+0] = v
		buf[base+1] = 0
		buf[base+2] = 0
		buf[base+3] = 0xff
	}
}

// fillBitsRGBA decodes cells packed LSB-first into RGBA pixels in buf.
func fillBitsRGBA(buf []byte, bits []byte, cells int, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i := 0; i < cells; i++ {
		base := i * 4
		if bits[i>>3]&(1<<uint(i&7)) != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// colorVec converts c to the premultiplied [0,1] components Kage expects.
func colorVec(c color.Color) []float32 {
	r, g, b, a := c.RGBA()
	return []float32{float32(r) / 0xffff, float32(g) / 0xffff, float32(b) / 0xffff, float32(a) / 0xffff}
}
