// Package particles builds the point clouds drawn for each sphere: particle
// budgets, uniform sampling inside the unit ball and shuffled color buffers.
package particles

// Color is a linear RGB triplet with components in [0, 1].
type Color struct {
	R, G, B float32
}

// White is used for particles past the end of a color buffer.
var White = Color{R: 1, G: 1, B: 1}

// FromHex converts 0xRRGGBB to a Color.
func FromHex(hex uint32) Color {
	return Color{
		R: float32((hex>>16)&0xff) / 255,
		G: float32((hex>>8)&0xff) / 255,
		B: float32(hex&0xff) / 255,
	}
}

// Hex converts back to 0xRRGGBB, rounding each channel.
func (c Color) Hex() uint32 {
	return uint32(channel(c.R))<<16 | uint32(channel(c.G))<<8 | uint32(channel(c.B))
}

// RGBA8 returns 8-bit channels for renderers.
func (c Color) RGBA8() (r, g, b uint8) {
	return channel(c.R), channel(c.G), channel(c.B)
}

func channel(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
