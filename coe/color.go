package coe

import "image/color"

// RGB444 is a 12-bit color with 4 bits per channel. Red occupies the most
// significant nibble and blue the least significant.
type RGB444 uint16

// Quantize reduces each 8-bit channel to 4 bits by discarding the low nibble
// and packs the result.
func Quantize(r, g, b uint8) RGB444 {
	return RGB444(r>>4)<<8 | RGB444(g>>4)<<4 | RGB444(b>>4)
}

// Channels returns the 4-bit red, green and blue components.
func (c RGB444) Channels() (r, g, b uint8) {
	return uint8(c >> 8 & 0x0f), uint8(c >> 4 & 0x0f), uint8(c & 0x0f)
}

// RGBA implements color.Color. Each nibble is scaled to 16 bits, so 0xf
// becomes 0xffff. The color is always opaque.
func (c RGB444) RGBA() (r, g, b, a uint32) {
	cr, cg, cb := c.Channels()
	return uint32(cr) * 0x1111, uint32(cg) * 0x1111, uint32(cb) * 0x1111, 0xffff
}

// nrgba expands the color to 8 bits per channel such that quantizing the
// result gives back c.
func (c RGB444) nrgba() color.NRGBA {
	r, g, b := c.Channels()
	return color.NRGBA{r * 0x11, g * 0x11, b * 0x11, 0xff}
}

// RGB444Model converts any color to RGB444. Alpha is discarded rather than
// composited, the same as flattening the image to plain RGB first.
var RGB444Model = color.ModelFunc(rgb444Model)

func rgb444Model(c color.Color) color.Color {
	if q, ok := c.(RGB444); ok {
		return q
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Quantize(n.R, n.G, n.B)
}
