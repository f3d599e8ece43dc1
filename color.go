package lutmap

import (
	"fmt"
	"image/color"
)

var _ = fmt.Print

// Color is an 8-bit per channel, non-premultiplied RGBA color. It is the
// element type of a Table and of the records in a cache file.
type Color struct {
	R, G, B, A uint8
}

// Channel returns the value of the channel with index i in R, G, B, A order.
// Any other index yields zero.
func (c Color) Channel(i int) uint8 {
	switch i {
	case 0:
		return c.R
	case 1:
		return c.G
	case 2:
		return c.B
	case 3:
		return c.A
	}
	return 0
}

// HexRGB returns r<<16 | g<<8 | b, the index of c in a Table.
func (c Color) HexRGB() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// HexRGBA returns r<<24 | g<<16 | b<<8 | a.
func (c Color) HexRGBA() uint32 {
	return uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A)
}

// Key returns a hash key for c. Two colors are equal if and only if their
// keys are equal. The packing order is fixed, so keys are portable across
// platforms.
func (c Color) Key() uint32 { return c.HexRGBA() }

func (c Color) AsSharp() string {
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

func (c Color) String() string {
	return fmt.Sprintf("Color{%02X %02X %02X %02X}", c.R, c.G, c.B, c.A)
}

// RGBA implements color.Color. The returned values are alpha-premultiplied.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

func colorModel(c color.Color) color.Color {
	if _, ok := c.(Color); ok {
		return c
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{n.R, n.G, n.B, n.A}
}

// ColorModel converts any color into a Color.
var ColorModel color.Model = color.ModelFunc(colorModel)

// Opaque returns the fully opaque color with the given RGB channels.
func Opaque(r, g, b uint8) Color {
	return Color{r, g, b, 0xff}
}

// ColorFromHexRGB is the inverse of HexRGB, the returned color is opaque.
func ColorFromHexRGB(v uint32) Color {
	return Color{uint8(v >> 16), uint8(v >> 8), uint8(v), 0xff}
}
