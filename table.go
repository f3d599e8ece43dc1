package lutmap

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/kovidgoyal/go-parallel"
)

var _ = fmt.Print

// TableSize is the number of entries in a Table, one per RGB color.
const TableSize = 1 << 24

// Table is a dense color lookup table indexed by Color.HexRGB. A valid table
// has exactly TableSize entries.
type Table []Color

// NewTable returns a zeroed table.
func NewTable() Table {
	return make(Table, TableSize)
}

// IdentityTable returns the table that maps every color to itself, opaque.
func IdentityTable() Table {
	t := NewTable()
	for i := range t {
		t[i] = ColorFromHexRGB(uint32(i))
	}
	return t
}

// Lookup returns the entry for the RGB channels of c, the alpha of c is
// ignored.
func (t Table) Lookup(c Color) Color {
	return t[c.HexRGB()]
}

func (t Table) check() error {
	if len(t) != TableSize {
		return fmt.Errorf("%w: table has %d entries, expected %d", ErrInvalidArgument, len(t), TableSize)
	}
	return nil
}

// pixel_at returns the pixel at (x, y) relative to the origin of img with the
// coordinates clamped to the image bounds.
func pixel_at(img *image.NRGBA, x, y int) Color {
	b := img.Rect
	x = min(max(x+b.Min.X, b.Min.X), b.Max.X-1)
	y = min(max(y+b.Min.Y, b.Min.Y), b.Max.Y-1)
	i := img.PixOffset(x, y)
	s := img.Pix[i : i+4 : i+4]
	return Color{s[0], s[1], s[2], s[3]}
}

// to_nrgba returns img as non-premultiplied RGBA, without copying if it
// already is.
func to_nrgba(img image.Image) (*image.NRGBA, error) {
	if n, ok := img.(*image.NRGBA); ok {
		return n, nil
	}
	b := img.Bounds()
	ans := image.NewNRGBA(b)
	if b.Empty() {
		return ans, nil
	}
	width := b.Dx()
	f := func(start, limit int) {
		for y := start; y < limit; y++ {
			row := ans.Pix[y*ans.Stride : y*ans.Stride+4*width]
			for x := range width {
				c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
				s := row[4*x : 4*x+4 : 4*x+4]
				s[0], s[1], s[2], s[3] = c.R, c.G, c.B, c.A
			}
		}
	}
	if err := parallel.Run_in_parallel_over_range(0, f, 0, b.Dy()); err != nil {
		return nil, err
	}
	return ans, nil
}

// Build reads a map image into a new Table. Every opaque RGB color is looked
// up at MapPosition(color, axis, true). The image must be exactly
// MapSize x MapSize, otherwise an error wrapping ErrInvalidFormat is
// returned.
func Build(img image.Image, axis Axis) (Table, error) {
	b := img.Bounds()
	if b.Dx() != MapSize || b.Dy() != MapSize {
		return nil, fmt.Errorf("%w: size is %dx%d, must be %dx%d", ErrInvalidFormat, b.Dx(), b.Dy(), MapSize, MapSize)
	}
	st := time.Now()
	src, err := to_nrgba(img)
	if err != nil {
		return nil, err
	}
	t := NewTable()
	// each worker owns a disjoint range of red values and so a disjoint
	// range of table indices
	f := func(start, limit int) {
		for r := start; r < limit; r++ {
			for g := range 256 {
				for bl := range 256 {
					c := Opaque(uint8(r), uint8(g), uint8(bl))
					x, y := MapPosition(c, axis, true)
					t[c.HexRGB()] = pixel_at(src, x, y)
				}
			}
		}
	}
	if err = parallel.Run_in_parallel_over_range(0, f, 0, 256); err != nil {
		return nil, err
	}
	Logger().Debug("built table from map image", "axis", axis, "elapsed", time.Since(st))
	return t, nil
}

// BuildWithTag is Build with the axis resolved by AxisFromTag.
func BuildWithTag(img image.Image, tag string) (Table, error) {
	return Build(img, AxisFromTag(tag))
}

// GenerateMap renders the identity map image for axis: the pixel at
// MapPosition(c, axis, flip) has color c for every opaque color c. Building
// a table from GenerateMap(axis, true) with the same axis gives
// IdentityTable.
func GenerateMap(axis Axis, flip bool) (*image.NRGBA, error) {
	img := image.NewNRGBA(image.Rect(0, 0, MapSize, MapSize))
	f := func(start, limit int) {
		for r := start; r < limit; r++ {
			for g := range 256 {
				for bl := range 256 {
					c := Opaque(uint8(r), uint8(g), uint8(bl))
					x, y := MapPosition(c, axis, flip)
					i := img.PixOffset(x, y)
					s := img.Pix[i : i+4 : i+4]
					s[0], s[1], s[2], s[3] = c.R, c.G, c.B, c.A
				}
			}
		}
	}
	if err := parallel.Run_in_parallel_over_range(0, f, 0, 256); err != nil {
		return nil, err
	}
	return img, nil
}

// Apply returns a copy of img with the RGB channels of every pixel replaced
// through the table. Alpha is preserved.
func (t Table) Apply(img image.Image) (*image.NRGBA, error) {
	if err := t.check(); err != nil {
		return nil, err
	}
	src, err := to_nrgba(img)
	if err != nil {
		return nil, err
	}
	b := src.Rect
	dst := image.NewNRGBA(b)
	if b.Empty() {
		return dst, nil
	}
	n := 4 * b.Dx()
	f := func(start, limit int) {
		for y := start; y < limit; y++ {
			s := src.Pix[y*src.Stride : y*src.Stride+n]
			d := dst.Pix[y*dst.Stride : y*dst.Stride+n]
			for i := 0; i < n; i += 4 {
				m := t[uint32(s[i])<<16|uint32(s[i+1])<<8|uint32(s[i+2])]
				d[i], d[i+1], d[i+2], d[i+3] = m.R, m.G, m.B, s[i+3]
			}
		}
	}
	if err = parallel.Run_in_parallel_over_range(0, f, 0, b.Dy()); err != nil {
		return nil, err
	}
	return dst, nil
}
