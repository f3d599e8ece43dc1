package lutmap

import (
	"strings"
)

const (
	// MapSize is the width and height of a map image in pixels.
	MapSize = 4096
	// TileSize is the width and height of one tile of a map image. Every tile
	// holds all combinations of the two non-axis channels for a single value
	// of the axis channel.
	TileSize = 256
)

// Axis selects the channel that is addressed at tile granularity when
// reading or generating a map image.
type Axis uint8

const (
	AxisR Axis = iota
	AxisG
	AxisB
)

var axisNames = [3]string{"R", "G", "B"}

func (a Axis) String() string {
	return axisNames[a%3]
}

// AxisFromTag resolves the secondary extension of a map image filename, for
// example the "g" in "film.g.png". "r" and "g" select the red and green
// channels, anything else selects blue.
func AxisFromTag(tag string) Axis {
	switch strings.ToLower(tag) {
	case "r":
		return AxisR
	case "g":
		return AxisG
	}
	return AxisB
}

// channels returns the indices of the axis channel and of the channels that
// enumerate along the width and the height of a tile.
func (a Axis) channels() (axis, horizontal, vertical int) {
	axis = int(a % 3)
	return axis, (axis + 1) % 3, (axis + 2) % 3
}

// MapPosition returns the pixel of a map image that holds the color c. The
// axis channel picks one of 16x16 tiles, the other two channels pick the
// pixel inside the tile. When flip is true, tiles with an odd column (or
// row) index are mirrored horizontally (or vertically) so that neighbouring
// tiles meet with matching edges.
func MapPosition(c Color, axis Axis, flip bool) (x, y int) {
	a, h, v := axis.channels()
	av := c.Channel(a)
	quot, rem := int(av>>4), int(av&15)
	hv, vv := int(c.Channel(h)), int(c.Channel(v))
	if flip && rem&1 != 0 {
		hv = 255 - hv
	}
	if flip && quot&1 != 0 {
		vv = 255 - vv
	}
	return rem<<8 + hv, quot<<8 + vv
}
