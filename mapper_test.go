package lutmap

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

var _ = fmt.Print

func TestAxisFromTag(t *testing.T) {
	for tag, want := range map[string]Axis{
		"r": AxisR, "R": AxisR, "g": AxisG, "G": AxisG,
		"b": AxisB, "": AxisB, "png": AxisB, "rg": AxisB,
	} {
		require.Equal(t, want, AxisFromTag(tag), "tag: %q", tag)
	}
	require.Equal(t, "R", AxisR.String())
	require.Equal(t, "B", AxisB.String())
}

func TestMapPosition(t *testing.T) {
	testCases := []struct {
		c      Color
		axis   Axis
		flip   bool
		wx, wy int
	}{
		{Opaque(128, 64, 200), AxisB, true, 8*256 + 128, 12*256 + 64},
		{Opaque(128, 64, 200), AxisB, false, 8*256 + 128, 12*256 + 64},
		// odd axis value mirrors horizontally
		{Opaque(10, 20, 33), AxisB, true, 256 + 245, 512 + 20},
		{Opaque(10, 20, 33), AxisB, false, 256 + 10, 512 + 20},
		// odd tile row mirrors vertically
		{Opaque(17, 5, 6), AxisR, true, 256 + 250, 256 + 249},
		{Opaque(17, 5, 6), AxisR, false, 256 + 5, 256 + 6},
		{Opaque(1, 2, 3), AxisG, true, 512 + 3, 1},
		{Opaque(255, 255, 255), AxisB, true, 3840, 3840},
		{Opaque(255, 255, 255), AxisB, false, 4095, 4095},
		{Opaque(0, 0, 0), AxisB, true, 0, 0},
		// alpha plays no part
		{Color{128, 64, 200, 0}, AxisB, true, 8*256 + 128, 12*256 + 64},
	}
	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%s-%s-%v", tc.c, tc.axis, tc.flip), func(t *testing.T) {
			x, y := MapPosition(tc.c, tc.axis, tc.flip)
			require.Equal(t, tc.wx, x)
			require.Equal(t, tc.wy, y)
		})
	}
}

// TestMapPositionBijective checks that every RGB color lands on its own
// pixel of the map for every axis, with and without flipping.
func TestMapPositionBijective(t *testing.T) {
	for _, axis := range []Axis{AxisR, AxisG, AxisB} {
		for _, flip := range []bool{true, false} {
			t.Run(fmt.Sprintf("%s-%v", axis, flip), func(t *testing.T) {
				t.Parallel()
				seen := make([]uint64, MapSize*MapSize/64)
				for i := range uint32(TableSize) {
					x, y := MapPosition(ColorFromHexRGB(i), axis, flip)
					if x < 0 || x >= MapSize || y < 0 || y >= MapSize {
						t.Fatalf("%s maps outside the map: %d, %d", ColorFromHexRGB(i), x, y)
					}
					p := y*MapSize + x
					if seen[p/64]&(1<<(p%64)) != 0 {
						t.Fatalf("%s maps to the already used pixel %d, %d", ColorFromHexRGB(i), x, y)
					}
					seen[p/64] |= 1 << (p % 64)
				}
			})
		}
	}
}

// Neighbouring tiles must meet with identical non-axis channels when flipped.
func TestMapPositionTileEdges(t *testing.T) {
	img, err := GenerateMap(AxisB, true)
	require.NoError(t, err)
	for y := 0; y < MapSize; y += 37 {
		for x := TileSize - 1; x < MapSize-1; x += TileSize {
			l, r := pixel_at(img, x, y), pixel_at(img, x+1, y)
			require.Equal(t, l.R, r.R, "at %d, %d", x, y)
			require.Equal(t, l.G, r.G, "at %d, %d", x, y)
		}
	}
}
