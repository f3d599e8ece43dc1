/*
Package lutmap turns a specially laid out 4096x4096 "map image" into an exact
3D color lookup table covering all 2^24 RGB colors.

The map image stores the whole 8-bit RGB cube as a 16x16 grid of 256x256
tiles. One channel, the axis, selects the tile and the other two select the
pixel inside it, see MapPosition. Grade the image produced by GenerateMap in
any editor, then Build reads the graded copy back into a Table. Tables can be
cached with SaveCache and LoadCache, exported as .cube files with ExportCube
and applied to images with Table.Apply.

A Table is never modified by the functions of this package once it has been
built or loaded, so it can be shared freely between goroutines.
*/
package lutmap

import "fmt"

// LutmapVersion is written into the header of exported .cube files.
type LutmapVersion struct {
	Major, Minor, Patch uint
}

func (v LutmapVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

var Version = LutmapVersion{1, 2, 0}
