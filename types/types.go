package types

import (
	"fmt"
)

var _ = fmt.Print

// Format is an image file format.
type Format int

// Image file formats.
const (
	UNKNOWN Format = iota
	JPEG
	PNG
	GIF
	TIFF
	WEBP
	BMP
)

// FormatExts maps lower-case file extensions, without the dot, to formats.
// It also accepts the format names reported by image.Decode.
var FormatExts = map[string]Format{
	"jpg":  JPEG,
	"jpeg": JPEG,
	"png":  PNG,
	"gif":  GIF,
	"tif":  TIFF,
	"tiff": TIFF,
	"webp": WEBP,
	"bmp":  BMP,
}

var formatNames = map[Format]string{
	JPEG: "JPEG",
	PNG:  "PNG",
	GIF:  "GIF",
	TIFF: "TIFF",
	WEBP: "WEBP",
	BMP:  "BMP",
}

func (f Format) String() string {
	if n, ok := formatNames[f]; ok {
		return n
	}
	return "UNKNOWN"
}

// CanEncode reports whether images can be written in this format. WEBP is
// decode only.
func (f Format) CanEncode() bool {
	switch f {
	case JPEG, PNG, GIF, TIFF, BMP:
		return true
	}
	return false
}
