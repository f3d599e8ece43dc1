package lutmap

import (
	"image"

	"github.com/kovidgoyal/go-parallel"
)

// orientation is an EXIF flag that specifies the transformation
// that should be applied to image to display it correctly.
type orientation int

const (
	orientationUnspecified = 0
	orientationNormal      = 1
	orientationFlipH       = 2
	orientationRotate180   = 3
	orientationFlipV       = 4
	orientationTranspose   = 5
	orientationRotate270   = 6
	orientationTransverse  = 7
	orientationRotate90    = 8
)

// fixOrientation applies a transform to img corresponding to the given
// orientation flag. The result always has its origin at (0, 0).
func fixOrientation(img image.Image, o orientation) (image.Image, error) {
	src, err := to_nrgba(img)
	if err != nil {
		return nil, err
	}
	w, h := src.Rect.Dx(), src.Rect.Dy()
	// source maps a destination pixel to the source pixel it is copied from
	var source func(x, y int) (int, int)
	dw, dh := w, h
	switch o {
	case orientationFlipH:
		source = func(x, y int) (int, int) { return w - 1 - x, y }
	case orientationRotate180:
		source = func(x, y int) (int, int) { return w - 1 - x, h - 1 - y }
	case orientationFlipV:
		source = func(x, y int) (int, int) { return x, h - 1 - y }
	case orientationTranspose:
		source = func(x, y int) (int, int) { return y, x }
	case orientationRotate270:
		// rotate 90 degrees clockwise
		source = func(x, y int) (int, int) { return y, h - 1 - x }
	case orientationTransverse:
		source = func(x, y int) (int, int) { return w - 1 - y, h - 1 - x }
	case orientationRotate90:
		// rotate 90 degrees counter-clockwise
		source = func(x, y int) (int, int) { return w - 1 - y, x }
	default:
		return img, nil
	}
	switch o {
	case orientationTranspose, orientationRotate270, orientationTransverse, orientationRotate90:
		dw, dh = h, w
	}
	dst := image.NewNRGBA(image.Rect(0, 0, dw, dh))
	f := func(start, limit int) {
		for y := start; y < limit; y++ {
			row := dst.Pix[y*dst.Stride : y*dst.Stride+4*dw]
			for x := range dw {
				sx, sy := source(x, y)
				i := sy*src.Stride + 4*sx
				copy(row[4*x:4*x+4], src.Pix[i:i+4])
			}
		}
	}
	if err = parallel.Run_in_parallel_over_range(0, f, 0, dh); err != nil {
		return nil, err
	}
	return dst, nil
}
