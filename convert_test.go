package lutmap

import (
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/draw"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

var _ = fmt.Print

func TestToNRGBA(t *testing.T) {
	rect := image.Rect(-1, -1, 15, 15)
	colors := palette.Plan9
	testCases := []struct {
		name string
		img  image.Image
	}{
		{"NRGBA64", fillDrawImage(image.NewNRGBA64(rect), colors)},
		{"RGBA", fillDrawImage(image.NewRGBA(rect), colors)},
		{"RGBA64", fillDrawImage(image.NewRGBA64(rect), colors)},
		{"Gray", fillDrawImage(image.NewGray(rect), colors)},
		{"Gray16", fillDrawImage(image.NewGray16(rect), colors)},
		{"YCbCr-444", makeYCbCrImage(rect, colors, image.YCbCrSubsampleRatio444)},
		{"YCbCr-422", makeYCbCrImage(rect, colors, image.YCbCrSubsampleRatio422)},
		{"YCbCr-420", makeYCbCrImage(rect, colors, image.YCbCrSubsampleRatio420)},
		{"YCbCr-440", makeYCbCrImage(rect, colors, image.YCbCrSubsampleRatio440)},
		{"YCbCr-410", makeYCbCrImage(rect, colors, image.YCbCrSubsampleRatio410)},
		{"YCbCr-411", makeYCbCrImage(rect, colors, image.YCbCrSubsampleRatio411)},
		{"Paletted", fillDrawImage(image.NewPaletted(rect, colors), colors)},
		{"Alpha", fillDrawImage(image.NewAlpha(rect), colors)},
		{"Alpha16", fillDrawImage(image.NewAlpha16(rect), colors)},
		{"Generic", makeGenericImage(rect, colors)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			n, err := to_nrgba(tc.img)
			require.NoError(t, err)
			require.Equal(t, rect, n.Rect)
			for y := rect.Min.Y; y < rect.Max.Y; y++ {
				got := n.Pix[n.PixOffset(rect.Min.X, y):n.PixOffset(rect.Max.X-1, y)+4]
				if diff := cmp.Diff(readRow(tc.img, y), got); diff != "" {
					t.Fatalf("row %d differs (-want +got):\n%s", y, diff)
				}
			}
		})
	}

	src := fillDrawImage(image.NewNRGBA(rect), colors)
	n, err := to_nrgba(src)
	require.NoError(t, err)
	require.Same(t, src, n)
}

// Applying the identity table only normalizes the pixel format.
func TestApplyIdentityKeepsPixels(t *testing.T) {
	rect := image.Rect(3, -2, 19, 14)
	identity := IdentityTable()
	for _, img := range []image.Image{
		fillDrawImage(image.NewRGBA64(rect), palette.WebSafe),
		makeYCbCrImage(rect, palette.Plan9, image.YCbCrSubsampleRatio420),
		fillDrawImage(image.NewPaletted(rect, palette.Plan9), palette.Plan9),
	} {
		out, err := identity.Apply(img)
		require.NoError(t, err)
		require.Equal(t, rect, out.Rect)
		for y := rect.Min.Y; y < rect.Max.Y; y++ {
			require.Equal(t, readRow(img, y), out.Pix[out.PixOffset(rect.Min.X, y):out.PixOffset(rect.Max.X-1, y)+4])
		}
	}
}

func makeYCbCrImage(rect image.Rectangle, colors []color.Color, sr image.YCbCrSubsampleRatio) *image.YCbCr {
	img := image.NewYCbCr(rect, sr)
	j := 0
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			iy := img.YOffset(x, y)
			ic := img.COffset(x, y)
			c := color.NRGBAModel.Convert(colors[j%len(colors)]).(color.NRGBA)
			img.Y[iy], img.Cb[ic], img.Cr[ic] = color.RGBToYCbCr(c.R, c.G, c.B)
			j++
		}
	}
	return img
}

func makeGenericImage(rect image.Rectangle, colors []color.Color) image.Image {
	img := fillDrawImage(image.NewRGBA(rect), colors)
	type genericImage struct{ *image.RGBA }
	return &genericImage{img}
}

// fillDrawImage sets consecutive pixels to consecutive colors, with the alpha
// of pixel i set to i%256.
func fillDrawImage[T draw.Image](img T, colors []color.Color) T {
	rect := img.Bounds()
	i := 0
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			c := color.NRGBAModel.Convert(colors[i%len(colors)]).(color.NRGBA)
			c.A = uint8(i % 256)
			img.Set(x, y, c)
			i++
		}
	}
	return img
}

func readRow(img image.Image, y int) []uint8 {
	b := img.Bounds()
	row := make([]byte, 0, b.Dx()*4)
	for x := b.Min.X; x < b.Max.X; x++ {
		c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
		row = append(row, c.R, c.G, c.B, c.A)
	}
	return row
}
