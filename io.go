package lutmap

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"strings"

	"github.com/lutools/lutmap/pathutil"
	"github.com/lutools/lutmap/types"

	"github.com/kettek/apng"
	"github.com/rwcarlsen/goexif/exif"
	exif_tiff "github.com/rwcarlsen/goexif/tiff"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

type fileSystem interface {
	Create(string) (io.WriteCloser, error)
	Open(string) (io.ReadCloser, error)
}

type localFS struct{}

func (localFS) Create(name string) (io.WriteCloser, error) { return os.Create(name) }
func (localFS) Open(name string) (io.ReadCloser, error)    { return os.Open(name) }

var fs fileSystem = localFS{}

type decodeConfig struct {
	autoOrientation bool
}

var defaultDecodeConfig = decodeConfig{
	autoOrientation: true,
}

// DecodeOption sets an optional parameter for the Decode and Open functions.
type DecodeOption func(*decodeConfig)

// AutoOrientation returns a DecodeOption that sets the auto-orientation mode.
// If auto-orientation is enabled, the image will be transformed after decoding
// according to the EXIF orientation tag (if present). By default it's enabled.
// Map images must be read with it disabled, their pixels are addresses.
func AutoOrientation(enabled bool) DecodeOption {
	return func(c *decodeConfig) {
		c.autoOrientation = enabled
	}
}

// Document is a decoded image file. Animation is set only for PNG files with
// more than one frame, in which case Image is the default image of the file.
type Document struct {
	Format    Format
	Image     image.Image
	Animation *apng.APNG
}

func animated_frame_count(a *apng.APNG) (n int) {
	for _, f := range a.Frames {
		if !f.IsDefault {
			n++
		}
	}
	return
}

func read_orientation(data []byte) orientation {
	x, err := exif.Decode(bytes.NewReader(data))
	if err != nil {
		return orientationUnspecified
	}
	orient, err := x.Get(exif.Orientation)
	if err == nil && orient != nil && orient.Format() == exif_tiff.IntVal {
		if v, err := orient.Int(0); err == nil && v > 0 && v < 9 {
			return orientation(v)
		}
	}
	return orientationUnspecified
}

func decode_document(r io.Reader, opts []DecodeOption) (*Document, error) {
	cfg := defaultDecodeConfig
	for _, option := range opts {
		option(&cfg)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	img, name, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	ans := &Document{Format: types.FormatExts[name], Image: img}
	if ans.Format == PNG {
		if a, err := apng.DecodeAll(bytes.NewReader(data)); err == nil && animated_frame_count(&a) > 1 {
			ans.Animation = &a
		}
	}
	if cfg.autoOrientation && ans.Animation == nil {
		if o := read_orientation(data); o != orientationUnspecified && o != orientationNormal {
			if ans.Image, err = fixOrientation(ans.Image, o); err != nil {
				return nil, err
			}
		}
	}
	return ans, nil
}

// DecodeDocument reads an image file, keeping all frames of animated PNGs.
func DecodeDocument(r io.Reader, opts ...DecodeOption) (*Document, error) {
	return decode_document(r, opts)
}

// Decode reads an image from r.
func Decode(r io.Reader, opts ...DecodeOption) (image.Image, error) {
	doc, err := decode_document(r, opts)
	if err != nil {
		return nil, err
	}
	return doc.Image, nil
}

// Open loads an image from file.
//
// Examples:
//
//	// Load a map image, exactly as stored.
//	img, err := lutmap.Open("film.g.png", lutmap.AutoOrientation(false))
func Open(filename string, opts ...DecodeOption) (image.Image, error) {
	doc, err := OpenDocument(filename, opts...)
	if err != nil {
		return nil, err
	}
	return doc.Image, nil
}

// OpenDocument loads an image file, keeping all frames of animated PNGs.
func OpenDocument(filename string, opts ...DecodeOption) (*Document, error) {
	file, err := fs.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	doc, err := decode_document(file, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to load image file %q: %w", filename, err)
	}
	return doc, nil
}

type Format = types.Format

const (
	UNKNOWN = types.UNKNOWN
	JPEG    = types.JPEG
	PNG     = types.PNG
	GIF     = types.GIF
	TIFF    = types.TIFF
	WEBP    = types.WEBP
	BMP     = types.BMP
)

// ErrUnsupportedFormat means the given image format is not supported.
var ErrUnsupportedFormat = errors.New("lutmap: unsupported image format")

// FormatFromExtension parses image format from filename extension:
// "jpg" (or "jpeg"), "png", "gif", "tif" (or "tiff"), "bmp" and "webp" are supported.
func FormatFromExtension(ext string) (Format, error) {
	if f, ok := types.FormatExts[strings.ToLower(strings.TrimPrefix(ext, "."))]; ok {
		return f, nil
	}
	return UNKNOWN, ErrUnsupportedFormat
}

// FormatFromFilename parses image format from filename:
// "jpg" (or "jpeg"), "png", "gif", "tif" (or "tiff"), "bmp" and "webp" are supported.
func FormatFromFilename(filename string) (Format, error) {
	return FormatFromExtension(pathutil.Ext(filename))
}

type encodeConfig struct {
	jpegQuality         int
	gifNumColors        int
	gifDrawer           draw.Drawer
	pngCompressionLevel png.CompressionLevel
}

var defaultEncodeConfig = encodeConfig{
	jpegQuality:         90,
	gifNumColors:        256,
	pngCompressionLevel: png.BestSpeed,
}

// EncodeOption sets an optional parameter for the Encode and Save functions.
type EncodeOption func(*encodeConfig)

// JPEGQuality returns an EncodeOption that sets the output JPEG quality.
// Quality ranges from 1 to 100 inclusive, higher is better. Default is 90.
func JPEGQuality(quality int) EncodeOption {
	return func(c *encodeConfig) {
		c.jpegQuality = quality
	}
}

// GIFNumColors returns an EncodeOption that sets the maximum number of colors
// used in the GIF-encoded image. It ranges from 1 to 256.  Default is 256.
func GIFNumColors(numColors int) EncodeOption {
	return func(c *encodeConfig) {
		c.gifNumColors = numColors
	}
}

// GIFDrawer sets how output pixels are mapped onto the GIF palette, for
// example draw.FloydSteinberg to dither or draw.Src for the nearest color.
func GIFDrawer(drawer draw.Drawer) EncodeOption {
	return func(c *encodeConfig) {
		c.gifDrawer = drawer
	}
}

// PNGCompressionLevel returns an EncodeOption that sets the compression level
// of the PNG-encoded image. Default is png.BestSpeed, LUT output is usually
// an intermediate file.
func PNGCompressionLevel(level png.CompressionLevel) EncodeOption {
	return func(c *encodeConfig) {
		c.pngCompressionLevel = level
	}
}

// Encode writes the image img to w in the specified format (JPEG, PNG, GIF, TIFF or BMP).
func Encode(w io.Writer, img image.Image, format Format, opts ...EncodeOption) error {
	cfg := defaultEncodeConfig
	for _, option := range opts {
		option(&cfg)
	}

	switch format {
	case JPEG:
		if nrgba, ok := img.(*image.NRGBA); ok && nrgba.Opaque() {
			rgba := &image.RGBA{
				Pix:    nrgba.Pix,
				Stride: nrgba.Stride,
				Rect:   nrgba.Rect,
			}
			return jpeg.Encode(w, rgba, &jpeg.Options{Quality: cfg.jpegQuality})
		}
		return jpeg.Encode(w, img, &jpeg.Options{Quality: cfg.jpegQuality})

	case PNG:
		encoder := png.Encoder{CompressionLevel: cfg.pngCompressionLevel}
		return encoder.Encode(w, img)

	case GIF:
		return gif.Encode(w, img, &gif.Options{
			NumColors: cfg.gifNumColors,
			Drawer:    cfg.gifDrawer,
		})

	case TIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})

	case BMP:
		return bmp.Encode(w, img)
	}

	return ErrUnsupportedFormat
}

// EncodeDocument is Encode for documents. Animated documents are written as
// APNG when format is PNG, other formats get the default image only.
func EncodeDocument(w io.Writer, doc *Document, format Format, opts ...EncodeOption) error {
	if doc.Animation != nil && format == PNG {
		return apng.Encode(w, *doc.Animation)
	}
	return Encode(w, doc.Image, format, opts...)
}

func save(filename string, encode func(io.Writer, Format) error) (err error) {
	f, err := FormatFromFilename(filename)
	if err != nil {
		return fmt.Errorf("%w: %s", err, filename)
	}
	if !f.CanEncode() {
		return fmt.Errorf("%w: cannot write %s files: %s", ErrUnsupportedFormat, f, filename)
	}
	file, err := fs.Create(filename)
	if err != nil {
		return err
	}
	err = encode(file, f)
	errc := file.Close()
	if err == nil {
		err = errc
	}
	if err != nil {
		return fmt.Errorf("failed to write to image file %q: %w", filename, err)
	}
	return nil
}

// Save saves the image to file with the specified filename.
// The format is determined from the filename extension:
// "jpg" (or "jpeg"), "png", "gif", "tif" (or "tiff") and "bmp" are supported.
//
// Examples:
//
//	// Save the image as PNG.
//	err := lutmap.Save(img, "out.png")
//
//	// Save the image as JPEG with optional quality parameter set to 80.
//	err := lutmap.Save(img, "out.jpg", lutmap.JPEGQuality(80))
func Save(img image.Image, filename string, opts ...EncodeOption) error {
	return save(filename, func(w io.Writer, f Format) error { return Encode(w, img, f, opts...) })
}

// SaveDocument is Save for documents, see EncodeDocument.
func SaveDocument(doc *Document, filename string, opts ...EncodeOption) error {
	return save(filename, func(w io.Writer, f Format) error { return EncodeDocument(w, doc, f, opts...) })
}

// ApplyDocument returns a new document with t applied to the image and to
// every animation frame. Frame timing, offsets and blending are kept.
func (t Table) ApplyDocument(doc *Document) (*Document, error) {
	img, err := t.Apply(doc.Image)
	if err != nil {
		return nil, err
	}
	ans := &Document{Format: doc.Format, Image: img}
	if doc.Animation != nil {
		a := *doc.Animation
		a.Frames = make([]apng.Frame, len(doc.Animation.Frames))
		for i, f := range doc.Animation.Frames {
			if f.Image, err = t.Apply(f.Image); err != nil {
				return nil, err
			}
			a.Frames[i] = f
		}
		ans.Animation = &a
	}
	return ans, nil
}
