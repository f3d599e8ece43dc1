package lutmap

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/lutools/lutmap/pathutil"
)

var _ = fmt.Print

// WriteCube writes t as a .cube 3D LUT with resolution points per axis. The
// grid points are SampleSpan(0, 255, resolution) and every point is an exact
// table lookup. Red varies fastest, then green, then blue.
func WriteCube(w io.Writer, t Table, resolution int, title string) error {
	if err := t.check(); err != nil {
		return err
	}
	samples, err := SampleSpan(0, 255, resolution)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# Created with lutmap %s\n# https://github.com/lutools/lutmap\n\n", Version)
	fmt.Fprintf(bw, "TITLE %s\n", title)
	fmt.Fprintf(bw, "LUT_3D_SIZE %d\n\n", resolution)
	const q = 1.0 / 255.0
	line := make([]byte, 0, 32)
	for _, b := range samples {
		for _, g := range samples {
			for _, r := range samples {
				c := t[uint32(r)<<16|uint32(g)<<8|uint32(b)]
				line = strconv.AppendFloat(line[:0], float64(c.R)*q, 'f', 6, 64)
				line = append(line, ' ')
				line = strconv.AppendFloat(line, float64(c.G)*q, 'f', 6, 64)
				line = append(line, ' ')
				line = strconv.AppendFloat(line, float64(c.B)*q, 'f', 6, 64)
				line = append(line, '\n')
				if _, err = bw.Write(line); err != nil {
					return err
				}
			}
		}
	}
	return bw.Flush()
}

// ExportCube writes t as a .cube file at path. The TITLE is the base name of
// path. The resolution is validated before the file is created.
func ExportCube(t Table, resolution int, path string) (err error) {
	if err = t.check(); err != nil {
		return
	}
	if _, err = SampleSpan(0, 255, resolution); err != nil {
		return
	}
	st := time.Now()
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o666)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	if err = WriteCube(f, t, resolution, pathutil.BaseName(path)); err != nil {
		f.Close()
		return fmt.Errorf("%w: writing %s: %w", ErrIO, path, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	Logger().Debug("exported cube", "path", path, "resolution", resolution, "elapsed", time.Since(st))
	return nil
}
