package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/lutools/lutmap"
	"github.com/lutools/lutmap/batch"
	"github.com/lutools/lutmap/config"
	"github.com/lutools/lutmap/pathutil"
)

var _ = fmt.Print

// load_table reads the cache for lut_path, building it from the map image
// when it is missing. A truncated cache is rebuilt if the map image is
// available.
func load_table(lut_path, cache_path string, stdout, stderr io.Writer) (lutmap.Table, error) {
	if pathutil.Exists(cache_path) {
		t, err := lutmap.LoadCache(cache_path)
		if err == nil {
			return t, nil
		}
		if !errors.Is(err, lutmap.ErrCorruptCache) || pathutil.Ext(lut_path) == "lut" {
			return nil, err
		}
		fmt.Fprintln(stderr, "warning:", err)
		lutmap.Logger().Warn("regenerating corrupt cache", "cache", cache_path, "map", lut_path)
	}
	img, err := lutmap.Open(lut_path, lutmap.AutoOrientation(false))
	if err != nil {
		return nil, err
	}
	t, err := lutmap.BuildWithTag(img, pathutil.SecondaryExt(lut_path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", lut_path, err)
	}
	if err = lutmap.SaveCache(t, cache_path); err != nil {
		return nil, err
	}
	fmt.Fprintf(stdout, "generated: %s (%s)\n", cache_path, humanize.Bytes(lutmap.CacheFileSize))
	return t, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(stdout, usage)
		return 0
	}
	cfg, err := config.Load(config.Location())
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}
	closer, err := cfg.SetLogger(stderr)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}
	defer closer.Close()

	inv := parse_args(args, cfg.Cube.Resolution)
	cache_path := pathutil.StripExt(inv.lut_path) + ".lut"
	if inv.lut_only() && pathutil.Exists(cache_path) {
		return 0
	}
	table, err := load_table(inv.lut_path, cache_path, stdout, stderr)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}
	if inv.cube && inv.resolution != 0 {
		cube_path := pathutil.StripExt(inv.lut_path) + ".cube"
		if err = lutmap.ExportCube(table, inv.resolution, cube_path); err != nil {
			fmt.Fprintln(stderr, "error:", err)
			return 1
		}
		st, err := os.Stat(cube_path)
		if err != nil {
			fmt.Fprintln(stderr, "error:", err)
			return 1
		}
		fmt.Fprintf(stdout, "generated: cube file from LUT with resolution %d (%s)\n", inv.resolution, humanize.Bytes(uint64(st.Size())))
	}
	if len(inv.inputs) == 0 {
		return 0
	}

	batch.Run(table, batch.JobsFromArgs(inv.inputs, inv.lut_path), batch.Options{
		Workers: cfg.Workers(),
		Encode:  cfg.EncodeOptions(),
		Progress: func(r batch.Result) {
			if r.Err != nil {
				fmt.Fprintln(stderr, "error:", r.Err)
			} else {
				fmt.Fprintln(stdout, "saved:", r.Output)
			}
		},
	})
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
