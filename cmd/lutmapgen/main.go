package main

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"strings"

	"github.com/lutools/lutmap"
)

var _ = fmt.Print

func main() {
	var err error
	defer func() {
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}()
	if len(os.Args) > 2 {
		fmt.Fprintln(os.Stderr, "usage: go run ./cmd/lutmapgen [output-prefix]")
		os.Exit(1)
	}
	output_prefix := fmt.Sprintf("lutmap%d", lutmap.MapSize)
	if len(os.Args) == 2 {
		output_prefix = os.Args[1]
	}
	for _, axis := range []lutmap.Axis{lutmap.AxisB, lutmap.AxisG, lutmap.AxisR} {
		output_file := output_prefix + ".png"
		if axis != lutmap.AxisB {
			output_file = fmt.Sprintf("%s.%s.png", output_prefix, strings.ToLower(axis.String()))
		}
		var img *image.NRGBA
		if img, err = lutmap.GenerateMap(axis, true); err != nil {
			return
		}
		if err = lutmap.Save(img, output_file, lutmap.PNGCompressionLevel(png.BestCompression)); err != nil {
			return
		}
		fmt.Println("Map saved to:", output_file)
	}
}
