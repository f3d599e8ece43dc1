package main

import (
	"fmt"
	"strconv"
)

var _ = fmt.Print

const usage = "usage: lutools {LUT | LUT_MAP} [-cube [RESOLUTION]] [INPUT [-OUTPUT]]..."

type invocation struct {
	lut_path   string
	cube       bool
	resolution int
	inputs     []string
}

// parse_args splits the command line, without the program name. The
// resolution after -cube is optional, an argument that is not an integer is
// taken as the first input.
func parse_args(args []string, default_resolution int) (ans invocation) {
	ans.lut_path = args[0]
	rest := args[1:]
	if len(rest) > 0 && rest[0] == "-cube" {
		ans.cube = true
		ans.resolution = default_resolution
		rest = rest[1:]
		if len(rest) > 0 {
			if n, err := strconv.Atoi(rest[0]); err == nil {
				ans.resolution = n
				rest = rest[1:]
			}
		}
	}
	ans.inputs = rest
	return
}

func (self invocation) lut_only() bool {
	return !self.cube && len(self.inputs) == 0
}
