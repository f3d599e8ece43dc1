package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseArgs(t *testing.T) {
	for _, tc := range []struct {
		args []string
		want invocation
	}{
		{[]string{"film.png"}, invocation{lut_path: "film.png"}},
		{[]string{"film.png", "-cube"}, invocation{lut_path: "film.png", cube: true, resolution: 25}},
		{[]string{"film.png", "-cube", "33"}, invocation{lut_path: "film.png", cube: true, resolution: 33}},
		{[]string{"film.png", "-cube", "0", "a.jpg"}, invocation{lut_path: "film.png", cube: true, inputs: []string{"a.jpg"}}},
		{[]string{"film.png", "-cube", "a.jpg", "-b.jpg"}, invocation{lut_path: "film.png", cube: true, resolution: 25, inputs: []string{"a.jpg", "-b.jpg"}}},
		{[]string{"film.png", "-cube", "17x", "a.jpg"}, invocation{lut_path: "film.png", cube: true, resolution: 25, inputs: []string{"17x", "a.jpg"}}},
		{[]string{"film.lut", "a.jpg", "-cube"}, invocation{lut_path: "film.lut", inputs: []string{"a.jpg", "-cube"}}},
	} {
		got := parse_args(tc.args, 25)
		if diff := cmp.Diff(tc.want, got, cmp.AllowUnexported(invocation{})); diff != "" {
			t.Fatalf("parse_args(%q) (-want +got):\n%s", tc.args, diff)
		}
	}
	if !parse_args([]string{"x.png"}, 25).lut_only() {
		t.Fatal("a bare LUT argument is lut only")
	}
	if parse_args([]string{"x.png", "-cube"}, 25).lut_only() {
		t.Fatal("-cube is not lut only")
	}
}
