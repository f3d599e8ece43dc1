//go:build !linux

package lutmap

import "os"

func advise_sequential(f *os.File) {}
