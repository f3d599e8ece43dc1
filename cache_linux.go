//go:build linux

package lutmap

import (
	"os"

	"golang.org/x/sys/unix"
)

// advise_sequential tells the kernel the whole file is about to be read in
// order, which lets it read ahead aggressively.
func advise_sequential(f *os.File) {
	if err := unix.Fadvise(int(f.Fd()), 0, 0, unix.FADV_SEQUENTIAL); err != nil {
		Logger().Debug("fadvise failed", "path", f.Name(), "error", err)
	}
}
