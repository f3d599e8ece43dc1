// Package pathutil has the file name helpers used to derive cache, cube and
// output names. Both '/' and '\' count as directory separators so that names
// typed on Windows behave the same everywhere.
package pathutil

import (
	"os"
	"strings"
)

const separators = `/\`

// Dir returns everything before the last separator, or "" if there is none.
func Dir(path string) string {
	if i := strings.LastIndexAny(path, separators); i >= 0 {
		return path[:i]
	}
	return ""
}

// FileName returns everything after the last separator.
func FileName(path string) string {
	return path[strings.LastIndexAny(path, separators)+1:]
}

// BaseName returns the file name with its last extension removed.
func BaseName(path string) string {
	name := FileName(path)
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[:i]
	}
	return name
}

// StripExt returns path with its last extension removed. Only a dot in the
// file name counts, dots in directory names are left alone.
func StripExt(path string) string {
	slash := strings.LastIndexAny(path, separators)
	if i := strings.LastIndexByte(path, '.'); i > slash {
		return path[:i]
	}
	return path
}

// Ext returns the lower-cased last extension of path without the dot.
func Ext(path string) string {
	slash := strings.LastIndexAny(path, separators)
	if i := strings.LastIndexByte(path, '.'); i > slash {
		return strings.ToLower(path[i+1:])
	}
	return ""
}

// SecondaryExt returns the extension before the last one, lower-cased.
// SecondaryExt("a.b.c") is "b".
func SecondaryExt(path string) string {
	return Ext(StripExt(path))
}

// Exists reports whether path names something that can be opened for
// reading.
func Exists(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	f.Close()
	return true
}
