package lutmap

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

var _ = fmt.Print

// CacheFileSize is the exact size of a cache file: one R, G, B, A record per
// table entry in table index order, with no header.
const CacheFileSize = 4 * TableSize

const cache_chunk = 1 << 16

// WriteTo writes t in the cache file format.
func (t Table) WriteTo(w io.Writer) (n int64, err error) {
	if err = t.check(); err != nil {
		return
	}
	buf := make([]byte, 4*cache_chunk)
	for start := 0; start < len(t); start += cache_chunk {
		b := buf
		for _, c := range t[start : start+cache_chunk] {
			s := b[0:4:4]
			s[0], s[1], s[2], s[3] = c.R, c.G, c.B, c.A
			b = b[4:]
		}
		m, werr := w.Write(buf)
		n += int64(m)
		if werr != nil {
			return n, werr
		}
	}
	return
}

// ReadFrom fills t from data in the cache file format. Exactly CacheFileSize
// bytes are consumed. If r ends early the error wraps ErrCorruptCache and the
// contents of t are unspecified.
func (t Table) ReadFrom(r io.Reader) (n int64, err error) {
	if err = t.check(); err != nil {
		return
	}
	buf := make([]byte, 4*cache_chunk)
	for start := 0; start < len(t); start += cache_chunk {
		m, rerr := io.ReadFull(r, buf)
		n += int64(m)
		if rerr != nil {
			if errors.Is(rerr, io.EOF) || errors.Is(rerr, io.ErrUnexpectedEOF) {
				return n, fmt.Errorf("%w: only %d of %d bytes available", ErrCorruptCache, n, CacheFileSize)
			}
			return n, fmt.Errorf("%w: %w", ErrIO, rerr)
		}
		b := buf
		dest := t[start : start+cache_chunk]
		for i := range dest {
			s := b[0:4:4]
			dest[i] = Color{s[0], s[1], s[2], s[3]}
			b = b[4:]
		}
	}
	return
}

// SaveCache writes t to path. The data goes to a temporary file next to
// path which is renamed over path once it is complete, so path is never
// left truncated.
func SaveCache(t Table, path string) (err error) {
	if err = t.check(); err != nil {
		return
	}
	st := time.Now()
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(f.Name())
		}
	}()
	if err = f.Chmod(0o644); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	if _, err = t.WriteTo(f); err != nil {
		return fmt.Errorf("%w: writing %s: %w", ErrIO, path, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	if err = os.Rename(f.Name(), path); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	Logger().Debug("saved cache", "path", path, "elapsed", time.Since(st))
	return nil
}

// LoadCache reads a table written by SaveCache. A missing or unreadable file
// gives an error wrapping ErrIO, a short file one wrapping ErrCorruptCache.
// Bytes after the first CacheFileSize are ignored.
func LoadCache(path string) (Table, error) {
	st := time.Now()
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer f.Close()
	advise_sequential(f)
	t := NewTable()
	if _, err = t.ReadFrom(f); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	Logger().Debug("loaded cache", "path", path, "elapsed", time.Since(st))
	return t, nil
}
