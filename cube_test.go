package lutmap

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

var _ = fmt.Print

func cube_body(t *testing.T, data string) (header, body []string) {
	t.Helper()
	lines := strings.Split(strings.TrimSuffix(data, "\n"), "\n")
	for i, line := range lines {
		if strings.HasPrefix(line, "LUT_3D_SIZE ") {
			require.Equal(t, "", lines[i+1])
			return lines[:i+1], lines[i+2:]
		}
	}
	t.Fatalf("no LUT_3D_SIZE line in:\n%s", data)
	return
}

func TestWriteCubeIdentity(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCube(&buf, IdentityTable(), 2, "identity"))
	header, body := cube_body(t, buf.String())
	require.Equal(t, []string{
		"# Created with lutmap " + Version.String(),
		"# https://github.com/lutools/lutmap",
		"",
		"TITLE identity",
		"LUT_3D_SIZE 2",
	}, header)
	want := []string{
		"0.000000 0.000000 0.000000",
		"1.000000 0.000000 0.000000",
		"0.000000 1.000000 0.000000",
		"1.000000 1.000000 0.000000",
		"0.000000 0.000000 1.000000",
		"1.000000 0.000000 1.000000",
		"0.000000 1.000000 1.000000",
		"1.000000 1.000000 1.000000",
	}
	if diff := cmp.Diff(want, body); diff != "" {
		t.Fatalf("unexpected cube body (-want +got):\n%s", diff)
	}
}

func TestWriteCubeLookups(t *testing.T) {
	table := NewTable()
	// only the grid points of a resolution 3 cube are read
	table[Opaque(128, 0, 0).HexRGB()] = Color{51, 102, 153, 255}
	table[Opaque(255, 128, 0).HexRGB()] = Color{255, 0, 1, 0}
	var buf bytes.Buffer
	require.NoError(t, WriteCube(&buf, table, 3, "t"))
	_, body := cube_body(t, buf.String())
	require.Len(t, body, 27)
	require.Equal(t, "0.200000 0.400000 0.600000", body[1])
	require.Equal(t, "1.000000 0.000000 0.003922", body[5])
	require.Equal(t, "0.000000 0.000000 0.000000", body[26])
}

func TestWriteCubeSizes(t *testing.T) {
	table := IdentityTable()
	for _, res := range []int{2, 17, 33} {
		var buf bytes.Buffer
		require.NoError(t, WriteCube(&buf, table, res, "x"))
		header, body := cube_body(t, buf.String())
		require.Equal(t, fmt.Sprintf("LUT_3D_SIZE %d", res), header[len(header)-1])
		require.Len(t, body, res*res*res)
		require.Equal(t, "1.000000 1.000000 1.000000", body[len(body)-1])
	}
}

func TestExportCube(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "film.g.cube")
	require.NoError(t, ExportCube(IdentityTable(), 2, path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "\nTITLE film.g\n")

	bad := filepath.Join(dir, "bad.cube")
	require.ErrorIs(t, ExportCube(IdentityTable(), 1, bad), ErrInvalidArgument)
	_, err = os.Stat(bad)
	require.True(t, os.IsNotExist(err), "a file was created for an invalid resolution")

	require.ErrorIs(t, ExportCube(IdentityTable(), 2, filepath.Join(dir, "missing", "x.cube")), ErrIO)
	require.ErrorIs(t, WriteCube(&bytes.Buffer{}, IdentityTable(), 0, "x"), ErrInvalidArgument)
}
