package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const testDefs = `node meV milli-electron-volt
node eV electron-volt
node K Kelvin
edge meV 0.001 eV NOINVERT
edge eV 11604.52 K NOINVERT
`

func writeDefs(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "units.def")
	require.NoError(t, os.WriteFile(path, []byte(testDefs), 0600))
	return path
}

func TestRun_Conversion(t *testing.T) {
	path := writeDefs(t)
	out := &bytes.Buffer{}

	err := run(out, &bytes.Buffer{}, []string{"-defs", path, "25", "meV", "K"})
	require.NoError(t, err)
	require.Equal(t, " 25 meV = 290.113 K\n", out.String())
}

func TestRun_Listing(t *testing.T) {
	path := writeDefs(t)
	out := &bytes.Buffer{}

	err := run(out, &bytes.Buffer{}, []string{"-defs", path})
	require.NoError(t, err)
	require.True(t, strings.Contains(out.String(), "allowed units are:"))
	require.True(t, strings.Contains(out.String(), "Kelvin"))
}

func TestRun_Help(t *testing.T) {
	out := &bytes.Buffer{}

	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	err := run(out, &bytes.Buffer{}, []string{"-h"})
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "expected help text to be printed to the output buffer")
}

func TestRun_UnreachableUnit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "units.def")
	defs := "node A aa\nnode B bb\nnode C cc\nedge A 2.0 B NOINVERT\n"
	require.NoError(t, os.WriteFile(path, []byte(defs), 0600))

	err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{"-defs", path, "1", "A", "C"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "not connected")
}
