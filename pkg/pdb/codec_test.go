package pdb_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/patterndb/pkg/pdb"
)

func TestWriteReadRoundTrip(t *testing.T) {
	// Generate, write, read back: metadata and every byte identical.
	gen := generate(t, 8, "--****--", "--****--")
	require.NoError(t, gen.Doctor())
	out := gen.PDB()

	path := filepath.Join(t.TempDir(), "pancake-8.pdb")
	require.NoError(t, pdb.Write(out, path))

	in, err := pdb.Read(path)
	require.NoError(t, err)

	assert.Equal(t, out.Mode(), in.Mode())
	assert.Equal(t, out.Goal(), in.Goal())
	assert.Equal(t, out.PPattern(), in.PPattern())
	assert.Equal(t, out.CPattern(), in.CPattern())
	require.Equal(t, out.Capacity(), in.Capacity())
	for i := pdb.Offset(0); i < out.Capacity(); i++ {
		require.Equal(t, out.Cell(i), in.Cell(i), "cell %d", i)
	}
}

func TestWriteFileLayout(t *testing.T) {
	gen := generate(t, 4, "----", "----")
	out := gen.PDB()

	path := filepath.Join(t.TempDir(), "layout.pdb")
	require.NoError(t, pdb.Write(out, path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Len(t, raw, 4+3*4+24)

	assert.Equal(t, "MAX", string(raw[:3]))
	assert.Equal(t, byte(4), raw[3])
	assert.Equal(t, []byte{1, 2, 3, 4}, raw[4:8])
	assert.Equal(t, "----", string(raw[8:12]))
	assert.Equal(t, "----", string(raw[12:16]))

	// Stored bytes are true costs: the goal cell holds 0 on disk and the
	// offset-by-one is only an in-memory convention.
	goalIndex, err := out.Rank(out.Mask(pdb.Identity(4)))
	require.NoError(t, err)
	assert.Equal(t, byte(0), raw[16+int(goalIndex)])
	assert.Equal(t, pdb.Value(1), out.Cell(goalIndex))
}

func TestReadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := pdb.Read(filepath.Join(dir, "absent.pdb"))
	assert.ErrorIs(t, err, pdb.ErrFileMissing)

	_, err = pdb.Read(dir)
	assert.ErrorIs(t, err, pdb.ErrNotRegular)

	truncated := filepath.Join(dir, "truncated.pdb")
	require.NoError(t, os.WriteFile(truncated, []byte("MA"), 0o644))
	_, err = pdb.Read(truncated)
	assert.ErrorIs(t, err, pdb.ErrHeaderMode)

	badMode := filepath.Join(dir, "badmode.pdb")
	require.NoError(t, os.WriteFile(badMode, []byte("XYZ\x04"), 0o644))
	_, err = pdb.Read(badMode)
	assert.ErrorIs(t, err, pdb.ErrHeaderMode)

	// A correct header whose payload length disagrees with the pattern.
	short := filepath.Join(dir, "short.pdb")
	header := append([]byte("MAX\x03"), []byte{1, 2, 3}...)
	header = append(header, []byte("---")...)
	header = append(header, []byte("---")...)
	require.NoError(t, os.WriteFile(short, append(header, 0, 0), 0o644))
	_, err = pdb.Read(short)
	assert.ErrorIs(t, err, pdb.ErrSizeMismatch)
}

func TestWriteLeavesNoPartialOutput(t *testing.T) {
	gen := generate(t, 4, "----", "----")
	out := gen.PDB()

	dir := t.TempDir()
	path := filepath.Join(dir, "missing", "deep.pdb")
	require.Error(t, pdb.Write(out, path))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "a failed write must not leave files behind")
}
