package pdb_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/patterndb/pkg/pancake"
	"github.com/matzehuels/patterndb/pkg/pdb"
)

func TestQueryMaxComposition(t *testing.T) {
	// Two MAX databases over the same goal but different patterns: the
	// facade answers the maximum of the individual values.
	p1 := generate(t, 6, "--**--", "--**--").PDB()
	p2 := generate(t, 6, "**----", "**----").PDB()

	q, err := pdb.NewQuery(p1, p2)
	require.NoError(t, err)

	for _, perm := range pdb.Permutations(6, 100) {
		values, err := q.Values(perm)
		require.NoError(t, err)
		require.Len(t, values, 2)

		h1, err := p1.Heuristic(perm)
		require.NoError(t, err)
		h2, err := p2.Heuristic(perm)
		require.NoError(t, err)
		assert.Equal(t, []pdb.Value{h1, h2}, values)

		combined, err := q.Evaluate(perm)
		require.NoError(t, err)
		assert.Equal(t, max(h1, h2), combined)
	}
}

func TestQueryLoad(t *testing.T) {
	dir := t.TempDir()
	paths := make([]string, 0, 2)
	for _, pattern := range []string{"--**--", "**----"} {
		out := generate(t, 6, pattern, pattern).PDB()
		path := filepath.Join(dir, pattern+".pdb")
		require.NoError(t, pdb.Write(out, path))
		paths = append(paths, path)
	}

	q, err := pdb.Load(paths...)
	require.NoError(t, err)
	assert.Equal(t, pdb.Identity(6), q.Goal())
	assert.Equal(t, pdb.Max, q.Mode())

	v, err := q.Evaluate([]int{6, 5, 4, 3, 2, 1})
	require.NoError(t, err)
	assert.Equal(t, pdb.Value(1), v, "one flip reaches the goal")
}

func TestQueryIncompatibleGoals(t *testing.T) {
	p1 := generate(t, 4, "----", "----").PDB()

	puzzle := pancake.New(4)
	gen, err := pdb.NewGenerator(pdb.Max, puzzle, []int{4, 3, 2, 1}, "----", "----")
	require.NoError(t, err)
	require.NoError(t, gen.Generate())

	_, err = pdb.NewQuery(p1, gen.PDB())
	assert.ErrorIs(t, err, pdb.ErrIncompatiblePDBs)
}

func TestQueryIncompatibleModes(t *testing.T) {
	p1 := generate(t, 4, "----", "----").PDB()

	puzzle := pancake.New(4)
	gen, err := pdb.NewGenerator(pdb.Add, puzzle, pdb.Identity(4), "----", "----")
	require.NoError(t, err)
	require.NoError(t, gen.Generate())

	_, err = pdb.NewQuery(p1, gen.PDB())
	assert.ErrorIs(t, err, pdb.ErrIncompatiblePDBs)
}

func TestQueryPermutationShape(t *testing.T) {
	q, err := pdb.NewQuery(generate(t, 4, "----", "----").PDB())
	require.NoError(t, err)
	_, err = q.Evaluate([]int{1, 2, 3})
	assert.ErrorIs(t, err, pdb.ErrPermutationShape)
}

func TestQueryAddReserved(t *testing.T) {
	puzzle := pancake.New(4)
	gen, err := pdb.NewGenerator(pdb.Add, puzzle, pdb.Identity(4), "----", "----")
	require.NoError(t, err)
	require.NoError(t, gen.Generate())

	q, err := pdb.NewQuery(gen.PDB())
	require.NoError(t, err)
	_, err = q.Evaluate(pdb.Identity(4))
	assert.ErrorIs(t, err, pdb.ErrAddNotImplemented)
}
