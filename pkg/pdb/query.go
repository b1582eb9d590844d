package pdb

import (
	"fmt"
	"slices"
)

// Query combines several pattern databases built over the same goal and
// mode into one heuristic. MAX databases answer the elementwise maximum
// of their values; ADD databases are reserved and refuse to combine.
type Query struct {
	pdbs []*PDB
}

// NewQuery wraps the given databases, enforcing that they share the goal
// (length and elements) and the mode. The order of the databases is the
// order of the per-database values returned by Values.
func NewQuery(pdbs ...*PDB) (*Query, error) {
	if len(pdbs) == 0 {
		return nil, fmt.Errorf("%w: no databases given", ErrIncompatiblePDBs)
	}

	goal := pdbs[0].Goal()
	mode := pdbs[0].Mode()
	for _, p := range pdbs[1:] {
		if len(p.Goal()) != len(goal) {
			return nil, fmt.Errorf("%w: goals of different size", ErrIncompatiblePDBs)
		}
		if !slices.Equal(p.Goal(), goal) {
			return nil, fmt.Errorf("%w: different goals", ErrIncompatiblePDBs)
		}
		if p.Mode() != mode {
			return nil, fmt.Errorf("%w: different modes", ErrIncompatiblePDBs)
		}
	}
	return &Query{pdbs: pdbs}, nil
}

// Load reads every path and wraps the resulting databases in a Query.
func Load(paths ...string) (*Query, error) {
	pdbs := make([]*PDB, 0, len(paths))
	for _, path := range paths {
		p, err := Read(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		pdbs = append(pdbs, p)
	}
	return NewQuery(pdbs...)
}

// PDBs returns the wrapped databases in load order.
func (q *Query) PDBs() []*PDB { return q.pdbs }

// Goal returns the shared goal.
func (q *Query) Goal() []int { return q.pdbs[0].Goal() }

// Mode returns the shared mode.
func (q *Query) Mode() Mode { return q.pdbs[0].Mode() }

// Values returns the true heuristic value of perm under every database,
// in load order. It fails with ErrPermutationShape when the permutation
// length differs from the goal.
func (q *Query) Values(perm []int) ([]Value, error) {
	if len(perm) != len(q.Goal()) {
		return nil, fmt.Errorf("%w: got %d symbols, goal has %d",
			ErrPermutationShape, len(perm), len(q.Goal()))
	}

	values := make([]Value, len(q.pdbs))
	for i, p := range q.pdbs {
		v, err := p.Heuristic(perm)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

// Evaluate reduces the per-database values of perm according to the
// shared mode. MAX answers the maximum; ADD is reserved and fails with
// ErrAddNotImplemented.
func (q *Query) Evaluate(perm []int) (Value, error) {
	values, err := q.Values(perm)
	if err != nil {
		return 0, err
	}

	switch q.Mode() {
	case Max:
		return slices.Max(values), nil
	case Add:
		return 0, ErrAddNotImplemented
	}
	return 0, fmt.Errorf("%w: unknown mode %d", ErrIncompatiblePDBs, q.Mode())
}
