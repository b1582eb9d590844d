package pdb

import "fmt"

// Table is the packed byte array of a pattern database: one cell per
// abstract state, addressed by the perfect rank of its permutation. A
// zero cell is empty; any other value is a g-value stored with the
// offset-by-one encoding.
//
// The backing buffer is allocated once, sized from the pattern's address
// space, and owned exclusively by the table.
type Table struct {
	ranker *Ranker
	cells  []Value
	size   Offset
}

// NewTable allocates a zero-initialized table for all abstract states of
// the goal under the pattern.
func NewTable(goal []int, pattern string) (*Table, error) {
	ranker, err := NewRanker(goal, pattern)
	if err != nil {
		return nil, err
	}
	return &Table{
		ranker: ranker,
		cells:  make([]Value, AddressSpace(pattern)),
	}, nil
}

// Ranker returns the ranker the table addresses cells with.
func (t *Table) Ranker() *Ranker { return t.ranker }

// Capacity returns the number of cells in the table.
func (t *Table) Capacity() Offset { return Offset(len(t.cells)) }

// Size returns the number of cells written through Insert. Cells written
// through Set are not counted.
func (t *Table) Size() Offset { return t.size }

// Insert writes the node's g-value at the rank of its permutation and
// returns that rank. It does not check for collisions; callers that need
// first-write-wins semantics consult Find before inserting.
func (t *Table) Insert(n Node) (Offset, error) {
	index, err := t.ranker.Rank(n.Perm)
	if err != nil {
		return 0, err
	}
	t.cells[index] = n.G
	t.size++
	return index, nil
}

// Find ranks the permutation and reports whether its cell has been
// written. The returned offset is valid in both cases.
func (t *Table) Find(perm []int) (Offset, bool, error) {
	index, err := t.ranker.Rank(perm)
	if err != nil {
		return 0, false, err
	}
	return index, t.cells[index] != zero, nil
}

// At returns the value at index, bounds-checked.
func (t *Table) At(index Offset) (Value, error) {
	if index >= Offset(len(t.cells)) {
		return 0, fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfBounds, index, len(t.cells))
	}
	return t.cells[index], nil
}

// Cell returns the value at index without bounds checking.
func (t *Table) Cell(index Offset) Value { return t.cells[index] }

// Set overwrites the value at index. Post-hoc rewrites through Set do not
// adjust Size.
func (t *Table) Set(index Offset, v Value) { t.cells[index] = v }

// Mask delegates to the table's ranker.
func (t *Table) Mask(perm []int) []int { return t.ranker.Mask(perm) }

// Rank delegates to the table's ranker.
func (t *Table) Rank(perm []int) (Offset, error) { return t.ranker.Rank(perm) }
