package pdb

// PDB couples a filled table with the metadata it was generated under:
// the combination mode, the explicit goal, the p-pattern keying the table
// and the c-pattern the generating search traversed. Instances come out
// of a [Generator] or out of [Read]; after that they are read-only apart
// from the explicit Set escape hatch.
type PDB struct {
	mode     Mode
	cpattern string
	table    *Table
}

// Mode returns the combination mode of the database.
func (p *PDB) Mode() Mode { return p.mode }

// Goal returns the explicit goal the database was built toward.
func (p *PDB) Goal() []int { return p.table.Ranker().Goal() }

// PPattern returns the pattern keying the stored values.
func (p *PDB) PPattern() string { return p.table.Ranker().Pattern() }

// CPattern returns the pattern the generating search traversed.
func (p *PDB) CPattern() string { return p.cpattern }

// Capacity returns the size of the address space.
func (p *PDB) Capacity() Offset { return p.table.Capacity() }

// Size returns the number of cells written through insertion.
func (p *PDB) Size() Offset { return p.table.Size() }

// At returns the cell at index, bounds-checked.
func (p *PDB) At(index Offset) (Value, error) { return p.table.At(index) }

// Cell returns the cell at index without bounds checking.
func (p *PDB) Cell(index Offset) Value { return p.table.Cell(index) }

// Set overwrites the cell at index. Rewrites do not adjust Size.
func (p *PDB) Set(index Offset, v Value) { p.table.Set(index, v) }

// Mask abstracts perm with the p-pattern.
func (p *PDB) Mask(perm []int) []int { return p.table.Mask(perm) }

// Rank returns the perfect rank of perm under the p-pattern.
func (p *PDB) Rank(perm []int) (Offset, error) { return p.table.Rank(perm) }

// Value masks and ranks the given concrete permutation and returns the
// raw cell at that address, still in the offset-by-one encoding.
func (p *PDB) Value(perm []int) (Value, error) {
	index, err := p.table.Rank(p.table.Mask(perm))
	if err != nil {
		return 0, err
	}
	return p.table.Cell(index), nil
}

// Heuristic returns the admissible heuristic value of a concrete
// permutation: the true cost stored for its abstract state, or 0 when the
// cell was never written.
func (p *PDB) Heuristic(perm []int) (Value, error) {
	v, err := p.Value(perm)
	if err != nil {
		return 0, err
	}
	if v == zero {
		return 0, nil
	}
	return v - 1, nil
}
