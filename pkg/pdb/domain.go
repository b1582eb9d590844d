package pdb

// Edge is one predecessor arc: a state whose forward application of an
// operator of the given cost reaches the expanded state. Costs are
// positive and fit in one byte.
type Edge struct {
	Cost Value
	Perm []int
}

// Domain is the contract a problem family implements to be searchable by
// the generator. Implementations carry their own configuration (cost
// variant, default cost) as immutable state threaded at construction, so
// two databases over different variants can coexist.
type Domain interface {
	// Predecessors appends to dst every predecessor of perm and returns
	// the extended slice. The permutation may be abstract: positions
	// holding NonPat must be handled, and the cost of an operator whose
	// cost-determining element was abstracted away must be derivable from
	// the abstract state alone.
	//
	// For involutory operators, as in pancake or sliding-tile puzzles,
	// predecessors coincide with successors.
	Predecessors(perm []int, dst []Edge) []Edge
}
