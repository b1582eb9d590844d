package pdb

// Node pairs an abstract state with its g-value during generation. Nodes
// are owned values: the queue and the tables never alias each other's
// permutations.
type Node struct {
	Perm []int
	G    Value
}
