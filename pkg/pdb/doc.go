// Package pdb builds and queries pattern databases over permutation state
// spaces.
//
// A pattern database (PDB) is a complete table of minimum path costs from
// every abstract state to a fixed goal, computed once by an exhaustive
// backward breadth-first exploration of the abstract space obtained by
// masking irrelevant symbols. At query time any concrete state is masked,
// ranked with a perfect hash, and answered with a single byte read, which
// makes the PDB an O(1) admissible heuristic.
//
// # Building blocks
//
// The package is assembled from small pieces, leaves first:
//
//   - [Ranker]: the Myrvold-Ruskey perfect ranking of full and partial
//     permutations under a pattern.
//   - [Table]: the packed byte array indexed by rank.
//   - [Open]: a monotone bucketed queue keyed by integer g-value.
//   - [Generator]: the backward brute-force search that fills a table,
//     plus the post-build doctor check.
//   - [Write] / [Read]: the on-disk codec.
//   - [Query]: the facade that loads several PDBs over the same goal and
//     combines their values.
//
// Problem families plug in through the [Domain] interface; the reference
// implementation is the N-Pancake in package pancake.
//
// # Value encoding
//
// Table cells use an offset-by-one encoding: 0 means "empty", any other
// value v means "true cost v-1". The offset is removed when a PDB is
// written to disk and restored when it is read back, so the stored form
// carries true costs. A stored 0 is either a zero cost (the abstract goal)
// or an entry never reached; the reader loads both as true cost 0.
package pdb
