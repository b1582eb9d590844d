// Package spacedot renders small abstract state spaces as node-link
// diagrams.
//
// The graph is enumerated the same way the generator searches it: start
// from the abstracted goal and expand predecessors until the space is
// exhausted. Nodes are abstract states labelled with their permutation
// and perfect rank; edges carry operator costs when Options.Costs is set.
// Because address spaces
// explode factorially the renderer refuses spaces above a configurable
// node cap: the output is a debugging aid for toy patterns, not a
// visualization of production databases.
package spacedot
