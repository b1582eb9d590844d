// Package pancake implements the N-Pancake puzzle as a pattern-database
// domain.
//
// A state is a permutation of 1..N. The only operator, flip(k), reverses
// the first k+1 positions for k in 1..N-1, so every state has N-1
// neighbours. Flips are involutory: applying the same flip twice restores
// the state, which makes predecessors coincide with successors and the
// backward search of the generator a plain forward expansion.
//
// Two cost variants are supported. Unit charges 1 for every flip. Heavy
// charges the radius of the first disc below the spatula, following
// Hatem and Ruml (SoCS 2014): the cost of flip(k) is perm[k+1], except
// for the full flip whose cost is N+1 (the table is never abstracted).
// When the disc below the spatula was abstracted away, the cost falls
// back to the default cost configured at construction; see DefaultCost.
package pancake

import (
	"fmt"
	"strings"

	"github.com/matzehuels/patterndb/pkg/pdb"
)

// Variant selects the operator cost function.
type Variant int

const (
	// Unit charges every flip 1.
	Unit Variant = iota
	// Heavy charges each flip the radius of the disc below the spatula.
	Heavy
)

// String returns the name used on the command line.
func (v Variant) String() string {
	switch v {
	case Unit:
		return "unit"
	case Heavy:
		return "heavy-cost"
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

// ParseVariant decodes a case-insensitive variant name.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "unit":
		return Unit, nil
	case "heavy-cost":
		return Heavy, nil
	}
	return 0, fmt.Errorf("pancake: unknown variant %q (choices: unit, heavy-cost)", s)
}

// Puzzle is an immutable N-Pancake domain configuration. Two puzzles with
// different variants or default costs can coexist; nothing is process
// wide.
type Puzzle struct {
	n           int
	variant     Variant
	defaultCost pdb.Value
}

// Option configures a Puzzle.
type Option func(*Puzzle)

// WithVariant selects the cost variant. The default is Unit.
func WithVariant(v Variant) Option {
	return func(p *Puzzle) { p.variant = v }
}

// WithDefaultCost sets the cost charged for a heavy flip whose
// cost-determining disc was abstracted away. Compute it with DefaultCost
// from the goal and the pattern the search traverses.
func WithDefaultCost(c pdb.Value) Option {
	return func(p *Puzzle) { p.defaultCost = c }
}

// New returns a puzzle over permutations of length n.
func New(n int, opts ...Option) *Puzzle {
	p := &Puzzle{n: n, variant: Unit, defaultCost: 1}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// N returns the permutation length.
func (p *Puzzle) N() int { return p.n }

// Variant returns the configured cost variant.
func (p *Puzzle) Variant() Variant { return p.variant }

// DefaultCost returns the configured abstracted-disc cost.
func (p *Puzzle) DefaultCost() pdb.Value { return p.defaultCost }

// DefaultCost computes the cost to charge when the disc below the spatula
// is abstracted: the minimum symbol among those the pattern abstracts.
// When the pattern abstracts nothing the value saturates at 255; it can
// never be consulted then, since no abstracted disc exists. When
// everything is abstracted it equals the minimum symbol of the goal.
//
// Charging the same cost for every abstracted disc keeps the reverse
// search cost-symmetric, so the backward generator computes true inverse
// path costs and the resulting heuristic stays consistent.
func DefaultCost(goal []int, pattern string) pdb.Value {
	cost := 0xff
	for i, s := range goal {
		if pattern[i] == '*' && s < cost {
			cost = s
		}
	}
	return pdb.Value(cost)
}

// Predecessors appends every neighbour of perm to dst together with its
// operator cost. perm may be abstract; abstracted positions hold
// pdb.NonPat and cost the default cost when they sit below the spatula.
func (p *Puzzle) Predecessors(perm []int, dst []pdb.Edge) []pdb.Edge {
	for k := 1; k < p.n; k++ {
		dst = append(dst, pdb.Edge{Cost: p.cost(perm, k), Perm: flip(perm, k)})
	}
	return dst
}

// cost returns the cost of flip(k) applied to perm.
func (p *Puzzle) cost(perm []int, k int) pdb.Value {
	if p.variant == Unit {
		return 1
	}
	if k == p.n-1 {
		return pdb.Value(p.n + 1)
	}
	if below := perm[k+1]; below != pdb.NonPat {
		return pdb.Value(below)
	}
	return p.defaultCost
}

// flip returns a copy of perm with positions [0, k] reversed.
func flip(perm []int, k int) []int {
	child := make([]int, len(perm))
	copy(child, perm)
	for i := 0; i <= k/2; i++ {
		child[i], child[k-i] = child[k-i], child[i]
	}
	return child
}
