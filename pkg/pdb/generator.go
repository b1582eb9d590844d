package pdb

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Generator runs the backward brute-force breadth-first search that fills
// a pattern database.
//
// The search traverses the abstract space induced by the c-pattern, using
// a second table over that space as its closed set, and records costs
// keyed by the p-pattern. The c-pattern must preserve every symbol the
// p-pattern preserves; otherwise the output table would silently stay
// under-populated.
type Generator struct {
	mode   Mode
	domain Domain
	goal   []int

	table  *Table // output, keyed by the p-pattern
	closed *Table // search space, keyed by the c-pattern

	expansions Offset
	elapsed    time.Duration

	logger         *log.Logger
	progress       func(expanded Offset)
	progressStride Offset
}

// GenOption configures a Generator.
type GenOption func(*Generator)

// WithLogger makes the generator report search milestones at debug level.
func WithLogger(l *log.Logger) GenOption {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithProgress registers a callback invoked with the running expansion
// count every stride expansions. The generator never renders progress
// itself; consumers decide how to surface it.
func WithProgress(stride Offset, fn func(expanded Offset)) GenOption {
	return func(g *Generator) {
		if stride > 0 && fn != nil {
			g.progress = fn
			g.progressStride = stride
		}
	}
}

// NewGenerator prepares a generation run of the given mode toward an
// explicit goal. The output table is keyed by ppattern; the search runs
// in the space induced by cpattern, commonly the same string. It fails
// fast with ErrIncompatiblePDBs when cpattern abstracts a symbol that
// ppattern preserves.
func NewGenerator(mode Mode, domain Domain, goal []int, ppattern, cpattern string, opts ...GenOption) (*Generator, error) {
	if len(ppattern) != len(cpattern) {
		return nil, fmt.Errorf("%w: p-pattern %q, c-pattern %q",
			ErrIncompatiblePDBs, ppattern, cpattern)
	}
	for i := range ppattern {
		if ppattern[i] == '-' && cpattern[i] != '-' {
			return nil, fmt.Errorf("%w: c-pattern %q abstracts symbol preserved by p-pattern %q",
				ErrIncompatiblePDBs, cpattern, ppattern)
		}
	}

	table, err := NewTable(goal, ppattern)
	if err != nil {
		return nil, err
	}
	closed, err := NewTable(goal, cpattern)
	if err != nil {
		return nil, err
	}

	g := &Generator{
		mode:   mode,
		domain: domain,
		goal:   append([]int(nil), goal...),
		table:  table,
		closed: closed,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Expansions returns the number of nodes expanded by Generate.
func (g *Generator) Expansions() Offset { return g.expansions }

// Elapsed returns the wall-clock time Generate took.
func (g *Generator) Elapsed() time.Duration { return g.elapsed }

// PDB returns the generated database. Call it only after Generate has
// succeeded.
func (g *Generator) PDB() *PDB {
	return &PDB{mode: g.mode, cpattern: g.closed.Ranker().Pattern(), table: g.table}
}

// Generate fills the table with the minimum cost from every abstract
// state to the goal.
//
// The abstract goal is seeded with g=1: every recorded value carries the
// offset-by-one encoding so that 0 can mean "empty". Nodes leave the
// queue in non-decreasing g order, so the first write into any cell is
// its minimum; later visits of the same abstract state are skipped
// through the closed table. Generation fails with ErrCostOverflow as soon
// as a cumulative cost would leave the one-byte range.
func (g *Generator) Generate() error {
	start := time.Now()
	g.logger.Debug("generating pattern database",
		"mode", g.mode, "ppattern", g.table.Ranker().Pattern(),
		"cpattern", g.closed.Ranker().Pattern(), "space", g.table.Capacity())

	open := NewOpen()
	if err := open.Insert(Node{Perm: g.closed.Mask(g.goal), G: 1}); err != nil {
		return err
	}

	var edges []Edge
	for open.Len() > 0 {
		node, err := open.PopFront()
		if err != nil {
			return err
		}

		// A state already closed was reached again at an equal or larger
		// g: everything below it is already under consideration.
		if _, seen, err := g.closed.Find(node.Perm); err != nil {
			return err
		} else if seen {
			continue
		}
		if _, err := g.closed.Insert(node); err != nil {
			return err
		}

		// Abstract the state further with the p-pattern; the first writer
		// into a cell wins and records the minimum.
		pperm := g.table.Mask(node.Perm)
		if _, written, err := g.table.Find(pperm); err != nil {
			return err
		} else if !written {
			if _, err := g.table.Insert(Node{Perm: pperm, G: node.G}); err != nil {
				return err
			}
		}

		g.expansions++
		if g.progress != nil && g.expansions%g.progressStride == 0 {
			g.progress(g.expansions)
		}

		edges = g.domain.Predecessors(node.Perm, edges[:0])
		for _, e := range edges {
			if _, seen, err := g.closed.Find(e.Perm); err != nil {
				return err
			} else if seen {
				continue
			}
			cumulative := int(node.G) + int(e.Cost)
			if cumulative > 0xff {
				return fmt.Errorf("%w: g=%d plus operator cost %d",
					ErrCostOverflow, node.G-1, e.Cost)
			}
			if err := open.Insert(Node{Perm: e.Perm, G: Value(cumulative)}); err != nil {
				return err
			}
		}
	}

	g.elapsed = time.Since(start)
	g.logger.Debug("generation finished",
		"expansions", g.expansions, "elapsed", g.elapsed)
	return nil
}

// Doctor checks that the table looks well generated and returns the first
// inconsistency found, or nil.
//
// In MAX mode it verifies that the expansions covered the whole address
// space of the p-pattern, that no cell is still empty and that exactly
// one cell holds the seed value 1 (the abstract goal). ADD mode keeps
// only the coverage check: zero is a legitimate stored value there.
//
// A doctor error is advisory. Callers may still write the database with a
// warning; generation errors, by contrast, are fatal.
func (g *Generator) Doctor() error {
	space := g.table.Capacity()
	if g.expansions != space {
		return fmt.Errorf("%w: %d expansions for an address space of %d",
			ErrAddressSpaceMismatch, g.expansions, space)
	}
	if g.mode == Add {
		return nil
	}

	ones := 0
	for index := Offset(0); index < space; index++ {
		v := g.table.Cell(index)
		if v == zero {
			return fmt.Errorf("%w: cell %d", ErrZeroEntry, index)
		}
		if v == 1 {
			ones++
		}
	}
	if ones != 1 {
		return fmt.Errorf("%w: %d cells hold the goal value", ErrOneCount, ones)
	}
	return nil
}
