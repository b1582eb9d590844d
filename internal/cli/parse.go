package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/patterndb/pkg/pdb"
)

// parsePerm decodes a blank-separated list of integers. The symbols must
// be distinct and form exactly the set 1..N, the representation both
// --goal and --perm accept.
func parsePerm(s string) ([]int, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty permutation")
	}

	perm := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid symbol %q: %w", f, err)
		}
		perm[i] = v
	}
	if !pdb.IsPermutation(perm) {
		return nil, fmt.Errorf("%q is not a permutation of 1..%d", s, len(perm))
	}
	return perm, nil
}

// checkPattern validates a pattern against the goal: same length, only
// '-' and '*'.
func checkPattern(goal []int, pattern, name string) error {
	if len(pattern) != len(goal) {
		return fmt.Errorf("the %s and the goal must have the same length", name)
	}
	for _, c := range pattern {
		if c != '-' && c != '*' {
			return fmt.Errorf("the %s can contain only characters '-' and '*'", name)
		}
	}
	return nil
}

// splitFiles decodes the --file argument of query-like commands: one or
// more paths separated by whitespace inside a single argument.
func splitFiles(s string) ([]string, error) {
	files := strings.Fields(s)
	if len(files) == 0 {
		return nil, fmt.Errorf("no database files given")
	}
	return files, nil
}
