package pdb

import "slices"

// Identity returns the identity permutation [1, 2, ..., n], the usual
// goal of permutation puzzles. For n <= 0 it returns an empty slice.
func Identity(n int) []int {
	result := make([]int, max(n, 0))
	for i := range result {
		result[i] = i + 1
	}
	return result
}

// Factorial returns n!, the size of the full permutation space. For
// n <= 1 it returns 1. Factorials grow fast: 13! already exceeds 32-bit
// range, which is why address spaces are 64-bit offsets.
func Factorial(n int) Offset {
	result := Offset(1)
	for i := 2; i <= n; i++ {
		result *= Offset(i)
	}
	return result
}

// Permutations returns permutations of [1, ..., n] using Heap's
// algorithm. If limit > 0 at most limit permutations are returned;
// otherwise all n! of them. Each returned slice is a separate allocation.
//
// The order is non-lexicographic but every permutation appears exactly
// once. Always pass a limit for n >= 13.
func Permutations(n, limit int) [][]int {
	if n <= 0 {
		return [][]int{{}}
	}
	if n == 1 {
		return [][]int{{1}}
	}

	perm := Identity(n)
	state := make([]int, n)

	capacity := limit
	if capacity <= 0 || n <= 12 {
		capacity = int(Factorial(min(n, 12)))
	}
	result := make([][]int, 0, capacity)
	result = append(result, slices.Clone(perm))

	for i := 0; i < n && (limit <= 0 || len(result) < limit); {
		if state[i] < i {
			if i&1 == 0 {
				perm[0], perm[i] = perm[i], perm[0]
			} else {
				perm[state[i]], perm[i] = perm[i], perm[state[i]]
			}
			result = append(result, slices.Clone(perm))
			state[i]++
			i = 0
		} else {
			state[i] = 0
			i++
		}
	}
	return result
}

// IsPermutation reports whether perm holds each symbol of 1..len(perm)
// exactly once, i.e., whether it is a valid concrete state.
func IsPermutation(perm []int) bool {
	seen := make([]bool, len(perm))
	for _, s := range perm {
		if s < 1 || s > len(perm) || seen[s-1] {
			return false
		}
		seen[s-1] = true
	}
	return true
}
