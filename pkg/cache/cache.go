// Package cache stores generated pattern-database artifacts keyed by
// their build signature.
//
// Generation is deterministic: the same mode, goal, patterns and cost
// variant always produce the same byte stream. The cache exploits that by
// addressing encoded databases with a SHA-256 of those inputs, so a
// repeated build can be materialized instead of searched. Entries never
// expire; a signature either matches or it does not.
//
// Three backends are provided: a file cache for local CLI usage, a Redis
// cache for sharing artifacts between machines, and a null cache that
// disables caching without conditional call sites.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Cache stores and retrieves encoded pattern databases by signature.
type Cache interface {
	// Get retrieves the artifact for key, reporting a miss with false.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores the artifact under key, overwriting any previous entry.
	Set(ctx context.Context, key string, data []byte) error

	// Delete removes the entry for key; deleting an absent key is not an
	// error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// BuildKey derives the cache signature of a generation run from
// everything that determines its output.
func BuildKey(mode string, goal []int, ppattern, cpattern, variant string) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s|%v|%s|%s|%s", mode, goal, ppattern, cpattern, variant)
	return "pdb:" + hex.EncodeToString(h.Sum(nil))
}
