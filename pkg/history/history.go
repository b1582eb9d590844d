// Package history records pattern-database builds.
//
// Every successful generation can append one record describing what was
// built and how the search behaved. Records feed two use cases: picking
// patterns by comparing expansion counts and wall-clock times across
// runs, and auditing which databases exist and where they came from.
//
// Two sinks are provided: a JSON-lines file for local work and a MongoDB
// collection for teams sharing a build farm.
package history

import (
	"context"
	"time"
)

// Record describes one generation run.
type Record struct {
	Time         time.Time `json:"time" bson:"time"`
	File         string    `json:"file" bson:"file"`
	Mode         string    `json:"mode" bson:"mode"`
	Goal         []int     `json:"goal" bson:"goal"`
	PPattern     string    `json:"ppattern" bson:"ppattern"`
	CPattern     string    `json:"cpattern" bson:"cpattern"`
	Variant      string    `json:"variant" bson:"variant"`
	AddressSpace uint64    `json:"address_space" bson:"address_space"`
	Expansions   uint64    `json:"expansions" bson:"expansions"`
	ElapsedMS    int64     `json:"elapsed_ms" bson:"elapsed_ms"`
	Doctor       string    `json:"doctor" bson:"doctor"` // "ok", "skipped", or the verdict
}

// Sink receives build records.
type Sink interface {
	Append(ctx context.Context, r Record) error
	Close(ctx context.Context) error
}
