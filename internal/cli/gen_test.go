package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/patterndb/pkg/cache"
	"github.com/matzehuels/patterndb/pkg/history"
	"github.com/matzehuels/patterndb/pkg/pdb"
)

func TestRunBuild(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "pancake-4.pdb")

	spec := buildSpec{
		File:     path,
		Goal:     "1 2 3 4",
		PPattern: "----",
		Variant:  "unit",
	}
	if err := runBuild(ctx, spec, cache.NewNullCache(), nil); err != nil {
		t.Fatalf("runBuild: %v", err)
	}

	p, err := pdb.Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if p.Capacity() != 24 {
		t.Errorf("capacity = %d, want 24", p.Capacity())
	}
	h, err := p.Heuristic([]int{4, 3, 2, 1})
	if err != nil || h != 1 {
		t.Errorf("heuristic = %d, %v; want 1", h, err)
	}
}

func TestRunBuildValidation(t *testing.T) {
	ctx := context.Background()
	store := cache.NewNullCache()

	cases := map[string]buildSpec{
		"bad goal":        {File: "x.pdb", Goal: "1 2 2", PPattern: "---", Variant: "unit"},
		"bad pattern":     {File: "x.pdb", Goal: "1 2 3", PPattern: "-x-", Variant: "unit"},
		"short pattern":   {File: "x.pdb", Goal: "1 2 3", PPattern: "--", Variant: "unit"},
		"bad variant":     {File: "x.pdb", Goal: "1 2 3", PPattern: "---", Variant: "light"},
		"coarser csearch": {File: "x.pdb", Goal: "1 2 3", PPattern: "---", CPattern: "-**", Variant: "unit"},
	}
	for name, spec := range cases {
		if err := runBuild(ctx, spec, store, nil); err == nil {
			t.Errorf("%s: expected an error", name)
		}
	}
}

func TestRunBuildUsesArtifactCache(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	store, err := cache.NewFileCache(filepath.Join(dir, "cache"))
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer store.Close()

	first := filepath.Join(dir, "first.pdb")
	spec := buildSpec{File: first, Goal: "1 2 3 4", PPattern: "--**", Variant: "unit"}
	if err := runBuild(ctx, spec, store, nil); err != nil {
		t.Fatalf("first build: %v", err)
	}

	// A second identical build materializes from the cache; the bytes
	// must match the generated artifact exactly.
	second := filepath.Join(dir, "second.pdb")
	spec.File = second
	if err := runBuild(ctx, spec, store, nil); err != nil {
		t.Fatalf("second build: %v", err)
	}

	a, err := os.ReadFile(first)
	if err != nil {
		t.Fatalf("read first: %v", err)
	}
	b, err := os.ReadFile(second)
	if err != nil {
		t.Fatalf("read second: %v", err)
	}
	if string(a) != string(b) {
		t.Error("cached artifact differs from the generated one")
	}
}

func TestRunBuildRecordsHistory(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	sink, err := history.NewFileSink(filepath.Join(dir, "builds.jsonl"))
	if err != nil {
		t.Fatalf("NewFileSink: %v", err)
	}

	spec := buildSpec{File: filepath.Join(dir, "p.pdb"), Goal: "1 2 3 4", PPattern: "----", Variant: "unit"}
	if err := runBuild(ctx, spec, cache.NewNullCache(), sink); err != nil {
		t.Fatalf("runBuild: %v", err)
	}
	sink.Close(ctx)

	data, err := os.ReadFile(filepath.Join(dir, "builds.jsonl"))
	if err != nil {
		t.Fatalf("read history: %v", err)
	}
	if len(data) == 0 {
		t.Error("history file is empty")
	}
}
