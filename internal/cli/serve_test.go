package cli

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/matzehuels/patterndb/pkg/pancake"
	"github.com/matzehuels/patterndb/pkg/pdb"
)

func testRouter(t *testing.T) http.Handler {
	t.Helper()
	gen, err := pdb.NewGenerator(pdb.Max, pancake.New(4), pdb.Identity(4), "----", "----")
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	if err := gen.Generate(); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	q, err := pdb.NewQuery(gen.PDB())
	if err != nil {
		t.Fatalf("NewQuery: %v", err)
	}
	return newRouter(q, []string{"pancake-4.pdb"})
}

func TestServePDBs(t *testing.T) {
	srv := httptest.NewServer(testRouter(t))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/v1/pdbs")
	if err != nil {
		t.Fatalf("GET /v1/pdbs: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var meta []pdbMeta
	if err := json.NewDecoder(resp.Body).Decode(&meta); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(meta) != 1 || meta[0].AddressSpace != 24 || meta[0].Mode != "MAX" {
		t.Errorf("metadata mangled: %+v", meta)
	}
}

func TestServeHeuristic(t *testing.T) {
	srv := httptest.NewServer(testRouter(t))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/v1/heuristic?perm=4+3+2+1")
	if err != nil {
		t.Fatalf("GET /v1/heuristic: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var got heuristicResponse
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Value != 1 {
		t.Errorf("value = %d, want 1", got.Value)
	}
	if len(got.Values) != 1 || got.Values[0] != 1 {
		t.Errorf("values = %v, want [1]", got.Values)
	}
}

func TestServeHeuristicErrors(t *testing.T) {
	srv := httptest.NewServer(testRouter(t))
	defer srv.Close()

	for _, url := range []string{
		"/v1/heuristic",                // missing perm
		"/v1/heuristic?perm=1+2+2+3",   // duplicate symbol
		"/v1/heuristic?perm=1+2+3",     // wrong length
	} {
		resp, err := http.Get(srv.URL + url)
		if err != nil {
			t.Fatalf("GET %s: %v", url, err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", url, resp.StatusCode)
		}
	}
}
