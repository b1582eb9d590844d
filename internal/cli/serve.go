package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/matzehuels/patterndb/pkg/pdb"
)

// serveOpts holds the command-line flags of the serve command.
type serveOpts struct {
	file string // databases to load at startup
	addr string // listen address
}

func newServeCmd() *cobra.Command {
	opts := serveOpts{addr: ":8080"}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve heuristic values over HTTP",
		Long: `Load one or more pattern databases and answer heuristic queries over
HTTP. Lookups are a rank plus one byte read, so a single instance
serves a search cluster comfortably.

Endpoints:
  GET /v1/pdbs                       metadata of the loaded databases
  GET /v1/heuristic?perm=8+7+6+...   per-database and combined values`,
		RunE: func(c *cobra.Command, args []string) error {
			return runServe(c.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "pattern database filename(s), blank-separated")
	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")

	return cmd
}

// pdbMeta is the JSON shape of one loaded database.
type pdbMeta struct {
	File         string `json:"file"`
	Mode         string `json:"mode"`
	Goal         []int  `json:"goal"`
	PPattern     string `json:"ppattern"`
	CPattern     string `json:"cpattern"`
	AddressSpace uint64 `json:"address_space"`
}

// heuristicResponse is the JSON answer of /v1/heuristic.
type heuristicResponse struct {
	Perm   []int   `json:"perm"`
	Values []uint8 `json:"values"`
	Value  uint8   `json:"value"`
	Mode   string  `json:"mode"`
}

func runServe(ctx context.Context, opts serveOpts) error {
	logger := loggerFromContext(ctx)

	if opts.file == "" {
		return fmt.Errorf("please provide at least the filename of one database (--file)")
	}
	paths, err := splitFiles(opts.file)
	if err != nil {
		return err
	}
	q, err := pdb.Load(paths...)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:              opts.addr,
		Handler:           newRouter(q, paths),
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Shut down cleanly when the root context is cancelled (SIGINT).
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	logger.Info("serving heuristics", "addr", opts.addr, "pdbs", len(paths))
	if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// newRouter builds the HTTP surface over a loaded query facade.
func newRouter(q *pdb.Query, paths []string) http.Handler {
	meta := make([]pdbMeta, len(q.PDBs()))
	for i, p := range q.PDBs() {
		meta[i] = pdbMeta{
			File:         paths[i],
			Mode:         p.Mode().String(),
			Goal:         p.Goal(),
			PPattern:     p.PPattern(),
			CPattern:     p.CPattern(),
			AddressSpace: p.Capacity(),
		}
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/v1/pdbs", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, meta)
	})

	r.Get("/v1/heuristic", func(w http.ResponseWriter, req *http.Request) {
		raw := req.URL.Query().Get("perm")
		if raw == "" {
			writeError(w, http.StatusBadRequest, "missing perm parameter")
			return
		}
		perm, err := parsePerm(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		values, err := q.Values(perm)
		if errors.Is(err, pdb.ErrPermutationShape) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		combined, err := q.Evaluate(perm)
		if errors.Is(err, pdb.ErrAddNotImplemented) {
			writeError(w, http.StatusNotImplemented, err.Error())
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		writeJSON(w, http.StatusOK, heuristicResponse{
			Perm:   perm,
			Values: values,
			Value:  combined,
			Mode:   q.Mode().String(),
		})
	})

	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
