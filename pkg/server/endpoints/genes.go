package endpoints

import (
	"errors"
	"net/http"

	"github.com/doodlesbykumbi/drugbank-in-go/pkg/graph"
	"github.com/doodlesbykumbi/drugbank-in-go/pkg/server"
	"github.com/doodlesbykumbi/drugbank-in-go/pkg/server/store"
	"github.com/doodlesbykumbi/drugbank-in-go/pkg/tables"
)

// RegisterGenesEndpoints registers the gene to product lookups
func RegisterGenesEndpoints(s *server.Server) {
	r := s.Router.PathPrefix("/genes").Subrouter()
	r.Use(s.Protect)

	r.HandleFunc("/{gene}", handleGeneProducts(s.DrugsStore)).Methods("GET")
	r.HandleFunc("/{gene}/graph", handleGeneGraph(s.DrugsStore)).Methods("GET")
}

func handleGeneProducts(drugsStore store.DrugsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gene := pathVar(r, "gene")

		rows, err := drugsStore.GeneProducts(gene)
		auditLookup(r, "gene", gene, err)
		if errors.Is(err, store.ErrGeneNotFound) {
			respondWithError(w, http.StatusNotFound, "Gene not found")
			return
		}
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to fetch gene products")
			return
		}

		respondWithJSON(w, http.StatusOK, rows)
	}
}

// handleGeneGraph renders the gene view as JSON, or as Graphviz DOT with
// ?format=dot.
func handleGeneGraph(drugsStore store.DrugsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gene := pathVar(r, "gene")

		rows, err := drugsStore.GeneProducts(gene)
		auditLookup(r, "gene_graph", gene, err)
		if errors.Is(err, store.ErrGeneNotFound) {
			respondWithError(w, http.StatusNotFound, "Gene not found")
			return
		}
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to fetch gene products")
			return
		}

		view, err := graph.Gene(&tables.Set{Genes: rows}, gene)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to build gene graph")
			return
		}

		if r.URL.Query().Get("format") == "dot" {
			w.Header().Set("Content-Type", "text/vnd.graphviz")
			w.WriteHeader(http.StatusOK)
			_ = graph.WriteDOT(w, view)
			return
		}
		respondWithJSON(w, http.StatusOK, view)
	}
}
