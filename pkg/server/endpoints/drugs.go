package endpoints

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/doodlesbykumbi/drugbank-in-go/pkg/config"
	"github.com/doodlesbykumbi/drugbank-in-go/pkg/graph"
	"github.com/doodlesbykumbi/drugbank-in-go/pkg/server"
	"github.com/doodlesbykumbi/drugbank-in-go/pkg/server/store"
	"github.com/doodlesbykumbi/drugbank-in-go/pkg/tables"
)

// RelatedDrug is one entry of GET /drugs/{id}/related
type RelatedDrug struct {
	DrugBankID string `json:"drugbank_id"`
	Name       string `json:"name"`
}

// RelatedResponse is the reply of GET /drugs/{id}/related
type RelatedResponse struct {
	DrugID  string        `json:"drug_id"`
	Depth   int           `json:"depth"`
	Related []RelatedDrug `json:"related"`
}

// RegisterDrugsEndpoints registers the per-drug lookups and status counts
func RegisterDrugsEndpoints(s *server.Server) {
	drugsStore := s.DrugsStore
	r := s.Router.PathPrefix("/drugs").Subrouter()
	r.Use(s.Protect)

	r.HandleFunc("/{id}", handleFetchDrug(drugsStore)).Methods("GET")
	r.HandleFunc("/{id}/synonyms", handleDrugList("synonyms", drugsStore.Synonyms)).Methods("GET")
	r.HandleFunc("/{id}/products", handleDrugList("products", drugsStore.Products)).Methods("GET")
	r.HandleFunc("/{id}/targets", handleDrugList("targets", drugsStore.Targets)).Methods("GET")
	r.HandleFunc("/{id}/interactions", handleDrugList("interactions", drugsStore.Interactions)).Methods("GET")
	r.HandleFunc("/{id}/related", handleRelated(drugsStore, s.Config)).Methods("GET")

	s.Router.Handle("/statuses", s.Protect(handleStatuses(drugsStore))).Methods("GET")
}

func handleFetchDrug(drugsStore store.DrugsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		drugID := pathVar(r, "id")

		drug, err := drugsStore.FetchDrug(drugID)
		auditLookup(r, "drug", drugID, err)
		if errors.Is(err, store.ErrDrugNotFound) {
			respondWithError(w, http.StatusNotFound, "Drug not found")
			return
		}
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to fetch drug")
			return
		}

		respondWithJSON(w, http.StatusOK, drug)
	}
}

// handleDrugList serves a per-drug list. Known drugs without rows get an
// empty array, not null.
func handleDrugList[T any](operation string, fetch func(string) ([]T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		drugID := pathVar(r, "id")

		rows, err := fetch(drugID)
		auditLookup(r, operation, drugID, err)
		if errors.Is(err, store.ErrDrugNotFound) {
			respondWithError(w, http.StatusNotFound, "Drug not found")
			return
		}
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to fetch "+operation)
			return
		}
		if rows == nil {
			rows = []T{}
		}

		respondWithJSON(w, http.StatusOK, rows)
	}
}

func handleRelated(drugsStore store.DrugsStore, cfg *config.DrugbankConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		drugID := pathVar(r, "id")

		depth := cfg.RelatedDepth
		if raw := r.URL.Query().Get("depth"); raw != "" {
			d, err := strconv.Atoi(raw)
			if err != nil || d < 1 {
				respondWithError(w, http.StatusBadRequest, "depth must be a positive integer")
				return
			}
			depth = d
		}

		rows, err := drugsStore.Pathways()
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to fetch pathways")
			return
		}
		view, err := graph.Pathways(&tables.Set{Pathways: rows})
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to build pathway graph")
			return
		}

		nodes, err := graph.Related(r.Context(), view, drugID, depth)
		if errors.Is(err, graph.ErrNotFound) {
			// Known drugs outside every pathway have no relatives.
			_, err = drugsStore.FetchDrug(drugID)
		}
		auditLookup(r, "related", drugID, err)
		if errors.Is(err, store.ErrDrugNotFound) {
			respondWithError(w, http.StatusNotFound, "Drug not found")
			return
		}
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to traverse pathways")
			return
		}

		related := make([]RelatedDrug, 0, len(nodes))
		for _, n := range nodes {
			related = append(related, RelatedDrug{
				DrugBankID: strings.TrimPrefix(n.ID, string(graph.KindDrug)+":"),
				Name:       n.Label,
			})
		}
		respondWithJSON(w, http.StatusOK, RelatedResponse{DrugID: drugID, Depth: depth, Related: related})
	}
}

func handleStatuses(drugsStore store.DrugsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := drugsStore.Statuses()
		auditLookup(r, "statuses", "all", err)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to fetch statuses")
			return
		}
		if summary.Rows == nil {
			summary.Rows = []tables.StatusRow{}
		}
		respondWithJSON(w, http.StatusOK, summary)
	}
}
