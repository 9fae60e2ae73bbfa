package endpoints

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/doodlesbykumbi/drugbank-in-go/pkg/server"
	"github.com/doodlesbykumbi/drugbank-in-go/pkg/server/store"
)

// PathwayCountRequest is the body of POST /get_pathway_count/
type PathwayCountRequest struct {
	DrugID *string `json:"drug_id"`
}

// PathwayCountResponse is the reply of POST /get_pathway_count/
type PathwayCountResponse struct {
	DrugID       string `json:"drug_id"`
	PathwayCount int    `json:"pathway_count"`
}

// RegisterPathwaysEndpoints registers the pathway count lookup
func RegisterPathwaysEndpoints(s *server.Server) {
	handler := s.Protect(handlePathwayCount(s.DrugsStore))
	s.Router.Handle("/get_pathway_count/", handler).Methods("POST")
	s.Router.Handle("/get_pathway_count", handler).Methods("POST")
}

func handlePathwayCount(drugsStore store.DrugsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PathwayCountRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.DrugID == nil {
			respondWithError(w, http.StatusUnprocessableEntity, "drug_id is required")
			return
		}

		drugID := strings.TrimSpace(*req.DrugID)
		count, err := drugsStore.PathwayCount(drugID)
		auditLookup(r, "pathway_count", drugID, err)
		if errors.Is(err, store.ErrDrugNotFound) {
			respondWithError(w, http.StatusNotFound, "Drug not found")
			return
		}
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to count pathways")
			return
		}

		respondWithJSON(w, http.StatusOK, PathwayCountResponse{DrugID: drugID, PathwayCount: count})
	}
}
