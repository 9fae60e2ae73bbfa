package endpoints

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/gorilla/mux"

	"github.com/doodlesbykumbi/drugbank-in-go/pkg/audit"
	"github.com/doodlesbykumbi/drugbank-in-go/pkg/identity"
)

func respondWithError(w http.ResponseWriter, code int, detail string) {
	respondWithJSON(w, code, map[string]string{"detail": detail})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// pathVar returns a decoded route variable. The router keeps paths encoded.
func pathVar(r *http.Request, name string) string {
	raw := mux.Vars(r)[name]
	v, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return v
}

func auditLookup(r *http.Request, operation, drugID string, err error) {
	event := audit.LookupEvent{
		Subject:   identity.Subject(r.Context()),
		ClientIP:  identity.RemoteIP(r).String(),
		Operation: operation,
		DrugID:    drugID,
		Success:   err == nil,
	}
	if err != nil {
		event.ErrorMessage = err.Error()
	}
	audit.Log(event)
}
