package endpoints

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doodlesbykumbi/drugbank-in-go/pkg/config"
	"github.com/doodlesbykumbi/drugbank-in-go/pkg/server/store"
	"github.com/doodlesbykumbi/drugbank-in-go/pkg/tables"
)

func drugRequest(path, id string) *http.Request {
	req := httptest.NewRequest("GET", path, nil)
	return mux.SetURLVars(req, map[string]string{"id": id})
}

func TestHandleFetchDrug(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		drugsStore := NewMockDrugsStore()
		drugsStore.On("FetchDrug", "DB00001").Return(&store.Drug{
			DrugRow: tables.DrugRow{DrugBankID: "DB00001", Name: "Lepirudin", Type: "biotech"},
			Groups:  []string{"approved", "withdrawn"},
		}, nil)

		w := httptest.NewRecorder()
		handleFetchDrug(drugsStore)(w, drugRequest("/drugs/DB00001", "DB00001"))

		assert.Equal(t, http.StatusOK, w.Code)
		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "DB00001", body["drugbank_id"])
		assert.Equal(t, "Lepirudin", body["name"])
		assert.Equal(t, []interface{}{"approved", "withdrawn"}, body["groups"])
	})

	t.Run("not found", func(t *testing.T) {
		drugsStore := NewMockDrugsStore()
		drugsStore.On("FetchDrug", "DB99999").Return(nil, store.ErrDrugNotFound)

		w := httptest.NewRecorder()
		handleFetchDrug(drugsStore)(w, drugRequest("/drugs/DB99999", "DB99999"))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"detail":"Drug not found"}`, w.Body.String())
	})

	t.Run("store failure", func(t *testing.T) {
		drugsStore := NewMockDrugsStore()
		drugsStore.On("FetchDrug", "DB00001").Return(nil, errors.New("boom"))

		w := httptest.NewRecorder()
		handleFetchDrug(drugsStore)(w, drugRequest("/drugs/DB00001", "DB00001"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestHandleDrugList(t *testing.T) {
	t.Run("synonyms", func(t *testing.T) {
		drugsStore := NewMockDrugsStore()
		drugsStore.On("Synonyms", "DB00001").Return([]string{"Hirudin variant-1", "Lepirudin recombinant"}, nil)

		w := httptest.NewRecorder()
		handleDrugList("synonyms", drugsStore.Synonyms)(w, drugRequest("/drugs/DB00001/synonyms", "DB00001"))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `["Hirudin variant-1","Lepirudin recombinant"]`, w.Body.String())
	})

	t.Run("known drug without rows", func(t *testing.T) {
		drugsStore := NewMockDrugsStore()
		drugsStore.On("Interactions", "DB00001").Return(nil, nil)

		w := httptest.NewRecorder()
		handleDrugList("interactions", drugsStore.Interactions)(w, drugRequest("/drugs/DB00001/interactions", "DB00001"))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]", w.Body.String())
	})

	t.Run("unknown drug", func(t *testing.T) {
		drugsStore := NewMockDrugsStore()
		drugsStore.On("Products", "DB99999").Return(nil, store.ErrDrugNotFound)

		w := httptest.NewRecorder()
		handleDrugList("products", drugsStore.Products)(w, drugRequest("/drugs/DB99999/products", "DB99999"))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"detail":"Drug not found"}`, w.Body.String())
	})

	t.Run("store failure", func(t *testing.T) {
		drugsStore := NewMockDrugsStore()
		drugsStore.On("Targets", "DB00001").Return(nil, errors.New("boom"))

		w := httptest.NewRecorder()
		handleDrugList("targets", drugsStore.Targets)(w, drugRequest("/drugs/DB00001/targets", "DB00001"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"detail":"Failed to fetch targets"}`, w.Body.String())
	})
}

func relatedPathways() []tables.PathwayRow {
	return []tables.PathwayRow{
		{DrugBankID: "DB00001", Drug: "Lepirudin", Pathway: "Coagulation"},
		{DrugBankID: "DB00002", Drug: "Cetuximab", Pathway: "Coagulation"},
		{DrugBankID: "DB00002", Drug: "Cetuximab", Pathway: "EGFR signalling"},
		{DrugBankID: "DB00003", Drug: "Dornase alfa", Pathway: "EGFR signalling"},
	}
}

func TestHandleRelated(t *testing.T) {
	cfg := &config.DrugbankConfig{RelatedDepth: 1}

	t.Run("default depth", func(t *testing.T) {
		drugsStore := NewMockDrugsStore()
		drugsStore.On("Pathways").Return(relatedPathways(), nil)

		w := httptest.NewRecorder()
		handleRelated(drugsStore, cfg)(w, drugRequest("/drugs/DB00001/related", "DB00001"))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"drug_id":"DB00001","depth":1,"related":[{"drugbank_id":"DB00002","name":"Cetuximab"}]}`, w.Body.String())
	})

	t.Run("explicit depth", func(t *testing.T) {
		drugsStore := NewMockDrugsStore()
		drugsStore.On("Pathways").Return(relatedPathways(), nil)

		w := httptest.NewRecorder()
		handleRelated(drugsStore, cfg)(w, drugRequest("/drugs/DB00001/related?depth=2", "DB00001"))

		assert.Equal(t, http.StatusOK, w.Code)
		var resp RelatedResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 2, resp.Depth)
		assert.Equal(t, []RelatedDrug{
			{DrugBankID: "DB00002", Name: "Cetuximab"},
			{DrugBankID: "DB00003", Name: "Dornase alfa"},
		}, resp.Related)
	})

	t.Run("no related drugs", func(t *testing.T) {
		drugsStore := NewMockDrugsStore()
		drugsStore.On("Pathways").Return([]tables.PathwayRow{
			{DrugBankID: "DB00001", Drug: "Lepirudin", Pathway: "Coagulation"},
		}, nil)

		w := httptest.NewRecorder()
		handleRelated(drugsStore, cfg)(w, drugRequest("/drugs/DB00001/related", "DB00001"))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"drug_id":"DB00001","depth":1,"related":[]}`, w.Body.String())
	})

	t.Run("bad depth", func(t *testing.T) {
		for _, depth := range []string{"0", "-1", "two"} {
			w := httptest.NewRecorder()
			handleRelated(NewMockDrugsStore(), cfg)(w, drugRequest("/drugs/DB00001/related?depth="+depth, "DB00001"))
			assert.Equal(t, http.StatusBadRequest, w.Code, depth)
		}
	})

	t.Run("known drug without pathways", func(t *testing.T) {
		drugsStore := NewMockDrugsStore()
		drugsStore.On("Pathways").Return(relatedPathways(), nil)
		drugsStore.On("FetchDrug", "DB00005").Return(&store.Drug{
			DrugRow: tables.DrugRow{DrugBankID: "DB00005", Name: "Etanercept"},
		}, nil)

		w := httptest.NewRecorder()
		handleRelated(drugsStore, cfg)(w, drugRequest("/drugs/DB00005/related", "DB00005"))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"drug_id":"DB00005","depth":1,"related":[]}`, w.Body.String())
		drugsStore.AssertExpectations(t)
	})

	t.Run("unknown drug", func(t *testing.T) {
		drugsStore := NewMockDrugsStore()
		drugsStore.On("Pathways").Return(relatedPathways(), nil)
		drugsStore.On("FetchDrug", "DB09999").Return(nil, store.ErrDrugNotFound)

		w := httptest.NewRecorder()
		handleRelated(drugsStore, cfg)(w, drugRequest("/drugs/DB09999/related", "DB09999"))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"detail":"Drug not found"}`, w.Body.String())
	})
}

func TestHandleStatuses(t *testing.T) {
	t.Run("counts", func(t *testing.T) {
		drugsStore := NewMockDrugsStore()
		drugsStore.On("Statuses").Return(tables.StatusSummary{
			Rows: []tables.StatusRow{
				{Status: tables.StatusApproved, Count: 2},
				{Status: tables.StatusWithdrawn, Count: 1},
			},
			ApprovedNotWithdrawn: 1,
		}, nil)

		w := httptest.NewRecorder()
		handleStatuses(drugsStore)(w, httptest.NewRequest("GET", "/statuses", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"statuses":[{"status":"Approved","count":2},{"status":"Withdrawn","count":1}],"approved_not_withdrawn":1}`, w.Body.String())
	})

	t.Run("audited", func(t *testing.T) {
		buf := captureAudit(t)
		drugsStore := NewMockDrugsStore()
		drugsStore.On("Statuses").Return(tables.StatusSummary{}, nil)

		w := httptest.NewRecorder()
		handleStatuses(drugsStore)(w, httptest.NewRequest("GET", "/statuses", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, buf.String(), `operation="statuses"`)
		assert.Contains(t, buf.String(), `result="success"`)
	})

	t.Run("empty", func(t *testing.T) {
		drugsStore := NewMockDrugsStore()
		drugsStore.On("Statuses").Return(tables.StatusSummary{}, nil)

		w := httptest.NewRecorder()
		handleStatuses(drugsStore)(w, httptest.NewRequest("GET", "/statuses", nil))

		assert.JSONEq(t, `{"statuses":[],"approved_not_withdrawn":0}`, w.Body.String())
	})
}
