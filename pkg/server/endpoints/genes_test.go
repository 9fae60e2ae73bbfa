package endpoints

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doodlesbykumbi/drugbank-in-go/pkg/server/store"
	"github.com/doodlesbykumbi/drugbank-in-go/pkg/tables"
)

func geneRequest(path, gene string) *http.Request {
	req := httptest.NewRequest("GET", path, nil)
	return mux.SetURLVars(req, map[string]string{"gene": gene})
}

func f2Rows() []tables.GeneRow {
	return []tables.GeneRow{
		{Gene: "F2", DrugBankID: "DB00001", Drug: "Lepirudin", ProductName: "Refludan", ProductID: "50419-150", ProductIDType: "ndc"},
		{Gene: "F2", DrugBankID: "DB00001", Drug: "Lepirudin", ProductName: "Refludan", ProductID: "02240996", ProductIDType: "dpd"},
	}
}

func TestHandleGeneProducts(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		drugsStore := NewMockDrugsStore()
		drugsStore.On("GeneProducts", "F2").Return(f2Rows(), nil)

		w := httptest.NewRecorder()
		handleGeneProducts(drugsStore)(w, geneRequest("/genes/F2", "F2"))

		assert.Equal(t, http.StatusOK, w.Code)
		var rows []tables.GeneRow
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
		assert.Equal(t, f2Rows(), rows)
	})

	t.Run("unknown gene", func(t *testing.T) {
		drugsStore := NewMockDrugsStore()
		drugsStore.On("GeneProducts", "BRCA1").Return(nil, store.ErrGeneNotFound)

		w := httptest.NewRecorder()
		handleGeneProducts(drugsStore)(w, geneRequest("/genes/BRCA1", "BRCA1"))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"detail":"Gene not found"}`, w.Body.String())
	})

	t.Run("decodes escaped gene", func(t *testing.T) {
		drugsStore := NewMockDrugsStore()
		drugsStore.On("GeneProducts", "HLA B").Return(nil, store.ErrGeneNotFound)

		w := httptest.NewRecorder()
		handleGeneProducts(drugsStore)(w, geneRequest("/genes/HLA%20B", "HLA%20B"))

		assert.Equal(t, http.StatusNotFound, w.Code)
		drugsStore.AssertExpectations(t)
	})
}

func TestHandleGeneGraph(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		drugsStore := NewMockDrugsStore()
		drugsStore.On("GeneProducts", "F2").Return(f2Rows(), nil)

		w := httptest.NewRecorder()
		handleGeneGraph(drugsStore)(w, geneRequest("/genes/F2/graph", "F2"))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
		assert.Contains(t, w.Body.String(), `"label":"2 products"`)
	})

	t.Run("dot", func(t *testing.T) {
		drugsStore := NewMockDrugsStore()
		drugsStore.On("GeneProducts", "F2").Return(f2Rows(), nil)

		w := httptest.NewRecorder()
		handleGeneGraph(drugsStore)(w, geneRequest("/genes/F2/graph?format=dot", "F2"))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "text/vnd.graphviz", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Body.String(), `digraph "gene_F2" {`)
	})

	t.Run("unknown gene", func(t *testing.T) {
		drugsStore := NewMockDrugsStore()
		drugsStore.On("GeneProducts", "BRCA1").Return(nil, store.ErrGeneNotFound)

		w := httptest.NewRecorder()
		handleGeneGraph(drugsStore)(w, geneRequest("/genes/BRCA1/graph", "BRCA1"))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestGeneLookupsAreAudited(t *testing.T) {
	buf := captureAudit(t)

	drugsStore := NewMockDrugsStore()
	drugsStore.On("GeneProducts", "F2").Return(f2Rows(), nil)
	drugsStore.On("GeneProducts", "BRCA1").Return(nil, store.ErrGeneNotFound)

	handleGeneProducts(drugsStore)(httptest.NewRecorder(), geneRequest("/genes/F2", "F2"))
	handleGeneGraph(drugsStore)(httptest.NewRecorder(), geneRequest("/genes/BRCA1/graph", "BRCA1"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `operation="gene"`)
	assert.Contains(t, lines[0], `drug="F2"`)
	assert.Contains(t, lines[0], `result="success"`)
	assert.Contains(t, lines[1], `operation="gene_graph"`)
	assert.Contains(t, lines[1], `drug="BRCA1"`)
	assert.Contains(t, lines[1], `result="failure"`)
}
