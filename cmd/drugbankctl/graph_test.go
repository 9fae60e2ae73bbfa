package main

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunGraphSynonymsDOT(t *testing.T) {
	var buf bytes.Buffer
	err := runGraph(context.Background(), &buf, sampleXML, graphOptions{Kind: "synonyms", Drug: "DB00001", Output: "dot"})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `graph "synonyms_DB00001" {`)
	assert.Contains(t, out, `"Hirudin variant-1"`)
}

func TestRunGraphGeneJSON(t *testing.T) {
	var buf bytes.Buffer
	err := runGraph(context.Background(), &buf, sampleXML, graphOptions{Kind: "gene", Gene: "F2", Output: "json"})
	require.NoError(t, err)

	var view map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &view))
	assert.NotEmpty(t, view["nodes"])
}

func TestRunGraphRelated(t *testing.T) {
	var buf bytes.Buffer
	err := runGraph(context.Background(), &buf, sampleXML, graphOptions{Kind: "related", Drug: "DB00001", Depth: 1, Output: "json"})
	require.NoError(t, err)

	var related []relatedDrug
	require.NoError(t, json.Unmarshal(buf.Bytes(), &related))
	assert.Equal(t, []relatedDrug{{DrugBankID: "DB00002", Name: "Cetuximab"}}, related)

	buf.Reset()
	err = runGraph(context.Background(), &buf, sampleXML, graphOptions{Kind: "related", Drug: "DB00001", Depth: 1, Output: "dot"})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Drugs sharing pathways with DB00001 (depth 1)")
	assert.Regexp(t, `DB00002\s+Cetuximab`, buf.String())
}

func TestRunGraphErrors(t *testing.T) {
	tests := []struct {
		name    string
		opts    graphOptions
		wantErr string
	}{
		{"missing drug", graphOptions{Kind: "synonyms", Output: "dot"}, "synonyms graph requires --drug"},
		{"missing gene", graphOptions{Kind: "gene", Output: "dot"}, "gene graph requires --gene"},
		{"unknown kind", graphOptions{Kind: "bonds", Output: "dot"}, `unknown graph kind "bonds"`},
		{"unknown output", graphOptions{Kind: "pathways", Output: "png"}, "unknown output format"},
		{"unknown drug", graphOptions{Kind: "synonyms", Drug: "DB99999", Output: "dot"}, "DB99999"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			assert.ErrorContains(t, runGraph(context.Background(), &buf, sampleXML, tt.opts), tt.wantErr)
		})
	}
}
