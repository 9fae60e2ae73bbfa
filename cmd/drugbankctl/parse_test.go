package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doodlesbykumbi/drugbank-in-go/pkg/tables"
)

func TestRunParseText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runParse(context.Background(), &buf, sampleXML, "pathway_counts", "text"))

	out := buf.String()
	assert.Contains(t, out, "pathway_counts (2 rows)")
	assert.Regexp(t, `DB00002\s+2`, out)
	assert.Regexp(t, `DB00001\s+1`, out)
}

func TestRunParseStatuses(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runParse(context.Background(), &buf, sampleXML, "statuses", "text"))
	assert.Contains(t, buf.String(), "Approved and not withdrawn: 1\n")
}

func TestRunParseJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runParse(context.Background(), &buf, sampleXML, "drugs", "json"))

	var rows []tables.DrugRow
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rows))
	require.Len(t, rows, 3)
	assert.Equal(t, "DB00001", rows[0].DrugBankID)
	assert.Equal(t, "Lepirudin", rows[0].Name)
}

func TestRunParseAll(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runParse(context.Background(), &buf, sampleXML, "all", "text"))
	for _, name := range tableNames {
		assert.Contains(t, buf.String(), name+" (")
	}
}

func TestRunParseMalformedDocumentIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.xml")
	require.NoError(t, os.WriteFile(path, []byte("<drugbank><drug>"), 0o600))

	var buf bytes.Buffer
	require.NoError(t, runParse(context.Background(), &buf, path, "drugs", "text"))
	assert.Contains(t, buf.String(), "drugs (0 rows)")
}

func TestRunParseErrors(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorContains(t, runParse(context.Background(), &buf, sampleXML, "nope", "text"), `unknown table "nope"`)
	assert.ErrorContains(t, runParse(context.Background(), &buf, sampleXML, "drugs", "yaml"), "unknown output format")
	assert.Error(t, runParse(context.Background(), &buf, filepath.Join(t.TempDir(), "missing.xml"), "drugs", "text"))
}

func TestOneLine(t *testing.T) {
	assert.Equal(t, "a b", oneLine("a\n  b"))
	long := oneLine(string(bytes.Repeat([]byte("x"), 100)))
	assert.LessOrEqual(t, len([]rune(long)), 60)
}
