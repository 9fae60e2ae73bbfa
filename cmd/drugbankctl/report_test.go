package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runReport(context.Background(), &buf, sampleXML, 10, false))
	assert.Contains(t, buf.String(), "- Drugs: 3\n")
	assert.Contains(t, buf.String(), "| DB00002 | 2 |\n")

	buf.Reset()
	require.NoError(t, runReport(context.Background(), &buf, sampleXML, 10, true))
	assert.Contains(t, buf.String(), "<table>")
}

func TestListReportSections(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, listReportSections(context.Background(), &buf, sampleXML, 5))
	assert.Equal(t, "1. Drugs\n2. Approval status\n3. Pathways per drug\n4. Cellular locations\n", buf.String())
}
