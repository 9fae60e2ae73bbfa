package main

import (
	"os"
	"testing"

	"github.com/fatih/color"

	"github.com/doodlesbykumbi/drugbank-in-go/pkg/audit"
)

const sampleXML = "../../pkg/drugbank/testdata/sample.xml"

func TestMain(m *testing.M) {
	color.NoColor = true
	audit.SetEnabled(false)
	os.Exit(m.Run())
}
