package endpoints

import (
	"bytes"
	"os"
	"testing"

	"github.com/doodlesbykumbi/drugbank-in-go/pkg/audit"
)

func TestMain(m *testing.M) {
	audit.SetEnabled(false)
	os.Exit(m.Run())
}

// captureAudit enables audit logging into a buffer for the rest of the test.
func captureAudit(t *testing.T) *bytes.Buffer {
	t.Helper()
	t.Setenv("DRUGBANK_AUDIT_DATABASE_URL", "")
	var buf bytes.Buffer
	audit.DefaultLogger.SetWriter(&buf)
	audit.SetEnabled(true)
	t.Cleanup(func() {
		audit.SetEnabled(false)
		audit.DefaultLogger.SetWriter(os.Stderr)
	})
	return &buf
}
