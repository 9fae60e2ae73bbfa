package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os/exec"
	"strings"

	"github.com/cucumber/godog"

	"github.com/doodlesbykumbi/drugbank-in-go/pkg/drugbank"
	gormstore "github.com/doodlesbykumbi/drugbank-in-go/pkg/server/store/gorm"
	"github.com/doodlesbykumbi/drugbank-in-go/pkg/tables"
)

// StepsContext holds state shared between step definitions
type StepsContext struct {
	tc           *TestContext
	server       *ServerInstance
	serverURL    string
	tokenSecret  string
	authToken    string
	response     *http.Response
	responseBody []byte
}

// NewStepsContext creates a new steps context
func NewStepsContext(tc *TestContext) *StepsContext {
	return &StepsContext{tc: tc}
}

// RegisterSteps registers all step definitions
func (s *StepsContext) RegisterSteps(sc *godog.ScenarioContext) {
	sc.After(func(ctx context.Context, _ *godog.Scenario, err error) (context.Context, error) {
		if s.server != nil {
			s.server.Stop()
			s.server = nil
		}
		return ctx, err
	})

	// Setup steps
	sc.Step(`^the export "([^"]*)" is loaded into the database$`, s.theExportIsLoadedIntoTheDatabase)
	sc.Step(`^the API requires tokens signed with "([^"]*)"$`, s.theAPIRequiresTokensSignedWith)
	sc.Step(`^an API server backed by the database is running$`, s.anAPIServerBackedByTheDatabaseIsRunning)
	sc.Step(`^an API server backed by the export "([^"]*)" is running$`, s.anAPIServerBackedByTheExportIsRunning)

	// Database steps
	sc.Step(`^the database should contain (\d+) drugs$`, s.theDatabaseShouldContainDrugs)
	sc.Step(`^a load run of (\d+) drugs should be recorded for "([^"]*)"$`, s.aLoadRunShouldBeRecorded)

	// Request steps
	sc.Step(`^I request the pathway count for "([^"]*)"$`, s.iRequestThePathwayCountFor)
	sc.Step(`^I post the pathway count body '([^']*)'$`, s.iPostThePathwayCountBody)
	sc.Step(`^I GET "([^"]*)"$`, s.iGet)

	// Response steps
	sc.Step(`^the response status should be (\d+)$`, s.theResponseStatusShouldBe)
	sc.Step(`^the response body should be "([^"]*)"$`, s.theResponseBodyShouldBe)
	sc.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, s.theResponseFieldShouldBe)
	sc.Step(`^the response field "([^"]*)" should be (\d+)$`, s.theResponseFieldShouldBeNumber)
	sc.Step(`^the response should list (\d+) items$`, s.theResponseShouldListItems)

	s.registerJWTSteps(sc)
}

// Setup steps

func (s *StepsContext) theExportIsLoadedIntoTheDatabase(name string) error {
	path := s.tc.Fixture(name)

	if !s.tc.InlineMode {
		cmd := exec.Command(s.tc.BinaryPath, "load", path)
		cmd.Env = binaryEnv(s.tc, "")
		out, err := cmd.CombinedOutput()
		if err != nil {
			return fmt.Errorf("drugbankctl load failed: %w\n%s", err, out)
		}
		return nil
	}

	ctx := context.Background()
	drugs, err := drugbank.ParseFile(ctx, path)
	if err != nil {
		return err
	}
	set, err := tables.Extract(ctx, drugs)
	if err != nil {
		return err
	}
	_, err = gormstore.NewDrugsStore(s.tc.DB).Import(ctx, set, path)
	return err
}

func (s *StepsContext) theAPIRequiresTokensSignedWith(secret string) error {
	s.tokenSecret = secret
	return nil
}

func (s *StepsContext) anAPIServerBackedByTheDatabaseIsRunning() error {
	return s.startServer(ServerConfig{TokenSecret: s.tokenSecret})
}

func (s *StepsContext) anAPIServerBackedByTheExportIsRunning(name string) error {
	return s.startServer(ServerConfig{TokenSecret: s.tokenSecret, XMLPath: s.tc.Fixture(name)})
}

func (s *StepsContext) startServer(cfg ServerConfig) error {
	instance, err := StartServer(s.tc, cfg)
	if err != nil {
		return err
	}
	s.server = instance
	s.serverURL = instance.ServerURL
	return nil
}

// Database steps

func (s *StepsContext) theDatabaseShouldContainDrugs(expected int) error {
	var count int64
	if err := s.tc.DB.Table("drugs").Count(&count).Error; err != nil {
		return err
	}
	if count != int64(expected) {
		return fmt.Errorf("expected %d drugs, found %d", expected, count)
	}
	return nil
}

func (s *StepsContext) aLoadRunShouldBeRecorded(drugs int, name string) error {
	var count int64
	err := s.tc.DB.Table("load_runs").
		Where("source = ? AND drug_count = ? AND finished_at IS NOT NULL", s.tc.Fixture(name), drugs).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("no finished load run of %d drugs for %s", drugs, name)
	}
	return nil
}

// Request steps

func (s *StepsContext) iRequestThePathwayCountFor(drugID string) error {
	body, err := json.Marshal(map[string]string{"drug_id": drugID})
	if err != nil {
		return err
	}
	return s.do(http.MethodPost, "/get_pathway_count/", bytes.NewReader(body))
}

func (s *StepsContext) iPostThePathwayCountBody(body string) error {
	return s.do(http.MethodPost, "/get_pathway_count/", strings.NewReader(body))
}

func (s *StepsContext) iGet(path string) error {
	return s.do(http.MethodGet, path, nil)
}

func (s *StepsContext) do(method, path string, body io.Reader) error {
	if s.serverURL == "" {
		return fmt.Errorf("no API server is running")
	}
	req, err := http.NewRequest(method, s.serverURL+path, body)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if s.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+s.authToken)
	}

	s.response, err = s.tc.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	s.responseBody, err = io.ReadAll(s.response.Body)
	_ = s.response.Body.Close()
	return err
}

// Response steps

func (s *StepsContext) theResponseStatusShouldBe(expected int) error {
	if s.response == nil {
		return fmt.Errorf("no response received")
	}
	if s.response.StatusCode != expected {
		return fmt.Errorf("expected status %d, got %d: %s", expected, s.response.StatusCode, string(s.responseBody))
	}
	return nil
}

func (s *StepsContext) theResponseBodyShouldBe(expected string) error {
	if got := strings.TrimSpace(string(s.responseBody)); got != expected {
		return fmt.Errorf("expected body %q, got %q", expected, got)
	}
	return nil
}

func (s *StepsContext) responseField(name string) (interface{}, error) {
	var fields map[string]interface{}
	if err := json.Unmarshal(s.responseBody, &fields); err != nil {
		return nil, fmt.Errorf("response is not a JSON object: %w: %s", err, string(s.responseBody))
	}
	v, ok := fields[name]
	if !ok {
		return nil, fmt.Errorf("response has no field %q: %s", name, string(s.responseBody))
	}
	return v, nil
}

func (s *StepsContext) theResponseFieldShouldBe(name, expected string) error {
	v, err := s.responseField(name)
	if err != nil {
		return err
	}
	if got, ok := v.(string); !ok || got != expected {
		return fmt.Errorf("expected %s to be %q, got %v", name, expected, v)
	}
	return nil
}

func (s *StepsContext) theResponseFieldShouldBeNumber(name string, expected int) error {
	v, err := s.responseField(name)
	if err != nil {
		return err
	}
	if got, ok := v.(float64); !ok || int(got) != expected {
		return fmt.Errorf("expected %s to be %d, got %v", name, expected, v)
	}
	return nil
}

func (s *StepsContext) theResponseShouldListItems(expected int) error {
	var items []json.RawMessage
	if err := json.Unmarshal(s.responseBody, &items); err != nil {
		return fmt.Errorf("response is not a JSON array: %w: %s", err, string(s.responseBody))
	}
	if len(items) != expected {
		return fmt.Errorf("expected %d items, got %d", expected, len(items))
	}
	return nil
}

