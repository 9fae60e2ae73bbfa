package integration

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/exec"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/doodlesbykumbi/drugbank-in-go/pkg/config"
	"github.com/doodlesbykumbi/drugbank-in-go/pkg/server"
	"github.com/doodlesbykumbi/drugbank-in-go/pkg/server/endpoints"
	gormstore "github.com/doodlesbykumbi/drugbank-in-go/pkg/server/store/gorm"
	"github.com/doodlesbykumbi/drugbank-in-go/pkg/server/store/memory"
)

// portCounter is used to allocate unique ports for each test server
var portCounter int32 = 19000

// ServerConfig holds configuration for a test API server instance
type ServerConfig struct {
	// TokenSecret turns on bearer token checks when set.
	TokenSecret string
	// XMLPath serves the export from memory instead of the database.
	XMLPath string
}

// ServerInstance represents a running API server for a single scenario
type ServerInstance struct {
	Server        *server.Server
	ServerURL     string
	Port          int
	Config        ServerConfig
	cancel        context.CancelFunc
	serverProcess *exec.Cmd // For binary mode
}

// StartServer starts an API server in the mode the suite was started in.
func StartServer(tc *TestContext, cfg ServerConfig) (*ServerInstance, error) {
	if tc.InlineMode {
		return startInlineServerInstance(tc, cfg)
	}
	return startBinaryServerInstance(tc, cfg)
}

// startInlineServerInstance starts an in-process server
func startInlineServerInstance(tc *TestContext, cfg ServerConfig) (*ServerInstance, error) {
	port := int(atomic.AddInt32(&portCounter, 1))

	serverCfg := &config.DrugbankConfig{
		BindAddress:    "127.0.0.1",
		Port:           port,
		ReadTimeout:    15,
		WriteTimeout:   15,
		RelatedDepth:   1,
		APITokenSecret: cfg.TokenSecret,
	}

	var s *server.Server
	if cfg.XMLPath != "" {
		st, err := memory.Load(context.Background(), cfg.XMLPath)
		if err != nil {
			return nil, err
		}
		s = server.NewServer(st, st, serverCfg, nil)
	} else {
		s = server.NewServer(gormstore.NewDrugsStore(tc.DB), gormstore.NewHealthStore(tc.DB), serverCfg, nil)
	}
	endpoints.RegisterAll(s)

	listener, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", port))
	if err != nil {
		return nil, fmt.Errorf("failed to create listener on port %d: %w", port, err)
	}

	instance := &ServerInstance{
		Server:    s,
		ServerURL: fmt.Sprintf("http://127.0.0.1:%d", port),
		Port:      port,
		Config:    cfg,
	}

	go func() {
		_ = s.StartWithListener(listener)
	}()

	if err := waitForServer(instance.ServerURL, 10*time.Second); err != nil {
		instance.Stop()
		return nil, fmt.Errorf("server failed to become ready: %w", err)
	}

	return instance, nil
}

// startBinaryServerInstance starts a server using the drugbankctl binary
func startBinaryServerInstance(tc *TestContext, cfg ServerConfig) (*ServerInstance, error) {
	port := int(atomic.AddInt32(&portCounter, 1))

	ctx, cancel := context.WithCancel(context.Background())

	args := []string{"server", "--no-migrate", "-b", "127.0.0.1", "-p", strconv.Itoa(port)}
	if cfg.XMLPath != "" {
		args = append(args, "--xml", cfg.XMLPath)
	}
	cmd := exec.CommandContext(ctx, tc.BinaryPath, args...)
	cmd.Env = binaryEnv(tc, cfg.TokenSecret)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		cancel()
		return nil, fmt.Errorf("failed to start binary: %w", err)
	}

	instance := &ServerInstance{
		ServerURL:     fmt.Sprintf("http://127.0.0.1:%d", port),
		Port:          port,
		Config:        cfg,
		cancel:        cancel,
		serverProcess: cmd,
	}

	if err := waitForServer(instance.ServerURL, 30*time.Second); err != nil {
		instance.Stop()
		return nil, fmt.Errorf("server failed to become ready: %w", err)
	}

	return instance, nil
}

// binaryEnv isolates drugbankctl from the developer's config and .env files.
func binaryEnv(tc *TestContext, tokenSecret string) []string {
	return append(os.Environ(),
		"DATABASE_URL="+tc.DatabaseURL,
		"DRUGBANK_API_TOKEN_SECRET="+tokenSecret,
		"DRUGBANK_CONFIG_PATH="+os.TempDir(),
		"DRUGBANK_AUDIT_ENABLED=false",
	)
}

// Stop shuts down the server instance
func (si *ServerInstance) Stop() {
	if si.Server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		_ = si.Server.Shutdown(ctx)
		cancel()
	}
	if si.cancel != nil {
		si.cancel()
	}
	if si.serverProcess != nil && si.serverProcess.Process != nil {
		_ = si.serverProcess.Process.Kill()
		_ = si.serverProcess.Wait()
	}
}
