package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/doodlesbykumbi/drugbank-in-go/pkg/config"
	"github.com/doodlesbykumbi/drugbank-in-go/pkg/server/middleware"
	"github.com/doodlesbykumbi/drugbank-in-go/pkg/server/store"
)

// shutdownTimeout bounds how long Run waits for in-flight requests.
const shutdownTimeout = 10 * time.Second

type Server struct {
	Router        *mux.Router
	DrugsStore    store.DrugsStore
	HealthStore   store.HealthStore
	Config        *config.DrugbankConfig
	JWTMiddleware *middleware.JWTAuthenticator
	Logger        *zap.Logger
	srv           *http.Server
}

func NewServer(
	drugsStore store.DrugsStore,
	healthStore store.HealthStore,
	cfg *config.DrugbankConfig,
	logger *zap.Logger,
) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	router := mux.NewRouter().UseEncodedPath()
	srv := &http.Server{
		Handler:      handlers.LoggingHandler(os.Stdout, router),
		Addr:         cfg.Addr(),
		WriteTimeout: cfg.WriteTimeoutDuration(),
		ReadTimeout:  cfg.ReadTimeoutDuration(),
	}

	var jwtMiddleware *middleware.JWTAuthenticator
	if cfg.APITokenSecret != "" {
		jwtMiddleware = middleware.NewJWTAuthenticator(cfg.APITokenSecret)
	}

	return &Server{
		Router:        router,
		DrugsStore:    drugsStore,
		HealthStore:   healthStore,
		Config:        cfg,
		JWTMiddleware: jwtMiddleware,
		Logger:        logger,
		srv:           srv,
	}
}

// Protect wraps h with bearer token checks when an API secret is configured.
func (s *Server) Protect(h http.Handler) http.Handler {
	if s.JWTMiddleware == nil {
		return h
	}
	return s.JWTMiddleware.Middleware(h)
}

// Handler returns the root handler including the access log.
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

func (s *Server) Start() error {
	s.Logger.Info("server listening", zap.String("addr", s.srv.Addr), zap.Bool("auth", s.JWTMiddleware != nil))
	return s.srv.ListenAndServe()
}

// StartWithListener serves on an already bound listener.
func (s *Server) StartWithListener(l net.Listener) error {
	s.Logger.Info("server listening", zap.String("addr", l.Addr().String()), zap.Bool("auth", s.JWTMiddleware != nil))
	return s.srv.Serve(l)
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.Start()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.Logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
