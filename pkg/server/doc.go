// Package server provides the HTTP server for the DrugBank lookup API.
//
// It uses gorilla/mux for routing, gorilla/handlers for the access log and
// an optional HS256 bearer middleware.
//
// # Server Setup
//
//	srv := server.NewServer(drugsStore, healthStore, cfg, logger)
//	endpoints.RegisterAll(srv)
//	if err := srv.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// # Components
//
//   - Router: HTTP request router
//   - DrugsStore: imported DrugBank tables (memory or Postgres)
//   - HealthStore: backing store connectivity
//   - JWTMiddleware: bearer validation, nil when no api_token_secret is set
//
// # Endpoints
//
// API endpoints are registered via the endpoints subpackage:
//
//   - POST /get_pathway_count/ - pathway count of a drug
//   - GET /drugs/{id} and its synonyms, products, targets, interactions, related
//   - GET /statuses - approval status counts
//   - GET /genes/{gene} - products of drugs acting on a gene
//   - GET / and /health - status and store connectivity
package server
