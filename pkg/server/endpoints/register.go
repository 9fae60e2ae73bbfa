package endpoints

import (
	"github.com/doodlesbykumbi/drugbank-in-go/pkg/server"
)

// RegisterAll registers all API endpoints on the server
func RegisterAll(srv *server.Server) {
	RegisterStatusEndpoints(srv)
	RegisterPathwaysEndpoints(srv)
	RegisterDrugsEndpoints(srv)
	RegisterGenesEndpoints(srv)
}
