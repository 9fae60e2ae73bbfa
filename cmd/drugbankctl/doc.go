// Command drugbankctl works with DrugBank XML exports.
//
// It projects the nested drug records of an export into flat tables, builds
// graph views over them, fabricates synthetic exports from the observed
// structure, imports tables into PostgreSQL and serves a lookup API.
//
// # Quick Start
//
//	# Print the pathway table of an export
//	drugbankctl parse data/drugbank_partial.xml --table pathways
//
//	# Grow an export to 20000 records
//	drugbankctl generate data/drugbank_partial.xml data/drugbank_simulated.xml --total 20000
//
//	# Serve the lookup API from the export
//	drugbankctl server --xml data/drugbank_partial.xml
//
//	# Or import into PostgreSQL and serve from there
//	drugbankctl db migrate
//	drugbankctl load data/drugbank_partial.xml
//	drugbankctl server
//
// # Environment Variables
//
//   - DATABASE_URL: PostgreSQL connection string
//   - DRUGBANK_XML_PATH: Export read by default (default: data/drugbank_partial.xml)
//   - DRUGBANK_API_TOKEN_SECRET: HS256 secret; when set the API requires bearer tokens
//   - DRUGBANK_LOG_LEVEL: Log level (debug, info, warn, error)
//   - PORT: Server port (default: 8000)
package main
