// Package config provides configuration management for drugbankctl.
//
// # Configuration Sources
//
// Configuration is loaded from, in increasing precedence:
//
//   - Built-in defaults
//   - $DRUGBANK_CONFIG_PATH/drugbank.yml (default /etc/drugbank)
//   - Environment variables, optionally seeded from a .env file
//
// # Key Configuration Options
//
//   - DRUGBANK_XML_PATH: DrugBank dump to read
//   - DRUGBANK_API_TOKEN_SECRET: HS256 secret guarding the API
//   - DRUGBANK_LOG_LEVEL: Logging verbosity
//   - DATABASE_URL: Database connection
//   - PORT, BIND_ADDRESS: Server listen address
package config
