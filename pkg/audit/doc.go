// Package audit records security and data events for drugbankctl.
//
// Events are written as RFC5424 syslog lines to stderr and, when
// DRUGBANK_AUDIT_DATABASE_URL is set, persisted to the audit_messages table.
//
// # Event Types
//
//   - AuthenticateEvent: bearer token accepted or rejected by the API
//   - LookupEvent: a drug lookup served by the API
//   - LoadEvent: a dump imported into the database or reloaded in memory
//
// # Usage
//
//	audit.Log(audit.LoadEvent{Source: path, Drugs: n, Success: true})
//
// Set DRUGBANK_AUDIT_ENABLED=false to turn auditing off.
package audit
