// Package store provides storage abstractions for the drugbank API server.
//
// This package defines interfaces for reading imported DrugBank tables, so
// that endpoints work the same against Postgres (package gorm) or an
// in-memory index of a parsed dump (package memory).
//
// # Available Stores
//
//   - DrugsStore: drug details and per-drug relation tables
//   - HealthStore: backend connectivity
//
// # Usage
//
//	drugs := gorm.NewDrugsStore(db)
//	count, err := drugs.PathwayCount("DB00001")
//	if err != nil {
//	    if errors.Is(err, store.ErrDrugNotFound) {
//	        // Handle not found
//	    }
//	}
package store
