// Package model defines the database models for imported DrugBank tables.
//
// Each model maps one table created by the migrations in db/migrations and
// converts to and from the matching row type of package tables.
//
// # Tables
//
//   - load_runs: one row per import, keyed by a random UUID
//   - drugs, drug_groups: drug details and raw approval groups
//   - synonyms, products: per-drug lists, ordered by position
//   - pathways, targets, interactions, gene_products: flat relation tables
//   - status_counts: approval status summary of the last import
package model
