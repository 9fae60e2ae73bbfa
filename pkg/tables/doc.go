// Package tables projects DrugBank records into flat rows.
//
// Every projection produces one row per element found in the records:
//
//   - Drugs: one row per drug, duplicates on DrugBank ID dropped
//   - Synonyms, Products: one row per drug carrying a primary ID
//   - Pathways: one row per (drug, pathway)
//   - Targets: one row per target that has a polypeptide
//   - Interactions: one row per drug-interaction entry
//   - Genes: one row per (target gene, product of the targeting drug)
//   - AminoAcids: one row per target polypeptide
//
// Statuses aggregates approval groups instead of emitting rows.
//
// Extract computes every projection of a record set concurrently.
package tables
