package store

import (
	"errors"

	"github.com/doodlesbykumbi/drugbank-in-go/pkg/tables"
)

// ErrDrugNotFound is returned when a drug doesn't exist
var ErrDrugNotFound = errors.New("drug not found")

// ErrGeneNotFound is returned when no imported target carries a gene
var ErrGeneNotFound = errors.New("gene not found")

// Drug is a drug row with its raw approval groups
type Drug struct {
	tables.DrugRow
	Groups []string `json:"groups"`
}

// DrugsStore abstracts read access to imported DrugBank tables.
//
// Per-drug lookups return ErrDrugNotFound when the drug itself is unknown and
// an empty slice when it is known but has no rows.
type DrugsStore interface {
	// FetchDrug returns a drug and its groups
	FetchDrug(drugID string) (*Drug, error)

	Synonyms(drugID string) ([]string, error)

	Products(drugID string) ([]tables.Product, error)

	Targets(drugID string) ([]tables.TargetRow, error)

	Interactions(drugID string) ([]tables.InteractionRow, error)

	// PathwayCount returns the number of pathways a drug takes part in.
	// Returns ErrDrugNotFound if the drug has no pathway rows.
	PathwayCount(drugID string) (int, error)

	// Pathways returns every drug-pathway row
	Pathways() ([]tables.PathwayRow, error)

	Statuses() (tables.StatusSummary, error)

	// GeneProducts returns the products of drugs acting on a gene.
	// Returns ErrGeneNotFound if the gene has no rows.
	GeneProducts(gene string) ([]tables.GeneRow, error)
}
