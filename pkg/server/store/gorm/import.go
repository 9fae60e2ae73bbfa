package gorm

import (
	"context"
	"fmt"
	"time"

	"github.com/doodlesbykumbi/drugbank-in-go/pkg/model"
	"github.com/doodlesbykumbi/drugbank-in-go/pkg/tables"

	"gorm.io/gorm"
)

const importBatchSize = 500

// Tables cleared by an import, children first.
var importedTables = []string{
	"status_counts",
	"gene_products",
	"interactions",
	"targets",
	"pathways",
	"products",
	"synonyms",
	"drug_groups",
	"drugs",
}

// Import replaces the imported tables with set in one transaction and
// records the run in load_runs.
func (s *DrugsStore) Import(ctx context.Context, set *tables.Set, source string) (*model.LoadRun, error) {
	run := &model.LoadRun{
		Source:               source,
		DrugCount:            len(set.Drugs),
		ApprovedNotWithdrawn: set.Statuses.ApprovedNotWithdrawn,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, table := range importedTables {
			if err := tx.Exec("DELETE FROM " + table).Error; err != nil {
				return fmt.Errorf("failed to clear %s: %w", table, err)
			}
		}

		if err := tx.Create(run).Error; err != nil {
			return fmt.Errorf("failed to record load run: %w", err)
		}

		drugs := make([]model.Drug, 0, len(set.Drugs))
		for _, row := range set.Drugs {
			drugs = append(drugs, model.NewDrug(row, run.ID))
		}
		if err := createInBatches(tx, "drugs", drugs); err != nil {
			return err
		}

		if err := createInBatches(tx, "drug_groups", drugGroups(set)); err != nil {
			return err
		}

		var synonyms []model.Synonym
		for _, row := range set.Synonyms {
			for i, name := range row.Synonyms {
				synonyms = append(synonyms, model.Synonym{DrugBankID: row.DrugBankID, Position: i + 1, Synonym: name})
			}
		}
		if err := createInBatches(tx, "synonyms", synonyms); err != nil {
			return err
		}

		var products []model.Product
		for _, row := range set.Products {
			for i, p := range row.Products {
				products = append(products, model.NewProduct(row.DrugBankID, i+1, p))
			}
		}
		if err := createInBatches(tx, "products", products); err != nil {
			return err
		}

		pathways := make([]model.Pathway, 0, len(set.Pathways))
		for _, row := range set.Pathways {
			pathways = append(pathways, model.NewPathway(row))
		}
		if err := createInBatches(tx, "pathways", pathways); err != nil {
			return err
		}

		targets := make([]model.Target, 0, len(set.Targets))
		for _, row := range set.Targets {
			targets = append(targets, model.NewTarget(row))
		}
		if err := createInBatches(tx, "targets", targets); err != nil {
			return err
		}

		interactions := make([]model.Interaction, 0, len(set.Interactions))
		for _, row := range set.Interactions {
			interactions = append(interactions, model.NewInteraction(row))
		}
		if err := createInBatches(tx, "interactions", interactions); err != nil {
			return err
		}

		genes := make([]model.GeneProduct, 0, len(set.Genes))
		for _, row := range set.Genes {
			genes = append(genes, model.NewGeneProduct(row))
		}
		if err := createInBatches(tx, "gene_products", genes); err != nil {
			return err
		}

		statuses := make([]model.StatusCount, 0, len(set.Statuses.Rows))
		for i, row := range set.Statuses.Rows {
			statuses = append(statuses, model.StatusCount{Position: i + 1, Status: row.Status, Count: row.Count})
		}
		if err := createInBatches(tx, "status_counts", statuses); err != nil {
			return err
		}

		finished := time.Now().UTC()
		run.FinishedAt = &finished
		return tx.Model(run).Update("finished_at", finished).Error
	})
	if err != nil {
		return nil, err
	}
	return run, nil
}

// drugGroups flattens set.Groups for the drugs being imported, dropping
// repeated groups of one drug.
func drugGroups(set *tables.Set) []model.DrugGroup {
	var groups []model.DrugGroup
	for _, row := range set.Drugs {
		seen := make(map[string]bool)
		for _, g := range set.Groups[row.DrugBankID] {
			if g == "" || seen[g] {
				continue
			}
			seen[g] = true
			groups = append(groups, model.DrugGroup{DrugBankID: row.DrugBankID, Group: g})
		}
	}
	return groups
}

func createInBatches[T any](tx *gorm.DB, table string, rows []T) error {
	for start := 0; start < len(rows); start += importBatchSize {
		end := start + importBatchSize
		if end > len(rows) {
			end = len(rows)
		}
		batch := rows[start:end]
		if err := tx.Create(&batch).Error; err != nil {
			return fmt.Errorf("failed to insert %s: %w", table, err)
		}
	}
	return nil
}
