package gorm

import (
	"github.com/doodlesbykumbi/drugbank-in-go/pkg/model"
	"github.com/doodlesbykumbi/drugbank-in-go/pkg/server/store"
	"github.com/doodlesbykumbi/drugbank-in-go/pkg/tables"

	"gorm.io/gorm"
)

// Ensure DrugsStore implements store.DrugsStore
var _ store.DrugsStore = (*DrugsStore)(nil)

// DrugsStore implements store.DrugsStore using GORM
type DrugsStore struct {
	db *gorm.DB
}

// NewDrugsStore creates a new DrugsStore
func NewDrugsStore(db *gorm.DB) *DrugsStore {
	return &DrugsStore{db: db}
}

// FetchDrug returns a drug and its groups.
func (s *DrugsStore) FetchDrug(drugID string) (*store.Drug, error) {
	var drug model.Drug
	tx := s.db.Where("drugbank_id = ?", drugID).First(&drug)
	if tx.Error != nil {
		if tx.Error == gorm.ErrRecordNotFound {
			return nil, store.ErrDrugNotFound
		}
		return nil, tx.Error
	}

	var groups []model.DrugGroup
	if err := s.db.Where("drugbank_id = ?", drugID).Order("grp").Find(&groups).Error; err != nil {
		return nil, err
	}

	result := &store.Drug{DrugRow: drug.Row(), Groups: make([]string, 0, len(groups))}
	for _, g := range groups {
		result.Groups = append(result.Groups, g.Group)
	}
	return result, nil
}

func (s *DrugsStore) requireDrug(drugID string) error {
	var n int64
	if err := s.db.Model(&model.Drug{}).Where("drugbank_id = ?", drugID).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return store.ErrDrugNotFound
	}
	return nil
}

func (s *DrugsStore) Synonyms(drugID string) ([]string, error) {
	if err := s.requireDrug(drugID); err != nil {
		return nil, err
	}
	synonyms := []string{}
	err := s.db.Model(&model.Synonym{}).Where("drugbank_id = ?", drugID).Order("position").Pluck("synonym", &synonyms).Error
	return synonyms, err
}

func (s *DrugsStore) Products(drugID string) ([]tables.Product, error) {
	if err := s.requireDrug(drugID); err != nil {
		return nil, err
	}
	var rows []model.Product
	if err := s.db.Where("drugbank_id = ?", drugID).Order("position").Find(&rows).Error; err != nil {
		return nil, err
	}
	products := make([]tables.Product, 0, len(rows))
	for _, r := range rows {
		products = append(products, r.Product())
	}
	return products, nil
}

func (s *DrugsStore) Targets(drugID string) ([]tables.TargetRow, error) {
	if err := s.requireDrug(drugID); err != nil {
		return nil, err
	}
	var rows []model.Target
	if err := s.db.Where("drugbank_id = ?", drugID).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	targets := make([]tables.TargetRow, 0, len(rows))
	for _, r := range rows {
		targets = append(targets, r.Row())
	}
	return targets, nil
}

func (s *DrugsStore) Interactions(drugID string) ([]tables.InteractionRow, error) {
	if err := s.requireDrug(drugID); err != nil {
		return nil, err
	}
	var rows []model.Interaction
	if err := s.db.Where("drugbank_id = ?", drugID).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	interactions := make([]tables.InteractionRow, 0, len(rows))
	for _, r := range rows {
		interactions = append(interactions, r.Row())
	}
	return interactions, nil
}

// PathwayCount returns the number of pathway rows of a drug.
func (s *DrugsStore) PathwayCount(drugID string) (int, error) {
	var n int64
	if err := s.db.Model(&model.Pathway{}).Where("drugbank_id = ?", drugID).Count(&n).Error; err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, store.ErrDrugNotFound
	}
	return int(n), nil
}

func (s *DrugsStore) Pathways() ([]tables.PathwayRow, error) {
	var rows []model.Pathway
	if err := s.db.Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	pathways := make([]tables.PathwayRow, 0, len(rows))
	for _, r := range rows {
		pathways = append(pathways, r.Row())
	}
	return pathways, nil
}

// Statuses returns the status summary written by the last import.
func (s *DrugsStore) Statuses() (tables.StatusSummary, error) {
	var summary tables.StatusSummary

	var counts []model.StatusCount
	if err := s.db.Order("position").Find(&counts).Error; err != nil {
		return summary, err
	}
	for _, c := range counts {
		summary.Rows = append(summary.Rows, tables.StatusRow{Status: c.Status, Count: c.Count})
	}

	var runs []model.LoadRun
	if err := s.db.Order("started_at desc").Limit(1).Find(&runs).Error; err != nil {
		return summary, err
	}
	if len(runs) > 0 {
		summary.ApprovedNotWithdrawn = runs[0].ApprovedNotWithdrawn
	}
	return summary, nil
}

func (s *DrugsStore) GeneProducts(gene string) ([]tables.GeneRow, error) {
	var rows []model.GeneProduct
	if err := s.db.Where("gene = ?", gene).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, store.ErrGeneNotFound
	}
	genes := make([]tables.GeneRow, 0, len(rows))
	for _, r := range rows {
		genes = append(genes, r.Row())
	}
	return genes, nil
}
