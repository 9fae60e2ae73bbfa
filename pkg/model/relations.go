package model

import "github.com/doodlesbykumbi/drugbank-in-go/pkg/tables"

type Pathway struct {
	DrugBankID string `gorm:"column:drugbank_id"`
	DrugName   string
	Pathway    string
	Category   string
}

func (Pathway) TableName() string {
	return "pathways"
}

func NewPathway(row tables.PathwayRow) Pathway {
	return Pathway{DrugBankID: row.DrugBankID, DrugName: row.Drug, Pathway: row.Pathway, Category: row.Category}
}

func (p Pathway) Row() tables.PathwayRow {
	return tables.PathwayRow{DrugBankID: p.DrugBankID, Drug: p.DrugName, Pathway: p.Pathway, Category: p.Category}
}

type Target struct {
	DrugBankID       string `gorm:"column:drugbank_id"`
	DrugName         string
	TargetID         string
	TargetName       string
	Source           string
	ExternalID       string
	PolypeptideName  string
	GeneName         string
	GenAtlasID       string `gorm:"column:genatlas_id"`
	Chromosome       string
	CellularLocation string
}

func (Target) TableName() string {
	return "targets"
}

func NewTarget(row tables.TargetRow) Target {
	return Target{
		DrugBankID:       row.DrugBankID,
		DrugName:         row.Drug,
		TargetID:         row.TargetID,
		TargetName:       row.TargetName,
		Source:           row.Source,
		ExternalID:       row.ExternalID,
		PolypeptideName:  row.PolypeptideName,
		GeneName:         row.GeneName,
		GenAtlasID:       row.GenAtlasID,
		Chromosome:       row.Chromosome,
		CellularLocation: row.CellularLocation,
	}
}

func (t Target) Row() tables.TargetRow {
	return tables.TargetRow{
		DrugBankID:       t.DrugBankID,
		Drug:             t.DrugName,
		TargetID:         t.TargetID,
		TargetName:       t.TargetName,
		Source:           t.Source,
		ExternalID:       t.ExternalID,
		PolypeptideName:  t.PolypeptideName,
		GeneName:         t.GeneName,
		GenAtlasID:       t.GenAtlasID,
		Chromosome:       t.Chromosome,
		CellularLocation: t.CellularLocation,
	}
}

type Interaction struct {
	DrugBankID        string `gorm:"column:drugbank_id"`
	DrugName          string
	InteractingDrugID string
	InteractingDrug   string
	Description       string
}

func (Interaction) TableName() string {
	return "interactions"
}

func NewInteraction(row tables.InteractionRow) Interaction {
	return Interaction{
		DrugBankID:        row.DrugBankID,
		DrugName:          row.Drug,
		InteractingDrugID: row.InteractingDrugID,
		InteractingDrug:   row.InteractingDrug,
		Description:       row.Description,
	}
}

func (i Interaction) Row() tables.InteractionRow {
	return tables.InteractionRow{
		DrugBankID:        i.DrugBankID,
		Drug:              i.DrugName,
		InteractingDrugID: i.InteractingDrugID,
		InteractingDrug:   i.InteractingDrug,
		Description:       i.Description,
	}
}

type GeneProduct struct {
	Gene          string
	DrugBankID    string `gorm:"column:drugbank_id"`
	DrugName      string
	ProductName   string
	ProductID     string
	ProductIDType string
}

func (GeneProduct) TableName() string {
	return "gene_products"
}

func NewGeneProduct(row tables.GeneRow) GeneProduct {
	return GeneProduct{
		Gene:          row.Gene,
		DrugBankID:    row.DrugBankID,
		DrugName:      row.Drug,
		ProductName:   row.ProductName,
		ProductID:     row.ProductID,
		ProductIDType: row.ProductIDType,
	}
}

func (g GeneProduct) Row() tables.GeneRow {
	return tables.GeneRow{
		Gene:          g.Gene,
		DrugBankID:    g.DrugBankID,
		Drug:          g.DrugName,
		ProductName:   g.ProductName,
		ProductID:     g.ProductID,
		ProductIDType: g.ProductIDType,
	}
}

// StatusCount is one approval status row; Position keeps reporting order.
type StatusCount struct {
	Position int `gorm:"primaryKey;autoIncrement:false"`
	Status   string
	Count    int
}

func (StatusCount) TableName() string {
	return "status_counts"
}
