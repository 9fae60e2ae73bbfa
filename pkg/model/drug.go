package model

import (
	"github.com/google/uuid"

	"github.com/doodlesbykumbi/drugbank-in-go/pkg/tables"
)

type Drug struct {
	DrugBankID        string `gorm:"column:drugbank_id;primaryKey"`
	Name              string
	Type              string
	Description       string
	DosageForm        string
	Indications       string
	MechanismOfAction string
	FoodInteractions  string
	LoadRunID         *uuid.UUID `gorm:"column:load_run_id;type:uuid"`
}

func (Drug) TableName() string {
	return "drugs"
}

func NewDrug(row tables.DrugRow, runID uuid.UUID) Drug {
	d := Drug{
		DrugBankID:        row.DrugBankID,
		Name:              row.Name,
		Type:              row.Type,
		Description:       row.Description,
		DosageForm:        row.DosageForm,
		Indications:       row.Indications,
		MechanismOfAction: row.MechanismOfAction,
		FoodInteractions:  row.FoodInteractions,
	}
	if runID != uuid.Nil {
		d.LoadRunID = &runID
	}
	return d
}

func (d Drug) Row() tables.DrugRow {
	return tables.DrugRow{
		DrugBankID:        d.DrugBankID,
		Name:              d.Name,
		Type:              d.Type,
		Description:       d.Description,
		DosageForm:        d.DosageForm,
		Indications:       d.Indications,
		MechanismOfAction: d.MechanismOfAction,
		FoodInteractions:  d.FoodInteractions,
	}
}

// DrugGroup is one approval group of a drug, as written in the dump.
type DrugGroup struct {
	DrugBankID string `gorm:"column:drugbank_id;primaryKey"`
	Group      string `gorm:"column:grp;primaryKey"`
}

func (DrugGroup) TableName() string {
	return "drug_groups"
}

type Synonym struct {
	DrugBankID string `gorm:"column:drugbank_id"`
	Position   int
	Synonym    string
}

func (Synonym) TableName() string {
	return "synonyms"
}

type Product struct {
	DrugBankID     string `gorm:"column:drugbank_id"`
	Position       int
	Name           string
	Manufacturer   string
	NDCCode        string `gorm:"column:ndc_code"`
	Form           string
	Route          string
	Strength       string
	Country        string
	ApprovalAgency string
}

func (Product) TableName() string {
	return "products"
}

func NewProduct(drugID string, position int, p tables.Product) Product {
	return Product{
		DrugBankID:     drugID,
		Position:       position,
		Name:           p.Name,
		Manufacturer:   p.Manufacturer,
		NDCCode:        p.NDCCode,
		Form:           p.Form,
		Route:          p.Route,
		Strength:       p.Strength,
		Country:        p.Country,
		ApprovalAgency: p.ApprovalAgency,
	}
}

func (p Product) Product() tables.Product {
	return tables.Product{
		Name:           p.Name,
		Manufacturer:   p.Manufacturer,
		NDCCode:        p.NDCCode,
		Form:           p.Form,
		Route:          p.Route,
		Strength:       p.Strength,
		Country:        p.Country,
		ApprovalAgency: p.ApprovalAgency,
	}
}
