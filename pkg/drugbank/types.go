package drugbank

import (
	"encoding/xml"
	"strings"
)

// Namespace is the default namespace of a DrugBank export.
const Namespace = "http://www.drugbank.ca"

// Drug is a single top-level <drug> record.
type Drug struct {
	XMLName           xml.Name      `xml:"drug" json:"-"`
	Type              string        `xml:"type,attr" json:"type,omitempty"`
	IDs               []ID          `xml:"drugbank-id" json:"drugbank_ids"`
	Name              string        `xml:"name" json:"name,omitempty"`
	Description       string        `xml:"description" json:"description,omitempty"`
	Dosages           []Dosage      `xml:"dosages>dosage" json:"dosages,omitempty"`
	Indication        string        `xml:"indication" json:"indication,omitempty"`
	MechanismOfAction string        `xml:"mechanism-of-action" json:"mechanism_of_action,omitempty"`
	FoodInteractions  []string      `xml:"food-interactions>food-interaction" json:"food_interactions,omitempty"`
	Synonyms          []string      `xml:"synonyms>synonym" json:"synonyms,omitempty"`
	Products          []Product     `xml:"products>product" json:"products,omitempty"`
	Pathways          []Pathway     `xml:"pathways>pathway" json:"pathways,omitempty"`
	Targets           []Target      `xml:"targets>target" json:"targets,omitempty"`
	Interactions      []Interaction `xml:"drug-interactions>drug-interaction" json:"drug_interactions,omitempty"`
	Groups            []string      `xml:"groups>group" json:"groups,omitempty"`
}

// ID is a <drugbank-id> element. A record carries its current identifier
// with primary="true" followed by any legacy identifiers.
type ID struct {
	Value   string `xml:",chardata" json:"value"`
	Primary bool   `xml:"primary,attr" json:"primary,omitempty"`
}

type Dosage struct {
	Form     string `xml:"form" json:"form,omitempty"`
	Route    string `xml:"route" json:"route,omitempty"`
	Strength string `xml:"strength" json:"strength,omitempty"`
}

// Product is a marketed product of a drug.
type Product struct {
	Name           string `xml:"name" json:"name,omitempty"`
	Labeller       string `xml:"labeller" json:"labeller,omitempty"`
	Manufacturer   string `xml:"manufacturer" json:"manufacturer,omitempty"`
	NDCID          string `xml:"ndc-id" json:"ndc_id,omitempty"`
	NDCProductCode string `xml:"ndc-product-code" json:"ndc_product_code,omitempty"`
	DPDID          string `xml:"dpd-id" json:"dpd_id,omitempty"`
	EMAMANumber    string `xml:"ema-ma-number" json:"ema_ma_number,omitempty"`
	DosageForm     string `xml:"dosage-form" json:"dosage_form,omitempty"`
	Strength       string `xml:"strength" json:"strength,omitempty"`
	Route          string `xml:"route" json:"route,omitempty"`
	Country        string `xml:"country" json:"country,omitempty"`
	Source         string `xml:"source" json:"source,omitempty"`
	ApprovalAgency string `xml:"approval-agency" json:"approval_agency,omitempty"`
	Approved       string `xml:"approved" json:"approved,omitempty"`
}

// Pathway is an SMPDB pathway the drug takes part in.
type Pathway struct {
	SMPDBID  string `xml:"smpdb-id" json:"smpdb_id,omitempty"`
	Name     string `xml:"name" json:"name,omitempty"`
	Category string `xml:"category" json:"category,omitempty"`
}

type Target struct {
	ID           string        `xml:"id" json:"id,omitempty"`
	Name         string        `xml:"name" json:"name,omitempty"`
	Organism     string        `xml:"organism" json:"organism,omitempty"`
	Actions      []string      `xml:"actions>action" json:"actions,omitempty"`
	Polypeptides []Polypeptide `xml:"polypeptide" json:"polypeptides,omitempty"`
}

// Polypeptide returns the first polypeptide of the target, or nil for
// targets without one.
func (t *Target) Polypeptide() *Polypeptide {
	if len(t.Polypeptides) == 0 {
		return nil
	}
	return &t.Polypeptides[0]
}

type Polypeptide struct {
	ID                  string               `xml:"id,attr" json:"id,omitempty"`
	Source              string               `xml:"source,attr" json:"source,omitempty"`
	Name                string               `xml:"name" json:"name,omitempty"`
	GeneralFunction     string               `xml:"general-function" json:"general_function,omitempty"`
	GeneName            string               `xml:"gene-name" json:"gene_name,omitempty"`
	ChromosomeLocation  string               `xml:"chromosome-location" json:"chromosome_location,omitempty"`
	CellularLocation    string               `xml:"cellular-location" json:"cellular_location,omitempty"`
	AminoAcidSequence   string               `xml:"amino-acid-sequence" json:"amino_acid_sequence,omitempty"`
	ExternalIdentifiers []ExternalIdentifier `xml:"external-identifiers>external-identifier" json:"external_identifiers,omitempty"`
}

// ExternalID returns the identifier registered for resource, matched
// case-insensitively.
func (p *Polypeptide) ExternalID(resource string) (string, bool) {
	for _, ext := range p.ExternalIdentifiers {
		if strings.EqualFold(strings.TrimSpace(ext.Resource), resource) {
			return strings.TrimSpace(ext.Identifier), true
		}
	}
	return "", false
}

type ExternalIdentifier struct {
	Resource   string `xml:"resource" json:"resource"`
	Identifier string `xml:"identifier" json:"identifier"`
}

// Interaction is a <drug-interaction> entry naming another drug.
type Interaction struct {
	DrugBankID  string `xml:"drugbank-id" json:"drugbank_id"`
	Name        string `xml:"name" json:"name"`
	Description string `xml:"description" json:"description"`
}

// PrimaryID returns the identifier flagged primary="true".
func (d *Drug) PrimaryID() (string, bool) {
	for _, id := range d.IDs {
		if id.Primary {
			return strings.TrimSpace(id.Value), true
		}
	}
	return "", false
}

// ID returns the primary identifier, falling back to the first
// identifier listed when none is flagged.
func (d *Drug) ID() string {
	if id, ok := d.PrimaryID(); ok {
		return id
	}
	if len(d.IDs) > 0 {
		return strings.TrimSpace(d.IDs[0].Value)
	}
	return ""
}

// DosageForm returns the form of the first dosage.
func (d *Drug) DosageForm() string {
	if len(d.Dosages) == 0 {
		return ""
	}
	return d.Dosages[0].Form
}

// HasGroup reports whether the record lists group g. Unknown group values
// are ignored.
func (d *Drug) HasGroup(g Group) bool {
	for _, s := range d.Groups {
		if parsed, err := ParseGroup(s); err == nil && parsed == g {
			return true
		}
	}
	return false
}
