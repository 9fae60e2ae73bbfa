package tables

import (
	"strings"
	"unicode"

	"github.com/doodlesbykumbi/drugbank-in-go/pkg/drugbank"
)

// Drugs returns one row per drug, keyed by Drug.ID like every other table.
// Rows sharing an ID after the first are dropped.
func Drugs(drugs []*drugbank.Drug) []DrugRow {
	rows := make([]DrugRow, 0, len(drugs))
	seen := make(map[string]bool, len(drugs))
	for _, d := range drugs {
		id := d.ID()
		if seen[id] {
			continue
		}
		seen[id] = true

		rows = append(rows, DrugRow{
			DrugBankID:        id,
			Name:              d.Name,
			Type:              d.Type,
			Description:       d.Description,
			DosageForm:        d.DosageForm(),
			Indications:       d.Indication,
			MechanismOfAction: d.MechanismOfAction,
			FoodInteractions:  strings.Join(d.FoodInteractions, "; "),
		})
	}
	return rows
}

// Synonyms returns the synonym list of every drug with an ID.
func Synonyms(drugs []*drugbank.Drug) []SynonymRow {
	var rows []SynonymRow
	for _, d := range drugs {
		id := d.ID()
		if id == "" {
			continue
		}
		synonyms := make([]string, len(d.Synonyms))
		copy(synonyms, d.Synonyms)
		rows = append(rows, SynonymRow{DrugBankID: id, Synonyms: synonyms})
	}
	return rows
}

// Products returns the distinct products of every drug with an ID, in
// document order.
func Products(drugs []*drugbank.Drug) []ProductRow {
	var rows []ProductRow
	for _, d := range drugs {
		id := d.ID()
		if id == "" {
			continue
		}
		products := make([]Product, 0, len(d.Products))
		seen := make(map[Product]bool, len(d.Products))
		for _, p := range d.Products {
			flat := flattenProduct(p)
			if seen[flat] {
				continue
			}
			seen[flat] = true
			products = append(products, flat)
		}
		rows = append(rows, ProductRow{DrugBankID: id, Products: products})
	}
	return rows
}

func flattenProduct(p drugbank.Product) Product {
	return Product{
		Name:           p.Name,
		Manufacturer:   firstNonEmpty(p.Manufacturer, p.Labeller),
		NDCCode:        firstNonEmpty(p.NDCID, p.NDCProductCode),
		Form:           p.DosageForm,
		Route:          p.Route,
		Strength:       p.Strength,
		Country:        p.Country,
		ApprovalAgency: firstNonEmpty(p.ApprovalAgency, p.Source),
	}
}

// Pathways returns one row per pathway of each drug, together with the
// number of pathways per DrugBank ID.
func Pathways(drugs []*drugbank.Drug) ([]PathwayRow, map[string]int) {
	var rows []PathwayRow
	counts := make(map[string]int)
	for _, d := range drugs {
		id := d.ID()
		for _, p := range d.Pathways {
			rows = append(rows, PathwayRow{
				DrugBankID: id,
				Drug:       d.Name,
				Pathway:    p.Name,
				Category:   p.Category,
			})
			counts[id]++
		}
	}
	return rows, counts
}

// Targets returns one row per target that has a polypeptide, together
// with the number of rows per cellular location.
func Targets(drugs []*drugbank.Drug) ([]TargetRow, map[string]int) {
	var rows []TargetRow
	locations := make(map[string]int)
	for _, d := range drugs {
		for i := range d.Targets {
			t := &d.Targets[i]
			poly := t.Polypeptide()
			if poly == nil {
				continue
			}
			genAtlas, _ := poly.ExternalID("GenAtlas")
			row := TargetRow{
				DrugBankID:       d.ID(),
				Drug:             d.Name,
				TargetID:         t.ID,
				TargetName:       t.Name,
				Source:           orUnknown(poly.Source),
				ExternalID:       orUnknown(poly.ID),
				PolypeptideName:  orUnknown(poly.Name),
				GeneName:         orUnknown(poly.GeneName),
				GenAtlasID:       orUnknown(genAtlas),
				Chromosome:       orUnknown(poly.ChromosomeLocation),
				CellularLocation: orUnknown(poly.CellularLocation),
			}
			rows = append(rows, row)
			locations[row.CellularLocation]++
		}
	}
	return rows, locations
}

// Status categories, in reporting order.
const (
	StatusApproved     = "Approved"
	StatusWithdrawn    = "Withdrawn"
	StatusExperimental = "Experimental/Investigational"
	StatusVeterinary   = "Veterinary"
)

// StatusSummary aggregates approval groups over a record set.
type StatusSummary struct {
	Rows                 []StatusRow `json:"statuses"`
	ApprovedNotWithdrawn int         `json:"approved_not_withdrawn"`
}

// Count returns the count of a status category, zero when absent.
func (s StatusSummary) Count(status string) int {
	for _, r := range s.Rows {
		if r.Status == status {
			return r.Count
		}
	}
	return 0
}

// Statuses counts each drug once per category it falls into. Categories
// no drug falls into are omitted.
func Statuses(drugs []*drugbank.Drug) StatusSummary {
	counts := make(map[string]int)
	var summary StatusSummary
	for _, d := range drugs {
		approved := d.HasGroup(drugbank.GroupApproved)
		withdrawn := d.HasGroup(drugbank.GroupWithdrawn)
		if approved {
			counts[StatusApproved]++
			if !withdrawn {
				summary.ApprovedNotWithdrawn++
			}
		}
		if withdrawn {
			counts[StatusWithdrawn]++
		}
		if d.HasGroup(drugbank.GroupExperimental) || d.HasGroup(drugbank.GroupInvestigational) {
			counts[StatusExperimental]++
		}
		if d.HasGroup(drugbank.GroupVetApproved) {
			counts[StatusVeterinary]++
		}
	}
	for _, status := range []string{StatusApproved, StatusWithdrawn, StatusExperimental, StatusVeterinary} {
		if n := counts[status]; n > 0 {
			summary.Rows = append(summary.Rows, StatusRow{Status: status, Count: n})
		}
	}
	return summary
}

// Interactions returns one row per drug-interaction entry.
func Interactions(drugs []*drugbank.Drug) []InteractionRow {
	var rows []InteractionRow
	for _, d := range drugs {
		for _, in := range d.Interactions {
			rows = append(rows, InteractionRow{
				DrugBankID:        d.ID(),
				Drug:              d.Name,
				InteractingDrugID: in.DrugBankID,
				InteractingDrug:   in.Name,
				Description:       in.Description,
			})
		}
	}
	return rows
}

// Product identifier types, in lookup order.
const (
	ProductIDNDC = "NDC"
	ProductIDDPD = "DPD"
	ProductIDEMA = "EMA"
)

// ProductID returns the first registry identifier of a product and the
// registry it belongs to.
func ProductID(p drugbank.Product) (id, kind string) {
	switch {
	case strings.TrimSpace(p.NDCProductCode) != "":
		return strings.TrimSpace(p.NDCProductCode), ProductIDNDC
	case strings.TrimSpace(p.DPDID) != "":
		return strings.TrimSpace(p.DPDID), ProductIDDPD
	case strings.TrimSpace(p.EMAMANumber) != "":
		return strings.TrimSpace(p.EMAMANumber), ProductIDEMA
	}
	return "", ""
}

// Genes links every named target gene to the distinct products of the
// drugs acting on it.
func Genes(drugs []*drugbank.Drug) []GeneRow {
	var rows []GeneRow
	seen := make(map[GeneRow]bool)
	for _, d := range drugs {
		for i := range d.Targets {
			poly := d.Targets[i].Polypeptide()
			if poly == nil || strings.TrimSpace(poly.GeneName) == "" {
				continue
			}
			for _, p := range d.Products {
				id, kind := ProductID(p)
				row := GeneRow{
					Gene:          strings.TrimSpace(poly.GeneName),
					DrugBankID:    d.ID(),
					Drug:          d.Name,
					ProductName:   p.Name,
					ProductID:     id,
					ProductIDType: kind,
				}
				if seen[row] {
					continue
				}
				seen[row] = true
				rows = append(rows, row)
			}
		}
	}
	return rows
}

// AminoAcids returns the residue count of every target polypeptide.
func AminoAcids(drugs []*drugbank.Drug) []AminoAcidRow {
	var rows []AminoAcidRow
	for _, d := range drugs {
		for i := range d.Targets {
			t := &d.Targets[i]
			poly := t.Polypeptide()
			if poly == nil {
				continue
			}
			rows = append(rows, AminoAcidRow{
				DrugBankID:     d.ID(),
				TargetID:       t.ID,
				TargetName:     t.Name,
				AminoAcidCount: AminoAcidCount(poly.AminoAcidSequence),
			})
		}
	}
	return rows
}

// AminoAcidCount counts the residues of a FASTA sequence. Header lines
// (starting with '>') are skipped.
func AminoAcidCount(fasta string) int {
	n := 0
	for _, line := range strings.Split(fasta, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, ">") {
			continue
		}
		for _, r := range line {
			if unicode.IsLetter(r) {
				n++
			}
		}
	}
	return n
}

func orUnknown(s string) string {
	if strings.TrimSpace(s) == "" {
		return Unknown
	}
	return s
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
