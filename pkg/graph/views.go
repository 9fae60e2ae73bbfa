package graph

import (
	"fmt"
	"strconv"

	"github.com/doodlesbykumbi/drugbank-in-go/pkg/tables"
)

func drugName(set *tables.Set, id string) string {
	for _, d := range set.Drugs {
		if d.DrugBankID == id && d.Name != "" {
			return d.Name
		}
	}
	return id
}

// Synonyms is a star of the synonyms of one drug around the drug.
func Synonyms(set *tables.Set, drugID string) (*View, error) {
	for _, row := range set.Synonyms {
		if row.DrugBankID != drugID {
			continue
		}
		v := newView("synonyms_"+drugID, false)
		center, err := v.addNode(KindDrug, drugID, drugName(set, drugID))
		if err != nil {
			return nil, err
		}
		for _, s := range row.Synonyms {
			leaf, err := v.addNode(KindSynonym, s, s)
			if err != nil {
				return nil, err
			}
			if err := v.addEdge(center, leaf); err != nil {
				return nil, err
			}
		}
		return v, nil
	}
	return nil, fmt.Errorf("drug %s: %w", drugID, ErrNotFound)
}

// Pathways is the bipartite graph of drugs and the pathways they take part in.
func Pathways(set *tables.Set) (*View, error) {
	v := newView("pathways", false)
	for _, row := range set.Pathways {
		drug, err := v.addNode(KindDrug, row.DrugBankID, row.Drug)
		if err != nil {
			return nil, err
		}
		pathway, err := v.addNode(KindPathway, row.Pathway, row.Pathway)
		if err != nil {
			return nil, err
		}
		if err := v.addEdge(drug, pathway); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// Gene is the tree gene -> drugs acting on it -> one node per drug
// counting the products that contain it.
func Gene(set *tables.Set, gene string) (*View, error) {
	var order []string
	names := make(map[string]string)
	products := make(map[string]int)
	for _, row := range set.Genes {
		if row.Gene != gene {
			continue
		}
		if _, ok := products[row.DrugBankID]; !ok {
			order = append(order, row.DrugBankID)
			names[row.DrugBankID] = row.Drug
		}
		products[row.DrugBankID]++
	}
	if len(order) == 0 {
		return nil, fmt.Errorf("gene %s: %w", gene, ErrNotFound)
	}

	v := newView("gene_"+gene, true)
	root, err := v.addNode(KindGene, gene, gene)
	if err != nil {
		return nil, err
	}
	for _, id := range order {
		drug, err := v.addNode(KindDrug, id, names[id])
		if err != nil {
			return nil, err
		}
		if err := v.addEdge(root, drug); err != nil {
			return nil, err
		}
		count, err := v.addNode(KindProduct, id, fmt.Sprintf("%d products", products[id]))
		if err != nil {
			return nil, err
		}
		if err := v.addEdge(drug, count); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// TargetAminoAcids is the tree drug -> targets -> residue count of each
// target.
func TargetAminoAcids(set *tables.Set, drugID string) (*View, error) {
	v := newView("targets_"+drugID, true)
	root := ""
	for _, row := range set.AminoAcids {
		if row.DrugBankID != drugID {
			continue
		}
		if root == "" {
			var err error
			if root, err = v.addNode(KindDrug, drugID, drugName(set, drugID)); err != nil {
				return nil, err
			}
		}
		target, err := v.addNode(KindTarget, row.TargetID, row.TargetName)
		if err != nil {
			return nil, err
		}
		if err := v.addEdge(root, target); err != nil {
			return nil, err
		}
		count, err := v.addNode(KindAminoAcids, row.TargetID, strconv.Itoa(row.AminoAcidCount)+" AA")
		if err != nil {
			return nil, err
		}
		if err := v.addEdge(target, count); err != nil {
			return nil, err
		}
	}
	if root == "" {
		return nil, fmt.Errorf("drug %s: %w", drugID, ErrNotFound)
	}
	return v, nil
}
