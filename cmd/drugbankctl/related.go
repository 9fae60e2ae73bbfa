package main

import (
	"context"
	"io"
	"strings"

	"github.com/doodlesbykumbi/drugbank-in-go/pkg/graph"
	"github.com/doodlesbykumbi/drugbank-in-go/pkg/tables"
)

type relatedDrug struct {
	DrugBankID string `json:"drugbank_id"`
	Name       string `json:"name"`
}

func writeRelated(ctx context.Context, w io.Writer, set *tables.Set, opts graphOptions) error {
	pathways, err := graph.Pathways(set)
	if err != nil {
		return err
	}
	nodes, err := graph.Related(ctx, pathways, opts.Drug, opts.Depth)
	if err != nil {
		return err
	}

	related := make([]relatedDrug, 0, len(nodes))
	for _, n := range nodes {
		related = append(related, relatedDrug{
			DrugBankID: strings.TrimPrefix(n.ID, string(graph.KindDrug)+":"),
			Name:       n.Label,
		})
	}

	if opts.Output == "json" {
		return writeJSON(w, related)
	}
	heading(w, "Drugs sharing pathways with %s (depth %d)", opts.Drug, opts.Depth)
	rows := make([][]string, 0, len(related))
	for _, r := range related {
		rows = append(rows, []string{r.DrugBankID, r.Name})
	}
	return writeGrid(w, []string{"DRUGBANK_ID", "NAME"}, rows)
}
