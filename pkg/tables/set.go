package tables

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/doodlesbykumbi/drugbank-in-go/pkg/drugbank"
)

// Set holds every projection of one record set.
type Set struct {
	Drugs                  []DrugRow        `json:"drugs"`
	Synonyms               []SynonymRow     `json:"synonyms"`
	Products               []ProductRow     `json:"products"`
	Pathways               []PathwayRow     `json:"pathways"`
	PathwayCounts          map[string]int   `json:"pathway_counts"`
	Targets                []TargetRow      `json:"targets"`
	CellularLocationCounts map[string]int   `json:"cellular_location_counts"`
	Statuses               StatusSummary    `json:"statuses"`
	Interactions           []InteractionRow `json:"interactions"`
	Genes                  []GeneRow        `json:"genes"`
	AminoAcids             []AminoAcidRow   `json:"amino_acids"`
	// Groups lists the raw group values of each drug by DrugBank ID.
	Groups map[string][]string `json:"groups"`
}

// Extract computes every projection of drugs concurrently.
func Extract(ctx context.Context, drugs []*drugbank.Drug) (*Set, error) {
	set := &Set{}
	g, ctx := errgroup.WithContext(ctx)

	run := func(name string, fn func()) {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			fn()
			return nil
		})
	}

	run("drugs", func() { set.Drugs = Drugs(drugs) })
	run("synonyms", func() { set.Synonyms = Synonyms(drugs) })
	run("products", func() { set.Products = Products(drugs) })
	run("pathways", func() { set.Pathways, set.PathwayCounts = Pathways(drugs) })
	run("targets", func() { set.Targets, set.CellularLocationCounts = Targets(drugs) })
	run("statuses", func() { set.Statuses = Statuses(drugs) })
	run("interactions", func() { set.Interactions = Interactions(drugs) })
	run("genes", func() { set.Genes = Genes(drugs) })
	run("amino acids", func() { set.AminoAcids = AminoAcids(drugs) })
	run("groups", func() { set.Groups = groupsByID(drugs) })

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return set, nil
}

func groupsByID(drugs []*drugbank.Drug) map[string][]string {
	groups := make(map[string][]string, len(drugs))
	for _, d := range drugs {
		id := d.ID()
		if id == "" {
			continue
		}
		if _, dup := groups[id]; dup {
			continue
		}
		groups[id] = append([]string(nil), d.Groups...)
	}
	return groups
}

// Count is a named count, used when ranking count maps.
type Count struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// Ranked orders a count map by descending count, then key. n <= 0 keeps
// every entry.
func Ranked(counts map[string]int, n int) []Count {
	ranked := make([]Count, 0, len(counts))
	for k, v := range counts {
		ranked = append(ranked, Count{Key: k, Count: v})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Key < ranked[j].Key
	})
	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
