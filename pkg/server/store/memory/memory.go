// Package memory implements the store interfaces over an in-memory index of
// a parsed DrugBank dump. The index is replaced wholesale by Swap, so readers
// never see a half-loaded dump.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/doodlesbykumbi/drugbank-in-go/pkg/drugbank"
	"github.com/doodlesbykumbi/drugbank-in-go/pkg/server/store"
	"github.com/doodlesbykumbi/drugbank-in-go/pkg/tables"
)

var (
	_ store.DrugsStore  = (*Store)(nil)
	_ store.HealthStore = (*Store)(nil)
)

type index struct {
	set          *tables.Set
	drugs        map[string]tables.DrugRow
	synonyms     map[string][]string
	products     map[string][]tables.Product
	targets      map[string][]tables.TargetRow
	interactions map[string][]tables.InteractionRow
	genes        map[string][]tables.GeneRow
}

func newIndex(set *tables.Set) *index {
	idx := &index{
		set:          set,
		drugs:        make(map[string]tables.DrugRow, len(set.Drugs)),
		synonyms:     make(map[string][]string),
		products:     make(map[string][]tables.Product),
		targets:      make(map[string][]tables.TargetRow),
		interactions: make(map[string][]tables.InteractionRow),
		genes:        make(map[string][]tables.GeneRow),
	}
	for _, row := range set.Drugs {
		idx.drugs[row.DrugBankID] = row
	}
	for _, row := range set.Synonyms {
		idx.synonyms[row.DrugBankID] = row.Synonyms
	}
	for _, row := range set.Products {
		idx.products[row.DrugBankID] = row.Products
	}
	for _, row := range set.Targets {
		idx.targets[row.DrugBankID] = append(idx.targets[row.DrugBankID], row)
	}
	for _, row := range set.Interactions {
		idx.interactions[row.DrugBankID] = append(idx.interactions[row.DrugBankID], row)
	}
	for _, row := range set.Genes {
		idx.genes[row.Gene] = append(idx.genes[row.Gene], row)
	}
	return idx
}

// Store serves lookups from the last swapped-in table set.
type Store struct {
	mu  sync.RWMutex
	idx *index
}

// New returns a Store over set. A nil set gives an empty store.
func New(set *tables.Set) *Store {
	s := &Store{}
	s.Swap(set)
	return s
}

// Load parses and extracts the dump at path into a new Store.
func Load(ctx context.Context, path string) (*Store, error) {
	set, err := extractFile(ctx, path)
	if err != nil {
		return nil, err
	}
	return New(set), nil
}

// Reload re-reads the dump at path and swaps it in. On error the current
// tables stay in place.
func (s *Store) Reload(ctx context.Context, path string) (*tables.Set, error) {
	set, err := extractFile(ctx, path)
	if err != nil {
		return nil, err
	}
	s.Swap(set)
	return set, nil
}

func extractFile(ctx context.Context, path string) (*tables.Set, error) {
	drugs, err := drugbank.ParseFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	set, err := tables.Extract(ctx, drugs)
	if err != nil {
		return nil, fmt.Errorf("failed to extract tables from %s: %w", path, err)
	}
	return set, nil
}

// Swap replaces the served tables.
func (s *Store) Swap(set *tables.Set) {
	if set == nil {
		set = &tables.Set{}
	}
	idx := newIndex(set)

	s.mu.Lock()
	s.idx = idx
	s.mu.Unlock()
}

// Set returns the served tables.
func (s *Store) Set() *tables.Set {
	return s.current().set
}

func (s *Store) current() *index {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.idx
}

func (s *Store) FetchDrug(drugID string) (*store.Drug, error) {
	idx := s.current()
	row, ok := idx.drugs[drugID]
	if !ok {
		return nil, store.ErrDrugNotFound
	}
	return &store.Drug{
		DrugRow: row,
		Groups:  append([]string{}, idx.set.Groups[drugID]...),
	}, nil
}

func (s *Store) Synonyms(drugID string) ([]string, error) {
	idx := s.current()
	if _, ok := idx.drugs[drugID]; !ok {
		return nil, store.ErrDrugNotFound
	}
	return append([]string{}, idx.synonyms[drugID]...), nil
}

func (s *Store) Products(drugID string) ([]tables.Product, error) {
	idx := s.current()
	if _, ok := idx.drugs[drugID]; !ok {
		return nil, store.ErrDrugNotFound
	}
	return append([]tables.Product{}, idx.products[drugID]...), nil
}

func (s *Store) Targets(drugID string) ([]tables.TargetRow, error) {
	idx := s.current()
	if _, ok := idx.drugs[drugID]; !ok {
		return nil, store.ErrDrugNotFound
	}
	return append([]tables.TargetRow{}, idx.targets[drugID]...), nil
}

func (s *Store) Interactions(drugID string) ([]tables.InteractionRow, error) {
	idx := s.current()
	if _, ok := idx.drugs[drugID]; !ok {
		return nil, store.ErrDrugNotFound
	}
	return append([]tables.InteractionRow{}, idx.interactions[drugID]...), nil
}

func (s *Store) PathwayCount(drugID string) (int, error) {
	n, ok := s.current().set.PathwayCounts[drugID]
	if !ok || n == 0 {
		return 0, store.ErrDrugNotFound
	}
	return n, nil
}

func (s *Store) Pathways() ([]tables.PathwayRow, error) {
	return append([]tables.PathwayRow{}, s.current().set.Pathways...), nil
}

func (s *Store) Statuses() (tables.StatusSummary, error) {
	summary := s.current().set.Statuses
	summary.Rows = append([]tables.StatusRow(nil), summary.Rows...)
	return summary, nil
}

func (s *Store) GeneProducts(gene string) ([]tables.GeneRow, error) {
	rows := s.current().genes[gene]
	if len(rows) == 0 {
		return nil, store.ErrGeneNotFound
	}
	return append([]tables.GeneRow{}, rows...), nil
}

// CheckConnectivity always succeeds; the tables live in process.
func (s *Store) CheckConnectivity() error {
	return nil
}
