package tables

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doodlesbykumbi/drugbank-in-go/pkg/drugbank"
)

func loadSample(t *testing.T) []*drugbank.Drug {
	t.Helper()
	drugs, err := drugbank.ParseFile(context.Background(), "../drugbank/testdata/sample.xml")
	require.NoError(t, err)
	require.Len(t, drugs, 3)
	return drugs
}

func TestDrugs(t *testing.T) {
	rows := Drugs(loadSample(t))
	require.Len(t, rows, 3)

	want := DrugRow{
		DrugBankID:        "DB00001",
		Name:              "Lepirudin",
		Type:              "biotech",
		Description:       "Lepirudin is a recombinant hirudin.",
		DosageForm:        "Injection, solution",
		Indications:       "For the treatment of heparin-induced thrombocytopenia.",
		MechanismOfAction: "Lepirudin forms a stable non-covalent complex with alpha-thrombin.",
		FoodInteractions:  "Avoid herbs and supplements with anticoagulant activity.; Take with food.",
	}
	if diff := cmp.Diff(want, rows[0]); diff != "" {
		t.Errorf("Drugs()[0] mismatch (-want +got):\n%s", diff)
	}
	assert.Empty(t, rows[1].FoodInteractions)
	assert.Empty(t, rows[2].Description)
}

func TestDrugsDropsDuplicateIDs(t *testing.T) {
	drugs, err := drugbank.Parse([]byte(`<drugbank xmlns="http://www.drugbank.ca">
		<drug><drugbank-id primary="true">DB00001</drugbank-id><name>Aspirin</name></drug>
		<drug><drugbank-id primary="true">DB00001</drugbank-id><name>Aspirin (copy)</name></drug>
		<drug><drugbank-id primary="true">DB00002</drugbank-id><name>Ibuprofen</name></drug>
	</drugbank>`))
	require.NoError(t, err)

	rows := Drugs(drugs)
	require.Len(t, rows, 2)
	assert.Equal(t, "Aspirin", rows[0].Name)
	assert.Equal(t, "DB00002", rows[1].DrugBankID)
}

func TestSynonyms(t *testing.T) {
	rows := Synonyms(loadSample(t))
	want := []SynonymRow{
		{DrugBankID: "DB00001", Synonyms: []string{"Hirudin variant-1", "Lepirudin recombinant"}},
		{DrugBankID: "DB00002", Synonyms: []string{"Cetuximab"}},
		{DrugBankID: "DB00003", Synonyms: []string{}},
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("Synonyms() mismatch (-want +got):\n%s", diff)
	}
}

func TestUnflaggedIDKeysEveryTable(t *testing.T) {
	legacy := &drugbank.Drug{
		IDs:      []drugbank.ID{{Value: "APRD00001"}, {Value: "EXPT00002"}},
		Name:     "Legacy",
		Synonyms: []string{"x"},
		Products: []drugbank.Product{{Name: "Old brand"}},
		Pathways: []drugbank.Pathway{{Name: "Coagulation"}},
		Targets: []drugbank.Target{{
			ID:           "BE0000048",
			Name:         "Prothrombin",
			Polypeptides: []drugbank.Polypeptide{{ID: "P00734", Name: "Prothrombin", GeneName: "F2"}},
		}},
		Interactions: []drugbank.Interaction{{DrugBankID: "DB00002", Name: "Cetuximab"}},
		Groups:       []string{"approved"},
	}
	anonymous := &drugbank.Drug{Name: "No id", Synonyms: []string{"y"}}
	drugs := []*drugbank.Drug{legacy, anonymous}

	require.Len(t, Drugs(drugs), 2)
	assert.Equal(t, "APRD00001", Drugs(drugs)[0].DrugBankID)

	synonyms := Synonyms(drugs)
	require.Len(t, synonyms, 1)
	assert.Equal(t, "APRD00001", synonyms[0].DrugBankID)

	products := Products(drugs)
	require.Len(t, products, 1)
	assert.Equal(t, "APRD00001", products[0].DrugBankID)

	pathways, _ := Pathways([]*drugbank.Drug{legacy})
	require.Len(t, pathways, 1)
	assert.Equal(t, "APRD00001", pathways[0].DrugBankID)

	targets, _ := Targets([]*drugbank.Drug{legacy})
	require.Len(t, targets, 1)
	assert.Equal(t, "APRD00001", targets[0].DrugBankID)

	assert.Equal(t, map[string][]string{"APRD00001": {"approved"}}, groupsByID(drugs))
}

func TestProducts(t *testing.T) {
	rows := Products(loadSample(t))
	require.Len(t, rows, 3)

	want := []Product{
		{
			Name:           "Refludan",
			Manufacturer:   "Bayer",
			NDCCode:        "50419-150",
			Form:           "Powder, for solution",
			Route:          "Intravenous",
			Strength:       "50 mg/1mL",
			Country:        "US",
			ApprovalAgency: "FDA NDC",
		},
		{
			Name:           "Refludan",
			Manufacturer:   "Celgene Europe Limited",
			Form:           "Injection, powder, for solution",
			Route:          "Intravenous",
			Strength:       "20 mg",
			Country:        "EU",
			ApprovalAgency: "EMA",
		},
	}
	if diff := cmp.Diff(want, rows[0].Products); diff != "" {
		t.Errorf("Products()[0] mismatch (-want +got):\n%s", diff)
	}
	assert.Len(t, rows[1].Products, 1)
	assert.Empty(t, rows[2].Products)
}

func TestPathways(t *testing.T) {
	rows, counts := Pathways(loadSample(t))
	require.Len(t, rows, 3)
	assert.Equal(t, PathwayRow{
		DrugBankID: "DB00001",
		Drug:       "Lepirudin",
		Pathway:    "Lepirudin Action Pathway",
		Category:   "drug_action",
	}, rows[0])
	assert.Equal(t, map[string]int{"DB00001": 1, "DB00002": 2}, counts)
}

func TestTargets(t *testing.T) {
	rows, locations := Targets(loadSample(t))
	require.Len(t, rows, 3)

	want := TargetRow{
		DrugBankID:       "DB00001",
		Drug:             "Lepirudin",
		TargetID:         "BE0000048",
		TargetName:       "Prothrombin",
		Source:           "Swiss-Prot",
		ExternalID:       "P00734",
		PolypeptideName:  "Prothrombin",
		GeneName:         "F2",
		GenAtlasID:       "F2",
		Chromosome:       "11",
		CellularLocation: "Secreted",
	}
	if diff := cmp.Diff(want, rows[0]); diff != "" {
		t.Errorf("Targets()[0] mismatch (-want +got):\n%s", diff)
	}

	sparse := rows[2]
	assert.Equal(t, "TrEMBL", sparse.Source)
	assert.Equal(t, Unknown, sparse.PolypeptideName)
	assert.Equal(t, Unknown, sparse.GenAtlasID)
	assert.Equal(t, Unknown, sparse.Chromosome)

	assert.Equal(t, map[string]int{"Secreted": 1, "Cell membrane": 1, Unknown: 1}, locations)
}

func TestStatuses(t *testing.T) {
	summary := Statuses(loadSample(t))

	want := []StatusRow{
		{Status: StatusApproved, Count: 2},
		{Status: StatusWithdrawn, Count: 1},
		{Status: StatusExperimental, Count: 2},
		{Status: StatusVeterinary, Count: 1},
	}
	if diff := cmp.Diff(want, summary.Rows); diff != "" {
		t.Errorf("Statuses() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 1, summary.ApprovedNotWithdrawn)
	assert.Equal(t, 2, summary.Count(StatusApproved))
	assert.Equal(t, 0, summary.Count("Illicit"))
}

func TestStatusesCountsEachDrugOnce(t *testing.T) {
	drugs := []*drugbank.Drug{
		{Groups: []string{"experimental", "investigational", "veterinary"}},
		{Groups: []string{"approved", "approved"}},
	}
	summary := Statuses(drugs)
	assert.Equal(t, 1, summary.Count(StatusExperimental))
	assert.Equal(t, 1, summary.Count(StatusVeterinary))
	assert.Equal(t, 1, summary.Count(StatusApproved))
	assert.Equal(t, 0, summary.Count(StatusWithdrawn))
	assert.Equal(t, 1, summary.ApprovedNotWithdrawn)
	assert.Len(t, summary.Rows, 3)
}

func TestInteractions(t *testing.T) {
	rows := Interactions(loadSample(t))
	require.Len(t, rows, 3)
	assert.Equal(t, InteractionRow{
		DrugBankID:        "DB00002",
		Drug:              "Cetuximab",
		InteractingDrugID: "DB00001",
		InteractingDrug:   "Lepirudin",
		Description:       "The risk of bleeding can be increased.",
	}, rows[2])
}

func TestGenes(t *testing.T) {
	rows := Genes(loadSample(t))
	want := []GeneRow{
		{Gene: "F2", DrugBankID: "DB00001", Drug: "Lepirudin", ProductName: "Refludan", ProductID: "50419-150", ProductIDType: ProductIDNDC},
		{Gene: "F2", DrugBankID: "DB00001", Drug: "Lepirudin", ProductName: "Refludan", ProductID: "EU/1/97/035/001", ProductIDType: ProductIDEMA},
		{Gene: "EGFR", DrugBankID: "DB00002", Drug: "Cetuximab", ProductName: "Erbitux", ProductID: "02271249", ProductIDType: ProductIDDPD},
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("Genes() mismatch (-want +got):\n%s", diff)
	}
}

func TestAminoAcids(t *testing.T) {
	rows := AminoAcids(loadSample(t))
	want := []AminoAcidRow{
		{DrugBankID: "DB00001", TargetID: "BE0000048", TargetName: "Prothrombin", AminoAcidCount: 363},
		{DrugBankID: "DB00002", TargetID: "BE0000767", TargetName: "Epidermal growth factor receptor", AminoAcidCount: 160},
		{DrugBankID: "DB00003", TargetID: "BE0000530", TargetName: "DNA", AminoAcidCount: 0},
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("AminoAcids() mismatch (-want +got):\n%s", diff)
	}
}

func TestAminoAcidCount(t *testing.T) {
	tests := []struct {
		name  string
		fasta string
		want  int
	}{
		{name: "empty", fasta: "", want: 0},
		{name: "header only", fasta: ">lcl|BSEQ1|Name", want: 0},
		{name: "single line", fasta: ">h\nMKV", want: 3},
		{name: "wrapped with blank lines", fasta: ">h\nMKV\n\nLLA \n", want: 6},
		{name: "no header", fasta: "ACDE", want: 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AminoAcidCount(tt.fasta))
		})
	}
}

func TestExtract(t *testing.T) {
	drugs := loadSample(t)
	set, err := Extract(context.Background(), drugs)
	require.NoError(t, err)

	assert.Len(t, set.Drugs, 3)
	assert.Len(t, set.Pathways, 3)
	assert.Equal(t, 2, set.PathwayCounts["DB00002"])
	assert.Len(t, set.Targets, 3)
	assert.Equal(t, 1, set.Statuses.ApprovedNotWithdrawn)
	assert.Len(t, set.Interactions, 3)
	assert.Len(t, set.Genes, 3)
	assert.Len(t, set.AminoAcids, 3)
	assert.Equal(t, []string{"approved", "withdrawn"}, set.Groups["DB00001"])
}

func TestExtractCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Extract(ctx, loadSample(t))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExtractEmpty(t *testing.T) {
	set, err := Extract(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, set.Drugs)
	assert.Empty(t, set.Statuses.Rows)
	assert.Empty(t, set.PathwayCounts)
}

func TestRanked(t *testing.T) {
	counts := map[string]int{"b": 2, "a": 2, "c": 5, "d": 1}
	want := []Count{{Key: "c", Count: 5}, {Key: "a", Count: 2}, {Key: "b", Count: 2}}
	if diff := cmp.Diff(want, Ranked(counts, 3)); diff != "" {
		t.Errorf("Ranked() mismatch (-want +got):\n%s", diff)
	}
	assert.Len(t, Ranked(counts, 0), 4)
}
