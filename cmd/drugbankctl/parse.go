package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/doodlesbykumbi/drugbank-in-go/pkg/drugbank"
	"github.com/doodlesbykumbi/drugbank-in-go/pkg/tables"
)

// Table names accepted by --table, in print order.
var tableNames = []string{
	"drugs",
	"synonyms",
	"products",
	"pathways",
	"pathway_counts",
	"targets",
	"cellular_locations",
	"statuses",
	"interactions",
	"genes",
	"amino_acids",
}

// parseCmd represents the parse command
var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Project a DrugBank export into flat tables",
	Long: `Project a DrugBank export into flat tables and print them.

Without a file argument the configured xml_path is read. A document that
cannot be parsed is reported and treated as empty.

Tables: ` + strings.Join(tableNames, ", ") + `

Example:
  drugbankctl parse data/drugbank_partial.xml --table pathways
  drugbankctl parse --table all --output json`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		table, _ := cmd.Flags().GetString("table")
		output, _ := cmd.Flags().GetString("output")

		if err := runParse(cmd.Context(), cmd.OutOrStdout(), xmlPathArg(args), table, output); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to parse: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringP("table", "t", "drugs", "Table to print, or all")
	parseCmd.Flags().StringP("output", "o", "text", "Output format (text or json)")
}

func xmlPathArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return cfg.XMLPath
}

// extractFile parses path and projects it into tables. Malformed and empty
// documents are logged and give an empty set.
func extractFile(ctx context.Context, path string) (*tables.Set, error) {
	set, err := readExport(ctx, path)
	var parseErr *drugbank.ParseError
	switch {
	case errors.As(err, &parseErr), errors.Is(err, drugbank.ErrEmptyDocument):
		logger.Warn("document yields no drugs", zap.String("path", path), zap.Error(err))
		return tables.Extract(ctx, nil)
	case err != nil:
		return nil, err
	}
	return set, nil
}

// readExport is extractFile without the fallback: malformed and empty
// documents are returned as errors.
func readExport(ctx context.Context, path string) (*tables.Set, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	drugs, err := drugbank.ParseFile(ctx, path)
	if err != nil {
		return nil, err
	}
	logger.Debug("parsed export", zap.String("path", path), zap.Int("drugs", len(drugs)))
	return tables.Extract(ctx, drugs)
}

func runParse(ctx context.Context, w io.Writer, path, table, output string) error {
	if table != "all" && !validTable(table) {
		return fmt.Errorf("unknown table %q (valid: %s, all)", table, strings.Join(tableNames, ", "))
	}
	if output != "text" && output != "json" {
		return fmt.Errorf("unknown output format %q", output)
	}

	set, err := extractFile(ctx, path)
	if err != nil {
		return err
	}

	names := []string{table}
	if table == "all" {
		names = tableNames
	}

	if output == "json" {
		if table == "all" {
			return writeJSON(w, set)
		}
		return writeJSON(w, tableValue(set, table))
	}

	for i, name := range names {
		if i > 0 {
			fmt.Fprintln(w)
		}
		header, rows := tableGrid(set, name)
		heading(w, "%s (%d rows)", name, len(rows))
		if err := writeGrid(w, header, rows); err != nil {
			return err
		}
	}
	if table == "statuses" || table == "all" {
		fmt.Fprintf(w, "Approved and not withdrawn: %d\n", set.Statuses.ApprovedNotWithdrawn)
	}
	return nil
}

func validTable(name string) bool {
	for _, t := range tableNames {
		if t == name {
			return true
		}
	}
	return false
}

func tableValue(set *tables.Set, name string) interface{} {
	switch name {
	case "drugs":
		return set.Drugs
	case "synonyms":
		return set.Synonyms
	case "products":
		return set.Products
	case "pathways":
		return set.Pathways
	case "pathway_counts":
		return set.PathwayCounts
	case "targets":
		return set.Targets
	case "cellular_locations":
		return set.CellularLocationCounts
	case "statuses":
		return set.Statuses
	case "interactions":
		return set.Interactions
	case "genes":
		return set.Genes
	case "amino_acids":
		return set.AminoAcids
	}
	return nil
}

func tableGrid(set *tables.Set, name string) ([]string, [][]string) {
	var rows [][]string
	switch name {
	case "drugs":
		for _, d := range set.Drugs {
			rows = append(rows, []string{d.DrugBankID, d.Name, d.Type, d.DosageForm, d.Indications})
		}
		return []string{"DRUGBANK_ID", "NAME", "TYPE", "DOSAGE_FORM", "INDICATIONS"}, rows
	case "synonyms":
		for _, s := range set.Synonyms {
			rows = append(rows, []string{s.DrugBankID, strings.Join(s.Synonyms, "; ")})
		}
		return []string{"DRUGBANK_ID", "SYNONYMS"}, rows
	case "products":
		for _, p := range set.Products {
			for _, prod := range p.Products {
				rows = append(rows, []string{p.DrugBankID, prod.Name, prod.Manufacturer, prod.NDCCode, prod.Form, prod.Route, prod.Strength, prod.Country, prod.ApprovalAgency})
			}
		}
		return []string{"DRUGBANK_ID", "PRODUCT", "MANUFACTURER", "NDC", "FORM", "ROUTE", "STRENGTH", "COUNTRY", "AGENCY"}, rows
	case "pathways":
		for _, p := range set.Pathways {
			rows = append(rows, []string{p.DrugBankID, p.Drug, p.Pathway, p.Category})
		}
		return []string{"DRUGBANK_ID", "DRUG", "PATHWAY", "CATEGORY"}, rows
	case "pathway_counts":
		return []string{"DRUGBANK_ID", "PATHWAYS"}, countRows(set.PathwayCounts)
	case "targets":
		for _, t := range set.Targets {
			rows = append(rows, []string{t.DrugBankID, t.TargetID, t.TargetName, t.Source, t.ExternalID, t.PolypeptideName, t.GeneName, t.GenAtlasID, t.Chromosome, t.CellularLocation})
		}
		return []string{"DRUGBANK_ID", "TARGET_ID", "TARGET", "SOURCE", "EXTERNAL_ID", "POLYPEPTIDE", "GENE", "GENATLAS_ID", "CHROMOSOME", "LOCATION"}, rows
	case "cellular_locations":
		return []string{"LOCATION", "TARGETS"}, countRows(set.CellularLocationCounts)
	case "statuses":
		for _, s := range set.Statuses.Rows {
			rows = append(rows, []string{s.Status, strconv.Itoa(s.Count)})
		}
		return []string{"STATUS", "DRUGS"}, rows
	case "interactions":
		for _, in := range set.Interactions {
			rows = append(rows, []string{in.DrugBankID, in.InteractingDrugID, in.InteractingDrug, in.Description})
		}
		return []string{"DRUGBANK_ID", "INTERACTING_ID", "INTERACTING_DRUG", "DESCRIPTION"}, rows
	case "genes":
		for _, g := range set.Genes {
			rows = append(rows, []string{g.Gene, g.DrugBankID, g.Drug, g.ProductName, g.ProductID, g.ProductIDType})
		}
		return []string{"GENE", "DRUGBANK_ID", "DRUG", "PRODUCT", "PRODUCT_ID", "ID_TYPE"}, rows
	case "amino_acids":
		for _, a := range set.AminoAcids {
			rows = append(rows, []string{a.DrugBankID, a.TargetID, a.TargetName, strconv.Itoa(a.AminoAcidCount)})
		}
		return []string{"DRUGBANK_ID", "TARGET_ID", "TARGET", "AMINO_ACIDS"}, rows
	}
	return nil, nil
}

func countRows(counts map[string]int) [][]string {
	ranked := tables.Ranked(counts, 0)
	rows := make([][]string, 0, len(ranked))
	for _, c := range ranked {
		rows = append(rows, []string{c.Key, strconv.Itoa(c.Count)})
	}
	return rows
}
