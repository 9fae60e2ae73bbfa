package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/drugbank-in-go/pkg/graph"
)

var graphKinds = []string{"synonyms", "pathways", "gene", "targets", "related"}

// graphOptions selects the view built by the graph command.
type graphOptions struct {
	Kind   string
	Drug   string
	Gene   string
	Depth  int
	Output string
}

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph <kind> [file]",
	Short: "Build a graph view of an export",
	Long: `Build a graph view of an export and print it as Graphviz DOT or JSON.

Kinds:
  synonyms   star of a drug's synonyms (--drug)
  pathways   bipartite graph of drugs and pathways
  gene       gene -> drugs -> product counts (--gene)
  targets    drug -> targets -> amino acid counts (--drug)
  related    drugs sharing pathways with --drug within --depth hops

Example:
  drugbankctl graph synonyms data/drugbank_partial.xml --drug DB00001 | dot -Tpng > synonyms.png
  drugbankctl graph gene --gene F2 --output json`,
	Args: cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		opts := graphOptions{Kind: args[0]}
		opts.Drug, _ = cmd.Flags().GetString("drug")
		opts.Gene, _ = cmd.Flags().GetString("gene")
		opts.Output, _ = cmd.Flags().GetString("output")
		opts.Depth = cfg.RelatedDepth
		if cmd.Flags().Changed("depth") {
			opts.Depth, _ = cmd.Flags().GetInt("depth")
		}

		if err := runGraph(cmd.Context(), cmd.OutOrStdout(), xmlPathArg(args[1:]), opts); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to build graph: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().String("drug", "", "DrugBank ID for synonyms, targets and related")
	graphCmd.Flags().String("gene", "", "Gene name for the gene view")
	graphCmd.Flags().Int("depth", 1, "Drug-to-drug hops for related (default related_depth)")
	graphCmd.Flags().StringP("output", "o", "dot", "Output format (dot or json)")
}

func runGraph(ctx context.Context, w io.Writer, path string, opts graphOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.Output != "dot" && opts.Output != "json" {
		return fmt.Errorf("unknown output format %q", opts.Output)
	}

	needs := map[string]string{"synonyms": opts.Drug, "targets": opts.Drug, "related": opts.Drug, "gene": opts.Gene}
	if v, ok := needs[opts.Kind]; ok && v == "" {
		flag := "--drug"
		if opts.Kind == "gene" {
			flag = "--gene"
		}
		return fmt.Errorf("%s graph requires %s", opts.Kind, flag)
	}

	set, err := extractFile(ctx, path)
	if err != nil {
		return err
	}

	var view *graph.View
	switch opts.Kind {
	case "synonyms":
		view, err = graph.Synonyms(set, opts.Drug)
	case "pathways":
		view, err = graph.Pathways(set)
	case "gene":
		view, err = graph.Gene(set, opts.Gene)
	case "targets":
		view, err = graph.TargetAminoAcids(set, opts.Drug)
	case "related":
		return writeRelated(ctx, w, set, opts)
	default:
		return fmt.Errorf("unknown graph kind %q (valid: %s)", opts.Kind, strings.Join(graphKinds, ", "))
	}
	if err != nil {
		return err
	}

	if opts.Output == "json" {
		return writeJSON(w, view)
	}
	return graph.WriteDOT(w, view)
}
