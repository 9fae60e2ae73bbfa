package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/drugbank-in-go/pkg/report"
)

// reportCmd represents the report command
var reportCmd = &cobra.Command{
	Use:   "report [file]",
	Short: "Summarise an export as Markdown or HTML",
	Long: `Summarise an export as Markdown or HTML.

The summary covers drug counts, approval statuses, the drugs with the most
pathways and the most common cellular locations of targets. With --sections
only the section headings are listed.

Example:
  drugbankctl report data/drugbank_partial.xml > summary.md
  drugbankctl report --html --top 5 > summary.html
  drugbankctl report --sections`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		html, _ := cmd.Flags().GetBool("html")
		top, _ := cmd.Flags().GetInt("top")
		sections, _ := cmd.Flags().GetBool("sections")

		if sections {
			if err := listReportSections(cmd.Context(), cmd.OutOrStdout(), xmlPathArg(args), top); err != nil {
				fmt.Fprintf(os.Stderr, "Failed to build report: %v
", err)
				os.Exit(1)
			}
			return
		}
		if err := runReport(cmd.Context(), cmd.OutOrStdout(), xmlPathArg(args), top, html); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to build report: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().Bool("html", false, "Render the summary as HTML")
	reportCmd.Flags().Int("top", report.DefaultTop, "Entries in ranked sections")
	reportCmd.Flags().Bool("sections", false, "List the section headings only")
}

func runReport(ctx context.Context, w io.Writer, path string, top int, html bool) error {
	set, err := extractFile(ctx, path)
	if err != nil {
		return err
	}

	doc := report.Markdown(set, report.Options{Source: path, Top: top})
	if html {
		doc, err = report.HTML(doc)
		if err != nil {
			return err
		}
	}
	_, err = w.Write(doc)
	return err
}

func listReportSections(ctx context.Context, w io.Writer, path string, top int) error {
	set, err := extractFile(ctx, path)
	if err != nil {
		return err
	}

	doc := report.Markdown(set, report.Options{Source: path, Top: top})
	for i, section := range report.Sections(doc) {
		if _, err := fmt.Fprintf(w, "%d. %s\n", i+1, section); err != nil {
			return err
		}
	}
	return nil
}
