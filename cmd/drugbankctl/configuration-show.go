package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/drugbank-in-go/pkg/config"
)

// configurationShowCmd represents the configuration show command
var configurationShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show configuration attributes and their sources",
	Long: `Show configuration attributes and their sources.

Each attribute is listed with the source it was taken from: the built-in
default, the config file, or the environment (including a .env file).
Secrets are redacted.

Config file location: /etc/drugbank/drugbank.yml (or DRUGBANK_CONFIG_PATH)

Example:
  drugbankctl configuration show
  drugbankctl configuration show --output json`,
	Run: func(cmd *cobra.Command, args []string) {
		output, _ := cmd.Flags().GetString("output")

		if err := showConfiguration(os.Stdout, cfg, output); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to show configuration: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	configurationCmd.AddCommand(configurationShowCmd)
	configurationShowCmd.Flags().StringP("output", "o", "text", "Output format (text or json)")
}

func showConfiguration(w io.Writer, c *config.DrugbankConfig, output string) error {
	switch output {
	case "json":
		jsonOutput, err := c.FormatJSON()
		if err != nil {
			return err
		}
		fmt.Fprintln(w, jsonOutput)
	case "text":
		fmt.Fprint(w, c.FormatText())
	default:
		return fmt.Errorf("unknown output format %q", output)
	}
	return nil
}
