package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/drugbank-in-go/pkg/server/middleware"
)

var errNoTokenSecret = errors.New("DRUGBANK_API_TOKEN_SECRET is not set")

// tokenCmd represents the token command
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Manage API bearer tokens",
	Long:  `Manage the HS256 bearer tokens accepted by the API server.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: Command 'token' requires a subcommand (issue)")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

var tokenIssueCmd = &cobra.Command{
	Use:   "issue <subject>",
	Short: "Issue a bearer token for a subject",
	Long: `Issue a bearer token for a subject.

The token is signed with DRUGBANK_API_TOKEN_SECRET and printed on stdout.

Example:
  drugbankctl token issue analyst --ttl 24h
  curl -H "Authorization: Bearer $(drugbankctl token issue analyst)" ...`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ttl, _ := cmd.Flags().GetDuration("ttl")

		if err := issueToken(os.Stdout, cfg.APITokenSecret, args[0], ttl); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to issue token: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)
	tokenCmd.AddCommand(tokenIssueCmd)
	tokenIssueCmd.Flags().Duration("ttl", time.Hour, "token lifetime")
}

func issueToken(w io.Writer, secret, subject string, ttl time.Duration) error {
	if secret == "" {
		return errNoTokenSecret
	}
	if ttl <= 0 {
		return fmt.Errorf("invalid ttl %s", ttl)
	}
	token, err := middleware.IssueToken(secret, subject, ttl)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, token)
	return nil
}
