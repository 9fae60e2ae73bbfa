package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/doodlesbykumbi/drugbank-in-go/pkg/config"
	"github.com/doodlesbykumbi/drugbank-in-go/pkg/db"
)

// dbCmd represents the db command
var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Manage the database",
	Long:  `Manage the database schema and migrations.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: Command 'db' requires a subcommand (migrate, down, status)")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

func init() {
	rootCmd.AddCommand(dbCmd)
}

// databaseURL returns the configured DSN. DATABASE_URL already overrides
// database_url from the config file when c was loaded.
func databaseURL(c *config.DrugbankConfig) string {
	if c != nil && c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return db.URL()
}

func connectDatabase(c *config.DrugbankConfig) (*gorm.DB, error) {
	dbConfig := db.Config{URL: databaseURL(c)}
	if c != nil {
		dbConfig.LogLevel = c.LogLevel
	}
	return db.Connect(dbConfig)
}
