package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import migrations and seeders so their init() funcs register them.
	_ "github.com/shashiranjanraj/salesdesk/database/migrations"
	_ "github.com/shashiranjanraj/salesdesk/database/seeders"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// dsnFlag overrides the configured DSN for the current driver.
var dsnFlag string

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "salesdesk",
		Short:         "salesdesk — sales database admin CLI",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dsnFlag, "dsn", "", "database DSN (default from DB_PATH / DATABASE_DSN)")

	// Database
	root.AddCommand(migrateCmd())
	root.AddCommand(migrateRollbackCmd())
	root.AddCommand(migrateStatusCmd())
	root.AddCommand(verifyCmd())
	root.AddCommand(seedCmd())

	// Data
	root.AddCommand(userCreateCmd())
	root.AddCommand(userShowCmd())
	root.AddCommand(orderListCmd())
	root.AddCommand(orderDocumentCmd())

	return root
}
