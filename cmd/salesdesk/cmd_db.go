package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/salesdesk/config"
	"github.com/shashiranjanraj/salesdesk/database/schema"
	"github.com/shashiranjanraj/salesdesk/database/seeders"
	"github.com/shashiranjanraj/salesdesk/pkg/database"
	"github.com/shashiranjanraj/salesdesk/pkg/migration"
)

// bootDB loads config and opens the database. The returned func closes it.
func bootDB() (*gorm.DB, func(), error) {
	if err := config.Load(); err != nil {
		return nil, nil, err
	}
	cfg := config.Database()
	if dsnFlag != "" {
		cfg.DSN = dsnFlag
	}

	db, err := database.Open(cfg)
	if err != nil {
		return nil, nil, err
	}
	return db, func() { _ = database.Close(db) }, nil
}

// withDB runs fn against an open database and always closes it.
func withDB(fn func(cmd *cobra.Command, args []string, db *gorm.DB) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		db, closeDB, err := bootDB()
		if err != nil {
			return err
		}
		defer closeDB()
		return fn(cmd, args, db.WithContext(cmd.Context()))
	}
}

// salesdesk migrate
func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run all pending database migrations",
		RunE: withDB(func(cmd *cobra.Command, _ []string, db *gorm.DB) error {
			fmt.Fprintln(cmd.OutOrStdout(), "Running migrations…")
			return migration.New(db, migration.WithOutput(cmd.OutOrStdout())).Run()
		}),
	}
}

// salesdesk migrate:rollback
func migrateRollbackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate:rollback",
		Short: "Rollback the last batch of migrations",
		RunE: withDB(func(cmd *cobra.Command, _ []string, db *gorm.DB) error {
			fmt.Fprintln(cmd.OutOrStdout(), "Rolling back last batch…")
			return migration.New(db, migration.WithOutput(cmd.OutOrStdout())).Rollback()
		}),
	}
}

// salesdesk migrate:status
func migrateStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate:status",
		Short: "Show the status of each migration",
		RunE: withDB(func(cmd *cobra.Command, _ []string, db *gorm.DB) error {
			return migration.New(db, migration.WithOutput(cmd.OutOrStdout())).Status()
		}),
	}
}

// salesdesk db:verify
func verifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "db:verify",
		Short: "Check that every required table and column exists",
		RunE: withDB(func(cmd *cobra.Command, _ []string, db *gorm.DB) error {
			res := schema.Verify(cmd.Context(), db)
			if !res.OK() {
				return res
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Tables and columns verified.")
			return nil
		}),
	}
}

// salesdesk seed
func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Run all database seeders",
		RunE: withDB(func(cmd *cobra.Command, _ []string, db *gorm.DB) error {
			fmt.Fprintln(cmd.OutOrStdout(), "Running seeders…")
			return seeders.RunAll(db, cmd.OutOrStdout())
		}),
	}
}
