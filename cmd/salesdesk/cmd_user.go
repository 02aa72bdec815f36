package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/salesdesk/app/repositories"
	"github.com/shashiranjanraj/salesdesk/pkg/auth"
)

// salesdesk user:create <username> --password <plain>
func userCreateCmd() *cobra.Command {
	var password string
	cmd := &cobra.Command{
		Use:   "user:create <username>",
		Short: "Create a user with the default role",
		Args:  cobra.ExactArgs(1),
		RunE: withDB(func(cmd *cobra.Command, args []string, db *gorm.DB) error {
			hash, err := auth.HashPassword(password)
			if err != nil {
				return err
			}
			created, err := repositories.NewUserRepository(db).Create(cmd.Context(), args[0], hash)
			if err != nil {
				return err
			}
			if !created {
				return fmt.Errorf("user %q already exists", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "User %s created.\n", args[0])
			return nil
		}),
	}
	cmd.Flags().StringVar(&password, "password", "", "plain-text password to hash and store")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

// salesdesk user:show <username>
func userShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "user:show <username>",
		Short: "Print a user's id and role",
		Args:  cobra.ExactArgs(1),
		RunE: withDB(func(cmd *cobra.Command, args []string, db *gorm.DB) error {
			u, err := repositories.NewUserRepository(db).FindByUsername(cmd.Context(), args[0])
			if errors.Is(err, repositories.ErrNotFound) {
				return fmt.Errorf("user %q not found", args[0])
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "id=%d username=%s role=%s\n", u.ID, u.Username, u.Role)
			return nil
		}),
	}
}
