package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"tyzox-be/internal/auth"
	"tyzox-be/internal/config"
	"tyzox-be/internal/user"

	"github.com/spf13/cobra"
)

func newAdminCmd(d deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Manage staff accounts",
	}

	var email, password string
	create := &cobra.Command{
		Use:   "create",
		Short: "Create an ADMIN account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" || password == "" {
				return errors.New("--email and --password are required")
			}

			return withDB(d, func(cfg *config.Config, conn *sql.DB) error {
				svc := user.NewService(user.NewRepository(conn), auth.NewIssuer(cfg.JWTSecret, 0))

				u, err := svc.CreateAdmin(context.Background(), email, password)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "created admin %s (id %d)\n", u.Email, u.ID)
				return nil
			})
		},
	}
	create.Flags().StringVar(&email, "email", "", "admin email")
	create.Flags().StringVar(&password, "password", "", "admin password")

	cmd.AddCommand(create)
	return cmd
}
