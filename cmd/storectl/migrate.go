package main

import (
	"database/sql"
	"fmt"
	"strconv"

	"tyzox-be/internal/config"
	"tyzox-be/internal/logger"
	"tyzox-be/internal/migration"

	"github.com/spf13/cobra"
)

func newMigrateCmd(d deps) *cobra.Command {
	var dir string

	run := func(fn func(m migrator) error) error {
		return withDB(d, func(_ *config.Config, conn *sql.DB) error {
			m, err := d.newMigrator(conn, dir, logger.L())
			if err != nil {
				return err
			}
			defer m.Close()
			return fn(m)
		})
	}

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}
	cmd.PersistentFlags().StringVar(&dir, "dir", migration.DefaultDir, "migrations directory")

	up := &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(m migrator) error { return m.Up() })
		},
	}

	var steps int
	down := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(m migrator) error { return m.Down(steps) })
		},
	}
	down.Flags().IntVar(&steps, "steps", 1, "number of migrations to roll back (0 = all)")

	version := &cobra.Command{
		Use:   "version",
		Short: "Print the applied schema version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(m migrator) error {
				v, dirty, err := m.Version()
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "version %d (dirty: %t)\n", v, dirty)
				return nil
			})
		},
	}

	force := &cobra.Command{
		Use:   "force VERSION",
		Short: "Mark VERSION as applied without running it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid version %q: %w", args[0], err)
			}
			return run(func(m migrator) error { return m.Force(v) })
		},
	}

	cmd.AddCommand(up, down, version, force)
	return cmd
}
