package main

import (
	"database/sql"

	"tyzox-be/internal/config"
	"tyzox-be/internal/db"
	"tyzox-be/internal/logger"
	"tyzox-be/internal/migration"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// deps are swapped in tests so commands run without a real database.
type deps struct {
	loadConfig  func() *config.Config
	openDB      func(*config.Config) (*sql.DB, error)
	newMigrator func(db *sql.DB, dir string, log *zap.Logger) (migrator, error)
}

type migrator interface {
	Up() error
	Down(steps int) error
	Version() (uint, bool, error)
	Force(version int) error
	Close() error
}

func defaultDeps() deps {
	return deps{
		loadConfig: config.LoadConfig,
		openDB:     db.NewDatabase,
		newMigrator: func(conn *sql.DB, dir string, log *zap.Logger) (migrator, error) {
			return migration.New(conn, dir, log)
		},
	}
}

func newRootCmd(d deps) *cobra.Command {
	root := &cobra.Command{
		Use:           "storectl",
		Short:         "Store administration: schema migrations and staff accounts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.Init("development")
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Sync()
		},
	}

	root.AddCommand(newMigrateCmd(d), newAdminCmd(d))
	return root
}

// withDB loads config, opens the database and closes it after fn returns.
func withDB(d deps, fn func(cfg *config.Config, conn *sql.DB) error) error {
	cfg := d.loadConfig()

	conn, err := d.openDB(cfg)
	if err != nil {
		return err
	}
	defer conn.Close()

	return fn(cfg, conn)
}
