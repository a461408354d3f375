package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marufsabili148/lombaku/internal/config"
	"github.com/marufsabili148/lombaku/internal/remote/sqlite"
	"github.com/marufsabili148/lombaku/internal/remote/sqlite/migrations"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			db, err := sqlite.OpenConnection(cfg.SQLitePath)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := migrations.MigrateUp(db); err != nil {
				return err
			}

			fmt.Printf("migrations applied to %s\n", cfg.SQLitePath)
			return nil
		},
	}
}
