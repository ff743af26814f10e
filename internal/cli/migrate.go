package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/folio/internal/adapters/turso"
	"github.com/emiliopalmerini/folio/internal/migrate"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate [version]",
	Short: "Run database migrations",
	Long: `Run database migrations.

Without arguments, runs all pending migrations (up).
With a version number, migrates to that specific version (up or down as needed).

Examples:
  folio migrate      # Run all pending migrations
  folio migrate 1    # Migrate to version 1
  folio migrate 0    # Rollback all migrations`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMigrate,
}

func runMigrate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	db, err := turso.NewDB(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	m := migrate.New(db, logger)
	current, _, err := m.Version(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Current version: %d\n", current)

	if len(args) == 0 {
		err = m.Up(ctx)
	} else {
		target, convErr := strconv.Atoi(args[0])
		if convErr != nil || target < 0 {
			return fmt.Errorf("invalid version: %s", args[0])
		}
		err = m.To(ctx, target)
	}
	if err != nil {
		return err
	}

	current, _, err = m.Version(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Migrated to version: %d\n", current)
	return nil
}
