package cli

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/emiliopalmerini/folio/internal/adapters/turso"
	"github.com/emiliopalmerini/folio/internal/config"
	"github.com/emiliopalmerini/folio/internal/migrate"
	"github.com/emiliopalmerini/folio/internal/ports"
)

// AppContext holds all shared dependencies for CLI commands.
type AppContext struct {
	DB           *sql.DB
	ActivityRepo ports.ActivityRepository
	ProjectRepo  ports.ProjectRepository
}

// NewAppContext connects to the configured database and brings its schema up
// to date.
func NewAppContext(ctx context.Context, c config.Database) (*AppContext, error) {
	db, err := turso.NewDB(c)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := migrate.New(db, logger).Up(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	repos := turso.NewRepositories(db)
	return &AppContext{
		DB:           db,
		ActivityRepo: repos.Activities,
		ProjectRepo:  repos.Projects,
	}, nil
}

// Close releases all resources held by the AppContext.
func (a *AppContext) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
