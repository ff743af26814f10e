package turso

import (
	"database/sql"

	"github.com/emiliopalmerini/folio/internal/ports"
)

// Repositories holds all turso repository implementations as port interfaces.
type Repositories struct {
	Activities ports.ActivityRepository
	Projects   ports.ProjectRepository
}

// NewRepositories creates all turso repository implementations from a database connection.
func NewRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		Activities: NewActivityRepository(db),
		Projects:   NewProjectRepository(db),
	}
}
