package turso

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/emiliopalmerini/folio/internal/domain"
)

type ProjectRepository struct {
	db *sql.DB
}

func NewProjectRepository(db *sql.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create stores project, filling in a new ID, a creation time and, when
// Position is zero, the next free position.
func (r *ProjectRepository) Create(ctx context.Context, project *domain.Project) error {
	if project.ID == "" {
		project.ID = uuid.NewString()
	}
	if project.CreatedAt.IsZero() {
		project.CreatedAt = time.Now().UTC()
	}
	if project.Position == 0 {
		var next int
		err := r.db.QueryRowContext(ctx, `SELECT COALESCE(MAX(position), 0) + 1 FROM projects`).Scan(&next)
		if err != nil {
			return fmt.Errorf("failed to compute project position: %w", err)
		}
		project.Position = next
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO projects (id, link, title, description, image, position, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, project.ID, project.Link, project.Title, project.Description, project.Image,
		project.Position, project.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}
	return nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, link, title, description, image, position, created_at
		FROM projects WHERE id = ?
	`, id)
	p, err := scanProject(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrProjectNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return &p, nil
}

func (r *ProjectRepository) List(ctx context.Context) ([]domain.Project, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, link, title, description, image, position, created_at
		FROM projects
		ORDER BY position ASC, created_at ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []domain.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate projects: %w", err)
	}
	return projects, nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", domain.ErrProjectNotFound, id)
	}
	return nil
}

func scanProject(s rowScanner) (domain.Project, error) {
	var (
		p         domain.Project
		createdAt any
	)
	if err := s.Scan(&p.ID, &p.Link, &p.Title, &p.Description, &p.Image, &p.Position, &createdAt); err != nil {
		return domain.Project{}, err
	}
	var err error
	if p.CreatedAt, err = scanTime(createdAt); err != nil {
		return domain.Project{}, fmt.Errorf("created_at: %w", err)
	}
	return p, nil
}
