package turso_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/emiliopalmerini/folio/internal/adapters/turso"
	"github.com/emiliopalmerini/folio/internal/domain"
)

func TestProjectRepository_CreateAssignsIDAndPosition(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	repo := turso.NewProjectRepository(db)

	first := &domain.Project{Title: "First", Link: "https://a.test"}
	second := &domain.Project{Title: "Second", Link: "https://b.test"}
	for _, p := range []*domain.Project{first, second} {
		if err := repo.Create(ctx, p); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	if _, err := uuid.Parse(first.ID); err != nil {
		t.Errorf("expected uuid id, got %q", first.ID)
	}
	if first.Position != 1 || second.Position != 2 {
		t.Errorf("expected positions 1 and 2, got %d and %d", first.Position, second.Position)
	}
	if first.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
}

func TestProjectRepository_ListOrdersByPosition(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	repo := turso.NewProjectRepository(db)

	for _, p := range []*domain.Project{
		{Title: "Third", Position: 3},
		{Title: "First", Position: 1},
		{Title: "Second", Position: 2},
	} {
		if err := repo.Create(ctx, p); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	projects, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(projects) != 3 {
		t.Fatalf("expected 3 projects, got %d", len(projects))
	}
	for i, want := range []string{"First", "Second", "Third"} {
		if projects[i].Title != want {
			t.Errorf("projects[%d] = %s, want %s", i, projects[i].Title, want)
		}
	}
}

func TestProjectRepository_GetAndDelete(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	repo := turso.NewProjectRepository(db)

	p := &domain.Project{
		Title:       "Demo",
		Link:        "https://x.test",
		Description: "d",
		Image:       "img.png",
	}
	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := repo.GetByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Title != "Demo" || got.Link != "https://x.test" || got.Description != "d" || got.Image != "img.png" {
		t.Errorf("unexpected project: %+v", got)
	}

	if err := repo.Delete(ctx, p.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := repo.GetByID(ctx, p.ID); !errors.Is(err, domain.ErrProjectNotFound) {
		t.Errorf("expected ErrProjectNotFound after delete, got %v", err)
	}
	if err := repo.Delete(ctx, p.ID); !errors.Is(err, domain.ErrProjectNotFound) {
		t.Errorf("expected ErrProjectNotFound deleting twice, got %v", err)
	}
}
