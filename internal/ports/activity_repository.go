package ports

import (
	"context"
	"time"

	"github.com/emiliopalmerini/folio/internal/domain"
)

type ActivityRepository interface {
	// Upsert stores activities keyed by date, replacing existing days.
	Upsert(ctx context.Context, activities []domain.Activity) error
	// ListRange returns activities between from and to inclusive, oldest first.
	ListRange(ctx context.Context, from, to time.Time) ([]domain.Activity, error)
	// Years returns the distinct years with at least one activity, ascending.
	Years(ctx context.Context) ([]int, error)
	DeleteRange(ctx context.Context, from, to time.Time) (int64, error)
}
