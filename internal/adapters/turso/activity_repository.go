package turso

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/emiliopalmerini/folio/internal/domain"
)

type ActivityRepository struct {
	db *sql.DB
}

func NewActivityRepository(db *sql.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

func (r *ActivityRepository) Upsert(ctx context.Context, activities []domain.Activity) error {
	for _, a := range activities {
		if err := a.Validate(); err != nil {
			return err
		}
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC().Format(time.RFC3339)
	for _, a := range activities {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO activities (date, count, level, updated_at)
			VALUES (?, ?, ?, ?)
			ON CONFLICT (date) DO UPDATE SET
				count = excluded.count,
				level = excluded.level,
				updated_at = excluded.updated_at
		`, a.Date.Format(domain.DateLayout), a.Count, int(a.Level), now)
		if err != nil {
			return fmt.Errorf("failed to upsert activity %s: %w", a.Date.Format(domain.DateLayout), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit activities: %w", err)
	}
	return nil
}

func (r *ActivityRepository) ListRange(ctx context.Context, from, to time.Time) ([]domain.Activity, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT date, count, level FROM activities
		WHERE date >= ? AND date <= ?
		ORDER BY date ASC
	`, from.Format(domain.DateLayout), to.Format(domain.DateLayout))
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	defer rows.Close()

	var activities []domain.Activity
	for rows.Next() {
		var (
			date  any
			count int64
			level int
		)
		if err := rows.Scan(&date, &count, &level); err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		d, err := scanDay(date)
		if err != nil {
			return nil, err
		}
		activities = append(activities, domain.Activity{Date: d, Count: count, Level: domain.Level(level)})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate activities: %w", err)
	}
	return activities, nil
}

func (r *ActivityRepository) Years(ctx context.Context) ([]int, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT DISTINCT CAST(substr(date, 1, 4) AS INTEGER) AS year
		FROM activities
		ORDER BY year ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity years: %w", err)
	}
	defer rows.Close()

	var years []int
	for rows.Next() {
		var y int
		if err := rows.Scan(&y); err != nil {
			return nil, fmt.Errorf("failed to scan year: %w", err)
		}
		years = append(years, y)
	}
	return years, rows.Err()
}

func (r *ActivityRepository) DeleteRange(ctx context.Context, from, to time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM activities WHERE date >= ? AND date <= ?`,
		from.Format(domain.DateLayout), to.Format(domain.DateLayout))
	if err != nil {
		return 0, fmt.Errorf("failed to delete activities: %w", err)
	}
	return res.RowsAffected()
}
