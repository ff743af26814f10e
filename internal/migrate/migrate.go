package migrate

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/emiliopalmerini/folio/migrations"
)

var upPattern = regexp.MustCompile(`^(\d+)_(.+)\.up\.sql$`)

// Migration is a single schema change with its rollback.
type Migration struct {
	Version int
	Name    string
	UpSQL   string
	DownSQL string
}

// Migrator applies migrations from an embedded filesystem and tracks the
// schema version in schema_migrations.
type Migrator struct {
	db   *sql.DB
	fsys fs.FS
	log  *zap.Logger
}

// New returns a Migrator over the embedded folio migrations.
func New(db *sql.DB, log *zap.Logger) *Migrator {
	return NewWithFS(db, migrations.FS, log)
}

func NewWithFS(db *sql.DB, fsys fs.FS, log *zap.Logger) *Migrator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Migrator{db: db, fsys: fsys, log: log}
}

func (m *Migrator) ensureTable(ctx context.Context) error {
	_, err := m.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			dirty INTEGER NOT NULL DEFAULT 0
		)
	`)
	return err
}

// Version returns the current schema version and dirty state.
func (m *Migrator) Version(ctx context.Context) (int, bool, error) {
	if err := m.ensureTable(ctx); err != nil {
		return 0, false, fmt.Errorf("failed to create migrations table: %w", err)
	}

	var version, dirty int
	err := m.db.QueryRowContext(ctx, `SELECT version, dirty FROM schema_migrations ORDER BY version DESC LIMIT 1`).Scan(&version, &dirty)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return version, dirty == 1, nil
}

func (m *Migrator) setVersion(ctx context.Context, version int, dirty bool) error {
	dirtyInt := 0
	if dirty {
		dirtyInt = 1
	}

	if _, err := m.db.ExecContext(ctx, `DELETE FROM schema_migrations`); err != nil {
		return err
	}
	if version == 0 {
		return nil
	}
	_, err := m.db.ExecContext(ctx, `INSERT INTO schema_migrations (version, dirty) VALUES (?, ?)`, version, dirtyInt)
	return err
}

// Load reads all migrations sorted by version.
func (m *Migrator) Load() ([]Migration, error) {
	var result []Migration

	err := fs.WalkDir(m.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		matches := upPattern.FindStringSubmatch(path.Base(p))
		if matches == nil {
			return nil
		}
		version, _ := strconv.Atoi(matches[1])

		upSQL, err := fs.ReadFile(m.fsys, p)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", p, err)
		}
		// Down migrations are optional.
		downSQL, _ := fs.ReadFile(m.fsys, path.Join(path.Dir(p), fmt.Sprintf("%s_%s.down.sql", matches[1], matches[2])))

		result = append(result, Migration{
			Version: version,
			Name:    matches[2],
			UpSQL:   string(upSQL),
			DownSQL: string(downSQL),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Version < result[j].Version
	})
	return result, nil
}

func (m *Migrator) run(ctx context.Context, mig Migration, up bool) error {
	direction := "up"
	content := mig.UpSQL
	target := mig.Version
	if !up {
		direction = "down"
		content = mig.DownSQL
		target = mig.Version - 1
	}

	m.log.Info("applying migration",
		zap.String("direction", direction),
		zap.Int("version", mig.Version),
		zap.String("name", mig.Name))

	if err := m.setVersion(ctx, mig.Version, true); err != nil {
		return fmt.Errorf("failed to set dirty flag: %w", err)
	}

	for _, stmt := range SplitSQL(content) {
		if _, err := m.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to execute migration %d %s: %w\nSQL: %s", mig.Version, direction, err, stmt)
		}
	}

	if err := m.setVersion(ctx, target, false); err != nil {
		return fmt.Errorf("failed to clear dirty flag: %w", err)
	}
	return nil
}

// SplitSQL splits a script on semicolons and drops empty statements.
func SplitSQL(script string) []string {
	var out []string
	for _, stmt := range strings.Split(script, ";") {
		if stmt = strings.TrimSpace(stmt); stmt != "" {
			out = append(out, stmt)
		}
	}
	return out
}

func (m *Migrator) prepare(ctx context.Context) (int, []Migration, error) {
	current, dirty, err := m.Version(ctx)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to get current version: %w", err)
	}
	if dirty {
		return 0, nil, fmt.Errorf("database is in dirty state at version %d, manual intervention required", current)
	}
	all, err := m.Load()
	if err != nil {
		return 0, nil, fmt.Errorf("failed to load migrations: %w", err)
	}
	return current, all, nil
}

// Up applies every pending migration.
func (m *Migrator) Up(ctx context.Context) error {
	current, all, err := m.prepare(ctx)
	if err != nil {
		return err
	}

	applied := 0
	for _, mig := range all {
		if mig.Version <= current {
			continue
		}
		if err := m.run(ctx, mig, true); err != nil {
			return err
		}
		applied++
	}

	if applied > 0 {
		m.log.Info("migrations applied", zap.Int("count", applied))
	}
	return nil
}

// To migrates up or down until the schema is at target.
func (m *Migrator) To(ctx context.Context, target int) error {
	current, all, err := m.prepare(ctx)
	if err != nil {
		return err
	}

	switch {
	case target > current:
		for _, mig := range all {
			if mig.Version <= current {
				continue
			}
			if mig.Version > target {
				break
			}
			if err := m.run(ctx, mig, true); err != nil {
				return err
			}
		}
	case target < current:
		for i := len(all) - 1; i >= 0; i-- {
			mig := all[i]
			if mig.Version > current {
				continue
			}
			if mig.Version <= target {
				break
			}
			if mig.DownSQL == "" {
				return fmt.Errorf("no down migration for version %d", mig.Version)
			}
			if err := m.run(ctx, mig, false); err != nil {
				return err
			}
		}
	}
	return nil
}
