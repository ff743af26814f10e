package turso

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/tursodatabase/go-libsql"

	"github.com/emiliopalmerini/folio/internal/config"
	"github.com/emiliopalmerini/folio/internal/util"
)

const localDBName = "folio.db"

// NewDB opens the remote database when a URL is configured, otherwise a local
// file.
func NewDB(cfg config.Database) (*sql.DB, error) {
	if cfg.URL != "" {
		return NewRemoteDB(cfg.URL, cfg.AuthToken)
	}
	return NewLocalDB(cfg.Path)
}

// NewRemoteDB connects to a remote libsql server.
func NewRemoteDB(url, authToken string) (*sql.DB, error) {
	connStr := url
	if authToken != "" {
		connStr += "?authToken=" + authToken
	}
	db, err := sql.Open("libsql", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Turso closes idle streams aggressively; keep no idle connections around.
	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(0)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}

// NewLocalDB opens a local database file, creating its directory. An empty
// path resolves to the XDG data dir.
func NewLocalDB(path string) (*sql.DB, error) {
	if path == "" {
		dir, err := util.GetXDGDataDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(dir, localDBName)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := sql.Open("libsql", "file:"+path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}
