package lives

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

const migrationTable = "schema_migrations"

// SQLiteRegion is a Region backed by a single SQLite table.
type SQLiteRegion struct {
	db *sql.DB
}

// OpenSQLiteRegion opens or creates an SQLite-backed region at path.
func OpenSQLiteRegion(path string) (*SQLiteRegion, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("region path is required")
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open region db: %w", err)
	}
	// Writes are serialised by the Dispatcher.
	db.SetMaxOpenConns(1)

	if err := applyMigrations(db, migrationFS, "migrations"); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLiteRegion{db: db}, nil
}

// Get implements Region.
func (r *SQLiteRegion) Get(slot, key string) ([]byte, bool, error) {
	var value []byte
	err := r.db.QueryRow(`SELECT value FROM records WHERE slot = ? AND key = ?`, slot, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read %s/%s: %w", slot, key, err)
	}
	return value, true, nil
}

// Put implements Region.
func (r *SQLiteRegion) Put(slot, key string, value []byte) error {
	_, err := r.db.Exec(
		`INSERT INTO records (slot, key, value) VALUES (?, ?, ?)
		 ON CONFLICT(slot, key) DO UPDATE SET value = excluded.value`,
		slot, key, value,
	)
	if err != nil {
		return fmt.Errorf("write %s/%s: %w", slot, key, err)
	}
	return nil
}

// Close implements Region.
func (r *SQLiteRegion) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

// applyMigrations runs each .sql file under root once, in name order, and
// records it in the migration table.
func applyMigrations(db *sql.DB, fsys fs.FS, root string) error {
	entries, err := fs.ReadDir(fsys, root)
	if err != nil {
		return fmt.Errorf("read migrations dir: %w", err)
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".sql") {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS ` + migrationTable + ` (
	name       TEXT PRIMARY KEY,
	applied_at INTEGER NOT NULL
)`); err != nil {
		return fmt.Errorf("ensure migration table: %w", err)
	}

	for _, name := range files {
		var found int
		err := db.QueryRow(`SELECT 1 FROM `+migrationTable+` WHERE name = ?`, name).Scan(&found)
		if err == nil {
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("check migration %s: %w", name, err)
		}

		content, err := fs.ReadFile(fsys, path.Join(root, name))
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}
		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("begin migration %s: %w", name, err)
		}
		if _, err := tx.Exec(upMigration(string(content))); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("exec migration %s: %w", name, err)
		}
		if _, err := tx.Exec(`INSERT INTO `+migrationTable+` (name, applied_at) VALUES (?, ?)`, name, time.Now().UTC().UnixMilli()); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record migration %s: %w", name, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration %s: %w", name, err)
		}
	}
	return nil
}

// upMigration returns the "-- +migrate Up" section of a migration file, or the
// whole file when it has no sections.
func upMigration(content string) string {
	up := strings.Index(content, "-- +migrate Up")
	if up == -1 {
		return content
	}
	content = content[up+len("-- +migrate Up"):]
	if down := strings.Index(content, "-- +migrate Down"); down != -1 {
		content = content[:down]
	}
	return content
}
