// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package registry journals created features in a SQLite database. The
// specs directory stays the source of truth for numbering; the registry
// preserves descriptions and creation times for listing and export.
package registry

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/specify/pkg/types"
)

const dbFile = "specify.db"

// Store manages the feature registry database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// Open opens or creates the registry database at stateDir/specify.db,
// creating the schema if it does not exist.
func Open(cfg types.RegistryConfig, stateDir string) (*Store, error) {
	if err := os.MkdirAll(stateDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating state directory: %w", err)
	}

	dbPath := filepath.Join(stateDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening registry database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 50
	}

	s := &Store{db: db, maxResults: maxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating registry schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS features (
			num INTEGER NOT NULL,
			branch TEXT PRIMARY KEY,
			description TEXT,
			spec_path TEXT,
			created_at TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_features_num ON features(num)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record upserts a created feature keyed by branch name.
func (s *Store) Record(ctx context.Context, f types.Feature) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO features (num, branch, description, spec_path, created_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(branch) DO UPDATE SET
			num=excluded.num, description=excluded.description,
			spec_path=excluded.spec_path, created_at=excluded.created_at`,
		f.Num, f.Branch, f.Description, f.SpecPath,
		f.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("recording feature %s: %w", f.Branch, err)
	}
	return nil
}

// List returns journaled features ordered by number then branch, capped at
// the configured maximum.
func (s *Store) List(ctx context.Context) ([]types.Feature, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT num, branch, description, spec_path, created_at
		 FROM features ORDER BY num, branch LIMIT ?`, s.maxResults)
	if err != nil {
		return nil, fmt.Errorf("querying features: %w", err)
	}
	defer rows.Close()

	var feats []types.Feature
	for rows.Next() {
		var f types.Feature
		var createdAt string
		if err := rows.Scan(&f.Num, &f.Branch, &f.Description, &f.SpecPath, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning feature row: %w", err)
		}
		if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
			f.CreatedAt = t
		}
		feats = append(feats, f)
	}
	return feats, rows.Err()
}

// ExportYAML writes the journaled features to path.
func (s *Store) ExportYAML(ctx context.Context, path string) error {
	feats, err := s.List(ctx)
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(feats)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
