// Package sqlite keeps the experience log in a local SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bnema/council-cli/internal/domain"
	"github.com/bnema/council-cli/internal/ports"
	_ "modernc.org/sqlite"
)

const dirMode = 0o700

type Store struct {
	db *sql.DB
}

var _ ports.ExperienceLog = (*Store)(nil)

func Open(ctx context.Context, path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("experience database path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), dirMode); err != nil {
		return nil, fmt.Errorf("create experience database directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open experience database: %w", err)
	}
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply %q: %w", pragma, err)
		}
	}

	store := &Store{db: db}
	if err := store.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

func (s *Store) Migrate(ctx context.Context) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS experiences (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			instruction TEXT NOT NULL,
			response TEXT NOT NULL,
			result TEXT NOT NULL,
			created_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_experiences_created_at ON experiences(created_at)`,
	}

	for _, migration := range migrations {
		if _, err := s.db.ExecContext(ctx, migration); err != nil {
			return fmt.Errorf("migrate experience database: %w", err)
		}
	}

	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Append(ctx context.Context, experience domain.Experience) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO experiences (id, instruction, response, result, created_at) VALUES (?, ?, ?, ?, ?)`,
		experience.ID,
		experience.Instruction,
		experience.Response,
		experience.Result,
		experience.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert experience %q: %w", experience.ID, err)
	}

	return nil
}

func (s *Store) List(ctx context.Context) ([]domain.Experience, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, instruction, response, result, created_at FROM experiences ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("query experiences: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var experiences []domain.Experience
	for rows.Next() {
		var experience domain.Experience
		var createdAt string
		if err := rows.Scan(&experience.ID, &experience.Instruction, &experience.Response, &experience.Result, &createdAt); err != nil {
			return nil, fmt.Errorf("scan experience: %w", err)
		}

		experience.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse experience %q created_at: %w", experience.ID, err)
		}
		experiences = append(experiences, experience)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate experiences: %w", err)
	}

	return experiences, nil
}
