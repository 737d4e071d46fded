package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/mkarson1997/karatay-ders-program/internal/modules/export/domain"
	exportout "github.com/mkarson1997/karatay-ders-program/internal/modules/export/port/out"
)

type SQLiteHistoryStore struct {
	db *sql.DB
}

func NewSQLiteHistoryStore(dbPath string) (exportout.HistoryStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	store := &SQLiteHistoryStore{db: db}
	if err := store.ensureSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *SQLiteHistoryStore) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS exports (
  id TEXT PRIMARY KEY,
  format TEXT NOT NULL,
  path TEXT NOT NULL,
  mode TEXT NOT NULL,
  student TEXT,
  courses INTEGER NOT NULL,
  sessions INTEGER NOT NULL,
  pages INTEGER NOT NULL,
  created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS exports_created_at ON exports(created_at);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create exports table: %w", err)
	}
	return nil
}

func (s *SQLiteHistoryStore) Append(ctx context.Context, record domain.Record) error {
	const stmt = `
INSERT INTO exports (id, format, path, mode, student, courses, sessions, pages, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);
`
	_, err := s.db.ExecContext(ctx, stmt,
		record.ID,
		string(record.Format),
		record.Path,
		record.Mode,
		record.Student,
		record.Courses,
		record.Sessions,
		record.Pages,
		record.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert export: %w", err)
	}
	return nil
}

func (s *SQLiteHistoryStore) List(ctx context.Context, limit int) ([]domain.Record, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT id, format, path, mode, COALESCE(student, ''), courses, sessions, pages, created_at
FROM exports
ORDER BY created_at DESC, id
LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query exports: %w", err)
	}
	defer rows.Close()

	out := []domain.Record{}
	for rows.Next() {
		var (
			record  domain.Record
			format  string
			created string
		)
		if err := rows.Scan(&record.ID, &format, &record.Path, &record.Mode, &record.Student, &record.Courses, &record.Sessions, &record.Pages, &created); err != nil {
			return nil, fmt.Errorf("scan export: %w", err)
		}
		record.Format = domain.Format(format)
		record.CreatedAt, err = time.Parse(time.RFC3339Nano, created)
		if err != nil {
			return nil, fmt.Errorf("parse export time: %w", err)
		}
		out = append(out, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate exports: %w", err)
	}
	return out, nil
}
