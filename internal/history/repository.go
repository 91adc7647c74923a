// Package history provides the generation log domain model and repository.
package history

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// Kind identifies which request flow produced a generation record.
type Kind string

const (
	KindVocabulary Kind = "vocabulary"
	KindImage      Kind = "image"
	KindVideo      Kind = "video"
)

// GenerationRecord represents one completed generation request.
type GenerationRecord struct {
	ID         int64     `db:"id"`
	Kind       Kind      `db:"kind"`
	Prompt     string    `db:"prompt"`
	Detail     string    `db:"detail"`
	OutputPath string    `db:"output_path"`
	CreatedAt  time.Time `db:"created_at"`
}

// Repository defines operations for managing generation records.
type Repository interface {
	Create(ctx context.Context, record *GenerationRecord) error
	FindRecent(ctx context.Context, limit int) ([]GenerationRecord, error)
}

// DBRepository implements Repository using SQLite.
type DBRepository struct {
	db *sqlx.DB
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

// Open connects to the SQLite database at path, creating parent directories
// and the schema as needed.
func Open(path string) (*sqlx.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("os.MkdirAll(%s) > %w", filepath.Dir(path), err)
	}

	db, err := sqlx.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("sqlx.Open(%s) > %w", path, err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS generation_records (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		kind TEXT NOT NULL,
		prompt TEXT NOT NULL,
		detail TEXT NOT NULL DEFAULT '',
		output_path TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db.Exec(create generation_records) > %w", err)
	}
	return db, nil
}

// Create inserts a new generation record.
func (r *DBRepository) Create(ctx context.Context, record *GenerationRecord) error {
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO generation_records (kind, prompt, detail, output_path, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		record.Kind, record.Prompt, record.Detail, record.OutputPath, record.CreatedAt)
	if err != nil {
		return fmt.Errorf("db.ExecContext(insert generation_record) > %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("result.LastInsertId() > %w", err)
	}
	record.ID = id
	return nil
}

// FindRecent returns the newest records, most recent first.
func (r *DBRepository) FindRecent(ctx context.Context, limit int) ([]GenerationRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	var records []GenerationRecord
	if err := r.db.SelectContext(ctx, &records,
		"SELECT * FROM generation_records ORDER BY created_at DESC, id DESC LIMIT ?",
		limit); err != nil {
		return nil, fmt.Errorf("db.SelectContext(generation_records) > %w", err)
	}
	return records, nil
}
