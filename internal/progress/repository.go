package progress

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:generate mockgen -source=repository.go -destination=../mocks/progress/mock_repository.go -package=mock_progress

// Repository defines operations for loading and persisting the streak record.
// The record is read once at startup and written at most once per process
// lifetime, on check-in.
type Repository interface {
	Load() (Record, error)
	Save(record Record) error
}

// YAMLRepository persists the record as a single YAML file.
type YAMLRepository struct {
	path string
}

// NewYAMLRepository creates a new YAMLRepository for the given file path.
func NewYAMLRepository(path string) *YAMLRepository {
	return &YAMLRepository{path: path}
}

// Load reads the persisted record, returning a zero-value record when none exists.
func (r *YAMLRepository) Load() (Record, error) {
	var record Record

	file, err := os.Open(r.path)
	if os.IsNotExist(err) {
		return record, nil
	}
	if err != nil {
		return record, fmt.Errorf("os.Open(%s) > %w", r.path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	if err := yaml.NewDecoder(file).Decode(&record); err != nil {
		return Record{}, fmt.Errorf("yaml.NewDecoder().Decode() > %w", err)
	}
	return record, nil
}

// Save writes the record as a whole, creating parent directories as needed.
func (r *YAMLRepository) Save(record Record) error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("os.MkdirAll(%s) > %w", filepath.Dir(r.path), err)
	}

	file, err := os.Create(r.path)
	if err != nil {
		return fmt.Errorf("os.Create(%s) > %w", r.path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	return yaml.NewEncoder(file).Encode(record)
}
