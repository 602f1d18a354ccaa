package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/wekeepgrowing/item-service/internal/domain/entity"
	domainRepo "github.com/wekeepgrowing/item-service/internal/domain/repository"
)

// FileStore keeps the item collection in a single JSON document on disk.
type FileStore struct {
	path   string
	logger *zap.Logger
}

// NewFileStore creates a file-backed item store at the given path.
func NewFileStore(path string, logger *zap.Logger) domainRepo.ItemStore {
	return &FileStore{
		path:   path,
		logger: logger,
	}
}

// Load reads the whole collection from disk. A missing file means no item
// has been saved yet and an unreadable or unparseable file is treated the
// same way, so a corrupt document never reaches a client.
func (s *FileStore) Load(ctx context.Context) (entity.Collection, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("item file unreadable, starting from empty",
				zap.String("path", s.path),
				zap.Error(err))
		}
		return entity.Collection{}, nil
	}

	var items entity.Collection
	if err := json.Unmarshal(data, &items); err != nil {
		s.logger.Warn("item file corrupt, starting from empty",
			zap.String("path", s.path),
			zap.Error(err))
		return entity.Collection{}, nil
	}

	if items == nil {
		items = entity.Collection{}
	}
	return items, nil
}

// Save serializes the collection and replaces the backing file atomically.
// The document is written to a temporary file in the same directory first
// and renamed over the target, so a crash mid-write cannot leave a
// truncated document behind.
func (s *FileStore) Save(ctx context.Context, items entity.Collection) error {
	if items == nil {
		items = entity.Collection{}
	}

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize items: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".items-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write items: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Chmod(tmpPath, 0644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to set file mode: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace item file: %w", err)
	}

	return nil
}
