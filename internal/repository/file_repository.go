package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/a2sh3r/groupmart/internal/logger"
	"github.com/a2sh3r/groupmart/internal/models"
	"go.uber.org/zap"
)

type fileRepo struct {
	path string
	key  string
}

func NewFileRepository(path, key string) DocumentRepository {
	return &fileRepo{path: path, key: key}
}

func (r *fileRepo) Load(_ context.Context) (*models.Document, error) {
	raw, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Log.Info("no state document yet, starting empty", zap.String("path", r.path))
		return models.NewDocument(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}

	doc, err := decodeDocument(raw, r.key)
	if err != nil {
		logger.Log.Error("state document failed validation", zap.String("path", r.path), zap.Error(err))
		return models.NewDocument(), err
	}
	return doc, nil
}

// Save writes the new document next to the old one and renames it into
// place, so readers never observe a truncated file.
func (r *fileRepo) Save(ctx context.Context, doc *models.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := encodeDocument(doc, r.key)
	if err != nil {
		return err
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp document: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			if rmErr := os.Remove(tmpName); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) {
				logger.Log.Error("failed to remove temp document", zap.String("path", tmpName), zap.Error(rmErr))
			}
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp document: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync temp document: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp document: %w", err)
	}
	if err = os.Chmod(tmpName, 0o600); err != nil {
		return fmt.Errorf("chmod temp document: %w", err)
	}
	if err = os.Rename(tmpName, r.path); err != nil {
		return fmt.Errorf("replace document: %w", err)
	}
	return nil
}

func (r *fileRepo) Close() error {
	return nil
}

// Quarantine moves a corrupt document aside so a fresh one can be written.
// It returns the new location of the old file.
func (r *fileRepo) Quarantine(_ context.Context) (string, error) {
	dst := fmt.Sprintf("%s.corrupt-%s", r.path, time.Now().UTC().Format("20060102T150405"))
	if err := os.Rename(r.path, dst); err != nil {
		return "", err
	}
	return dst, nil
}
