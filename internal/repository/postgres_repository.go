package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/a2sh3r/groupmart/internal/logger"
	"github.com/a2sh3r/groupmart/internal/models"
	"go.uber.org/zap"
)

const defaultDocumentID = "state"

type pgRepo struct {
	db  *sql.DB
	id  string
	key string
}

func NewPostgresRepository(db *sql.DB, key string) DocumentRepository {
	return &pgRepo{db: db, id: defaultDocumentID, key: key}
}

func (r *pgRepo) Load(ctx context.Context) (*models.Document, error) {
	var body []byte
	err := r.db.QueryRowContext(ctx, `SELECT body FROM documents WHERE id = $1`, r.id).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		logger.Log.Info("no state document yet, starting empty", zap.String("id", r.id))
		return models.NewDocument(), nil
	}
	if err != nil {
		logger.Log.Error("failed to load document", zap.Error(err))
		return nil, fmt.Errorf("load document: %w", err)
	}

	doc, err := decodeDocument(body, r.key)
	if err != nil {
		logger.Log.Error("state document failed validation", zap.String("id", r.id), zap.Error(err))
		return models.NewDocument(), err
	}
	return doc, nil
}

func (r *pgRepo) Save(ctx context.Context, doc *models.Document) error {
	body, err := encodeDocument(doc, r.key)
	if err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				logger.Log.Error("rollback error", zap.Error(rbErr))
			}
		}
	}()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO documents (id, body, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (id) DO UPDATE
		SET body = EXCLUDED.body, updated_at = EXCLUDED.updated_at
	`, r.id, body)
	if err != nil {
		return fmt.Errorf("save document: %w", err)
	}

	err = tx.Commit()
	return err
}

// Quarantine copies a corrupt document to a side row and removes it.
func (r *pgRepo) Quarantine(ctx context.Context) (string, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var backupID string
	err = tx.QueryRowContext(ctx, `
		INSERT INTO documents (id, body, updated_at)
		SELECT id || '.corrupt-' || to_char(now(), 'YYYYMMDD"T"HH24MISS'), body, now()
		FROM documents WHERE id = $1
		RETURNING id
	`, r.id).Scan(&backupID)
	if err != nil {
		return "", err
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM documents WHERE id = $1`, r.id); err != nil {
		return "", err
	}

	err = tx.Commit()
	return backupID, err
}

func (r *pgRepo) Close() error {
	return r.db.Close()
}
