package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/a2sh3r/groupmart/internal/apperrors"
	"github.com/a2sh3r/groupmart/internal/hash"
	"github.com/a2sh3r/groupmart/internal/models"
)

// DocumentRepository persists the whole state as one document.
// Load returns an empty document when nothing has been saved yet and
// apperrors.ErrCorruptDocument (with an empty document) when the stored copy
// fails validation. Save must be atomic: a concurrent Load sees either the
// previous or the new document, never a partial one.
type DocumentRepository interface {
	Load(ctx context.Context) (*models.Document, error)
	Save(ctx context.Context, doc *models.Document) error
	Close() error
}

// Quarantiner is implemented by repositories that can move a corrupt
// document out of the way.
type Quarantiner interface {
	Quarantine(ctx context.Context) (string, error)
}

type envelope struct {
	Version   int             `json:"version"`
	Checksum  string          `json:"checksum"`
	Signature string          `json:"signature,omitempty"`
	SavedAt   time.Time       `json:"saved_at"`
	Payload   json.RawMessage `json:"payload"`
}

func encodeDocument(doc *models.Document, key string) ([]byte, error) {
	payload, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal document: %w", err)
	}
	env := envelope{
		Version:   models.DocumentVersion,
		Checksum:  hash.Checksum(payload),
		Signature: hash.CalculateHash(payload, key),
		SavedAt:   time.Now().UTC(),
		Payload:   payload,
	}
	return json.Marshal(env)
}

func decodeDocument(raw []byte, key string) (*models.Document, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrCorruptDocument, err)
	}
	if len(env.Payload) == 0 {
		return nil, fmt.Errorf("%w: missing payload", apperrors.ErrCorruptDocument)
	}
	if env.Version > models.DocumentVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", apperrors.ErrCorruptDocument, env.Version)
	}
	if err := hash.VerifyChecksum(env.Payload, env.Checksum); err != nil {
		return nil, fmt.Errorf("%w: checksum: %v", apperrors.ErrCorruptDocument, err)
	}
	if key != "" && env.Signature == "" {
		return nil, fmt.Errorf("%w: unsigned document", apperrors.ErrCorruptDocument)
	}
	if err := hash.VerifyHash(env.Payload, key, env.Signature); err != nil {
		return nil, fmt.Errorf("%w: signature: %v", apperrors.ErrCorruptDocument, err)
	}

	doc := &models.Document{}
	if err := json.Unmarshal(env.Payload, doc); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrCorruptDocument, err)
	}
	doc.Normalize()
	return doc, nil
}

func IsCorrupt(err error) bool {
	return errors.Is(err, apperrors.ErrCorruptDocument)
}
