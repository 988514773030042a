package repository

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/a2sh3r/groupmart/internal/apperrors"
	"github.com/a2sh3r/groupmart/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDocument() *models.Document {
	doc := models.NewDocument()
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	u := models.NewUser("42", now)
	u.Balance = decimal.NewFromInt(10)
	u.Credited = decimal.NewFromInt(10)
	u.SubmittedLinks = map[string]string{"t.me/+AbCdEf12345": "b1"}
	doc.Users[u.ID] = u
	doc.GlobalPrices["2023"] = decimal.NewFromInt(6)
	doc.Submissions["b2"] = models.Submission{
		ID:             "b2",
		SellerID:       "42",
		Links:          []string{"t.me/+XyZxyz98765"},
		Category:       "2023",
		Kind:           models.KindSingle,
		EstimatedCount: 1,
		Status:         models.StatusPending,
		Ownership:      models.Ownership{Status: models.OwnershipNone},
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	return doc
}

func TestFileRepo_LoadMissingReturnsEmpty(t *testing.T) {
	r := NewFileRepository(filepath.Join(t.TempDir(), "state.json"), "")

	doc, err := r.Load(context.Background())
	require.NoError(t, err)
	assert.True(t, doc.Empty())
}

func TestFileRepo_SaveLoadRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		key  string
	}{
		{"unsigned", ""},
		{"signed", "document-secret"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", "state.json")
			r := NewFileRepository(path, tt.key)
			ctx := context.Background()

			require.NoError(t, r.Save(ctx, sampleDocument()))

			got, err := r.Load(ctx)
			require.NoError(t, err)
			assert.True(t, got.Users["42"].Balance.Equal(decimal.NewFromInt(10)))
			assert.Equal(t, "b1", got.Users["42"].SubmittedLinks["t.me/+AbCdEf12345"])
			assert.Equal(t, models.StatusPending, got.Submissions["b2"].Status)
			assert.True(t, got.GlobalPrices["2023"].Equal(decimal.NewFromInt(6)))

			entries, err := os.ReadDir(filepath.Dir(path))
			require.NoError(t, err)
			assert.Len(t, entries, 1, "temp files must not be left behind")
		})
	}
}

func TestFileRepo_DetectsCorruption(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(t *testing.T, path string)
		loadKey string
	}{
		{
			name: "truncated file",
			mutate: func(t *testing.T, path string) {
				raw, err := os.ReadFile(path)
				require.NoError(t, err)
				require.NoError(t, os.WriteFile(path, raw[:len(raw)/2], 0o600))
			},
		},
		{
			name: "payload edited without checksum",
			mutate: func(t *testing.T, path string) {
				raw, err := os.ReadFile(path)
				require.NoError(t, err)
				var env envelope
				require.NoError(t, json.Unmarshal(raw, &env))
				env.Payload = json.RawMessage(`{"version":1,"users":{}}`)
				out, err := json.Marshal(env)
				require.NoError(t, err)
				require.NoError(t, os.WriteFile(path, out, 0o600))
			},
		},
		{
			name:    "signature from another key",
			mutate:  func(t *testing.T, path string) {},
			loadKey: "other-secret",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "state.json")
			require.NoError(t, NewFileRepository(path, "secret").Save(ctx, sampleDocument()))
			tt.mutate(t, path)

			key := tt.loadKey
			if key == "" {
				key = "secret"
			}
			doc, err := NewFileRepository(path, key).Load(ctx)
			assert.ErrorIs(t, err, apperrors.ErrCorruptDocument)
			assert.True(t, IsCorrupt(err))
			require.NotNil(t, doc)
			assert.True(t, doc.Empty())
		})
	}
}

func TestFileRepo_Quarantine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	r := NewFileRepository(path, "")
	_, err := r.Load(context.Background())
	require.ErrorIs(t, err, apperrors.ErrCorruptDocument)

	q, ok := r.(Quarantiner)
	require.True(t, ok)
	moved, err := q.Quarantine(context.Background())
	require.NoError(t, err)

	_, err = os.Stat(moved)
	assert.NoError(t, err)
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	doc, err := r.Load(context.Background())
	require.NoError(t, err)
	assert.True(t, doc.Empty())
}

func TestFileRepo_SaveHonoursCancelledContext(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewFileRepository(path, "").Save(ctx, sampleDocument())
	assert.ErrorIs(t, err, context.Canceled)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestDecodeDocument_RejectsNewerVersion(t *testing.T) {
	raw, err := encodeDocument(sampleDocument(), "")
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.Unmarshal(raw, &env))
	env.Version = models.DocumentVersion + 1
	raw, err = json.Marshal(env)
	require.NoError(t, err)

	_, err = decodeDocument(raw, "")
	assert.ErrorIs(t, err, apperrors.ErrCorruptDocument)
}
