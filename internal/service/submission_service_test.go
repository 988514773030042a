package service

import (
	"context"
	"testing"
	"time"

	"github.com/a2sh3r/groupmart/internal/apperrors"
	"github.com/a2sh3r/groupmart/internal/logger"
	"github.com/a2sh3r/groupmart/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestSubmissionService_Submit(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		seller   string
		req      models.SubmitRequest
		wantKind models.SubmissionKind
		wantErr  error
	}{
		{
			name:     "одна ссылка",
			seller:   "100",
			req:      models.SubmitRequest{Links: []string{"https://t.me/+AbCdEf123"}, Category: "2023"},
			wantKind: models.KindSingle,
		},
		{
			name:     "папка определяется по ссылке",
			seller:   "100",
			req:      models.SubmitRequest{Links: []string{"t.me/addlist/FoLdEr123"}, Category: "2023"},
			wantKind: models.KindFolder,
		},
		{
			name:    "пустой пакет",
			seller:  "100",
			req:     models.SubmitRequest{Category: "2023"},
			wantErr: apperrors.ErrNoLinks,
		},
		{
			name:    "больше лимита",
			seller:  "100",
			req:     models.SubmitRequest{Links: []string{"t.me/+aaaaa1", "t.me/+aaaaa2", "t.me/+aaaaa3"}, Category: "2023"},
			wantErr: apperrors.ErrTooManyLinks,
		},
		{
			name:    "дубликат внутри пакета",
			seller:  "100",
			req:     models.SubmitRequest{Links: []string{"https://t.me/+aaaaa1", "t.me/+aaaaa1/"}, Category: "2023"},
			wantErr: apperrors.ErrDuplicateLink,
		},
		{
			name:    "некорректная ссылка",
			seller:  "100",
			req:     models.SubmitRequest{Links: []string{"https://example.com/group"}, Category: "2023"},
			wantErr: apperrors.ErrInvalidLink,
		},
		{
			name:    "неизвестная категория",
			seller:  "100",
			req:     models.SubmitRequest{Links: []string{"t.me/+aaaaa1"}, Category: "1999"},
			wantErr: apperrors.ErrUnknownCategory,
		},
		{
			name:    "неизвестный тип",
			seller:  "100",
			req:     models.SubmitRequest{Links: []string{"t.me/+aaaaa1"}, Category: "2023", Kind: "bundle"},
			wantErr: apperrors.ErrInvalidKind,
		},
		{
			name:    "папка с обычной ссылкой",
			seller:  "100",
			req:     models.SubmitRequest{Links: []string{"t.me/+aaaaa1"}, Category: "2023", Kind: models.KindFolder},
			wantErr: apperrors.ErrFolderLink,
		},
		{
			name:    "без продавца",
			req:     models.SubmitRequest{Links: []string{"t.me/+aaaaa1"}, Category: "2023"},
			wantErr: apperrors.ErrInvalidUserID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, Options{MaxLinks: 2})

			sub, err := f.subs.Submit(ctx, tt.seller, tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, apperrors.ErrValidation)

				pending, err := f.processor.Pending(ctx, approver)
				require.NoError(t, err)
				assert.Empty(t, pending.Submissions)
				assert.Zero(t, f.sender.total())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, sub.Kind)
			assert.Equal(t, models.StatusPending, sub.Status)
			assert.Equal(t, models.OwnershipNone, sub.Ownership.Status)
			assert.Equal(t, 1, f.sender.count(models.NoteSubmissionReceived))
		})
	}
}

func TestSubmissionService_RejectsLinksSubmittedBefore(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, Options{})

	first, err := f.subs.Submit(ctx, "100", models.SubmitRequest{Links: []string{"https://t.me/+AbCdEf123"}, Category: "2023"})
	require.NoError(t, err)

	_, err = Decide(ctx, f.processor, approver, first.ID, models.OutcomeReject)
	require.NoError(t, err)

	_, err = f.subs.Submit(ctx, "100", models.SubmitRequest{Links: []string{"t.me/+AbCdEf123"}, Category: "2023"})
	assert.ErrorIs(t, err, apperrors.ErrDuplicateLink)

	_, err = f.subs.Submit(ctx, "200", models.SubmitRequest{Links: []string{"t.me/+AbCdEf123"}, Category: "2023"})
	assert.NoError(t, err)
}

func TestSubmissionService_MultiplePendingBatches(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, Options{})

	_, err := f.subs.Submit(ctx, "100", models.SubmitRequest{Links: []string{"t.me/+aaaaa1"}, Category: "2023"})
	require.NoError(t, err)
	f.clock.Advance(time.Second)
	_, err = f.subs.Submit(ctx, "100", models.SubmitRequest{Links: []string{"t.me/+aaaaa2"}, Category: "2024 (1-3)"})
	require.NoError(t, err)

	list, err := f.subs.ListSubmissions(ctx, "100")
	require.NoError(t, err)
	require.Len(t, list.Active, 2)
	assert.Equal(t, "2023", list.Active[0].Category)
	assert.Empty(t, list.Finished)
}

func TestSubmissionService_Drafts(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, Options{MaxLinks: 2})

	_, err := f.subs.AddDraftLink(ctx, "100", "t.me/+aaaaa1")
	assert.ErrorIs(t, err, apperrors.ErrDraftNotFound)

	_, err = f.subs.StartDraft(ctx, "100", "1999", models.KindSingle)
	assert.ErrorIs(t, err, apperrors.ErrUnknownCategory)

	draft, err := f.subs.StartDraft(ctx, "100", "2023", "")
	require.NoError(t, err)
	assert.Equal(t, models.KindSingle, draft.Kind)

	_, err = f.subs.StartDraft(ctx, "100", "2023", models.KindSingle)
	assert.ErrorIs(t, err, apperrors.ErrDraftExists)

	draft, err = f.subs.AddDraftLink(ctx, "100", "https://t.me/+aaaaa1")
	require.NoError(t, err)
	assert.Equal(t, []string{"t.me/+aaaaa1"}, draft.Links)

	_, err = f.subs.AddDraftLink(ctx, "100", "t.me/+aaaaa1")
	assert.ErrorIs(t, err, apperrors.ErrDuplicateLink)

	_, err = f.subs.AddDraftLink(ctx, "100", "t.me/addlist/FoLdEr123")
	assert.ErrorIs(t, err, apperrors.ErrFolderLink)

	_, err = f.subs.AddDraftLink(ctx, "100", "t.me/+aaaaa2")
	require.NoError(t, err)

	_, err = f.subs.AddDraftLink(ctx, "100", "t.me/+aaaaa3")
	assert.ErrorIs(t, err, apperrors.ErrTooManyLinks)

	sub, err := f.subs.SubmitDraft(ctx, "100")
	require.NoError(t, err)
	assert.Len(t, sub.Links, 2)
	assert.Equal(t, 2, sub.EstimatedCount)

	_, err = f.subs.SubmitDraft(ctx, "100")
	assert.ErrorIs(t, err, apperrors.ErrDraftNotFound)
}

func TestSubmissionService_DraftExpires(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, Options{DraftTimeout: 10 * time.Minute})

	_, err := f.subs.StartDraft(ctx, "100", "2023", models.KindSingle)
	require.NoError(t, err)
	_, err = f.subs.AddDraftLink(ctx, "100", "t.me/+aaaaa1")
	require.NoError(t, err)

	f.clock.Advance(9 * time.Minute)
	_, err = f.subs.AddDraftLink(ctx, "100", "t.me/+aaaaa2")
	require.NoError(t, err)

	f.clock.Advance(10 * time.Minute)
	_, err = f.subs.AddDraftLink(ctx, "100", "t.me/+aaaaa3")
	assert.ErrorIs(t, err, apperrors.ErrDraftExpired)
	assert.Equal(t, 1, f.sender.count(models.NoteDraftExpired))

	_, err = f.subs.SubmitDraft(ctx, "100")
	assert.ErrorIs(t, err, apperrors.ErrDraftNotFound)

	_, err = f.subs.StartDraft(ctx, "100", "2023", models.KindSingle)
	assert.NoError(t, err)
}

func TestSubmissionService_CancelDraft(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, Options{})

	assert.ErrorIs(t, f.subs.CancelDraft(ctx, "100"), apperrors.ErrDraftNotFound)

	_, err := f.subs.StartDraft(ctx, "100", "2023", models.KindFolder)
	require.NoError(t, err)
	require.NoError(t, f.subs.CancelDraft(ctx, "100"))

	_, err = f.subs.SubmitDraft(ctx, "100")
	assert.ErrorIs(t, err, apperrors.ErrDraftNotFound)
}

func TestSubmissionService_ConfirmTransfer(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, Options{})

	sub, err := f.subs.Submit(ctx, "100", models.SubmitRequest{Links: []string{"t.me/+aaaaa1"}, Category: "2023"})
	require.NoError(t, err)

	_, err = f.subs.ConfirmTransfer(ctx, models.Actor{UserID: "100"}, sub.ID)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)

	_, err = Decide(ctx, f.processor, approver, sub.ID, models.OutcomeApprove)
	require.NoError(t, err)
	_, err = RequestTransfer(ctx, f.processor, approver, sub.ID, "@buyer")
	require.NoError(t, err)

	_, err = f.subs.ConfirmTransfer(ctx, models.Actor{UserID: "200"}, sub.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotSeller)

	got, err := f.subs.ConfirmTransfer(ctx, models.Actor{UserID: "100"}, sub.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OwnershipTransferred, got.Ownership.Status)
	assert.Equal(t, "@buyer", got.Ownership.TargetReference)
	assert.Equal(t, 1, f.sender.count(models.NoteTransferConfirmed))

	_, err = f.subs.ConfirmTransfer(ctx, models.Actor{UserID: "100"}, "missing")
	assert.ErrorIs(t, err, apperrors.ErrBatchNotFound)
}

func TestSubmissionService_ConfirmTransferTwice(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, Options{})

	sub, err := f.subs.Submit(ctx, "100", models.SubmitRequest{Links: []string{"t.me/+aaaaa1"}, Category: "2023"})
	require.NoError(t, err)
	_, err = Decide(ctx, f.processor, approver, sub.ID, models.OutcomeApprove)
	require.NoError(t, err)
	_, err = RequestTransfer(ctx, f.processor, approver, sub.ID, "@buyer")
	require.NoError(t, err)

	_, err = f.subs.ConfirmTransfer(ctx, models.Actor{UserID: "100"}, sub.ID)
	require.NoError(t, err)

	_, err = f.subs.ConfirmTransfer(ctx, models.Actor{UserID: "100"}, sub.ID)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
	assert.Equal(t, apperrors.CodeAlreadyHandled, apperrors.Code(err))

	_, err = f.subs.ConfirmTransfer(ctx, models.Actor{UserID: "100"}, "nope")
	assert.Equal(t, apperrors.CodeNotFound, apperrors.Code(err))

	assert.Equal(t, 1, f.sender.count(models.NoteTransferConfirmed))
}

func TestSubmissionService_ConfirmTransferByStrangerIsLogged(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, Options{})

	sub, err := f.subs.Submit(ctx, "100", models.SubmitRequest{Links: []string{"t.me/+aaaaa1"}, Category: "2023"})
	require.NoError(t, err)

	core, logs := observer.New(zap.WarnLevel)
	logger.Log = zap.New(core)

	_, err = f.subs.ConfirmTransfer(ctx, models.Actor{UserID: "200"}, sub.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotSeller)

	entries := logs.FilterMessage("transfer confirmation from non-seller").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "200", entries[0].ContextMap()["user"])
	assert.Equal(t, sub.ID, entries[0].ContextMap()["batch"])
}
