package notify

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/a2sh3r/groupmart/internal/logger"
	"github.com/a2sh3r/groupmart/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingNotifier struct {
	mu    sync.Mutex
	got   []models.Notification
	fail  map[models.NotificationKind]bool
	block chan struct{}
}

func (r *recordingNotifier) Notify(_ context.Context, n models.Notification) error {
	if r.block != nil {
		<-r.block
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.got = append(r.got, n)
	if r.fail[n.Kind] {
		return errors.New("transport down")
	}
	return nil
}

func (r *recordingNotifier) kinds() []models.NotificationKind {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.NotificationKind
	for _, n := range r.got {
		out = append(out, n.Kind)
	}
	return out
}

func TestDispatcher_DeliversInOrderAndSurvivesFailures(t *testing.T) {
	logger.Log = zap.NewNop()
	rec := &recordingNotifier{fail: map[models.NotificationKind]bool{models.NoteSubmissionApproved: true}}
	d := NewDispatcher(rec, 0, 10)

	go d.Run(context.Background())

	d.Send(
		models.Notification{Kind: models.NoteSubmissionReceived},
		models.Notification{Kind: models.NoteSubmissionApproved},
		models.Notification{Kind: models.NoteSubmissionSettled},
	)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, d.Close(ctx))

	assert.Equal(t, []models.NotificationKind{
		models.NoteSubmissionReceived,
		models.NoteSubmissionApproved,
		models.NoteSubmissionSettled,
	}, rec.kinds())
}

func TestDispatcher_SendNeverBlocks(t *testing.T) {
	logger.Log = zap.NewNop()
	rec := &recordingNotifier{block: make(chan struct{})}
	d := NewDispatcher(rec, 0, 1)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			d.Send(models.Notification{Kind: models.NoteDraftExpired})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Send blocked on a full queue")
	}
	close(rec.block)
}

func TestDispatcher_SendAfterClose(t *testing.T) {
	logger.Log = zap.NewNop()
	rec := &recordingNotifier{}
	d := NewDispatcher(rec, 100, 4)
	go d.Run(context.Background())

	require.NoError(t, d.Close(context.Background()))
	d.Send(models.Notification{Kind: models.NoteWithdrawalApproved})

	assert.Empty(t, rec.kinds())
}
