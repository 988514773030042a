package service

import (
	"context"
	"time"

	"github.com/a2sh3r/groupmart/internal/logger"
	"github.com/a2sh3r/groupmart/internal/metrics"
	"github.com/a2sh3r/groupmart/internal/models"
	"go.uber.org/zap"
)

// ExpiryWorker periodically drops abandoned drafts, ownership handshakes
// the seller never completed, and old processed event ids.
type ExpiryWorker struct {
	core     *Core
	interval time.Duration
}

func NewExpiryWorker(core *Core, interval time.Duration) *ExpiryWorker {
	return &ExpiryWorker{core: core, interval: interval}
}

func (w *ExpiryWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.Sweep(ctx)
		}
	}
}

func (w *ExpiryWorker) Sweep(ctx context.Context) {
	w.expireDrafts(ctx)
	w.abandonStaleTransfers(ctx)
	w.pruneEvents(ctx)
}

func (w *ExpiryWorker) expireDrafts(ctx context.Context) {
	if w.core.opts.DraftTimeout <= 0 {
		return
	}
	now := w.core.now()

	var sellers []string
	w.core.state.view(func(doc *models.Document) {
		for id, d := range doc.Drafts {
			if d.Expired(now, w.core.opts.DraftTimeout) {
				sellers = append(sellers, id)
			}
		}
	})

	for _, seller := range sellers {
		err := w.core.state.update(ctx, w.core.draftKeys(seller), func(t *tx) error {
			d, ok := t.draft(seller)
			if !ok || !d.Expired(t.now, w.core.opts.DraftTimeout) {
				return nil
			}
			w.core.expireDraft(t, d)
			t.after(func() { metrics.Abandoned.WithLabelValues("draft").Inc() })
			return nil
		})
		if err != nil {
			logger.Log.Error("failed to expire draft", zap.String("seller", seller), zap.Error(err))
			continue
		}
		logger.Log.Info("draft expired", zap.String("seller", seller))
	}
}

func (w *ExpiryWorker) stale(sub models.Submission, now time.Time) bool {
	if sub.Status != models.StatusTransferInProgress {
		return false
	}
	switch sub.Ownership.Status {
	case models.OwnershipRequested, models.OwnershipFailed:
		return now.Sub(sub.Ownership.UpdatedAt) >= w.core.opts.TransferTimeout
	}
	return false
}

func (w *ExpiryWorker) abandonStaleTransfers(ctx context.Context) {
	if w.core.opts.TransferTimeout <= 0 {
		return
	}
	now := w.core.now()

	var batches []string
	w.core.state.view(func(doc *models.Document) {
		for id, sub := range doc.Submissions {
			if w.stale(sub, now) {
				batches = append(batches, id)
			}
		}
	})

	for _, id := range batches {
		err := w.core.state.update(ctx, []string{batchKey(id)}, func(t *tx) error {
			sub, ok := t.submission(id)
			if !ok || !w.stale(sub, t.now) {
				return nil
			}
			if err := w.core.abandon(t, sub, "ownership transfer timed out"); err != nil {
				return err
			}
			t.after(func() { metrics.Abandoned.WithLabelValues("batch").Inc() })
			return nil
		})
		if err != nil {
			logger.Log.Error("failed to abandon batch", zap.String("batch", id), zap.Error(err))
			continue
		}
		logger.Log.Info("batch abandoned", zap.String("batch", id))
	}
}

func (w *ExpiryWorker) pruneEvents(ctx context.Context) {
	if w.core.opts.EventRetention <= 0 {
		return
	}
	cutoff := w.core.now().Add(-w.core.opts.EventRetention)

	var keys, ids []string
	w.core.state.view(func(doc *models.Document) {
		for id, rec := range doc.ProcessedEvents {
			if rec.ProcessedAt.Before(cutoff) {
				ids = append(ids, id)
				keys = append(keys, eventKey(id))
			}
		}
	})
	if len(ids) == 0 {
		return
	}

	err := w.core.state.update(ctx, keys, func(t *tx) error {
		for _, id := range ids {
			t.deleteEvent(id)
		}
		return nil
	})
	if err != nil {
		logger.Log.Error("failed to prune processed events", zap.Error(err))
		return
	}
	logger.Log.Debug("pruned processed events", zap.Int("count", len(ids)))
}
