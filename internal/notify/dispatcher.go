package notify

import (
	"context"
	"sync"
	"time"

	"github.com/a2sh3r/groupmart/internal/logger"
	"github.com/a2sh3r/groupmart/internal/metrics"
	"github.com/a2sh3r/groupmart/internal/models"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const deliveryTimeout = 10 * time.Second

// Dispatcher delivers notifications in the background, paced to the
// transport's outbound limit. Delivery is best effort: failures are logged
// and counted, never retried or reported to the sender.
type Dispatcher struct {
	notifier Notifier
	limiter  *rate.Limiter
	queue    chan models.Notification

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

func NewDispatcher(notifier Notifier, perSecond float64, queueSize int) *Dispatcher {
	if queueSize <= 0 {
		queueSize = 1
	}
	limit := rate.Inf
	if perSecond > 0 {
		limit = rate.Limit(perSecond)
	}
	return &Dispatcher{
		notifier: notifier,
		limiter:  rate.NewLimiter(limit, 1),
		queue:    make(chan models.Notification, queueSize),
		done:     make(chan struct{}),
	}
}

// Send enqueues without blocking. A full queue drops the notification.
func (d *Dispatcher) Send(notes ...models.Notification) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, n := range notes {
		if d.closed {
			logger.Log.Warn("dispatcher closed, dropping notification", zap.String("kind", string(n.Kind)))
			metrics.NotificationFailures.Inc()
			continue
		}
		select {
		case d.queue <- n:
		default:
			logger.Log.Warn("notification queue full, dropping notification",
				zap.String("kind", string(n.Kind)), zap.String("recipient", n.Recipient))
			metrics.NotificationFailures.Inc()
		}
	}
}

// Run delivers queued notifications until Close is called and the queue is drained.
func (d *Dispatcher) Run(ctx context.Context) {
	defer close(d.done)
	for n := range d.queue {
		if err := d.limiter.Wait(ctx); err != nil {
			// Cancelled: drain the rest without pacing.
			d.deliver(context.Background(), n)
			continue
		}
		d.deliver(ctx, n)
	}
}

func (d *Dispatcher) deliver(ctx context.Context, n models.Notification) {
	ctx, cancel := context.WithTimeout(ctx, deliveryTimeout)
	defer cancel()

	if err := d.notifier.Notify(ctx, n); err != nil {
		logger.Log.Error("failed to deliver notification",
			zap.String("kind", string(n.Kind)),
			zap.String("recipient", n.Recipient),
			zap.String("batch", n.BatchID),
			zap.String("withdrawal", n.WithdrawalID),
			zap.Error(err))
		metrics.NotificationFailures.Inc()
	}
}

// Close stops accepting notifications and waits for Run to drain the queue.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
