package service

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/a2sh3r/groupmart/internal/apperrors"
	"github.com/a2sh3r/groupmart/internal/logger"
	"github.com/a2sh3r/groupmart/internal/metrics"
	"github.com/a2sh3r/groupmart/internal/models"
	"github.com/a2sh3r/groupmart/internal/repository"
	"github.com/cenkalti/backoff/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Sender takes notifications for best-effort delivery. It must not block.
type Sender interface {
	Send(notes ...models.Notification)
}

type keyedLock struct {
	mu   sync.Mutex
	refs int
}

// keyedLocker hands out one mutex per entity key.
type keyedLocker struct {
	mu    sync.Mutex
	locks map[string]*keyedLock
}

func newKeyedLocker() *keyedLocker {
	return &keyedLocker{locks: make(map[string]*keyedLock)}
}

// lock acquires all keys in sorted order and returns the matching unlock.
func (l *keyedLocker) lock(keys ...string) func() {
	keys = slices.Clone(keys)
	slices.Sort(keys)
	keys = slices.Compact(keys)

	held := make([]*keyedLock, 0, len(keys))
	for _, key := range keys {
		l.mu.Lock()
		e, ok := l.locks[key]
		if !ok {
			e = &keyedLock{}
			l.locks[key] = e
		}
		e.refs++
		l.mu.Unlock()

		e.mu.Lock()
		held = append(held, e)
	}

	return func() {
		for i := len(held) - 1; i >= 0; i-- {
			held[i].mu.Unlock()
			l.mu.Lock()
			held[i].refs--
			if held[i].refs == 0 {
				delete(l.locks, keys[i])
			}
			l.mu.Unlock()
		}
	}
}

func userKey(id string) string       { return "user:" + id }
func batchKey(id string) string      { return "batch:" + id }
func withdrawalKey(id string) string { return "withdrawal:" + id }
func eventKey(id string) string      { return "event:" + id }
func draftKey(id string) string      { return "draft:" + id }

const pricesKey = "prices"

// overlay stages writes to one document map. A nil entry is a delete.
type overlay[T any] struct {
	staged map[string]*T
	clone  func(T) T
}

func newOverlay[T any](clone func(T) T) overlay[T] {
	if clone == nil {
		clone = func(v T) T { return v }
	}
	return overlay[T]{staged: make(map[string]*T), clone: clone}
}

func (o *overlay[T]) get(live map[string]T, key string) (T, bool) {
	if v, ok := o.staged[key]; ok {
		if v == nil {
			var zero T
			return zero, false
		}
		return o.clone(*v), true
	}
	v, ok := live[key]
	if !ok {
		return v, false
	}
	return o.clone(v), true
}

func (o *overlay[T]) put(key string, v T) {
	o.staged[key] = &v
}

func (o *overlay[T]) del(key string) {
	o.staged[key] = nil
}

func (o *overlay[T]) apply(live map[string]T) func() {
	type prev struct {
		v   T
		had bool
	}
	saved := make(map[string]prev, len(o.staged))
	for key, v := range o.staged {
		old, had := live[key]
		saved[key] = prev{v: old, had: had}
		if v == nil {
			delete(live, key)
		} else {
			live[key] = *v
		}
	}
	return func() {
		for key, p := range saved {
			if p.had {
				live[key] = p.v
			} else {
				delete(live, key)
			}
		}
	}
}

// tx collects the changes of one operation. Nothing is visible to other
// callers until the store commits it.
type tx struct {
	s   *stateStore
	now time.Time

	users       overlay[models.User]
	submissions overlay[models.Submission]
	outcomes    overlay[models.SubmissionOutcome]
	withdrawals overlay[models.WithdrawalRecord]
	drafts      overlay[models.Draft]
	prices      overlay[decimal.Decimal]
	events      overlay[models.EventRecord]

	notes    []models.Notification
	onCommit []func()
}

func (t *tx) dirty() bool {
	return len(t.users.staged) > 0 || len(t.submissions.staged) > 0 || len(t.outcomes.staged) > 0 ||
		len(t.withdrawals.staged) > 0 || len(t.drafts.staged) > 0 || len(t.prices.staged) > 0 ||
		len(t.events.staged) > 0
}

func (t *tx) user(id string) (models.User, bool) {
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()
	return t.users.get(t.s.doc.Users, id)
}

func (t *tx) userOrNew(id string) models.User {
	if u, ok := t.user(id); ok {
		return u
	}
	return models.NewUser(id, t.now)
}

func (t *tx) putUser(u models.User) { t.users.put(u.ID, u) }

func (t *tx) submission(id string) (models.Submission, bool) {
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()
	return t.submissions.get(t.s.doc.Submissions, id)
}

func (t *tx) putSubmission(s models.Submission) { t.submissions.put(s.ID, s) }

func (t *tx) deleteSubmission(id string) { t.submissions.del(id) }

func (t *tx) outcome(id string) (models.SubmissionOutcome, bool) {
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()
	return t.outcomes.get(t.s.doc.Outcomes, id)
}

func (t *tx) putOutcome(o models.SubmissionOutcome) { t.outcomes.put(o.BatchID, o) }

func (t *tx) withdrawal(id string) (models.WithdrawalRecord, bool) {
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()
	return t.withdrawals.get(t.s.doc.Withdrawals, id)
}

func (t *tx) putWithdrawal(w models.WithdrawalRecord) { t.withdrawals.put(w.ID, w) }

func (t *tx) draft(sellerID string) (models.Draft, bool) {
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()
	return t.drafts.get(t.s.doc.Drafts, sellerID)
}

func (t *tx) putDraft(d models.Draft) { t.drafts.put(d.SellerID, d) }

func (t *tx) deleteDraft(sellerID string) { t.drafts.del(sellerID) }

func (t *tx) globalPrice(category string) (decimal.Decimal, bool) {
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()
	return t.prices.get(t.s.doc.GlobalPrices, category)
}

func (t *tx) putGlobalPrice(category string, price decimal.Decimal) { t.prices.put(category, price) }

func (t *tx) deleteGlobalPrice(category string) { t.prices.del(category) }

func (t *tx) event(id string) (models.EventRecord, bool) {
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()
	return t.events.get(t.s.doc.ProcessedEvents, id)
}

func (t *tx) putEvent(id string, rec models.EventRecord) { t.events.put(id, rec) }

func (t *tx) deleteEvent(id string) { t.events.del(id) }

func (t *tx) notify(notes ...models.Notification) {
	t.notes = append(t.notes, notes...)
}

// after registers fn to run once the transaction is committed.
func (t *tx) after(fn func()) {
	t.onCommit = append(t.onCommit, fn)
}

type stateStore struct {
	repo       repository.DocumentRepository
	sender     Sender
	locks      *keyedLocker
	clock      func() time.Time
	newBackOff func() backoff.BackOff

	mu  sync.RWMutex
	doc *models.Document
}

func (s *stateStore) begin() *tx {
	t := &tx{s: s, now: s.clock().UTC()}
	t.discard()
	return t
}

// discard drops everything staged so far.
func (t *tx) discard() {
	*t = tx{
		s:           t.s,
		now:         t.now,
		users:       newOverlay(models.User.Clone),
		submissions: newOverlay(models.Submission.Clone),
		outcomes:    newOverlay[models.SubmissionOutcome](nil),
		withdrawals: newOverlay(models.WithdrawalRecord.Clone),
		drafts:      newOverlay(models.Draft.Clone),
		prices:      newOverlay[decimal.Decimal](nil),
		events:      newOverlay[models.EventRecord](nil),
	}
}

// update runs fn under the given entity locks and commits what it staged.
// If fn fails nothing is applied; if the save fails the in-memory document
// is restored and a persistence error is returned. Notifications go out
// only after a successful save.
func (s *stateStore) update(ctx context.Context, keys []string, fn func(t *tx) error) error {
	unlock := s.locks.lock(keys...)
	defer unlock()

	t := s.begin()
	if err := fn(t); err != nil {
		return err
	}
	if err := s.commit(ctx, t); err != nil {
		return err
	}

	for _, f := range t.onCommit {
		f()
	}
	if len(t.notes) > 0 {
		s.sender.Send(t.notes...)
	}
	return nil
}

func (s *stateStore) commit(ctx context.Context, t *tx) error {
	if !t.dirty() {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	undo := []func(){
		t.users.apply(s.doc.Users),
		t.submissions.apply(s.doc.Submissions),
		t.outcomes.apply(s.doc.Outcomes),
		t.withdrawals.apply(s.doc.Withdrawals),
		t.drafts.apply(s.doc.Drafts),
		t.prices.apply(s.doc.GlobalPrices),
		t.events.apply(s.doc.ProcessedEvents),
	}
	prevUpdated := s.doc.UpdatedAt
	s.doc.UpdatedAt = t.now

	if err := s.save(ctx); err != nil {
		for i := len(undo) - 1; i >= 0; i-- {
			undo[i]()
		}
		s.doc.UpdatedAt = prevUpdated
		metrics.SaveFailures.Inc()
		logger.Log.Error("failed to save state, change rolled back", zap.Error(err))
		return fmt.Errorf("%w: %v", apperrors.ErrSaveFailed, err)
	}
	return nil
}

// save must be called with s.mu held.
func (s *stateStore) save(ctx context.Context) error {
	b := backoff.WithContext(s.newBackOff(), ctx)
	return backoff.Retry(func() error {
		return s.repo.Save(ctx, s.doc)
	}, b)
}

func (s *stateStore) view(fn func(doc *models.Document)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.doc)
}
