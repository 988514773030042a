package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/a2sh3r/groupmart/internal/apperrors"
	"github.com/a2sh3r/groupmart/internal/metrics"
	"github.com/a2sh3r/groupmart/internal/models"
	"github.com/a2sh3r/groupmart/internal/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func transition(sub *models.Submission, next models.SubmissionStatus, now time.Time) error {
	if !sub.Status.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", apperrors.ErrInvalidTransition, sub.Status, next)
	}
	sub.Status = next
	sub.UpdatedAt = now
	return nil
}

// finish moves a batch out of the pending set and records its outcome.
func (c *Core) finish(t *tx, sub models.Submission, status models.SubmissionStatus, credited decimal.Decimal) error {
	if err := transition(&sub, status, t.now); err != nil {
		return err
	}
	t.deleteSubmission(sub.ID)
	t.putOutcome(models.SubmissionOutcome{
		BatchID:   sub.ID,
		SellerID:  sub.SellerID,
		Status:    status,
		Credited:  credited,
		DecidedAt: t.now,
	})
	return nil
}

// pendingSubmission returns a batch still in the pending set. A batch that
// already left it reports ErrInvalidTransition, an unknown id ErrBatchNotFound.
func (c *Core) pendingSubmission(t *tx, batchID string) (models.Submission, error) {
	if sub, ok := t.submission(batchID); ok {
		return sub, nil
	}
	if _, ok := t.outcome(batchID); ok {
		return models.Submission{}, apperrors.ErrInvalidTransition
	}
	return models.Submission{}, apperrors.ErrBatchNotFound
}

func inferKind(links []string) models.SubmissionKind {
	if len(links) == 1 && utils.IsFolderLink(links[0]) {
		return models.KindFolder
	}
	return models.KindSingle
}

// normalizeLinks validates a batch of links against the format, the cap
// and the seller's history. It returns the normalized links.
func (c *Core) normalizeLinks(seller models.User, links []string, kind models.SubmissionKind) ([]string, error) {
	if len(links) == 0 {
		return nil, apperrors.ErrNoLinks
	}
	if len(links) > c.opts.MaxLinks {
		return nil, fmt.Errorf("%w: %d > %d", apperrors.ErrTooManyLinks, len(links), c.opts.MaxLinks)
	}

	out := make([]string, 0, len(links))
	seen := make(map[string]struct{}, len(links))
	for _, raw := range links {
		if !utils.IsValidInviteLink(raw) {
			return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidLink, strings.TrimSpace(raw))
		}
		isFolder := utils.IsFolderLink(raw)
		if isFolder != (kind == models.KindFolder) {
			return nil, apperrors.ErrFolderLink
		}
		link := utils.NormalizeLink(raw)
		if _, dup := seen[link]; dup || seller.HasSubmitted(link) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrDuplicateLink, link)
		}
		seen[link] = struct{}{}
		out = append(out, link)
	}
	if kind == models.KindFolder && len(out) != 1 {
		return nil, apperrors.ErrFolderLink
	}
	return out, nil
}

func (c *Core) submit(t *tx, sellerID string, req models.SubmitRequest) (models.Submission, error) {
	if sellerID == "" {
		return models.Submission{}, apperrors.ErrInvalidUserID
	}

	kind := req.Kind
	if kind == "" {
		kind = inferKind(req.Links)
	}
	if !kind.Valid() {
		return models.Submission{}, apperrors.ErrInvalidKind
	}

	seller := t.userOrNew(sellerID)
	links, err := c.normalizeLinks(seller, req.Links, kind)
	if err != nil {
		return models.Submission{}, err
	}

	category := strings.TrimSpace(req.Category)
	if _, err := c.resolvePrice(t, sellerID, category); err != nil {
		return models.Submission{}, fmt.Errorf("%w: %q", err, category)
	}

	sub := models.Submission{
		ID:        uuid.NewString(),
		SellerID:  sellerID,
		Links:     links,
		Category:  category,
		Kind:      kind,
		Status:    models.StatusPending,
		Ownership: models.Ownership{Status: models.OwnershipNone, UpdatedAt: t.now},
		CreatedAt: t.now,
		UpdatedAt: t.now,
	}
	if kind == models.KindSingle {
		sub.EstimatedCount = len(links)
	}

	if seller.SubmittedLinks == nil {
		seller.SubmittedLinks = make(map[string]string, len(links))
	}
	for _, link := range links {
		seller.SubmittedLinks[link] = sub.ID
	}
	t.putUser(seller)
	t.putSubmission(sub)
	t.notify(models.Notification{
		Recipient: models.ApproverRecipient,
		Kind:      models.NoteSubmissionReceived,
		BatchID:   sub.ID,
		Fields: map[string]string{
			"seller":   sellerID,
			"category": category,
			"kind":     string(kind),
			"links":    strings.Join(links, " "),
		},
	})
	t.after(func() { metrics.Submissions.WithLabelValues(string(kind)).Inc() })
	return sub, nil
}

func (c *Core) decideSubmission(t *tx, batchID string, outcome models.Outcome) (models.Result, error) {
	if outcome != models.OutcomeApprove && outcome != models.OutcomeReject {
		return models.Result{}, apperrors.ErrInvalidOutcome
	}
	sub, err := c.pendingSubmission(t, batchID)
	if err != nil {
		return models.Result{}, err
	}
	if sub.Status != models.StatusPending {
		return models.Result{}, apperrors.ErrInvalidTransition
	}

	if outcome == models.OutcomeReject {
		if err := c.finish(t, sub, models.StatusRejected, decimal.Zero); err != nil {
			return models.Result{}, err
		}
		t.notify(models.Notification{
			Recipient: sub.SellerID,
			Kind:      models.NoteSubmissionRejected,
			BatchID:   sub.ID,
		})
		return applied(sub.ID, models.StatusRejected, models.OwnershipNone, decimal.Zero), nil
	}

	next := models.StatusApprovedWaitingTarget
	if sub.Kind == models.KindFolder {
		next = models.StatusApprovedWaitingCount
	} else if sub.EstimatedCount < 1 {
		sub.EstimatedCount = max(len(sub.Links), 1)
	}
	if err := transition(&sub, next, t.now); err != nil {
		return models.Result{}, err
	}
	t.putSubmission(sub)
	t.notify(models.Notification{
		Recipient: sub.SellerID,
		Kind:      models.NoteSubmissionApproved,
		BatchID:   sub.ID,
		Fields:    map[string]string{"status": string(next)},
	})
	return applied(sub.ID, next, sub.Ownership.Status, decimal.Zero), nil
}

func (c *Core) setCount(t *tx, batchID string, count int) (models.Result, error) {
	if count <= 0 {
		return models.Result{}, apperrors.ErrInvalidCount
	}
	sub, err := c.pendingSubmission(t, batchID)
	if err != nil {
		return models.Result{}, err
	}
	if sub.Status != models.StatusApprovedWaitingCount {
		return models.Result{}, apperrors.ErrInvalidTransition
	}

	sub.EstimatedCount = count
	if err := transition(&sub, models.StatusApprovedWaitingTarget, t.now); err != nil {
		return models.Result{}, err
	}
	t.putSubmission(sub)
	t.notify(models.Notification{
		Recipient: sub.SellerID,
		Kind:      models.NoteCountSet,
		BatchID:   sub.ID,
		Fields:    map[string]string{"count": fmt.Sprint(count)},
	})
	return applied(sub.ID, sub.Status, sub.Ownership.Status, decimal.Zero), nil
}

func applied(id string, status models.SubmissionStatus, ownership models.OwnershipStatus, amount decimal.Decimal) models.Result {
	return models.Result{
		Status:    models.ResultApplied,
		EntityID:  id,
		State:     string(status),
		Ownership: string(ownership),
		Amount:    amount,
	}
}
