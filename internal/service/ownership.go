package service

import (
	"strings"

	"github.com/a2sh3r/groupmart/internal/apperrors"
	"github.com/a2sh3r/groupmart/internal/models"
	"github.com/shopspring/decimal"
)

func setOwnership(sub *models.Submission, next models.OwnershipStatus, t *tx) error {
	if !sub.Ownership.Status.CanTransitionTo(next) {
		return apperrors.ErrInvalidTransition
	}
	sub.Ownership.Status = next
	sub.Ownership.UpdatedAt = t.now
	sub.UpdatedAt = t.now
	return nil
}

func (c *Core) requestTransfer(t *tx, batchID, target string) (models.Result, error) {
	target = strings.TrimSpace(target)
	if target == "" {
		return models.Result{}, apperrors.ErrInvalidTarget
	}
	sub, err := c.pendingSubmission(t, batchID)
	if err != nil {
		return models.Result{}, err
	}
	if sub.Status != models.StatusApprovedWaitingTarget {
		return models.Result{}, apperrors.ErrInvalidTransition
	}

	if err := setOwnership(&sub, models.OwnershipRequested, t); err != nil {
		return models.Result{}, err
	}
	sub.Ownership.TargetReference = target
	if err := transition(&sub, models.StatusTransferInProgress, t.now); err != nil {
		return models.Result{}, err
	}
	t.putSubmission(sub)
	t.notify(models.Notification{
		Recipient: sub.SellerID,
		Kind:      models.NoteTransferRequested,
		BatchID:   sub.ID,
		Fields:    map[string]string{"target": target},
	})
	return applied(sub.ID, sub.Status, sub.Ownership.Status, decimal.Zero), nil
}

// confirmTransfer is the seller's claim that ownership was handed over.
// It is allowed again after a failed verification.
func (c *Core) confirmTransfer(t *tx, batchID string, actor models.Actor) (models.Submission, error) {
	sub, err := c.pendingSubmission(t, batchID)
	if err != nil {
		return models.Submission{}, err
	}
	if sub.SellerID != actor.UserID {
		return models.Submission{}, apperrors.ErrNotSeller
	}
	if sub.Status != models.StatusTransferInProgress {
		return models.Submission{}, apperrors.ErrInvalidTransition
	}
	if err := setOwnership(&sub, models.OwnershipTransferred, t); err != nil {
		return models.Submission{}, err
	}
	t.putSubmission(sub)
	t.notify(models.Notification{
		Recipient: models.ApproverRecipient,
		Kind:      models.NoteTransferConfirmed,
		BatchID:   sub.ID,
		Fields: map[string]string{
			"seller": sub.SellerID,
			"target": sub.Ownership.TargetReference,
		},
	})
	return sub, nil
}

func (c *Core) verify(t *tx, batchID string, outcome models.Outcome) (models.Result, error) {
	if outcome != models.OutcomeVerified && outcome != models.OutcomeFailed {
		return models.Result{}, apperrors.ErrInvalidOutcome
	}
	sub, err := c.pendingSubmission(t, batchID)
	if err != nil {
		return models.Result{}, err
	}
	if sub.Status != models.StatusTransferInProgress || sub.Ownership.Status != models.OwnershipTransferred {
		return models.Result{}, apperrors.ErrInvalidTransition
	}

	if outcome == models.OutcomeFailed {
		if err := setOwnership(&sub, models.OwnershipFailed, t); err != nil {
			return models.Result{}, err
		}
		t.putSubmission(sub)
		t.notify(models.Notification{
			Recipient: sub.SellerID,
			Kind:      models.NoteTransferFailed,
			BatchID:   sub.ID,
			Fields:    map[string]string{"target": sub.Ownership.TargetReference},
		})
		return applied(sub.ID, sub.Status, sub.Ownership.Status, decimal.Zero), nil
	}

	if err := setOwnership(&sub, models.OwnershipVerified, t); err != nil {
		return models.Result{}, err
	}
	price := c.settlementPrice(t, sub.SellerID, sub.Category)
	amount := price.Mul(decimal.NewFromInt(int64(sub.EstimatedCount)))
	c.credit(t, sub.SellerID, amount)
	if err := c.finish(t, sub, models.StatusSettled, amount); err != nil {
		return models.Result{}, err
	}
	t.notify(models.Notification{
		Recipient: sub.SellerID,
		Kind:      models.NoteSubmissionSettled,
		BatchID:   sub.ID,
		Fields: map[string]string{
			"amount": amount.String(),
			"count":  decimal.NewFromInt(int64(sub.EstimatedCount)).String(),
		},
	})
	return applied(sub.ID, models.StatusSettled, models.OwnershipVerified, amount), nil
}

// abandon drops a batch that can no longer settle.
func (c *Core) abandon(t *tx, sub models.Submission, reason string) error {
	if err := c.finish(t, sub, models.StatusAbandoned, decimal.Zero); err != nil {
		return err
	}
	fields := map[string]string{"reason": reason}
	t.notify(
		models.Notification{Recipient: sub.SellerID, Kind: models.NoteSubmissionAbandoned, BatchID: sub.ID, Fields: fields},
		models.Notification{Recipient: models.ApproverRecipient, Kind: models.NoteSubmissionAbandoned, BatchID: sub.ID, Fields: fields},
	)
	return nil
}
