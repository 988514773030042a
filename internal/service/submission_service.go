package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/a2sh3r/groupmart/internal/apperrors"
	"github.com/a2sh3r/groupmart/internal/logger"
	"github.com/a2sh3r/groupmart/internal/models"
	"github.com/a2sh3r/groupmart/internal/utils"
	"go.uber.org/zap"
)

type SubmissionService interface {
	Submit(ctx context.Context, sellerID string, req models.SubmitRequest) (models.Submission, error)
	StartDraft(ctx context.Context, sellerID, category string, kind models.SubmissionKind) (models.Draft, error)
	AddDraftLink(ctx context.Context, sellerID, link string) (models.Draft, error)
	SubmitDraft(ctx context.Context, sellerID string) (models.Submission, error)
	CancelDraft(ctx context.Context, sellerID string) error
	ConfirmTransfer(ctx context.Context, actor models.Actor, batchID string) (models.Submission, error)
	ListSubmissions(ctx context.Context, sellerID string) (models.SellerSubmissions, error)
}

type submissionService struct {
	core *Core
}

func NewSubmissionService(core *Core) SubmissionService {
	return &submissionService{core: core}
}

func (s *submissionService) Submit(ctx context.Context, sellerID string, req models.SubmitRequest) (models.Submission, error) {
	var sub models.Submission
	err := s.core.state.update(ctx, []string{userKey(sellerID)}, func(t *tx) error {
		var err error
		sub, err = s.core.submit(t, sellerID, req)
		return err
	})
	if err != nil {
		return models.Submission{}, err
	}

	logger.Log.Info("submission received",
		zap.String("seller", sellerID),
		zap.String("batch", sub.ID),
		zap.String("kind", string(sub.Kind)),
		zap.Int("links", len(sub.Links)))
	return sub, nil
}

func (s *submissionService) StartDraft(ctx context.Context, sellerID, category string, kind models.SubmissionKind) (models.Draft, error) {
	if sellerID == "" {
		return models.Draft{}, apperrors.ErrInvalidUserID
	}
	if kind == "" {
		kind = models.KindSingle
	}
	if !kind.Valid() {
		return models.Draft{}, apperrors.ErrInvalidKind
	}
	category = strings.TrimSpace(category)

	var draft models.Draft
	err := s.core.state.update(ctx, s.core.draftKeys(sellerID), func(t *tx) error {
		if d, ok := t.draft(sellerID); ok && !d.Expired(t.now, s.core.opts.DraftTimeout) {
			return apperrors.ErrDraftExists
		}
		if _, err := s.core.resolvePrice(t, sellerID, category); err != nil {
			return fmt.Errorf("%w: %q", err, category)
		}
		draft = models.Draft{
			SellerID:     sellerID,
			Category:     category,
			Kind:         kind,
			StartedAt:    t.now,
			LastActivity: t.now,
		}
		t.putDraft(draft)
		return nil
	})
	if err != nil {
		return models.Draft{}, err
	}
	return draft, nil
}

func (s *submissionService) AddDraftLink(ctx context.Context, sellerID, link string) (models.Draft, error) {
	var draft models.Draft
	err := s.core.withDraft(ctx, sellerID, func(t *tx, d models.Draft) error {
		if err := s.core.addDraftLink(t, &d, link); err != nil {
			return err
		}
		t.putDraft(d)
		draft = d
		return nil
	})
	if err != nil {
		return models.Draft{}, err
	}
	return draft, nil
}

func (s *submissionService) SubmitDraft(ctx context.Context, sellerID string) (models.Submission, error) {
	var sub models.Submission
	err := s.core.withDraft(ctx, sellerID, func(t *tx, d models.Draft) error {
		var err error
		sub, err = s.core.submit(t, sellerID, models.SubmitRequest{
			Links:    d.Links,
			Category: d.Category,
			Kind:     d.Kind,
		})
		if err != nil {
			return err
		}
		t.deleteDraft(sellerID)
		return nil
	})
	if err != nil {
		return models.Submission{}, err
	}

	logger.Log.Info("draft submitted",
		zap.String("seller", sellerID),
		zap.String("batch", sub.ID),
		zap.Int("links", len(sub.Links)))
	return sub, nil
}

func (s *submissionService) CancelDraft(ctx context.Context, sellerID string) error {
	return s.core.withDraft(ctx, sellerID, func(t *tx, _ models.Draft) error {
		t.deleteDraft(sellerID)
		return nil
	})
}

func (s *submissionService) ConfirmTransfer(ctx context.Context, actor models.Actor, batchID string) (models.Submission, error) {
	var sub models.Submission
	err := s.core.state.update(ctx, []string{batchKey(batchID)}, func(t *tx) error {
		var err error
		sub, err = s.core.confirmTransfer(t, batchID, actor)
		return err
	})
	if errors.Is(err, apperrors.ErrForbidden) {
		logger.Log.Warn("transfer confirmation from non-seller",
			zap.String("user", actor.UserID),
			zap.String("batch", batchID))
	}
	if err != nil {
		return models.Submission{}, err
	}

	logger.Log.Info("seller confirmed ownership transfer",
		zap.String("seller", actor.UserID),
		zap.String("batch", batchID))
	return sub, nil
}

// ListSubmissions returns the seller's open batches and the outcomes of
// finished ones, oldest first.
func (s *submissionService) ListSubmissions(_ context.Context, sellerID string) (models.SellerSubmissions, error) {
	var out models.SellerSubmissions
	s.core.state.view(func(doc *models.Document) {
		for _, sub := range doc.Submissions {
			if sub.SellerID == sellerID {
				out.Active = append(out.Active, sub.Clone())
			}
		}
		for _, o := range doc.Outcomes {
			if o.SellerID == sellerID {
				out.Finished = append(out.Finished, o)
			}
		}
	})
	slices.SortFunc(out.Active, func(a, b models.Submission) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	slices.SortFunc(out.Finished, func(a, b models.SubmissionOutcome) int {
		return a.DecidedAt.Compare(b.DecidedAt)
	})
	return out, nil
}

func (c *Core) draftKeys(sellerID string) []string {
	return []string{userKey(sellerID), draftKey(sellerID)}
}

// withDraft runs fn on the seller's live draft. An expired draft is removed
// and reported as ErrDraftExpired; the removal is committed either way.
func (c *Core) withDraft(ctx context.Context, sellerID string, fn func(t *tx, d models.Draft) error) error {
	expired := false
	err := c.state.update(ctx, c.draftKeys(sellerID), func(t *tx) error {
		d, ok := t.draft(sellerID)
		if !ok {
			return apperrors.ErrDraftNotFound
		}
		if d.Expired(t.now, c.opts.DraftTimeout) {
			c.expireDraft(t, d)
			expired = true
			return nil
		}
		return fn(t, d)
	})
	if err != nil {
		return err
	}
	if expired {
		return apperrors.ErrDraftExpired
	}
	return nil
}

func (c *Core) expireDraft(t *tx, d models.Draft) {
	t.deleteDraft(d.SellerID)
	t.notify(models.Notification{
		Recipient: d.SellerID,
		Kind:      models.NoteDraftExpired,
		Fields:    map[string]string{"links": fmt.Sprint(len(d.Links))},
	})
}

func (c *Core) addDraftLink(t *tx, d *models.Draft, raw string) error {
	if !utils.IsValidInviteLink(raw) {
		return fmt.Errorf("%w: %q", apperrors.ErrInvalidLink, strings.TrimSpace(raw))
	}
	if utils.IsFolderLink(raw) != (d.Kind == models.KindFolder) {
		return apperrors.ErrFolderLink
	}
	if d.Kind == models.KindFolder && len(d.Links) > 0 {
		return apperrors.ErrFolderLink
	}
	if len(d.Links) >= c.opts.MaxLinks {
		return fmt.Errorf("%w: limit is %d", apperrors.ErrTooManyLinks, c.opts.MaxLinks)
	}

	link := utils.NormalizeLink(raw)
	seller, _ := t.user(d.SellerID)
	if slices.Contains(d.Links, link) || seller.HasSubmitted(link) {
		return fmt.Errorf("%w: %s", apperrors.ErrDuplicateLink, link)
	}
	d.Links = append(d.Links, link)
	d.LastActivity = t.now
	return nil
}
