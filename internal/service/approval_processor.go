package service

import (
	"context"
	"errors"
	"slices"
	"strings"

	"github.com/a2sh3r/groupmart/internal/apperrors"
	"github.com/a2sh3r/groupmart/internal/logger"
	"github.com/a2sh3r/groupmart/internal/metrics"
	"github.com/a2sh3r/groupmart/internal/models"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ApprovalProcessor is the only way approver decisions reach the core.
// Every command commits its state change, ledger effect and event record
// together, and a command that arrives twice is applied once.
type ApprovalProcessor interface {
	Handle(ctx context.Context, actor models.Actor, cmd models.Command) (models.Result, error)
	Pending(ctx context.Context, actor models.Actor) (models.PendingView, error)
}

type approvalProcessor struct {
	core *Core
}

func NewApprovalProcessor(core *Core) ApprovalProcessor {
	return &approvalProcessor{core: core}
}

func (p *approvalProcessor) Handle(ctx context.Context, actor models.Actor, cmd models.Command) (models.Result, error) {
	if !actor.IsApprover {
		logger.Log.Warn("approver command from non-approver",
			zap.String("user", actor.UserID),
			zap.String("command", string(cmd.Kind)))
		return models.Result{}, apperrors.ErrNotApprover
	}
	if err := validateCommand(cmd); err != nil {
		return models.Result{}, err
	}

	var res models.Result
	err := p.core.state.update(ctx, p.lockKeys(cmd), func(t *tx) error {
		if cmd.EventID != "" {
			if rec, ok := t.event(cmd.EventID); ok {
				res = rec.Result
				res.Status = models.ResultAlreadyHandled
				return nil
			}
		}

		r, err := p.apply(t, cmd)
		if err != nil {
			t.discard()
			prior, known := p.prior(t, cmd, err)
			if !known {
				return err
			}
			r = prior
		}
		res = r

		if cmd.EventID != "" {
			t.putEvent(cmd.EventID, models.EventRecord{Result: r, ProcessedAt: t.now})
		}
		return nil
	})
	if err != nil {
		logger.Log.Warn("approver command failed",
			zap.String("command", string(cmd.Kind)),
			zap.String("event", cmd.EventID),
			zap.Error(err))
		return models.Result{}, err
	}

	metrics.Decisions.WithLabelValues(string(cmd.Kind), string(res.Status)).Inc()
	logger.Log.Info("approver command handled",
		zap.String("command", string(cmd.Kind)),
		zap.String("event", cmd.EventID),
		zap.String("entity", res.EntityID),
		zap.String("status", string(res.Status)),
		zap.String("state", res.State))
	return res, nil
}

func (p *approvalProcessor) Pending(_ context.Context, actor models.Actor) (models.PendingView, error) {
	if !actor.IsApprover {
		logger.Log.Warn("pending view requested by non-approver", zap.String("user", actor.UserID))
		return models.PendingView{}, apperrors.ErrNotApprover
	}

	view := models.PendingView{
		Submissions: []models.Submission{},
		Withdrawals: []models.WithdrawalRecord{},
	}
	p.core.state.view(func(doc *models.Document) {
		for _, sub := range doc.Submissions {
			view.Submissions = append(view.Submissions, sub.Clone())
		}
		for _, w := range doc.Withdrawals {
			if w.Status == models.WithdrawalPending {
				view.Withdrawals = append(view.Withdrawals, w.Clone())
			}
		}
	})
	slices.SortFunc(view.Submissions, func(a, b models.Submission) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	slices.SortFunc(view.Withdrawals, func(a, b models.WithdrawalRecord) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	return view, nil
}

func validateCommand(cmd models.Command) error {
	switch cmd.Kind {
	case models.CmdDecideSubmission, models.CmdSetCount, models.CmdRequestTransfer, models.CmdVerifyTransfer:
		if cmd.BatchID == "" {
			return apperrors.ErrBatchNotFound
		}
	case models.CmdDecideWithdrawal:
		if cmd.WithdrawalID == "" {
			return apperrors.ErrWithdrawalNotFound
		}
	case models.CmdSetGlobalPrice, models.CmdRemoveGlobalPrice:
		if strings.TrimSpace(cmd.Category) == "" {
			return apperrors.ErrUnknownCategory
		}
	case models.CmdSetCustomPrice, models.CmdClearCustomPrice:
		if cmd.UserID == "" {
			return apperrors.ErrInvalidUserID
		}
		if strings.TrimSpace(cmd.Category) == "" {
			return apperrors.ErrUnknownCategory
		}
	default:
		return apperrors.ErrInvalidCommand
	}
	return nil
}

// lockKeys names every entity the command may touch. The owner of a batch
// or withdrawal never changes, so it is safe to read it before locking.
func (p *approvalProcessor) lockKeys(cmd models.Command) []string {
	var keys []string
	if cmd.EventID != "" {
		keys = append(keys, eventKey(cmd.EventID))
	}

	switch cmd.Kind {
	case models.CmdDecideSubmission, models.CmdSetCount, models.CmdRequestTransfer:
		keys = append(keys, batchKey(cmd.BatchID))
	case models.CmdVerifyTransfer:
		keys = append(keys, batchKey(cmd.BatchID))
		if seller := p.core.sellerOf(cmd.BatchID); seller != "" {
			keys = append(keys, userKey(seller))
		}
	case models.CmdDecideWithdrawal:
		keys = append(keys, withdrawalKey(cmd.WithdrawalID))
		if owner := p.core.withdrawalOwner(cmd.WithdrawalID); owner != "" {
			keys = append(keys, userKey(owner))
		}
	case models.CmdSetGlobalPrice, models.CmdRemoveGlobalPrice:
		keys = append(keys, pricesKey)
	case models.CmdSetCustomPrice, models.CmdClearCustomPrice:
		keys = append(keys, pricesKey, userKey(cmd.UserID))
	}
	return keys
}

func (p *approvalProcessor) apply(t *tx, cmd models.Command) (models.Result, error) {
	switch cmd.Kind {
	case models.CmdDecideSubmission:
		return p.core.decideSubmission(t, cmd.BatchID, cmd.Outcome)
	case models.CmdSetCount:
		return p.core.setCount(t, cmd.BatchID, cmd.Count)
	case models.CmdRequestTransfer:
		return p.core.requestTransfer(t, cmd.BatchID, cmd.Target)
	case models.CmdVerifyTransfer:
		return p.core.verify(t, cmd.BatchID, cmd.Outcome)
	case models.CmdDecideWithdrawal:
		return p.core.decideWithdrawal(t, cmd.WithdrawalID, cmd.Outcome)
	case models.CmdSetGlobalPrice:
		return priceResult(cmd, p.core.setGlobalPrice(t, cmd.Category, cmd.Price))
	case models.CmdRemoveGlobalPrice:
		return priceResult(cmd, p.core.removeGlobalPrice(t, strings.TrimSpace(cmd.Category)))
	case models.CmdSetCustomPrice:
		return priceResult(cmd, p.core.setCustomPrice(t, cmd.UserID, cmd.Category, cmd.Price))
	case models.CmdClearCustomPrice:
		return priceResult(cmd, p.core.clearCustomPrice(t, cmd.UserID, strings.TrimSpace(cmd.Category)))
	}
	return models.Result{}, apperrors.ErrInvalidCommand
}

func priceResult(cmd models.Command, err error) (models.Result, error) {
	if err != nil {
		return models.Result{}, err
	}
	return models.Result{
		Status:   models.ResultApplied,
		EntityID: strings.TrimSpace(cmd.Category),
		State:    string(cmd.Kind),
		Amount:   cmd.Price,
	}, nil
}

// prior turns a "no longer decidable" failure into the outcome already on
// file. An entity the core has never seen stays an error.
func (p *approvalProcessor) prior(t *tx, cmd models.Command, err error) (models.Result, bool) {
	if !errors.Is(err, apperrors.ErrAlreadyDecided) && !errors.Is(err, apperrors.ErrNotFound) {
		return models.Result{}, false
	}

	handled := models.Result{Status: models.ResultAlreadyHandled, Amount: decimal.Zero}
	switch cmd.Kind {
	case models.CmdDecideSubmission, models.CmdSetCount, models.CmdRequestTransfer, models.CmdVerifyTransfer:
		handled.EntityID = cmd.BatchID
		if sub, ok := t.submission(cmd.BatchID); ok {
			handled.State = string(sub.Status)
			handled.Ownership = string(sub.Ownership.Status)
			return handled, true
		}
		if o, ok := t.outcome(cmd.BatchID); ok {
			handled.State = string(o.Status)
			handled.Amount = o.Credited
			if o.Status == models.StatusSettled {
				handled.Ownership = string(models.OwnershipVerified)
			}
			return handled, true
		}
	case models.CmdDecideWithdrawal:
		if w, ok := t.withdrawal(cmd.WithdrawalID); ok {
			handled.EntityID = w.ID
			handled.State = string(w.Status)
			handled.Amount = w.Paid
			return handled, true
		}
	case models.CmdRemoveGlobalPrice, models.CmdClearCustomPrice:
		if errors.Is(err, apperrors.ErrInvalidTransition) {
			handled.EntityID = strings.TrimSpace(cmd.Category)
			handled.State = string(cmd.Kind)
			return handled, true
		}
	}
	return models.Result{}, false
}

func (c *Core) sellerOf(batchID string) string {
	var seller string
	c.state.view(func(doc *models.Document) {
		if sub, ok := doc.Submissions[batchID]; ok {
			seller = sub.SellerID
		} else if o, ok := doc.Outcomes[batchID]; ok {
			seller = o.SellerID
		}
	})
	return seller
}

func (c *Core) withdrawalOwner(id string) string {
	var owner string
	c.state.view(func(doc *models.Document) {
		if w, ok := doc.Withdrawals[id]; ok {
			owner = w.UserID
		}
	})
	return owner
}

// Typed helpers for callers that build commands in code.

func Decide(ctx context.Context, p ApprovalProcessor, actor models.Actor, batchID string, outcome models.Outcome) (models.Result, error) {
	return p.Handle(ctx, actor, models.DecideSubmission(batchID, outcome))
}

func SetCount(ctx context.Context, p ApprovalProcessor, actor models.Actor, batchID string, count int) (models.Result, error) {
	return p.Handle(ctx, actor, models.SetCount(batchID, count))
}

func RequestTransfer(ctx context.Context, p ApprovalProcessor, actor models.Actor, batchID, target string) (models.Result, error) {
	return p.Handle(ctx, actor, models.RequestTransfer(batchID, target))
}

func Verify(ctx context.Context, p ApprovalProcessor, actor models.Actor, batchID string, outcome models.Outcome) (models.Result, error) {
	return p.Handle(ctx, actor, models.VerifyTransfer(batchID, outcome))
}

func DecideWithdrawal(ctx context.Context, p ApprovalProcessor, actor models.Actor, withdrawalID string, outcome models.Outcome) (models.Result, error) {
	return p.Handle(ctx, actor, models.DecideWithdrawal(withdrawalID, outcome))
}
