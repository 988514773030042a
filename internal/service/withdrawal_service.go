package service

import (
	"context"
	"slices"
	"strings"

	"github.com/a2sh3r/groupmart/internal/apperrors"
	"github.com/a2sh3r/groupmart/internal/logger"
	"github.com/a2sh3r/groupmart/internal/models"
	"github.com/a2sh3r/groupmart/internal/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type WithdrawalService interface {
	RequestWithdrawal(ctx context.Context, userID string, req models.WithdrawalRequest) (models.WithdrawalRecord, error)
	History(ctx context.Context, userID string) ([]models.WithdrawalRecord, error)
}

type withdrawalService struct {
	core *Core
}

func NewWithdrawalService(core *Core) WithdrawalService {
	return &withdrawalService{core: core}
}

func (s *withdrawalService) RequestWithdrawal(ctx context.Context, userID string, req models.WithdrawalRequest) (models.WithdrawalRecord, error) {
	if userID == "" {
		return models.WithdrawalRecord{}, apperrors.ErrInvalidUserID
	}
	if !utils.IsKnownMethod(req.Method) {
		return models.WithdrawalRecord{}, apperrors.ErrUnknownMethod
	}
	if !utils.IsValidAddress(req.Method, req.Address) {
		return models.WithdrawalRecord{}, apperrors.ErrInvalidAddress
	}
	if !req.Amount.IsPositive() {
		return models.WithdrawalRecord{}, apperrors.ErrInvalidAmount
	}

	var record models.WithdrawalRecord
	err := s.core.state.update(ctx, []string{userKey(userID)}, func(t *tx) error {
		var err error
		record, err = s.core.requestWithdrawal(t, userID, req)
		return err
	})
	if err != nil {
		return models.WithdrawalRecord{}, err
	}

	logger.Log.Info("withdrawal requested",
		zap.String("user", userID),
		zap.String("withdrawal", record.ID),
		zap.String("method", string(record.Method)),
		zap.String("amount", record.Amount.String()))
	return record, nil
}

// History returns the user's withdrawals, newest first.
func (s *withdrawalService) History(_ context.Context, userID string) ([]models.WithdrawalRecord, error) {
	var out []models.WithdrawalRecord
	s.core.state.view(func(doc *models.Document) {
		u, ok := doc.Users[userID]
		if !ok {
			return
		}
		out = make([]models.WithdrawalRecord, 0, len(u.WithdrawalIDs))
		for _, id := range u.WithdrawalIDs {
			if w, ok := doc.Withdrawals[id]; ok {
				out = append(out, w.Clone())
			}
		}
	})
	slices.SortStableFunc(out, func(a, b models.WithdrawalRecord) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return out, nil
}

func (c *Core) requestWithdrawal(t *tx, userID string, req models.WithdrawalRequest) (models.WithdrawalRecord, error) {
	u, ok := t.user(userID)
	if !ok || req.Amount.GreaterThan(u.Balance) {
		return models.WithdrawalRecord{}, apperrors.ErrInsufficientFunds
	}

	record := models.WithdrawalRecord{
		ID:        uuid.NewString(),
		UserID:    userID,
		Method:    req.Method,
		Address:   normalizeAddress(req.Method, req.Address),
		Amount:    req.Amount,
		Paid:      decimal.Zero,
		Status:    models.WithdrawalPending,
		CreatedAt: t.now,
	}
	u.WithdrawalIDs = append(u.WithdrawalIDs, record.ID)
	t.putUser(u)
	t.putWithdrawal(record)
	t.notify(models.Notification{
		Recipient:    models.ApproverRecipient,
		Kind:         models.NoteWithdrawalRequested,
		WithdrawalID: record.ID,
		Fields: map[string]string{
			"user":    userID,
			"method":  string(record.Method),
			"address": record.Address,
			"amount":  record.Amount.String(),
			"balance": u.Balance.String(),
		},
	})
	return record, nil
}

// decideWithdrawal settles a pending request. Approval debits the balance
// as it is now, which may be less than the amount requested.
func (c *Core) decideWithdrawal(t *tx, id string, outcome models.Outcome) (models.Result, error) {
	if outcome != models.OutcomeApprove && outcome != models.OutcomeReject {
		return models.Result{}, apperrors.ErrInvalidOutcome
	}
	w, ok := t.withdrawal(id)
	if !ok {
		return models.Result{}, apperrors.ErrWithdrawalNotFound
	}
	if w.Status != models.WithdrawalPending {
		return models.Result{}, apperrors.ErrInvalidTransition
	}

	decidedAt := t.now
	w.DecidedAt = &decidedAt
	note := models.Notification{Recipient: w.UserID, WithdrawalID: w.ID}

	if outcome == models.OutcomeReject {
		w.Status = models.WithdrawalRejected
		note.Kind = models.NoteWithdrawalRejected
	} else {
		w.Paid = c.debit(t, w.UserID, w.Amount)
		w.Status = models.WithdrawalApproved
		note.Kind = models.NoteWithdrawalApproved
		note.Fields = map[string]string{
			"requested": w.Amount.String(),
			"paid":      w.Paid.String(),
			"method":    string(w.Method),
		}
	}
	t.putWithdrawal(w)
	t.notify(note)

	return models.Result{
		Status:   models.ResultApplied,
		EntityID: w.ID,
		State:    string(w.Status),
		Amount:   w.Paid,
	}, nil
}

func normalizeAddress(method models.WithdrawalMethod, address string) string {
	address = strings.TrimSpace(address)
	if method == models.MethodCard {
		address = strings.NewReplacer(" ", "", "-", "").Replace(address)
	}
	return address
}
