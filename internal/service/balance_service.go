package service

import (
	"context"
	"slices"
	"strings"

	"github.com/a2sh3r/groupmart/internal/logger"
	"github.com/a2sh3r/groupmart/internal/models"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type BalanceService interface {
	GetUserBalance(ctx context.Context, userID string) (models.Balance, error)
	Price(ctx context.Context, userID, category string) (decimal.Decimal, error)
	PriceList(ctx context.Context, userID string) ([]models.PriceEntry, error)
	SetCurrency(ctx context.Context, userID, currency string) (models.Balance, error)
}

type balanceService struct {
	core *Core
}

func NewBalanceService(core *Core) BalanceService {
	return &balanceService{core: core}
}

// GetUserBalance reports zeros for a user that has never been credited.
// The current balance is also shown in the user's chosen currency.
func (s *balanceService) GetUserBalance(_ context.Context, userID string) (models.Balance, error) {
	var u models.User
	s.core.state.view(func(doc *models.Document) {
		u = doc.Users[userID]
	})
	if u.ID == "" {
		u = models.NewUser(userID, s.core.now())
	}
	balance := u.Balances()
	balance.Display = s.core.display(balance.Current, u.DisplayCurrency())
	return balance, nil
}

func (s *balanceService) SetCurrency(ctx context.Context, userID, currency string) (models.Balance, error) {
	var u models.User
	err := s.core.state.update(ctx, []string{userKey(userID)}, func(t *tx) error {
		var err error
		u, err = s.core.setCurrency(t, userID, currency)
		return err
	})
	if err != nil {
		return models.Balance{}, err
	}

	logger.Log.Info("display currency changed",
		zap.String("user", userID),
		zap.String("currency", string(u.Currency)))
	balance := u.Balances()
	balance.Display = s.core.display(balance.Current, u.DisplayCurrency())
	return balance, nil
}

func (s *balanceService) Price(_ context.Context, userID, category string) (decimal.Decimal, error) {
	t := s.core.state.begin()
	return s.core.resolvePrice(t, userID, strings.TrimSpace(category))
}

// PriceList merges the global table with the user's overrides.
func (s *balanceService) PriceList(_ context.Context, userID string) ([]models.PriceEntry, error) {
	var out []models.PriceEntry
	currency := models.BaseCurrency
	s.core.state.view(func(doc *models.Document) {
		currency = doc.Users[userID].DisplayCurrency()
		custom := doc.Users[userID].CustomPrices
		for category, price := range doc.GlobalPrices {
			entry := models.PriceEntry{Category: category, Price: price}
			if p, ok := custom[category]; ok {
				entry.Price, entry.Custom = p, true
			}
			out = append(out, entry)
		}
		for category, price := range custom {
			if _, ok := doc.GlobalPrices[category]; !ok {
				out = append(out, models.PriceEntry{Category: category, Price: price, Custom: true})
			}
		}
	})
	for i := range out {
		out[i].Display = s.core.display(out[i].Price, currency)
	}
	slices.SortFunc(out, func(a, b models.PriceEntry) int {
		return strings.Compare(a.Category, b.Category)
	})
	return out, nil
}
