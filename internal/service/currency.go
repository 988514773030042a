package service

import (
	"github.com/a2sh3r/groupmart/internal/apperrors"
	"github.com/a2sh3r/groupmart/internal/models"
	"github.com/shopspring/decimal"
)

// display converts a ledger amount into the given currency, rounded to cents.
func (c *Core) display(amount decimal.Decimal, currency models.Currency) models.Money {
	if currency == models.CurrencyINR {
		return models.Money{Currency: currency, Amount: amount.Mul(c.opts.INRRate).Round(2)}
	}
	return models.Money{Currency: models.BaseCurrency, Amount: amount}
}

func (c *Core) setCurrency(t *tx, userID, raw string) (models.User, error) {
	if userID == "" {
		return models.User{}, apperrors.ErrInvalidUserID
	}
	currency, ok := models.ParseCurrency(raw)
	if !ok {
		return models.User{}, apperrors.ErrInvalidCurrency
	}
	u := t.userOrNew(userID)
	u.Currency = currency
	t.putUser(u)
	return u, nil
}
