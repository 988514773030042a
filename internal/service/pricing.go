package service

import (
	"strings"

	"github.com/a2sh3r/groupmart/internal/apperrors"
	"github.com/a2sh3r/groupmart/internal/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// resolvePrice returns the seller's override for the category, or the
// global price. A category present in neither table is unknown.
func (c *Core) resolvePrice(t *tx, userID, category string) (decimal.Decimal, error) {
	if u, ok := t.user(userID); ok {
		if price, ok := u.CustomPrices[category]; ok {
			return price, nil
		}
	}
	if price, ok := t.globalPrice(category); ok {
		return price, nil
	}
	return decimal.Zero, apperrors.ErrUnknownCategory
}

// settlementPrice never fails: the category was validated at submission,
// so a price removed since then falls back to the configured default.
func (c *Core) settlementPrice(t *tx, userID, category string) decimal.Decimal {
	price, err := c.resolvePrice(t, userID, category)
	if err != nil {
		logger.Log.Warn("category has no price any more, using fallback",
			zap.String("user", userID),
			zap.String("category", category),
			zap.String("fallback", c.opts.FallbackPrice.String()))
		return c.opts.FallbackPrice
	}
	return price
}

func (c *Core) setGlobalPrice(t *tx, category string, price decimal.Decimal) error {
	category = strings.TrimSpace(category)
	if category == "" {
		return apperrors.ErrUnknownCategory
	}
	if !price.IsPositive() {
		return apperrors.ErrInvalidPrice
	}
	t.putGlobalPrice(category, price)
	return nil
}

func (c *Core) removeGlobalPrice(t *tx, category string) error {
	if _, ok := t.globalPrice(category); !ok {
		return apperrors.ErrInvalidTransition
	}
	t.deleteGlobalPrice(category)
	return nil
}

func (c *Core) setCustomPrice(t *tx, userID, category string, price decimal.Decimal) error {
	if userID == "" {
		return apperrors.ErrInvalidUserID
	}
	category = strings.TrimSpace(category)
	if category == "" {
		return apperrors.ErrUnknownCategory
	}
	if !price.IsPositive() {
		return apperrors.ErrInvalidPrice
	}
	u := t.userOrNew(userID)
	if u.CustomPrices == nil {
		u.CustomPrices = make(map[string]decimal.Decimal)
	}
	u.CustomPrices[category] = price
	t.putUser(u)
	return nil
}

func (c *Core) clearCustomPrice(t *tx, userID, category string) error {
	u, ok := t.user(userID)
	if !ok {
		return apperrors.ErrInvalidTransition
	}
	if _, ok := u.CustomPrices[category]; !ok {
		return apperrors.ErrInvalidTransition
	}
	delete(u.CustomPrices, category)
	t.putUser(u)
	return nil
}
