package service

import (
	"github.com/a2sh3r/groupmart/internal/metrics"
	"github.com/shopspring/decimal"
)

func (c *Core) credit(t *tx, userID string, amount decimal.Decimal) {
	u := t.userOrNew(userID)
	u.Balance = u.Balance.Add(amount)
	u.Credited = u.Credited.Add(amount)
	t.putUser(u)
	t.after(func() { metrics.Credited.Add(amount.InexactFloat64()) })
}

// debit takes at most the current balance and returns what was taken.
func (c *Core) debit(t *tx, userID string, amount decimal.Decimal) decimal.Decimal {
	u := t.userOrNew(userID)
	paid := decimal.Min(amount, u.Balance)
	if paid.IsNegative() {
		paid = decimal.Zero
	}
	u.Balance = u.Balance.Sub(paid)
	u.Withdrawn = u.Withdrawn.Add(paid)
	t.putUser(u)
	t.after(func() { metrics.Debited.Add(paid.InexactFloat64()) })
	return paid
}
