package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Currency is how a user wants amounts shown. The ledger itself is kept in
// BaseCurrency.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyINR Currency = "INR"

	BaseCurrency = CurrencyUSD
)

func ParseCurrency(s string) (Currency, bool) {
	switch c := Currency(strings.ToUpper(strings.TrimSpace(s))); c {
	case CurrencyUSD, CurrencyINR:
		return c, true
	}
	return "", false
}

// Money is an amount converted for display.
type Money struct {
	Currency Currency        `json:"currency"`
	Amount   decimal.Decimal `json:"amount"`
}
