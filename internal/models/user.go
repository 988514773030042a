package models

import (
	"maps"
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// User is created lazily on the first interaction and never deleted.
type User struct {
	ID             string                     `json:"id"`
	Balance        decimal.Decimal            `json:"balance"`
	Credited       decimal.Decimal            `json:"credited"`
	Withdrawn      decimal.Decimal            `json:"withdrawn"`
	Currency       Currency                   `json:"currency,omitempty"`
	CustomPrices   map[string]decimal.Decimal `json:"custom_prices,omitempty"`
	WithdrawalIDs  []string                   `json:"withdrawal_ids,omitempty"`
	SubmittedLinks map[string]string          `json:"submitted_links,omitempty"`
	CreatedAt      time.Time                  `json:"created_at"`
}

func NewUser(id string, now time.Time) User {
	return User{
		ID:        id,
		Balance:   decimal.Zero,
		Credited:  decimal.Zero,
		Withdrawn: decimal.Zero,
		CreatedAt: now,
	}
}

func (u User) Clone() User {
	u.CustomPrices = maps.Clone(u.CustomPrices)
	u.WithdrawalIDs = slices.Clone(u.WithdrawalIDs)
	u.SubmittedLinks = maps.Clone(u.SubmittedLinks)
	return u
}

// DisplayCurrency is the user's chosen currency, BaseCurrency until one is set.
func (u User) DisplayCurrency() Currency {
	if u.Currency == "" {
		return BaseCurrency
	}
	return u.Currency
}

func (u User) HasSubmitted(link string) bool {
	_, ok := u.SubmittedLinks[link]
	return ok
}
