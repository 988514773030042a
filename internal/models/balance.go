package models

import (
	"github.com/shopspring/decimal"
)

type Balance struct {
	Current   decimal.Decimal `json:"current"`
	Credited  decimal.Decimal `json:"credited"`
	Withdrawn decimal.Decimal `json:"withdrawn"`
	Display   Money           `json:"display"`
}

func (u User) Balances() Balance {
	return Balance{
		Current:   u.Balance,
		Credited:  u.Credited,
		Withdrawn: u.Withdrawn,
		Display:   Money{Currency: BaseCurrency, Amount: u.Balance},
	}
}
