package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type WithdrawalStatus string

const (
	WithdrawalPending  WithdrawalStatus = "pending"
	WithdrawalApproved WithdrawalStatus = "approved"
	WithdrawalRejected WithdrawalStatus = "rejected"
)

type WithdrawalMethod string

const (
	MethodUPI       WithdrawalMethod = "upi"
	MethodUSDTTRC20 WithdrawalMethod = "usdt_trc20"
	MethodUSDTBEP20 WithdrawalMethod = "usdt_bep20"
	MethodPayPal    WithdrawalMethod = "paypal"
	MethodCard      WithdrawalMethod = "card"
)

type WithdrawalRequest struct {
	Method  WithdrawalMethod `json:"method"`
	Address string           `json:"address"`
	Amount  decimal.Decimal  `json:"amount"`
}

// WithdrawalRecord is kept forever. Paid holds the amount actually debited
// on approval, which can be lower than Amount if the balance shrank meanwhile.
type WithdrawalRecord struct {
	ID        string           `json:"id"`
	UserID    string           `json:"user_id"`
	Method    WithdrawalMethod `json:"method"`
	Address   string           `json:"address"`
	Amount    decimal.Decimal  `json:"amount"`
	Paid      decimal.Decimal  `json:"paid"`
	Status    WithdrawalStatus `json:"status"`
	CreatedAt time.Time        `json:"created_at"`
	DecidedAt *time.Time       `json:"decided_at,omitempty"`
}

func (w WithdrawalRecord) Clone() WithdrawalRecord {
	if w.DecidedAt != nil {
		at := *w.DecidedAt
		w.DecidedAt = &at
	}
	return w
}
