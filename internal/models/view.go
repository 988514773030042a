package models

import "github.com/shopspring/decimal"

// PendingView is what the approver panel shows.
type PendingView struct {
	Submissions []Submission       `json:"submissions"`
	Withdrawals []WithdrawalRecord `json:"withdrawals"`
}

type SellerSubmissions struct {
	Active   []Submission        `json:"active"`
	Finished []SubmissionOutcome `json:"finished"`
}

type PriceEntry struct {
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
	Custom   bool            `json:"custom"`
	Display  Money           `json:"display"`
}
