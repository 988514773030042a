package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const DocumentVersion = 1

// Document is the whole persisted state.
type Document struct {
	Version         int                          `json:"version"`
	Users           map[string]User              `json:"users"`
	Submissions     map[string]Submission        `json:"submissions"`
	Outcomes        map[string]SubmissionOutcome `json:"outcomes"`
	Withdrawals     map[string]WithdrawalRecord  `json:"withdrawals"`
	Drafts          map[string]Draft             `json:"drafts"`
	GlobalPrices    map[string]decimal.Decimal   `json:"global_prices"`
	ProcessedEvents map[string]EventRecord       `json:"processed_events"`
	UpdatedAt       time.Time                    `json:"updated_at"`
}

func NewDocument() *Document {
	d := &Document{Version: DocumentVersion}
	d.Normalize()
	return d
}

// Normalize fills nil maps left by older or partial documents.
func (d *Document) Normalize() {
	if d.Version == 0 {
		d.Version = DocumentVersion
	}
	if d.Users == nil {
		d.Users = make(map[string]User)
	}
	if d.Submissions == nil {
		d.Submissions = make(map[string]Submission)
	}
	if d.Outcomes == nil {
		d.Outcomes = make(map[string]SubmissionOutcome)
	}
	if d.Withdrawals == nil {
		d.Withdrawals = make(map[string]WithdrawalRecord)
	}
	if d.Drafts == nil {
		d.Drafts = make(map[string]Draft)
	}
	if d.GlobalPrices == nil {
		d.GlobalPrices = make(map[string]decimal.Decimal)
	}
	if d.ProcessedEvents == nil {
		d.ProcessedEvents = make(map[string]EventRecord)
	}
}

func (d *Document) Empty() bool {
	return len(d.Users) == 0 && len(d.Submissions) == 0 && len(d.Outcomes) == 0 &&
		len(d.Withdrawals) == 0 && len(d.Drafts) == 0 && len(d.GlobalPrices) == 0
}
