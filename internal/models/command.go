package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Actor is the caller identity supplied by the transport.
type Actor struct {
	UserID     string
	IsApprover bool
}

type CommandKind string

const (
	CmdDecideSubmission  CommandKind = "decide_submission"
	CmdSetCount          CommandKind = "set_count"
	CmdRequestTransfer   CommandKind = "request_transfer"
	CmdVerifyTransfer    CommandKind = "verify_transfer"
	CmdDecideWithdrawal  CommandKind = "decide_withdrawal"
	CmdSetGlobalPrice    CommandKind = "set_global_price"
	CmdRemoveGlobalPrice CommandKind = "remove_global_price"
	CmdSetCustomPrice    CommandKind = "set_custom_price"
	CmdClearCustomPrice  CommandKind = "clear_custom_price"
)

type Outcome string

const (
	OutcomeApprove  Outcome = "approve"
	OutcomeReject   Outcome = "reject"
	OutcomeVerified Outcome = "verified"
	OutcomeFailed   Outcome = "failed"
)

// Command is one approver decision. EventID identifies the transport
// delivery so that a redelivered click is applied at most once.
type Command struct {
	Kind         CommandKind     `json:"kind"`
	EventID      string          `json:"event_id,omitempty"`
	BatchID      string          `json:"batch_id,omitempty"`
	WithdrawalID string          `json:"withdrawal_id,omitempty"`
	UserID       string          `json:"user_id,omitempty"`
	Outcome      Outcome         `json:"outcome,omitempty"`
	Count        int             `json:"count,omitempty"`
	Target       string          `json:"target,omitempty"`
	Category     string          `json:"category,omitempty"`
	Price        decimal.Decimal `json:"price"`
}

type ResultStatus string

const (
	ResultApplied        ResultStatus = "applied"
	ResultAlreadyHandled ResultStatus = "already_handled"
)

type Result struct {
	Status    ResultStatus    `json:"status"`
	EntityID  string          `json:"entity_id,omitempty"`
	State     string          `json:"state,omitempty"`
	Ownership string          `json:"ownership,omitempty"`
	Amount    decimal.Decimal `json:"amount"`
}

type EventRecord struct {
	Result      Result    `json:"result"`
	ProcessedAt time.Time `json:"processed_at"`
}

func DecideSubmission(batchID string, outcome Outcome) Command {
	return Command{Kind: CmdDecideSubmission, BatchID: batchID, Outcome: outcome}
}

func SetCount(batchID string, count int) Command {
	return Command{Kind: CmdSetCount, BatchID: batchID, Count: count}
}

func RequestTransfer(batchID, target string) Command {
	return Command{Kind: CmdRequestTransfer, BatchID: batchID, Target: target}
}

func VerifyTransfer(batchID string, outcome Outcome) Command {
	return Command{Kind: CmdVerifyTransfer, BatchID: batchID, Outcome: outcome}
}

func DecideWithdrawal(withdrawalID string, outcome Outcome) Command {
	return Command{Kind: CmdDecideWithdrawal, WithdrawalID: withdrawalID, Outcome: outcome}
}

func (c Command) WithEvent(eventID string) Command {
	c.EventID = eventID
	return c
}
