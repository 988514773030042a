package models

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

type SubmissionKind string

const (
	KindSingle SubmissionKind = "single"
	KindFolder SubmissionKind = "folder"
)

func (k SubmissionKind) Valid() bool {
	return k == KindSingle || k == KindFolder
}

type SubmissionStatus string

const (
	StatusPending               SubmissionStatus = "pending"
	StatusApprovedWaitingCount  SubmissionStatus = "approved_waiting_count"
	StatusApprovedWaitingTarget SubmissionStatus = "approved_waiting_target"
	StatusTransferInProgress    SubmissionStatus = "transfer_in_progress"
	StatusSettled               SubmissionStatus = "settled"
	StatusRejected              SubmissionStatus = "rejected"
	StatusAbandoned             SubmissionStatus = "abandoned"
)

var submissionTransitions = map[SubmissionStatus][]SubmissionStatus{
	StatusPending:               {StatusRejected, StatusApprovedWaitingCount, StatusApprovedWaitingTarget},
	StatusApprovedWaitingCount:  {StatusApprovedWaitingTarget, StatusAbandoned},
	StatusApprovedWaitingTarget: {StatusTransferInProgress, StatusAbandoned},
	StatusTransferInProgress:    {StatusSettled, StatusAbandoned},
}

func (s SubmissionStatus) CanTransitionTo(next SubmissionStatus) bool {
	return slices.Contains(submissionTransitions[s], next)
}

func (s SubmissionStatus) Terminal() bool {
	return s == StatusSettled || s == StatusRejected || s == StatusAbandoned
}

type OwnershipStatus string

const (
	OwnershipNone        OwnershipStatus = "none"
	OwnershipRequested   OwnershipStatus = "requested"
	OwnershipTransferred OwnershipStatus = "transferred"
	OwnershipVerified    OwnershipStatus = "verified"
	OwnershipFailed      OwnershipStatus = "failed"
)

var ownershipTransitions = map[OwnershipStatus][]OwnershipStatus{
	OwnershipNone:        {OwnershipRequested},
	OwnershipRequested:   {OwnershipTransferred},
	OwnershipTransferred: {OwnershipVerified, OwnershipFailed},
	OwnershipFailed:      {OwnershipTransferred},
}

func (s OwnershipStatus) CanTransitionTo(next OwnershipStatus) bool {
	return slices.Contains(ownershipTransitions[s], next)
}

type Ownership struct {
	Status          OwnershipStatus `json:"status"`
	TargetReference string          `json:"target_reference,omitempty"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// Submission is a batch of links reviewed as a unit. It stays in the
// pending set until it reaches a terminal status.
type Submission struct {
	ID             string           `json:"id"`
	SellerID       string           `json:"seller_id"`
	Links          []string         `json:"links"`
	Category       string           `json:"category"`
	Kind           SubmissionKind   `json:"kind"`
	EstimatedCount int              `json:"estimated_count"`
	Status         SubmissionStatus `json:"status"`
	Ownership      Ownership        `json:"ownership"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

func (s Submission) Clone() Submission {
	s.Links = slices.Clone(s.Links)
	return s
}

// SubmissionOutcome remembers how a batch left the pending set.
type SubmissionOutcome struct {
	BatchID   string           `json:"batch_id"`
	SellerID  string           `json:"seller_id"`
	Status    SubmissionStatus `json:"status"`
	Credited  decimal.Decimal  `json:"credited"`
	DecidedAt time.Time        `json:"decided_at"`
}

type SubmitRequest struct {
	Links    []string       `json:"links"`
	Category string         `json:"category"`
	Kind     SubmissionKind `json:"kind"`
}

// Draft is a submission the seller is still assembling.
type Draft struct {
	SellerID     string         `json:"seller_id"`
	Category     string         `json:"category"`
	Kind         SubmissionKind `json:"kind"`
	Links        []string       `json:"links"`
	StartedAt    time.Time      `json:"started_at"`
	LastActivity time.Time      `json:"last_activity"`
}

func (d Draft) Clone() Draft {
	d.Links = slices.Clone(d.Links)
	return d
}

func (d Draft) Expired(now time.Time, timeout time.Duration) bool {
	return timeout > 0 && now.Sub(d.LastActivity) >= timeout
}
