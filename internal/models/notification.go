package models

type NotificationKind string

const (
	NoteSubmissionReceived  NotificationKind = "submission_received"
	NoteSubmissionApproved  NotificationKind = "submission_approved"
	NoteSubmissionRejected  NotificationKind = "submission_rejected"
	NoteCountSet            NotificationKind = "count_set"
	NoteTransferRequested   NotificationKind = "transfer_requested"
	NoteTransferConfirmed   NotificationKind = "transfer_confirmed"
	NoteTransferFailed      NotificationKind = "transfer_failed"
	NoteSubmissionSettled   NotificationKind = "submission_settled"
	NoteSubmissionAbandoned NotificationKind = "submission_abandoned"
	NoteDraftExpired        NotificationKind = "draft_expired"
	NoteWithdrawalRequested NotificationKind = "withdrawal_requested"
	NoteWithdrawalApproved  NotificationKind = "withdrawal_approved"
	NoteWithdrawalRejected  NotificationKind = "withdrawal_rejected"
)

// ApproverRecipient addresses the approver instead of a concrete user.
const ApproverRecipient = "approver"

type Notification struct {
	Recipient    string            `json:"recipient"`
	Kind         NotificationKind  `json:"kind"`
	BatchID      string            `json:"batch_id,omitempty"`
	WithdrawalID string            `json:"withdrawal_id,omitempty"`
	Fields       map[string]string `json:"fields,omitempty"`
}
