package apperrors

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by the core wraps exactly one of them.
var (
	ErrValidation          = errors.New("invalid input")
	ErrNotFound            = errors.New("not found")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrAlreadyDecided      = errors.New("already decided")
	ErrForbidden           = errors.New("not authorized")
	ErrPersistence         = errors.New("persistence failure")
)

var (
	ErrNoLinks         = fmt.Errorf("%w: at least one link is required", ErrValidation)
	ErrTooManyLinks    = fmt.Errorf("%w: too many links in one submission", ErrValidation)
	ErrInvalidLink     = fmt.Errorf("%w: malformed invite link", ErrValidation)
	ErrDuplicateLink   = fmt.Errorf("%w: link already submitted", ErrValidation)
	ErrFolderLink      = fmt.Errorf("%w: folder submissions take exactly one folder link", ErrValidation)
	ErrInvalidKind     = fmt.Errorf("%w: unknown submission kind", ErrValidation)
	ErrUnknownCategory = fmt.Errorf("%w: unknown category", ErrValidation)
	ErrInvalidPrice    = fmt.Errorf("%w: price must be positive", ErrValidation)
	ErrInvalidCount    = fmt.Errorf("%w: count must be a positive integer", ErrValidation)
	ErrInvalidTarget   = fmt.Errorf("%w: transfer target is required", ErrValidation)
	ErrInvalidOutcome  = fmt.Errorf("%w: unknown decision outcome", ErrValidation)
	ErrInvalidCommand  = fmt.Errorf("%w: unknown command", ErrValidation)
	ErrUnknownMethod   = fmt.Errorf("%w: unknown withdrawal method", ErrValidation)
	ErrInvalidAddress  = fmt.Errorf("%w: address does not match withdrawal method", ErrValidation)
	ErrInvalidAmount   = fmt.Errorf("%w: amount must be positive", ErrValidation)
	ErrInvalidUserID   = fmt.Errorf("%w: user id is required", ErrValidation)
	ErrDraftExists     = fmt.Errorf("%w: a draft is already open", ErrValidation)
	ErrInvalidCurrency = fmt.Errorf("%w: unsupported currency", ErrValidation)

	ErrInsufficientFunds = fmt.Errorf("%w: requested amount exceeds balance", ErrInsufficientBalance)

	ErrBatchNotFound      = fmt.Errorf("%w: batch", ErrNotFound)
	ErrWithdrawalNotFound = fmt.Errorf("%w: withdrawal", ErrNotFound)
	ErrDraftNotFound      = fmt.Errorf("%w: draft", ErrNotFound)
	ErrDraftExpired       = fmt.Errorf("%w: draft expired", ErrNotFound)

	ErrInvalidTransition = fmt.Errorf("%w: not in a decidable state", ErrAlreadyDecided)

	ErrNotSeller   = fmt.Errorf("%w: only the seller may do this", ErrForbidden)
	ErrNotApprover = fmt.Errorf("%w: approver only", ErrForbidden)

	ErrCorruptDocument = fmt.Errorf("%w: stored document is corrupt", ErrPersistence)
	ErrSaveFailed      = fmt.Errorf("%w: could not save state", ErrPersistence)
)

// Transport level errors.
var (
	ErrInvalidRequest    = errors.New("invalid request")
	ErrInternalServer    = errors.New("internal server error")
	ErrInvalidAuthHeader = errors.New("invalid or missing Authorization header")
	ErrInvalidToken      = errors.New("invalid or expired token")
)

// Stable reason codes returned to callers.
const (
	CodeInvalidInput        = "invalid_input"
	CodeNotFound            = "not_found"
	CodeAlreadyHandled      = "already_handled"
	CodeInsufficientBalance = "insufficient_balance"
	CodeForbidden           = "forbidden"
	CodePersistence         = "persistence_failure"
	CodeInternal            = "internal_error"
)

func Code(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrValidation), errors.Is(err, ErrInvalidRequest):
		return CodeInvalidInput
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrAlreadyDecided):
		return CodeAlreadyHandled
	case errors.Is(err, ErrInsufficientBalance):
		return CodeInsufficientBalance
	case errors.Is(err, ErrForbidden):
		return CodeForbidden
	case errors.Is(err, ErrPersistence):
		return CodePersistence
	default:
		return CodeInternal
	}
}
