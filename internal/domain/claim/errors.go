package claim

import "errors"

var (
	ErrClaimNotFound      = errors.New("claim not found")
	ErrClaimTypeNotFound  = errors.New("claim type not found")
	ErrAlreadyProcessed   = errors.New("claim already processed")
	ErrInvalidAmount      = errors.New("amount must be greater than zero")
	ErrAmountExceedsLimit = errors.New("amount exceeds maximum allowed for this claim type")
	ErrClaimDateInFuture  = errors.New("claim date cannot be in the future")
	ErrReceiptRequired    = errors.New("receipt is required for this claim type")
)
