package leave

import "errors"

var (
	ErrLeaveNotFound       = errors.New("leave request not found")
	ErrLeaveTypeNotFound   = errors.New("leave type not found")
	ErrBalanceNotFound     = errors.New("leave balance not found")
	ErrInsufficientBalance = errors.New("insufficient leave balance")
	ErrAlreadyProcessed    = errors.New("leave request already processed")
	ErrInvalidDateRange    = errors.New("start date cannot be after end date")
	ErrStartDateInPast     = errors.New("cannot apply for leave in the past")
)
