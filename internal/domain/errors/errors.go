package errors

import "errors"

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidDateRange   = errors.New("start date is after end date")
	ErrInvalidAmount      = errors.New("amount must be positive")
	ErrInvalidQuantity    = errors.New("quantity must be positive")
	ErrOrderNotEditable   = errors.New("order is no longer editable")
	ErrInvalidTransition  = errors.New("status transition not allowed")
	ErrEmptyOrder         = errors.New("order has no lines")
)
