package service

import "errors"

// Validation errors surfaced to the transport layer. Anything wrapping one
// of these is a bad request; a *calculator.ConsistencyError means the stored
// data and the request disagree about which accounts exist.
var (
	ErrEmptyName              = errors.New("name must not be empty")
	ErrInvalidAccountType     = errors.New("account type must be personal or clearing")
	ErrInvalidTransactionType = errors.New("transaction type must be purchase or transfer")
	ErrNonPositiveValue       = errors.New("transaction value must be greater than zero")
	ErrNegativeWeight         = errors.New("share weights must not be negative")
	ErrPersonalClearingShares = errors.New("personal accounts cannot have clearing shares")
)
