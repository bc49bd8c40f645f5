package common

import "errors"

// Store error taxonomy. Stores wrap these with context via %w; handlers map
// them onto HTTP statuses in WriteError.
var (
	ErrNotFound            = errors.New("not found")
	ErrDuplicateRequest    = errors.New("duplicate request")
	ErrAlreadyInCollection = errors.New("already in collection")
	ErrSelfTarget          = errors.New("cannot target yourself")
)
