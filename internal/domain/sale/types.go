package sale

import "errors"

var (
	ErrNegativeAmount  = errors.New("money amounts cannot be negative")
	ErrEmptyTitle      = errors.New("title is required when no product is referenced")
	ErrPlatformTooLong = errors.New("platform exceeds maximum length")
	ErrNotesTooLong    = errors.New("notes exceed maximum length")
	ErrOwnerMismatch   = errors.New("product belongs to another owner")
)
