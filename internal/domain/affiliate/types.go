package affiliate

import "errors"

var (
	ErrInvalidRefCode        = errors.New("ref_code must match ^[a-zA-Z0-9_-]+$")
	ErrRefCodeTooLong        = errors.New("ref_code exceeds maximum length")
	ErrInvalidCommissionRate = errors.New("commission_rate must be between 0 and 100")
	ErrMissingPayoutAccount  = errors.New("stripe_account_id is required")
	ErrInactive              = errors.New("affiliate is not active")
)
