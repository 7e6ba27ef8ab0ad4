package errs

import "errors"

// Domain-specific sentinel errors shared by the usecase and handler layers
var (
	// Checkout / subscription errors
	ErrInvalidReferralCode   = errors.New("invalid referral code")
	ErrDuplicateSubscription = errors.New("duplicate subscription")
	ErrSubscriptionNotFound  = errors.New("subscription not found")
	ErrPriceNotFound         = errors.New("price not found")

	// Webhook errors
	ErrInvalidSignature = errors.New("invalid webhook signature")
	ErrMalformedEvent   = errors.New("malformed webhook event")
	// another delivery of the same event holds the lock; the processor must retry this one
	ErrWebhookInProgress = errors.New("webhook event is being processed")

	// Affiliate errors
	ErrAffiliateNotFound     = errors.New("affiliate not found")
	ErrDuplicateRefCode      = errors.New("duplicate ref_code")
	ErrInvalidRefCode        = errors.New("invalid ref_code")
	ErrInvalidCommissionRate = errors.New("commission_rate must be between 0 and 100")

	// Commission ledger errors
	ErrCommissionNotFound       = errors.New("commission event not found")
	ErrCommissionAlreadySettled = errors.New("commission already transferred")

	// Inventory / sale errors
	ErrProductNotFound    = errors.New("product not found")
	ErrProductAlreadySold = errors.New("product already sold")
	ErrProductInUse       = errors.New("product is referenced by a sale")
	ErrSaleNotFound       = errors.New("sale not found")

	// Access errors
	ErrForbidden = errors.New("forbidden")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Infrastructure errors
	ErrMissingConfig           = errors.New("missing configuration")
	ErrPaymentProvider         = errors.New("payment provider error")
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
