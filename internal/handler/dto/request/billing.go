package request

import "github.com/shopspring/decimal"

type CreateCheckoutRequest struct {
	PriceID    string `json:"price_id" binding:"required"`
	RefCode    string `json:"ref_code"`
	SuccessURL string `json:"success_url" binding:"required"`
	CancelURL  string `json:"cancel_url" binding:"required"`
}

type PortalSessionRequest struct {
	ReturnURL string `json:"return_url"`
}

// UpsertAffiliateRequest leaves absent fields untouched on update.
type UpsertAffiliateRequest struct {
	RefCode         string           `json:"ref_code" binding:"required"`
	StripeAccountID *string          `json:"stripe_account_id"`
	CommissionRate  *decimal.Decimal `json:"commission_rate"`
	Active          *bool            `json:"active"`
}
