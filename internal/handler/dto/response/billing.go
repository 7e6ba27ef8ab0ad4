package response

import (
	"time"

	"retrack/internal/domain/commission"
	"retrack/internal/domain/money"
	"retrack/internal/usecase/commands"
	"retrack/internal/usecase/queries"
)

type CheckoutAffiliateResponse struct {
	RefCode         string `json:"refCode"`
	CommissionRate  string `json:"commissionRate"`
	AffiliateAmount int64  `json:"affiliateAmount"`
	Currency        string `json:"currency"`
}

type CheckoutResponse struct {
	SessionID string                     `json:"sessionId"`
	URL       string                     `json:"url"`
	Affiliate *CheckoutAffiliateResponse `json:"affiliate,omitempty"`
}

func FromCheckoutResult(r *commands.CheckoutResult) *CheckoutResponse {
	res := &CheckoutResponse{SessionID: r.SessionID, URL: r.URL}
	if a := r.Affiliate; a != nil {
		res.Affiliate = &CheckoutAffiliateResponse{
			RefCode:         a.RefCode,
			CommissionRate:  a.CommissionRate.String(),
			AffiliateAmount: a.AffiliateAmount,
			Currency:        a.Currency,
		}
	}
	return res
}

type SubscriptionResponse struct {
	ID                 string `json:"id"`
	PlanType           string `json:"plan_type"`
	Status             string `json:"status"`
	CurrentPeriodStart string `json:"current_period_start"`
	CurrentPeriodEnd   string `json:"current_period_end"`
	CancelAtPeriodEnd  bool   `json:"cancel_at_period_end"`
	RefCode            string `json:"ref_code,omitempty"`
}

type SubscriptionCheckResponse struct {
	HasSubscription bool                  `json:"hasSubscription"`
	Status          string                `json:"status"`
	Subscription    *SubscriptionResponse `json:"subscription,omitempty"`
}

func FromSubscriptionCheck(c *queries.SubscriptionCheck) *SubscriptionCheckResponse {
	res := &SubscriptionCheckResponse{
		HasSubscription: c.HasSubscription,
		Status:          string(c.Status),
	}
	if v := c.Subscription; v != nil {
		res.Subscription = &SubscriptionResponse{
			ID:                 v.StripeSubscriptionID,
			PlanType:           v.PlanType,
			Status:             v.Status,
			CurrentPeriodStart: v.CurrentPeriodStart.UTC().Format(time.RFC3339),
			CurrentPeriodEnd:   v.CurrentPeriodEnd.UTC().Format(time.RFC3339),
			CancelAtPeriodEnd:  v.CancelAtPeriodEnd,
			RefCode:            v.RefCode,
		}
	}
	return res
}

type AffiliateResponse struct {
	ID              string `json:"id"`
	RefCode         string `json:"ref_code"`
	StripeAccountID string `json:"stripe_account_id"`
	CommissionRate  string `json:"commission_rate"`
	Active          bool   `json:"active"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}

func FromAffiliateView(v *queries.AffiliateView) *AffiliateResponse {
	return &AffiliateResponse{
		ID:              v.ID.String(),
		RefCode:         v.RefCode,
		StripeAccountID: v.StripeAccountID,
		CommissionRate:  v.CommissionRate.String(),
		Active:          v.Active,
		CreatedAt:       v.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:       v.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func FromAffiliateList(items []*queries.AffiliateView) []*AffiliateResponse {
	res := make([]*AffiliateResponse, len(items))
	for i, it := range items {
		res[i] = FromAffiliateView(it)
	}
	return res
}

type CommissionEventResponse struct {
	ID              string `json:"id"`
	IdempotencyKey  string `json:"idempotency_key"`
	InvoiceID       string `json:"invoice_id"`
	SubscriptionID  string `json:"subscription_id"`
	RefCode         string `json:"ref_code"`
	PayoutAccountID string `json:"stripe_account_id"`
	CommissionRate  string `json:"commission_rate"`
	InvoiceAmount   int64  `json:"invoice_amount"`
	AffiliateAmount int64  `json:"affiliate_amount"`
	AmountDisplay   string `json:"amount_display"`
	Currency        string `json:"currency"`
	Status          string `json:"status"`
	TransferID      string `json:"transfer_id,omitempty"`
	LastError       string `json:"last_error,omitempty"`
	Attempts        int32  `json:"attempts"`
	UpdatedAt       string `json:"updated_at"`
}

func FromCommissionEventView(v *queries.CommissionEventView) *CommissionEventResponse {
	return &CommissionEventResponse{
		ID:              v.ID.String(),
		IdempotencyKey:  v.IdempotencyKey,
		InvoiceID:       v.InvoiceID,
		SubscriptionID:  v.SubscriptionID,
		RefCode:         v.RefCode,
		PayoutAccountID: v.PayoutAccountID,
		CommissionRate:  v.CommissionRate.String(),
		InvoiceAmount:   v.InvoiceAmount,
		AffiliateAmount: v.AffiliateAmount,
		AmountDisplay:   money.Format(money.FromMinorUnits(v.AffiliateAmount)),
		Currency:        v.Currency,
		Status:          v.Status,
		TransferID:      v.TransferID,
		LastError:       v.LastError,
		Attempts:        v.Attempts,
		UpdatedAt:       v.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func FromCommissionEventList(items []*queries.CommissionEventView) []*CommissionEventResponse {
	res := make([]*CommissionEventResponse, len(items))
	for i, it := range items {
		res[i] = FromCommissionEventView(it)
	}
	return res
}

func FromCommissionEvent(e *commission.Event) *CommissionEventResponse {
	return &CommissionEventResponse{
		ID:              e.ID.String(),
		IdempotencyKey:  e.IdempotencyKey,
		InvoiceID:       e.InvoiceID,
		SubscriptionID:  e.SubscriptionID,
		RefCode:         e.RefCode,
		PayoutAccountID: e.PayoutAccountID,
		CommissionRate:  e.Rate.String(),
		InvoiceAmount:   e.InvoiceAmount,
		AffiliateAmount: e.AffiliateAmount,
		AmountDisplay:   money.Format(money.FromMinorUnits(e.AffiliateAmount)),
		Currency:        e.Currency,
		Status:          string(e.Status),
		TransferID:      e.TransferID,
		LastError:       e.LastError,
		Attempts:        int32(e.Attempts),
		UpdatedAt:       e.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
