package commands

import (
	"context"
	"log/slog"
	"strings"

	"retrack/internal/domain/affiliate"
	"retrack/internal/domain/billing"
	"retrack/internal/domain/commission"
	"retrack/internal/pkg/errs"
	"retrack/internal/pkg/telemetry"
	"retrack/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
)

type CheckoutRequest struct {
	PriceID    string
	RefCode    string
	SuccessURL string
	CancelURL  string
}

// Caller is the authenticated identity starting a checkout.
type Caller struct {
	UserID uuid.UUID
	Email  string
}

type AffiliateSummary struct {
	RefCode         string
	CommissionRate  decimal.Decimal
	AffiliateAmount int64
	Currency        string
}

type CheckoutResult struct {
	SessionID string
	URL       string
	Affiliate *AffiliateSummary
}

type CheckoutCommands interface {
	CreateCheckoutSession(ctx context.Context, req CheckoutRequest, caller Caller) (*CheckoutResult, error)
}

type checkoutUseCaseImpl struct {
	uow      shared.UnitOfWork
	gateway  PaymentGateway
	metrics  *telemetry.Metrics
	planType string
}

func NewCheckoutUseCase(uow shared.UnitOfWork, gateway PaymentGateway, metrics *telemetry.Metrics, planType string) CheckoutCommands {
	return &checkoutUseCaseImpl{
		uow:      uow,
		gateway:  gateway,
		metrics:  metrics,
		planType: planType,
	}
}

// CreateCheckoutSession persists nothing: local state is written only when the processor
// confirms payment through the webhook.
func (uc *checkoutUseCaseImpl) CreateCheckoutSession(ctx context.Context, req CheckoutRequest, caller Caller) (result *CheckoutResult, err error) {
	ctx, span := telemetry.Tracer("checkout").Start(ctx, "checkout.create_session")
	defer func() { telemetry.EndSpan(span, err) }()

	refCode := strings.TrimSpace(req.RefCode)
	referred := refCode != "" && refCode != commission.DirectRefCode
	span.SetAttributes(attribute.Bool("checkout.referred", referred))
	defer func() {
		switch {
		case err == nil:
			uc.metrics.Checkout(telemetry.OutcomeCreated, referred)
		case errs.Is(err, errs.ErrInvalidReferralCode), errs.Is(err, errs.ErrDuplicateSubscription), errs.Is(err, errs.ErrDomainValidation):
			uc.metrics.Checkout(telemetry.OutcomeRejected, referred)
		default:
			uc.metrics.Checkout(telemetry.OutcomeFailed, referred)
		}
	}()

	if err = validateCheckout(req); err != nil {
		return nil, err
	}

	reads := uc.uow.CommandReads()
	if err = uc.ensureNoActiveSubscription(ctx, reads, caller.UserID); err != nil {
		return nil, err
	}

	// Resolve the referral before any processor call so a bad code never reaches it.
	var aff *affiliate.Affiliate
	if referred {
		if aff, err = uc.activeAffiliate(ctx, reads, refCode); err != nil {
			return nil, err
		}
	}

	price, err := uc.gateway.GetPrice(ctx, req.PriceID)
	if err != nil {
		return nil, err
	}

	terms := commission.DirectTerms(caller.UserID.String(), uc.planType)
	if aff != nil {
		if terms, err = aff.Terms(caller.UserID.String(), uc.planType, price.UnitAmount); err != nil {
			return nil, errs.Mark(err, errs.ErrInvalidReferralCode)
		}
	}

	sessionReq := billing.CheckoutRequest{
		PriceID:           price.ID,
		SuccessURL:        req.SuccessURL,
		CancelURL:         req.CancelURL,
		CustomerEmail:     caller.Email,
		ClientReferenceID: caller.UserID.String(),
		Recurring:         price.Recurring,
		Metadata:          terms.Metadata(),
	}
	// subscriptions pay out per invoice via the webhook; one-time charges settle at the processor
	if !price.Recurring && terms.IsReferral() && terms.AffiliateAmount > 0 {
		sessionReq.TransferOnCharge = &billing.ChargeTransfer{
			DestinationAccount: terms.PayoutAccountID,
			Amount:             terms.AffiliateAmount,
		}
	}

	session, err := uc.gateway.CreateCheckoutSession(ctx, sessionReq)
	if err != nil {
		return nil, err
	}

	result = &CheckoutResult{SessionID: session.ID, URL: session.URL}
	if terms.IsReferral() {
		result.Affiliate = &AffiliateSummary{
			RefCode:         terms.RefCode,
			CommissionRate:  terms.Rate,
			AffiliateAmount: terms.AffiliateAmount,
			Currency:        price.Currency,
		}
	}

	slog.InfoContext(ctx, "checkout session created",
		"session_id", session.ID,
		"user_id", caller.UserID.String(),
		"ref_code", terms.RefCode,
		"affiliate_amount", terms.AffiliateAmount)
	return result, nil
}

func (uc *checkoutUseCaseImpl) ensureNoActiveSubscription(ctx context.Context, reads shared.CommandReads, userID uuid.UUID) error {
	_, err := reads.LatestQualifyingSubscription(ctx, userID)
	if err == nil {
		return errs.ErrDuplicateSubscription
	}
	if isNotFound(err) {
		return nil
	}
	return err
}

func (uc *checkoutUseCaseImpl) activeAffiliate(ctx context.Context, reads shared.CommandReads, refCode string) (*affiliate.Affiliate, error) {
	if _, err := affiliate.NewRefCode(refCode); err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidReferralCode)
	}
	snap, err := reads.AffiliateByRefCode(ctx, refCode)
	if err != nil {
		if isNotFound(err) {
			return nil, errs.ErrInvalidReferralCode
		}
		return nil, err
	}
	if !snap.Active {
		return nil, errs.ErrInvalidReferralCode
	}
	return affiliate.Reconstruct(snap.ID, snap.RefCode, snap.PayoutAccountID, snap.CommissionRate, snap.Active, snap.CreatedAt, snap.UpdatedAt), nil
}

func validateCheckout(req CheckoutRequest) error {
	switch {
	case strings.TrimSpace(req.PriceID) == "":
		return invalid(errs.New("price_id is required"))
	case strings.TrimSpace(req.SuccessURL) == "":
		return invalid(errs.New("success_url is required"))
	case strings.TrimSpace(req.CancelURL) == "":
		return invalid(errs.New("cancel_url is required"))
	}
	return nil
}
