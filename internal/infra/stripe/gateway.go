// Package stripe adapts the payment processor SDK to the billing ports used by the commands layer.
package stripe

import (
	"context"
	"net/http"
	"time"

	"retrack/internal/domain/billing"
	"retrack/internal/pkg/config"
	"retrack/internal/pkg/errs"

	stripego "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

type Gateway struct {
	api *client.API
}

// NewGateway never fails on a missing secret key; each call reports ErrMissingConfig instead.
func NewGateway(cfg config.StripeConfig) *Gateway {
	return NewGatewayWithBackends(cfg.SecretKey, nil)
}

// NewGatewayWithBackends points the SDK at explicit backends; nil means the processor's public API.
func NewGatewayWithBackends(secretKey string, backends *stripego.Backends) *Gateway {
	g := &Gateway{}
	if secretKey != "" {
		g.api = client.New(secretKey, backends)
	}
	return g
}

func (g *Gateway) client() (*client.API, error) {
	if g.api == nil {
		return nil, errs.Mark(errs.New("STRIPE_SECRET_KEY is not set"), errs.ErrMissingConfig)
	}
	return g.api, nil
}

func (g *Gateway) GetPrice(ctx context.Context, priceID string) (*billing.Price, error) {
	api, err := g.client()
	if err != nil {
		return nil, err
	}
	params := &stripego.PriceParams{}
	params.Context = ctx
	p, err := api.Prices.Get(priceID, params)
	if err != nil {
		if isResourceMissing(err) {
			return nil, errs.Mark(errs.Wrapf(err, "price %s", priceID), errs.ErrPriceNotFound)
		}
		return nil, providerErr(err, "get price")
	}
	return &billing.Price{
		ID:         p.ID,
		UnitAmount: p.UnitAmount,
		Currency:   string(p.Currency),
		Recurring:  p.Recurring != nil,
	}, nil
}

func (g *Gateway) CreateCheckoutSession(ctx context.Context, req billing.CheckoutRequest) (*billing.CheckoutSession, error) {
	api, err := g.client()
	if err != nil {
		return nil, err
	}

	mode := stripego.CheckoutSessionModePayment
	if req.Recurring {
		mode = stripego.CheckoutSessionModeSubscription
	}
	params := &stripego.CheckoutSessionParams{
		Mode: stripego.String(string(mode)),
		LineItems: []*stripego.CheckoutSessionLineItemParams{
			{Price: stripego.String(req.PriceID), Quantity: stripego.Int64(1)},
		},
		SuccessURL: stripego.String(req.SuccessURL),
		CancelURL:  stripego.String(req.CancelURL),
	}
	params.Context = ctx
	if req.CustomerEmail != "" {
		params.CustomerEmail = stripego.String(req.CustomerEmail)
	}
	if req.ClientReferenceID != "" {
		params.ClientReferenceID = stripego.String(req.ClientReferenceID)
	}
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}
	if req.Recurring {
		params.SubscriptionData = &stripego.CheckoutSessionSubscriptionDataParams{Metadata: req.Metadata}
	} else {
		// session metadata is not copied onto the payment intent
		params.PaymentIntentData = &stripego.CheckoutSessionPaymentIntentDataParams{Metadata: req.Metadata}
		if t := req.TransferOnCharge; t != nil {
			params.PaymentIntentData.TransferData = &stripego.CheckoutSessionPaymentIntentDataTransferDataParams{
				Destination: stripego.String(t.DestinationAccount),
				Amount:      stripego.Int64(t.Amount),
			}
		}
	}

	s, err := api.CheckoutSessions.New(params)
	if err != nil {
		return nil, providerErr(err, "create checkout session")
	}
	return checkoutSessionFromStripe(s), nil
}

func (g *Gateway) GetSubscription(ctx context.Context, subscriptionID string) (*billing.Subscription, error) {
	api, err := g.client()
	if err != nil {
		return nil, err
	}
	params := &stripego.SubscriptionParams{}
	params.Context = ctx
	s, err := api.Subscriptions.Get(subscriptionID, params)
	if err != nil {
		if isResourceMissing(err) {
			return nil, errs.Mark(errs.Wrapf(err, "subscription %s", subscriptionID), errs.ErrSubscriptionNotFound)
		}
		return nil, providerErr(err, "get subscription")
	}
	return subscriptionFromStripe(s), nil
}

// CreateTransfer groups the transfer by its source invoice and replays safely under the same idempotency key.
func (g *Gateway) CreateTransfer(ctx context.Context, req billing.TransferRequest) (*billing.Transfer, error) {
	api, err := g.client()
	if err != nil {
		return nil, err
	}
	params := &stripego.TransferParams{
		Amount:      stripego.Int64(req.Amount),
		Currency:    stripego.String(req.Currency),
		Destination: stripego.String(req.DestinationAccount),
	}
	params.Context = ctx
	if req.SourceInvoiceID != "" {
		params.TransferGroup = stripego.String(req.SourceInvoiceID)
	}
	if req.IdempotencyKey != "" {
		params.SetIdempotencyKey(req.IdempotencyKey)
	}
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	t, err := api.Transfers.New(params)
	if err != nil {
		return nil, providerErr(err, "create transfer")
	}
	return transferFromStripe(t), nil
}

func (g *Gateway) CreatePortalSession(ctx context.Context, req billing.PortalRequest) (string, error) {
	api, err := g.client()
	if err != nil {
		return "", err
	}
	params := &stripego.BillingPortalSessionParams{
		Customer:  stripego.String(req.CustomerID),
		ReturnURL: stripego.String(req.ReturnURL),
	}
	params.Context = ctx
	s, err := api.BillingPortalSessions.New(params)
	if err != nil {
		return "", providerErr(err, "create billing portal session")
	}
	return s.URL, nil
}

func isResourceMissing(err error) bool {
	var se *stripego.Error
	if !errs.As(err, &se) {
		return false
	}
	return se.Code == stripego.ErrorCodeResourceMissing || se.HTTPStatusCode == http.StatusNotFound
}

func providerErr(err error, op string) error {
	return errs.Mark(errs.Wrap(err, op), errs.ErrPaymentProvider)
}

func unixTime(sec int64) time.Time {
	if sec == 0 {
		return time.Time{}
	}
	return time.Unix(sec, 0).UTC()
}

func checkoutSessionFromStripe(s *stripego.CheckoutSession) *billing.CheckoutSession {
	out := &billing.CheckoutSession{
		ID:                s.ID,
		URL:               s.URL,
		ClientReferenceID: s.ClientReferenceID,
		PaymentStatus:     string(s.PaymentStatus),
		Metadata:          s.Metadata,
	}
	if s.Customer != nil {
		out.CustomerID = s.Customer.ID
	}
	if s.Subscription != nil {
		out.SubscriptionID = s.Subscription.ID
	}
	return out
}

func subscriptionFromStripe(s *stripego.Subscription) *billing.Subscription {
	out := &billing.Subscription{
		ID:                 s.ID,
		Status:             string(s.Status),
		CurrentPeriodStart: unixTime(s.CurrentPeriodStart),
		CurrentPeriodEnd:   unixTime(s.CurrentPeriodEnd),
		CancelAtPeriodEnd:  s.CancelAtPeriodEnd,
		Metadata:           s.Metadata,
	}
	if s.Customer != nil {
		out.CustomerID = s.Customer.ID
	}
	return out
}

func invoiceFromStripe(in *stripego.Invoice) *billing.Invoice {
	out := &billing.Invoice{
		ID:         in.ID,
		AmountPaid: in.AmountPaid,
		Currency:   string(in.Currency),
	}
	if in.Subscription != nil {
		out.SubscriptionID = in.Subscription.ID
	}
	if in.Customer != nil {
		out.CustomerID = in.Customer.ID
	}
	return out
}

func transferFromStripe(t *stripego.Transfer) *billing.Transfer {
	out := &billing.Transfer{
		ID:       t.ID,
		Amount:   t.Amount,
		Currency: string(t.Currency),
		Metadata: t.Metadata,
	}
	if t.Destination != nil {
		out.Destination = t.Destination.ID
	}
	return out
}

func paymentIntentFromStripe(p *stripego.PaymentIntent) *billing.PaymentIntent {
	out := &billing.PaymentIntent{
		ID:       p.ID,
		Amount:   p.Amount,
		Currency: string(p.Currency),
		Metadata: p.Metadata,
	}
	if p.LastPaymentError != nil {
		out.FailureMessage = p.LastPaymentError.Msg
	}
	return out
}
