package stripe

import (
	"encoding/json"

	"retrack/internal/domain/billing"
	"retrack/internal/pkg/config"
	"retrack/internal/pkg/errs"

	stripego "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"
)

type Verifier struct {
	secret string
}

func NewVerifier(cfg config.StripeConfig) *Verifier {
	return &Verifier{secret: cfg.WebhookSecret}
}

// VerifyEvent checks the signature header against the shared secret and decodes the event body.
// Known event types get a typed payload; everything else keeps only the raw bytes.
func (v *Verifier) VerifyEvent(payload []byte, signatureHeader string) (*billing.Event, error) {
	if v.secret == "" {
		return nil, errs.Mark(errs.New("STRIPE_WEBHOOK_SECRET is not set"), errs.ErrMissingConfig)
	}
	if signatureHeader == "" {
		return nil, errs.Mark(errs.New("missing signature header"), errs.ErrInvalidSignature)
	}

	ev, err := webhook.ConstructEventWithOptions(payload, signatureHeader, v.secret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "verify webhook signature"), errs.ErrInvalidSignature)
	}
	if ev.ID == "" || ev.Type == "" {
		return nil, errs.Mark(errs.New("event id or type missing"), errs.ErrMalformedEvent)
	}

	out := &billing.Event{
		ID:      ev.ID,
		Type:    billing.EventType(ev.Type),
		Created: unixTime(ev.Created),
		Payload: payload,
	}
	if ev.Data == nil {
		return out, nil
	}
	if err := decodeObject(out, ev.Data.Raw); err != nil {
		return nil, errs.Mark(errs.Wrapf(err, "decode %s", ev.Type), errs.ErrMalformedEvent)
	}
	return out, nil
}

func decodeObject(out *billing.Event, raw json.RawMessage) error {
	switch out.Type {
	case billing.EventCheckoutSessionCompleted:
		var s stripego.CheckoutSession
		if err := json.Unmarshal(raw, &s); err != nil {
			return err
		}
		out.CheckoutSession = checkoutSessionFromStripe(&s)
	case billing.EventInvoicePaymentSucceeded:
		var in stripego.Invoice
		if err := json.Unmarshal(raw, &in); err != nil {
			return err
		}
		out.Invoice = invoiceFromStripe(&in)
	case billing.EventCustomerSubscriptionCreated,
		billing.EventCustomerSubscriptionUpdated,
		billing.EventCustomerSubscriptionDeleted:
		var s stripego.Subscription
		if err := json.Unmarshal(raw, &s); err != nil {
			return err
		}
		out.Subscription = subscriptionFromStripe(&s)
	case billing.EventPaymentIntentSucceeded, billing.EventPaymentIntentFailed:
		var p stripego.PaymentIntent
		if err := json.Unmarshal(raw, &p); err != nil {
			return err
		}
		out.PaymentIntent = paymentIntentFromStripe(&p)
	case billing.EventTransferCreated:
		var t stripego.Transfer
		if err := json.Unmarshal(raw, &t); err != nil {
			return err
		}
		out.Transfer = transferFromStripe(&t)
	}
	return nil
}
