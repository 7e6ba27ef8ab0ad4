package commands

import (
	"context"
	"log/slog"
	"time"

	"retrack/internal/domain/billing"
	"retrack/internal/domain/commission"
	"retrack/internal/domain/subscription"
	"retrack/internal/pkg/clock"
	"retrack/internal/pkg/errs"
	"retrack/internal/pkg/telemetry"
	"retrack/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

const deliveryLockPrefix = "retrack:webhook:"

type WebhookOutcome string

const (
	WebhookProcessed WebhookOutcome = "processed"
	WebhookIgnored   WebhookOutcome = "ignored"
	WebhookDuplicate WebhookOutcome = "duplicate"
)

type WebhookResult struct {
	EventID   string
	EventType billing.EventType
	Outcome   WebhookOutcome
}

type WebhookCommands interface {
	// HandleEvent returns an error only for signature failures and for faults the processor
	// should retry. Failed commission transfers are parked, not returned.
	HandleEvent(ctx context.Context, payload []byte, signatureHeader string) (*WebhookResult, error)
}

type WebhookDeps struct {
	UoW       shared.UnitOfWork
	Gateway   PaymentGateway
	Verifier  WebhookVerifier
	Lock      DeliveryLock
	Publisher EventPublisher
	Clock     clock.Clock
	Metrics   *telemetry.Metrics
	LockTTL   time.Duration
}

type webhookUseCaseImpl struct {
	WebhookDeps
}

func NewWebhookUseCase(deps WebhookDeps) WebhookCommands {
	if deps.LockTTL <= 0 {
		deps.LockTTL = 2 * time.Minute
	}
	return &webhookUseCaseImpl{WebhookDeps: deps}
}

func (uc *webhookUseCaseImpl) HandleEvent(ctx context.Context, payload []byte, signatureHeader string) (result *WebhookResult, err error) {
	ctx, span := telemetry.Tracer("webhook").Start(ctx, "webhook.handle_event")
	defer func() { telemetry.EndSpan(span, err) }()

	ev, err := uc.Verifier.VerifyEvent(payload, signatureHeader)
	if err != nil {
		uc.Metrics.WebhookEvent("unknown", telemetry.OutcomeUnauthorized)
		slog.WarnContext(ctx, "webhook signature rejected", "error", err.Error())
		return nil, errs.Mark(err, errs.ErrInvalidSignature)
	}
	span.SetAttributes(
		attribute.String("webhook.event_id", ev.ID),
		attribute.String("webhook.event_type", string(ev.Type)),
	)
	log := slog.With("event_id", ev.ID, "event_type", string(ev.Type))
	result = &WebhookResult{EventID: ev.ID, EventType: ev.Type}

	release, acquired := uc.acquire(ctx, ev.ID, log)
	if !acquired {
		// Any 2xx ends redelivery, so a non-2xx here keeps the event alive if the lock holder fails.
		uc.Metrics.WebhookEvent(string(ev.Type), telemetry.OutcomeDuplicate)
		log.InfoContext(ctx, "webhook event locked by a concurrent delivery")
		return nil, errs.Mark(errs.Newf("event %s is locked", ev.ID), errs.ErrWebhookInProgress)
	}
	defer release()

	state, err := uc.record(ctx, ev)
	if err != nil {
		return nil, err
	}
	if state.AlreadyHandled() {
		log.InfoContext(ctx, "webhook event already handled", "status", string(state.Status))
		result.Outcome = WebhookDuplicate
		uc.Metrics.WebhookEvent(string(ev.Type), telemetry.OutcomeDuplicate)
		return result, nil
	}

	outcome, note, err := uc.dispatch(ctx, ev, log)
	if err != nil {
		uc.Metrics.WebhookEvent(string(ev.Type), telemetry.OutcomeFailed)
		log.ErrorContext(ctx, "webhook processing failed", "error", err.Error())
		return nil, err
	}

	status := shared.WebhookEventProcessed
	if outcome == WebhookIgnored {
		status = shared.WebhookEventIgnored
	}
	if err = uc.UoW.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.WebhookEvents().Mark(ctx, tx.DB(), ev.ID, status, "", uc.Clock.Now())
	}); err != nil {
		return nil, err
	}

	if note != nil && outcome == WebhookProcessed {
		uc.publish(ctx, *note, log)
	}

	result.Outcome = outcome
	uc.Metrics.WebhookEvent(string(ev.Type), string(outcome))
	return result, nil
}

func (uc *webhookUseCaseImpl) acquire(ctx context.Context, eventID string, log *slog.Logger) (func(), bool) {
	noop := func() {}
	if uc.Lock == nil {
		return noop, true
	}
	key := deliveryLockPrefix + eventID
	ok, err := uc.Lock.Acquire(ctx, key, uc.LockTTL)
	if err != nil {
		// The event ledger still deduplicates; the lock only narrows the concurrent window.
		log.WarnContext(ctx, "delivery lock unavailable", "error", err.Error())
		return noop, true
	}
	if !ok {
		return noop, false
	}
	return func() {
		if err := uc.Lock.Release(context.WithoutCancel(ctx), key); err != nil {
			log.WarnContext(ctx, "failed to release delivery lock", "error", err.Error())
		}
	}, true
}

func (uc *webhookUseCaseImpl) record(ctx context.Context, ev *billing.Event) (*shared.WebhookEventState, error) {
	var state *shared.WebhookEventState
	err := uc.UoW.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var rerr error
		state, rerr = tx.WebhookEvents().Record(ctx, tx.DB(), shared.WebhookEventRecord{
			EventID:    ev.ID,
			EventType:  string(ev.Type),
			Payload:    ev.Payload,
			ReceivedAt: uc.Clock.Now(),
		})
		return rerr
	})
	return state, err
}

func (uc *webhookUseCaseImpl) dispatch(ctx context.Context, ev *billing.Event, log *slog.Logger) (WebhookOutcome, *billing.Notification, error) {
	switch ev.Type {
	case billing.EventInvoicePaymentSucceeded:
		return uc.onInvoicePaid(ctx, ev, log)
	case billing.EventCustomerSubscriptionCreated, billing.EventCustomerSubscriptionUpdated:
		return uc.onSubscriptionChanged(ctx, ev, log)
	case billing.EventCustomerSubscriptionDeleted:
		return uc.onSubscriptionDeleted(ctx, ev, log)
	case billing.EventTransferCreated:
		return uc.onTransferCreated(ctx, ev, log)
	case billing.EventCheckoutSessionCompleted:
		if ev.CheckoutSession == nil {
			return WebhookIgnored, nil, nil
		}
		terms := commission.TermsFromMetadata(ev.CheckoutSession.Metadata)
		log.InfoContext(ctx, "checkout session completed",
			"session_id", ev.CheckoutSession.ID,
			"subscription_id", ev.CheckoutSession.SubscriptionID,
			"ref_code", terms.RefCode,
			"referred", terms.IsReferral())
		return WebhookProcessed, nil, nil
	case billing.EventPaymentIntentSucceeded:
		if ev.PaymentIntent == nil {
			return WebhookIgnored, nil, nil
		}
		terms := commission.TermsFromMetadata(ev.PaymentIntent.Metadata)
		log.InfoContext(ctx, "payment intent succeeded",
			"payment_intent_id", ev.PaymentIntent.ID,
			"ref_code", terms.RefCode,
			"referred", terms.IsReferral())
		return WebhookProcessed, nil, nil
	case billing.EventPaymentIntentFailed:
		if ev.PaymentIntent == nil {
			return WebhookIgnored, nil, nil
		}
		log.WarnContext(ctx, "payment intent failed",
			"payment_intent_id", ev.PaymentIntent.ID,
			"amount", ev.PaymentIntent.Amount,
			"currency", ev.PaymentIntent.Currency,
			"reason", ev.PaymentIntent.FailureMessage)
		return WebhookProcessed, nil, nil
	default:
		log.DebugContext(ctx, "ignoring unhandled webhook event type")
		return WebhookIgnored, nil, nil
	}
}

func (uc *webhookUseCaseImpl) onInvoicePaid(ctx context.Context, ev *billing.Event, log *slog.Logger) (WebhookOutcome, *billing.Notification, error) {
	inv := ev.Invoice
	if inv == nil || inv.SubscriptionID == "" {
		log.InfoContext(ctx, "invoice without subscription, nothing to reconcile")
		return WebhookIgnored, nil, nil
	}
	log = log.With("invoice_id", inv.ID, "subscription_id", inv.SubscriptionID)

	// Commission terms were frozen on the subscription at checkout; never read them from
	// the affiliate's current row.
	sub, err := uc.Gateway.GetSubscription(ctx, inv.SubscriptionID)
	if err != nil {
		return "", nil, err
	}
	terms := commission.TermsFromMetadata(sub.Metadata)

	if local, ok := subscriptionFromProcessor(sub, inv.CustomerID, terms); ok {
		if err := uc.upsertSubscription(ctx, local, ev.Created, log); err != nil {
			return "", nil, err
		}
	} else {
		log.WarnContext(ctx, "subscription metadata carries no valid user_id, skipping local upsert")
	}

	note := &billing.Notification{
		Kind:           "invoice.paid",
		EventID:        ev.ID,
		OwnerID:        terms.UserID,
		SubscriptionID: inv.SubscriptionID,
		InvoiceID:      inv.ID,
		RefCode:        terms.RefCode,
		Amount:         inv.AmountPaid,
		Currency:       inv.Currency,
		OccurredAt:     ev.Created,
	}

	if !terms.IsReferral() {
		return WebhookProcessed, note, nil
	}

	entry, err := commission.NewEvent(commission.InvoicePayment{
		InvoiceID:      inv.ID,
		SubscriptionID: inv.SubscriptionID,
		AmountPaid:     inv.AmountPaid,
		Currency:       inv.Currency,
	}, terms, uc.Clock.Now())
	if err != nil {
		if errs.Is(err, commission.ErrNothingToPay) {
			log.InfoContext(ctx, "referral commission rounds to zero", "ref_code", terms.RefCode)
			return WebhookProcessed, note, nil
		}
		log.WarnContext(ctx, "cannot derive commission from invoice", "error", err.Error())
		return WebhookProcessed, note, nil
	}

	settled, err := uc.recordAndSettle(ctx, entry, log)
	if err != nil {
		return "", nil, err
	}
	note.Kind = "commission." + string(settled.Status)
	note.Amount = settled.AffiliateAmount
	note.Status = string(settled.Status)
	return WebhookProcessed, note, nil
}

// recordAndSettle writes the ledger row and issues the transfer under its row lock. A row that
// is already transferred is returned untouched, which is what makes invoice replays safe.
func (uc *webhookUseCaseImpl) recordAndSettle(ctx context.Context, entry *commission.Event, log *slog.Logger) (*commission.Event, error) {
	var settled *commission.Event
	err := uc.UoW.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Commissions().Insert(ctx, tx.DB(), entry); err != nil {
			return err
		}
		row, err := tx.Commissions().GetByKeyForUpdate(ctx, tx.DB(), entry.IdempotencyKey)
		if err != nil {
			return err
		}
		settled = row
		if !row.NeedsTransfer() {
			log.InfoContext(ctx, "commission already settled, skipping transfer",
				"idempotency_key", row.IdempotencyKey)
			uc.Metrics.CommissionTransfer(telemetry.OutcomeSkipped, row.Currency, 0)
			return nil
		}
		return settle(ctx, tx, uc.Gateway, uc.Clock, uc.Metrics, row)
	})
	return settled, err
}

func (uc *webhookUseCaseImpl) onSubscriptionChanged(ctx context.Context, ev *billing.Event, log *slog.Logger) (WebhookOutcome, *billing.Notification, error) {
	sub := ev.Subscription
	if sub == nil {
		return WebhookIgnored, nil, nil
	}
	terms := commission.TermsFromMetadata(sub.Metadata)
	local, ok := subscriptionFromProcessor(sub, "", terms)
	if !ok {
		log.WarnContext(ctx, "subscription metadata carries no valid user_id", "subscription_id", sub.ID)
		return WebhookIgnored, nil, nil
	}
	if err := uc.upsertSubscription(ctx, local, ev.Created, log); err != nil {
		return "", nil, err
	}
	return WebhookProcessed, &billing.Notification{
		Kind:           "subscription." + sub.Status,
		EventID:        ev.ID,
		OwnerID:        terms.UserID,
		SubscriptionID: sub.ID,
		RefCode:        terms.RefCode,
		Status:         sub.Status,
		OccurredAt:     ev.Created,
	}, nil
}

func (uc *webhookUseCaseImpl) onSubscriptionDeleted(ctx context.Context, ev *billing.Event, log *slog.Logger) (WebhookOutcome, *billing.Notification, error) {
	sub := ev.Subscription
	if sub == nil {
		return WebhookIgnored, nil, nil
	}
	var changed bool
	err := uc.UoW.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var cerr error
		changed, cerr = tx.Subscriptions().Cancel(ctx, tx.DB(), sub.ID, ev.Created)
		return cerr
	})
	if err != nil {
		return "", nil, err
	}
	if !changed {
		log.InfoContext(ctx, "no newer local subscription row to cancel", "subscription_id", sub.ID)
	}
	terms := commission.TermsFromMetadata(sub.Metadata)
	return WebhookProcessed, &billing.Notification{
		Kind:           "subscription.canceled",
		EventID:        ev.ID,
		OwnerID:        terms.UserID,
		SubscriptionID: sub.ID,
		Status:         string(subscription.StatusCanceled),
		OccurredAt:     ev.Created,
	}, nil
}

func (uc *webhookUseCaseImpl) onTransferCreated(ctx context.Context, ev *billing.Event, log *slog.Logger) (WebhookOutcome, *billing.Notification, error) {
	tr := ev.Transfer
	if tr == nil || tr.Metadata[commission.MetaIdempotencyKey] == "" {
		return WebhookIgnored, nil, nil
	}
	key := tr.Metadata[commission.MetaIdempotencyKey]
	var matched bool
	err := uc.UoW.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var merr error
		matched, merr = tx.Commissions().MarkTransferredByKey(ctx, tx.DB(), key, tr.ID, uc.Clock.Now())
		return merr
	})
	if err != nil {
		return "", nil, err
	}
	if !matched {
		log.InfoContext(ctx, "transfer does not match an open ledger row", "idempotency_key", key)
	}
	return WebhookProcessed, nil, nil
}

func (uc *webhookUseCaseImpl) upsertSubscription(ctx context.Context, sub *subscription.Subscription, eventAt time.Time, log *slog.Logger) error {
	err := uc.UoW.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		applied, uerr := tx.Subscriptions().Upsert(ctx, tx.DB(), sub, eventAt)
		if uerr == nil && !applied {
			log.InfoContext(ctx, "stale subscription event, newer state already stored",
				"subscription_id", sub.ProviderSubscriptionID)
		}
		return uerr
	})
	if errs.Is(err, errs.ErrDuplicateSubscription) {
		// A second active subscription for the owner is left to manual cleanup; acknowledging
		// stops the processor from retrying a write that can never succeed.
		log.ErrorContext(ctx, "owner already holds an active subscription",
			"owner_id", sub.OwnerID.String(),
			"subscription_id", sub.ProviderSubscriptionID)
		return nil
	}
	return err
}

func (uc *webhookUseCaseImpl) publish(ctx context.Context, n billing.Notification, log *slog.Logger) {
	if uc.Publisher == nil {
		return
	}
	if err := uc.Publisher.Publish(ctx, n); err != nil {
		log.WarnContext(ctx, "failed to publish billing notification", "kind", n.Kind, "error", err.Error())
	}
}

// subscriptionFromProcessor maps a processor subscription onto the local row; the owner comes
// from the user_id frozen into metadata at checkout.
func subscriptionFromProcessor(s *billing.Subscription, fallbackCustomerID string, terms commission.Terms) (*subscription.Subscription, bool) {
	ownerID, err := uuid.Parse(terms.UserID)
	if err != nil || ownerID == uuid.Nil {
		return nil, false
	}
	customerID := s.CustomerID
	if customerID == "" {
		customerID = fallbackCustomerID
	}
	refCode := terms.RefCode
	if refCode == commission.DirectRefCode {
		refCode = ""
	}
	return &subscription.Subscription{
		OwnerID:                ownerID,
		CustomerID:             customerID,
		ProviderSubscriptionID: s.ID,
		PlanType:               terms.PlanType,
		Status:                 subscription.Status(s.Status),
		CurrentPeriodStart:     s.CurrentPeriodStart,
		CurrentPeriodEnd:       s.CurrentPeriodEnd,
		CancelAtPeriodEnd:      s.CancelAtPeriodEnd,
		RefCode:                refCode,
	}, true
}
