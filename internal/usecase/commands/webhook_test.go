//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"retrack/internal/domain/billing"
	"retrack/internal/domain/commission"
	"retrack/internal/domain/subscription"
	"retrack/internal/pkg/errs"
	"retrack/internal/usecase/commands"
	"retrack/internal/usecase/shared"
	commandsmock "retrack/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	payload   = `{"id":"evt_1"}`
	signature = "t=1,v1=abc"
)

type webhookFixture struct {
	*fixture
	verifier  *commandsmock.MockWebhookVerifier
	lock      *commandsmock.MockDeliveryLock
	publisher *commandsmock.MockEventPublisher
	uc        commands.WebhookCommands
}

func newWebhookFixture(t *testing.T, withLock bool) *webhookFixture {
	f := &webhookFixture{fixture: newFixture(t)}
	f.verifier = commandsmock.NewMockWebhookVerifier(f.ctrl)
	f.publisher = commandsmock.NewMockEventPublisher(f.ctrl)
	deps := commands.WebhookDeps{
		UoW:       f.uow,
		Gateway:   f.gateway,
		Verifier:  f.verifier,
		Publisher: f.publisher,
		Clock:     f.clock,
	}
	if withLock {
		f.lock = commandsmock.NewMockDeliveryLock(f.ctrl)
		deps.Lock = f.lock
	}
	f.uc = commands.NewWebhookUseCase(deps)
	return f
}

func (f *webhookFixture) deliver(ev *billing.Event) {
	f.verifier.EXPECT().VerifyEvent([]byte(payload), signature).Return(ev, nil)
}

func (f *webhookFixture) expectFirstDelivery(eventID string) {
	f.events.EXPECT().Record(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ any, rec shared.WebhookEventRecord) (*shared.WebhookEventState, error) {
			if rec.EventID != eventID {
				return nil, errors.New("unexpected event id " + rec.EventID)
			}
			return &shared.WebhookEventState{Status: shared.WebhookEventReceived, Inserted: true}, nil
		})
}

func (f *webhookFixture) expectMarked(eventID string, status shared.WebhookEventStatus) {
	f.events.EXPECT().Mark(gomock.Any(), gomock.Any(), eventID, status, "", fixedNow).Return(nil)
}

var ownerID = uuid.MustParse("7c9e6679-7425-40de-944b-e07fc1f90ae7")

func referralMetadata() map[string]string {
	return map[string]string{
		commission.MetaRefCode:         "ABC-123",
		commission.MetaUserID:          ownerID.String(),
		commission.MetaPlanType:        "pro",
		commission.MetaPayoutAccount:   "acct_1",
		commission.MetaCommissionRate:  "70",
		commission.MetaAffiliateAmount: "2099",
	}
}

func invoicePaid() *billing.Event {
	return &billing.Event{
		ID:      "evt_1",
		Type:    billing.EventInvoicePaymentSucceeded,
		Created: fixedNow.Add(-time.Minute),
		Invoice: &billing.Invoice{
			ID:             "in_1",
			SubscriptionID: "sub_1",
			CustomerID:     "cus_1",
			AmountPaid:     2999,
			Currency:       "usd",
		},
	}
}

func processorSubscription(md map[string]string) *billing.Subscription {
	return &billing.Subscription{
		ID:                 "sub_1",
		CustomerID:         "cus_1",
		Status:             "active",
		CurrentPeriodStart: fixedNow.Add(-time.Hour),
		CurrentPeriodEnd:   fixedNow.Add(30 * 24 * time.Hour),
		Metadata:           md,
	}
}

func TestWebhook_Rejections(t *testing.T) {
	t.Run("bad signature touches nothing", func(t *testing.T) {
		f := newWebhookFixture(t, false)
		f.verifier.EXPECT().VerifyEvent(gomock.Any(), gomock.Any()).Return(nil, errs.ErrInvalidSignature)

		result, err := f.uc.HandleEvent(context.Background(), []byte(payload), signature)
		require.Nil(t, result)
		assertMarked(t, err, errs.ErrInvalidSignature)
	})

	t.Run("unknown event type is recorded and ignored", func(t *testing.T) {
		f := newWebhookFixture(t, false)
		f.deliver(&billing.Event{ID: "evt_9", Type: "charge.refunded", Created: fixedNow})
		f.expectFirstDelivery("evt_9")
		f.expectMarked("evt_9", shared.WebhookEventIgnored)

		result, err := f.uc.HandleEvent(context.Background(), []byte(payload), signature)
		require.NoError(t, err)
		assert.Equal(t, commands.WebhookIgnored, result.Outcome)
	})

	t.Run("redelivery of a handled event is skipped", func(t *testing.T) {
		f := newWebhookFixture(t, false)
		f.deliver(invoicePaid())
		f.events.EXPECT().Record(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&shared.WebhookEventState{Status: shared.WebhookEventProcessed, Inserted: false}, nil)

		result, err := f.uc.HandleEvent(context.Background(), []byte(payload), signature)
		require.NoError(t, err)
		assert.Equal(t, commands.WebhookDuplicate, result.Outcome)
	})

	t.Run("concurrent delivery holding the lock asks for a retry", func(t *testing.T) {
		f := newWebhookFixture(t, true)
		f.deliver(invoicePaid())
		f.lock.EXPECT().Acquire(gomock.Any(), "retrack:webhook:evt_1", gomock.Any()).Return(false, nil)

		// no ledger write and no processor call while another delivery owns the event
		result, err := f.uc.HandleEvent(context.Background(), []byte(payload), signature)
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrWebhookInProgress), "got %v", err)
		assert.Nil(t, result)
	})
}

func TestWebhook_InvoicePaid(t *testing.T) {
	t.Run("referral invoice transfers the commission once", func(t *testing.T) {
		f := newWebhookFixture(t, true)
		f.deliver(invoicePaid())
		f.lock.EXPECT().Acquire(gomock.Any(), "retrack:webhook:evt_1", gomock.Any()).Return(true, nil)
		f.lock.EXPECT().Release(gomock.Any(), "retrack:webhook:evt_1").Return(nil)
		f.expectFirstDelivery("evt_1")

		f.gateway.EXPECT().GetSubscription(gomock.Any(), "sub_1").Return(processorSubscription(referralMetadata()), nil)
		f.subs.EXPECT().Upsert(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, sub *subscription.Subscription, _ time.Time) (bool, error) {
				assert.Equal(t, ownerID, sub.OwnerID)
				assert.Equal(t, "cus_1", sub.CustomerID)
				assert.Equal(t, "ABC-123", sub.RefCode)
				assert.Equal(t, subscription.StatusActive, sub.Status)
				return true, nil
			})

		var inserted *commission.Event
		f.commissions.EXPECT().Insert(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, ev *commission.Event) (bool, error) {
				inserted = ev
				return true, nil
			})
		f.commissions.EXPECT().GetByKeyForUpdate(gomock.Any(), gomock.Any(), "commission:in_1:acct_1").
			DoAndReturn(func(context.Context, any, string) (*commission.Event, error) {
				return inserted, nil
			})
		f.gateway.EXPECT().CreateTransfer(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req billing.TransferRequest) (*billing.Transfer, error) {
				assert.Equal(t, int64(2099), req.Amount)
				assert.Equal(t, "acct_1", req.DestinationAccount)
				assert.Equal(t, "commission:in_1:acct_1", req.IdempotencyKey)
				assert.Equal(t, "in_1", req.SourceInvoiceID)
				assert.Equal(t, "commission:in_1:acct_1", req.Metadata[commission.MetaIdempotencyKey])
				return &billing.Transfer{ID: "tr_1", Amount: req.Amount}, nil
			})
		f.commissions.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, ev *commission.Event) error {
				assert.Equal(t, commission.StatusTransferred, ev.Status)
				assert.Equal(t, "tr_1", ev.TransferID)
				assert.Equal(t, 1, ev.Attempts)
				return nil
			})
		f.expectMarked("evt_1", shared.WebhookEventProcessed)
		f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, n billing.Notification) error {
				assert.Equal(t, "commission.transferred", n.Kind)
				assert.Equal(t, int64(2099), n.Amount)
				assert.Equal(t, "sub_1", n.SubscriptionID)
				return nil
			})

		result, err := f.uc.HandleEvent(context.Background(), []byte(payload), signature)
		require.NoError(t, err)
		assert.Equal(t, commands.WebhookProcessed, result.Outcome)
		assert.Equal(t, billing.EventInvoicePaymentSucceeded, result.EventType)
	})

	t.Run("failed transfer is parked and the event still succeeds", func(t *testing.T) {
		f := newWebhookFixture(t, false)
		f.deliver(invoicePaid())
		f.expectFirstDelivery("evt_1")
		f.gateway.EXPECT().GetSubscription(gomock.Any(), "sub_1").Return(processorSubscription(referralMetadata()), nil)
		f.subs.EXPECT().Upsert(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)

		var inserted *commission.Event
		f.commissions.EXPECT().Insert(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, ev *commission.Event) (bool, error) {
				inserted = ev
				return true, nil
			})
		f.commissions.EXPECT().GetByKeyForUpdate(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(context.Context, any, string) (*commission.Event, error) {
				return inserted, nil
			})
		f.gateway.EXPECT().CreateTransfer(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errors.New("insufficient platform balance"), errs.ErrPaymentProvider))
		f.commissions.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, ev *commission.Event) error {
				assert.Equal(t, commission.StatusPendingReconciliation, ev.Status)
				assert.Contains(t, ev.LastError, "insufficient platform balance")
				return nil
			})
		f.expectMarked("evt_1", shared.WebhookEventProcessed)
		f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, n billing.Notification) error {
				assert.Equal(t, "commission.pending_reconciliation", n.Kind)
				return nil
			})

		result, err := f.uc.HandleEvent(context.Background(), []byte(payload), signature)
		require.NoError(t, err)
		assert.Equal(t, commands.WebhookProcessed, result.Outcome)
	})

	t.Run("replayed invoice finds the transfer settled", func(t *testing.T) {
		f := newWebhookFixture(t, false)
		ev := invoicePaid()
		ev.ID = "evt_2"
		f.deliver(ev)
		f.expectFirstDelivery("evt_2")
		f.gateway.EXPECT().GetSubscription(gomock.Any(), "sub_1").Return(processorSubscription(referralMetadata()), nil)
		f.subs.EXPECT().Upsert(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
		f.commissions.EXPECT().Insert(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
		f.commissions.EXPECT().GetByKeyForUpdate(gomock.Any(), gomock.Any(), "commission:in_1:acct_1").
			Return(&commission.Event{
				IdempotencyKey:  "commission:in_1:acct_1",
				AffiliateAmount: 2099,
				Currency:        "usd",
				Status:          commission.StatusTransferred,
				TransferID:      "tr_1",
			}, nil)
		f.expectMarked("evt_2", shared.WebhookEventProcessed)
		f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

		result, err := f.uc.HandleEvent(context.Background(), []byte(payload), signature)
		require.NoError(t, err)
		assert.Equal(t, commands.WebhookProcessed, result.Outcome)
	})

	t.Run("direct invoice records the subscription only", func(t *testing.T) {
		f := newWebhookFixture(t, false)
		f.deliver(invoicePaid())
		f.expectFirstDelivery("evt_1")
		f.gateway.EXPECT().GetSubscription(gomock.Any(), "sub_1").
			Return(processorSubscription(commission.DirectTerms(ownerID.String(), "pro").Metadata()), nil)
		f.subs.EXPECT().Upsert(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, sub *subscription.Subscription, _ time.Time) (bool, error) {
				assert.Empty(t, sub.RefCode)
				return true, nil
			})
		f.expectMarked("evt_1", shared.WebhookEventProcessed)
		f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, n billing.Notification) error {
				assert.Equal(t, "invoice.paid", n.Kind)
				return nil
			})

		result, err := f.uc.HandleEvent(context.Background(), []byte(payload), signature)
		require.NoError(t, err)
		assert.Equal(t, commands.WebhookProcessed, result.Outcome)
	})

	t.Run("invoice without subscription is ignored", func(t *testing.T) {
		f := newWebhookFixture(t, false)
		ev := invoicePaid()
		ev.Invoice.SubscriptionID = ""
		f.deliver(ev)
		f.expectFirstDelivery("evt_1")
		f.expectMarked("evt_1", shared.WebhookEventIgnored)

		result, err := f.uc.HandleEvent(context.Background(), []byte(payload), signature)
		require.NoError(t, err)
		assert.Equal(t, commands.WebhookIgnored, result.Outcome)
	})

	t.Run("processor lookup failure is returned for retry", func(t *testing.T) {
		f := newWebhookFixture(t, false)
		f.deliver(invoicePaid())
		f.expectFirstDelivery("evt_1")
		f.gateway.EXPECT().GetSubscription(gomock.Any(), "sub_1").
			Return(nil, errs.Mark(errors.New("timeout"), errs.ErrPaymentProvider))

		result, err := f.uc.HandleEvent(context.Background(), []byte(payload), signature)
		require.Nil(t, result)
		assertMarked(t, err, errs.ErrPaymentProvider)
	})
}

func TestWebhook_SubscriptionLifecycle(t *testing.T) {
	t.Run("updated subscription is upserted", func(t *testing.T) {
		f := newWebhookFixture(t, false)
		f.deliver(&billing.Event{
			ID:           "evt_3",
			Type:         billing.EventCustomerSubscriptionUpdated,
			Created:      fixedNow,
			Subscription: processorSubscription(referralMetadata()),
		})
		f.expectFirstDelivery("evt_3")
		f.subs.EXPECT().Upsert(gomock.Any(), gomock.Any(), gomock.Any(), fixedNow).Return(true, nil)
		f.expectMarked("evt_3", shared.WebhookEventProcessed)
		f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

		result, err := f.uc.HandleEvent(context.Background(), []byte(payload), signature)
		require.NoError(t, err)
		assert.Equal(t, commands.WebhookProcessed, result.Outcome)
	})

	t.Run("subscription without owner metadata is ignored", func(t *testing.T) {
		f := newWebhookFixture(t, false)
		f.deliver(&billing.Event{
			ID:           "evt_4",
			Type:         billing.EventCustomerSubscriptionCreated,
			Created:      fixedNow,
			Subscription: processorSubscription(map[string]string{}),
		})
		f.expectFirstDelivery("evt_4")
		f.expectMarked("evt_4", shared.WebhookEventIgnored)

		result, err := f.uc.HandleEvent(context.Background(), []byte(payload), signature)
		require.NoError(t, err)
		assert.Equal(t, commands.WebhookIgnored, result.Outcome)
	})

	t.Run("deleted subscription is canceled locally", func(t *testing.T) {
		f := newWebhookFixture(t, false)
		f.deliver(&billing.Event{
			ID:           "evt_5",
			Type:         billing.EventCustomerSubscriptionDeleted,
			Created:      fixedNow,
			Subscription: processorSubscription(referralMetadata()),
		})
		f.expectFirstDelivery("evt_5")
		f.subs.EXPECT().Cancel(gomock.Any(), gomock.Any(), "sub_1", fixedNow).Return(true, nil)
		f.expectMarked("evt_5", shared.WebhookEventProcessed)
		f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, n billing.Notification) error {
				assert.Equal(t, "subscription.canceled", n.Kind)
				return nil
			})

		result, err := f.uc.HandleEvent(context.Background(), []byte(payload), signature)
		require.NoError(t, err)
		assert.Equal(t, commands.WebhookProcessed, result.Outcome)
	})

	t.Run("second active subscription is acknowledged", func(t *testing.T) {
		f := newWebhookFixture(t, false)
		f.deliver(&billing.Event{
			ID:           "evt_6",
			Type:         billing.EventCustomerSubscriptionCreated,
			Created:      fixedNow,
			Subscription: processorSubscription(referralMetadata()),
		})
		f.expectFirstDelivery("evt_6")
		f.subs.EXPECT().Upsert(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, errs.ErrDuplicateSubscription)
		f.expectMarked("evt_6", shared.WebhookEventProcessed)
		f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

		_, err := f.uc.HandleEvent(context.Background(), []byte(payload), signature)
		require.NoError(t, err)
	})

	t.Run("transfer.created confirms a parked row", func(t *testing.T) {
		f := newWebhookFixture(t, false)
		f.deliver(&billing.Event{
			ID:      "evt_7",
			Type:    billing.EventTransferCreated,
			Created: fixedNow,
			Transfer: &billing.Transfer{
				ID:       "tr_9",
				Metadata: map[string]string{commission.MetaIdempotencyKey: "commission:in_1:acct_1"},
			},
		})
		f.expectFirstDelivery("evt_7")
		f.commissions.EXPECT().MarkTransferredByKey(gomock.Any(), gomock.Any(), "commission:in_1:acct_1", "tr_9", fixedNow).Return(true, nil)
		f.expectMarked("evt_7", shared.WebhookEventProcessed)

		result, err := f.uc.HandleEvent(context.Background(), []byte(payload), signature)
		require.NoError(t, err)
		assert.Equal(t, commands.WebhookProcessed, result.Outcome)
	})
}
