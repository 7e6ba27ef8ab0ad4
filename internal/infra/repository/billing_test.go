//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"retrack/internal/domain/affiliate"
	"retrack/internal/domain/commission"
	"retrack/internal/domain/subscription"
	"retrack/internal/infra"
	"retrack/internal/infra/repository"
	sqlc "retrack/internal/infra/sqlc/generated"
	"retrack/internal/pkg/errs"
	"retrack/internal/usecase/shared"
	repositorymock "retrack/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var eventAt = time.Date(2026, 4, 10, 15, 30, 0, 0, time.UTC)

// =============================================================================
// Affiliate Repository Tests
// =============================================================================

func TestAffiliateRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		dbErr      error
		expectMark error
	}{
		{name: "success"},
		{name: "error: ref_code taken", dbErr: &pgconn.PgError{Code: "23505"}, expectMark: errs.ErrDuplicateRefCode},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockAffiliateWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewAffiliateRepository(mockQueries)

			a, err := affiliate.New("ABCD2345", "acct_1", decimal.NewFromInt(70), true, eventAt)
			require.NoError(t, err)

			mockQueries.EXPECT().CreateAffiliate(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateAffiliateParams) (uuid.UUID, error) {
					assert.Equal(t, "ABCD2345", arg.RefCode)
					assert.Equal(t, "acct_1", arg.StripeAccountID)
					return a.ID(), tc.dbErr
				})

			err = repo.Create(ctx, mockDB, a)
			if tc.expectMark == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errs.Is(err, tc.expectMark))
		})
	}
}

func TestAffiliateRepository_GetByRefCodeForUpdate_NotFound(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockAffiliateWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewAffiliateRepository(mockQueries)

	mockQueries.EXPECT().GetAffiliateByRefCodeForUpdate(ctx, mockDB, "ZZZZ9999").Return(sqlc.Affiliates{}, pgx.ErrNoRows)

	a, err := repo.GetByRefCodeForUpdate(ctx, mockDB, "ZZZZ9999")
	require.Error(t, err)
	assert.Nil(t, a)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
	assert.True(t, errs.Is(err, errs.ErrAffiliateNotFound))
}

// =============================================================================
// Subscription Repository Tests
// =============================================================================

func TestSubscriptionRepository_Upsert(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		rows       int64
		dbErr      error
		wantApply  bool
		expectMark error
	}{
		{name: "applied", rows: 1, wantApply: true},
		{name: "stale event leaves the row alone", rows: 0, wantApply: false},
		{
			name:       "second active subscription for the owner",
			dbErr:      &pgconn.PgError{Code: "23505", ConstraintName: "uq_user_subscriptions_one_active"},
			expectMark: errs.ErrDuplicateSubscription,
		},
		{
			name:  "other unique violation is not a duplicate subscription",
			dbErr: &pgconn.PgError{Code: "23505", ConstraintName: "user_subscriptions_pkey"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockSubscriptionWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewSubscriptionRepository(mockQueries)

			sub := &subscription.Subscription{
				OwnerID:                uuid.New(),
				CustomerID:             "cus_1",
				ProviderSubscriptionID: "sub_1",
				PlanType:               "pro",
				Status:                 subscription.StatusActive,
				CurrentPeriodEnd:       eventAt.AddDate(0, 1, 0),
			}

			mockQueries.EXPECT().UpsertSubscription(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpsertSubscriptionParams) (int64, error) {
					assert.NotEqual(t, uuid.Nil, arg.ID)
					assert.Equal(t, "active", arg.Status)
					assert.False(t, arg.CurrentPeriodStart.Valid)
					assert.True(t, arg.CurrentPeriodEnd.Valid)
					assert.False(t, arg.RefCode.Valid)
					assert.Equal(t, eventAt, arg.LastEventAt.Time)
					return tc.rows, tc.dbErr
				})

			applied, err := repo.Upsert(ctx, mockDB, sub, eventAt)
			switch {
			case tc.expectMark != nil:
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.expectMark))
			case tc.dbErr != nil:
				require.Error(t, err)
				assert.False(t, errs.Is(err, errs.ErrDuplicateSubscription))
				assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
			default:
				require.NoError(t, err)
				assert.Equal(t, tc.wantApply, applied)
			}
		})
	}
}

func TestSubscriptionRepository_Cancel(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockSubscriptionWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewSubscriptionRepository(mockQueries)

	mockQueries.EXPECT().CancelSubscription(ctx, mockDB, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CancelSubscriptionParams) (int64, error) {
			assert.Equal(t, "sub_1", arg.StripeSubscriptionID)
			return 1, nil
		})

	applied, err := repo.Cancel(ctx, mockDB, "sub_1", eventAt)
	require.NoError(t, err)
	assert.True(t, applied)
}

// =============================================================================
// Commission Repository Tests
// =============================================================================

func newCommissionEvent(t *testing.T) *commission.Event {
	t.Helper()
	ev, err := commission.NewEvent(commission.InvoicePayment{
		InvoiceID:      "in_1",
		SubscriptionID: "sub_1",
		AmountPaid:     2999,
		Currency:       "usd",
	}, commission.Terms{
		RefCode:         "ABCD2345",
		PayoutAccountID: "acct_1",
		Rate:            decimal.NewFromInt(70),
	}, eventAt)
	require.NoError(t, err)
	return ev
}

func TestCommissionRepository_Insert(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name         string
		rows         int64
		dbErr        error
		wantInserted bool
	}{
		{name: "fresh row", rows: 1, wantInserted: true},
		{name: "idempotency key already present", rows: 0, wantInserted: false},
		{name: "database failure", dbErr: errors.New("boom")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockCommissionWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewCommissionRepository(mockQueries)
			ev := newCommissionEvent(t)

			mockQueries.EXPECT().InsertCommissionEvent(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.InsertCommissionEventParams) (int64, error) {
					assert.Equal(t, "commission:in_1:acct_1", arg.IdempotencyKey)
					assert.EqualValues(t, 2099, arg.AffiliateAmount)
					assert.Equal(t, "pending", arg.Status)
					return tc.rows, tc.dbErr
				})

			inserted, err := repo.Insert(ctx, mockDB, ev)
			if tc.dbErr != nil {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantInserted, inserted)
		})
	}
}

func TestCommissionRepository_Update(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockCommissionWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewCommissionRepository(mockQueries)

	ev := newCommissionEvent(t)
	ev.MarkFailed(errors.New("insufficient funds"), eventAt)

	mockQueries.EXPECT().UpdateCommissionEventStatus(ctx, mockDB, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpdateCommissionEventStatusParams) error {
			assert.Equal(t, ev.ID, arg.ID)
			assert.Equal(t, "pending_reconciliation", arg.Status)
			assert.False(t, arg.TransferID.Valid)
			assert.Equal(t, "insufficient funds", arg.LastError.String)
			return nil
		})

	require.NoError(t, repo.Update(ctx, mockDB, ev))
}

func TestCommissionRepository_GetByIDForUpdate_NotFound(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockCommissionWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewCommissionRepository(mockQueries)
	id := uuid.New()

	mockQueries.EXPECT().GetCommissionEventByIDForUpdate(ctx, mockDB, id).Return(sqlc.CommissionEvents{}, pgx.ErrNoRows)

	_, err := repo.GetByIDForUpdate(ctx, mockDB, id)
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrCommissionNotFound))
}

// =============================================================================
// Webhook Event Repository Tests
// =============================================================================

func TestWebhookEventRepository_Record(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name      string
		row       sqlc.RecordWebhookEventRow
		wantState shared.WebhookEventState
	}{
		{
			name:      "first delivery",
			row:       sqlc.RecordWebhookEventRow{Status: "received", Inserted: true},
			wantState: shared.WebhookEventState{Status: shared.WebhookEventReceived, Inserted: true},
		},
		{
			name:      "redelivery of a processed event",
			row:       sqlc.RecordWebhookEventRow{Status: "processed", Inserted: false},
			wantState: shared.WebhookEventState{Status: shared.WebhookEventProcessed, Inserted: false},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockWebhookEventWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewWebhookEventRepository(mockQueries)

			mockQueries.EXPECT().RecordWebhookEvent(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.RecordWebhookEventParams) (sqlc.RecordWebhookEventRow, error) {
					assert.Equal(t, "evt_1", arg.EventID)
					// empty payloads are stored as an empty JSON object
					assert.Equal(t, []byte("{}"), arg.Payload)
					return tc.row, nil
				})

			state, err := repo.Record(ctx, mockDB, shared.WebhookEventRecord{
				EventID:    "evt_1",
				EventType:  "invoice.payment_succeeded",
				ReceivedAt: eventAt,
			})
			require.NoError(t, err)
			assert.Equal(t, tc.wantState, *state)
		})
	}
}

func TestWebhookEventRepository_Mark(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockWebhookEventWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewWebhookEventRepository(mockQueries)

	mockQueries.EXPECT().MarkWebhookEvent(ctx, mockDB, gomock.Any()).Return(errors.New("deadlock detected"))

	err := repo.Mark(ctx, mockDB, "evt_1", shared.WebhookEventIgnored, "", eventAt)
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
}
