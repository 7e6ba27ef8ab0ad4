//go:build unit

package commands_test

import (
	"context"
	"testing"

	"retrack/internal/domain/billing"
	"retrack/internal/domain/commission"
	"retrack/internal/pkg/errs"
	"retrack/internal/usecase/commands"
	"retrack/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func checkoutRequest(refCode string) commands.CheckoutRequest {
	return commands.CheckoutRequest{
		PriceID:    "price_pro_monthly",
		RefCode:    refCode,
		SuccessURL: "https://app.example.com/success",
		CancelURL:  "https://app.example.com/cancel",
	}
}

func activeAffiliate(refCode string) *shared.AffiliateSnapshot {
	return &shared.AffiliateSnapshot{
		ID:              uuid.New(),
		RefCode:         refCode,
		PayoutAccountID: "acct_1",
		CommissionRate:  decimal.NewFromInt(70),
		Active:          true,
		CreatedAt:       fixedNow,
		UpdatedAt:       fixedNow,
	}
}

func TestCheckout_CreateCheckoutSession(t *testing.T) {
	caller := commands.Caller{UserID: uuid.New(), Email: "seller@example.com"}
	price := &billing.Price{ID: "price_pro_monthly", UnitAmount: 2999, Currency: "usd", Recurring: true}

	t.Run("referred checkout freezes commission terms into metadata", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewCheckoutUseCase(f.uow, f.gateway, nil, "pro")

		f.reads.EXPECT().LatestQualifyingSubscription(gomock.Any(), caller.UserID).Return(nil, notFound("subscription not found"))
		f.reads.EXPECT().AffiliateByRefCode(gomock.Any(), "ABC-123").Return(activeAffiliate("ABC-123"), nil)
		f.gateway.EXPECT().GetPrice(gomock.Any(), "price_pro_monthly").Return(price, nil)
		f.gateway.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req billing.CheckoutRequest) (*billing.CheckoutSession, error) {
				assert.True(t, req.Recurring)
				assert.Equal(t, caller.UserID.String(), req.ClientReferenceID)
				assert.Equal(t, caller.Email, req.CustomerEmail)
				assert.Equal(t, "ABC-123", req.Metadata[commission.MetaRefCode])
				assert.Equal(t, caller.UserID.String(), req.Metadata[commission.MetaUserID])
				assert.Equal(t, "acct_1", req.Metadata[commission.MetaPayoutAccount])
				assert.Equal(t, "70", req.Metadata[commission.MetaCommissionRate])
				assert.Equal(t, "2099", req.Metadata[commission.MetaAffiliateAmount])
				assert.Equal(t, "pro", req.Metadata[commission.MetaPlanType])
				assert.Nil(t, req.TransferOnCharge)
				return &billing.CheckoutSession{ID: "cs_1", URL: "https://checkout.example.com/cs_1"}, nil
			})

		result, err := uc.CreateCheckoutSession(context.Background(), checkoutRequest("ABC-123"), caller)
		require.NoError(t, err)
		assert.Equal(t, "cs_1", result.SessionID)
		assert.Equal(t, "https://checkout.example.com/cs_1", result.URL)
		require.NotNil(t, result.Affiliate)
		assert.Equal(t, "ABC-123", result.Affiliate.RefCode)
		assert.Equal(t, int64(2099), result.Affiliate.AffiliateAmount)
		assert.Equal(t, "usd", result.Affiliate.Currency)
	})

	t.Run("referred one-time purchase transfers the affiliate share on charge", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewCheckoutUseCase(f.uow, f.gateway, nil, "pro")
		oneTime := &billing.Price{ID: "price_lifetime", UnitAmount: 10000, Currency: "usd"}

		f.reads.EXPECT().LatestQualifyingSubscription(gomock.Any(), caller.UserID).Return(nil, notFound("subscription not found"))
		f.reads.EXPECT().AffiliateByRefCode(gomock.Any(), "ABC-123").Return(activeAffiliate("ABC-123"), nil)
		f.gateway.EXPECT().GetPrice(gomock.Any(), "price_pro_monthly").Return(oneTime, nil)
		f.gateway.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req billing.CheckoutRequest) (*billing.CheckoutSession, error) {
				assert.False(t, req.Recurring)
				require.NotNil(t, req.TransferOnCharge)
				assert.Equal(t, "acct_1", req.TransferOnCharge.DestinationAccount)
				assert.Equal(t, int64(7000), req.TransferOnCharge.Amount)
				assert.Equal(t, "7000", req.Metadata[commission.MetaAffiliateAmount])
				return &billing.CheckoutSession{ID: "cs_3", URL: "https://checkout.example.com/cs_3"}, nil
			})

		result, err := uc.CreateCheckoutSession(context.Background(), checkoutRequest("ABC-123"), caller)
		require.NoError(t, err)
		require.NotNil(t, result.Affiliate)
		assert.Equal(t, int64(7000), result.Affiliate.AffiliateAmount)
	})

	t.Run("direct one-time purchase has no transfer", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewCheckoutUseCase(f.uow, f.gateway, nil, "pro")

		f.reads.EXPECT().LatestQualifyingSubscription(gomock.Any(), caller.UserID).Return(nil, notFound("subscription not found"))
		f.gateway.EXPECT().GetPrice(gomock.Any(), gomock.Any()).Return(&billing.Price{ID: "price_lifetime", UnitAmount: 10000, Currency: "usd"}, nil)
		f.gateway.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req billing.CheckoutRequest) (*billing.CheckoutSession, error) {
				assert.Nil(t, req.TransferOnCharge)
				return &billing.CheckoutSession{ID: "cs_4", URL: "https://checkout.example.com/cs_4"}, nil
			})

		_, err := uc.CreateCheckoutSession(context.Background(), checkoutRequest(""), caller)
		require.NoError(t, err)
	})

	t.Run("direct checkout carries the direct ref code", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewCheckoutUseCase(f.uow, f.gateway, nil, "pro")

		f.reads.EXPECT().LatestQualifyingSubscription(gomock.Any(), caller.UserID).Return(nil, notFound("subscription not found"))
		f.gateway.EXPECT().GetPrice(gomock.Any(), gomock.Any()).Return(price, nil)
		f.gateway.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req billing.CheckoutRequest) (*billing.CheckoutSession, error) {
				assert.Equal(t, commission.DirectRefCode, req.Metadata[commission.MetaRefCode])
				assert.NotContains(t, req.Metadata, commission.MetaPayoutAccount)
				return &billing.CheckoutSession{ID: "cs_2", URL: "https://checkout.example.com/cs_2"}, nil
			})

		result, err := uc.CreateCheckoutSession(context.Background(), checkoutRequest(""), caller)
		require.NoError(t, err)
		assert.Nil(t, result.Affiliate)
	})

	tests := []struct {
		name    string
		refCode string
		setup   func(f *fixture)
		errIs   error
	}{
		{
			name:    "owner already subscribed",
			refCode: "ABC-123",
			setup: func(f *fixture) {
				f.reads.EXPECT().LatestQualifyingSubscription(gomock.Any(), caller.UserID).
					Return(&shared.SubscriptionSnapshot{ID: uuid.New(), Status: "active"}, nil)
			},
			errIs: errs.ErrDuplicateSubscription,
		},
		{
			name:    "malformed ref code never reaches the processor",
			refCode: "bad code!",
			setup: func(f *fixture) {
				f.reads.EXPECT().LatestQualifyingSubscription(gomock.Any(), caller.UserID).Return(nil, notFound("subscription not found"))
			},
			errIs: errs.ErrInvalidReferralCode,
		},
		{
			name:    "unknown ref code",
			refCode: "NOPE",
			setup: func(f *fixture) {
				f.reads.EXPECT().LatestQualifyingSubscription(gomock.Any(), caller.UserID).Return(nil, notFound("subscription not found"))
				f.reads.EXPECT().AffiliateByRefCode(gomock.Any(), "NOPE").Return(nil, notFound("affiliate not found"))
			},
			errIs: errs.ErrInvalidReferralCode,
		},
		{
			name:    "inactive affiliate",
			refCode: "ABC-123",
			setup: func(f *fixture) {
				snap := activeAffiliate("ABC-123")
				snap.Active = false
				f.reads.EXPECT().LatestQualifyingSubscription(gomock.Any(), caller.UserID).Return(nil, notFound("subscription not found"))
				f.reads.EXPECT().AffiliateByRefCode(gomock.Any(), "ABC-123").Return(snap, nil)
			},
			errIs: errs.ErrInvalidReferralCode,
		},
		{
			name:    "unknown price",
			refCode: "",
			setup: func(f *fixture) {
				f.reads.EXPECT().LatestQualifyingSubscription(gomock.Any(), caller.UserID).Return(nil, notFound("subscription not found"))
				f.gateway.EXPECT().GetPrice(gomock.Any(), gomock.Any()).Return(nil, errs.ErrPriceNotFound)
			},
			errIs: errs.ErrPriceNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			uc := commands.NewCheckoutUseCase(f.uow, f.gateway, nil, "pro")
			tt.setup(f)

			result, err := uc.CreateCheckoutSession(context.Background(), checkoutRequest(tt.refCode), caller)
			require.Nil(t, result)
			require.Error(t, err)
			assertMarked(t, err, tt.errIs)
		})
	}

	t.Run("missing urls are validation errors", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewCheckoutUseCase(f.uow, f.gateway, nil, "pro")

		req := checkoutRequest("")
		req.SuccessURL = " "
		_, err := uc.CreateCheckoutSession(context.Background(), req, caller)
		assertMarked(t, err, errs.ErrDomainValidation)
	})
}
