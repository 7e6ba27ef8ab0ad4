//go:build unit

package commission_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"retrack/internal/domain/commission"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAffiliateAmount(t *testing.T) {
	tests := []struct {
		name   string
		amount int64
		rate   string
		want   int64
	}{
		{name: "floors fractional cents", amount: 2999, rate: "70", want: 2099},
		{name: "fractional rate", amount: 1000, rate: "12.5", want: 125},
		{name: "zero rate", amount: 2999, rate: "0", want: 0},
		{name: "negative rate", amount: 2999, rate: "-5", want: 0},
		{name: "rate above hundred is clamped", amount: 2999, rate: "150", want: 2999},
		{name: "zero amount", amount: 0, rate: "50", want: 0},
		{name: "tiny amount rounds to zero", amount: 1, rate: "50", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, commission.AffiliateAmount(tt.amount, decimal.RequireFromString(tt.rate)))
		})
	}
}

func TestAffiliateAmount_BoundedAndMonotonic(t *testing.T) {
	hundred := decimal.NewFromInt(100)
	step := decimal.RequireFromString("0.37")

	var rates []decimal.Decimal
	for r := decimal.Zero; r.LessThan(hundred); r = r.Add(step) {
		rates = append(rates, r)
	}
	rates = append(rates, hundred)

	var amounts []int64
	for a := int64(0); a <= 3000; a += 7 {
		amounts = append(amounts, a)
	}
	amounts = append(amounts, 2999, 100000, 99999999)

	for _, rate := range rates {
		prev := int64(-1)
		for _, amount := range amounts {
			got := commission.AffiliateAmount(amount, rate)
			exact := decimal.NewFromInt(amount).Mul(rate).Div(hundred)

			require.GreaterOrEqual(t, got, int64(0), "amount=%d rate=%s", amount, rate)
			require.True(t, decimal.NewFromInt(got).LessThanOrEqual(exact),
				"amount=%d rate=%s got=%d exceeds %s", amount, rate, got, exact)
			require.True(t, decimal.NewFromInt(got+1).GreaterThan(exact),
				"amount=%d rate=%s got=%d is not the floor of %s", amount, rate, got, exact)
			if prev >= 0 {
				require.GreaterOrEqual(t, got, prev, "not monotonic in amount at amount=%d rate=%s", amount, rate)
			}
			prev = got
		}
	}

	for _, amount := range amounts {
		prev := int64(0)
		for _, rate := range rates {
			got := commission.AffiliateAmount(amount, rate)
			require.GreaterOrEqual(t, got, prev, "not monotonic in rate at amount=%d rate=%s", amount, rate)
			prev = got
		}
		assert.Equal(t, amount, commission.AffiliateAmount(amount, hundred), "full rate pays the whole amount")
	}
}

func referralTerms() commission.Terms {
	return commission.Terms{
		RefCode:         "ABC-123",
		UserID:          "7c9e6679-7425-40de-944b-e07fc1f90ae7",
		PlanType:        "pro",
		PayoutAccountID: "acct_123",
		Rate:            decimal.NewFromInt(70),
		AffiliateAmount: 2099,
	}
}

func TestTerms_MetadataRoundTrip(t *testing.T) {
	t.Run("referral carries payout fields", func(t *testing.T) {
		md := referralTerms().Metadata()
		assert.Equal(t, "ABC-123", md[commission.MetaRefCode])
		assert.Equal(t, "acct_123", md[commission.MetaPayoutAccount])
		assert.Equal(t, "70", md[commission.MetaCommissionRate])
		assert.Equal(t, "2099", md[commission.MetaAffiliateAmount])

		back := commission.TermsFromMetadata(md)
		assert.True(t, back.IsReferral())
		assert.True(t, back.Rate.Equal(decimal.NewFromInt(70)))
		assert.Equal(t, int64(2099), back.AffiliateAmount)
	})

	t.Run("direct checkout omits payout fields", func(t *testing.T) {
		md := commission.DirectTerms("user-1", "pro").Metadata()
		assert.Equal(t, commission.DirectRefCode, md[commission.MetaRefCode])
		assert.NotContains(t, md, commission.MetaPayoutAccount)
		assert.False(t, commission.TermsFromMetadata(md).IsReferral())
	})

	t.Run("malformed numbers read as zero", func(t *testing.T) {
		back := commission.TermsFromMetadata(map[string]string{
			commission.MetaRefCode:         "ABC-123",
			commission.MetaPayoutAccount:   "acct_1",
			commission.MetaCommissionRate:  "lots",
			commission.MetaAffiliateAmount: "n/a",
		})
		assert.True(t, back.Rate.IsZero())
		assert.Zero(t, back.AffiliateAmount)
	})

	t.Run("empty metadata is direct", func(t *testing.T) {
		back := commission.TermsFromMetadata(nil)
		assert.Equal(t, commission.DirectRefCode, back.RefCode)
		assert.False(t, back.IsReferral())
	})
}

func TestNewEvent(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	inv := commission.InvoicePayment{InvoiceID: "in_1", SubscriptionID: "sub_1", AmountPaid: 2999, Currency: "usd"}

	t.Run("uses the paid amount and a deterministic key", func(t *testing.T) {
		ev, err := commission.NewEvent(inv, referralTerms(), now)
		require.NoError(t, err)
		assert.Equal(t, int64(2099), ev.AffiliateAmount)
		assert.Equal(t, commission.StatusPending, ev.Status)
		assert.Equal(t, "commission:in_1:acct_123", ev.IdempotencyKey)
		assert.Equal(t, commission.IdempotencyKey("in_1", "acct_123"), ev.IdempotencyKey)
		assert.True(t, ev.NeedsTransfer())
	})

	t.Run("errors", func(t *testing.T) {
		_, err := commission.NewEvent(inv, commission.DirectTerms("u", "pro"), now)
		assert.True(t, errors.Is(err, commission.ErrNotReferral))

		_, err = commission.NewEvent(commission.InvoicePayment{AmountPaid: 100}, referralTerms(), now)
		assert.True(t, errors.Is(err, commission.ErrMissingInvoice))

		_, err = commission.NewEvent(commission.InvoicePayment{InvoiceID: "in_2", AmountPaid: 1}, referralTerms(), now)
		assert.True(t, errors.Is(err, commission.ErrNothingToPay))
	})
}

func TestEvent_Lifecycle(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	ev, err := commission.NewEvent(commission.InvoicePayment{InvoiceID: "in_1", AmountPaid: 2999, Currency: "usd"}, referralTerms(), now)
	require.NoError(t, err)

	require.NoError(t, ev.BeginAttempt(now))
	ev.MarkFailed(errors.New(strings.Repeat("x", 800)), now.Add(time.Second))
	assert.Equal(t, commission.StatusPendingReconciliation, ev.Status)
	assert.Len(t, ev.LastError, 500)
	assert.Equal(t, 1, ev.Attempts)
	assert.True(t, ev.NeedsTransfer())

	require.NoError(t, ev.BeginAttempt(now))
	ev.MarkTransferred("tr_1", now.Add(2*time.Second))
	assert.Equal(t, commission.StatusTransferred, ev.Status)
	assert.Equal(t, "tr_1", ev.TransferID)
	assert.Empty(t, ev.LastError)
	assert.Equal(t, 2, ev.Attempts)
	assert.False(t, ev.NeedsTransfer())

	assert.ErrorIs(t, ev.BeginAttempt(now), commission.ErrAlreadySettled)
}
