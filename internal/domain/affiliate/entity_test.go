//go:build unit

package affiliate_test

import (
	"strings"
	"testing"
	"time"

	"retrack/internal/domain/affiliate"
	"retrack/internal/pkg/ptr"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		refCode string
		account string
		rate    string
		errIs   error
	}{
		{name: "valid", refCode: "ABC-123", account: "acct_1", rate: "70"},
		{name: "underscore allowed", refCode: "spring_sale", account: "acct_1", rate: "0"},
		{name: "space rejected", refCode: "ABC 123", account: "acct_1", rate: "10", errIs: affiliate.ErrInvalidRefCode},
		{name: "punctuation rejected", refCode: "abc!", account: "acct_1", rate: "10", errIs: affiliate.ErrInvalidRefCode},
		{name: "empty rejected", refCode: "", account: "acct_1", rate: "10", errIs: affiliate.ErrInvalidRefCode},
		{name: "too long", refCode: strings.Repeat("a", affiliate.MaxRefCodeLength+1), account: "acct_1", rate: "10", errIs: affiliate.ErrRefCodeTooLong},
		{name: "missing account", refCode: "ABC", account: "  ", rate: "10", errIs: affiliate.ErrMissingPayoutAccount},
		{name: "rate above 100", refCode: "ABC", account: "acct_1", rate: "100.01", errIs: affiliate.ErrInvalidCommissionRate},
		{name: "negative rate", refCode: "ABC", account: "acct_1", rate: "-1", errIs: affiliate.ErrInvalidCommissionRate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := affiliate.New(tt.refCode, tt.account, decimal.RequireFromString(tt.rate), true, now)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.refCode, a.RefCode())
			assert.True(t, a.Active())
		})
	}
}

func TestApply(t *testing.T) {
	a, err := affiliate.New("ABC-123", "acct_1", decimal.NewFromInt(70), true, now)
	require.NoError(t, err)

	later := now.Add(time.Hour)
	require.NoError(t, a.Apply(affiliate.Patch{CommissionRate: ptr.Of(decimal.RequireFromString("55.555"))}, later))
	assert.Equal(t, "acct_1", a.PayoutAccountID(), "omitted fields keep their value")
	assert.Equal(t, "55.56", a.CommissionRate().String())
	assert.True(t, a.Active())
	assert.Equal(t, later, a.UpdatedAt())

	require.NoError(t, a.Apply(affiliate.Patch{Active: ptr.Of(false)}, later))
	assert.False(t, a.Active())

	err = a.Apply(affiliate.Patch{PayoutAccountID: ptr.Of("")}, later)
	assert.ErrorIs(t, err, affiliate.ErrMissingPayoutAccount)
	assert.Equal(t, "acct_1", a.PayoutAccountID())
}

func TestTerms(t *testing.T) {
	a, err := affiliate.New("ABC-123", "acct_1", decimal.NewFromInt(70), true, now)
	require.NoError(t, err)

	terms, err := a.Terms("user-1", "pro", 2999)
	require.NoError(t, err)
	assert.Equal(t, "ABC-123", terms.RefCode)
	assert.Equal(t, int64(2099), terms.AffiliateAmount)
	assert.True(t, terms.IsReferral())

	inactive := affiliate.Reconstruct(a.ID(), "ABC-123", "acct_1", decimal.NewFromInt(70), false, now, now)
	_, err = inactive.Terms("user-1", "pro", 2999)
	assert.ErrorIs(t, err, affiliate.ErrInactive)
}
