//go:build unit

package subscription_test

import (
	"testing"
	"time"

	"retrack/internal/domain/subscription"

	"github.com/stretchr/testify/assert"
)

func TestEvaluate(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		sub  *subscription.Subscription
		want subscription.Entitlement
	}{
		{name: "no subscription", sub: nil, want: subscription.EntitlementNone},
		{
			name: "active within period",
			sub:  &subscription.Subscription{Status: subscription.StatusActive, CurrentPeriodEnd: now.Add(24 * time.Hour)},
			want: subscription.EntitlementActive,
		},
		{
			name: "trialing within period",
			sub:  &subscription.Subscription{Status: subscription.StatusTrialing, CurrentPeriodEnd: now.Add(time.Hour)},
			want: subscription.EntitlementActive,
		},
		{
			name: "period end equal to now still active",
			sub:  &subscription.Subscription{Status: subscription.StatusActive, CurrentPeriodEnd: now},
			want: subscription.EntitlementActive,
		},
		{
			name: "active one second past period end",
			sub:  &subscription.Subscription{Status: subscription.StatusActive, CurrentPeriodEnd: now.Add(-time.Second)},
			want: subscription.EntitlementExpired,
		},
		{
			name: "past due never qualifies",
			sub:  &subscription.Subscription{Status: subscription.StatusPastDue, CurrentPeriodEnd: now.Add(time.Hour)},
			want: subscription.EntitlementNone,
		},
		{
			name: "canceled never qualifies",
			sub:  &subscription.Subscription{Status: subscription.StatusCanceled, CurrentPeriodEnd: now.Add(time.Hour)},
			want: subscription.EntitlementNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := subscription.Evaluate(tt.sub, now)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want == subscription.EntitlementActive, got.Entitled())
		})
	}
}
