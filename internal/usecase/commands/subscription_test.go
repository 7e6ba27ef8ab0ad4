//go:build unit

package commands_test

import (
	"context"
	"testing"

	"retrack/internal/domain/billing"
	"retrack/internal/pkg/errs"
	"retrack/internal/usecase/commands"
	"retrack/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSubscription_CreatePortalSession(t *testing.T) {
	userID := uuid.New()
	const defaultReturn = "https://app.example.com/settings"

	t.Run("falls back to the configured return url", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewSubscriptionUseCase(f.uow, f.gateway, defaultReturn)

		f.reads.EXPECT().LatestBillableSubscription(gomock.Any(), userID).
			Return(&shared.SubscriptionSnapshot{CustomerID: "cus_1"}, nil)
		f.gateway.EXPECT().CreatePortalSession(gomock.Any(), billing.PortalRequest{CustomerID: "cus_1", ReturnURL: defaultReturn}).
			Return("https://billing.example.com/p/1", nil)

		url, err := uc.CreatePortalSession(context.Background(), userID, "  ")
		require.NoError(t, err)
		assert.Equal(t, "https://billing.example.com/p/1", url)
	})

	t.Run("no billable subscription", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewSubscriptionUseCase(f.uow, f.gateway, defaultReturn)

		f.reads.EXPECT().LatestBillableSubscription(gomock.Any(), userID).Return(nil, notFound("subscription not found"))

		_, err := uc.CreatePortalSession(context.Background(), userID, "")
		assertMarked(t, err, errs.ErrSubscriptionNotFound)
	})

	t.Run("subscription without customer", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewSubscriptionUseCase(f.uow, f.gateway, defaultReturn)

		f.reads.EXPECT().LatestBillableSubscription(gomock.Any(), userID).Return(&shared.SubscriptionSnapshot{}, nil)

		_, err := uc.CreatePortalSession(context.Background(), userID, "https://x.example.com")
		assertMarked(t, err, errs.ErrSubscriptionNotFound)
	})
}
