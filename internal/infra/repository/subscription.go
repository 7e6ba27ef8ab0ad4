package repository

import (
	"context"
	"time"

	"retrack/internal/domain/subscription"
	"retrack/internal/infra"
	sqlc "retrack/internal/infra/sqlc/generated"
	"retrack/internal/pkg/errs"
	"retrack/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type SubscriptionWriteQueries interface {
	UpsertSubscription(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertSubscriptionParams) (int64, error)
	CancelSubscription(ctx context.Context, db sqlc.DBTX, arg sqlc.CancelSubscriptionParams) (int64, error)
}

type SubscriptionRepository struct {
	queries SubscriptionWriteQueries
}

func NewSubscriptionRepository(queries SubscriptionWriteQueries) *SubscriptionRepository {
	return &SubscriptionRepository{queries: queries}
}

// Upsert reports false when a newer event already updated the row.
func (r *SubscriptionRepository) Upsert(ctx context.Context, tx sqlc.DBTX, sub *subscription.Subscription, eventAt time.Time) (bool, error) {
	id := sub.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	rows, err := r.queries.UpsertSubscription(ctx, tx, sqlc.UpsertSubscriptionParams{
		ID:                   id,
		OwnerID:              sub.OwnerID,
		StripeCustomerID:     sub.CustomerID,
		StripeSubscriptionID: sub.ProviderSubscriptionID,
		PlanType:             sub.PlanType,
		Status:               sub.Status.String(),
		CurrentPeriodStart:   pgconv.OptionalTime(sub.CurrentPeriodStart),
		CurrentPeriodEnd:     pgconv.OptionalTime(sub.CurrentPeriodEnd),
		CancelAtPeriodEnd:    sub.CancelAtPeriodEnd,
		RefCode:              pgconv.OptionalString(sub.RefCode),
		LastEventAt:          pgconv.TimeToPgtype(eventAt),
	})
	if err != nil {
		wrapped := infra.WrapRepoErr("failed to upsert subscription", err)
		if infra.ConstraintName(err) == "uq_user_subscriptions_one_active" {
			return false, errs.Mark(wrapped, errs.ErrDuplicateSubscription)
		}
		return false, wrapped
	}
	return rows > 0, nil
}

func (r *SubscriptionRepository) Cancel(ctx context.Context, tx sqlc.DBTX, providerSubscriptionID string, eventAt time.Time) (bool, error) {
	rows, err := r.queries.CancelSubscription(ctx, tx, sqlc.CancelSubscriptionParams{
		StripeSubscriptionID: providerSubscriptionID,
		LastEventAt:          pgconv.TimeToPgtype(eventAt),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to cancel subscription", err)
	}
	return rows > 0, nil
}
