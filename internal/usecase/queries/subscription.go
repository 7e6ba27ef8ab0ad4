package queries

import (
	"context"

	"retrack/internal/domain/subscription"
	"retrack/internal/infra"
	"retrack/internal/pkg/clock"

	"github.com/google/uuid"
)

type SubscriptionReadStore interface {
	LatestQualifying(ctx context.Context, ownerID uuid.UUID) (*SubscriptionView, error)
	LatestWithCustomer(ctx context.Context, ownerID uuid.UUID) (*SubscriptionView, error)
}

// SubscriptionCheck answers whether the owner is currently entitled to paid features.
type SubscriptionCheck struct {
	HasSubscription bool
	Status          subscription.Entitlement
	Subscription    *SubscriptionView
}

type SubscriptionQueries interface {
	Check(ctx context.Context, ownerID uuid.UUID) (*SubscriptionCheck, error)
}

type subscriptionQueriesImpl struct {
	repo  SubscriptionReadStore
	clock clock.Clock
}

func NewSubscriptionQueries(repo SubscriptionReadStore, clk clock.Clock) SubscriptionQueries {
	return &subscriptionQueriesImpl{repo: repo, clock: clk}
}

// Check never writes: a stale "active" row past its period end is reported as expired and left
// for the next webhook delivery to correct.
func (q *subscriptionQueriesImpl) Check(ctx context.Context, ownerID uuid.UUID) (*SubscriptionCheck, error) {
	view, err := q.repo.LatestQualifying(ctx, ownerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return &SubscriptionCheck{Status: subscription.EntitlementNone}, nil
		}
		return nil, err
	}

	entitlement := subscription.Evaluate(&subscription.Subscription{
		Status:           subscription.Status(view.Status),
		CurrentPeriodEnd: view.CurrentPeriodEnd,
	}, q.clock.Now())

	return &SubscriptionCheck{
		HasSubscription: entitlement.Entitled(),
		Status:          entitlement,
		Subscription:    view,
	}, nil
}
