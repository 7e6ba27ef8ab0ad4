package readstore

import (
	"context"

	"retrack/internal/infra"
	sqlc "retrack/internal/infra/sqlc/generated"
	"retrack/internal/pkg/pgconv"
	"retrack/internal/usecase/queries"

	"github.com/google/uuid"
)

type SubscriptionViewQueries interface {
	GetLatestQualifyingSubscription(ctx context.Context, db sqlc.DBTX, ownerID uuid.UUID) (sqlc.UserSubscriptions, error)
	GetLatestSubscriptionWithCustomer(ctx context.Context, db sqlc.DBTX, ownerID uuid.UUID) (sqlc.UserSubscriptions, error)
}

type SubscriptionReadStore struct {
	queries SubscriptionViewQueries
	db      sqlc.DBTX
}

func NewSubscriptionReadStore(queries SubscriptionViewQueries, db sqlc.DBTX) *SubscriptionReadStore {
	return &SubscriptionReadStore{
		queries: queries,
		db:      db,
	}
}

// LatestQualifying returns the most recently created active or trialing row.
func (r *SubscriptionReadStore) LatestQualifying(ctx context.Context, ownerID uuid.UUID) (*queries.SubscriptionView, error) {
	row, err := r.queries.GetLatestQualifyingSubscription(ctx, r.db, ownerID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("subscription not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get subscription", err)
	}
	return toSubscriptionView(row), nil
}

func (r *SubscriptionReadStore) LatestWithCustomer(ctx context.Context, ownerID uuid.UUID) (*queries.SubscriptionView, error) {
	row, err := r.queries.GetLatestSubscriptionWithCustomer(ctx, r.db, ownerID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("subscription not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get subscription", err)
	}
	return toSubscriptionView(row), nil
}

func toSubscriptionView(row sqlc.UserSubscriptions) *queries.SubscriptionView {
	return &queries.SubscriptionView{
		ID:                   row.ID,
		OwnerID:              row.OwnerID,
		StripeCustomerID:     row.StripeCustomerID,
		StripeSubscriptionID: row.StripeSubscriptionID,
		PlanType:             row.PlanType,
		Status:               row.Status,
		CurrentPeriodStart:   pgconv.TimeFromPgtype(row.CurrentPeriodStart),
		CurrentPeriodEnd:     pgconv.TimeFromPgtype(row.CurrentPeriodEnd),
		CancelAtPeriodEnd:    row.CancelAtPeriodEnd,
		RefCode:              pgconv.StringFromPgtype(row.RefCode),
		CreatedAt:            pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
