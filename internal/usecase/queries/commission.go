package queries

import (
	"context"

	"retrack/internal/domain/commission"
)

type CommissionReadStore interface {
	ListByStatus(ctx context.Context, status string, limit int32) ([]*CommissionEventView, error)
}

type CommissionQueries interface {
	ListPendingReconciliation(ctx context.Context, limit int) ([]*CommissionEventView, error)
}

type commissionQueriesImpl struct {
	repo CommissionReadStore
}

func NewCommissionQueries(repo CommissionReadStore) CommissionQueries {
	return &commissionQueriesImpl{repo: repo}
}

func (q *commissionQueriesImpl) ListPendingReconciliation(ctx context.Context, limit int) ([]*CommissionEventView, error) {
	return q.repo.ListByStatus(ctx, string(commission.StatusPendingReconciliation), int32(ValidateLimit(limit))) // #nosec G115 -- bounded by MaxListLimit
}
