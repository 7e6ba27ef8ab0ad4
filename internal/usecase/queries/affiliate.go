package queries

import (
	"context"

	"retrack/internal/infra"
	"retrack/internal/pkg/errs"
)

type AffiliateReadStore interface {
	FindByRefCode(ctx context.Context, refCode string) (*AffiliateView, error)
	List(ctx context.Context, limit int32) ([]*AffiliateView, error)
}

type AffiliateQueries interface {
	GetByRefCode(ctx context.Context, refCode string) (*AffiliateView, error)
	List(ctx context.Context, limit int) ([]*AffiliateView, error)
}

type affiliateQueriesImpl struct {
	repo AffiliateReadStore
}

func NewAffiliateQueries(repo AffiliateReadStore) AffiliateQueries {
	return &affiliateQueriesImpl{repo: repo}
}

func (q *affiliateQueriesImpl) GetByRefCode(ctx context.Context, refCode string) (*AffiliateView, error) {
	a, err := q.repo.FindByRefCode(ctx, refCode)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrAffiliateNotFound
		}
		return nil, err
	}
	return a, nil
}

func (q *affiliateQueriesImpl) List(ctx context.Context, limit int) ([]*AffiliateView, error) {
	return q.repo.List(ctx, int32(ValidateLimit(limit))) // #nosec G115 -- bounded by MaxListLimit
}
