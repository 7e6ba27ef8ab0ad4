package queries

import (
	"context"
	"time"

	"retrack/internal/infra"
	"retrack/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidDateRange = errs.New("from must not be after to")

type SaleFilters struct {
	Platform string
	From     *time.Time
	To       *time.Time
}

type SaleReadStore interface {
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*SaleView, error)
	List(ctx context.Context, ownerID uuid.UUID, filters SaleFilters, after *Position, limit int32) ([]*SaleView, error)
	Summarize(ctx context.Context, ownerID uuid.UUID, from, to *time.Time) (*SalesSummary, error)
}

type SaleQueries interface {
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*SaleView, error)
	List(ctx context.Context, ownerID uuid.UUID, filters SaleFilters, cursor *Cursor, limit int) ([]*SaleView, *Cursor, error)
	Summary(ctx context.Context, ownerID uuid.UUID, from, to *time.Time) (*SalesSummary, error)
}

type saleQueriesImpl struct {
	repo SaleReadStore
}

func NewSaleQueries(repo SaleReadStore) SaleQueries {
	return &saleQueriesImpl{repo: repo}
}

func (q *saleQueriesImpl) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*SaleView, error) {
	s, err := q.repo.FindByID(ctx, ownerID, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrSaleNotFound
		}
		return nil, err
	}
	return s, nil
}

func (q *saleQueriesImpl) List(ctx context.Context, ownerID uuid.UUID, filters SaleFilters, cursor *Cursor, limit int) ([]*SaleView, *Cursor, error) {
	if err := validateRange(filters.From, filters.To); err != nil {
		return nil, nil, err
	}
	limit = ValidateLimit(limit)
	after, err := decodePosition(cursor)
	if err != nil {
		return nil, nil, err
	}

	rows, err := q.repo.List(ctx, ownerID, filters, after, int32(limit+1)) // #nosec G115 -- bounded by MaxListLimit
	if err != nil {
		return nil, nil, err
	}
	page, next := paginate(rows, limit, func(s *SaleView) (time.Time, uuid.UUID) {
		return s.SaleDate, s.ID
	})
	return page, next, nil
}

func (q *saleQueriesImpl) Summary(ctx context.Context, ownerID uuid.UUID, from, to *time.Time) (*SalesSummary, error) {
	if err := validateRange(from, to); err != nil {
		return nil, err
	}
	summary, err := q.repo.Summarize(ctx, ownerID, from, to)
	if err != nil {
		return nil, err
	}
	summary.From = from
	summary.To = to
	return summary, nil
}

func validateRange(from, to *time.Time) error {
	if from != nil && to != nil && from.After(*to) {
		return ErrInvalidDateRange
	}
	return nil
}
