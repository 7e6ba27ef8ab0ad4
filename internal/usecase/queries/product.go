package queries

import (
	"context"
	"strings"
	"time"

	"retrack/internal/infra"
	"retrack/internal/pkg/errs"

	"github.com/google/uuid"
)

type ProductFilters struct {
	Status string
	Query  string
}

type ProductReadStore interface {
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*ProductView, error)
	List(ctx context.Context, ownerID uuid.UUID, filters ProductFilters, after *Position, limit int32) ([]*ProductView, error)
}

type ProductQueries interface {
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*ProductView, error)
	List(ctx context.Context, ownerID uuid.UUID, filters ProductFilters, cursor *Cursor, limit int) ([]*ProductView, *Cursor, error)
}

type productQueriesImpl struct {
	repo ProductReadStore
}

func NewProductQueries(repo ProductReadStore) ProductQueries {
	return &productQueriesImpl{repo: repo}
}

func (q *productQueriesImpl) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*ProductView, error) {
	p, err := q.repo.FindByID(ctx, ownerID, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrProductNotFound
		}
		return nil, err
	}
	return p, nil
}

func (q *productQueriesImpl) List(ctx context.Context, ownerID uuid.UUID, filters ProductFilters, cursor *Cursor, limit int) ([]*ProductView, *Cursor, error) {
	limit = ValidateLimit(limit)
	after, err := decodePosition(cursor)
	if err != nil {
		return nil, nil, err
	}
	filters.Query = strings.TrimSpace(filters.Query)

	rows, err := q.repo.List(ctx, ownerID, filters, after, int32(limit+1)) // #nosec G115 -- bounded by MaxListLimit
	if err != nil {
		return nil, nil, err
	}
	page, next := paginate(rows, limit, func(p *ProductView) (time.Time, uuid.UUID) {
		return p.CreatedAt, p.ID
	})
	return page, next, nil
}
