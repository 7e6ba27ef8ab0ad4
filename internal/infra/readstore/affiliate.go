package readstore

import (
	"context"
	"time"

	"retrack/internal/infra"
	sqlc "retrack/internal/infra/sqlc/generated"
	"retrack/internal/pkg/pgconv"
	"retrack/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type AffiliateViewQueries interface {
	GetAffiliateByRefCode(ctx context.Context, db sqlc.DBTX, refCode string) (sqlc.Affiliates, error)
	ListAffiliates(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.Affiliates, error)
}

type AffiliateReadStore struct {
	queries AffiliateViewQueries
	db      sqlc.DBTX
}

func NewAffiliateReadStore(queries AffiliateViewQueries, db sqlc.DBTX) *AffiliateReadStore {
	return &AffiliateReadStore{
		queries: queries,
		db:      db,
	}
}

// pgtype columns need explicit converters; same-named scalar fields copy directly.
var rowCopyOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: pgtype.Timestamptz{},
			DstType: time.Time{},
			Fn: func(src any) (any, error) {
				return pgconv.TimeFromPgtype(src.(pgtype.Timestamptz)), nil
			},
		},
		{
			SrcType: pgtype.Numeric{},
			DstType: decimal.Decimal{},
			Fn: func(src any) (any, error) {
				return pgconv.DecimalFromNumeric(src.(pgtype.Numeric)), nil
			},
		},
	},
}

func (r *AffiliateReadStore) FindByRefCode(ctx context.Context, refCode string) (*queries.AffiliateView, error) {
	row, err := r.queries.GetAffiliateByRefCode(ctx, r.db, refCode)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("affiliate not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get affiliate", err)
	}
	return toAffiliateView(row)
}

func (r *AffiliateReadStore) List(ctx context.Context, limit int32) ([]*queries.AffiliateView, error) {
	rows, err := r.queries.ListAffiliates(ctx, r.db, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list affiliates", err)
	}
	result := make([]*queries.AffiliateView, 0, len(rows))
	for _, row := range rows {
		v, err := toAffiliateView(row)
		if err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	return result, nil
}

func toAffiliateView(row sqlc.Affiliates) (*queries.AffiliateView, error) {
	var v queries.AffiliateView
	if err := copier.CopyWithOption(&v, &row, rowCopyOption); err != nil {
		return nil, infra.WrapRepoErr("failed to map affiliate row", err)
	}
	return &v, nil
}
