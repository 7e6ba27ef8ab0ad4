package repository

import (
	"context"

	"retrack/internal/domain/affiliate"
	"retrack/internal/infra"
	"retrack/internal/infra/repository/converter"
	sqlc "retrack/internal/infra/sqlc/generated"
	"retrack/internal/pkg/errs"
	"retrack/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type AffiliateWriteQueries interface {
	CreateAffiliate(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateAffiliateParams) (uuid.UUID, error)
	GetAffiliateByRefCodeForUpdate(ctx context.Context, db sqlc.DBTX, refCode string) (sqlc.Affiliates, error)
	UpdateAffiliate(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateAffiliateParams) (int64, error)
}

type AffiliateRepository struct {
	queries AffiliateWriteQueries
}

func NewAffiliateRepository(queries AffiliateWriteQueries) *AffiliateRepository {
	return &AffiliateRepository{queries: queries}
}

func (r *AffiliateRepository) GetByRefCodeForUpdate(ctx context.Context, tx sqlc.DBTX, refCode string) (*affiliate.Affiliate, error) {
	row, err := r.queries.GetAffiliateByRefCodeForUpdate(ctx, tx, refCode)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, errs.Mark(infra.WrapRepoErr("affiliate not found", err, infra.KindNotFound), errs.ErrAffiliateNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock affiliate", err)
	}
	return converter.AffiliateFromRow(row), nil
}

func (r *AffiliateRepository) Create(ctx context.Context, tx sqlc.DBTX, a *affiliate.Affiliate) error {
	_, err := r.queries.CreateAffiliate(ctx, tx, sqlc.CreateAffiliateParams{
		ID:              a.ID(),
		RefCode:         a.RefCode(),
		StripeAccountID: a.PayoutAccountID(),
		CommissionRate:  pgconv.NumericFromDecimal(a.CommissionRate()),
		Active:          a.Active(),
		CreatedAt:       pgconv.TimeToPgtype(a.CreatedAt()),
	})
	if err != nil {
		wrapped := infra.WrapRepoErr("failed to create affiliate", err)
		if infra.IsKind(wrapped, infra.KindDuplicateKey) {
			return errs.Mark(wrapped, errs.ErrDuplicateRefCode)
		}
		return wrapped
	}
	return nil
}

func (r *AffiliateRepository) Update(ctx context.Context, tx sqlc.DBTX, a *affiliate.Affiliate) error {
	rows, err := r.queries.UpdateAffiliate(ctx, tx, sqlc.UpdateAffiliateParams{
		ID:              a.ID(),
		StripeAccountID: a.PayoutAccountID(),
		CommissionRate:  pgconv.NumericFromDecimal(a.CommissionRate()),
		Active:          a.Active(),
		UpdatedAt:       pgconv.TimeToPgtype(a.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update affiliate", err)
	}
	if rows == 0 {
		return errs.Mark(infra.WrapRepoErr("affiliate not found", nil, infra.KindNotFound), errs.ErrAffiliateNotFound)
	}
	return nil
}
