package repository

import (
	"context"

	"retrack/internal/domain/sale"
	"retrack/internal/infra"
	"retrack/internal/infra/repository/converter"
	sqlc "retrack/internal/infra/sqlc/generated"
	"retrack/internal/pkg/errs"
	"retrack/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type SaleWriteQueries interface {
	CreateSale(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateSaleParams) (uuid.UUID, error)
	GetSaleByOwner(ctx context.Context, db sqlc.DBTX, arg sqlc.GetSaleByOwnerParams) (sqlc.Sales, error)
	UpdateSaleDetails(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateSaleDetailsParams) (int64, error)
	DeleteSale(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteSaleParams) (pgtype.UUID, error)
}

type SaleRepository struct {
	queries SaleWriteQueries
}

func NewSaleRepository(queries SaleWriteQueries) *SaleRepository {
	return &SaleRepository{queries: queries}
}

func (r *SaleRepository) Create(ctx context.Context, tx sqlc.DBTX, s *sale.Sale) error {
	if _, err := r.queries.CreateSale(ctx, tx, converter.SaleToCreateParams(s)); err != nil {
		wrapped := infra.WrapRepoErr("failed to create sale", err)
		// uq_sales_product: a second sale for the same product raced us
		if infra.IsKind(wrapped, infra.KindDuplicateKey) {
			return errs.Mark(wrapped, errs.ErrProductAlreadySold)
		}
		return wrapped
	}
	return nil
}

func (r *SaleRepository) Get(ctx context.Context, tx sqlc.DBTX, ownerID, saleID uuid.UUID) (*sale.Sale, error) {
	row, err := r.queries.GetSaleByOwner(ctx, tx, sqlc.GetSaleByOwnerParams{ID: saleID, OwnerID: ownerID})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, errs.Mark(infra.WrapRepoErr("sale not found", err, infra.KindNotFound), errs.ErrSaleNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get sale", err)
	}
	return converter.SaleFromRow(row), nil
}

func (r *SaleRepository) UpdateDetails(ctx context.Context, tx sqlc.DBTX, s *sale.Sale) error {
	rows, err := r.queries.UpdateSaleDetails(ctx, tx, converter.SaleToUpdateDetailsParams(s))
	if err != nil {
		return infra.WrapRepoErr("failed to update sale", err)
	}
	if rows == 0 {
		return errs.Mark(infra.WrapRepoErr("sale not found", nil, infra.KindNotFound), errs.ErrSaleNotFound)
	}
	return nil
}

func (r *SaleRepository) Delete(ctx context.Context, tx sqlc.DBTX, ownerID, saleID uuid.UUID) (*uuid.UUID, error) {
	productID, err := r.queries.DeleteSale(ctx, tx, sqlc.DeleteSaleParams{ID: saleID, OwnerID: ownerID})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, errs.Mark(infra.WrapRepoErr("sale not found", err, infra.KindNotFound), errs.ErrSaleNotFound)
		}
		return nil, infra.WrapRepoErr("failed to delete sale", err)
	}
	return pgconv.UUIDPtrFromPgtype(productID), nil
}
