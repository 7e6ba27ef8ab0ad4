package repository

import (
	"context"

	"retrack/internal/domain/product"
	"retrack/internal/infra"
	"retrack/internal/infra/repository/converter"
	sqlc "retrack/internal/infra/sqlc/generated"
	"retrack/internal/pkg/errs"
	"retrack/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ProductWriteQueries interface {
	CreateProduct(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateProductParams) (uuid.UUID, error)
	GetProductForUpdate(ctx context.Context, db sqlc.DBTX, arg sqlc.GetProductForUpdateParams) (sqlc.Products, error)
	UpdateProduct(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateProductParams) (int64, error)
	DeleteProduct(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteProductParams) (int64, error)
}

type ProductRepository struct {
	queries ProductWriteQueries
}

func NewProductRepository(queries ProductWriteQueries) *ProductRepository {
	return &ProductRepository{queries: queries}
}

func (r *ProductRepository) Create(ctx context.Context, tx sqlc.DBTX, p *product.Product) error {
	if _, err := r.queries.CreateProduct(ctx, tx, converter.ProductToCreateParams(p)); err != nil {
		return infra.WrapRepoErr("failed to create product", err)
	}
	return nil
}

func (r *ProductRepository) GetForUpdate(ctx context.Context, tx sqlc.DBTX, ownerID, productID uuid.UUID) (*product.Product, error) {
	row, err := r.queries.GetProductForUpdate(ctx, tx, sqlc.GetProductForUpdateParams{ID: productID, OwnerID: ownerID})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, errs.Mark(infra.WrapRepoErr("product not found", err, infra.KindNotFound), errs.ErrProductNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock product", err)
	}
	return converter.ProductFromRow(row), nil
}

func (r *ProductRepository) Update(ctx context.Context, tx sqlc.DBTX, p *product.Product) error {
	rows, err := r.queries.UpdateProduct(ctx, tx, converter.ProductToUpdateParams(p))
	if err != nil {
		return infra.WrapRepoErr("failed to update product", err)
	}
	if rows == 0 {
		return errs.Mark(infra.WrapRepoErr("product not found", nil, infra.KindNotFound), errs.ErrProductNotFound)
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, tx sqlc.DBTX, ownerID, productID uuid.UUID) error {
	rows, err := r.queries.DeleteProduct(ctx, tx, sqlc.DeleteProductParams{ID: productID, OwnerID: ownerID})
	if err != nil {
		wrapped := infra.WrapRepoErr("failed to delete product", err)
		if infra.IsKind(wrapped, infra.KindForeignKeyViolated) {
			return errs.Mark(wrapped, errs.ErrProductInUse)
		}
		return wrapped
	}
	if rows == 0 {
		return errs.Mark(infra.WrapRepoErr("product not found", nil, infra.KindNotFound), errs.ErrProductNotFound)
	}
	return nil
}
