package readstore

import (
	"context"

	"retrack/internal/infra"
	sqlc "retrack/internal/infra/sqlc/generated"
	"retrack/internal/pkg/pgconv"
	"retrack/internal/usecase/queries"

	"github.com/google/uuid"
)

type ProductViewQueries interface {
	GetProductByOwner(ctx context.Context, db sqlc.DBTX, arg sqlc.GetProductByOwnerParams) (sqlc.Products, error)
	ListProducts(ctx context.Context, db sqlc.DBTX, arg sqlc.ListProductsParams) ([]sqlc.Products, error)
}

type ProductReadStore struct {
	queries ProductViewQueries
	db      sqlc.DBTX
}

func NewProductReadStore(queries ProductViewQueries, db sqlc.DBTX) *ProductReadStore {
	return &ProductReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ProductReadStore) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*queries.ProductView, error) {
	row, err := r.queries.GetProductByOwner(ctx, r.db, sqlc.GetProductByOwnerParams{ID: id, OwnerID: ownerID})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get product", err)
	}
	return toProductView(row), nil
}

func (r *ProductReadStore) List(ctx context.Context, ownerID uuid.UUID, filters queries.ProductFilters, after *queries.Position, limit int32) ([]*queries.ProductView, error) {
	params := sqlc.ListProductsParams{
		OwnerID: ownerID,
		Status:  pgconv.OptionalString(filters.Status),
		Query:   pgconv.OptionalString(filters.Query),
		Limit:   limit,
	}
	if after != nil {
		params.AfterCreatedAt = pgconv.TimeToPgtype(after.At)
		params.AfterID = pgconv.UUIDToPgtype(after.ID)
	}

	rows, err := r.queries.ListProducts(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list products", err)
	}
	result := make([]*queries.ProductView, len(rows))
	for i, row := range rows {
		result[i] = toProductView(row)
	}
	return result, nil
}

func toProductView(row sqlc.Products) *queries.ProductView {
	images := row.Images
	if images == nil {
		images = []string{}
	}
	return &queries.ProductView{
		ID:            row.ID,
		OwnerID:       row.OwnerID,
		Title:         row.Title,
		PurchasePrice: pgconv.DecimalFromNumeric(row.PurchasePrice),
		Images:        images,
		Status:        row.Status,
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
