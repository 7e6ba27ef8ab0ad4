package converter

import (
	"retrack/internal/domain/product"
	sqlc "retrack/internal/infra/sqlc/generated"
	"retrack/internal/pkg/pgconv"
)

func ProductToCreateParams(p *product.Product) sqlc.CreateProductParams {
	return sqlc.CreateProductParams{
		ID:            p.ID(),
		OwnerID:       p.OwnerID(),
		Title:         p.Title(),
		PurchasePrice: pgconv.NumericFromDecimal(p.PurchasePrice()),
		Images:        nonNilImages(p.Images()),
		Status:        string(p.Status()),
		CreatedAt:     pgconv.TimeToPgtype(p.CreatedAt()),
	}
}

func ProductToUpdateParams(p *product.Product) sqlc.UpdateProductParams {
	return sqlc.UpdateProductParams{
		ID:            p.ID(),
		OwnerID:       p.OwnerID(),
		Title:         p.Title(),
		PurchasePrice: pgconv.NumericFromDecimal(p.PurchasePrice()),
		Images:        nonNilImages(p.Images()),
		Status:        string(p.Status()),
		UpdatedAt:     pgconv.TimeToPgtype(p.UpdatedAt()),
	}
}

func ProductFromRow(row sqlc.Products) *product.Product {
	return product.Reconstruct(
		row.ID,
		row.OwnerID,
		row.Title,
		pgconv.DecimalFromNumeric(row.PurchasePrice),
		row.Images,
		product.Status(row.Status),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

// TEXT[] NOT NULL rejects a nil slice
func nonNilImages(images []string) []string {
	if images == nil {
		return []string{}
	}
	return images
}
