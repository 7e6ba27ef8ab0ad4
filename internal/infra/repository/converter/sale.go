package converter

import (
	"retrack/internal/domain/money"
	"retrack/internal/domain/sale"
	sqlc "retrack/internal/infra/sqlc/generated"
	"retrack/internal/pkg/pgconv"
)

func SaleToCreateParams(s *sale.Sale) sqlc.CreateSaleParams {
	m := s.Metrics()
	return sqlc.CreateSaleParams{
		ID:            s.ID(),
		OwnerID:       s.OwnerID(),
		ProductID:     pgconv.UUIDPtrToPgtype(s.ProductID()),
		Title:         s.Title(),
		SalePrice:     pgconv.NumericFromDecimal(s.SalePrice()),
		PurchasePrice: pgconv.NumericFromDecimal(s.PurchasePrice()),
		ShippingCost:  pgconv.NumericFromDecimal(s.ShippingCost()),
		PlatformFee:   pgconv.NumericFromDecimal(s.PlatformFee()),
		Profit:        pgconv.NumericFromDecimal(m.Profit),
		Margin:        m.Margin,
		Roi:           m.ROI,
		Platform:      s.Platform(),
		Notes:         s.Notes(),
		SaleDate:      pgconv.TimeToPgtype(s.SaleDate()),
		CreatedAt:     pgconv.TimeToPgtype(s.CreatedAt()),
	}
}

func SaleToUpdateDetailsParams(s *sale.Sale) sqlc.UpdateSaleDetailsParams {
	return sqlc.UpdateSaleDetailsParams{
		ID:        s.ID(),
		OwnerID:   s.OwnerID(),
		Platform:  s.Platform(),
		Notes:     s.Notes(),
		SaleDate:  pgconv.TimeToPgtype(s.SaleDate()),
		UpdatedAt: pgconv.TimeToPgtype(s.UpdatedAt()),
	}
}

func SaleFromRow(row sqlc.Sales) *sale.Sale {
	return sale.Reconstruct(sale.Snapshot{
		ID:            row.ID,
		OwnerID:       row.OwnerID,
		ProductID:     pgconv.UUIDPtrFromPgtype(row.ProductID),
		Title:         row.Title,
		SalePrice:     pgconv.DecimalFromNumeric(row.SalePrice),
		PurchasePrice: pgconv.DecimalFromNumeric(row.PurchasePrice),
		ShippingCost:  pgconv.DecimalFromNumeric(row.ShippingCost),
		PlatformFee:   pgconv.DecimalFromNumeric(row.PlatformFee),
		Metrics: money.Metrics{
			Profit: pgconv.DecimalFromNumeric(row.Profit),
			Margin: row.Margin,
			ROI:    row.Roi,
		},
		Platform:  row.Platform,
		Notes:     row.Notes,
		SaleDate:  pgconv.TimeFromPgtype(row.SaleDate),
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	})
}
