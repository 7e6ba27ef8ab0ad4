package readstore

import (
	"context"
	"time"

	"retrack/internal/infra"
	sqlc "retrack/internal/infra/sqlc/generated"
	"retrack/internal/pkg/pgconv"
	"retrack/internal/usecase/queries"

	"github.com/google/uuid"
)

type SaleViewQueries interface {
	GetSaleByOwner(ctx context.Context, db sqlc.DBTX, arg sqlc.GetSaleByOwnerParams) (sqlc.Sales, error)
	ListSales(ctx context.Context, db sqlc.DBTX, arg sqlc.ListSalesParams) ([]sqlc.Sales, error)
	SummarizeSales(ctx context.Context, db sqlc.DBTX, arg sqlc.SummarizeSalesParams) (sqlc.SummarizeSalesRow, error)
}

type SaleReadStore struct {
	queries SaleViewQueries
	db      sqlc.DBTX
}

func NewSaleReadStore(queries SaleViewQueries, db sqlc.DBTX) *SaleReadStore {
	return &SaleReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *SaleReadStore) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*queries.SaleView, error) {
	row, err := r.queries.GetSaleByOwner(ctx, r.db, sqlc.GetSaleByOwnerParams{ID: id, OwnerID: ownerID})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("sale not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get sale", err)
	}
	return toSaleView(row), nil
}

func (r *SaleReadStore) List(ctx context.Context, ownerID uuid.UUID, filters queries.SaleFilters, after *queries.Position, limit int32) ([]*queries.SaleView, error) {
	params := sqlc.ListSalesParams{
		OwnerID:  ownerID,
		Platform: pgconv.OptionalString(filters.Platform),
		FromDate: pgconv.TimePtrToPgtype(filters.From),
		ToDate:   pgconv.TimePtrToPgtype(filters.To),
		Limit:    limit,
	}
	if after != nil {
		params.AfterSaleDate = pgconv.TimeToPgtype(after.At)
		params.AfterID = pgconv.UUIDToPgtype(after.ID)
	}

	rows, err := r.queries.ListSales(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list sales", err)
	}
	result := make([]*queries.SaleView, len(rows))
	for i, row := range rows {
		result[i] = toSaleView(row)
	}
	return result, nil
}

func (r *SaleReadStore) Summarize(ctx context.Context, ownerID uuid.UUID, from, to *time.Time) (*queries.SalesSummary, error) {
	row, err := r.queries.SummarizeSales(ctx, r.db, sqlc.SummarizeSalesParams{
		OwnerID:  ownerID,
		FromDate: pgconv.TimePtrToPgtype(from),
		ToDate:   pgconv.TimePtrToPgtype(to),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to summarize sales", err)
	}
	return &queries.SalesSummary{
		SaleCount:     row.SaleCount,
		Revenue:       pgconv.DecimalFromNumeric(row.Revenue),
		TotalProfit:   pgconv.DecimalFromNumeric(row.TotalProfit),
		TotalCosts:    pgconv.DecimalFromNumeric(row.TotalCosts),
		AverageMargin: row.AverageMargin,
	}, nil
}

func toSaleView(row sqlc.Sales) *queries.SaleView {
	return &queries.SaleView{
		ID:            row.ID,
		OwnerID:       row.OwnerID,
		ProductID:     pgconv.UUIDPtrFromPgtype(row.ProductID),
		Title:         row.Title,
		SalePrice:     pgconv.DecimalFromNumeric(row.SalePrice),
		PurchasePrice: pgconv.DecimalFromNumeric(row.PurchasePrice),
		ShippingCost:  pgconv.DecimalFromNumeric(row.ShippingCost),
		PlatformFee:   pgconv.DecimalFromNumeric(row.PlatformFee),
		Profit:        pgconv.DecimalFromNumeric(row.Profit),
		Margin:        row.Margin,
		ROI:           row.Roi,
		Platform:      row.Platform,
		Notes:         row.Notes,
		SaleDate:      pgconv.TimeFromPgtype(row.SaleDate),
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
