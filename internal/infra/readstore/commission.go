package readstore

import (
	"context"

	"retrack/internal/infra"
	sqlc "retrack/internal/infra/sqlc/generated"
	"retrack/internal/pkg/pgconv"
	"retrack/internal/usecase/queries"
)

type CommissionViewQueries interface {
	ListCommissionEventsByStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.ListCommissionEventsByStatusParams) ([]sqlc.CommissionEvents, error)
}

type CommissionReadStore struct {
	queries CommissionViewQueries
	db      sqlc.DBTX
}

func NewCommissionReadStore(queries CommissionViewQueries, db sqlc.DBTX) *CommissionReadStore {
	return &CommissionReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CommissionReadStore) ListByStatus(ctx context.Context, status string, limit int32) ([]*queries.CommissionEventView, error) {
	rows, err := r.queries.ListCommissionEventsByStatus(ctx, r.db, sqlc.ListCommissionEventsByStatusParams{
		Status: status,
		Limit:  limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list commission events", err)
	}
	result := make([]*queries.CommissionEventView, len(rows))
	for i, row := range rows {
		result[i] = &queries.CommissionEventView{
			ID:              row.ID,
			IdempotencyKey:  row.IdempotencyKey,
			InvoiceID:       row.InvoiceID,
			SubscriptionID:  row.SubscriptionID,
			RefCode:         row.RefCode,
			PayoutAccountID: row.PayoutAccountID,
			CommissionRate:  pgconv.DecimalFromNumeric(row.CommissionRate),
			InvoiceAmount:   row.InvoiceAmount,
			AffiliateAmount: row.AffiliateAmount,
			Currency:        row.Currency,
			Status:          row.Status,
			TransferID:      pgconv.StringFromPgtype(row.TransferID),
			LastError:       pgconv.StringFromPgtype(row.LastError),
			Attempts:        row.Attempts,
			CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
			UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
		}
	}
	return result, nil
}
