package repository

import (
	"context"
	"time"

	"retrack/internal/domain/commission"
	"retrack/internal/infra"
	"retrack/internal/infra/repository/converter"
	sqlc "retrack/internal/infra/sqlc/generated"
	"retrack/internal/pkg/errs"
	"retrack/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type CommissionWriteQueries interface {
	InsertCommissionEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertCommissionEventParams) (int64, error)
	GetCommissionEventByKeyForUpdate(ctx context.Context, db sqlc.DBTX, idempotencyKey string) (sqlc.CommissionEvents, error)
	GetCommissionEventByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.CommissionEvents, error)
	UpdateCommissionEventStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateCommissionEventStatusParams) error
	MarkCommissionTransferredByKey(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkCommissionTransferredByKeyParams) (int64, error)
}

type CommissionRepository struct {
	queries CommissionWriteQueries
}

func NewCommissionRepository(queries CommissionWriteQueries) *CommissionRepository {
	return &CommissionRepository{queries: queries}
}

// Insert reports false when a row with the same idempotency key already exists.
func (r *CommissionRepository) Insert(ctx context.Context, tx sqlc.DBTX, ev *commission.Event) (bool, error) {
	rows, err := r.queries.InsertCommissionEvent(ctx, tx, sqlc.InsertCommissionEventParams{
		ID:              ev.ID,
		IdempotencyKey:  ev.IdempotencyKey,
		InvoiceID:       ev.InvoiceID,
		SubscriptionID:  ev.SubscriptionID,
		RefCode:         ev.RefCode,
		PayoutAccountID: ev.PayoutAccountID,
		CommissionRate:  pgconv.NumericFromDecimal(ev.Rate),
		InvoiceAmount:   ev.InvoiceAmount,
		AffiliateAmount: ev.AffiliateAmount,
		Currency:        ev.Currency,
		Status:          string(ev.Status),
		CreatedAt:       pgconv.TimeToPgtype(ev.CreatedAt),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to insert commission event", err)
	}
	return rows > 0, nil
}

func (r *CommissionRepository) GetByKeyForUpdate(ctx context.Context, tx sqlc.DBTX, idempotencyKey string) (*commission.Event, error) {
	row, err := r.queries.GetCommissionEventByKeyForUpdate(ctx, tx, idempotencyKey)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, errs.Mark(infra.WrapRepoErr("commission event not found", err, infra.KindNotFound), errs.ErrCommissionNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock commission event", err)
	}
	return converter.CommissionEventFromRow(row), nil
}

func (r *CommissionRepository) GetByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*commission.Event, error) {
	row, err := r.queries.GetCommissionEventByIDForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, errs.Mark(infra.WrapRepoErr("commission event not found", err, infra.KindNotFound), errs.ErrCommissionNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock commission event", err)
	}
	return converter.CommissionEventFromRow(row), nil
}

func (r *CommissionRepository) Update(ctx context.Context, tx sqlc.DBTX, ev *commission.Event) error {
	err := r.queries.UpdateCommissionEventStatus(ctx, tx, sqlc.UpdateCommissionEventStatusParams{
		ID:         ev.ID,
		Status:     string(ev.Status),
		TransferID: pgconv.OptionalString(ev.TransferID),
		LastError:  pgconv.OptionalString(ev.LastError),
		Attempts:   int32(ev.Attempts), // #nosec G115 -- attempts stay tiny
		UpdatedAt:  pgconv.TimeToPgtype(ev.UpdatedAt),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update commission event", err)
	}
	return nil
}

// MarkTransferredByKey settles a row from the processor's transfer.created notification.
func (r *CommissionRepository) MarkTransferredByKey(ctx context.Context, tx sqlc.DBTX, idempotencyKey, transferID string, at time.Time) (bool, error) {
	rows, err := r.queries.MarkCommissionTransferredByKey(ctx, tx, sqlc.MarkCommissionTransferredByKeyParams{
		IdempotencyKey: idempotencyKey,
		TransferID:     pgconv.StringToPgtype(transferID),
		UpdatedAt:      pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark commission transferred", err)
	}
	return rows > 0, nil
}
