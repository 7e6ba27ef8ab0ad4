package commands

import (
	"context"
	"log/slog"

	"retrack/internal/domain/billing"
	"retrack/internal/domain/commission"
	"retrack/internal/pkg/clock"
	"retrack/internal/pkg/errs"
	"retrack/internal/pkg/telemetry"
	"retrack/internal/usecase/shared"

	"github.com/google/uuid"
)

type CommissionCommands interface {
	// RetryTransfer re-issues a parked transfer with its original idempotency key.
	RetryTransfer(ctx context.Context, id uuid.UUID) (*commission.Event, error)
}

type commissionUseCaseImpl struct {
	uow     shared.UnitOfWork
	gateway PaymentGateway
	clock   clock.Clock
	metrics *telemetry.Metrics
}

func NewCommissionUseCase(uow shared.UnitOfWork, gateway PaymentGateway, clk clock.Clock, metrics *telemetry.Metrics) CommissionCommands {
	return &commissionUseCaseImpl{uow: uow, gateway: gateway, clock: clk, metrics: metrics}
}

func (uc *commissionUseCaseImpl) RetryTransfer(ctx context.Context, id uuid.UUID) (*commission.Event, error) {
	var row *commission.Event
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var gerr error
		row, gerr = tx.Commissions().GetByIDForUpdate(ctx, tx.DB(), id)
		if gerr != nil {
			return gerr
		}
		if !row.NeedsTransfer() {
			return errs.ErrCommissionAlreadySettled
		}
		return settle(ctx, tx, uc.gateway, uc.clock, uc.metrics, row)
	})
	if err != nil {
		return nil, err
	}
	return row, nil
}

// settle issues one transfer attempt for a locked ledger row and persists the result. A failed
// transfer parks the row as pending_reconciliation and is not returned as an error.
func settle(ctx context.Context, tx shared.Tx, gateway PaymentGateway, clk clock.Clock, metrics *telemetry.Metrics, row *commission.Event) error {
	if err := row.BeginAttempt(clk.Now()); err != nil {
		return errs.Mark(err, errs.ErrCommissionAlreadySettled)
	}

	transfer, err := gateway.CreateTransfer(ctx, billing.TransferRequest{
		Amount:             row.AffiliateAmount,
		Currency:           row.Currency,
		DestinationAccount: row.PayoutAccountID,
		IdempotencyKey:     row.IdempotencyKey,
		SourceInvoiceID:    row.InvoiceID,
		Metadata: map[string]string{
			commission.MetaIdempotencyKey: row.IdempotencyKey,
			commission.MetaInvoiceID:      row.InvoiceID,
			commission.MetaRefCode:        row.RefCode,
		},
	})
	if err != nil {
		row.MarkFailed(err, clk.Now())
		metrics.CommissionTransfer(telemetry.OutcomeFailed, row.Currency, row.AffiliateAmount)
		slog.ErrorContext(ctx, "commission transfer failed, parked for reconciliation",
			"idempotency_key", row.IdempotencyKey,
			"invoice_id", row.InvoiceID,
			"ref_code", row.RefCode,
			"amount", row.AffiliateAmount,
			"attempts", row.Attempts,
			"error", err.Error())
	} else {
		row.MarkTransferred(transfer.ID, clk.Now())
		metrics.CommissionTransfer(telemetry.OutcomeTransferred, row.Currency, row.AffiliateAmount)
		slog.InfoContext(ctx, "commission transferred",
			"idempotency_key", row.IdempotencyKey,
			"transfer_id", transfer.ID,
			"amount", row.AffiliateAmount)
	}
	return tx.Commissions().Update(ctx, tx.DB(), row)
}
