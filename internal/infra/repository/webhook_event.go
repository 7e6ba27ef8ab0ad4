package repository

import (
	"context"
	"time"

	"retrack/internal/infra"
	sqlc "retrack/internal/infra/sqlc/generated"
	"retrack/internal/pkg/pgconv"
	"retrack/internal/usecase/shared"
)

type WebhookEventWriteQueries interface {
	RecordWebhookEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.RecordWebhookEventParams) (sqlc.RecordWebhookEventRow, error)
	MarkWebhookEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkWebhookEventParams) error
}

type WebhookEventRepository struct {
	queries WebhookEventWriteQueries
}

func NewWebhookEventRepository(queries WebhookEventWriteQueries) *WebhookEventRepository {
	return &WebhookEventRepository{queries: queries}
}

func (r *WebhookEventRepository) Record(ctx context.Context, tx sqlc.DBTX, rec shared.WebhookEventRecord) (*shared.WebhookEventState, error) {
	payload := rec.Payload
	if len(payload) == 0 {
		payload = []byte("{}")
	}
	row, err := r.queries.RecordWebhookEvent(ctx, tx, sqlc.RecordWebhookEventParams{
		EventID:    rec.EventID,
		EventType:  rec.EventType,
		Payload:    payload,
		ReceivedAt: pgconv.TimeToPgtype(rec.ReceivedAt),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to record webhook event", err)
	}
	return &shared.WebhookEventState{
		Status:   shared.WebhookEventStatus(row.Status),
		Inserted: row.Inserted,
	}, nil
}

func (r *WebhookEventRepository) Mark(ctx context.Context, tx sqlc.DBTX, eventID string, status shared.WebhookEventStatus, lastError string, at time.Time) error {
	err := r.queries.MarkWebhookEvent(ctx, tx, sqlc.MarkWebhookEventParams{
		EventID:     eventID,
		Status:      string(status),
		LastError:   pgconv.OptionalString(lastError),
		ProcessedAt: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to mark webhook event", err)
	}
	return nil
}
