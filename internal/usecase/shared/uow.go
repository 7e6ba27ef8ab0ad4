package shared

import (
	"context"
	"time"

	"retrack/internal/domain/affiliate"
	"retrack/internal/domain/commission"
	"retrack/internal/domain/product"
	"retrack/internal/domain/sale"
	"retrack/internal/domain/subscription"
	sqlc "retrack/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Products() ProductRepository
	Sales() SaleRepository
	Affiliates() AffiliateRepository
	Subscriptions() SubscriptionRepository
	WebhookEvents() WebhookEventRepository
	Commissions() CommissionRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	AffiliateByRefCode(ctx context.Context, refCode string) (*AffiliateSnapshot, error)
	LatestQualifyingSubscription(ctx context.Context, ownerID uuid.UUID) (*SubscriptionSnapshot, error)
	LatestBillableSubscription(ctx context.Context, ownerID uuid.UUID) (*SubscriptionSnapshot, error)
}

type ProductRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, p *product.Product) error
	GetForUpdate(ctx context.Context, tx sqlc.DBTX, ownerID, productID uuid.UUID) (*product.Product, error)
	Update(ctx context.Context, tx sqlc.DBTX, p *product.Product) error
	Delete(ctx context.Context, tx sqlc.DBTX, ownerID, productID uuid.UUID) error
}

type SaleRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, s *sale.Sale) error
	Get(ctx context.Context, tx sqlc.DBTX, ownerID, saleID uuid.UUID) (*sale.Sale, error)
	UpdateDetails(ctx context.Context, tx sqlc.DBTX, s *sale.Sale) error
	// Delete returns the product the sale was recorded against, if any.
	Delete(ctx context.Context, tx sqlc.DBTX, ownerID, saleID uuid.UUID) (*uuid.UUID, error)
}

type AffiliateRepository interface {
	GetByRefCodeForUpdate(ctx context.Context, tx sqlc.DBTX, refCode string) (*affiliate.Affiliate, error)
	Create(ctx context.Context, tx sqlc.DBTX, a *affiliate.Affiliate) error
	Update(ctx context.Context, tx sqlc.DBTX, a *affiliate.Affiliate) error
}

type SubscriptionRepository interface {
	// Upsert is keyed on the processor subscription id and ignores events older than the stored one.
	Upsert(ctx context.Context, tx sqlc.DBTX, sub *subscription.Subscription, eventAt time.Time) (bool, error)
	Cancel(ctx context.Context, tx sqlc.DBTX, providerSubscriptionID string, eventAt time.Time) (bool, error)
}

type WebhookEventRepository interface {
	Record(ctx context.Context, tx sqlc.DBTX, rec WebhookEventRecord) (*WebhookEventState, error)
	Mark(ctx context.Context, tx sqlc.DBTX, eventID string, status WebhookEventStatus, lastError string, at time.Time) error
}

type CommissionRepository interface {
	// Insert is a no-op when the idempotency key already exists.
	Insert(ctx context.Context, tx sqlc.DBTX, ev *commission.Event) (bool, error)
	GetByKeyForUpdate(ctx context.Context, tx sqlc.DBTX, idempotencyKey string) (*commission.Event, error)
	GetByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*commission.Event, error)
	Update(ctx context.Context, tx sqlc.DBTX, ev *commission.Event) error
	MarkTransferredByKey(ctx context.Context, tx sqlc.DBTX, idempotencyKey, transferID string, at time.Time) (bool, error)
}
