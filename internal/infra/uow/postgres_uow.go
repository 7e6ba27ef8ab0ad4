package uow

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"time"

	"retrack/internal/infra/readstore"
	"retrack/internal/infra/repository"
	sqlc "retrack/internal/infra/sqlc/generated"
	"retrack/internal/pkg/errs"
	"retrack/internal/usecase/queries"
	"retrack/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type RetryPolicy struct {
	MaxRetries  int
	BaseBackoff time.Duration
}

var DefaultRetryPolicy = RetryPolicy{MaxRetries: 3, BaseBackoff: 100 * time.Millisecond}

type PostgresUoW struct {
	pool  *pgxpool.Pool
	q     *sqlc.Queries
	retry RetryPolicy
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries) shared.UnitOfWork {
	return NewPostgresUoWWithRetry(pool, q, DefaultRetryPolicy)
}

func NewPostgresUoWWithRetry(pool *pgxpool.Pool, q *sqlc.Queries, retry RetryPolicy) shared.UnitOfWork {
	if retry.BaseBackoff <= 0 {
		retry.BaseBackoff = DefaultRetryPolicy.BaseBackoff
	}
	return &PostgresUoW{
		pool:  pool,
		q:     q,
		retry: retry,
	}
}

// Within runs fn in a ReadCommitted transaction. Row locks taken with FOR UPDATE inside fn
// serialize concurrent sale recording and webhook replays.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly})
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}
	defer rollback(ctx, pgxTx, "read-only")

	if err := fn(ctx, pgxTx); err != nil {
		return err
	}
	return pgxTx.Commit(ctx)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

// runInTx retries serialization failures and deadlocks. Each attempt rolls back explicitly
// instead of deferring, so connections are not held across the retry loop.
func (u *PostgresUoW) runInTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	for attempt := 0; ; attempt++ {
		err := u.attempt(ctx, options, fn)
		if err == nil {
			return nil
		}
		if !isRetryableError(err) {
			return err
		}
		if attempt >= u.retry.MaxRetries {
			slog.Error("transaction failed after max retries",
				"attempts", attempt+1,
				"error", err.Error())
			return errs.Mark(err, errMaxRetriesExceeded)
		}

		wait := backoff(attempt, u.retry.BaseBackoff)
		slog.Warn("retrying transaction",
			"attempt", attempt+1,
			"wait_ms", wait.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
}

func (u *PostgresUoW) attempt(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	if err = fn(ctx, &pgTx{dbtx: pgxTx, uow: u}); err != nil {
		rollback(ctx, pgxTx, "read-write")
		return err
	}
	if err = pgxTx.Commit(ctx); err != nil {
		rollback(ctx, pgxTx, "read-write")
		return errs.Mark(err, errTransactionCommit)
	}
	return nil
}

func rollback(ctx context.Context, tx pgx.Tx, mode string) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		slog.Warn("rollback failed", "mode", mode, "error", err.Error())
	}
}

// backoff doubles per attempt with up to 20% jitter.
func backoff(attempt int, base time.Duration) time.Duration {
	wait := time.Duration(1<<attempt) * base
	if j := int64(wait / 5); j > 0 {
		wait += time.Duration(rand.Int64N(j)) // #nosec G404 -- jitter only
	}
	return wait
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	productRepo      shared.ProductRepository
	saleRepo         shared.SaleRepository
	affiliateRepo    shared.AffiliateRepository
	subscriptionRepo shared.SubscriptionRepository
	webhookEventRepo shared.WebhookEventRepository
	commissionRepo   shared.CommissionRepository
	commandReads     shared.CommandReads
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) Products() shared.ProductRepository {
	if t.productRepo == nil {
		t.productRepo = repository.NewProductRepository(t.uow.q)
	}
	return t.productRepo
}

func (t *pgTx) Sales() shared.SaleRepository {
	if t.saleRepo == nil {
		t.saleRepo = repository.NewSaleRepository(t.uow.q)
	}
	return t.saleRepo
}

func (t *pgTx) Affiliates() shared.AffiliateRepository {
	if t.affiliateRepo == nil {
		t.affiliateRepo = repository.NewAffiliateRepository(t.uow.q)
	}
	return t.affiliateRepo
}

func (t *pgTx) Subscriptions() shared.SubscriptionRepository {
	if t.subscriptionRepo == nil {
		t.subscriptionRepo = repository.NewSubscriptionRepository(t.uow.q)
	}
	return t.subscriptionRepo
}

func (t *pgTx) WebhookEvents() shared.WebhookEventRepository {
	if t.webhookEventRepo == nil {
		t.webhookEventRepo = repository.NewWebhookEventRepository(t.uow.q)
	}
	return t.webhookEventRepo
}

func (t *pgTx) Commissions() shared.CommissionRepository {
	if t.commissionRepo == nil {
		t.commissionRepo = repository.NewCommissionRepository(t.uow.q)
	}
	return t.commissionRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:  t.uow,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

type commandReads struct {
	uow  *PostgresUoW
	dbtx sqlc.DBTX

	// Lazy-initialized readstores
	affiliateStore    *readstore.AffiliateReadStore
	subscriptionStore *readstore.SubscriptionReadStore
}

func (r *commandReads) AffiliateByRefCode(ctx context.Context, refCode string) (*shared.AffiliateSnapshot, error) {
	if r.affiliateStore == nil {
		r.affiliateStore = readstore.NewAffiliateReadStore(r.uow.q, r.dbtx)
	}

	a, err := r.affiliateStore.FindByRefCode(ctx, refCode)
	if err != nil {
		return nil, err
	}

	snapshot := &shared.AffiliateSnapshot{
		ID:              a.ID,
		RefCode:         a.RefCode,
		PayoutAccountID: a.StripeAccountID,
		CommissionRate:  a.CommissionRate,
		Active:          a.Active,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
	return snapshot, nil
}

func (r *commandReads) LatestQualifyingSubscription(ctx context.Context, ownerID uuid.UUID) (*shared.SubscriptionSnapshot, error) {
	if r.subscriptionStore == nil {
		r.subscriptionStore = readstore.NewSubscriptionReadStore(r.uow.q, r.dbtx)
	}

	sub, err := r.subscriptionStore.LatestQualifying(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return toSubscriptionSnapshot(sub), nil
}

func (r *commandReads) LatestBillableSubscription(ctx context.Context, ownerID uuid.UUID) (*shared.SubscriptionSnapshot, error) {
	if r.subscriptionStore == nil {
		r.subscriptionStore = readstore.NewSubscriptionReadStore(r.uow.q, r.dbtx)
	}

	sub, err := r.subscriptionStore.LatestWithCustomer(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return toSubscriptionSnapshot(sub), nil
}

func toSubscriptionSnapshot(v *queries.SubscriptionView) *shared.SubscriptionSnapshot {
	return &shared.SubscriptionSnapshot{
		ID:                     v.ID,
		OwnerID:                v.OwnerID,
		CustomerID:             v.StripeCustomerID,
		ProviderSubscriptionID: v.StripeSubscriptionID,
		Status:                 v.Status,
		CurrentPeriodEnd:       v.CurrentPeriodEnd,
	}
}
