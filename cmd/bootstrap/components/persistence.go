package components

import (
	"retrack/internal/infra/readstore"
	sqlc "retrack/internal/infra/sqlc/generated"
	"retrack/internal/infra/uow"
	"retrack/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	unitOfWorkModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Product
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ProductViewQueries)),
		),
		fx.Annotate(
			readstore.NewProductReadStore,
			fx.As(new(queries.ProductReadStore)),
		),
		// Sale
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.SaleViewQueries)),
		),
		fx.Annotate(
			readstore.NewSaleReadStore,
			fx.As(new(queries.SaleReadStore)),
		),
		// Affiliate
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.AffiliateViewQueries)),
		),
		fx.Annotate(
			readstore.NewAffiliateReadStore,
			fx.As(new(queries.AffiliateReadStore)),
		),
		// Subscription
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.SubscriptionViewQueries)),
		),
		fx.Annotate(
			readstore.NewSubscriptionReadStore,
			fx.As(new(queries.SubscriptionReadStore)),
		),
		// Commission ledger
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.CommissionViewQueries)),
		),
		fx.Annotate(
			readstore.NewCommissionReadStore,
			fx.As(new(queries.CommissionReadStore)),
		),
	),
)

// Write repositories are built per transaction inside the unit of work.
var unitOfWorkModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
