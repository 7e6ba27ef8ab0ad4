package components

import (
	"retrack/internal/pkg/clock"
	"retrack/internal/pkg/config"
	"retrack/internal/pkg/telemetry"
	"retrack/internal/usecase"
	"retrack/internal/usecase/commands"
	"retrack/internal/usecase/queries"
	"retrack/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		NewCheckoutCommands,
		NewWebhookCommands,
		NewSubscriptionCommands,
		commands.NewAffiliateUseCase,
		commands.NewCommissionUseCase,
		commands.NewProductUseCase,
		commands.NewSaleUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewProductQueries,
		queries.NewSaleQueries,
		queries.NewAffiliateQueries,
		queries.NewSubscriptionQueries,
		queries.NewCommissionQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewCheckoutCommands(uow shared.UnitOfWork, gateway commands.PaymentGateway, metrics *telemetry.Metrics, cfg config.Config) commands.CheckoutCommands {
	return commands.NewCheckoutUseCase(uow, gateway, metrics, cfg.Stripe.PlanType)
}

func NewSubscriptionCommands(uow shared.UnitOfWork, gateway commands.PaymentGateway, cfg config.Config) commands.SubscriptionCommands {
	return commands.NewSubscriptionUseCase(uow, gateway, cfg.Stripe.PortalReturnURL)
}

type webhookParams struct {
	fx.In

	UoW       shared.UnitOfWork
	Gateway   commands.PaymentGateway
	Verifier  commands.WebhookVerifier
	Lock      commands.DeliveryLock   `optional:"true"`
	Publisher commands.EventPublisher `optional:"true"`
	Clock     clock.Clock
	Metrics   *telemetry.Metrics
	Config    config.Config
}

func NewWebhookCommands(p webhookParams) commands.WebhookCommands {
	return commands.NewWebhookUseCase(commands.WebhookDeps{
		UoW:       p.UoW,
		Gateway:   p.Gateway,
		Verifier:  p.Verifier,
		Lock:      p.Lock,
		Publisher: p.Publisher,
		Clock:     p.Clock,
		Metrics:   p.Metrics,
		LockTTL:   p.Config.Stripe.DeliveryLockTTL,
	})
}
