package bootstrap

import (
	"context"
	"log/slog"

	"retrack/internal/infra/kafka"
	"retrack/internal/infra/redis"
	"retrack/internal/infra/storage"
	"retrack/internal/infra/stripe"
	"retrack/internal/pkg/config"
	"retrack/internal/usecase/commands"

	"go.uber.org/fx"
)

var BillingModule = fx.Module("billing",
	fx.Provide(
		NewPaymentGateway,
		NewWebhookVerifier,
		NewDeliveryLock,
		NewEventPublisher,
		NewImageStore,
	),
)

func NewPaymentGateway(cfg config.Config) commands.PaymentGateway {
	if !cfg.Stripe.Enabled() {
		slog.Warn("STRIPE_SECRET_KEY not set; billing calls will fail until configured")
	}
	return stripe.NewGateway(cfg.Stripe)
}

func NewWebhookVerifier(cfg config.Config) commands.WebhookVerifier {
	return stripe.NewVerifier(cfg.Stripe)
}

// NewDeliveryLock yields a nil lock without Redis; the webhook ledger still deduplicates.
func NewDeliveryLock(lc fx.Lifecycle, cfg config.Config) (commands.DeliveryLock, error) {
	rdb, err := redis.NewClient(cfg.Redis)
	if err != nil {
		return nil, err
	}
	if rdb == nil {
		slog.Info("REDIS_ADDR not set; webhook delivery lock disabled")
		return nil, nil
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return rdb.Close()
		},
	})
	return redis.NewLock(rdb), nil
}

func NewEventPublisher(lc fx.Lifecycle, cfg config.Config) commands.EventPublisher {
	if len(cfg.Kafka.Brokers) == 0 {
		slog.Info("KAFKA_BROKERS not set; billing notifications disabled")
		return nil
	}
	p := kafka.NewPublisher(cfg.Kafka)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return p.Close()
		},
	})
	return p
}

func NewImageStore(cfg config.Config) (commands.ImageStore, error) {
	if !cfg.Storage.Enabled() {
		slog.Info("object storage not configured; image uploads disabled")
		return nil, nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), defaultInitTimeout)
	defer cancel()
	store, err := storage.NewS3Store(ctx, cfg.Storage)
	if err != nil {
		return nil, err
	}
	return store, nil
}
