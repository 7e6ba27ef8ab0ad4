package bootstrap

import (
	"log/slog"

	"retrack/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	fx.Invoke(logIntegrations),
)

// logIntegrations reports which optional backends are configured; missing ones degrade instead of failing startup.
func logIntegrations(cfg config.Config) {
	slog.Info("integrations",
		"stripe", cfg.Stripe.Enabled(),
		"stripe_webhooks", cfg.Stripe.WebhookSecret != "",
		"redis", cfg.Redis.Addr != "",
		"kafka", len(cfg.Kafka.Brokers) > 0,
		"storage", cfg.Storage.Enabled(),
		"tracing", cfg.Tracing.Endpoint != "",
	)
}
