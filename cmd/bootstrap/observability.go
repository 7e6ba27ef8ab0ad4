package bootstrap

import (
	"context"
	"time"

	"retrack/internal/pkg/config"
	"retrack/internal/pkg/telemetry"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/fx"
)

const defaultInitTimeout = 10 * time.Second

var ObservabilityModule = fx.Module("observability",
	fx.Provide(
		telemetry.NewMetrics,
		NewTracerProvider,
	),
	fx.Invoke(func(*sdktrace.TracerProvider) {}),
)

func NewTracerProvider(lc fx.Lifecycle, cfg config.Config) (*sdktrace.TracerProvider, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultInitTimeout)
	defer cancel()

	tp, err := telemetry.NewTracerProvider(ctx, cfg.Tracing)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return tp.Shutdown(ctx)
		},
	})
	return tp, nil
}
