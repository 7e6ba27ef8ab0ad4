package bootstrap

import (
	"context"
	"log/slog"

	"retrack/internal/infra/db"
	"retrack/internal/pkg/config"
	"retrack/internal/pkg/telemetry"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
	fx.Invoke(RegisterPoolMetrics),
)

func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}
	slog.Info("database connected", "host", cfg.DB.Host, "db", cfg.DB.DBName, "max_conns", pool.Config().MaxConns)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}

func RegisterPoolMetrics(pool *pgxpool.Pool, m *telemetry.Metrics) {
	m.GaugeFunc("db_pool_acquired_conns", "Connections currently checked out of the pool", func() float64 {
		return float64(pool.Stat().AcquiredConns())
	})
	m.GaugeFunc("db_pool_idle_conns", "Idle connections held by the pool", func() float64 {
		return float64(pool.Stat().IdleConns())
	})
	m.GaugeFunc("db_pool_total_conns", "All connections owned by the pool", func() float64 {
		return float64(pool.Stat().TotalConns())
	})
}
