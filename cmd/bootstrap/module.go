package bootstrap

import (
	"retrack/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	LoggerModule,
	JWTModule,
	ObservabilityModule,
	BillingModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
