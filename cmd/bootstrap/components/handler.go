package components

import (
	"retrack/internal/handler"
	"retrack/internal/handler/api"
	"retrack/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCheckoutHandler,
		api.NewWebhookHandler,
		api.NewSubscriptionHandler,
		api.NewAffiliateHandler,
		api.NewCommissionHandler,
		api.NewProductHandler,
		api.NewSaleHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
