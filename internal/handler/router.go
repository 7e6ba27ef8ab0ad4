package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"retrack/internal/handler/api"
	"retrack/internal/handler/middleware"
	"retrack/internal/pkg/config"
	"retrack/internal/pkg/telemetry"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type RouterParams struct {
	fx.In

	Engine         *gin.Engine
	Config         config.Config
	Logger         *middleware.Logger
	Metrics        *telemetry.Metrics
	AuthMiddleware *middleware.AuthMiddleware

	Checkout     *api.CheckoutHandler
	Webhook      *api.WebhookHandler
	Subscription *api.SubscriptionHandler
	Affiliate    *api.AffiliateHandler
	Commission   *api.CommissionHandler
	Product      *api.ProductHandler
	Sale         *api.SaleHandler
}

func NewRouter(p RouterParams) {
	setupMiddleware(p.Engine, p.Config, p.Logger, p.Metrics)
	setupRoutes(p)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, metrics *telemetry.Metrics) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger))
	engine.Use(middleware.MetricsMiddleware(metrics))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(p RouterParams) {
	engine := p.Engine
	authMw := p.AuthMiddleware

	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(p.Metrics.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		// signature-authenticated, no session
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/webhooks/stripe", Handler: p.Webhook.Stripe},
		})

		authed := apiGroup.Group("")
		authed.Use(authMw.RequireAuth())
		addRoutes(authed, []route{
			{Method: http.MethodPost, Path: "/checkout/create", Handler: p.Checkout.Create},
			{Method: http.MethodGet, Path: "/subscription/check", Handler: p.Subscription.Check},
			{Method: http.MethodPost, Path: "/subscription/portal", Handler: p.Subscription.Portal},
		})

		products := apiGroup.Group("/products")
		products.Use(authMw.RequireAuth())
		{
			addRoutes(products, []route{
				{Method: http.MethodPost, Path: "", Handler: p.Product.Create},
				{Method: http.MethodGet, Path: "", Handler: p.Product.List},
				{Method: http.MethodGet, Path: "/:id", Handler: p.Product.Get},
				{Method: http.MethodPatch, Path: "/:id", Handler: p.Product.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: p.Product.Delete},
				{Method: http.MethodPut, Path: "/:id/status", Handler: p.Product.ChangeStatus},
				{Method: http.MethodPost, Path: "/:id/images", Handler: p.Product.UploadImage},
			})
		}

		sales := apiGroup.Group("/sales")
		sales.Use(authMw.RequireAuth())
		{
			addRoutes(sales, []route{
				{Method: http.MethodPost, Path: "", Handler: p.Sale.Create},
				{Method: http.MethodGet, Path: "", Handler: p.Sale.List},
				{Method: http.MethodGet, Path: "/summary", Handler: p.Sale.Summary},
				{Method: http.MethodGet, Path: "/:id", Handler: p.Sale.Get},
				{Method: http.MethodPatch, Path: "/:id", Handler: p.Sale.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: p.Sale.Delete},
			})
		}

		admin := apiGroup.Group("")
		admin.Use(authMw.RequireAuth(), authMw.RequireServiceRole())
		addRoutes(admin, []route{
			{Method: http.MethodPost, Path: "/affiliates/create", Handler: p.Affiliate.Upsert},
			{Method: http.MethodGet, Path: "/affiliates/create", Handler: p.Affiliate.Get},
			{Method: http.MethodGet, Path: "/commissions/pending", Handler: p.Commission.ListPending},
			{Method: http.MethodPost, Path: "/commissions/:id/retry", Handler: p.Commission.Retry},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
