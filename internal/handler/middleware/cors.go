package middleware

import (
	"log/slog"
	"slices"
	"strings"

	"retrack/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// WebhookPathPrefix marks server-to-server routes that browsers never call.
const WebhookPathPrefix = "/api/webhooks/"

func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     withHeader(cfg.AllowHeaders, RequestIDHeader),
		ExposeHeaders:    withHeader(cfg.ExposeHeaders, RequestIDHeader),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	slog.Info("CORS middleware initialized", "AllowOrigins", cfg.AllowOrigins)

	handle := cors.New(corsCfg)
	return func(c *gin.Context) {
		// payment provider deliveries carry no Origin policy and must not be rejected by it
		if strings.HasPrefix(c.Request.URL.Path, WebhookPathPrefix) {
			c.Next()
			return
		}
		handle(c)
	}
}

func withHeader(headers []string, h string) []string {
	if slices.ContainsFunc(headers, func(v string) bool { return strings.EqualFold(v, h) }) {
		return headers
	}
	return append(slices.Clone(headers), h)
}
